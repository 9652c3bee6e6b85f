/*
 * ============= Ryft-Customized BSD License ============
 * Copyright (c) 2015, Ryft Systems, Inc.
 * All rights reserved.
 * Redistribution and use in source and binary forms, with or without modification,
 * are permitted provided that the following conditions are met:
 *
 * 1. Redistributions of source code must retain the above copyright notice,
 *   this list of conditions and the following disclaimer.
 * 2. Redistributions in binary form must reproduce the above copyright notice,
 *   this list of conditions and the following disclaimer in the documentation and/or
 *   other materials provided with the distribution.
 * 3. All advertising materials mentioning features or use of this software must display the following acknowledgement:
 *   This product includes software developed by Ryft Systems, Inc.
 * 4. Neither the name of Ryft Systems, Inc. nor the names of its contributors may be used
 *   to endorse or promote products derived from this software without specific prior written permission.
 *
 * THIS SOFTWARE IS PROVIDED BY RYFT SYSTEMS, INC. ''AS IS'' AND ANY
 * EXPRESS OR IMPLIED WARRANTIES, INCLUDING, BUT NOT LIMITED TO, THE IMPLIED
 * WARRANTIES OF MERCHANTABILITY AND FITNESS FOR A PARTICULAR PURPOSE ARE
 * DISCLAIMED. IN NO EVENT SHALL RYFT SYSTEMS, INC. BE LIABLE FOR ANY
 * DIRECT, INDIRECT, INCIDENTAL, SPECIAL, EXEMPLARY, OR CONSEQUENTIAL DAMAGES
 * (INCLUDING, BUT NOT LIMITED TO, PROCUREMENT OF SUBSTITUTE GOODS OR SERVICES;
 * LOSS OF USE, DATA, OR PROFITS; OR BUSINESS INTERRUPTION) HOWEVER CAUSED AND
 * ON ANY THEORY OF LIABILITY, WHETHER IN CONTRACT, STRICT LIABILITY, OR TORT
 * (INCLUDING NEGLIGENCE OR OTHERWISE) ARISING IN ANY WAY OUT OF THE USE OF THIS
 * SOFTWARE, EVEN IF ADVISED OF THE POSSIBILITY OF SUCH DAMAGE.
 * ============
 */

package query

// Report summarizes a successful parse for callers building human-facing
// output, recovering the original tool's verbose/report mode
// (original_source/boolean_parser.py's --verbose JSON report) without
// changing Parse's contract: Explain is a pure post-pass over a *Result.
type Report struct {
	Format         Format
	FieldTerms     int
	QuotedPhrases  int
	BareWords      int
	OperatorCounts map[Operator]int
	Canonical      string
}

// Explain walks a parsed result's canonical form and tallies its atoms and
// operators. It re-tokenizes the canonical expression (which, being fully
// parenthesized and already validated, can only fail on a programming
// error in this package) rather than threading counts through the parser.
func Explain(result *Result) (Report, *Error) {
	report := Report{
		Format:         result.Format,
		Canonical:      result.Canonical,
		OperatorCounts: map[Operator]int{},
	}

	toks, err := tokenize(result.Canonical)
	if err != nil {
		return Report{}, err
	}

	for _, raw := range toks {
		tok, cerr := classify(raw)
		if cerr != nil {
			return Report{}, cerr
		}
		switch tok.Kind {
		case KindFieldTerm:
			report.FieldTerms++
		case KindQuotedPhrase:
			report.QuotedPhrases++
		case KindBareWord:
			report.BareWords++
		case KindOperator:
			report.OperatorCounts[tok.Op]++
		}
	}

	return report, nil
}

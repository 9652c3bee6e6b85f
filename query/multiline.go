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

import "fmt"

// canonicalizeMultiLine implements §4.8: validate every content line
// independently (with the no-cross-line-parentheses restriction), require
// every operator line to resolve to the same canonical operator, and
// assemble the content lines' canonical forms with a left-associative
// fold.
func canonicalizeMultiLine(lines []string) (string, *Error) {
	var contentCanon []string
	var op Operator
	opSet := false

	for i, line := range lines {
		if i%2 == 0 {
			if !isBalanced(line) {
				return "", NewError(CrossLineParens, "unbalanced parentheses on a single content line").
					WithDetails("line %d: %q", i+1, line)
			}
			canon, err := canonicalizeSingleLine(line)
			if err != nil {
				return "", err
			}
			contentCanon = append(contentCanon, canon)
			continue
		}

		// operator line
		toks, terr := tokenize(line)
		if terr != nil {
			return "", terr
		}
		if len(toks) != 1 {
			return "", NewError(BadMultiLineStructure, "operator line must carry exactly one token").
				WithDetails("line %d: %q", i+1, line)
		}
		tok, cerr := classify(toks[0])
		if cerr != nil || tok.Kind != KindOperator {
			return "", NewError(UnrecognizedOperator, fmt.Sprintf("%q is not a recognized operator", toks[0])).
				WithDetails("line %d", i+1)
		}

		if !opSet {
			op = tok.Op
			opSet = true
		} else if tok.Op != op {
			return "", NewError(MixedOperatorsMultiLine, "operator lines must all resolve to the same operator").
				WithDetails("line %d uses %s but an earlier operator line used %s", i+1, tok.Op, op)
		}
	}

	if len(contentCanon) == 0 {
		return "", NewError(BadMultiLineStructure, "no content lines found")
	}

	current := contentCanon[0]
	for _, c := range contentCanon[1:] {
		current = wrap(current) + " " + op.String() + " " + wrap(c)
	}
	return wrap(current), nil
}

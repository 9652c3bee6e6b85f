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

// Format tags the two mutually exclusive input shapes (spec §4.5).
type Format int

const (
	SingleLine Format = iota
	MultiLine
)

func (f Format) String() string {
	if f == MultiLine {
		return "MultiLine"
	}
	return "SingleLine"
}

// detectFormat classifies a non-empty sequence of logical lines. Condition
// 2 (MultiLine) is strict: every line at index 1, 3, 5, ... (the 2nd, 4th,
// ... line), once tokenized, must be exactly one token that classifies as
// an Operator. Anything else -- including an unrecognized operator word or
// more than one token on such a line -- falls through to SingleLine, where the validator (working
// on the whitespace-joined text) produces a precise diagnostic instead.
func detectFormat(lines []string) Format {
	if len(lines) == 1 {
		return SingleLine
	}

	n := len(lines)
	if n%2 == 0 || n < 3 {
		return SingleLine
	}

	for i := 1; i < n; i += 2 {
		if !isSingleOperatorLine(lines[i]) {
			return SingleLine
		}
	}

	return MultiLine
}

// isSingleOperatorLine reports whether a line tokenizes to exactly one
// token that classifies as an operator.
func isSingleOperatorLine(line string) bool {
	tokens, err := tokenize(line)
	if err != nil || len(tokens) != 1 {
		return false
	}
	tok, cerr := classify(tokens[0])
	return cerr == nil && tok.Kind == KindOperator
}

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

// tokenize splits a logical line into raw token substrings (spec §4.3).
// It tracks two facts as it walks the line: whether the cursor sits inside
// a quoted region (and which quote char opened it), and whether it sits
// inside a field-code bracket region opened immediately after a matching
// close-quote. Whitespace outside both regions is a token boundary; '('
// and ')' outside both regions are standalone one-character tokens.
//
// This function does not classify or validate; it only decides where one
// token ends and the next begins. Classification (query.classify) and
// validation happen downstream. The only failure mode here is an
// unterminated quote.
func tokenize(line string) ([]string, *Error) {
	var tokens []string
	var cur []rune

	runes := []rune(line)
	n := len(runes)

	flush := func() {
		if len(cur) > 0 {
			tokens = append(tokens, string(cur))
			cur = cur[:0]
		}
	}

	i := 0
	for i < n {
		r := runes[i]

		switch {
		case r == '"' || r == '\'':
			// Enter a quoted region; the token this quote belongs to
			// keeps accumulating until the matching close quote, then
			// (if immediately followed by '[') continues into a
			// field-code bracket region rather than ending the token.
			quote := r
			cur = append(cur, r)
			i++
			closed := false
			for i < n {
				cur = append(cur, runes[i])
				if runes[i] == quote {
					i++
					closed = true
					break
				}
				i++
			}
			if !closed {
				return nil, NewError(UnterminatedQuote,
					fmt.Sprintf("quote opened with %q is never closed", string(quote))).
					WithDetails("offending text: %q", string(runes[max(0, i-20):n]))
			}
			if i < n && runes[i] == '[' {
				// field-code bracket region: consume up to and
				// including the first ']', or to end-of-token
				// boundary (whitespace/paren) if it's never closed --
				// the classifier reports the missing ']' precisely.
				for i < n {
					r2 := runes[i]
					if isTokenBoundary(r2) {
						break
					}
					cur = append(cur, r2)
					i++
					if r2 == ']' {
						break
					}
				}
			}

		case isSpace(r):
			flush()
			i++

		case r == '(' || r == ')':
			flush()
			tokens = append(tokens, string(r))
			i++

		default:
			cur = append(cur, r)
			i++
		}
	}
	flush()

	return tokens, nil
}

func isTokenBoundary(r rune) bool {
	return isSpace(r) || r == '(' || r == ')'
}

func isSpace(r rune) bool {
	switch r {
	case ' ', '\t', '\n', '\r', '\v', '\f':
		return true
	default:
		return false
	}
}

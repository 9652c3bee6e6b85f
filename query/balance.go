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

// isBalanced implements the balanced-delimiter scanner's first operation
// (spec §4.4): '(' and ')' outside quoted regions must match in depth and
// order, never going negative. Quoted regions (either quote style) are
// opaque to this scanner; field-code brackets are never parentheses and
// are not tracked here.
func isBalanced(text string) bool {
	depth := 0
	var quote rune
	inQuote := false

	for _, r := range text {
		if inQuote {
			if r == quote {
				inQuote = false
			}
			continue
		}
		switch r {
		case '"', '\'':
			inQuote = true
			quote = r
		case '(':
			depth++
		case ')':
			depth--
			if depth < 0 {
				return false
			}
		}
	}

	// An open quote at end-of-text is a lexer-level concern
	// (UnterminatedQuote), not a paren-balance failure: everything after
	// the opening quote is opaque to this scanner regardless of whether
	// it is ever closed, so it never contributes an unmatched '(' or ')'.
	return depth == 0
}

// span is a half-open byte range [Start, End) into the text it was found in.
type span struct {
	Start, End int
}

// findInnermostParens implements the scanner's second operation (spec
// §4.4): the half-open span of the first parenthesized group, scanned
// left to right, that contains no further unquoted '('. Quoted regions
// are opaque. Returns ok=false if no unquoted '(' is present.
func findInnermostParens(text string) (sp span, ok bool) {
	runes := []rune(text)
	var quote rune
	inQuote := false
	openIdx := -1

	// byteOffsets maps rune index -> byte offset, since callers slice the
	// original (possibly multi-byte) string by byte range.
	byteOffsets := make([]int, len(runes)+1)
	off := 0
	for i, r := range runes {
		byteOffsets[i] = off
		off += len(string(r))
	}
	byteOffsets[len(runes)] = off

	for i, r := range runes {
		if inQuote {
			if r == quote {
				inQuote = false
			}
			continue
		}
		switch r {
		case '"', '\'':
			inQuote = true
			quote = r
		case '(':
			// Restart the candidate at the most recent unmatched '(':
			// scanning left to right, the innermost group is the last
			// opener seen before its closer, so we always track the
			// most recent one.
			openIdx = i
		case ')':
			if openIdx >= 0 {
				return span{Start: byteOffsets[openIdx], End: byteOffsets[i+1]}, true
			}
			// unmatched close; not our concern here, isBalanced catches it
		}
	}

	return span{}, false
}

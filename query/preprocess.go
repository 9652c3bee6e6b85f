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

import "strings"

// Preprocess turns raw input text into the logical-line sequence the rest
// of the core consumes (spec §2's Preprocessor, §6's input-surface
// conventions). It splits on line terminators, strips '#'-prefixed and
// '#'-inline comments while respecting quoted regions and bracketed field
// codes, trims each line, and discards lines that become empty. The
// comment-stripping algorithm itself lives here because it is part of the
// core's testable budget; the thin glue that decides *where* raw text
// comes from (a file, stdin, an HTTP body) lives in internal/preprocess,
// per spec.md's listing of comment-stripping preprocessors as an external
// collaborator.
func Preprocess(raw string) []string {
	var out []string
	for _, line := range strings.Split(raw, "\n") {
		line = strings.TrimRight(line, "\r")
		stripped := stripComment(line)
		stripped = strings.TrimSpace(stripped)
		if stripped == "" {
			continue
		}
		out = append(out, stripped)
	}
	return out
}

// stripComment removes everything from the first unquoted, unbracketed
// '#' onward. '#' inside a quoted region or inside a field-code bracket
// is ordinary content and is preserved.
func stripComment(line string) string {
	var quote rune
	inQuote := false
	inBracket := false

	runes := []rune(line)
	for i, r := range runes {
		switch {
		case inQuote:
			if r == quote {
				inQuote = false
			}
		case inBracket:
			if r == ']' {
				inBracket = false
			}
		case r == '"' || r == '\'':
			inQuote = true
			quote = r
		case r == '[':
			inBracket = true
		case r == '#':
			return string(runes[:i])
		}
	}
	return line
}

// normalizeWhitespace collapses all runs of whitespace in a line to a
// single space, per §6: "Whitespace within a logical line is normalized
// to single spaces before single-line validation."
func normalizeWhitespace(s string) string {
	fields := strings.Fields(s)
	return strings.Join(fields, " ")
}

// joinLogicalLines is the whitespace-normalizing join the single-line
// validator uses to reduce a query spanning several physical lines (or a
// genuinely single logical line) into one string.
func joinLogicalLines(lines []string) string {
	return normalizeWhitespace(strings.Join(lines, " "))
}

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

// normalizeOperators is the post-pass over an already-canonical expression
// that substitutes any remaining non-canonical operator spellings with
// their canonical form (spec §4.9). The parser already emits canonical
// operators directly; this pass exists for idempotence. Operator words
// inside quoted phrases or quoted field-term content are left exactly as
// written. Substitution is whole-token only: surrounded by single
// spaces at the top level, never matched inside a quoted region and never
// as a substring inside a larger word.
func normalizeOperators(expr string) string {
	fields := splitTopLevel(expr)
	for i, f := range fields {
		if op, ok := NormalizeOp(f); ok {
			fields[i] = op.String()
		}
	}
	return strings.Join(fields, " ")
}

// splitTopLevel splits on single spaces outside quoted regions, so a
// space inside a quoted phrase's content never introduces a spurious
// field boundary.
func splitTopLevel(s string) []string {
	var fields []string
	var cur strings.Builder
	var quote rune
	inQuote := false

	flush := func() {
		if cur.Len() > 0 {
			fields = append(fields, cur.String())
			cur.Reset()
		}
	}

	for _, r := range s {
		switch {
		case inQuote:
			cur.WriteRune(r)
			if r == quote {
				inQuote = false
			}
		case r == '"' || r == '\'':
			inQuote = true
			quote = r
			cur.WriteRune(r)
		case r == ' ':
			flush()
		default:
			cur.WriteRune(r)
		}
	}
	flush()

	return fields
}

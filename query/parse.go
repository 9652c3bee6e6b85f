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

import "github.com/getryft/litquery/internal/logging"

var log = logging.New("query")

// Result is the outcome of a successful parse: the detected input shape
// and the fully-parenthesized canonical expression (spec §3/§4.7).
type Result struct {
	Format     Format
	Canonical  string
	SourceText string
}

// Parse runs the full pipeline: preprocess raw text into logical lines,
// detect its format, validate and canonicalize it, and normalize operator
// spelling in the result. It is the entrypoint for callers holding raw
// text (the HTTP handlers); callers that already hold logical lines (the
// CLI) use ParseLines. Everything below it is exercised directly by this
// package's own tests.
func Parse(raw string) (*Result, *Error) {
	lines := Preprocess(raw)
	if len(lines) == 0 {
		return nil, NewError(BadMultiLineStructure, "input has no content after preprocessing")
	}

	format := detectFormat(lines)

	var canon string
	var err *Error
	switch format {
	case MultiLine:
		canon, err = canonicalizeMultiLine(lines)
	default:
		canon, err = canonicalizeSingleLine(joinLogicalLines(lines))
	}
	if err != nil {
		log.WithField("format", format).Debug("parse failed: ", err)
		return nil, err
	}

	canon = normalizeOperators(canon)
	return &Result{Format: format, Canonical: canon, SourceText: joinLogicalLines(lines)}, nil
}

// ParseLines is Parse's entrypoint for callers that have already split and
// preprocessed their input into logical lines themselves (for example via
// internal/preprocess), so Preprocess is not run again.
func ParseLines(lines []string) (*Result, *Error) {
	if len(lines) == 0 {
		return nil, NewError(BadMultiLineStructure, "no logical lines supplied")
	}

	format := detectFormat(lines)

	var canon string
	var err *Error
	switch format {
	case MultiLine:
		canon, err = canonicalizeMultiLine(lines)
	default:
		canon, err = canonicalizeSingleLine(joinLogicalLines(lines))
	}
	if err != nil {
		return nil, err
	}

	canon = normalizeOperators(canon)
	return &Result{Format: format, Canonical: canon, SourceText: joinLogicalLines(lines)}, nil
}

// Validate reports only whether raw is a well-formed query, discarding the
// canonical form. Handlers that only need a yes/no answer (spec §6) should
// prefer this over Parse to make that intent explicit.
func Validate(raw string) *Error {
	_, err := Parse(raw)
	return err
}

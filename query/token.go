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

import (
	"fmt"
	"strings"
)

// Kind tags the variant a Token carries. The classifier is exhaustive over
// these six kinds (the grouping delimiter is split into its left and right
// halves); every stage above it switches on Kind rather than
// re-deriving the token's shape from its raw text.
type Kind int

const (
	KindOperator Kind = iota
	KindQuotedPhrase
	KindFieldTerm
	KindLeftParen
	KindRightParen
	KindBareWord
)

func (k Kind) String() string {
	switch k {
	case KindOperator:
		return "Operator"
	case KindQuotedPhrase:
		return "QuotedPhrase"
	case KindFieldTerm:
		return "FieldTerm"
	case KindLeftParen:
		return "LeftParen"
	case KindRightParen:
		return "RightParen"
	case KindBareWord:
		return "BareWord"
	default:
		return "Unknown"
	}
}

// Token is the tagged sum of the six variants the grammar recognizes.
// Only the fields relevant to Kind are populated; Raw is always the
// verbatim source text and is what canonicalization emits for atoms.
type Token struct {
	Kind Kind
	Raw  string

	Op Operator // set when Kind == KindOperator

	Content string // quoted content, without the surrounding quotes
	Quote   byte   // '"' or '\'', set for QuotedPhrase and FieldTerm
	Field   string // field code, set for FieldTerm

	Text string // bare word text, set for KindBareWord (== Raw)
}

func (t Token) String() string {
	return t.Raw
}

// IsAtom reports whether the token is one of the three atom variants
// (quoted phrase, field term, bare word) as opposed to an operator or a
// grouping delimiter.
func (t Token) IsAtom() bool {
	switch t.Kind {
	case KindQuotedPhrase, KindFieldTerm, KindBareWord:
		return true
	default:
		return false
	}
}

// classify implements the token classifier (spec §4.2): a pure function
// from a single already-split token string to a Token variant, or a
// classification error for a token that resembles a field term but fails
// its micro-grammar. Order matters and encodes the precedence of
// interpretation described in the spec: grouping delimiters first, then
// operators, then field terms (checked before quoted phrases, or the
// trailing ']' of a field term would be misread as garbage after a
// quoted phrase), then quoted phrases, and bare words last.
func classify(raw string) (Token, *Error) {
	switch raw {
	case "(":
		return Token{Kind: KindLeftParen, Raw: raw}, nil
	case ")":
		return Token{Kind: KindRightParen, Raw: raw}, nil
	}

	if op, ok := NormalizeOp(raw); ok {
		return Token{Kind: KindOperator, Raw: raw, Op: op}, nil
	}

	if looksLikeFieldTermAttempt(raw) {
		return classifyFieldTerm(raw)
	}

	if tok, matched := classifyQuotedPhrase(raw); matched {
		return tok, nil
	}

	return Token{Kind: KindBareWord, Raw: raw, Text: raw}, nil
}

// looksLikeFieldTermAttempt is a cheap heuristic: any token carrying a
// quote character together with an opening bracket, or ending in a closing
// bracket, is trying to be a field term, however malformed. This lets
// classifyFieldTerm enforce the rejection criteria from §4.2.1 explicitly
// (including a missing '['), instead of quietly falling through to
// bare-word classification for near-miss field terms.
func looksLikeFieldTermAttempt(raw string) bool {
	return strings.ContainsAny(raw, `"'`) && (strings.Contains(raw, "[") || strings.HasSuffix(raw, "]"))
}

// classifyFieldTerm enforces the field-term micro-grammar in full: a
// quote, one or more characters, the same quote, '[', one or more
// alphanumeric-or-underscore characters, ']', and nothing else.
func classifyFieldTerm(raw string) (Token, *Error) {
	if len(raw) == 0 || (raw[0] != '"' && raw[0] != '\'') {
		return Token{}, NewError(InvalidFieldTerm, fmt.Sprintf("field term %q is missing its outer opening quote", raw))
	}
	quote := raw[0]
	rest := raw[1:]

	closeRel := strings.IndexByte(rest, quote)
	if closeRel < 0 {
		return Token{}, NewError(InvalidFieldTerm, fmt.Sprintf("field term %q has mismatched quote style", raw))
	}
	content := rest[:closeRel]
	after := rest[closeRel+1:]

	if content == "" {
		return Token{}, NewError(InvalidFieldTerm, fmt.Sprintf("field term %q has empty quoted content", raw))
	}
	if after == "" || after[0] != '[' {
		return Token{}, NewError(InvalidFieldTerm, fmt.Sprintf("field term %q is missing '[' after the closing quote", raw))
	}

	closeBracket := strings.IndexByte(after, ']')
	if closeBracket < 0 {
		return Token{}, NewError(InvalidFieldTerm, fmt.Sprintf("field term %q is missing a closing ']'", raw))
	}

	code := after[1:closeBracket]
	trailing := after[closeBracket+1:]

	if code == "" {
		return Token{}, NewError(InvalidFieldTerm, fmt.Sprintf("field term %q has an empty field code", raw))
	}
	if !isFieldCode(code) {
		return Token{}, NewError(InvalidFieldTerm, fmt.Sprintf("field term %q has a field code %q outside [A-Za-z0-9_]", raw, code))
	}
	if trailing != "" {
		if strings.ContainsAny(trailing, "[]") {
			return Token{}, NewError(InvalidFieldTerm, fmt.Sprintf("field term %q has more than one bracket pair", raw))
		}
		return Token{}, NewError(InvalidFieldTerm, fmt.Sprintf("field term %q has extra characters after ']'", raw))
	}

	return Token{Kind: KindFieldTerm, Raw: raw, Content: content, Quote: quote, Field: code}, nil
}

func isFieldCode(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if !(isASCIILetter(r) || (r >= '0' && r <= '9') || r == '_') {
			return false
		}
	}
	return true
}

// classifyQuotedPhrase matches a token that both starts and ends with the
// same quote character; classify only reaches it for tokens that did not
// look like a field term. The tokenizer guarantees any token beginning
// with a quote character already contains its matching close (unterminated
// quotes fail earlier, at tokenize time). An empty phrase ("") is still
// matched here, with empty Content; validateAlternation rejects it as
// EmptyAtom.
func classifyQuotedPhrase(raw string) (Token, bool) {
	if len(raw) < 2 {
		return Token{}, false
	}
	quote := raw[0]
	if quote != '"' && quote != '\'' {
		return Token{}, false
	}
	if raw[len(raw)-1] != quote {
		return Token{}, false
	}
	content := raw[1 : len(raw)-1]
	return Token{Kind: KindQuotedPhrase, Raw: raw, Content: content, Quote: quote}, true
}

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

// ErrorKind is the closed set of syntactic diagnostics the parser can
// produce. Every failure returned by Parse, Validate or TokenizeLine carries
// exactly one of these.
type ErrorKind int

const (
	// UnterminatedQuote: lexer reached end-of-input inside a quoted region.
	UnterminatedQuote ErrorKind = iota
	// UnbalancedParens: the delimiter scanner rejected the input.
	UnbalancedParens
	// UnquotedMultiwordTerm: a multi-word atom appears without surrounding quotes.
	UnquotedMultiwordTerm
	// MixedOperatorsNoGroup: AND and OR (or either with NOT) at the same
	// nesting depth without parentheses (single-line).
	MixedOperatorsNoGroup
	// MixedOperatorsMultiLine: operator lines in a multi-line input resolve
	// to different canonical operators.
	MixedOperatorsMultiLine
	// UnrecognizedOperator: the single token on a multi-line operator line
	// is not in the lexicon. (A non-operator in a single-line operator slot
	// is reported as UnquotedMultiwordTerm.)
	UnrecognizedOperator
	// AdjacentOperators: two operator tokens with no intervening atom.
	AdjacentOperators
	// LeadingOrTrailingOperator: the token stream begins or ends with an operator.
	LeadingOrTrailingOperator
	// EmptyAtom: () or "" with no content.
	EmptyAtom
	// CrossLineParens: in multi-line input, a content line has unbalanced parentheses.
	CrossLineParens
	// BadMultiLineStructure: a multi-line operator line carrying more than
	// one token, or an input with no logical lines at all. (An even line
	// count never reaches the multi-line parser; it is parsed as SingleLine.)
	BadMultiLineStructure
	// InvalidFieldTerm: a token resembles a field term but fails the micro-grammar.
	InvalidFieldTerm
)

// String renders the error kind as its wire/display name.
func (k ErrorKind) String() string {
	switch k {
	case UnterminatedQuote:
		return "UnterminatedQuote"
	case UnbalancedParens:
		return "UnbalancedParens"
	case UnquotedMultiwordTerm:
		return "UnquotedMultiwordTerm"
	case MixedOperatorsNoGroup:
		return "MixedOperatorsNoGroup"
	case MixedOperatorsMultiLine:
		return "MixedOperatorsMultiLine"
	case UnrecognizedOperator:
		return "UnrecognizedOperator"
	case AdjacentOperators:
		return "AdjacentOperators"
	case LeadingOrTrailingOperator:
		return "LeadingOrTrailingOperator"
	case EmptyAtom:
		return "EmptyAtom"
	case CrossLineParens:
		return "CrossLineParens"
	case BadMultiLineStructure:
		return "BadMultiLineStructure"
	case InvalidFieldTerm:
		return "InvalidFieldTerm"
	default:
		return fmt.Sprintf("ErrorKind(%d)", int(k))
	}
}

// Error is the diagnostic returned by a failed parse. It mirrors the
// teacher's rest.Error builder shape (WithDetails chaining) minus the
// HTTP status, since the core never touches transport concerns.
type Error struct {
	Kind    ErrorKind
	Message string
	details []string
	cause   error
}

// NewError builds a diagnostic of the given kind with a top-level message.
func NewError(kind ErrorKind, message string) *Error {
	return &Error{Kind: kind, Message: message}
}

// WithDetails appends a human-readable clarification, e.g. the offending
// span or a suggested parenthesization. Returns the receiver for chaining.
func (e *Error) WithDetails(format string, args ...interface{}) *Error {
	e.details = append(e.details, fmt.Sprintf(format, args...))
	return e
}

// WithCause records the lower-level error this diagnostic wraps.
func (e *Error) WithCause(cause error) *Error {
	e.cause = cause
	return e
}

// Unwrap exposes the wrapped cause, if any, to errors.Is/As.
func (e *Error) Unwrap() error {
	return e.cause
}

// Error implements the error interface.
func (e *Error) Error() string {
	msg := fmt.Sprintf("%s: %s", e.Kind, e.Message)
	for _, d := range e.details {
		msg += "; " + d
	}
	return msg
}

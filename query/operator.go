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

// Operator is the canonical three-valued boolean connective. The grammar
// forbids implicit precedence between operators; the parser only ever
// composes two operands with exactly one Operator at a time.
type Operator int

const (
	AND Operator = iota
	OR
	NOT
)

// String renders the operator's canonical uppercase English spelling.
func (op Operator) String() string {
	switch op {
	case AND:
		return "AND"
	case OR:
		return "OR"
	case NOT:
		return "NOT"
	default:
		return "?"
	}
}

// operatorLexicon is the closed, case-insensitive mapping from surface
// spelling (English or German) to canonical Operator. A token occupying an
// operator slot that is absent from this map is an error: UnrecognizedOperator
// on a multi-line operator line, UnquotedMultiwordTerm in a single-line
// operator slot.
var operatorLexicon = map[string]Operator{
	"and":  AND,
	"und":  AND,
	"or":   OR,
	"oder": OR,
	"not":  NOT,
	"nicht": NOT,
	"kein":  NOT,
	"keine": NOT,
	"ohne":  NOT,
}

// NormalizeOp maps a surface token onto its canonical Operator. The
// comparison is case-insensitive; absence is reported via ok=false and is
// not itself an error — callers (the token classifier) decide what an
// unrecognized word means in context.
func NormalizeOp(word string) (op Operator, ok bool) {
	op, ok = operatorLexicon[strings.ToLower(word)]
	return op, ok
}

func isASCIILetter(r rune) bool {
	return (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z')
}

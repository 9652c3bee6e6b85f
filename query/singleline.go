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

// placeholder markers stand in for an already-canonicalized nested group
// while the innermost-parenthesis unfold walks outward. They use bytes
// that can never appear in preprocessed query text (NUL is stripped by
// any reasonable text source and never legal in the grammar), so they are
// immune to being mistaken for quotes, parens or whitespace by tokenize.
const (
	placeholderPrefix = "\x00G"
	placeholderSuffix = "\x00"
)

func placeholderFor(i int) string {
	return fmt.Sprintf("%s%d%s", placeholderPrefix, i, placeholderSuffix)
}

func isPlaceholder(s string) bool {
	return strings.HasPrefix(s, placeholderPrefix) && strings.HasSuffix(s, placeholderSuffix) && len(s) > len(placeholderPrefix)+len(placeholderSuffix)
}

// isWrapped reports whether s, taken as a whole, already consists of
// exactly one parenthesized group -- either literally (the first '('
// closes on the very last character) or because s is a placeholder
// standing in for a group that is, by construction, always fully wrapped.
func isWrapped(s string) bool {
	if isPlaceholder(s) {
		return true
	}
	if len(s) < 2 || s[0] != '(' {
		return false
	}
	depth := 0
	for i, r := range s {
		switch r {
		case '(':
			depth++
		case ')':
			depth--
			if depth == 0 {
				return i == len(s)-1
			}
		}
	}
	return false
}

// wrap implements the canonicalization rule shared by every atom and
// every binary composition: "(token)", or "(A) op (B)" -- but never
// double-wraps something that is already a single parenthesized group.
func wrap(s string) string {
	if isWrapped(s) {
		return s
	}
	return "(" + s + ")"
}

// canonicalizeSingleLine implements §4.7: iterative innermost-parenthesis
// unfolding. It also performs every single-line validation from §4.6,
// since both stages need the same tokenize/classify pass over each
// paren-free segment; there is no separate "validate first, parse again"
// traversal.
func canonicalizeSingleLine(s string) (string, *Error) {
	if !isBalanced(s) {
		return "", NewError(UnbalancedParens, "parentheses are not balanced").
			WithDetails("offending text: %q", s)
	}

	var groups []string
	for {
		sp, ok := findInnermostParens(s)
		if !ok {
			break
		}
		inner := s[sp.Start+1 : sp.End-1]
		if strings.TrimSpace(inner) == "" {
			return "", NewError(EmptyAtom, "empty group '()'").
				WithDetails("a parenthesized group must contain at least one atom")
		}

		canon, err := canonicalizeFlat(inner)
		if err != nil {
			return "", err
		}

		groups = append(groups, canon)
		s = s[:sp.Start] + placeholderFor(len(groups)-1) + s[sp.End:]
	}

	result, err := canonicalizeFlat(s)
	if err != nil {
		return "", err
	}

	// A group's canonical form may itself hold placeholders of groups
	// found before it, so restore the latest group first.
	for i := len(groups) - 1; i >= 0; i-- {
		result = strings.ReplaceAll(result, placeholderFor(i), groups[i])
	}
	return result, nil
}

// canonicalizeFlat handles a paren-free segment (spec §4.7 step 2): split
// into tokens, validate atom/operator alternation, validate each atom,
// reject ambiguous mixed operators, then left-fold into the canonical
// binary composition.
func canonicalizeFlat(s string) (string, *Error) {
	raw, terr := tokenize(s)
	if terr != nil {
		return "", terr
	}
	if len(raw) == 0 {
		return "", NewError(EmptyAtom, "empty expression").
			WithDetails("nothing to parse in %q", s)
	}

	tokens := make([]Token, len(raw))
	for i, r := range raw {
		tok, cerr := classify(r)
		if cerr != nil {
			return "", cerr
		}
		tokens[i] = tok
	}

	if err := validateAlternation(tokens); err != nil {
		return "", err
	}
	if err := validateMixedOperators(tokens); err != nil {
		return "", err
	}

	current := wrap(tokens[0].Raw)
	for i := 1; i < len(tokens); i += 2 {
		op := tokens[i].Op.String()
		next := wrap(tokens[i+1].Raw)
		current = wrap(current) + " " + op + " " + next
	}

	return wrap(current), nil
}

// validateAlternation enforces that atoms occupy even positions and
// operators occupy odd positions (spec §4.6's AdjacentOperators,
// LeadingOrTrailingOperator, UnquotedMultiwordTerm and EmptyAtom rules,
// and §4.7 step 2's alternation requirement).
func validateAlternation(tokens []Token) *Error {
	n := len(tokens)

	// andNotHint names the binary-NOT rewrite when tokens[i] and
	// tokens[i+1] read "AND NOT" (or "UND NICHT"); it never applies it.
	andNotHint := func(e *Error, i int) *Error {
		if i >= 0 && i+1 < n && tokens[i].Kind == KindOperator && tokens[i].Op == AND &&
			tokens[i+1].Kind == KindOperator && tokens[i+1].Op == NOT {
			return e.WithDetails("replace %q %q with a single binary NOT, e.g. A NOT B", tokens[i].Raw, tokens[i+1].Raw)
		}
		return e
	}

	if tokens[0].Kind == KindOperator {
		return andNotHint(NewError(LeadingOrTrailingOperator, "query begins with an operator").
			WithDetails("operator %q has no left-hand atom", tokens[0].Raw), 0)
	}
	if tokens[n-1].Kind == KindOperator {
		return andNotHint(NewError(LeadingOrTrailingOperator, "query ends with an operator").
			WithDetails("operator %q has no right-hand atom", tokens[n-1].Raw), n-2)
	}

	for i, tok := range tokens {
		wantAtom := i%2 == 0

		if wantAtom {
			switch tok.Kind {
			case KindOperator:
				return andNotHint(NewError(AdjacentOperators, "two operators appear with no atom between them").
					WithDetails("near %q and %q", tokens[i-1].Raw, tok.Raw), i-1)
			case KindLeftParen, KindRightParen:
				return NewError(UnbalancedParens, "unexpected grouping delimiter").
					WithDetails("near %q", tok.Raw)
			case KindBareWord:
				if !isPlaceholder(tok.Raw) && !isValidBareWord(tok.Text) {
					return NewError(UnquotedMultiwordTerm, "multi-word term must be quoted").
						WithDetails("%q is not a single word; wrap it in quotes", tok.Raw)
				}
			case KindQuotedPhrase:
				if tok.Content == "" {
					return NewError(EmptyAtom, "quoted atom has no content").
						WithDetails("found an empty quoted pair %q", tok.Raw)
				}
			case KindFieldTerm:
				if tok.Content == "" {
					return NewError(EmptyAtom, "field term has no quoted content").
						WithDetails("found %q", tok.Raw)
				}
			}
		} else {
			if tok.Kind != KindOperator {
				return NewError(UnquotedMultiwordTerm, "multi-word term must be quoted").
					WithDetails("%q appears where an operator was expected; if this is part of a phrase, quote the whole phrase", tok.Raw)
			}
		}
	}

	return nil
}

// validateMixedOperators enforces the central disambiguation rule: more
// than one distinct operator kind at the same (paren-free) nesting depth
// is rejected outright, never resolved by implicit precedence.
func validateMixedOperators(tokens []Token) *Error {
	seen := map[Operator]bool{}
	var order []Operator
	for _, tok := range tokens {
		if tok.Kind == KindOperator && !seen[tok.Op] {
			seen[tok.Op] = true
			order = append(order, tok.Op)
		}
	}
	if len(order) > 1 {
		return NewError(MixedOperatorsNoGroup,
			fmt.Sprintf("mixing %s and %s at the same level requires explicit grouping", order[0], order[1])).
			WithDetails("wrap one side in parentheses, e.g. (A %s B) %s C", order[0], order[1])
	}
	return nil
}

// isValidBareWord implements the Open Question resolution from spec.md
// §9: a bare atom is one word matching \w[\w.-]* with no internal
// whitespace. Anything else occupying an atom slot must be quoted.
func isValidBareWord(s string) bool {
	if s == "" {
		return false
	}
	for i, r := range s {
		if isWordRune(r) {
			continue
		}
		if i > 0 && (r == '.' || r == '-') {
			continue
		}
		return false
	}
	return true
}

func isWordRune(r rune) bool {
	return isASCIILetter(r) || (r >= '0' && r <= '9') || r == '_'
}

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

package dialect

import (
	"bytes"
	"fmt"
	"regexp"
	"text/template"

	"github.com/araddon/dateparse"

	"github.com/getryft/litquery/internal/logging"
	"github.com/getryft/litquery/query"
)

var log = logging.New("dialect")

// Warning is a non-fatal diagnostic produced alongside a successful
// compilation (spec §7: "non-fatal warnings ... returned alongside
// success through a separate warning channel").
type Warning struct {
	Message string
}

func (w Warning) String() string {
	return w.Message
}

var dateRangePattern = regexp.MustCompile(`^(\d{4}):(\d{4})$`)

// Compile implements §4.10: rewrite a canonical expression into a target
// dialect's surface syntax by re-tokenizing it with query.TokenizeLine and
// rewriting field-term tokens in place. Operators, parentheses and plain
// atoms (quoted phrases, bare words) always pass through unchanged.
func Compile(canonical string, tag Tag, rules *Rules) (string, []Warning, *query.Error) {
	if rules == nil {
		rules = DefaultRules(tag)
	}

	tokens, err := query.TokenizeLine(canonical)
	if err != nil {
		return "", nil, err
	}

	var out bytes.Buffer
	var warnings []Warning
	depth, maxDepth, operatorCount := 0, 0, 0

	for i, tok := range tokens {
		if i > 0 && tok.Kind != query.KindRightParen && tokens[i-1].Kind != query.KindLeftParen {
			out.WriteByte(' ')
		}

		switch tok.Kind {
		case query.KindLeftParen:
			depth++
			if depth > maxDepth {
				maxDepth = depth
			}
		case query.KindRightParen:
			depth--
		case query.KindOperator:
			operatorCount++
		}

		if tok.Kind != query.KindFieldTerm {
			out.WriteString(tok.Raw)
			continue
		}

		rendered, warn := rewriteFieldTerm(tok, tag, rules)
		out.WriteString(rendered)
		if warn != nil {
			warnings = append(warnings, *warn)
		}
	}

	if rules.MaxNestingDepth > 0 && maxDepth > rules.MaxNestingDepth {
		warnings = append(warnings, Warning{Message: fmt.Sprintf(
			"nesting depth %d exceeds %s's configured max_nesting_depth %d", maxDepth, tag, rules.MaxNestingDepth)})
	}
	if rules.MaxOperators > 0 && operatorCount > rules.MaxOperators {
		warnings = append(warnings, Warning{Message: fmt.Sprintf(
			"operator count %d exceeds %s's configured max_operators %d", operatorCount, tag, rules.MaxOperators)})
	}
	if rules.MaxQueryLength > 0 && out.Len() > rules.MaxQueryLength {
		warnings = append(warnings, Warning{Message: fmt.Sprintf(
			"compiled length %d exceeds %s's configured max_query_length %d", out.Len(), tag, rules.MaxQueryLength)})
	}

	log.WithField("dialect", tag).Debug("compiled: ", out.String())
	return out.String(), warnings, nil
}

// rewriteFieldTerm applies the §4.10 rewrite table to a single field-term
// token, dispatching on whether it is a year-range (field code "pdat"
// carrying "YYYY:YYYY" content) or any other field code.
func rewriteFieldTerm(tok query.Token, tag Tag, rules *Rules) (string, *Warning) {
	if tok.Field == "pdat" {
		if m := dateRangePattern.FindStringSubmatch(tok.Content); m != nil {
			return rewriteDateRange(tok, m[1], m[2], tag, rules)
		}
	}

	switch tag {
	case PubMed:
		return tok.Raw, nil

	case Cochrane:
		// Cochrane ignores field tags entirely: downgrade to the bare
		// quoted content.
		return string(tok.Quote) + tok.Content + string(tok.Quote), nil

	case EuropePMC:
		code, known := rules.FieldCodeMap[tok.Field]
		if !known {
			return tok.Raw, &Warning{Message: fmt.Sprintf("field code %q has no EuropePMC mapping; passed through unchanged", tok.Field)}
		}
		if code == Pass {
			return tok.Raw, nil
		}
		if code == Strip {
			return string(tok.Quote) + tok.Content + string(tok.Quote), nil
		}
		return fmt.Sprintf(`%s:"%s"`, code, tok.Content), nil

	default:
		return tok.Raw, nil
	}
}

// rewriteDateRange handles the `"YYYY:YYYY"[pdat]` special case (spec §8
// scenario 7). Bounds are sanity-checked with dateparse before rewriting;
// an unparseable year leaves the token untouched and emits a warning
// instead of failing the whole compilation, consistent with §7's
// non-fatal warning channel.
func rewriteDateRange(tok query.Token, lower, upper string, tag Tag, rules *Rules) (string, *Warning) {
	if _, err := dateparse.ParseAny(lower + "-01-01"); err != nil {
		return tok.Raw, &Warning{Message: fmt.Sprintf("field term %q has an unparseable lower year bound", tok.Raw)}
	}
	if _, err := dateparse.ParseAny(upper + "-01-01"); err != nil {
		return tok.Raw, &Warning{Message: fmt.Sprintf("field term %q has an unparseable upper year bound", tok.Raw)}
	}

	switch tag {
	case PubMed:
		return tok.Raw, nil

	case Cochrane:
		return string(tok.Quote) + tok.Content + string(tok.Quote), nil

	case EuropePMC:
		if rules.DateRangeTemplate == "" {
			return tok.Raw, &Warning{Message: "no date_range_template configured for EuropePMC"}
		}
		tmpl, err := template.New("date-range").Parse(rules.DateRangeTemplate)
		if err != nil {
			return tok.Raw, &Warning{Message: fmt.Sprintf("invalid date_range_template: %s", err)}
		}
		var buf bytes.Buffer
		if err := tmpl.Execute(&buf, struct{ Lower, Upper string }{lower, upper}); err != nil {
			return tok.Raw, &Warning{Message: fmt.Sprintf("failed to render date_range_template: %s", err)}
		}
		return buf.String(), nil

	default:
		return tok.Raw, nil
	}
}

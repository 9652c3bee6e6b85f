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
	"fmt"
	"io/ioutil"

	"gopkg.in/yaml.v2"
)

// Special field_code_map values (spec §6's dialect syntax-rule resource).
const (
	Strip = "STRIP"
	Pass  = "PASS"
)

// Rules is the external syntax-rule resource the compiler loads once per
// dialect at construction and holds immutably thereafter (spec §6), the
// dialect-package analogue of the teacher's YAML-driven rest.Config
// (rest/server.go's ParseConfig/yaml.Unmarshal pattern).
type Rules struct {
	FieldCodeMap      map[string]string `yaml:"field_code_map"`
	DateRangeTemplate string            `yaml:"date_range_template"`
	MaxQueryLength    int               `yaml:"max_query_length"`
	MaxNestingDepth   int               `yaml:"max_nesting_depth"`
	MaxOperators      int               `yaml:"max_operators"`
}

// LoadRules reads a dialect's syntax-rule resource from a YAML file,
// mirroring rest/server.go's ParseConfig: read the whole file, then
// yaml.Unmarshal into the target struct.
func LoadRules(fileName string) (*Rules, error) {
	buf, err := ioutil.ReadFile(fileName)
	if err != nil {
		return nil, fmt.Errorf("failed to read dialect rules from %q: %s", fileName, err)
	}

	var rules Rules
	if err := yaml.Unmarshal(buf, &rules); err != nil {
		return nil, fmt.Errorf("failed to parse dialect rules from %q: %s", fileName, err)
	}
	return &rules, nil
}

// defaultRules holds the built-in syntax-rule resource for each dialect,
// grounded directly on spec §4.10's rewrite table, used when the caller
// does not supply an override file. Values are never mutated after
// package init, matching §5's "read-only constants initialized once".
var defaultRules = map[Tag]*Rules{
	PubMed: {
		FieldCodeMap:      map[string]string{},
		DateRangeTemplate: "",
		MaxQueryLength:    0,
		MaxNestingDepth:   0,
		MaxOperators:      0,
	},
	EuropePMC: {
		FieldCodeMap: map[string]string{
			"MeSH": "MESH_TERMS",
			"TIAB": "TITLE_ABS",
			"pdat": "PUB_YEAR",
		},
		DateRangeTemplate: "PUB_YEAR:({{.Lower}} TO {{.Upper}})",
		MaxQueryLength:    2000,
		MaxNestingDepth:   12,
		MaxOperators:      50,
	},
	Cochrane: {
		FieldCodeMap:      map[string]string{},
		DateRangeTemplate: "",
		MaxQueryLength:    4000,
		MaxNestingDepth:   20,
		MaxOperators:      100,
	},
}

// DefaultRules returns the built-in rule resource for tag. Callers that
// intend to layer overrides on top (cmd/litqueryd's --config/--rule
// flags, via internal/config.MergeOverrides) must Clone() first: the
// returned value is the shared package-level default and must never be
// mutated in place.
func DefaultRules(tag Tag) *Rules {
	return defaultRules[tag]
}

// Clone returns a deep copy of r, safe to mutate independently of the
// original — needed because FieldCodeMap is a reference type that a
// naive struct copy would still share with r.
func (r *Rules) Clone() *Rules {
	clone := *r
	clone.FieldCodeMap = make(map[string]string, len(r.FieldCodeMap))
	for k, v := range r.FieldCodeMap {
		clone.FieldCodeMap[k] = v
	}
	return &clone
}

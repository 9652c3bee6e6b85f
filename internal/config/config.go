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

// Package config loads cmd/litqueryd's --config file and merges it,
// along with repeated --rule CLI flags, onto a dialect.Rules value. The
// teacher passes backend-specific options around as a generic
// map[string]interface{} (rest/server.go's BackendOptions) and lets the
// backend decode what it needs; this package does the same for dialect
// rule overrides, decoding a generic override map on top of a Rules
// value with mapstructure rather than hand-rolling a field-by-field
// merge.
package config

import (
	"fmt"
	"io/ioutil"

	"github.com/mitchellh/mapstructure"
	"gopkg.in/yaml.v2"
)

// LoadFile reads cmd/litqueryd's --config file: a YAML document keyed by
// dialect name (as accepted by dialect.ParseTag), each value a partial
// override to be merged onto that dialect's built-in Rules with
// MergeOverrides. Mirrors rest/server.go's ParseConfig and
// dialect.LoadRules: read the whole file, then yaml.Unmarshal.
func LoadFile(fileName string) (map[string]map[string]interface{}, error) {
	buf, err := ioutil.ReadFile(fileName)
	if err != nil {
		return nil, fmt.Errorf("failed to read config from %q: %s", fileName, err)
	}

	var overrides map[string]map[string]interface{}
	if err := yaml.Unmarshal(buf, &overrides); err != nil {
		return nil, fmt.Errorf("failed to parse config from %q: %s", fileName, err)
	}
	return overrides, nil
}

// MergeOverrides decodes override (typically built from repeated
// --rule key=value CLI flags, already split into a nested map) onto an
// existing value in place. It is generic so both dialect.Rules and
// future configuration structs can reuse it.
func MergeOverrides(override map[string]interface{}, target interface{}) error {
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Metadata:         nil,
		Result:           target,
		WeaklyTypedInput: true,
		TagName:          "yaml",
	})
	if err != nil {
		return err
	}
	return decoder.Decode(override)
}

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

package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/getryft/litquery/dialect"
)

func TestMergeOverridesOntoRules(t *testing.T) {
	rules := dialect.DefaultRules(dialect.EuropePMC)
	target := *rules.Clone()

	override := map[string]interface{}{
		"max_query_length": "5000",
		"field_code_map": map[string]interface{}{
			"Custom": "CUSTOM_FIELD",
		},
	}

	require.NoError(t, MergeOverrides(override, &target))
	assert.Equal(t, 5000, target.MaxQueryLength)
	assert.Equal(t, "CUSTOM_FIELD", target.FieldCodeMap["Custom"])
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "litqueryd.yaml")
	body := "europepmc:\n  max_query_length: 3000\n  field_code_map:\n    Custom: CUSTOM_FIELD\npubmed:\n  max_operators: 10\n"
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))

	overrides, err := LoadFile(path)
	require.NoError(t, err)

	require.Contains(t, overrides, "europepmc")
	assert.Equal(t, 3000, overrides["europepmc"]["max_query_length"])
	require.Contains(t, overrides, "pubmed")
	assert.Equal(t, 10, overrides["pubmed"]["max_operators"])
}

func TestLoadFileMissing(t *testing.T) {
	_, err := LoadFile(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCanonicalizeMultiLineBasic(t *testing.T) {
	canon, err := canonicalizeMultiLine([]string{"cancer OR tumor", "AND", "treatment OR therapy"})
	require.Nil(t, err)
	assert.Equal(t, `(((cancer) OR (tumor)) AND ((treatment) OR (therapy)))`, canon)
}

func TestCanonicalizeMultiLineThreeContentLines(t *testing.T) {
	canon, err := canonicalizeMultiLine([]string{"cancer", "AND", "tumor", "AND", "treatment"})
	require.Nil(t, err)
	assert.Equal(t, `(((cancer) AND (tumor)) AND (treatment))`, canon)
}

func TestCanonicalizeMultiLineMixedOperators(t *testing.T) {
	_, err := canonicalizeMultiLine([]string{"cancer", "OR", "tumor", "AND", "treatment"})
	if assert.NotNil(t, err) {
		assert.Equal(t, MixedOperatorsMultiLine, err.Kind)
	}
}

func TestCanonicalizeMultiLineCrossLineParens(t *testing.T) {
	_, err := canonicalizeMultiLine([]string{"(cancer OR tumor", "AND", "treatment)"})
	if assert.NotNil(t, err) {
		assert.Equal(t, CrossLineParens, err.Kind)
	}
}

func TestCanonicalizeMultiLineUnrecognizedOperator(t *testing.T) {
	_, err := canonicalizeMultiLine([]string{"cancer", "XOR", "treatment"})
	if assert.NotNil(t, err) {
		assert.Equal(t, UnrecognizedOperator, err.Kind)
	}
}

func TestCanonicalizeMultiLineBadStructure(t *testing.T) {
	_, err := canonicalizeMultiLine([]string{"cancer", "AND OR", "treatment"})
	if assert.NotNil(t, err) {
		assert.Equal(t, BadMultiLineStructure, err.Kind)
	}
}

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
)

func TestIsBalanced(t *testing.T) {
	assert.True(t, isBalanced(`(cancer AND treatment)`))
	assert.True(t, isBalanced(`((cancer) AND (treatment))`))
	assert.True(t, isBalanced(`cancer AND treatment`))
	assert.True(t, isBalanced(`"a (b) c"`))
	assert.False(t, isBalanced(`(cancer AND treatment`))
	assert.False(t, isBalanced(`cancer AND treatment)`))
	assert.False(t, isBalanced(`)(`))
}

func TestIsBalancedIgnoresUnterminatedQuote(t *testing.T) {
	// An open quote is a lexer-level concern, not a paren-balance failure;
	// everything after it is opaque regardless of whether it closes.
	assert.True(t, isBalanced(`"cancer AND treatment`))
	assert.True(t, isBalanced(`(cancer) AND "treatment`))
}

func TestFindInnermostParens(t *testing.T) {
	sp, ok := findInnermostParens(`(cancer OR tumor) AND treatment`)
	if assert.True(t, ok) {
		assert.Equal(t, `(cancer OR tumor)`, `(cancer OR tumor) AND treatment`[sp.Start:sp.End])
	}

	sp, ok = findInnermostParens(`((cancer OR tumor) AND treatment)`)
	if assert.True(t, ok) {
		assert.Equal(t, `(cancer OR tumor)`, `((cancer OR tumor) AND treatment)`[sp.Start:sp.End])
	}

	_, ok = findInnermostParens(`cancer AND treatment`)
	assert.False(t, ok)

	_, ok = findInnermostParens(`"a (b)"`)
	assert.False(t, ok)
}

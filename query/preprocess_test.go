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

func TestPreprocessStripsComments(t *testing.T) {
	lines := Preprocess("cancer AND treatment # a note\n# whole line comment\ntumor")
	assert.Equal(t, []string{"cancer AND treatment", "tumor"}, lines)
}

func TestPreprocessRespectsQuotedHash(t *testing.T) {
	lines := Preprocess(`"pound # sign" AND treatment # trailing note`)
	assert.Equal(t, []string{`"pound # sign" AND treatment`}, lines)
}

func TestPreprocessRespectsBracketedHash(t *testing.T) {
	lines := Preprocess(`"term"[CODE#1] AND treatment`)
	assert.Equal(t, []string{`"term"[CODE#1] AND treatment`}, lines)
}

func TestPreprocessTrimsAndDropsEmptyLines(t *testing.T) {
	lines := Preprocess("\n   \ncancer AND treatment\n\n")
	assert.Equal(t, []string{"cancer AND treatment"}, lines)
}

func TestPreprocessStripsCarriageReturn(t *testing.T) {
	lines := Preprocess("cancer AND treatment\r\ntumor\r\n")
	assert.Equal(t, []string{"cancer AND treatment", "tumor"}, lines)
}

func TestNormalizeWhitespace(t *testing.T) {
	assert.Equal(t, "cancer AND treatment", normalizeWhitespace("cancer    AND\ttreatment"))
}

func TestJoinLogicalLines(t *testing.T) {
	assert.Equal(t, "cancer AND treatment", joinLogicalLines([]string{"cancer", "AND", "treatment"}))
}

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

// Package dialect implements the §4.10 dialect compiler: a small
// collection of local rewrites from a canonical litquery expression into
// a target database's surface syntax. It never re-parses the expression;
// it re-tokenizes the already-validated canonical text with
// query.TokenizeLine and rewrites token-by-token.
package dialect

// Tag names a target database surface syntax.
type Tag int

const (
	PubMed Tag = iota
	EuropePMC
	Cochrane
)

func (t Tag) String() string {
	switch t {
	case PubMed:
		return "PubMed"
	case EuropePMC:
		return "EuropePMC"
	case Cochrane:
		return "Cochrane"
	default:
		return "Unknown"
	}
}

// ParseTag maps a configuration/CLI spelling onto a Tag.
func ParseTag(s string) (Tag, bool) {
	switch s {
	case "PubMed", "pubmed":
		return PubMed, true
	case "EuropePMC", "europepmc", "europe-pmc":
		return EuropePMC, true
	case "Cochrane", "cochrane":
		return Cochrane, true
	default:
		return 0, false
	}
}

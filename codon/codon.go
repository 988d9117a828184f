/*******************************************************************************
 * Copyright (c) 2025 Genome Research Ltd.
 *
 * Authors:
 *	- Sendu Bala <sb10@sanger.ac.uk>
 *
 * Permission is hereby granted, free of charge, to any person obtaining
 * a copy of this software and associated documentation files (the
 * "Software"), to deal in the Software without restriction, including
 * without limitation the rights to use, copy, modify, merge, publish,
 * distribute, sublicense, and/or sell copies of the Software, and to
 * permit persons to whom the Software is furnished to do so, subject to
 * the following conditions:
 *
 * The above copyright notice and this permission notice shall be included
 * in all copies or substantial portions of the Software.
 *
 * THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND,
 * EXPRESS OR IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF
 * MERCHANTABILITY, FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT.
 * IN NO EVENT SHALL THE AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY
 * CLAIM, DAMAGES OR OTHER LIABILITY, WHETHER IN AN ACTION OF CONTRACT,
 * TORT OR OTHERWISE, ARISING FROM, OUT OF OR IN CONNECTION WITH THE
 * SOFTWARE OR THE USE OR OTHER DEALINGS IN THE SOFTWARE.
 ******************************************************************************/

// Package codon holds the codon and amino acid types, and the lookup Table
// that translates one to the other.
package codon

import "strings"

// Length is the number of symbols in a codon.
const Length = 3

// Codon is a 3 symbol unit of nucleotide sequence.
type Codon string

// Symbol returns the symbol at the 0-based position i.
func (c Codon) Symbol(i int) byte {
	return c[i]
}

// Wobble returns the 3rd symbol.
func (c Codon) Wobble() byte {
	return c[Length-1]
}

// SymbolIs reports if the symbol at the 0-based position i is s, ignoring
// case.
func (c Codon) SymbolIs(i int, s byte) bool {
	return toUpper(c[i]) == toUpper(s)
}

// WithSymbol returns a new Codon that is a copy of c with the symbol at the
// 0-based position i replaced by s. s takes the case of the symbol it
// replaces.
func (c Codon) WithSymbol(i int, s byte) Codon {
	b := []byte(c)

	if isLower(b[i]) {
		b[i] = toLower(s)
	} else {
		b[i] = toUpper(s)
	}

	return Codon(b)
}

func isLower(b byte) bool {
	return b >= 'a' && b <= 'z'
}

func toUpper(b byte) byte {
	if isLower(b) {
		return b - 'a' + 'A'
	}

	return b
}

func toLower(b byte) byte {
	if b >= 'A' && b <= 'Z' {
		return b - 'A' + 'a'
	}

	return b
}

// Valid reports if the codon has exactly Length symbols.
func (c Codon) Valid() bool {
	return len(c) == Length
}

// normalise upper-cases the codon and treats U (RNA) as T, so that tables and
// sequences written in either alphabet agree.
func (c Codon) normalise() Codon {
	return Codon(strings.ReplaceAll(strings.ToUpper(string(c)), "U", "T"))
}

// AminoAcid is the single symbol encoded by a codon.
type AminoAcid string

const (
	Leucine    AminoAcid = "L"
	Methionine AminoAcid = "M"
	Valine     AminoAcid = "V"
	Stop       AminoAcid = "s"
)

// IsStop reports if this is the stop marker. Tables that mark stops with "*"
// or "stop" are treated the same as Stop.
func (a AminoAcid) IsStop() bool {
	switch a {
	case Stop, "*", "stop":
		return true
	default:
		return false
	}
}

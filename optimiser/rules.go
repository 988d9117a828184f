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

package optimiser

import "github.com/wtsi-hgi/codon-optimiser/codon"

const (
	secondPosition = 1
	thirdPosition  = 2
)

// Translator translates codons to the amino acids they encode.
// *codon.Table is a Translator.
type Translator interface {
	Translate(c codon.Codon) (codon.AminoAcid, error)
}

// Rule rewrites a codon, using the Translator to check what it encodes. Rules
// are pure functions of their input codon.
type Rule func(t Translator, c codon.Codon) (codon.Codon, error)

// Rules returns the substitution rules in the order they are applied. Each
// rule sees the codon as returned by the previous rule.
func Rules() []Rule {
	return []Rule{Wobble, Leucine, Methionine, Valine, StopCodon}
}

// Wobble leaves codons that end in G or C alone. Otherwise it tries ending the
// codon with C, keeping that if it encodes the same amino acid. If not, the
// codon is ended with G instead, without checking what that encodes.
func Wobble(t Translator, c codon.Codon) (codon.Codon, error) {
	if endsIn(c, 'G', 'C') {
		return c, nil
	}

	orig, err := t.Translate(c)
	if err != nil {
		return "", err
	}

	candidate := c.WithSymbol(thirdPosition, 'C')

	aa, err := t.Translate(candidate)
	if err != nil {
		return "", err
	}

	if aa == orig {
		return candidate, nil
	}

	return c.WithSymbol(thirdPosition, 'G'), nil
}

// Leucine ends Leucine codons with G.
func Leucine(t Translator, c codon.Codon) (codon.Codon, error) {
	return endWithG(t, c, codon.Leucine)
}

// Methionine has a single codon, so there is nothing to change.
func Methionine(_ Translator, c codon.Codon) (codon.Codon, error) {
	return c, nil
}

// Valine ends Valine codons with G.
func Valine(t Translator, c codon.Codon) (codon.Codon, error) {
	return endWithG(t, c, codon.Valine)
}

// StopCodon sets the 2nd symbol of stop codons to G, unless it is A.
func StopCodon(t Translator, c codon.Codon) (codon.Codon, error) {
	aa, err := t.Translate(c)
	if err != nil {
		return "", err
	}

	if !aa.IsStop() || c.SymbolIs(secondPosition, 'A') {
		return c, nil
	}

	return c.WithSymbol(secondPosition, 'G'), nil
}

func endWithG(t Translator, c codon.Codon, want codon.AminoAcid) (codon.Codon, error) {
	aa, err := t.Translate(c)
	if err != nil {
		return "", err
	}

	if aa != want || endsIn(c, 'G') {
		return c, nil
	}

	return c.WithSymbol(thirdPosition, 'G'), nil
}

func endsIn(c codon.Codon, symbols ...byte) bool {
	for _, s := range symbols {
		if c.SymbolIs(thirdPosition, s) {
			return true
		}
	}

	return false
}

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

package codon

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"
)

type Error string

func (e Error) Error() string { return string(e) }

const (
	ErrUnknownCodon     = Error("unknown codon")
	ErrMissingColumn    = Error("codon table is missing a required column")
	ErrInvalidCodon     = Error("codon table contains an invalid codon")
	ErrDuplicateCodon   = Error("codon table contains a duplicate codon")
	ErrMissingAminoAcid = Error("codon table row has no amino acid")
	ErrEmptyTable       = Error("codon table has no rows")

	ColumnCodon     = "codon"
	ColumnAminoAcid = "aminoacid"

	dnaAlphabet = "ACGT"
)

// UnknownCodonError is returned by Translate when the codon is not in the
// table.
type UnknownCodonError struct {
	Codon Codon
}

func (e *UnknownCodonError) Error() string {
	return fmt.Sprintf("%s: %q", ErrUnknownCodon, string(e.Codon))
}

// Is lets errors.Is(err, ErrUnknownCodon) match.
func (e *UnknownCodonError) Is(target error) bool {
	return target == ErrUnknownCodon
}

// Table maps codons to the amino acids they encode. It can't be altered after
// creation, so is safe for concurrent use.
type Table struct {
	aas map[Codon]AminoAcid
}

// Load reads a CSV file with a header that includes "codon" and "aminoacid"
// columns and returns the Table it describes.
func Load(path string) (*Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("could not open codon table: %w", err)
	}

	defer f.Close()

	return Parse(f)
}

// Parse is like Load, but reads the CSV from the given reader.
func Parse(r io.Reader) (*Table, error) {
	cr := csv.NewReader(r)
	cr.TrimLeadingSpace = true
	cr.FieldsPerRecord = -1

	records, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("could not read codon table: %w", err)
	}

	if len(records) == 0 {
		return nil, ErrEmptyTable
	}

	return FromRows(records[0], records[1:])
}

// FromRows builds a Table from already tabulated data, such as a Google
// sheet. The header must include "codon" and "aminoacid" columns.
func FromRows(header []string, rows [][]string) (*Table, error) {
	codonCol, aaCol, err := columnIndexes(header)
	if err != nil {
		return nil, err
	}

	t := &Table{aas: make(map[Codon]AminoAcid, len(rows))}

	for _, row := range rows {
		if len(row) <= codonCol || len(row) <= aaCol {
			continue
		}

		c := Codon(strings.TrimSpace(row[codonCol])).normalise()
		if c == "" {
			continue
		}

		if !c.Valid() {
			return nil, fmt.Errorf("%w: %q", ErrInvalidCodon, row[codonCol])
		}

		if _, exists := t.aas[c]; exists {
			return nil, fmt.Errorf("%w: %s", ErrDuplicateCodon, c)
		}

		aa := AminoAcid(strings.TrimSpace(row[aaCol]))
		if aa == "" {
			return nil, fmt.Errorf("%w: %s", ErrMissingAminoAcid, c)
		}

		t.aas[c] = aa
	}

	if len(t.aas) == 0 {
		return nil, ErrEmptyTable
	}

	return t, nil
}

func columnIndexes(header []string) (int, int, error) {
	codonCol, aaCol := -1, -1

	for i, name := range header {
		switch strings.ToLower(strings.TrimSpace(name)) {
		case ColumnCodon:
			codonCol = i
		case ColumnAminoAcid:
			aaCol = i
		}
	}

	if codonCol == -1 {
		return 0, 0, fmt.Errorf("%w: %s", ErrMissingColumn, ColumnCodon)
	}

	if aaCol == -1 {
		return 0, 0, fmt.Errorf("%w: %s", ErrMissingColumn, ColumnAminoAcid)
	}

	return codonCol, aaCol, nil
}

// Translate returns the amino acid encoded by the given codon. Codons are
// matched case-insensitively, with U equivalent to T. If the codon is not in
// the table, an *UnknownCodonError is returned.
func (t *Table) Translate(c Codon) (AminoAcid, error) {
	aa, ok := t.aas[c.normalise()]
	if !ok {
		return "", &UnknownCodonError{Codon: c}
	}

	return aa, nil
}

// Len returns the number of codons in the table.
func (t *Table) Len() int {
	return len(t.aas)
}

// Codons returns all the codons in the table, sorted.
func (t *Table) Codons() []Codon {
	codons := make([]Codon, 0, len(t.aas))

	for c := range t.aas {
		codons = append(codons, c)
	}

	sortCodons(codons)

	return codons
}

// Missing returns the codons of the 64 codon DNA alphabet that are not in the
// table, sorted.
func (t *Table) Missing() []Codon {
	var missing []Codon

	for _, a := range dnaAlphabet {
		for _, b := range dnaAlphabet {
			for _, c := range dnaAlphabet {
				codon := Codon([]rune{a, b, c})
				if _, ok := t.aas[codon]; !ok {
					missing = append(missing, codon)
				}
			}
		}
	}

	sortCodons(missing)

	return missing
}

func sortCodons(codons []Codon) {
	sort.Slice(codons, func(i, j int) bool { return codons[i] < codons[j] })
}

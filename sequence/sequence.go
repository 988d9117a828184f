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

package sequence

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/klauspost/pgzip"
	"github.com/wtsi-hgi/codon-optimiser/codon"
)

const gzipSuffix = ".gz"

// Sequence is an ordered list of codons.
type Sequence []codon.Codon

// ReadFile reads the nucleotide text in the file at the given path and returns
// its codons, as per Read(). Files with a .gz suffix are decompressed.
func ReadFile(path string) (Sequence, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("could not open sequence file: %w", err)
	}

	defer f.Close()

	var r io.Reader = f

	if strings.HasSuffix(path, gzipSuffix) {
		zr, err := pgzip.NewReader(f)
		if err != nil {
			return nil, fmt.Errorf("could not decompress %s: %w", path, err)
		}

		defer zr.Close()

		r = zr
	}

	seq, err := Read(r)
	if err != nil {
		return nil, fmt.Errorf("could not read %s: %w", path, err)
	}

	return seq, nil
}

// Read reads raw nucleotide text from r, three symbols at a time, returning
// the codons in the order they appear.
//
// Reading stops at the first chunk that is empty after trimming whitespace
// (eg. a trailing newline). A trailing partial codon of 1 or 2 symbols is
// dropped. Symbols are not validated here; an invalid codon will only fail
// when translated.
func Read(r io.Reader) (Sequence, error) {
	br := bufio.NewReader(r)
	buf := make([]byte, codon.Length)

	var seq Sequence

	for {
		n, err := io.ReadFull(br, buf)
		if err != nil && !errors.Is(err, io.EOF) && !errors.Is(err, io.ErrUnexpectedEOF) {
			return nil, err
		}

		if n < codon.Length || strings.TrimSpace(string(buf)) == "" {
			return seq, nil
		}

		seq = append(seq, codon.Codon(buf))
	}
}

// Len returns the number of codons in the sequence.
func (s Sequence) Len() int {
	return len(s)
}

// Head returns up to the first n codons joined with spaces.
func (s Sequence) Head(n int) string {
	if n > len(s) {
		n = len(s)
	}

	return s[:n].String()
}

// String returns all the codons joined with spaces.
func (s Sequence) String() string {
	return s.Join(" ")
}

// Join returns all the codons joined with the given separator.
func (s Sequence) Join(sep string) string {
	strs := make([]string, len(s))

	for i, c := range s {
		strs[i] = string(c)
	}

	return strings.Join(strs, sep)
}

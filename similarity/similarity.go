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

package similarity

import (
	"fmt"

	"github.com/wtsi-hgi/codon-optimiser/sequence"
)

type Error string

func (e Error) Error() string { return string(e) }

const (
	ErrLengthMismatch = Error("sequences differ in length")
	ErrEmptySequence  = Error("cannot compare empty sequences")

	percent = 100
)

// LengthMismatchError is returned when asked to compare sequences of
// different lengths.
type LengthMismatchError struct {
	Attempt int
	Target  int
}

func (e *LengthMismatchError) Error() string {
	return fmt.Sprintf("%s: %d vs %d codons", ErrLengthMismatch, e.Attempt, e.Target)
}

// Is lets errors.Is(err, ErrLengthMismatch) match.
func (e *LengthMismatchError) Is(target error) bool {
	return target == ErrLengthMismatch
}

// Matches returns the number of positions at which attempt and target have
// identical codons. The sequences must be the same, non-zero, length.
func Matches(attempt, target sequence.Sequence) (int, error) {
	if len(attempt) != len(target) {
		return 0, &LengthMismatchError{Attempt: len(attempt), Target: len(target)}
	}

	if len(target) == 0 {
		return 0, ErrEmptySequence
	}

	count := 0

	for i := range target {
		if attempt[i] == target[i] {
			count++
		}
	}

	return count, nil
}

// Compare returns the percentage (0 to 100) of positions at which attempt and
// target have identical codons.
func Compare(attempt, target sequence.Sequence) (float64, error) {
	count, err := Matches(attempt, target)
	if err != nil {
		return 0, err
	}

	return percent * float64(count) / float64(len(target)), nil
}

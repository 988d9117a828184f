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

package report

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/fatih/color"
	"github.com/google/uuid"
	"github.com/wtsi-hgi/codon-optimiser/sequence"
	"github.com/wtsi-hgi/codon-optimiser/similarity"
)

const (
	// HeadLength is the number of codons of each sequence shown in a report.
	HeadLength = 10

	rule = "--------------------------------------------"
)

// Summary describes the outcome of optimising a virus towards a vaccine.
type Summary struct {
	ID                 string
	Started            time.Time
	Duration           time.Duration
	Codons             int
	VirusVsVaccine     float64
	OptimisedVsVaccine float64
	VirusHead          string
	OptimisedHead      string
	VaccineHead        string
}

// NewSummary scores the virus and optimised sequences against the vaccine and
// returns a Summary with a new random ID. started and duration should be the
// time optimisation began and how long it took.
func NewSummary(virus, optimised, vaccine sequence.Sequence,
	started time.Time, duration time.Duration,
) (*Summary, error) {
	virusScore, err := similarity.Compare(virus, vaccine)
	if err != nil {
		return nil, fmt.Errorf("virus vs vaccine: %w", err)
	}

	optimisedScore, err := similarity.Compare(optimised, vaccine)
	if err != nil {
		return nil, fmt.Errorf("optimised vs vaccine: %w", err)
	}

	return &Summary{
		ID:                 uuid.NewString(),
		Started:            started,
		Duration:           duration,
		Codons:             len(virus),
		VirusVsVaccine:     virusScore,
		OptimisedVsVaccine: optimisedScore,
		VirusHead:          virus.Head(HeadLength),
		OptimisedHead:      optimised.Head(HeadLength),
		VaccineHead:        vaccine.Head(HeadLength),
	}, nil
}

// Improvement is how many percentage points closer to the vaccine the
// optimised sequence is than the virus.
func (s *Summary) Improvement() float64 {
	return s.OptimisedVsVaccine - s.VirusVsVaccine
}

// Write prints a human readable report of the summary to w. With colour, the
// improvement is shown in green if positive and red if negative.
func (s *Summary) Write(w io.Writer, colour bool) error {
	heading := color.New(color.Bold)
	improvement := color.New()

	switch {
	case s.Improvement() > 0:
		improvement.Add(color.FgGreen)
	case s.Improvement() < 0:
		improvement.Add(color.FgRed)
	}

	if colour {
		heading.EnableColor()
		improvement.EnableColor()
	} else {
		heading.DisableColor()
		improvement.DisableColor()
	}

	var b strings.Builder

	section := func(title string) {
		fmt.Fprintln(&b, rule)
		heading.Fprintln(&b, title) //nolint:errcheck
		fmt.Fprintln(&b, rule)
	}

	section("Codon Optimisation Results:")
	fmt.Fprintf(&b, "- Original Virus Codons: %s ...\n", s.VirusHead)
	fmt.Fprintf(&b, "- Optimised Codons: %s ...\n", s.OptimisedHead)
	fmt.Fprintf(&b, "- Target Vaccine Codons: %s ...\n", s.VaccineHead)
	fmt.Fprintln(&b)
	section("Optimisation Statistics:")
	fmt.Fprintln(&b, "- Percentage of Identical Codons:")
	fmt.Fprintf(&b, "  - Original vs. Target Vaccine: %.2f%%\n", s.VirusVsVaccine)
	fmt.Fprintf(&b, "  - Optimised vs. Target Vaccine: %.2f%%\n", s.OptimisedVsVaccine)
	improvement.Fprintf(&b, "  - Optimisation compatibility: %.2f%%\n", s.Improvement()) //nolint:errcheck
	fmt.Fprintln(&b)
	fmt.Fprintf(&b, "- Total Codons: %d\n", s.Codons)
	fmt.Fprintf(&b, "- Optimisation Time: %.2f seconds\n", s.Duration.Seconds())

	_, err := io.WriteString(w, b.String())

	return err
}

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

import (
	"context"
	"runtime"

	"github.com/wtsi-hgi/codon-optimiser/codon"
	"github.com/wtsi-hgi/codon-optimiser/sequence"
	"golang.org/x/sync/errgroup"
)

// minChunk is the smallest number of codons worth handing to a goroutine.
const minChunk = 1024

// Options are options for creating a new Optimiser.
type Options struct {
	// Workers is the maximum number of goroutines Optimise() will use. 0 or
	// less means runtime.NumCPU().
	Workers int
}

// Optimiser rewrites codons by applying Rules() to each of them.
type Optimiser struct {
	t       Translator
	rules   []Rule
	workers int
}

// New returns an Optimiser that checks amino acids using the given Translator,
// which will typically be a *codon.Table.
func New(t Translator, opts Options) *Optimiser {
	workers := opts.Workers
	if workers <= 0 {
		workers = runtime.NumCPU()
	}

	return &Optimiser{
		t:       t,
		rules:   Rules(),
		workers: workers,
	}
}

// OptimiseCodon runs the given codon through every rule in order, returning
// the final rewritten codon. If any intermediate codon is not known to our
// Translator, an error is returned.
func (o *Optimiser) OptimiseCodon(c codon.Codon) (codon.Codon, error) {
	if !c.Valid() {
		return "", &codon.UnknownCodonError{Codon: c}
	}

	var err error

	for _, rule := range o.rules {
		c, err = rule(o.t, c)
		if err != nil {
			return "", err
		}
	}

	return c, nil
}

// Optimise returns a new Sequence with every codon of seq optimised with
// OptimiseCodon(). The result has the same length and order as seq.
//
// Codons are optimised concurrently in contiguous chunks. The first error
// encountered stops the whole batch, and no partial result is returned.
func (o *Optimiser) Optimise(ctx context.Context, seq sequence.Sequence) (sequence.Sequence, error) {
	out := make(sequence.Sequence, len(seq))

	g, ctx := errgroup.WithContext(ctx)

	for _, bounds := range o.chunks(len(seq)) {
		start, end := bounds[0], bounds[1]

		g.Go(func() error {
			return o.optimiseRange(ctx, seq, out, start, end)
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return out, nil
}

func (o *Optimiser) optimiseRange(ctx context.Context, in, out sequence.Sequence, start, end int) error {
	for i := start; i < end; i++ {
		if err := ctx.Err(); err != nil {
			return err
		}

		c, err := o.OptimiseCodon(in[i])
		if err != nil {
			return err
		}

		out[i] = c
	}

	return nil
}

// chunks splits n codons in to at most o.workers [start, end) ranges.
func (o *Optimiser) chunks(n int) [][2]int {
	if n == 0 {
		return nil
	}

	size := (n + o.workers - 1) / o.workers
	if size < minChunk {
		size = minChunk
	}

	ranges := make([][2]int, 0, (n+size-1)/size)

	for start := 0; start < n; start += size {
		end := start + size
		if end > n {
			end = n
		}

		ranges = append(ranges, [2]int{start, end})
	}

	return ranges
}

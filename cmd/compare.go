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

package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"github.com/wtsi-hgi/codon-optimiser/sequence"
	"github.com/wtsi-hgi/codon-optimiser/similarity"
)

// compareCmd represents the compare command.
var compareCmd = &cobra.Command{
	Use:   "compare <attempt> <target>",
	Short: "Compare two sequence files.",
	Long: `Compare two sequence files.

Prints the percentage of codons in the attempt file that are identical to the
codon at the same position in the target file. Both files must contain the same
number of codons. An example command line could look like this:
$ codon-optimiser compare optimised.txt vaccine.txt
`,
	Args: cobra.ExactArgs(2), //nolint:mnd
	Run: func(_ *cobra.Command, args []string) {
		err := writeComparison(os.Stdout, args[0], args[1])
		if err != nil {
			die(err)
		}
	},
}

func init() {
	RootCmd.AddCommand(compareCmd)
}

func formatPercent(score float64) string {
	return fmt.Sprintf("%.2f%%", score)
}

// writeComparison prints the similarity of the attempt and target sequence
// files.
func writeComparison(w io.Writer, attemptPath, targetPath string) error {
	attempt, err := sequence.ReadFile(attemptPath)
	if err != nil {
		return err
	}

	target, err := sequence.ReadFile(targetPath)
	if err != nil {
		return err
	}

	score, err := similarity.Compare(attempt, target)
	if err != nil {
		return err
	}

	_, err = io.WriteString(w, formatPercent(score)+"\n")

	return err
}

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
	"time"

	"github.com/spf13/cobra"
	"github.com/wtsi-hgi/codon-optimiser/config"
	"github.com/wtsi-hgi/codon-optimiser/report"
	"github.com/wtsi-hgi/codon-optimiser/runs"
)

// runGetter retrieves previously recorded run summaries.
type runGetter interface {
	Get(id string) (*report.Summary, error)
}

// runsCmd represents the runs command.
var runsCmd = &cobra.Command{
	Use:   "runs",
	Short: "Work with recorded runs.",
	Long: `Work with recorded runs.

Runs of the "optimise" sub-command given --record are stored in the MySQL
database given by the CODON_OPTIMISER_SQL_* environment variables. The
sub-commands of this command let you look at them.
`,
}

// runsShowCmd represents the runs show command.
var runsShowCmd = &cobra.Command{
	Use:   "show <run id>",
	Short: "Show a recorded run.",
	Long: `Show a recorded run.

Prints the stored summary of the run with the given id, as logged by
"optimise --record". An example command line could look like this:
$ codon-optimiser runs show 9b2f6c1e-8d4a-4e52-a1f3-0c7d5b6e2a91
`,
	Args: cobra.ExactArgs(1),
	Run: func(_ *cobra.Command, args []string) {
		c, err := config.FromEnv()
		if err != nil {
			die(err)
		}

		if !c.UseSQL() {
			die(ErrNoSQLConfig)
		}

		r, err := runs.New(runs.MySQLConfigFromConfig(c))
		if err != nil {
			die(err)
		}

		defer r.Close()

		err = showRun(os.Stdout, r, args[0])
		if err != nil {
			die(err)
		}
	},
}

func init() {
	RootCmd.AddCommand(runsCmd)
	runsCmd.AddCommand(runsShowCmd)
}

// showRun prints the recorded summary with the given id.
func showRun(w io.Writer, g runGetter, id string) error {
	s, err := g.Get(id)
	if err != nil {
		return err
	}

	_, err = fmt.Fprintf(w, "id: %s\nstarted: %s\ncodons: %d\n"+
		"virus vs vaccine: %s\noptimised vs vaccine: %s\nimprovement: %s\nduration: %s\n",
		s.ID,
		s.Started.UTC().Format(time.RFC3339),
		s.Codons,
		formatPercent(s.VirusVsVaccine),
		formatPercent(s.OptimisedVsVaccine),
		formatPercent(s.Improvement()),
		s.Duration,
	)

	return err
}

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
	"context"
	"os"
	"time"

	"github.com/spf13/cobra"
	"github.com/wtsi-hgi/codon-optimiser/codon"
	"github.com/wtsi-hgi/codon-optimiser/config"
	"github.com/wtsi-hgi/codon-optimiser/optimiser"
	"github.com/wtsi-hgi/codon-optimiser/report"
	"github.com/wtsi-hgi/codon-optimiser/runs"
	"github.com/wtsi-hgi/codon-optimiser/sequence"
	"github.com/wtsi-hgi/codon-optimiser/similarity"
)

const ErrNoSQLConfig = Error("--record needs all CODON_OPTIMISER_SQL_* set")

// options for this cmd.
var (
	optVirusPath   string
	optVaccinePath string
	optWorkers     int
	optRecord      bool
	optNoColour    bool
)

// optimiseCmd represents the optimise command.
var optimiseCmd = &cobra.Command{
	Use:   "optimise",
	Short: "Optimise virus codons towards a vaccine.",
	Long: `Optimise virus codons towards a vaccine.

The virus and vaccine files are plain text nucleotide sequences (optionally
gzipped, with a .gz suffix) that are read 3 symbols at a time. They must
contain the same number of codons.

Each virus codon is rewritten by these rules, in order:
 1. if it doesn't end in G or C, end it in C if that encodes the same amino
    acid, otherwise end it in G
 2. Leucine codons are ended in G
 3. Methionine codons are left alone
 4. Valine codons are ended in G
 5. stop codons have their 2nd symbol set to G, unless it is A

Then the percentage of codons identical to the vaccine is reported for both the
original virus and the optimised result.

Paths default to $CODON_OPTIMISER_VIRUS_FILE and $CODON_OPTIMISER_VACCINE_FILE,
or virus.txt and vaccine.txt in the current directory. For choosing the codon
table, see the help for the "table" sub-command.

With --record, a summary of the run is stored in the MySQL database given by
the CODON_OPTIMISER_SQL_* environment variables.
`,
	Run: func(cmd *cobra.Command, _ []string) {
		c, err := config.FromEnv()
		if err != nil {
			die(err)
		}

		applyOptimiseFlags(c)

		table, err := loadTable(c)
		if err != nil {
			die(err)
		}

		warnMissing(table)

		summary, err := optimiseFiles(cmd.Context(), c, table)
		if err != nil {
			die(err)
		}

		err = summary.Write(os.Stdout, !optNoColour)
		if err != nil {
			die(err)
		}

		if optRecord {
			err = recordSummary(c, summary)
			if err != nil {
				die(err)
			}

			infof("recorded run %s", summary.ID)
		}
	},
}

func init() {
	RootCmd.AddCommand(optimiseCmd)
	addTableFlags(optimiseCmd)

	optimiseCmd.Flags().StringVar(&optVirusPath, "virus", "",
		"virus sequence file (default $"+config.EnvVarVirus+" or "+config.DefaultVirusPath+")")
	optimiseCmd.Flags().StringVar(&optVaccinePath, "vaccine", "",
		"vaccine sequence file (default $"+config.EnvVarVaccine+" or "+config.DefaultVaccinePath+")")
	optimiseCmd.Flags().IntVarP(&optWorkers, "workers", "w", 0,
		"number of goroutines to optimise with (default $"+config.EnvVarWorkers+" or number of CPUs)")
	optimiseCmd.Flags().BoolVar(&optRecord, "record", false,
		"record a summary of the run in MySQL")
	optimiseCmd.Flags().BoolVar(&optNoColour, "no-color", false,
		"disable coloured output")
}

func applyOptimiseFlags(c *config.Config) {
	if optVirusPath != "" {
		c.VirusPath = optVirusPath
	}

	if optVaccinePath != "" {
		c.VaccinePath = optVaccinePath
	}

	if optWorkers > 0 {
		c.Workers = optWorkers
	}
}

// optimiseFiles reads the virus and vaccine files named in the config,
// optimises the virus using the given table and returns a scored summary.
func optimiseFiles(ctx context.Context, c *config.Config, table *codon.Table) (*report.Summary, error) {
	virus, err := sequence.ReadFile(c.VirusPath)
	if err != nil {
		return nil, err
	}

	vaccine, err := sequence.ReadFile(c.VaccinePath)
	if err != nil {
		return nil, err
	}

	debugf("read %d virus and %d vaccine codons", len(virus), len(vaccine))

	if len(virus) != len(vaccine) {
		return nil, &similarity.LengthMismatchError{Attempt: len(virus), Target: len(vaccine)}
	}

	o := optimiser.New(table, optimiser.Options{Workers: c.Workers})

	started := time.Now()

	optimised, err := o.Optimise(ctx, virus)
	if err != nil {
		return nil, err
	}

	duration := time.Since(started)

	debugf("optimised %d codons in %s", len(optimised), duration)

	return report.NewSummary(virus, optimised, vaccine, started, duration)
}

func recordSummary(c *config.Config, summary *report.Summary) error {
	if !c.UseSQL() {
		return ErrNoSQLConfig
	}

	r, err := runs.New(runs.MySQLConfigFromConfig(c))
	if err != nil {
		return err
	}

	defer r.Close()

	if err = r.EnsureSchema(); err != nil {
		return err
	}

	return r.Record(summary)
}

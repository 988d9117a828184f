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
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/wtsi-hgi/codon-optimiser/codon"
	"github.com/wtsi-hgi/codon-optimiser/config"
	"github.com/wtsi-hgi/codon-optimiser/sequence"
	"github.com/wtsi-hgi/codon-optimiser/sheets"
)

const (
	ErrNoSheetConfig    = Error("--sheet needs CODON_OPTIMISER_CREDENTIALS_FILE and CODON_OPTIMISER_SPREADSHEET_ID set")
	ErrConflictingTable = Error("only one of --table, --standard and --sheet may be given")

	tableFlag    = "table"
	standardFlag = "standard"
	sheetFlag    = "sheet"
)

// options for cmds that need a codon table.
var (
	tablePath     string
	tableStandard bool
	tableSheet    bool
)

// tableCmd represents the table command.
var tableCmd = &cobra.Command{
	Use:   "table",
	Short: "Show a codon table.",
	Long: `Show a codon table.

Prints each codon and the amino acid it encodes from the chosen codon table,
followed by any of the 64 DNA codons that the table lacks.

By default the table is read from the CSV file given by --table, or else
CODON_OPTIMISER_TABLE_FILE, or else ./codon-aminoacid.csv. The CSV must have
"codon" and "aminoacid" columns.

Instead, --standard uses the built-in standard genetic code, and --sheet reads
the table from the Google sheet given by CODON_OPTIMISER_SPREADSHEET_ID (tab
CODON_OPTIMISER_SHEET_NAME, default "codons"), using the service account
credentials in CODON_OPTIMISER_CREDENTIALS_FILE.
`,
	Run: func(_ *cobra.Command, _ []string) {
		c, err := config.FromEnv()
		if err != nil {
			die(err)
		}

		table, err := loadTable(c)
		if err != nil {
			die(err)
		}

		err = writeTable(os.Stdout, table)
		if err != nil {
			die(err)
		}
	},
}

func init() {
	RootCmd.AddCommand(tableCmd)
	addTableFlags(tableCmd)
}

func addTableFlags(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&tablePath, tableFlag, "t", "",
		"codon table CSV file (default $"+config.EnvVarTable+" or "+config.DefaultTablePath+")")
	cmd.Flags().BoolVar(&tableStandard, standardFlag, false,
		"use the built-in standard genetic code")
	cmd.Flags().BoolVar(&tableSheet, sheetFlag, false,
		"read the codon table from a Google sheet")
}

// loadTable returns the codon table chosen by the table flags and config.
func loadTable(c *config.Config) (*codon.Table, error) {
	if countTrue(tablePath != "", tableStandard, tableSheet) > 1 {
		return nil, ErrConflictingTable
	}

	switch {
	case tableStandard:
		debugf("using the standard codon table")

		return codon.Standard(), nil
	case tableSheet:
		return loadSheetTable(c)
	}

	path := c.TablePath
	if tablePath != "" {
		path = tablePath
	}

	debugf("loading codon table from %s", path)

	return codon.Load(path)
}

func loadSheetTable(c *config.Config) (*codon.Table, error) {
	if !c.UseSheet() {
		return nil, ErrNoSheetConfig
	}

	sc, err := sheets.ServiceCredentialsFromConfig(c)
	if err != nil {
		return nil, err
	}

	s, err := sheets.New(sc)
	if err != nil {
		return nil, err
	}

	debugf("loading codon table from sheet %s of %s", c.SheetName, c.SheetID)

	return s.CodonTable(c.SheetID, c.SheetName)
}

func countTrue(bools ...bool) int {
	n := 0

	for _, b := range bools {
		if b {
			n++
		}
	}

	return n
}

// warnMissing logs a warning if the table doesn't cover every DNA codon.
func warnMissing(table *codon.Table) {
	missing := table.Missing()
	if len(missing) == 0 {
		return
	}

	warnf("codon table lacks %d codons: %s", len(missing), sequence.Sequence(missing).Join(","))
}

func writeTable(w io.Writer, table *codon.Table) error {
	var b strings.Builder

	for _, cd := range table.Codons() {
		aa, err := table.Translate(cd)
		if err != nil {
			return err
		}

		b.WriteString(string(cd) + "\t" + string(aa) + "\n")
	}

	if missing := table.Missing(); len(missing) > 0 {
		b.WriteString("missing: " + sequence.Sequence(missing).Join(",") + "\n")
	}

	_, err := io.WriteString(w, b.String())

	return err
}

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

package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

const (
	EnvVarTable   = "CODON_OPTIMISER_TABLE_FILE"
	EnvVarVirus   = "CODON_OPTIMISER_VIRUS_FILE"
	EnvVarVaccine = "CODON_OPTIMISER_VACCINE_FILE"
	EnvVarWorkers = "CODON_OPTIMISER_WORKERS"
	EnvVarCreds   = "CODON_OPTIMISER_CREDENTIALS_FILE"
	EnvVarSheet   = "CODON_OPTIMISER_SPREADSHEET_ID"
	EnvVarTab     = "CODON_OPTIMISER_SHEET_NAME"
	EnvVarUser    = "CODON_OPTIMISER_SQL_USER"
	EnvVarPass    = "CODON_OPTIMISER_SQL_PASS"
	EnvVarHost    = "CODON_OPTIMISER_SQL_HOST"
	EnvVarPort    = "CODON_OPTIMISER_SQL_PORT"
	EnvVarDBName  = "CODON_OPTIMISER_SQL_DB"

	DefaultTablePath   = "codon-aminoacid.csv"
	DefaultVirusPath   = "virus.txt"
	DefaultVaccinePath = "vaccine.txt"
	DefaultSheetName   = "codons"
)

type Error string

func (e Error) Error() string { return string(e) }

const (
	ErrInvalidWorkers  = Error("workers must be an integer")
	ErrIncompleteSheet = Error("both credentials file and spreadsheet id are required for sheet access")
	ErrIncompleteSQL   = Error("all of the SQL user, pass, host, port and db are required for SQL access")
)

type Config struct {
	TablePath       string
	VirusPath       string
	VaccinePath     string
	Workers         int
	CredentialsPath string
	SheetID         string
	SheetName       string
	User            string
	Password        string
	Host            string
	Port            string
	DBName          string
}

// FromEnv returns a new Config with properies populated from environment
// variables CODON_OPTIMISER_*, where * is amongst: TABLE_FILE, VIRUS_FILE,
// VACCINE_FILE, WORKERS, CREDENTIALS_FILE, SPREADSHEET_ID, SHEET_NAME,
// SQL_USER, SQL_PASS, SQL_HOST, SQL_PORT and SQL_DB.
//
// The file paths and sheet name have defaults. The credentials file and
// spreadsheet id must be set together, as must all the SQL_* variables, or
// an error is returned.
//
// If these environment variables are defined in a file called .env (and not
// previously set in an environment variable), they will be automatically
// loaded.
//
// Optionally supply a directory to look for the .env file in.
func FromEnv(dir ...string) (*Config, error) {
	var parentDir string
	if len(dir) == 1 {
		parentDir = dir[0] + string(os.PathSeparator)
	}

	godotenv.Load(parentDir + ".env") //nolint:errcheck

	workers, err := envInt(EnvVarWorkers)
	if err != nil {
		return nil, err
	}

	c := &Config{
		TablePath:       envOr(EnvVarTable, DefaultTablePath),
		VirusPath:       envOr(EnvVarVirus, DefaultVirusPath),
		VaccinePath:     envOr(EnvVarVaccine, DefaultVaccinePath),
		Workers:         workers,
		CredentialsPath: os.Getenv(EnvVarCreds),
		SheetID:         os.Getenv(EnvVarSheet),
		SheetName:       envOr(EnvVarTab, DefaultSheetName),
		User:            os.Getenv(EnvVarUser),
		Password:        os.Getenv(EnvVarPass),
		Host:            os.Getenv(EnvVarHost),
		Port:            os.Getenv(EnvVarPort),
		DBName:          os.Getenv(EnvVarDBName),
	}

	if (c.CredentialsPath == "") != (c.SheetID == "") {
		return nil, ErrIncompleteSheet
	}

	if c.anySQL() && !c.UseSQL() {
		return nil, ErrIncompleteSQL
	}

	return c, nil
}

func envOr(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}

	return def
}

func envInt(key string) (int, error) {
	v := os.Getenv(key)
	if v == "" {
		return 0, nil
	}

	i, err := strconv.Atoi(v)
	if err != nil {
		return 0, ErrInvalidWorkers
	}

	return i, nil
}

// UseSheet returns true if the codon table should be read from a Google
// sheet.
func (c *Config) UseSheet() bool {
	return c.CredentialsPath != "" && c.SheetID != ""
}

// UseSQL returns true if all the settings needed to connect to a SQL database
// are present.
func (c *Config) UseSQL() bool {
	return c.User != "" && c.Password != "" && c.Host != "" && c.Port != "" && c.DBName != ""
}

func (c *Config) anySQL() bool {
	return c.User != "" || c.Password != "" || c.Host != "" || c.Port != "" || c.DBName != ""
}

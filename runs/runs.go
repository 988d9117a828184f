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

package runs

import (
	"database/sql"
	"net"
	"time"

	"github.com/go-sql-driver/mysql"
	"github.com/wtsi-hgi/codon-optimiser/config"
	"github.com/wtsi-hgi/codon-optimiser/report"
)

const (
	sqlDriverName   = "mysql"
	sqlNetwork      = "tcp"
	connMaxLifetime = time.Minute * 3
	maxOpenConns    = 10
	maxIdleConns    = 10
)

// Recorder is a connection to a MySQL database that optimisation run
// summaries can be recorded in.
type Recorder struct {
	pool *sql.DB
}

// MySQLConfigFromConfig converts the SQL settings of our config to a
// mysql.Config suitable for New().
func MySQLConfigFromConfig(c *config.Config) *mysql.Config {
	mc := mysql.NewConfig()
	mc.User = c.User
	mc.Passwd = c.Password
	mc.Net = sqlNetwork
	mc.Addr = net.JoinHostPort(c.Host, c.Port)
	mc.DBName = c.DBName
	mc.ParseTime = true

	return mc
}

// New returns a new Recorder using mysql.Config that you can get from
// MySQLConfigFromConfig(config.FromEnv()).
func New(c *mysql.Config) (*Recorder, error) {
	pool, err := sql.Open(sqlDriverName, c.FormatDSN())
	if err != nil {
		return nil, err
	}

	pool.SetConnMaxLifetime(connMaxLifetime)
	pool.SetMaxOpenConns(maxOpenConns)
	pool.SetMaxIdleConns(maxIdleConns)

	if err = pool.Ping(); err != nil {
		pool.Close()

		return nil, err
	}

	return &Recorder{pool: pool}, nil
}

const createRuns = `
CREATE TABLE IF NOT EXISTS optimisation_runs (
  id CHAR(36) NOT NULL PRIMARY KEY,
  started DATETIME(6) NOT NULL,
  duration_ns BIGINT NOT NULL,
  codons INT NOT NULL,
  virus_vs_vaccine DOUBLE NOT NULL,
  optimised_vs_vaccine DOUBLE NOT NULL
)
`

// EnsureSchema creates the optimisation_runs table if it doesn't already
// exist.
func (r *Recorder) EnsureSchema() error {
	_, err := r.pool.Exec(createRuns)

	return err
}

const insertRun = `
INSERT INTO optimisation_runs
(id, started, duration_ns, codons, virus_vs_vaccine, optimised_vs_vaccine)
VALUES (?, ?, ?, ?, ?, ?)
`

// Record stores the given summary.
func (r *Recorder) Record(s *report.Summary) error {
	_, err := r.pool.Exec(insertRun,
		s.ID,
		s.Started.UTC(),
		s.Duration.Nanoseconds(),
		s.Codons,
		s.VirusVsVaccine,
		s.OptimisedVsVaccine,
	)

	return err
}

const getRun = `
SELECT id, started, duration_ns, codons, virus_vs_vaccine, optimised_vs_vaccine
FROM optimisation_runs
WHERE id = ?
`

// Get returns the previously Record()ed summary with the given ID. The
// sequence heads are not stored, so will be blank.
func (r *Recorder) Get(id string) (*report.Summary, error) {
	var (
		s        report.Summary
		duration int64
	)

	err := r.pool.QueryRow(getRun, id).Scan(
		&s.ID,
		&s.Started,
		&duration,
		&s.Codons,
		&s.VirusVsVaccine,
		&s.OptimisedVsVaccine,
	)
	if err != nil {
		return nil, err
	}

	s.Duration = time.Duration(duration)

	return &s, nil
}

// Close closes the connection to the database.
func (r *Recorder) Close() error {
	return r.pool.Close()
}

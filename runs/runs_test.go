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
	"errors"
	"testing"
	"time"

	"github.com/go-sql-driver/mysql"
	. "github.com/smartystreets/goconvey/convey"
	"github.com/wtsi-hgi/codon-optimiser/config"
	"github.com/wtsi-hgi/codon-optimiser/report"
	"github.com/wtsi-hgi/codon-optimiser/sequence"
)

func TestMySQLConfig(t *testing.T) {
	Convey("MySQLConfigFromConfig converts our config to a mysql.Config", t, func() {
		mc := MySQLConfigFromConfig(&config.Config{
			User:     "user",
			Password: "pass",
			Host:     "host",
			Port:     "1234",
			DBName:   "db",
		})

		So(mc.User, ShouldEqual, "user")
		So(mc.Passwd, ShouldEqual, "pass")
		So(mc.Net, ShouldEqual, "tcp")
		So(mc.Addr, ShouldEqual, "host:1234")
		So(mc.DBName, ShouldEqual, "db")
		So(mc.FormatDSN(), ShouldStartWith, "user:pass@tcp(host:1234)/db")
	})
}

func TestNewUnreachable(t *testing.T) {
	Convey("New fails without returning a Recorder when the server can't be reached", t, func() {
		mc := mysql.NewConfig()
		mc.Net = "tcp"
		mc.Addr = "127.0.0.1:1"
		mc.Timeout = 100 * time.Millisecond

		r, err := New(mc)
		So(err, ShouldNotBeNil)
		So(r, ShouldBeNil)
	})
}

func TestRecorder(t *testing.T) {
	c, err := config.FromEnv("..")
	if err != nil || !c.UseSQL() {
		SkipConvey("skipping runs tests without CODON_OPTIMISER_SQL_* set", t, func() {})

		return
	}

	Convey("Given a working Recorder", t, func() {
		r, err := New(MySQLConfigFromConfig(c))
		So(err, ShouldBeNil)
		So(r, ShouldNotBeNil)

		defer r.Close()

		So(r.EnsureSchema(), ShouldBeNil)

		Convey("You can record a summary and get it back", func() {
			seq := sequence.Sequence{"ATG", "TTG"}

			s, err := report.NewSummary(seq, seq, seq, time.Now().Truncate(time.Second), time.Second)
			So(err, ShouldBeNil)

			err = r.Record(s)
			So(err, ShouldBeNil)

			got, err := r.Get(s.ID)
			So(err, ShouldBeNil)
			So(got.ID, ShouldEqual, s.ID)
			So(got.Started.Equal(s.Started), ShouldBeTrue)
			So(got.Duration, ShouldEqual, time.Second)
			So(got.Codons, ShouldEqual, 2)
			So(got.OptimisedVsVaccine, ShouldEqual, 100.0)

			_, err = r.Get("invalid")
			So(errors.Is(err, sql.ErrNoRows), ShouldBeTrue)
		})
	})
}

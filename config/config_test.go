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
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

const filePerm = 0644

var allEnvVars = []string{
	EnvVarTable, EnvVarVirus, EnvVarVaccine, EnvVarWorkers, EnvVarCreds, EnvVarSheet,
	EnvVarTab, EnvVarUser, EnvVarPass, EnvVarHost, EnvVarPort, EnvVarDBName,
}

func TestConfig(t *testing.T) {
	for _, key := range allEnvVars {
		t.Setenv(key, "")
		os.Unsetenv(key)
	}

	Convey("With no env vars set, you get a default config", t, func() {
		config, err := FromEnv()
		So(err, ShouldBeNil)
		So(config.TablePath, ShouldEqual, DefaultTablePath)
		So(config.VirusPath, ShouldEqual, DefaultVirusPath)
		So(config.VaccinePath, ShouldEqual, DefaultVaccinePath)
		So(config.SheetName, ShouldEqual, DefaultSheetName)
		So(config.Workers, ShouldEqual, 0)
		So(config.UseSheet(), ShouldBeFalse)
		So(config.UseSQL(), ShouldBeFalse)
	})

	Convey("Given a full set of env vars, you can make a config", t, func() {
		os.Setenv(EnvVarTable, "/table.csv")
		os.Setenv(EnvVarVirus, "/virus.txt.gz")
		os.Setenv(EnvVarVaccine, "/vaccine.txt")
		os.Setenv(EnvVarWorkers, "4")
		os.Setenv(EnvVarCreds, "/creds.json")
		os.Setenv(EnvVarSheet, "sheetid")
		os.Setenv(EnvVarTab, "tab")
		os.Setenv(EnvVarUser, "user")
		os.Setenv(EnvVarPass, "pass")
		os.Setenv(EnvVarHost, "host")
		os.Setenv(EnvVarPort, "1234")
		os.Setenv(EnvVarDBName, "db")

		defer func() {
			for _, key := range allEnvVars {
				os.Unsetenv(key)
			}
		}()

		config, err := FromEnv()
		So(err, ShouldBeNil)
		So(config, ShouldResemble, &Config{
			TablePath:       "/table.csv",
			VirusPath:       "/virus.txt.gz",
			VaccinePath:     "/vaccine.txt",
			Workers:         4,
			CredentialsPath: "/creds.json",
			SheetID:         "sheetid",
			SheetName:       "tab",
			User:            "user",
			Password:        "pass",
			Host:            "host",
			Port:            "1234",
			DBName:          "db",
		})
		So(config.UseSheet(), ShouldBeTrue)
		So(config.UseSQL(), ShouldBeTrue)

		Convey("Without a full set of SQL env vars, FromEnv fails", func() {
			os.Setenv(EnvVarUser, "")
			config, err := FromEnv()
			So(err, ShouldEqual, ErrIncompleteSQL)
			So(config, ShouldBeNil)
		})

		Convey("Without both sheet env vars, FromEnv fails", func() {
			os.Setenv(EnvVarCreds, "")
			config, err := FromEnv()
			So(err, ShouldEqual, ErrIncompleteSheet)
			So(config, ShouldBeNil)
		})

		Convey("A non-integer worker count fails", func() {
			os.Setenv(EnvVarWorkers, "four")
			config, err := FromEnv()
			So(err, ShouldEqual, ErrInvalidWorkers)
			So(config, ShouldBeNil)
		})
	})

	Convey("You can load values from an .env file", t, func() {
		os.Setenv(EnvVarVirus, "/env/virus.txt")

		defer func() {
			for _, key := range allEnvVars {
				os.Unsetenv(key)
			}
		}()

		dir := t.TempDir()

		err := os.WriteFile(dir+string(os.PathSeparator)+".env",
			[]byte(EnvVarVirus+"=/file/virus.txt\n"+EnvVarVaccine+"=/file/vaccine.txt"), filePerm)
		So(err, ShouldBeNil)

		config, err := FromEnv(dir)
		So(err, ShouldBeNil)
		So(config.VirusPath, ShouldEqual, "/env/virus.txt")
		So(config.VaccinePath, ShouldEqual, "/file/vaccine.txt")
		So(config.TablePath, ShouldEqual, DefaultTablePath)
	})
}

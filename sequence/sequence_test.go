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

package sequence

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/klauspost/pgzip"
	. "github.com/smartystreets/goconvey/convey"
	"github.com/wtsi-hgi/codon-optimiser/codon"
)

const (
	filePerm = 0644
	errRead  = testError("read failure")
)

type testError string

func (e testError) Error() string { return string(e) }

type failingReader struct{}

func (failingReader) Read([]byte) (int, error) {
	return 0, errRead
}

func TestRead(t *testing.T) {
	Convey("Read splits text in to codons", t, func() {
		seq, err := Read(strings.NewReader("ATGCCC"))
		So(err, ShouldBeNil)
		So(seq, ShouldResemble, Sequence{"ATG", "CCC"})
		So(seq.Len(), ShouldEqual, 2)

		Convey("Trailing partial codons are dropped", func() {
			seq, err := Read(strings.NewReader("ATGCC"))
			So(err, ShouldBeNil)
			So(seq, ShouldResemble, Sequence{"ATG"})

			seq, err = Read(strings.NewReader("ATGC"))
			So(err, ShouldBeNil)
			So(seq, ShouldResemble, Sequence{"ATG"})
		})

		Convey("Reading stops at a whitespace-only chunk", func() {
			seq, err := Read(strings.NewReader("ATGCCC\n"))
			So(err, ShouldBeNil)
			So(seq, ShouldResemble, Sequence{"ATG", "CCC"})

			seq, err = Read(strings.NewReader("ATG   CCC"))
			So(err, ShouldBeNil)
			So(seq, ShouldResemble, Sequence{"ATG"})
		})

		Convey("Symbols are not validated", func() {
			seq, err := Read(strings.NewReader("XYZatg"))
			So(err, ShouldBeNil)
			So(seq, ShouldResemble, Sequence{"XYZ", "atg"})
		})

		Convey("Empty input gives an empty sequence", func() {
			seq, err := Read(strings.NewReader(""))
			So(err, ShouldBeNil)
			So(seq, ShouldBeEmpty)
		})

		Convey("Read errors are returned", func() {
			_, err := Read(failingReader{})
			So(errors.Is(err, errRead), ShouldBeTrue)
		})
	})

	Convey("Head and String join codons with spaces", t, func() {
		seq := Sequence{"ATG", "CCC", "GGG"}
		So(seq.String(), ShouldEqual, "ATG CCC GGG")
		So(seq.Head(2), ShouldEqual, "ATG CCC")
		So(seq.Head(10), ShouldEqual, "ATG CCC GGG")
		So(Sequence{}.Head(3), ShouldEqual, "")
		So(seq.Join(","), ShouldEqual, "ATG,CCC,GGG")
		So(Sequence{}.Join(","), ShouldEqual, "")
	})
}

func TestReadFile(t *testing.T) {
	Convey("Given sequence files", t, func() {
		dir := t.TempDir()

		plain := filepath.Join(dir, "virus.txt")
		err := os.WriteFile(plain, []byte("TTAGTACCC\n"), filePerm)
		So(err, ShouldBeNil)

		zipped := filepath.Join(dir, "virus.txt.gz")
		f, err := os.Create(zipped)
		So(err, ShouldBeNil)

		zw := pgzip.NewWriter(f)
		_, err = zw.Write([]byte("TTAGTACCC\n"))
		So(err, ShouldBeNil)
		So(zw.Close(), ShouldBeNil)
		So(f.Close(), ShouldBeNil)

		want := Sequence{codon.Codon("TTA"), codon.Codon("GTA"), codon.Codon("CCC")}

		Convey("ReadFile reads plain text files", func() {
			seq, err := ReadFile(plain)
			So(err, ShouldBeNil)
			So(seq, ShouldResemble, want)
		})

		Convey("ReadFile decompresses .gz files", func() {
			seq, err := ReadFile(zipped)
			So(err, ShouldBeNil)
			So(seq, ShouldResemble, want)
		})

		Convey("ReadFile fails on a .gz file that isn't gzipped", func() {
			bad := filepath.Join(dir, "bad.txt.gz")
			err := os.WriteFile(bad, []byte("TTA"), filePerm)
			So(err, ShouldBeNil)

			_, err = ReadFile(bad)
			So(err, ShouldNotBeNil)
		})

		Convey("ReadFile fails on missing files", func() {
			_, err := ReadFile(filepath.Join(dir, "missing.txt"))
			So(err, ShouldNotBeNil)

			var pathErr *os.PathError
			So(errors.As(err, &pathErr), ShouldBeTrue)
		})
	})
}

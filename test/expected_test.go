// This file is part of GopherNES.
//
// GopherNES is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// GopherNES is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with GopherNES.  If not, see <https://www.gnu.org/licenses/>.

package test_test

import (
	"errors"
	"testing"

	"github.com/gophernes/gophernes/test"
)

func TestExpectFailure(t *testing.T) {
	test.ExpectFailure(t, false)
	test.ExpectFailure(t, errors.New("test"))
}

func TestExpectSuccess(t *testing.T) {
	test.ExpectSuccess(t, true)
	var err error
	test.ExpectSuccess(t, err)
	test.ExpectSuccess(t, nil)
}

func TestExpectEquality(t *testing.T) {
	test.ExpectEquality(t, 10, 5+5)
	test.ExpectEquality(t, true, !false)
	test.ExpectEquality(t, uint16(0x8000), 0x8000)
}

func TestExpectInequality(t *testing.T) {
	test.ExpectInequality(t, 11, 5+5)
	test.ExpectInequality(t, true, false)
}

func TestWriter(t *testing.T) {
	tw := &test.Writer{}
	test.ExpectSuccess(t, tw.Compare(""))
	tw.Write([]byte("foo"))
	test.ExpectSuccess(t, tw.Compare("foo"))
	tw.Clear()
	test.ExpectEquality(t, tw.String(), "")
}

func TestCappedWriter(t *testing.T) {
	_, err := test.NewCappedWriter(0)
	test.ExpectFailure(t, err)

	cw, err := test.NewCappedWriter(4)
	test.DemandSuccess(t, err)

	n, _ := cw.Write([]byte("ab"))
	test.ExpectEquality(t, n, 2)
	n, _ = cw.Write([]byte("cdef"))
	test.ExpectEquality(t, n, 2)
	test.ExpectEquality(t, cw.String(), "abcd")

	cw.Reset()
	test.ExpectEquality(t, cw.String(), "")
}

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

package logger_test

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/gophernes/gophernes/logger"
	"github.com/gophernes/gophernes/test"
)

func TestLogger(t *testing.T) {
	log := logger.NewLogger(100)
	w := &strings.Builder{}

	log.Write(w)
	test.ExpectEquality(t, w.String(), "")

	log.Log(logger.Allow, "test", "this is a test")
	log.Write(w)
	test.ExpectEquality(t, w.String(), "test: this is a test\n")

	w.Reset()

	log.Log(logger.Allow, "test2", "this is another test")
	log.Write(w)
	test.ExpectEquality(t, w.String(), "test: this is a test\ntest2: this is another test\n")

	// asking for too many entries in a Tail() should be okay
	w.Reset()
	log.Tail(w, 100)
	test.ExpectEquality(t, w.String(), "test: this is a test\ntest2: this is another test\n")

	// asking for exactly the correct number of entries is okay
	w.Reset()
	log.Tail(w, 2)
	test.ExpectEquality(t, w.String(), "test: this is a test\ntest2: this is another test\n")

	// asking for fewer entries is okay too
	w.Reset()
	log.Tail(w, 1)
	test.ExpectEquality(t, w.String(), "test2: this is another test\n")

	// and no entries
	w.Reset()
	log.Tail(w, 0)
	test.ExpectEquality(t, w.String(), "")
}

func TestRepeatedEntries(t *testing.T) {
	log := logger.NewLogger(100)
	w := &strings.Builder{}

	log.Log(logger.Allow, "nes", "frame fault")
	log.Log(logger.Allow, "nes", "frame fault")
	log.Log(logger.Allow, "nes", "frame fault")
	log.Write(w)
	test.ExpectEquality(t, w.String(), "nes: frame fault (repeat x3)\n")
	test.ExpectEquality(t, len(log.Entries()), 1)
}

func TestMaximumEntries(t *testing.T) {
	log := logger.NewLogger(3)
	for i := 0; i < 5; i++ {
		log.Logf(logger.Allow, "test", "entry %d", i)
	}

	e := log.Entries()
	test.DemandEquality(t, len(e), 3)
	test.ExpectEquality(t, e[0].Detail, "entry 2")
	test.ExpectEquality(t, e[2].Detail, "entry 4")
}

type stringer struct{}

func (stringer) String() string {
	return "stringer detail"
}

func TestDetailTypes(t *testing.T) {
	log := logger.NewLogger(10)
	w := &strings.Builder{}

	log.Log(logger.Allow, "test", errors.New("error detail"))
	log.Log(logger.Allow, "test", stringer{})
	log.Log(logger.Allow, "test", 10)
	log.Write(w)
	test.ExpectEquality(t, w.String(), "test: error detail\ntest: stringer detail\ntest: 10\n")
}

type prohibitLogging struct {
	allow bool
}

func (p prohibitLogging) AllowLogging() bool {
	return p.allow
}

func TestPermissions(t *testing.T) {
	log := logger.NewLogger(10)
	w := &strings.Builder{}

	log.Log(prohibitLogging{allow: false}, "test", "not logged")
	log.Log(prohibitLogging{allow: true}, "test", "logged")
	log.Write(w)
	test.ExpectEquality(t, w.String(), "test: logged\n")
}

func TestEcho(t *testing.T) {
	log := logger.NewLogger(10)
	w := &strings.Builder{}

	log.SetEcho(w)
	log.Log(logger.Allow, "test", "echoed")
	test.ExpectEquality(t, w.String(), "test: echoed\n")

	log.SetEcho(nil)
	log.Log(logger.Allow, "test", "not echoed")
	test.ExpectEquality(t, w.String(), "test: echoed\n")
}

func TestColorizer(t *testing.T) {
	w := &strings.Builder{}
	c := logger.NewColorizer(w)

	n, err := fmt.Fprint(c, "test: detail\n")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, n, len("test: detail\n"))
	test.ExpectEquality(t, w.String(), "\033[2mtest:\033[0m detail\n")
}

func TestCentralLogger(t *testing.T) {
	logger.Clear()
	defer logger.Clear()

	w := &strings.Builder{}
	logger.Log(logger.Allow, "central", "entry")
	logger.Tail(w, 1)
	test.ExpectEquality(t, w.String(), "central: entry\n")
}

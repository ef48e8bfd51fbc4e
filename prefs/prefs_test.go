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

package prefs_test

import (
	"testing"

	"github.com/gophernes/gophernes/curated"
	"github.com/gophernes/gophernes/prefs"
	"github.com/gophernes/gophernes/test"
)

func TestBool(t *testing.T) {
	var v prefs.Bool
	test.ExpectEquality(t, v.Get().(bool), false)

	test.ExpectSuccess(t, v.Set(true))
	test.ExpectEquality(t, v.Get().(bool), true)
	test.ExpectEquality(t, v.String(), "true")

	test.ExpectSuccess(t, v.Set("FALSE"))
	test.ExpectEquality(t, v.Get().(bool), false)

	test.ExpectSuccess(t, v.Set("true"))
	test.ExpectSuccess(t, v.Reset())
	test.ExpectEquality(t, v.Get().(bool), false)

	err := v.Set(10)
	test.ExpectFailure(t, err)
	test.ExpectSuccess(t, curated.Is(err, prefs.CannotConvert))
}

func TestInt(t *testing.T) {
	var v prefs.Int
	test.ExpectEquality(t, v.Get().(int), 0)

	test.ExpectSuccess(t, v.Set(60))
	test.ExpectEquality(t, v.Get().(int), 60)

	test.ExpectSuccess(t, v.Set(" 120"))
	test.ExpectEquality(t, v.String(), "120")

	test.ExpectFailure(t, v.Set("ten"))
	test.ExpectFailure(t, v.Set(true))
	test.ExpectEquality(t, v.Get().(int), 120)
}

func TestHookPost(t *testing.T) {
	var v prefs.Bool
	var seen bool
	v.SetHookPost(func(value prefs.Value) error {
		seen = value.(bool)
		return nil
	})
	test.ExpectSuccess(t, v.Set(true))
	test.ExpectEquality(t, seen, true)
}

func TestGroup(t *testing.T) {
	var a prefs.Bool
	var b prefs.Int

	g := prefs.NewGroup()
	test.ExpectSuccess(t, g.Add("test.a", &a))
	test.ExpectSuccess(t, g.Add("test.b", &b))

	err := g.Add("test.a", &a)
	test.ExpectSuccess(t, curated.Is(err, prefs.DuplicateKey))

	test.ExpectSuccess(t, g.Set("test.b", 5))
	v, err := g.Get("test.b")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, v.(int), 5)

	_, err = g.Get("test.c")
	test.ExpectSuccess(t, curated.Is(err, prefs.UnknownKey))

	test.ExpectEquality(t, g.String(), "test.a :: false\ntest.b :: 5\n")
}

func TestGroupCommandLine(t *testing.T) {
	prefs.PushCommandLineStack("test.a::true; test.unknown::1")
	defer prefs.PopCommandLineStack()

	var a prefs.Bool
	g := prefs.NewGroup()
	test.ExpectSuccess(t, g.Add("test.a", &a))
	test.ExpectEquality(t, a.Get().(bool), true)

	var b prefs.Int
	prefs.PushCommandLineStack("test.b::not a number")
	err := g.Add("test.b", &b)
	test.ExpectFailure(t, err)
	test.ExpectSuccess(t, curated.Has(err, prefs.CannotConvert))
	test.ExpectEquality(t, prefs.PopCommandLineStack(), "")
}

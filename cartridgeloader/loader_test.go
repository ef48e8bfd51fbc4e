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

package cartridgeloader_test

import (
	"crypto/sha1"
	"errors"
	"fmt"
	"io/fs"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/gophernes/gophernes/cartridgeloader"
	"github.com/gophernes/gophernes/curated"
	"github.com/gophernes/gophernes/test"
)

func TestLoadFile(t *testing.T) {
	data := []byte{0x4e, 0x45, 0x53, 0x1a}
	fn := filepath.Join(t.TempDir(), "test.nes")
	test.DemandSuccess(t, os.WriteFile(fn, data, 0o600))

	cl := cartridgeloader.NewLoader(fn)
	test.ExpectFailure(t, cl.HasLoaded())
	test.ExpectSuccess(t, cl.HasExtension())
	test.ExpectEquality(t, cl.ShortName(), "test")

	test.DemandSuccess(t, cl.Load())
	test.ExpectSuccess(t, cl.HasLoaded())
	test.ExpectEquality(t, string(cl.Data), string(data))
	test.ExpectEquality(t, cl.Hash, fmt.Sprintf("%x", sha1.Sum(data)))
}

func TestLoadMissingFile(t *testing.T) {
	cl := cartridgeloader.NewLoader(filepath.Join(t.TempDir(), "missing.nes"))
	err := cl.Load()
	test.ExpectSuccess(t, curated.Is(err, cartridgeloader.LoadFailed))
	test.ExpectSuccess(t, errors.Is(err, fs.ErrNotExist))
	test.ExpectFailure(t, cl.HasLoaded())
}

func TestUnexpectedHash(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "test.nes")
	test.DemandSuccess(t, os.WriteFile(fn, []byte{0x01}, 0o600))

	cl := cartridgeloader.NewLoader(fn)
	cl.Hash = "not a hash"
	err := cl.Load()
	test.ExpectSuccess(t, curated.Is(err, cartridgeloader.UnexpectedHash))
	test.ExpectFailure(t, cl.HasLoaded())
}

func TestLoadHTTP(t *testing.T) {
	data := []byte{0x4e, 0x45, 0x53, 0x1a, 0x01}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/game.nes" {
			http.NotFound(w, r)
			return
		}
		w.Write(data)
	}))
	defer srv.Close()

	cl := cartridgeloader.NewLoader(srv.URL + "/game.nes")
	test.DemandSuccess(t, cl.Load())
	test.ExpectEquality(t, string(cl.Data), string(data))

	cl = cartridgeloader.NewLoader(srv.URL + "/missing.nes")
	err := cl.Load()
	test.ExpectSuccess(t, curated.Is(err, cartridgeloader.LoadFailed))
}

func TestUnknownScheme(t *testing.T) {
	cl := cartridgeloader.NewLoader("ftp://example.com/game.nes")
	err := cl.Load()
	test.ExpectSuccess(t, curated.Is(err, cartridgeloader.UnknownScheme))
}

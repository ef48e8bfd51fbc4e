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

package cartridgeloader

import (
	"crypto/sha1"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"strings"

	"github.com/gophernes/gophernes/curated"
)

// Sentinal error patterns returned by Load().
const (
	LoadFailed     = "cartridgeloader: %v"
	UnexpectedHash = "cartridgeloader: unexpected hash value (%s)"
	UnknownScheme  = "cartridgeloader: unsupported URL scheme (%s)"
)

// Loader is used to specify the cartridge to use when attaching to the NES.
type Loader struct {
	// filename of cartridge to load. may be a http or https URL
	Filename string

	// expected hash of the loaded cartridge. empty string indicates that the
	// hash is unknown and need not be validated. after a load operation the
	// value will be the hash of the loaded data
	Hash string

	// copy of the loaded data. subsequent calls to Load() will not reload
	// the data
	Data []byte
}

// NewLoader is the preferred method of initialisation for the Loader type.
func NewLoader(filename string) Loader {
	return Loader{
		Filename: filename,
	}
}

// ShortName returns a shortened version of the Loader filename. The path and
// the file extension are removed.
func (cl Loader) ShortName() string {
	s := filepath.Base(cl.Filename)
	return strings.TrimSuffix(s, filepath.Ext(cl.Filename))
}

// HasLoaded returns true if Load() has been successfully called.
func (cl Loader) HasLoaded() bool {
	return len(cl.Data) > 0
}

// HasExtension returns true if the filename has one of the extensions in the
// FileExtensions list. The comparison is case insensitive.
func (cl Loader) HasExtension() bool {
	ext := strings.ToUpper(filepath.Ext(cl.Filename))
	for _, e := range FileExtensions {
		if e == ext {
			return true
		}
	}
	return false
}

// Load the cartridge data. Loader filenames with a valid scheme will use that
// method to load the data. Currently supported schemes are HTTP and local
// files.
func (cl *Loader) Load() error {
	if cl.HasLoaded() {
		return nil
	}

	scheme := "file"

	u, err := url.Parse(cl.Filename)
	if err == nil && u.Scheme != "" {
		scheme = u.Scheme
	}

	var data []byte

	switch scheme {
	case "http", "https":
		resp, err := http.Get(cl.Filename)
		if err != nil {
			return curated.Errorf(LoadFailed, err)
		}
		defer resp.Body.Close()

		if resp.StatusCode != http.StatusOK {
			return curated.Errorf(LoadFailed, resp.Status)
		}

		data, err = io.ReadAll(resp.Body)
		if err != nil {
			return curated.Errorf(LoadFailed, err)
		}

	case "file":
		data, err = os.ReadFile(cl.Filename)
		if err != nil {
			return curated.Errorf(LoadFailed, err)
		}

	default:
		// single letter schemes are windows drive letters
		if len(scheme) == 1 {
			data, err = os.ReadFile(cl.Filename)
			if err != nil {
				return curated.Errorf(LoadFailed, err)
			}
		} else {
			return curated.Errorf(UnknownScheme, scheme)
		}
	}

	hash := fmt.Sprintf("%x", sha1.Sum(data))
	if cl.Hash != "" && cl.Hash != hash {
		return curated.Errorf(UnexpectedHash, hash)
	}

	cl.Hash = hash
	cl.Data = data

	return nil
}

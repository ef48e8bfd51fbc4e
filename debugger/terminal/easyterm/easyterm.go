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

package easyterm

import (
	"os"

	"github.com/gophernes/gophernes/curated"
	"github.com/pkg/term"
	xterm "golang.org/x/term"
)

// DefaultDevice is the controlling terminal of the process.
const DefaultDevice = "/dev/tty"

// IsTerminal returns true if the file is connected to a terminal.
func IsTerminal(f *os.File) bool {
	return xterm.IsTerminal(int(f.Fd()))
}

// Terminal is the main container for posix terminals. It implements the
// io.Reader interface.
type Terminal struct {
	t *term.Term
}

// Open the terminal device. The terminal is in canonical mode until
// CBreakMode() is called.
func Open(device string) (*Terminal, error) {
	t, err := term.Open(device)
	if err != nil {
		return nil, curated.Errorf("easyterm: %v", err)
	}
	return &Terminal{t: t}, nil
}

// CBreakMode puts terminal into cbreak mode. Key presses are available
// immediately and are not echoed.
func (pt *Terminal) CBreakMode() error {
	if err := pt.t.SetCbreak(); err != nil {
		return curated.Errorf("easyterm: %v", err)
	}
	return nil
}

// CanonicalMode puts terminal into normal, everyday canonical mode.
func (pt *Terminal) CanonicalMode() error {
	if err := pt.t.Restore(); err != nil {
		return curated.Errorf("easyterm: %v", err)
	}
	return nil
}

// Read implements the io.Reader interface.
func (pt *Terminal) Read(p []byte) (int, error) {
	return pt.t.Read(p)
}

// CleanUp restores the terminal to canonical mode and closes the device.
func (pt *Terminal) CleanUp() error {
	err := pt.CanonicalMode()
	if cerr := pt.t.Close(); err == nil && cerr != nil {
		err = curated.Errorf("easyterm: %v", cerr)
	}
	return err
}

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

package preferences

import (
	"github.com/gophernes/gophernes/prefs"
)

// Preferences defines and collates all the preference values used by the
// hardware package.
type Preferences struct {
	grp *prefs.Group

	// refuse cartridges with a NES 2.0 header rather than loading them as
	// iNES images
	StrictNES2 prefs.Bool

	// log faults that occur during frame execution
	LogFaults prefs.Bool

	// number of log entries shown by the debugger log command
	LogTail prefs.Int
}

func (p *Preferences) String() string {
	return p.grp.String()
}

// NewPreferences is the preferred method of initialisation for the
// Preferences type.
func NewPreferences() (*Preferences, error) {
	p := &Preferences{
		grp: prefs.NewGroup(),
	}
	p.SetDefaults()

	err := p.grp.Add("cartridge.strictnes2", &p.StrictNES2)
	if err != nil {
		return nil, err
	}
	err = p.grp.Add("nes.logfaults", &p.LogFaults)
	if err != nil {
		return nil, err
	}
	err = p.grp.Add("debugger.logtail", &p.LogTail)
	if err != nil {
		return nil, err
	}

	return p, nil
}

// SetDefaults reverts all settings to default values.
func (p *Preferences) SetDefaults() {
	p.StrictNES2.Set(false)
	p.LogFaults.Set(true)
	p.LogTail.Set(10)
}

// Set the value of the named preference.
func (p *Preferences) Set(key string, v prefs.Value) error {
	return p.grp.Set(key, v)
}

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

package cartridge

import "github.com/gophernes/gophernes/curated"

// ejected implements the CartMapper interface.
type ejected struct {
}

func newEjected() *ejected {
	return &ejected{}
}

// ID implements the CartMapper interface.
func (cart *ejected) ID() string {
	return "-"
}

// String implements the CartMapper interface.
func (cart *ejected) String() string {
	return "ejected"
}

// Read implements the CartMapper interface.
func (cart *ejected) Read(_ uint16) (uint8, error) {
	return 0, curated.Errorf(CartridgeEjected)
}

// Write implements the CartMapper interface.
func (cart *ejected) Write(_ uint16, _ uint8) error {
	return curated.Errorf(CartridgeEjected)
}

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

import (
	"fmt"

	"github.com/gophernes/gophernes/curated"
)

// unsupported implements the CartMapper interface for any mapper id that has
// no entry in the mapper registry.
type unsupported struct {
	id uint8
}

func newUnsupported(id uint8) CartMapper {
	return &unsupported{id: id}
}

// ID implements the CartMapper interface.
func (cart *unsupported) ID() string {
	return fmt.Sprintf("%03d", cart.id)
}

// String implements the CartMapper interface.
func (cart *unsupported) String() string {
	return fmt.Sprintf("unsupported mapper %d", cart.id)
}

// Read implements the CartMapper interface.
func (cart *unsupported) Read(_ uint16) (uint8, error) {
	return 0, curated.Errorf(UnsupportedMapper, cart.id)
}

// Write implements the CartMapper interface.
func (cart *unsupported) Write(_ uint16, _ uint8) error {
	return curated.Errorf(UnsupportedMapper, cart.id)
}

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
	"github.com/gophernes/gophernes/hardware/memory/cartridge/ines"
	"github.com/gophernes/gophernes/hardware/memory/cpubus"
)

// nrom implements the CartMapper interface for mapper 0.
//
// Cartridges with one PRG bank have that bank mirrored in both halves of the
// cartridge address space. Cartridges with two banks are mapped linearly
// from 0x8000 to 0xffff. Writes to cartridge space are ignored.
type nrom struct {
	prg      []uint8
	prgBanks int
}

func newNROM(img ines.Image) CartMapper {
	return &nrom{
		prg:      img.PRG,
		prgBanks: img.PRGBanks,
	}
}

// ID implements the CartMapper interface.
func (cart *nrom) ID() string {
	return "NROM"
}

// String implements the CartMapper interface.
func (cart *nrom) String() string {
	if cart.prgBanks == 2 {
		return fmt.Sprintf("%s [32k]", cart.ID())
	}
	return fmt.Sprintf("%s [16k mirrored]", cart.ID())
}

// Read implements the CartMapper interface.
func (cart *nrom) Read(addr uint16) (uint8, error) {
	if addr >= cpubus.CartUpper {
		if cart.prgBanks == 2 {
			return cart.prg[addr-cpubus.CartOrigin], nil
		}
		return cart.prg[addr-cpubus.CartUpper], nil
	}

	if addr >= cpubus.CartOrigin {
		return cart.prg[addr-cpubus.CartOrigin], nil
	}

	return 0, curated.Errorf(UnsupportedAddress, cart.ID(), addr)
}

// Write implements the CartMapper interface.
func (cart *nrom) Write(addr uint16, _ uint8) error {
	if addr >= cpubus.CartOrigin {
		return nil
	}
	return curated.Errorf(UnsupportedAddress, cart.ID(), addr)
}

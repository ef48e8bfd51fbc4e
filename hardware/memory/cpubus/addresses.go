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

package cpubus

// Reset is the address where the reset vector is stored. The vector is a 16
// bit little-endian address.
const Reset = uint16(0xfffc)

// I/O registers that are intercepted by the bus before any cartridge
// decoding takes place.
const (
	// writing to PPUCTRL sets the PPU controller register
	PPUCTRL = uint16(0x2000)

	// reading from PPUSTATUS returns the PPU status register
	PPUSTATUS = uint16(0x2002)
)

// Cartridge address space. Addresses at or above CartOrigin are decoded by the
// cartridge mapper.
const (
	CartOrigin = uint16(0x8000)
	CartUpper  = uint16(0xc000)
)

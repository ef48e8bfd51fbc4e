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

// Package memory implements the NES memory bus. The Memory type decodes every
// CPU address to either the two PPU registers visible to the CPU or to the
// cartridge.
//
// The PPU registers are checked before the cartridge. A read from 0x2002
// always returns the PPU status and a write to 0x2000 always sets the PPU
// controller, whatever the cartridge mapper would do with the address.
// Every other address is passed to the cartridge, unchanged.
//
// The bus package describes the other views of memory. The ChipBus
// interface is how the PPU, or a test, sets the status register.
package memory

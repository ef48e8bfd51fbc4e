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

// Package ines parses cartridge images in the iNES format. The format is a
// sixteen byte header followed by the PRG data and then the CHR data:
//
//	offset	meaning
//	0-3	magic number. 'N' 'E' 'S' 0x1a
//	4	number of 16KB PRG banks
//	5	number of 8KB CHR banks. zero means the cartridge uses CHR RAM
//	6	flags. upper nibble is the low nibble of the mapper number
//	7	flags. upper nibble is the high nibble of the mapper number
//	8-15	unused by iNES 1.0
//
// Images with the NES 2.0 signature in byte 7 are recognised but are
// interpreted as iNES 1.0 images. The trainer flag in byte 6 is ignored.
//
// The data slices in the returned Image are copies and do not share memory
// with the data given to Parse().
package ines

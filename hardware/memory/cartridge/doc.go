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

// Package cartridge fully implements loading of mapping of cartridge memory.
//
// Cartridge images are interpreted by the ines package. The mapper id in the
// image header selects the cartridge mapper from a registry. The mapper
// decodes CPU addresses into the PRG data of the cartridge. Mapper ids with
// no registry entry are given a mapper that faults on every access.
//
// Currently supported mappers:
//
//	0	NROM
//
// When no cartridge is attached the ejected mapper is used. Every access to
// the ejected mapper returns a CartridgeEjected error.
package cartridge

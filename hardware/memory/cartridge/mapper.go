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
	"github.com/gophernes/gophernes/hardware/memory/cartridge/ines"
)

// Sentinal error patterns returned by the cartridge mappers.
const (
	UnsupportedMapper  = "cartridge: unsupported mapper (%d)"
	UnsupportedAddress = "cartridge: %s: unsupported address (%#04x)"
	CartridgeEjected   = "cartridge: no cartridge attached"
)

// CartMapper implementations hold the actual data from the loaded ROM and
// decode the addresses of the CPU address space into that data. Addresses
// are not normalised before being passed to the mapper.
type CartMapper interface {
	// short identifier of the mapper
	ID() string

	// summary of the mapper and its current state
	String() string

	Read(addr uint16) (uint8, error)
	Write(addr uint16, data uint8) error
}

type mapperDescription struct {
	name   string
	create func(img ines.Image) CartMapper
}

// mappers is the registry of supported mappers keyed by the iNES mapper id.
var mappers = map[uint8]mapperDescription{
	0: {name: "NROM", create: newNROM},
}

// newMapper returns the registered mapper for the image. Unregistered mapper
// ids are given the unsupported mapper.
func newMapper(img ines.Image) CartMapper {
	if d, ok := mappers[img.MapperID]; ok {
		return d.create(img)
	}
	return newUnsupported(img.MapperID)
}

// MapperName returns the name of the mapper with the iNES id. Unregistered
// ids return the empty string.
func MapperName(id uint8) string {
	if d, ok := mappers[id]; ok {
		return d.name
	}
	return ""
}

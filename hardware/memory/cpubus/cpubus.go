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

// Package cpubus defines the interface through which the CPU accesses
// memory. It also lists the fixed addresses that have special meaning to the
// CPU or the bus.
package cpubus

// Memory defines the operations for the memory system when accessed from the
// CPU. The Bus type in the memory package implements this interface and
// decodes each address to the correct area. Test code can supply any
// implementation.
//
// Every call to Read() or Write() is one bus transaction. The CPU charges one
// cycle for each transaction, whether or not the value read is used.
type Memory interface {
	Read(address uint16) (uint8, error)
	Write(address uint16, data uint8) error
}

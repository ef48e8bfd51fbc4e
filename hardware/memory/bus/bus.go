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

// Package bus defines the memory bus concept beyond the CPU's view of memory.
// For the CPU's view see the cpubus package.
package bus

// ChipBus defines the operations for the memory system when accessed from the
// chips sharing the bus with the CPU. In practice this is the PPU, which sets
// the status register and reads the controller register.
type ChipBus interface {
	SetPPUStatus(value uint8)
	PPUController() uint8
}

// DebugBus defines the meta-operations for the memory system. Think of these
// functions as "debugging" functions, operations outside of the normal
// operation of the machine. Peek() has no side effects and costs no cycles.
type DebugBus interface {
	Peek(address uint16) (uint8, error)
}

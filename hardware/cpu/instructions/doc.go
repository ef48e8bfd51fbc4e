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

// Package instructions defines the instruction set of the CPU. Each opcode
// recognised by the CPU is described by a Definition. The GetDefinitions()
// function returns a table of 256 entries indexed by opcode. Entries for
// opcodes that are not recognised are nil.
//
// The Cycles field of a Definition is the documented cycle count of the
// instruction. The CPU does not use it to decide how many cycles an
// instruction takes. Cycles are counted as the instruction executes, one per
// bus access. The field is used for validity checking of an execution result.
//
// Adding support for a new opcode means adding an entry to the definitions
// list and handling its Operator in the CPU.
package instructions

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

// Package registers implements the three types of registers found in the
// 6502: the 8 bit general purpose register, the 16 bit program counter and
// the status register. The stack pointer is an 8 bit register.
//
// The Register type knows nothing about the status register. It is up to the
// CPU to update the status register flags from the IsZero() and IsNegative()
// functions as required by each instruction.
//
// Every register has a label which is used by the String() functions.
package registers

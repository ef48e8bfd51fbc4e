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

package instructions

import "fmt"

// Definition defines each instruction in the instruction set; one per opcode.
type Definition struct {
	OpCode         uint8
	Operator       Operator
	Bytes          int
	Cycles         int
	AddressingMode AddressingMode
	PageSensitive  bool
	Effect         Category
}

// String returns a single instruction definition as a string.
func (defn Definition) String() string {
	return fmt.Sprintf("%02x %s +%dbytes (%d cycles) [mode=%s pagesens=%t effect=%s]",
		defn.OpCode, defn.Operator, defn.Bytes, defn.Cycles, defn.AddressingMode, defn.PageSensitive, defn.Effect)
}

// IsBranch returns true if instruction is a branch instruction.
func (defn Definition) IsBranch() bool {
	return defn.AddressingMode == Relative && defn.Effect == Flow
}

// definitions lists every recognised opcode. the cycle count of branch
// instructions is the count when the branch is not taken.
var definitions = []Definition{
	{OpCode: 0x10, Operator: Bpl, Bytes: 2, Cycles: 2, AddressingMode: Relative, PageSensitive: true, Effect: Flow},
	{OpCode: 0x78, Operator: Sei, Bytes: 1, Cycles: 2, AddressingMode: Implied, Effect: Read},
	{OpCode: 0x8d, Operator: Sta, Bytes: 3, Cycles: 4, AddressingMode: Absolute, Effect: Write},
	{OpCode: 0x9a, Operator: Txs, Bytes: 1, Cycles: 2, AddressingMode: Implied, Effect: Read},
	{OpCode: 0xa2, Operator: Ldx, Bytes: 2, Cycles: 2, AddressingMode: Immediate, Effect: Read},
	{OpCode: 0xa9, Operator: Lda, Bytes: 2, Cycles: 2, AddressingMode: Immediate, Effect: Read},
	{OpCode: 0xad, Operator: Lda, Bytes: 3, Cycles: 4, AddressingMode: Absolute, Effect: Read},
	{OpCode: 0xd8, Operator: Cld, Bytes: 1, Cycles: 2, AddressingMode: Implied, Effect: Read},
}

// GetDefinitions returns the table of instruction definitions, indexed by
// opcode. The table always has 256 entries. Unrecognised opcodes are nil.
//
// A new table is created on every call and may be freely modified by the
// caller.
func GetDefinitions() []*Definition {
	table := make([]*Definition, 256)
	for i := range definitions {
		defn := definitions[i]
		table[defn.OpCode] = &defn
	}
	return table
}

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

package execution

import (
	"fmt"

	"github.com/gophernes/gophernes/hardware/cpu/instructions"
)

// Result records the state/result of each instruction executed on the CPU.
// Including the address it was read from, a reference to the instruction
// definition, and other execution details.
//
// The Result type is updated every cycle during the execution of the
// emulated CPU. As the execution continues, more information is acquired and
// detail added to the Result.
//
// The Final field indicates whether the last cycle of the instruction has
// been reached. Fields may be incomplete if Final is false.
type Result struct {
	// the address at which the instruction began
	Address uint16

	// a reference to the instruction definition
	Defn *instructions.Definition

	// the number of bytes read during instruction decode. if this value is
	// less than Defn.Bytes then the instruction has not yet been fully
	// decoded
	ByteCount int

	// instruction data is the actual instruction data. so, for example, in
	// the case of a branch instruction, it is the offset value
	InstructionData uint16

	// the actual number of cycles taken by the instruction. for branches this
	// may be more than Defn.Cycles
	Cycles int

	// whether branch instruction test passed (ie. branched) or not
	BranchSuccess bool

	// whether the instruction crossed a page boundary. for branches this is
	// the branch target and the PC after the operand being on different pages
	PageFault bool

	// whether this data has been finalised
	Final bool
}

// Reset prepares the Result for a new instruction.
func (r *Result) Reset() {
	*r = Result{}
}

// String returns a single line disassembly of the result. For example:
//
//	$8000 LDA #$05 (2 cycles)
func (r Result) String() string {
	if r.Defn == nil {
		return fmt.Sprintf("$%04x ???", r.Address)
	}

	var operand string

	switch r.Defn.AddressingMode {
	case instructions.Implied:
		operand = ""
	case instructions.Immediate:
		operand = fmt.Sprintf(" #$%02x", r.InstructionData&0x00ff)
	case instructions.Absolute:
		operand = fmt.Sprintf(" $%04x", r.InstructionData)
	case instructions.Relative:
		// the branch target is relative to the address following the
		// instruction. the offset is sign extended to 16 bits
		offset := r.InstructionData & 0x00ff
		if offset&0x0080 == 0x0080 {
			offset |= 0xff00
		}
		operand = fmt.Sprintf(" $%04x", r.Address+uint16(r.Defn.Bytes)+offset)
	}

	if !r.Final {
		return fmt.Sprintf("$%04x %s%s (unfinished)", r.Address, r.Defn.Operator, operand)
	}

	return fmt.Sprintf("$%04x %s%s (%d cycles)", r.Address, r.Defn.Operator, operand, r.Cycles)
}

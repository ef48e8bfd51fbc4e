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

// Package cpu emulates the 6502 microprocessor found in the NES. The CPU
// executes instructions according to the single byte value read from the
// address pointed to by the program counter. This single byte is the opcode
// and is looked up in the instruction table. The instruction definition for
// that opcode is then used to move execution of the program forward.
//
// The CPU type requires an implementation of the cpubus.Memory interface as
// the sole argument to NewCPU(). See the cpubus package for details.
//
// The bread-and-butter of the CPU type is the ExecuteInstruction() function.
// Its sole argument is a callback function to be called at every cycle
// boundary of the instruction. A cycle is one bus transaction. Dummy reads,
// the reads the real CPU makes while it is busy with something else and
// whose values are discarded, are real bus transactions and are also cycles.
//
//	mc := cpu.NewCPU(mem)
//
//	numCycles := 0
//	for numCycles < budget {
//		err := mc.ExecuteInstruction(func() error {
//			numCycles++
//			return nil
//		})
//		if err != nil {
//			return err
//		}
//	}
//
// The LastResult field can be inspected for information about the last
// instruction executed, or about the current instruction if accessed from the
// callback function. See the execution package for more information.
//
// Only a subset of the 6502 instruction set is supported. See the
// instructions package for the list. An opcode outside of that list causes
// ExecuteInstruction() to return an IllegalOpcode error.
package cpu

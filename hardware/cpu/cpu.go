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

package cpu

import (
	"fmt"

	"github.com/gophernes/gophernes/curated"
	"github.com/gophernes/gophernes/hardware/cpu/execution"
	"github.com/gophernes/gophernes/hardware/cpu/instructions"
	"github.com/gophernes/gophernes/hardware/cpu/registers"
	"github.com/gophernes/gophernes/hardware/memory/cpubus"
)

// IllegalOpcode is returned by ExecuteInstruction() when the opcode read
// from memory has no instruction definition.
const IllegalOpcode = "cpu: illegal opcode (%#02x) at (%#04x)"

// initial value of the stack pointer after a reset.
const resetSP = 0xfd

// CPU implements the 6502 found in the NES. Register logic is implemented by
// the types in the registers sub-package.
type CPU struct {
	PC     registers.ProgramCounter
	A      registers.Register
	X      registers.Register
	SP     registers.Register
	Status registers.StatusRegister

	mem          cpubus.Memory
	instructions []*instructions.Definition

	// cycleCallback is called after every bus transaction
	cycleCallback func() error

	// last result. describes the instruction currently being executed when
	// accessed from the cycle callback
	LastResult execution.Result

	// whether the last memory access by the CPU was a dummy access
	DummyMemAccess bool
}

// NewCPU is the preferred method of initialisation for the CPU structure. All
// registers are zero.
func NewCPU(mem cpubus.Memory) *CPU {
	return &CPU{
		mem:          mem,
		PC:           registers.NewProgramCounter(0),
		A:            registers.NewRegister(0, "A"),
		X:            registers.NewRegister(0, "X"),
		SP:           registers.NewRegister(0, "SP"),
		instructions: instructions.GetDefinitions(),
	}
}

func (mc *CPU) String() string {
	return fmt.Sprintf("%s=%s %s=%s %s=%s %s=%s %s=%s",
		mc.PC.Label(), mc.PC, mc.A.Label(), mc.A,
		mc.X.Label(), mc.X, mc.SP.Label(), mc.SP,
		mc.Status.Label(), mc.Status)
}

// Reset puts the CPU into the state it is in after the reset line has been
// asserted. The stack pointer is set to 0xfd. The A, X and status registers
// are not affected.
//
// Reset does not load PC with the reset vector. Use
// LoadPCIndirect(cpubus.Reset) when appropriate.
func (mc *CPU) Reset() {
	mc.LastResult.Reset()
	mc.SP.Load(resetSP)
	mc.DummyMemAccess = false
}

// LoadPCIndirect loads the contents of indirectAddress into the PC. The
// address is read as a 16 bit little-endian value. No cycles are consumed.
//
// The PC is unchanged if either read fails.
func (mc *CPU) LoadPCIndirect(indirectAddress uint16) error {
	lo, err := mc.mem.Read(indirectAddress)
	if err != nil {
		return err
	}

	hi, err := mc.mem.Read(indirectAddress + 1)
	if err != nil {
		return err
	}

	mc.PC.Load((uint16(hi) << 8) | uint16(lo))

	return nil
}

// read8Bit returns 8bit value from the specified address
//
// side-effects:
//   - calls cycleCallback after memory read
//
// a read that returns an error is not charged a cycle.
func (mc *CPU) read8Bit(address uint16, dummy bool) (uint8, error) {
	mc.DummyMemAccess = dummy

	val, err := mc.mem.Read(address)
	if err != nil {
		return 0, err
	}

	// +1 cycle
	mc.LastResult.Cycles++
	err = mc.cycleCallback()
	if err != nil {
		return 0, err
	}

	return val, nil
}

// write8Bit writes 8 bits to the specified address
//
// side-effects:
//   - calls cycleCallback after memory write
//
// a write that returns an error is not charged a cycle.
func (mc *CPU) write8Bit(address uint16, value uint8) error {
	mc.DummyMemAccess = false

	err := mc.mem.Write(address, value)
	if err != nil {
		return err
	}

	// +1 cycle
	mc.LastResult.Cycles++
	return mc.cycleCallback()
}

// read 8bits from the PC location has a variety of additional side-effects
// depending on context.
type read8BitPCeffect int

const (
	newOpcode read8BitPCeffect = iota
	loNibble
	hiNibble
)

// read8BitPC reads 8 bits from the memory location pointed to by PC
//
// side-effects:
//   - updates program counter
//   - calls cycleCallback at end of function
//   - updates LastResult.ByteCount
//   - additional side effect updates LastResult as appropriate
func (mc *CPU) read8BitPC(effect read8BitPCeffect) error {
	mc.DummyMemAccess = false

	v, err := mc.mem.Read(mc.PC.Address())
	if err != nil {
		return err
	}

	mc.PC.Add(1)
	mc.LastResult.ByteCount++

	switch effect {
	case newOpcode:
		mc.LastResult.Defn = mc.instructions[v]
		if mc.LastResult.Defn == nil {
			// the opcode has been fetched and costs a cycle even though it
			// cannot be executed. the PC is left pointing at the opcode
			mc.PC.Load(mc.LastResult.Address)
			mc.LastResult.Cycles++
			mc.LastResult.Final = true
			if err := mc.cycleCallback(); err != nil {
				return err
			}
			return curated.Errorf(IllegalOpcode, v, mc.LastResult.Address)
		}

	case loNibble:
		mc.LastResult.InstructionData = uint16(v)

	case hiNibble:
		mc.LastResult.InstructionData = (uint16(v) << 8) | mc.LastResult.InstructionData
	}

	// +1 cycle
	mc.LastResult.Cycles++
	return mc.cycleCallback()
}

// read16BitPC reads 16 bits from the memory location pointed to by PC
//
// side-effects:
//   - updates program counter
//   - calls cycleCallback after each 8 bit read
//   - updates LastResult.ByteCount
//   - updates InstructionData field, once before each call to cycleCallback
func (mc *CPU) read16BitPC() error {
	if err := mc.read8BitPC(loNibble); err != nil {
		return err
	}
	return mc.read8BitPC(hiNibble)
}

// branch is used by all branch instructions. the offset is the 8 bit
// operand of the instruction.
func (mc *CPU) branch(flag bool, offset uint16) error {
	// the offset is an 8bit value and we'll be doing 16 bit arithmetic with
	// it. make sure the sign bit has been propagated into the most
	// significant bits
	if offset&0x0080 == 0x0080 {
		offset |= 0xff00
	}

	mc.LastResult.BranchSuccess = flag

	if !flag {
		return nil
	}

	// note current PC for reference
	oldPC := mc.PC.Address()

	// dummy read of the next opcode while the offset is added
	// +1 cycle
	_, err := mc.read8Bit(oldPC, true)
	if err != nil {
		return err
	}

	// the 6502 adds the offset to the low byte of the PC only. if the
	// addition carries into the high byte then the CPU makes a dummy read
	// from the uncorrected address before fixing the high byte
	target := oldPC + offset
	mc.LastResult.PageFault = oldPC&0xff00 != target&0xff00

	if mc.LastResult.PageFault {
		// +1 cycle
		_, err := mc.read8Bit(oldPC&0xff00|target&0x00ff, true)
		if err != nil {
			return err
		}
	}

	mc.PC.Load(target)

	return nil
}

// NilCycleCallback can be provided as an argument to ExecuteInstruction().
// It's a convenient do-nothing function.
func NilCycleCallback() error {
	return nil
}

// ExecuteInstruction steps CPU forward one instruction. The basic process
// when executing an instruction is this:
//
//  1. read opcode and look up instruction definition
//  2. read operands (if any) according to the addressing mode of the instruction
//  3. using the operator as a guide, perform the instruction on the data
//
// All instructions take at least 2 cycles. After each cycle, the
// cycleCallback() function is run.
//
// Any error from the memory system or from the callback stops the
// instruction and is returned. The CPU is left in whatever state it was in at
// the point of the error. LastResult.Final will be false in that case.
//
// The cycleCallback argument should never be nil. Use the NilCycleCallback()
// function in this package if you want a nil effect.
func (mc *CPU) ExecuteInstruction(cycleCallback func() error) error {
	mc.cycleCallback = cycleCallback

	// prepare new round of results
	mc.LastResult.Reset()
	mc.LastResult.Address = mc.PC.Address()

	// read next instruction
	// +1 cycle
	err := mc.read8BitPC(newOpcode)
	if err != nil {
		return err
	}

	defn := mc.LastResult.Defn

	// address is the address to use to access memory. for relative
	// addressing it is the branch offset
	var address uint16

	// value is read from the program for immediate mode and from memory for
	// absolute mode read instructions
	var value uint8

	switch defn.AddressingMode {
	case instructions.Implied:
		// implied mode does not use any additional bytes. however, the next
		// byte is read but the PC is not incremented

		// dummy read
		// +1 cycle
		_, err = mc.read8Bit(mc.PC.Address(), true)
		if err != nil {
			return err
		}

	case instructions.Immediate:
		// +1 cycle
		err = mc.read8BitPC(loNibble)
		if err != nil {
			return err
		}
		value = uint8(mc.LastResult.InstructionData)

	case instructions.Relative:
		// relative addressing is only used for branch instructions. most of
		// the cycles for this addressing mode are consumed in the branch()
		// function

		// +1 cycle
		err = mc.read8BitPC(loNibble)
		if err != nil {
			return err
		}
		address = mc.LastResult.InstructionData

	case instructions.Absolute:
		// +2 cycles
		err = mc.read16BitPC()
		if err != nil {
			return err
		}
		address = mc.LastResult.InstructionData

		if defn.Effect == instructions.Read {
			// +1 cycle
			value, err = mc.read8Bit(address, false)
			if err != nil {
				return err
			}
		}

	default:
		return curated.Errorf("cpu: unsupported addressing mode (%s) for %s", defn.AddressingMode, defn.Operator)
	}

	// actually perform instruction based on operator
	switch defn.Operator {
	case instructions.Sei:
		mc.Status.InterruptDisable = true

	case instructions.Cld:
		mc.Status.DecimalMode = false

	case instructions.Txs:
		mc.SP.Load(mc.X.Value())
		// does not affect status register

	case instructions.Lda:
		mc.A.Load(value)
		mc.Status.Zero = mc.A.IsZero()
		mc.Status.Sign = mc.A.IsNegative()

	case instructions.Ldx:
		mc.X.Load(value)
		mc.Status.Zero = mc.X.IsZero()
		mc.Status.Sign = mc.X.IsNegative()

	case instructions.Sta:
		// +1 cycle
		err = mc.write8Bit(address, mc.A.Value())
		if err != nil {
			return err
		}

	case instructions.Bpl:
		err = mc.branch(!mc.Status.Sign, address)
		if err != nil {
			return err
		}

	default:
		return curated.Errorf("cpu: unsupported operator (%s)", defn.Operator)
	}

	mc.LastResult.Final = true

	return nil
}

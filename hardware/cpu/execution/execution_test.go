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

package execution_test

import (
	"testing"

	"github.com/gophernes/gophernes/curated"
	"github.com/gophernes/gophernes/hardware/cpu/execution"
	"github.com/gophernes/gophernes/hardware/cpu/instructions"
	"github.com/gophernes/gophernes/test"
)

func TestIsValid(t *testing.T) {
	defns := instructions.GetDefinitions()

	var r execution.Result
	test.ExpectSuccess(t, curated.Is(r.IsValid(), execution.NotFinalised))

	r = execution.Result{Defn: defns[0xa9], ByteCount: 2, Cycles: 2, Final: true}
	test.ExpectSuccess(t, r.IsValid())

	r.Cycles = 3
	test.ExpectSuccess(t, curated.Is(r.IsValid(), execution.WrongCycleCount))

	r.Cycles = 2
	r.ByteCount = 1
	test.ExpectSuccess(t, curated.Is(r.IsValid(), execution.WrongByteCount))

	r.ByteCount = 2
	r.PageFault = true
	test.ExpectSuccess(t, curated.Is(r.IsValid(), execution.UnexpectedFault))
}

func TestIsValidBranch(t *testing.T) {
	defns := instructions.GetDefinitions()

	r := execution.Result{Defn: defns[0x10], ByteCount: 2, Cycles: 2, Final: true}
	test.ExpectSuccess(t, r.IsValid())

	r.BranchSuccess = true
	test.ExpectSuccess(t, curated.Is(r.IsValid(), execution.WrongBranchCount))
	r.Cycles = 3
	test.ExpectSuccess(t, r.IsValid())

	r.PageFault = true
	test.ExpectSuccess(t, curated.Is(r.IsValid(), execution.WrongBranchCount))
	r.Cycles = 4
	test.ExpectSuccess(t, r.IsValid())
}

func TestString(t *testing.T) {
	defns := instructions.GetDefinitions()

	var r execution.Result
	r.Address = 0x8000
	test.ExpectEquality(t, r.String(), "$8000 ???")

	r = execution.Result{Address: 0x8000, Defn: defns[0xa9], InstructionData: 0x05, Cycles: 2, Final: true}
	test.ExpectEquality(t, r.String(), "$8000 LDA #$05 (2 cycles)")

	r = execution.Result{Address: 0x8002, Defn: defns[0x78], Cycles: 2, Final: true}
	test.ExpectEquality(t, r.String(), "$8002 SEI (2 cycles)")

	r = execution.Result{Address: 0x8003, Defn: defns[0x8d], InstructionData: 0x2000, Cycles: 4}
	test.ExpectEquality(t, r.String(), "$8003 STA $2000 (unfinished)")

	// backwards branch
	r = execution.Result{Address: 0x8010, Defn: defns[0x10], InstructionData: 0xfb, Cycles: 3, Final: true}
	test.ExpectEquality(t, r.String(), "$8010 BPL $800d (3 cycles)")

	r.Reset()
	test.ExpectEquality(t, r.Defn, nil)
	test.ExpectEquality(t, r.Cycles, 0)
}

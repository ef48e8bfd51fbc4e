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

package cpu_test

import (
	"testing"

	"github.com/gophernes/gophernes/curated"
	"github.com/gophernes/gophernes/hardware/cpu"
	"github.com/gophernes/gophernes/hardware/cpu/execution"
)

const mockFault = "mock: bus fault at (%#04x)"

type access struct {
	address uint16
	write   bool
}

type mockMem struct {
	internal []uint8

	// every bus transaction in order. transactions that fault are recorded
	// even though the CPU does not charge a cycle for them
	accesses []access

	// addresses that fault on access
	faults map[uint16]bool
}

func newMockMem() *mockMem {
	return &mockMem{
		internal: make([]uint8, 0x10000),
		faults:   make(map[uint16]bool),
	}
}

func (mem *mockMem) putInstructions(origin uint16, bytes ...uint8) uint16 {
	for i, b := range bytes {
		mem.internal[origin+uint16(i)] = b
	}
	return origin + uint16(len(bytes))
}

func (mem *mockMem) assert(t *testing.T, address uint16, value uint8) {
	t.Helper()
	if mem.internal[address] != value {
		t.Errorf("memory assertion failed (%v  - wanted %v at address %04x)", mem.internal[address], value, address)
	}
}

func (mem *mockMem) clearAccesses() {
	mem.accesses = mem.accesses[:0]
}

func (mem *mockMem) Read(address uint16) (uint8, error) {
	mem.accesses = append(mem.accesses, access{address: address})
	if mem.faults[address] {
		return 0, curated.Errorf(mockFault, address)
	}
	return mem.internal[address], nil
}

func (mem *mockMem) Write(address uint16, data uint8) error {
	mem.accesses = append(mem.accesses, access{address: address, write: true})
	if mem.faults[address] {
		return curated.Errorf(mockFault, address)
	}
	mem.internal[address] = data
	return nil
}

// step executes one instruction and checks the validity of the result. the
// number of calls to the cycle callback must match the number of cycles in
// the result.
func step(t *testing.T, mc *cpu.CPU) execution.Result {
	t.Helper()

	var cycles int
	err := mc.ExecuteInstruction(func() error {
		cycles++
		return nil
	})
	if err != nil {
		t.Fatal(err)
	}

	err = mc.LastResult.IsValid()
	if err != nil {
		t.Fatal(err)
	}

	if cycles != mc.LastResult.Cycles {
		t.Fatalf("cycle callback called %d times for %d cycles", cycles, mc.LastResult.Cycles)
	}

	return mc.LastResult
}

// newCPU returns a CPU with the PC set to the origin.
func newCPU(t *testing.T, mem *mockMem, origin uint16) *cpu.CPU {
	t.Helper()

	mem.putInstructions(0xfffc, uint8(origin), uint8(origin>>8))
	mc := cpu.NewCPU(mem)
	mc.Reset()
	if err := mc.LoadPCIndirect(0xfffc); err != nil {
		t.Fatal(err)
	}
	mem.clearAccesses()

	return mc
}

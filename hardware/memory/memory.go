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

package memory

import (
	"fmt"

	"github.com/gophernes/gophernes/hardware/memory/cartridge"
	"github.com/gophernes/gophernes/hardware/memory/cpubus"
	"github.com/gophernes/gophernes/hardware/preferences"
)

// Memory is the monolithic representation of the memory in the NES.
type Memory struct {
	// the cartridge attached to the bus. never nil. an ejected cartridge
	// faults on every access
	Cart *cartridge.Cartridge

	ppuStatus     uint8
	ppuController uint8

	// the most recent address accessed through the CPU interface
	LastCPUAddress uint16
	LastCPUWrite   bool
}

// NewMemory is the preferred method of initialisation for Memory. The new
// Memory has an ejected cartridge attached.
func NewMemory(prefs *preferences.Preferences) *Memory {
	return &Memory{
		Cart: cartridge.NewCartridge(prefs),
	}
}

func (mem *Memory) String() string {
	return fmt.Sprintf("PPUSTATUS=%#02x PPUCTRL=%#02x", mem.ppuStatus, mem.ppuController)
}

// Read is an implementation of cpubus.Memory.
func (mem *Memory) Read(address uint16) (uint8, error) {
	mem.LastCPUAddress = address
	mem.LastCPUWrite = false

	if address == cpubus.PPUSTATUS {
		return mem.ppuStatus, nil
	}

	return mem.Cart.Read(address)
}

// Write is an implementation of cpubus.Memory.
func (mem *Memory) Write(address uint16, data uint8) error {
	mem.LastCPUAddress = address
	mem.LastCPUWrite = true

	if address == cpubus.PPUCTRL {
		mem.ppuController = data
		return nil
	}

	return mem.Cart.Write(address, data)
}

// Peek is an implementation of bus.DebugBus.
func (mem *Memory) Peek(address uint16) (uint8, error) {
	if address == cpubus.PPUSTATUS {
		return mem.ppuStatus, nil
	}
	return mem.Cart.Peek(address)
}

// SetPPUStatus is an implementation of bus.ChipBus.
func (mem *Memory) SetPPUStatus(value uint8) {
	mem.ppuStatus = value
}

// PPUController is an implementation of bus.ChipBus.
func (mem *Memory) PPUController() uint8 {
	return mem.ppuController
}

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

package hardware

import (
	"github.com/gophernes/gophernes/cartridgeloader"
	"github.com/gophernes/gophernes/curated"
	"github.com/gophernes/gophernes/hardware/cpu"
	"github.com/gophernes/gophernes/hardware/memory"
	"github.com/gophernes/gophernes/hardware/memory/cartridge"
	"github.com/gophernes/gophernes/hardware/memory/cpubus"
	"github.com/gophernes/gophernes/hardware/preferences"
	"github.com/gophernes/gophernes/logger"
)

// NES struct is the main container for the emulated components of the NES.
type NES struct {
	Prefs *preferences.Preferences

	CPU *cpu.CPU
	Mem *memory.Memory

	// whether the next frame is an odd frame
	oddFrame bool

	// the number of frames run since the last successful cartridge attach.
	// frames that end with a fault are counted
	FrameNum int

	// details of the most recent call to StepFrame()
	LastFrame Frame
}

// NewNES creates a new NES and everything associated with the hardware. If
// the prefs argument is nil then the default preferences are used.
func NewNES(prefs *preferences.Preferences) (*NES, error) {
	if prefs == nil {
		var err error
		prefs, err = preferences.NewPreferences()
		if err != nil {
			return nil, curated.Errorf("nes: %v", err)
		}
	}

	nes := &NES{Prefs: prefs}
	nes.Mem = memory.NewMemory(nes.Prefs)
	nes.CPU = cpu.NewCPU(nes.Mem)

	return nes, nil
}

func (nes *NES) String() string {
	return nes.CPU.String()
}

// AllowLogging implements the logger.Permission interface.
func (nes *NES) AllowLogging() bool {
	return nes.Prefs.LogFaults.Get().(bool)
}

// IsActive returns true if a cartridge is attached.
func (nes *NES) IsActive() bool {
	return !nes.Mem.Cart.IsEjected()
}

// Cartridge returns the currently attached cartridge. The cartridge will be
// ejected if IsActive() is false.
func (nes *NES) Cartridge() *cartridge.Cartridge {
	return nes.Mem.Cart
}

// LoadROM attaches the iNES file at the path to the NES.
func (nes *NES) LoadROM(path string) error {
	return nes.AttachCartridge(cartridgeloader.NewLoader(path))
}

// AttachCartridge loads the cartridge data and resets the NES. On failure the
// previously attached cartridge remains attached and the CPU is unchanged.
// On success the previous cartridge is ejected.
func (nes *NES) AttachCartridge(cartload cartridgeloader.Loader) error {
	cart := cartridge.NewCartridge(nes.Prefs)
	err := cart.Attach(cartload)
	if err != nil {
		return curated.Errorf("nes: %v", err)
	}

	prev := nes.Mem.Cart
	nes.Mem.Cart = cart

	// the PC is unchanged if the reset vector cannot be read
	err = nes.CPU.LoadPCIndirect(cpubus.Reset)
	if err != nil {
		nes.Mem.Cart = prev
		return curated.Errorf("nes: %v", err)
	}

	prev.Eject()
	nes.CPU.Reset()
	nes.resetFrames()

	logger.Logf(logger.Allow, "cartridge", "attached %s: %s", cartload.ShortName(), cart.Header())

	return nil
}

// Reset emulates the reset line of the CPU being asserted. The PC is loaded
// from the reset vector.
func (nes *NES) Reset() error {
	if !nes.IsActive() {
		return nil
	}

	err := nes.CPU.LoadPCIndirect(cpubus.Reset)
	if err != nil {
		return curated.Errorf("nes: %v", err)
	}

	nes.CPU.Reset()
	nes.resetFrames()

	return nil
}

func (nes *NES) resetFrames() {
	nes.oddFrame = false
	nes.FrameNum = 0
	nes.LastFrame = Frame{}
}

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

package cartridge

import (
	"fmt"

	"github.com/gophernes/gophernes/cartridgeloader"
	"github.com/gophernes/gophernes/curated"
	"github.com/gophernes/gophernes/hardware/memory/cartridge/ines"
	"github.com/gophernes/gophernes/hardware/preferences"
	"github.com/gophernes/gophernes/logger"
)

// Cartridge defines the information and operations for a NES cartridge.
type Cartridge struct {
	prefs *preferences.Preferences

	Filename string
	Hash     string

	// information from the cartridge header
	PRGBanks int
	CHRBanks int
	MapperID uint8
	NES2     bool

	prg []uint8
	chr []uint8

	// the specific cartridge data, mapped appropriately to the memory
	// interfaces
	mapper CartMapper
}

// sentinal values used when no cartridge is attached.
const (
	ejectedName = "ejected"
	ejectedHash = "nohash"
)

// NewCartridge is the preferred method of initialisation for the cartridge
// type. The new cartridge is ejected.
func NewCartridge(prefs *preferences.Preferences) *Cartridge {
	cart := &Cartridge{prefs: prefs}
	cart.Eject()
	return cart
}

func (cart *Cartridge) String() string {
	if cart.IsEjected() {
		return cart.Filename
	}
	return fmt.Sprintf("%s (%s) %d PRG, %d CHR", cart.Filename, cart.mapper, cart.PRGBanks, cart.CHRBanks)
}

// ID returns the ID of the cartridge mapper.
func (cart *Cartridge) ID() string {
	return cart.mapper.ID()
}

// Header returns the header information of the cartridge.
func (cart *Cartridge) Header() ines.Header {
	return ines.Header{
		PRGBanks: cart.PRGBanks,
		CHRBanks: cart.CHRBanks,
		MapperID: cart.MapperID,
		NES2:     cart.NES2,
	}
}

// PRG returns the PRG data of the cartridge. The returned slice should not
// be modified.
func (cart *Cartridge) PRG() []uint8 {
	return cart.prg
}

// CHR returns the CHR data of the cartridge. It will be nil if the cartridge
// has no CHR banks.
func (cart *Cartridge) CHR() []uint8 {
	return cart.chr
}

// Peek is an implementation of bus.DebugBus. Reading cartridge memory has no
// side effects in any of the supported mappers.
func (cart *Cartridge) Peek(addr uint16) (uint8, error) {
	return cart.mapper.Read(addr)
}

// Read is an implementation of cpubus.Memory.
func (cart *Cartridge) Read(addr uint16) (uint8, error) {
	return cart.mapper.Read(addr)
}

// Write is an implementation of cpubus.Memory.
func (cart *Cartridge) Write(addr uint16, data uint8) error {
	return cart.mapper.Write(addr, data)
}

// Eject removes memory from cartridge space and attaches the ejected mapper.
// The cartridge data is released.
func (cart *Cartridge) Eject() {
	cart.Filename = ejectedName
	cart.Hash = ejectedHash
	cart.PRGBanks = 0
	cart.CHRBanks = 0
	cart.MapperID = 0
	cart.NES2 = false
	cart.prg = nil
	cart.chr = nil
	cart.mapper = newEjected()
}

// IsEjected returns true if no cartridge is attached.
func (cart *Cartridge) IsEjected() bool {
	return cart.Hash == ejectedHash
}

// Attach the cartridge data specified by the loader. On error the cartridge
// is left ejected.
func (cart *Cartridge) Attach(cartload cartridgeloader.Loader) error {
	cart.Eject()

	err := cartload.Load()
	if err != nil {
		return err
	}

	img, err := ines.Parse(cartload.Data)
	if err != nil {
		return curated.Errorf("cartridge: %v", err)
	}

	if img.NES2 {
		if cart.prefs != nil && cart.prefs.StrictNES2.Get().(bool) {
			return curated.Errorf("cartridge: %v", curated.Errorf(ines.UnsupportedNES2))
		}
		logger.Logf(logger.Allow, "ines", "NES 2.0 detected in %s: treating as iNES 1.0", cartload.ShortName())
	}

	if MapperName(img.MapperID) == "" {
		logger.Logf(logger.Allow, "cartridge", "mapper %d is not supported", img.MapperID)
	}

	cart.Filename = cartload.Filename
	cart.Hash = cartload.Hash
	cart.PRGBanks = img.PRGBanks
	cart.CHRBanks = img.CHRBanks
	cart.MapperID = img.MapperID
	cart.NES2 = img.NES2
	cart.prg = img.PRG
	cart.chr = img.CHR
	cart.mapper = newMapper(img)

	return nil
}

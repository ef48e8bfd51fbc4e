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

// Package cartridgeloader is used to specify the data that is to be attached
// to the emulated NES.
//
// When the cartridge is ready to be loaded into the emulator, the Load()
// function should be used. The Load() function handles loading of data from
// different sources. Currently local files and data over HTTP are supported.
//
// The simplest instance of the Loader type:
//
//	cl := cartridgeloader.NewLoader("roms/game.nes")
//
// Once loaded, the Hash field contains the SHA-1 hash of the data. If the
// Hash field is set before the call to Load() the loaded data must match it.
//
// Interpreting the data is not the concern of this package. See the cartridge
// and ines packages.
package cartridgeloader

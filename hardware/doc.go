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

// Package hardware is the base package for the NES emulation. It and its
// sub-packages contain everything required for a headless emulation.
//
// The NES type is the root of the emulation and contains external references
// to all the NES sub-systems. From here, the emulation can either be started
// to run continuously (with optional callback to check for continuation); or
// it can be stepped frame by frame.
//
//	nes, err := hardware.NewNES(nil)
//	if err != nil {
//		return err
//	}
//
//	err = nes.LoadROM("roms/game.nes")
//	if err != nil {
//		return err
//	}
//
//	for {
//		err = nes.StepFrame()
//		if err != nil {
//			return err
//		}
//	}
//
// Each frame runs the CPU for a fixed number of cycles. See the clocks
// package for the values.
//
// The NES type is not safe for concurrent use. The caller must not call
// StepFrame() and LoadROM() at the same time.
package hardware

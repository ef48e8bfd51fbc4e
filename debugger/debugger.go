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

package debugger

import (
	"errors"
	"fmt"
	"io"

	"github.com/gophernes/gophernes/curated"
	"github.com/gophernes/gophernes/hardware"
	"github.com/gophernes/gophernes/hardware/memory/bus"
	"github.com/gophernes/gophernes/hardware/memory/cpubus"
	"github.com/gophernes/gophernes/logger"
)

const help = `space/enter: step frame
r: reset
v: toggle vblank flag
l: show log
h/?: help
q: quit
`

// Debugger is the frame stepper.
type Debugger struct {
	nes *hardware.NES

	input  io.Reader
	output io.Writer
}

// NewDebugger is the preferred method of initialisation for the Debugger
// type.
func NewDebugger(nes *hardware.NES, input io.Reader, output io.Writer) *Debugger {
	return &Debugger{
		nes:    nes,
		input:  input,
		output: output,
	}
}

func (dbg *Debugger) printf(format string, args ...any) {
	fmt.Fprintf(dbg.output, format, args...)
}

// Start reads and acts on key presses until the quit key is pressed or the
// input is exhausted.
func (dbg *Debugger) Start() error {
	if !dbg.nes.IsActive() {
		return curated.Errorf("debugger: no cartridge attached")
	}

	dbg.printf("%s\n", dbg.nes.Cartridge())
	dbg.printf("%s\n", dbg.nes)

	b := make([]byte, 1)
	for {
		n, err := dbg.input.Read(b)
		if err != nil {
			if errors.Is(err, io.EOF) {
				return nil
			}
			return curated.Errorf("debugger: %v", err)
		}
		if n == 0 {
			continue
		}

		switch b[0] {
		case ' ', '\n', '\r':
			dbg.step()
		case 'r', 'R':
			if err := dbg.nes.Reset(); err != nil {
				dbg.printf("* %v\n", err)
			} else {
				dbg.printVector(dbg.nes.Mem, "reset", cpubus.Reset)
				dbg.printf("%s\n", dbg.nes)
			}
		case 'v', 'V':
			dbg.toggleVBlank(dbg.nes.Mem, dbg.nes.Mem)
		case 'l', 'L':
			logger.Tail(dbg.output, dbg.nes.Prefs.LogTail.Get().(int))
		case 'h', 'H', '?':
			dbg.printf("%s", help)
		case 'q', 'Q':
			return nil
		}
	}
}

// printVector shows the address held by the vector without affecting the
// emulation.
func (dbg *Debugger) printVector(mem bus.DebugBus, name string, vector uint16) {
	lo, err := mem.Peek(vector)
	if err != nil {
		dbg.printf("* %v\n", err)
		return
	}
	hi, err := mem.Peek(vector + 1)
	if err != nil {
		dbg.printf("* %v\n", err)
		return
	}
	dbg.printf("%s vector %#04x\n", name, uint16(hi)<<8|uint16(lo))
}

// toggleVBlank flips bit 7 of PPUSTATUS. there is no PPU so this is the only
// way of releasing a program that is waiting for vblank.
func (dbg *Debugger) toggleVBlank(chips bus.ChipBus, mem bus.DebugBus) {
	v, err := mem.Peek(cpubus.PPUSTATUS)
	if err != nil {
		dbg.printf("* %v\n", err)
		return
	}
	chips.SetPPUStatus(v ^ 0x80)
	dbg.printf("%s\n", dbg.nes.Mem)
}

func (dbg *Debugger) step() {
	err := dbg.nes.StepFrame()
	dbg.printf("frame %d: %s\n", dbg.nes.FrameNum-1, dbg.nes.LastFrame)
	if err != nil {
		dbg.printf("* %v\n", err)
	}
	dbg.printf("%s\n", dbg.nes)
	dbg.printf("%s\n", dbg.nes.CPU.LastResult.String())
}

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

package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gophernes/gophernes/hardware/memory/cartridge/ines"
	"github.com/gophernes/gophernes/logger"
	"github.com/gophernes/gophernes/test"
	"github.com/gophernes/gophernes/version"
)

// writeROM writes a 16k NROM image to a temporary file. the program is
// placed at the reset address.
func writeROM(t *testing.T, program ...uint8) string {
	t.Helper()

	data := []uint8{0x4e, 0x45, 0x53, 0x1a, 0x01}
	data = append(data, make([]uint8, ines.HeaderSize-len(data))...)
	prg := make([]uint8, ines.PRGBankSize)
	copy(prg, program)
	prg[0x3ffc] = 0x00
	prg[0x3ffd] = 0x80
	data = append(data, prg...)

	fn := filepath.Join(t.TempDir(), "test.nes")
	test.DemandSuccess(t, os.WriteFile(fn, data, 0o600))
	return fn
}

// LDA #$05 then branch to self.
var loop = []uint8{0xa9, 0x05, 0x10, 0xfe}

func TestVersion(t *testing.T) {
	w := &test.Writer{}
	test.ExpectEquality(t, launch([]string{"version"}, nil, w), exitOK)
	test.ExpectEquality(t, w.String(), version.String()+"\n")
}

func TestHelp(t *testing.T) {
	w := &test.Writer{}
	test.ExpectEquality(t, launch([]string{"-help"}, nil, w), exitOK)
	test.ExpectSuccess(t, strings.Contains(w.String(), "RUN, STEP, VERSION"))
}

func TestRun(t *testing.T) {
	fn := writeROM(t, loop...)

	w := &test.Writer{}
	test.ExpectEquality(t, launch([]string{"-frames", "3", fn}, nil, w), exitOK)
	test.ExpectSuccess(t, strings.Contains(w.String(), "A=0x05"))
	test.ExpectSuccess(t, strings.Contains(w.String(), "3 frames (last frame 29781/29780 cycles, 9927 instructions)"))
	test.ExpectSuccess(t, strings.Contains(w.String(), "emulated time 50ms\n"))
	test.ExpectFailure(t, strings.Contains(w.String(), "recognised file extension"))

	// explicit mode
	w.Clear()
	test.ExpectEquality(t, launch([]string{"RUN", "-frames", "1", fn}, nil, w), exitOK)
	test.ExpectSuccess(t, strings.Contains(w.String(), "1 frames (last frame 29780/29780 cycles, 9927 instructions)"))
}

func TestRunExtension(t *testing.T) {
	data, err := os.ReadFile(writeROM(t, loop...))
	test.DemandSuccess(t, err)
	fn := filepath.Join(t.TempDir(), "test.bin")
	test.DemandSuccess(t, os.WriteFile(fn, data, 0o600))

	// the cartridge is still loaded
	w := &test.Writer{}
	test.ExpectEquality(t, launch([]string{"-frames", "1", fn}, nil, w), exitOK)
	test.ExpectSuccess(t, strings.Contains(w.String(), "* "+fn+" does not have a recognised file extension\n"))
	test.ExpectSuccess(t, strings.Contains(w.String(), "1 frames"))
}

func TestRunLog(t *testing.T) {
	logger.Clear()
	fn := writeROM(t, loop...)

	w := &test.Writer{}
	test.ExpectEquality(t, launch([]string{"-log", "-frames", "1", fn}, nil, w), exitOK)
	test.ExpectSuccess(t, strings.Contains(w.String(), "cartridge: attached test: mapper 0: 1 PRG, 0 CHR\n"))

	// echo has been turned off
	w.Clear()
	test.ExpectEquality(t, launch([]string{"-frames", "1", fn}, nil, w), exitOK)
	test.ExpectFailure(t, strings.Contains(w.String(), "cartridge: attached"))
}

func TestRunPrefs(t *testing.T) {
	fn := writeROM(t, loop...)

	w := &test.Writer{}
	args := []string{"-frames", "1", "-prefs", "nes.logfaults::false; nes.unknown::true", fn}
	test.ExpectEquality(t, launch(args, nil, w), exitOK)
	test.ExpectSuccess(t, strings.Contains(w.String(), "* unused preferences: nes.unknown::true\n"))
}

func TestRunMemviz(t *testing.T) {
	fn := writeROM(t, loop...)
	out := filepath.Join(t.TempDir(), "nes.dot")

	w := &test.Writer{}
	test.ExpectEquality(t, launch([]string{"-frames", "1", "-memviz", out, fn}, nil, w), exitOK)

	info, err := os.Stat(out)
	test.DemandSuccess(t, err)
	test.ExpectSuccess(t, info.Size() > 0)
}

func TestRunLoadFailure(t *testing.T) {
	w := &test.Writer{}
	missing := filepath.Join(t.TempDir(), "missing.nes")
	test.ExpectEquality(t, launch([]string{missing}, nil, w), exitLoad)
	test.ExpectSuccess(t, strings.Contains(w.String(), "* error in RUN mode: cannot load cartridge"))

	w.Clear()
	test.ExpectEquality(t, launch([]string{"RUN"}, nil, w), exitLoad)
	test.ExpectSuccess(t, strings.Contains(w.String(), "a single cartridge is required"))
}

func TestRunFault(t *testing.T) {
	logger.Clear()

	// illegal opcode
	fn := writeROM(t, 0x02)

	w := &test.Writer{}
	test.ExpectEquality(t, launch([]string{"-frames", "5", fn}, nil, w), exitFault)
	test.ExpectSuccess(t, strings.Contains(w.String(), "emulation stopped: nes: fault in frame 0"))
	test.ExpectSuccess(t, strings.Contains(w.String(), "1 frames"))
}

func TestStep(t *testing.T) {
	fn := writeROM(t, loop...)

	w := &test.Writer{}
	test.ExpectEquality(t, launch([]string{"STEP", fn}, strings.NewReader("  q"), w), exitOK)
	test.ExpectSuccess(t, strings.Contains(w.String(), "frame 1: 29781/29781 cycles, 9927 instructions\n"))

	w.Clear()
	test.ExpectEquality(t, launch([]string{"STEP"}, strings.NewReader("q"), w), exitLoad)
}

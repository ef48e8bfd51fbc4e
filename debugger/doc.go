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

// Package debugger implements a frame stepper for the NES emulation. Input is
// read one key at a time:
//
//	space or enter	step one frame
//	r		reset the CPU
//	l		show the most recent log entries
//	h or ?		show the list of keys
//	q		quit
//
// After each frame the stepper prints the frame statistics, the CPU registers
// and the disassembly of the last instruction executed. Frame faults are
// printed and the stepper continues.
//
// Initialisation of the debugger is done with the NewDebugger() function:
//
//	dbg := debugger.NewDebugger(nes, input, output)
//	err := dbg.Start()
//
// The input is normally standard input. When standard input is a terminal it
// should be put into cbreak mode so that key presses are delivered without
// waiting for the enter key. See the easyterm package.
package debugger

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

// Package clocks defines the constant values that define the speed of the
// main clock in the NES console.
//
// An NTSC frame lasts 29780.5 CPU cycles. The half cycle is approximated by
// alternating between an even frame of 29780 cycles and an odd frame of 29781
// cycles.
package clocks

import "time"

// NTSC is the CPU clock speed in MHz.
const NTSC = 1.789773

// The number of CPU cycles in each of the two alternating frames.
const (
	EvenFrame = 29780
	OddFrame  = 29781
)

// FrameBudget returns the number of CPU cycles for the frame.
func FrameBudget(odd bool) int {
	if odd {
		return OddFrame
	}
	return EvenFrame
}

// Duration returns the length of time taken by the number of frames on real
// hardware.
func Duration(frames int) time.Duration {
	cycles := float64(frames) * float64(EvenFrame+OddFrame) / 2
	return time.Duration(cycles / NTSC * float64(time.Microsecond))
}

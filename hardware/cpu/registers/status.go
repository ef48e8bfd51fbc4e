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

package registers

import (
	"strings"
)

// StatusRegister is the special purpose register that stores the flags of the
// CPU. Bit 5 of the register is unused and is not represented.
type StatusRegister struct {
	Sign             bool // bit 7
	Overflow         bool // bit 6
	Break            bool // bit 4
	DecimalMode      bool // bit 3
	InterruptDisable bool // bit 2
	Zero             bool // bit 1
	Carry            bool // bit 0
}

// Label returns the canonical name for the status register.
func (sr StatusRegister) Label() string {
	return "P"
}

// flag returns the upper case letter if the flag is set and the lower case
// letter otherwise.
func flag(s *strings.Builder, set bool, r rune) {
	if set {
		s.WriteRune(r)
	} else {
		s.WriteString(strings.ToLower(string(r)))
	}
}

func (sr StatusRegister) String() string {
	s := strings.Builder{}
	flag(&s, sr.Sign, 'S')
	flag(&s, sr.Overflow, 'V')
	s.WriteRune('-')
	flag(&s, sr.Break, 'B')
	flag(&s, sr.DecimalMode, 'D')
	flag(&s, sr.InterruptDisable, 'I')
	flag(&s, sr.Zero, 'Z')
	flag(&s, sr.Carry, 'C')
	return s.String()
}

// Reset status flags to initial state.
func (sr *StatusRegister) Reset() {
	sr.FromValue(0)
}

// Value converts the StatusRegister struct into an 8 bit value. The unused
// bit 5 is always 1.
func (sr StatusRegister) Value() uint8 {
	v := uint8(0x20)

	if sr.Sign {
		v |= 0x80
	}
	if sr.Overflow {
		v |= 0x40
	}
	if sr.Break {
		v |= 0x10
	}
	if sr.DecimalMode {
		v |= 0x08
	}
	if sr.InterruptDisable {
		v |= 0x04
	}
	if sr.Zero {
		v |= 0x02
	}
	if sr.Carry {
		v |= 0x01
	}

	return v
}

// FromValue converts an 8 bit integer to the StatusRegister struct receiver.
func (sr *StatusRegister) FromValue(v uint8) {
	sr.Sign = v&0x80 == 0x80
	sr.Overflow = v&0x40 == 0x40
	sr.Break = v&0x10 == 0x10
	sr.DecimalMode = v&0x08 == 0x08
	sr.InterruptDisable = v&0x04 == 0x04
	sr.Zero = v&0x02 == 0x02
	sr.Carry = v&0x01 == 0x01
}

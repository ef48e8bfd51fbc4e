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

package ines

import (
	"fmt"

	"github.com/gophernes/gophernes/curated"
)

// Sentinal error patterns returned by Parse().
const (
	BadMagic        = "ines: bad magic (% 02x)"
	Truncated       = "ines: truncated image (%d bytes, %d expected)"
	NoPRG           = "ines: image has no PRG data"
	UnsupportedNES2 = "ines: NES 2.0 images are not supported"
)

// Sizes of the header and of each bank type.
const (
	HeaderSize  = 16
	PRGBankSize = 16384
	CHRBankSize = 8192
)

var magic = [4]uint8{0x4e, 0x45, 0x53, 0x1a}

// Header is the interpreted iNES header.
type Header struct {
	PRGBanks int
	CHRBanks int
	MapperID uint8

	// the image has the NES 2.0 signature
	NES2 bool
}

func (h Header) String() string {
	s := fmt.Sprintf("mapper %d: %d PRG, %d CHR", h.MapperID, h.PRGBanks, h.CHRBanks)
	if h.NES2 {
		s = fmt.Sprintf("%s [NES 2.0]", s)
	}
	return s
}

// Image is the result of a successful call to Parse().
type Image struct {
	Header

	// PRG is of length PRGBanks*PRGBankSize
	PRG []uint8

	// CHR is of length CHRBanks*CHRBankSize. nil if there are no CHR banks
	CHR []uint8
}

// ParseHeader interprets the first HeaderSize bytes of data.
func ParseHeader(data []uint8) (Header, error) {
	if len(data) < len(magic) || [4]uint8(data[:4]) != magic {
		n := len(data)
		if n > len(magic) {
			n = len(magic)
		}
		return Header{}, curated.Errorf(BadMagic, data[:n])
	}

	if len(data) < HeaderSize {
		return Header{}, curated.Errorf(Truncated, len(data), HeaderSize)
	}

	h := Header{
		PRGBanks: int(data[4]),
		CHRBanks: int(data[5]),
		MapperID: (data[6] >> 4) | (data[7] & 0xf0),
		NES2:     data[7]&0x0c == 0x08,
	}

	if h.PRGBanks == 0 {
		return Header{}, curated.Errorf(NoPRG)
	}

	return h, nil
}

// Parse the data as an iNES image.
func Parse(data []uint8) (Image, error) {
	h, err := ParseHeader(data)
	if err != nil {
		return Image{}, err
	}

	prgEnd := HeaderSize + h.PRGBanks*PRGBankSize
	chrEnd := prgEnd + h.CHRBanks*CHRBankSize
	if len(data) < chrEnd {
		return Image{}, curated.Errorf(Truncated, len(data), chrEnd)
	}

	img := Image{Header: h}

	img.PRG = make([]uint8, prgEnd-HeaderSize)
	copy(img.PRG, data[HeaderSize:prgEnd])

	if h.CHRBanks > 0 {
		img.CHR = make([]uint8, chrEnd-prgEnd)
		copy(img.CHR, data[prgEnd:chrEnd])
	}

	return img, nil
}

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

package instructions

// Operator is the operation performed by an instruction. More than one opcode
// may share an Operator, differing in addressing mode.
type Operator int

// List of supported operators.
const (
	Unknown Operator = iota
	Bpl
	Cld
	Lda
	Ldx
	Sei
	Sta
	Txs
)

func (op Operator) String() string {
	switch op {
	case Bpl:
		return "BPL"
	case Cld:
		return "CLD"
	case Lda:
		return "LDA"
	case Ldx:
		return "LDX"
	case Sei:
		return "SEI"
	case Sta:
		return "STA"
	case Txs:
		return "TXS"
	}
	return "???"
}

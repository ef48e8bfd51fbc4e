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

// Category of an instruction describes its effect on memory or the flow of
// the program.
type Category int

// List of instruction categories. Instructions that only affect registers
// are in the Read category.
const (
	Read Category = iota
	Write
	Flow
)

func (e Category) String() string {
	switch e {
	case Read:
		return "Read"
	case Write:
		return "Write"
	case Flow:
		return "Flow"
	}
	return "unknown effect"
}

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

package execution

import (
	"github.com/gophernes/gophernes/curated"
)

// Sentinal error patterns returned by IsValid().
const (
	NotFinalised     = "execution: not finalised"
	UnexpectedFault  = "execution: unexpected page fault"
	WrongByteCount   = "execution: unexpected number of bytes read during decode (%d instead of %d)"
	WrongCycleCount  = "execution: number of cycles wrong for %s (%d instead of %d)"
	WrongBranchCount = "execution: number of cycles wrong for %s (%d instead of %d, %d or %d)"
)

// IsValid checks whether the instance of Result contains information
// consistent with the instruction definition.
func (r Result) IsValid() error {
	if !r.Final || r.Defn == nil {
		return curated.Errorf(NotFinalised)
	}

	// page faults are only possible for page sensitive instructions
	if !r.Defn.PageSensitive && r.PageFault {
		return curated.Errorf(UnexpectedFault)
	}

	if r.ByteCount != r.Defn.Bytes {
		return curated.Errorf(WrongByteCount, r.ByteCount, r.Defn.Bytes)
	}

	if r.Defn.IsBranch() {
		// one extra cycle when the branch is taken and another when the
		// branch crosses a page
		expected := r.Defn.Cycles
		if r.BranchSuccess {
			expected++
			if r.PageFault {
				expected++
			}
		}
		if r.Cycles != expected {
			return curated.Errorf(WrongBranchCount, r.Defn.Operator, r.Cycles,
				r.Defn.Cycles, r.Defn.Cycles+1, r.Defn.Cycles+2)
		}
		return nil
	}

	if r.Cycles != r.Defn.Cycles {
		return curated.Errorf(WrongCycleCount, r.Defn.Operator, r.Cycles, r.Defn.Cycles)
	}

	return nil
}

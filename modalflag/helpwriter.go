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

package modalflag

import (
	"fmt"
	"io"
	"strings"
)

// helpWriter collects the output of the flag package so that it can be
// supplemented with sub-mode information before being printed.
type helpWriter struct {
	buffer []byte
}

func (hw *helpWriter) Write(p []byte) (n int, err error) {
	hw.buffer = append(hw.buffer, p...)
	return len(p), nil
}

func (hw *helpWriter) help(output io.Writer, banner string, subModes []string, additionalHelp string) {
	if output == nil {
		return
	}

	s := strings.Builder{}
	lines := strings.Split(string(hw.buffer), "\n")

	// the flag package prints only the usage line when there are no flags
	if len(lines) <= 2 && len(subModes) == 0 && additionalHelp == "" {
		s.WriteString("No help available")
		if banner != "" {
			s.WriteString(fmt.Sprintf(" for %s", banner))
		}
		s.WriteString("\n")
		io.WriteString(output, s.String())
		return
	}

	if banner != "" {
		s.WriteString(fmt.Sprintf("%s for %s mode\n", lines[0], banner))
	} else {
		s.WriteString(lines[0])
		s.WriteString("\n")
	}

	flags := strings.Join(lines[1:], "\n")
	s.WriteString(flags)

	if len(subModes) > 0 {
		if len(flags) > 0 {
			s.WriteString("\n")
		}
		s.WriteString(fmt.Sprintf("  available sub-modes: %s\n", strings.Join(subModes, ", ")))
		s.WriteString(fmt.Sprintf("    default: %s\n", subModes[0]))
	}

	if additionalHelp != "" {
		s.WriteString("\n")
		s.WriteString(additionalHelp)
		s.WriteString("\n")
	}

	io.WriteString(output, s.String())
}

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

package prefs

import (
	"fmt"
	"sort"
	"strings"
)

// each entry in the stack is a map of key/value pairs from a single call to
// PushCommandLineStack().
var commandLineStack []map[string]string

// SizeCommandLineStack returns the number of groups on the command line
// stack.
func SizeCommandLineStack() int {
	return len(commandLineStack)
}

// PushCommandLineStack adds a new group of preference values to the top of
// the stack. The string is of the form "key::value; key::value". Badly formed
// pairs are ignored.
func PushCommandLineStack(prefs string) {
	cl := make(map[string]string)

	for _, p := range strings.Split(prefs, ";") {
		kv := strings.Split(p, "::")
		if len(kv) == 2 {
			cl[strings.TrimSpace(kv[0])] = strings.TrimSpace(kv[1])
		}
	}

	commandLineStack = append(commandLineStack, cl)
}

// PopCommandLineStack removes the top group from the stack. It returns the
// values that were not consumed by GetCommandLinePref(), formatted in the
// same way as the string given to PushCommandLineStack(). Keys are sorted.
func PopCommandLineStack() string {
	if len(commandLineStack) == 0 {
		return ""
	}

	popped := commandLineStack[len(commandLineStack)-1]
	commandLineStack = commandLineStack[:len(commandLineStack)-1]

	keys := make([]string, 0, len(popped))
	for key := range popped {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	s := make([]string, 0, len(keys))
	for _, key := range keys {
		s = append(s, fmt.Sprintf("%s::%s", key, popped[key]))
	}

	return strings.Join(s, "; ")
}

// GetCommandLinePref returns the value for the key from the top of the stack.
// The value is consumed and will not be returned again.
func GetCommandLinePref(key string) (bool, string) {
	if len(commandLineStack) == 0 {
		return false, ""
	}

	cl := commandLineStack[len(commandLineStack)-1]
	if v, ok := cl[key]; ok {
		delete(cl, key)
		return true, v
	}

	return false, ""
}

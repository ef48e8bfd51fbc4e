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

	"github.com/gophernes/gophernes/curated"
)

// Sentinal error patterns for Group operations.
const (
	DuplicateKey = "prefs: duplicate key (%s)"
	UnknownKey   = "prefs: unknown key (%s)"
)

// Group is a collection of preference values, each with a unique key.
type Group struct {
	entries map[string]pref
}

// NewGroup is the preferred method of initialisation for the Group type.
func NewGroup() *Group {
	return &Group{
		entries: make(map[string]pref),
	}
}

// Add preference value to the group. If the key has been pushed on the
// command line stack then the command line value is set immediately.
func (g *Group) Add(key string, p pref) error {
	if _, ok := g.entries[key]; ok {
		return curated.Errorf(DuplicateKey, key)
	}
	g.entries[key] = p

	if ok, v := GetCommandLinePref(key); ok {
		if err := p.Set(v); err != nil {
			return curated.Errorf("prefs: %s: %v", key, err)
		}
	}

	return nil
}

// Set the value of the preference with the key.
func (g *Group) Set(key string, v Value) error {
	p, ok := g.entries[key]
	if !ok {
		return curated.Errorf(UnknownKey, key)
	}
	return p.Set(v)
}

// Get the value of the preference with the key.
func (g *Group) Get(key string) (Value, error) {
	p, ok := g.entries[key]
	if !ok {
		return nil, curated.Errorf(UnknownKey, key)
	}
	return p.Get(), nil
}

// Keys returns a sorted list of the keys in the group.
func (g *Group) Keys() []string {
	keys := make([]string, 0, len(g.entries))
	for k := range g.entries {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// String lists every key and value in the group, one per line.
func (g *Group) String() string {
	s := strings.Builder{}
	for _, k := range g.Keys() {
		s.WriteString(fmt.Sprintf("%s :: %s\n", k, g.entries[k]))
	}
	return s.String()
}

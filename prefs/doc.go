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

// Package prefs holds configuration values for the emulator. Values are typed
// (Bool and Int) and safe to read from any goroutine.
//
// Related values are collected into a Group, each value with a unique key.
// Keys are conventionally dotted, the first part naming the area of the
// emulator, for example "cartridge.strictnes2".
//
// Values can be overridden from the command line. The PushCommandLineStack()
// function takes a string of key/value pairs:
//
//	prefs.PushCommandLineStack("cartridge.strictnes2::true; nes.logfaults::false")
//
// Any Group.Add() made while that string is on the top of the stack will take
// the value from the command line rather than the default. Each command line
// value is consumed when it is used. PopCommandLineStack() removes the top of
// the stack and returns the values that were never consumed, which is useful
// for reporting unknown keys.
package prefs

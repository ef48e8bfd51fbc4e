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

// Package modalflag is a wrapper for the flag package in the Go standard
// library. It provides a convenient method of handling program modes (and
// sub-modes) and allows different flags for each mode.
//
// Rather than calling Parse() with the list of arguments, the arguments are
// first given to NewArgs() and then Parse() is called with no arguments:
//
//	md := modalflag.Modes{Output: os.Stdout}
//	md.NewArgs(os.Args[1:])
//	md.AddSubModes("RUN", "STEP")
//	p, err := md.Parse()
//
// A mode is a special command line argument that puts the program into a
// different mode of operation, in the same way that the go command has build,
// test, vet, etc. Sub-modes are added with AddSubModes(). The first sub-mode is
// the default and is selected if the first non-flag argument does not match
// any of the sub-modes. Sub-mode comparisons are case insensitive.
//
// Once the mode has been decided by Parse(), NewMode() prepares for the flags
// of that mode and Parse() is called again:
//
//	switch md.Mode() {
//	case "RUN":
//		md.NewMode()
//		frames := md.AddInt("frames", 60, "number of frames to run")
//		p, err := md.Parse()
//		...
//		run(md.GetArg(0), *frames)
//	}
//
// Modes can be chained as deeply as required. The Path() function returns the
// list of modes so far selected, separated by a forward slash.
//
// Non-flag arguments are retrieved with RemainingArgs() or GetArg().
package modalflag

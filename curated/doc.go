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

// Package curated is a helper package for the plain Go language error type.
// Curated errors implement the error interface.
//
// Curated errors are created with the Errorf() function. It takes a pattern
// and placeholder values, much like fmt.Errorf(). The pattern is what
// identifies the error. Packages that produce errors declare their patterns as
// exported string constants so that callers can test for them:
//
//	const UnsupportedMapper = "cartridge: unsupported mapper (%d)"
//
//	err := curated.Errorf(UnsupportedMapper, id)
//
//	if curated.Is(err, cartridge.UnsupportedMapper) {
//		fmt.Println("true")
//	}
//
// The Has() function is similar but checks if a pattern occurs anywhere in
// the error chain. In the following example Is() fails because the outermost
// pattern is "nes: frame: %v" but Has() succeeds:
//
//	f := curated.Errorf("nes: frame: %v", err)
//
//	curated.Is(f, cartridge.UnsupportedMapper)  // false
//	curated.Has(f, cartridge.UnsupportedMapper) // true
//
// The IsAny() function answers whether the error was created by
// curated.Errorf() at all. We can think of the difference as being 'expected'
// and 'unexpected' errors.
//
// The Error() implementation normalises the message by removing duplicate
// adjacent parts. Parts are separated by the sub-string ": ". So a chain that
// would print as
//
//	cartridge: cartridge: unsupported mapper (4)
//
// is printed as
//
//	cartridge: unsupported mapper (4)
//
// which means that callers need not worry about whether a callee has already
// prefixed the error with the package name.
package curated

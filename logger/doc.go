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

// Package logger is the central log repository for GopherNES. Log entries are
// made with the Log() and Logf() functions. The tag argument names the source
// of the entry, usually the package name:
//
//	logger.Log(logger.Allow, "ines", "NES 2.0 header detected")
//
// Consecutive identical entries are folded into one with a repeat count. The
// log has a maximum size. Older entries are dropped when it is reached.
//
// The Permission argument says whether the caller may create an entry. The
// Allow value can be used when an entry should always be made.
//
// Entries can be echoed to an io.Writer as they are made with SetEcho(). The
// Colorizer type wraps a writer and highlights the tag portion of each entry
// with ANSI escape codes. It is intended for echoing to a terminal.
package logger

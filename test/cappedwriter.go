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

package test

import (
	"fmt"
)

// CappedWriter is an implementation of io.Writer that silently drops output
// once a predefined number of bytes has been buffered. Useful for capturing
// the first part of output that may otherwise be unbounded.
type CappedWriter struct {
	buffer []byte
	size   int
}

// NewCappedWriter is the preferred method of initialisation for the
// CappedWriter type.
func NewCappedWriter(size int) (*CappedWriter, error) {
	if size <= 0 {
		return nil, fmt.Errorf("capped writer: invalid size (%d)", size)
	}
	return &CappedWriter{
		size:   size,
		buffer: make([]byte, 0, size),
	}, nil
}

func (r *CappedWriter) String() string {
	return string(r.buffer)
}

// Reset empties the buffer.
func (r *CappedWriter) Reset() {
	r.buffer = r.buffer[:0]
}

// Write implements io.Writer. The number of bytes returned is the number
// actually buffered, which will be less than len(p) once the cap is reached.
func (r *CappedWriter) Write(p []byte) (n int, err error) {
	n = r.size - len(r.buffer)
	if n > len(p) {
		n = len(p)
	}
	r.buffer = append(r.buffer, p[:n]...)
	return n, nil
}

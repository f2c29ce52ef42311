/*
Copyright © 2026 the polyline authors.
This file is part of polyline.

polyline is free software: you can redistribute it and/or modify
it under the terms of the GNU General Public License as published by
the Free Software Foundation, either version 3 of the License, or
(at your option) any later version.

polyline is distributed in the hope that it will be useful,
but WITHOUT ANY WARRANTY; without even the implied warranty of
MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
GNU General Public License for more details.

You should have received a copy of the GNU General Public License
along with polyline.  If not, see <http://www.gnu.org/licenses/>.
*/

package polyline

import "math"

// maxShift bounds the number of 5-bit chunks in a single value so that
// it fits in 64 bits.
const maxShift = 60

// readInt decodes one signed variable-length integer starting at the
// current position of c. The accumulator is seeded with 1, which cancels
// the continuation bit of every chunk but the last.
func (c *Cursor) readInt() (int64, error) {
	start := c.index
	result := uint64(1)
	var shift uint
	for {
		if c.index >= len(c.input) {
			return 0, formatErrorf(start, "unterminated value")
		}
		ch := c.input[c.index]
		if ch < dataThreshold || ch > '~' {
			return 0, formatErrorf(c.index, "unexpected %q in encoded value", ch)
		}
		if shift > maxShift {
			return 0, formatErrorf(start, "encoded value overflows 64 bits")
		}
		c.index++
		b := int64(ch) - 64
		result += uint64(b) << shift
		shift += 5
		if b < 0x1f {
			break
		}
	}
	if result&1 != 0 {
		return ^int64(result >> 1), nil
	}
	return int64(result >> 1), nil
}

// appendInt appends the encoding of v to dst and returns the extended
// slice.
func appendInt(dst []byte, v int64) []byte {
	u := uint64(v) << 1
	if v < 0 {
		u = ^u
	}
	for u >= 0x20 {
		dst = append(dst, byte(0x20|(u&0x1f))+63)
		u >>= 5
	}
	return append(dst, byte(u)+63)
}

// toInt converts a coordinate or argument to its integer representation.
func toInt(v float64) int64 {
	return int64(math.Round(v * scale))
}

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

import "github.com/ctessum/geom"

// Cursor reads keys, arguments and coordinates from an encoded string.
// It tracks a running offset for each axis; coordinates are stored as
// deltas from the previous coordinate of the same shape, and the offsets
// return to zero whenever a key is read.
//
// The first ordinate of each pair is called lat and the second lng, but
// shapes receive them as x and y respectively.
//
// A Cursor is used for a single parse and is not safe for concurrent use.
type Cursor struct {
	input    string
	index    int
	lat, lng int64
}

// NewCursor returns a Cursor positioned at the start of input.
func NewCursor(input string) *Cursor {
	return &Cursor{input: input}
}

// Offset returns the index of the next character to be read.
func (c *Cursor) Offset() int { return c.index }

// IsDone reports whether all of the input has been consumed.
func (c *Cursor) IsDone() bool { return c.index >= len(c.input) }

// IsData reports whether the next character is coordinate or argument data.
func (c *Cursor) IsData() bool {
	return c.index < len(c.input) && c.input[c.index] >= dataThreshold
}

// IsEvent reports whether the next character is a key or control character.
func (c *Cursor) IsEvent() bool {
	return c.index < len(c.input) && c.input[c.index] < dataThreshold
}

// Peek returns the next character without consuming it, or 0 if the
// input is exhausted.
func (c *Cursor) Peek() byte {
	if c.IsDone() {
		return 0
	}
	return c.input[c.index]
}

// ReadKey consumes and returns the next character and resets the
// coordinate offsets.
func (c *Cursor) ReadKey() (byte, error) {
	if c.IsDone() {
		return 0, formatErrorf(c.index, "unexpected end of input")
	}
	c.lat, c.lng = 0, 0
	k := c.input[c.index]
	c.index++
	return k, nil
}

// ReadLat decodes the next delta on the first axis and returns the
// resulting coordinate.
func (c *Cursor) ReadLat() (float64, error) {
	v, err := c.readInt()
	if err != nil {
		return 0, err
	}
	c.lat += v
	return float64(c.lat) * Precision, nil
}

// ReadLng decodes the next delta on the second axis and returns the
// resulting coordinate.
func (c *Cursor) ReadLng() (float64, error) {
	v, err := c.readInt()
	if err != nil {
		return 0, err
	}
	c.lng += v
	return float64(c.lng) * Precision, nil
}

// ReadDouble decodes an absolute value such as a shape argument. The
// coordinate offsets are not affected.
func (c *Cursor) ReadDouble() (float64, error) {
	v, err := c.readInt()
	if err != nil {
		return 0, err
	}
	return float64(v) * Precision, nil
}

// ReadPoint reads one coordinate pair.
func (c *Cursor) ReadPoint() (geom.Point, error) {
	x, err := c.ReadLat()
	if err != nil {
		return geom.Point{}, err
	}
	y, err := c.ReadLng()
	if err != nil {
		return geom.Point{}, err
	}
	return geom.Point{X: x, Y: y}, nil
}

// Points returns a scanner over the coordinate pairs that follow the
// current position. It stops at the next key or at the end of input.
func (c *Cursor) Points() *PointScanner {
	return &PointScanner{c: c}
}

// ReadPoints reads all of the coordinate pairs up to the next key or
// the end of input.
func (c *Cursor) ReadPoints() ([]geom.Point, error) {
	var points []geom.Point
	s := c.Points()
	for s.Scan() {
		points = append(points, s.Point())
	}
	return points, s.Err()
}

// PointScanner reads coordinate pairs one at a time. It can only be
// used once.
type PointScanner struct {
	c   *Cursor
	p   geom.Point
	err error
}

// Scan advances to the next coordinate pair. It returns false when there
// is no more coordinate data or an error occurs; call Err afterwards to
// tell the two apart.
func (s *PointScanner) Scan() bool {
	if s.err != nil || !s.c.IsData() {
		return false
	}
	s.p, s.err = s.c.ReadPoint()
	return s.err == nil
}

// Point returns the most recent pair read by Scan.
func (s *PointScanner) Point() geom.Point { return s.p }

// Err returns the first error encountered by Scan.
func (s *PointScanner) Err() error { return s.err }

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

// Package polyline reads and writes two-dimensional shapes in a compact,
// ASCII-safe text format. A single string holds one shape or an ordered
// sequence of shapes. Coordinates are stored as signed, variable-length
// integer deltas in the manner of the Google encoded polyline algorithm
// (https://developers.google.com/maps/documentation/utilities/polylinealgorithm)
// with 1e-5 precision, and each shape is introduced by a one-character key
// that may be followed by a bracketed numeric argument.
//
// For example, "0" followed by two encoded values is a point, and
// "4(" + radius + ")" followed by two encoded values is a circle.
package polyline

import "fmt"

// Version gives the version number.
const Version = "0.1.0"

// Precision is the coordinate resolution of the format.
const Precision = 1e-5

// scale converts coordinates to their integer representation.
const scale = 1e5

// Control characters. All keys sort below dataThreshold, which is
// how the reader distinguishes keys from coordinate data.
const (
	KeyArgStart  = '('
	KeyArgEnd    = ')'
	KeySeparator = ' '

	dataThreshold = '?'
)

// Kind is the type of shape introduced by a key character.
type Kind byte

// The shape kinds. The value of each Kind is its key character.
const (
	KindPoint      Kind = '0'
	KindLine       Kind = '1'
	KindPolygon    Kind = '2'
	KindMultiPoint Kind = '3'
	KindCircle     Kind = '4'
	KindBox        Kind = '5'
)

// kindOf returns the Kind for key c and whether c is a known key.
func kindOf(c byte) (Kind, bool) {
	switch k := Kind(c); k {
	case KindPoint, KindLine, KindPolygon, KindMultiPoint, KindCircle, KindBox:
		return k, true
	default:
		return 0, false
	}
}

// Key returns the key character of k.
func (k Kind) Key() byte { return byte(k) }

func (k Kind) String() string {
	switch k {
	case KindPoint:
		return "point"
	case KindLine:
		return "line"
	case KindPolygon:
		return "polygon"
	case KindMultiPoint:
		return "multipoint"
	case KindCircle:
		return "circle"
	case KindBox:
		return "box"
	default:
		return fmt.Sprintf("Kind(%q)", byte(k))
	}
}

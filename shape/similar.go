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

package shape

import (
	"math"

	"github.com/ctessum/geom"
)

// Similar determines whether a and b are the same kind of shape with
// coordinates and arguments that match within tolerance. Collection
// members must match in order.
func Similar(a, b Shape, tolerance float64) bool {
	switch aa := a.(type) {
	case Point:
		bb, ok := b.(Point)
		return ok && pointSimilar(aa.Point, bb.Point, tolerance)
	case LineString:
		bb, ok := b.(LineString)
		return ok && pointsSimilar(aa.LineString, bb.LineString, tolerance)
	case BufferedLineString:
		bb, ok := b.(BufferedLineString)
		return ok && similar(aa.Buf, bb.Buf, tolerance) &&
			pointsSimilar(aa.Line, bb.Line, tolerance)
	case Rectangle:
		bb, ok := b.(Rectangle)
		return ok && pointSimilar(aa.Min, bb.Min, tolerance) &&
			pointSimilar(aa.Max, bb.Max, tolerance)
	case Circle:
		bb, ok := b.(Circle)
		return ok && similar(aa.Radius, bb.Radius, tolerance) &&
			pointSimilar(aa.Center, bb.Center, tolerance)
	case Collection:
		bb, ok := b.(Collection)
		if !ok || len(aa) != len(bb) {
			return false
		}
		for i := range aa {
			if !Similar(aa[i], bb[i], tolerance) {
				return false
			}
		}
		return true
	case Geometry:
		bb, ok := b.(Geometry)
		return ok && aa.Geom.Similar(bb.Geom, tolerance)
	default:
		return false
	}
}

func similar(a, b, e float64) bool {
	return math.Abs(a-b) <= e
}

func pointSimilar(p1, p2 geom.Point, e float64) bool {
	return similar(p1.X, p2.X, e) && similar(p1.Y, p2.Y, e)
}

func pointsSimilar(p1s, p2s []geom.Point, e float64) bool {
	if len(p1s) != len(p2s) {
		return false
	}
	for i := range p1s {
		if !pointSimilar(p1s[i], p2s[i], e) {
			return false
		}
	}
	return true
}

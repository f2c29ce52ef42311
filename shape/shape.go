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

// Package shape holds the two-dimensional shapes that the polyline codec
// reads and writes, together with the factory used to construct them.
// Coordinates are held as github.com/ctessum/geom points.
package shape

import (
	"math"

	"github.com/ctessum/geom"
)

// Shape is a two-dimensional shape.
type Shape interface {
	Bounds() *geom.Bounds
}

// Point is a single location.
type Point struct {
	geom.Point
}

// LineString is a path through two or more points.
type LineString struct {
	geom.LineString
}

// BufferedLineString is a line string widened by Buf on either side.
type BufferedLineString struct {
	Line geom.LineString
	Buf  float64
}

// Bounds gives the rectangular extents of the line and its buffer.
func (l BufferedLineString) Bounds() *geom.Bounds {
	b := l.Line.Bounds()
	if b.Empty() {
		return b
	}
	b.Min.X -= l.Buf
	b.Min.Y -= l.Buf
	b.Max.X += l.Buf
	b.Max.Y += l.Buf
	return b
}

// Rectangle is an axis-aligned box. In geographic contexts Min.X may be
// greater than Max.X when the box crosses the antimeridian.
type Rectangle struct {
	Min, Max geom.Point
}

// Bounds gives the rectangular extents of r.
func (r Rectangle) Bounds() *geom.Bounds {
	b := geom.NewBounds()
	b.Min = geom.Point{X: math.Min(r.Min.X, r.Max.X), Y: r.Min.Y}
	b.Max = geom.Point{X: math.Max(r.Min.X, r.Max.X), Y: r.Max.Y}
	return b
}

// Circle is a center and a radius, in the units of the coordinates.
type Circle struct {
	Center geom.Point
	Radius float64
}

// Bounds gives the rectangular extents of c.
func (c Circle) Bounds() *geom.Bounds {
	b := geom.NewBounds()
	b.Min = geom.Point{X: c.Center.X - c.Radius, Y: c.Center.Y - c.Radius}
	b.Max = geom.Point{X: c.Center.X + c.Radius, Y: c.Center.Y + c.Radius}
	return b
}

// Collection is an ordered list of shapes of arbitrary type.
type Collection []Shape

// Bounds gives the rectangular extents of all of the shapes in c.
func (c Collection) Bounds() *geom.Bounds {
	b := geom.NewBounds()
	for _, s := range c {
		b.Extend(s.Bounds())
	}
	return b
}

// Geometry is a shape backed by a single geometry engine object, for
// example a polygon with holes or a multi-point.
type Geometry struct {
	geom.Geom
}

// Bounds gives the rectangular extents of the underlying geometry.
func (g Geometry) Bounds() *geom.Bounds {
	return g.Geom.Bounds()
}

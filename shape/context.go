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
	"fmt"

	"github.com/ctessum/geom"
)

// Factory holds the shape construction operations required to read
// a serialized shape.
type Factory interface {
	MakePoint(x, y float64) (Shape, error)
	MakeLineString(points []geom.Point) (Shape, error)
	MakeBufferedLineString(points []geom.Point, buf float64) (Shape, error)
	MakeRectangle(lowerLeft, upperRight geom.Point) (Shape, error)
	MakeCircle(x, y, radius float64) (Shape, error)
	MakeCollection(shapes []Shape) (Shape, error)
}

// InvalidShapeError is returned when a Factory is asked to create a shape
// that it can not represent.
type InvalidShapeError struct {
	Msg string
}

func (e *InvalidShapeError) Error() string {
	return "shape: invalid shape: " + e.Msg
}

func invalid(format string, args ...interface{}) error {
	return &InvalidShapeError{Msg: fmt.Sprintf(format, args...)}
}

// Context is the generic Factory implementation.
type Context struct {
	// Geo specifies whether coordinates are geographic, in which case
	// x must be within [-180, 180] and y within [-90, 90] degrees.
	Geo bool
}

var (
	// Geographic is a Context for longitude-latitude coordinates.
	Geographic = &Context{Geo: true}

	// Planar is a Context for unbounded Cartesian coordinates.
	Planar = &Context{}
)

// VerifyPoint returns an error if p is out of range for c.
func (c *Context) VerifyPoint(p geom.Point) error {
	if !c.Geo {
		return nil
	}
	if p.X < -180 || p.X > 180 {
		return invalid("bad x value %g is not in boundary [-180, 180]", p.X)
	}
	if p.Y < -90 || p.Y > 90 {
		return invalid("bad y value %g is not in boundary [-90, 90]", p.Y)
	}
	return nil
}

func (c *Context) verifyPoints(points []geom.Point) error {
	for _, p := range points {
		if err := c.VerifyPoint(p); err != nil {
			return err
		}
	}
	return nil
}

// MakePoint creates a Point.
func (c *Context) MakePoint(x, y float64) (Shape, error) {
	p := geom.Point{X: x, Y: y}
	if err := c.VerifyPoint(p); err != nil {
		return nil, err
	}
	return Point{Point: p}, nil
}

// MakeLineString creates a LineString.
func (c *Context) MakeLineString(points []geom.Point) (Shape, error) {
	if err := c.verifyPoints(points); err != nil {
		return nil, err
	}
	return LineString{LineString: geom.LineString(points)}, nil
}

// MakeBufferedLineString creates a BufferedLineString. buf must not be
// negative.
func (c *Context) MakeBufferedLineString(points []geom.Point, buf float64) (Shape, error) {
	if buf < 0 {
		return nil, invalid("buffer distance %g must be >= 0", buf)
	}
	if err := c.verifyPoints(points); err != nil {
		return nil, err
	}
	return BufferedLineString{Line: geom.LineString(points), Buf: buf}, nil
}

// MakeRectangle creates a Rectangle from its lower-left and upper-right
// corners.
func (c *Context) MakeRectangle(lowerLeft, upperRight geom.Point) (Shape, error) {
	if err := c.verifyPoints([]geom.Point{lowerLeft, upperRight}); err != nil {
		return nil, err
	}
	if lowerLeft.Y > upperRight.Y {
		return nil, invalid("rectangle min y %g is greater than max y %g", lowerLeft.Y, upperRight.Y)
	}
	if !c.Geo && lowerLeft.X > upperRight.X {
		return nil, invalid("rectangle min x %g is greater than max x %g", lowerLeft.X, upperRight.X)
	}
	return Rectangle{Min: lowerLeft, Max: upperRight}, nil
}

// MakeCircle creates a Circle.
func (c *Context) MakeCircle(x, y, radius float64) (Shape, error) {
	center := geom.Point{X: x, Y: y}
	if err := c.VerifyPoint(center); err != nil {
		return nil, err
	}
	if radius < 0 {
		return nil, invalid("circle radius %g must be >= 0", radius)
	}
	if c.Geo && radius > 180 {
		return nil, invalid("circle radius %g must be <= 180 degrees", radius)
	}
	return Circle{Center: center, Radius: radius}, nil
}

// MakeCollection creates a Collection holding shapes in their given order.
func (c *Context) MakeCollection(shapes []Shape) (Shape, error) {
	return Collection(shapes), nil
}

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

import (
	"fmt"
	"io"
	"io/ioutil"
	"strings"

	"github.com/spatialmodel/polyline/shape"
)

// FormatName is the name of the format.
const FormatName = "POLY"

// Builder creates the shapes encountered by a Reader. Besides the
// shape.Factory operations it reads polygons, whose ring layout depends
// on the geometry engine.
type Builder interface {
	shape.Factory

	// ReadPolygon reads the rings of a polygon starting at the current
	// position of c.
	ReadPolygon(c *Cursor) (shape.Shape, error)
}

// Generic returns a Builder that creates shapes with f and does not
// support polygons.
func Generic(f shape.Factory) Builder {
	return generic{Factory: f}
}

type generic struct {
	shape.Factory
}

func (generic) ReadPolygon(c *Cursor) (shape.Shape, error) {
	return nil, formatErrorf(c.Offset(), "polygons are not supported by this reader")
}

// Reader parses encoded shapes.
type Reader struct {
	b Builder
}

// NewReader returns a Reader that creates shapes using b.
func NewReader(b Builder) *Reader {
	return &Reader{b: b}
}

// FormatName returns the name of the format read by r.
func (r *Reader) FormatName() string { return FormatName }

// Decode reads all of rd and parses it as a single encoded value.
func (r *Reader) Decode(rd io.Reader) (shape.Shape, error) {
	b, err := ioutil.ReadAll(rd)
	if err != nil {
		return nil, fmt.Errorf("polyline: reading input: %w", err)
	}
	return r.Read(string(b))
}

// ReadIfSupported parses s if it looks like an encoded shape. It
// returns a nil shape and a nil error if s does not start with a shape
// key or is not well formed. Errors from the Builder, such as coordinates
// out of range, are still returned.
func (r *Reader) ReadIfSupported(s string) (shape.Shape, error) {
	s = strings.TrimSpace(s)
	if len(s) == 0 || s[0] < '0' || s[0] > '9' {
		return nil, nil
	}
	sh, err := r.Read(s)
	if IsFormatError(err) {
		return nil, nil
	}
	return sh, err
}

// Read parses s, after trimming surrounding white space. If s holds
// more than one shape, or a multipoint, the result is created by the
// Builder's MakeCollection.
func (r *Reader) Read(s string) (shape.Shape, error) {
	s = strings.TrimSpace(s)
	if len(s) == 0 {
		return nil, formatErrorf(0, "empty input")
	}
	c := NewCursor(s)

	var last shape.Shape
	var shapes []shape.Shape
	collection := false
	for !c.IsDone() {
		start := c.Offset()
		key, err := c.ReadKey()
		if err != nil {
			return nil, err
		}
		if key == KeySeparator {
			continue
		}
		kind, ok := kindOf(key)
		if !ok {
			return nil, formatErrorf(start, "expecting a shape key, not %q", key)
		}
		if last != nil {
			shapes = append(shapes, last)
			last = nil
		}

		var arg float64
		hasArg := false
		if c.Peek() == KeyArgStart {
			c.ReadKey()
			if arg, err = c.ReadDouble(); err != nil {
				return nil, err
			}
			end := c.Offset()
			if k, err := c.ReadKey(); err != nil || k != KeyArgEnd {
				return nil, formatErrorf(end, "expecting an argument end")
			}
			hasArg = true
		}
		if !c.IsData() {
			return nil, formatErrorf(c.Offset(), "%v key should be followed by data", kind)
		}

		switch kind {
		case KindPoint:
			last, err = r.point(c)
		case KindLine:
			last, err = r.line(c, arg, hasArg)
		case KindBox:
			last, err = r.box(c)
		case KindMultiPoint:
			var points []shape.Shape
			points, err = r.multiPoint(c)
			shapes = append(shapes, points...)
			collection = true
		case KindCircle:
			if !hasArg {
				return nil, formatErrorf(start, "circle requires a radius argument")
			}
			last, err = r.circle(c, arg)
		case KindPolygon:
			last, err = r.b.ReadPolygon(c)
		}
		if err != nil {
			if IsFormatError(err) {
				return nil, err
			}
			return nil, fmt.Errorf("polyline: creating %v at offset %d: %w", kind, start, err)
		}
	}

	if collection || shapes != nil {
		if last != nil {
			shapes = append(shapes, last)
		}
		return r.b.MakeCollection(shapes)
	}
	if last == nil {
		return nil, formatErrorf(c.Offset(), "no shape found")
	}
	return last, nil
}

func (r *Reader) point(c *Cursor) (shape.Shape, error) {
	p, err := c.ReadPoint()
	if err != nil {
		return nil, err
	}
	return r.b.MakePoint(p.X, p.Y)
}

func (r *Reader) line(c *Cursor, buf float64, buffered bool) (shape.Shape, error) {
	points, err := c.ReadPoints()
	if err != nil {
		return nil, err
	}
	if buffered {
		return r.b.MakeBufferedLineString(points, buf)
	}
	return r.b.MakeLineString(points)
}

func (r *Reader) box(c *Cursor) (shape.Shape, error) {
	lowerLeft, err := c.ReadPoint()
	if err != nil {
		return nil, err
	}
	upperRight, err := c.ReadPoint()
	if err != nil {
		return nil, err
	}
	return r.b.MakeRectangle(lowerLeft, upperRight)
}

// multiPoint returns each point as a separate shape.
func (r *Reader) multiPoint(c *Cursor) ([]shape.Shape, error) {
	var points []shape.Shape
	s := c.Points()
	for s.Scan() {
		p := s.Point()
		pt, err := r.b.MakePoint(p.X, p.Y)
		if err != nil {
			return nil, err
		}
		points = append(points, pt)
	}
	return points, s.Err()
}

func (r *Reader) circle(c *Cursor, radius float64) (shape.Shape, error) {
	p, err := c.ReadPoint()
	if err != nil {
		return nil, err
	}
	return r.b.MakeCircle(p.X, p.Y, radius)
}

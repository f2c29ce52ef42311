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

// Package geomshape reads and writes polyline-encoded shapes as
// github.com/ctessum/geom geometries. In addition to the generic shapes
// it supports polygons with holes, and it merges collections of
// same-kind geometries into a single multi-geometry.
package geomshape

import (
	"github.com/ctessum/geom"
	"github.com/sirupsen/logrus"
	"github.com/spatialmodel/polyline"
	"github.com/spatialmodel/polyline/shape"
)

// Context is a shape.Factory that represents points and line strings
// as geometries. Rectangles, circles and buffered line strings have no
// geometry counterpart and are created by the embedded shape.Context.
type Context struct {
	*shape.Context
}

// NewContext returns a Context that validates coordinates as
// geographic if geo is true.
func NewContext(geo bool) *Context {
	return &Context{Context: &shape.Context{Geo: geo}}
}

// MakePoint creates a point geometry.
func (c *Context) MakePoint(x, y float64) (shape.Shape, error) {
	p := geom.Point{X: x, Y: y}
	if err := c.VerifyPoint(p); err != nil {
		return nil, err
	}
	return shape.Geometry{Geom: p}, nil
}

// MakeLineString creates a line string geometry.
func (c *Context) MakeLineString(points []geom.Point) (shape.Shape, error) {
	for _, p := range points {
		if err := c.VerifyPoint(p); err != nil {
			return nil, err
		}
	}
	return shape.Geometry{Geom: geom.LineString(points)}, nil
}

// MakeShape wraps g as a shape.
func (c *Context) MakeShape(g geom.Geom) shape.Shape {
	return shape.Geometry{Geom: g}
}

// NewReader returns a polyline.Reader that creates geometries using a
// geographic Context.
func NewReader() *polyline.Reader {
	return polyline.NewReader(NewBuilder(NewContext(true)))
}

// NewWriter returns a polyline.Writer that can encode geometries.
func NewWriter() *polyline.Writer {
	return &polyline.Writer{Ext: Writer{}}
}

// Builder is a polyline.Builder that creates geometries.
type Builder struct {
	*Context

	// Log receives a debug message whenever a collection can not be
	// merged into a single geometry.
	Log logrus.FieldLogger
}

// NewBuilder returns a Builder that creates shapes with c.
func NewBuilder(c *Context) *Builder {
	return &Builder{Context: c, Log: logrus.StandardLogger()}
}

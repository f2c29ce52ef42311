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

package geomshape

import (
	"fmt"

	"github.com/ctessum/geom"
	"github.com/ctessum/geom/proj"
	"github.com/spatialmodel/polyline/shape"
)

// Transform returns a copy of s with every coordinate passed through t.
// Circle radii and line buffers are left unchanged, so they are only
// meaningful when t preserves distances.
func Transform(s shape.Shape, t proj.Transformer) (shape.Shape, error) {
	switch ss := s.(type) {
	case shape.Geometry:
		g, err := transformGeom(ss.Geom, t)
		if err != nil {
			return nil, err
		}
		return shape.Geometry{Geom: g}, nil
	case shape.Point:
		p, err := transformPoint(ss.Point, t)
		return shape.Point{Point: p}, err
	case shape.LineString:
		l, err := transformPoints(ss.LineString, t)
		return shape.LineString{LineString: l}, err
	case shape.BufferedLineString:
		l, err := transformPoints(ss.Line, t)
		return shape.BufferedLineString{Line: l, Buf: ss.Buf}, err
	case shape.Rectangle:
		ll, err := transformPoint(ss.Min, t)
		if err != nil {
			return nil, err
		}
		ur, err := transformPoint(ss.Max, t)
		return shape.Rectangle{Min: ll, Max: ur}, err
	case shape.Circle:
		c, err := transformPoint(ss.Center, t)
		return shape.Circle{Center: c, Radius: ss.Radius}, err
	case shape.Collection:
		c := make(shape.Collection, len(ss))
		for i, m := range ss {
			var err error
			if c[i], err = Transform(m, t); err != nil {
				return nil, err
			}
		}
		return c, nil
	}
	return nil, fmt.Errorf("geomshape: can not transform shape type %T", s)
}

func transformGeom(g geom.Geom, t proj.Transformer) (geom.Geom, error) {
	switch gg := g.(type) {
	case geom.Point:
		return transformPoint(gg, t)
	case geom.LineString:
		l, err := transformPoints(gg, t)
		return geom.LineString(l), err
	case geom.MultiPoint:
		mp, err := transformPoints(gg, t)
		return geom.MultiPoint(mp), err
	case geom.Polygon:
		return transformPolygon(gg, t)
	case geom.MultiLineString:
		ml := make(geom.MultiLineString, len(gg))
		for i, l := range gg {
			var err error
			if ml[i], err = transformPoints(l, t); err != nil {
				return nil, err
			}
		}
		return ml, nil
	case geom.MultiPolygon:
		mp := make(geom.MultiPolygon, len(gg))
		for i, p := range gg {
			var err error
			if mp[i], err = transformPolygon(p, t); err != nil {
				return nil, err
			}
		}
		return mp, nil
	case geom.GeometryCollection:
		gc := make(geom.GeometryCollection, len(gg))
		for i, m := range gg {
			var err error
			if gc[i], err = transformGeom(m, t); err != nil {
				return nil, err
			}
		}
		return gc, nil
	case *geom.Bounds:
		ll, err := transformPoint(gg.Min, t)
		if err != nil {
			return nil, err
		}
		ur, err := transformPoint(gg.Max, t)
		if err != nil {
			return nil, err
		}
		return &geom.Bounds{Min: ll, Max: ur}, nil
	}
	return nil, fmt.Errorf("geomshape: can not transform geometry type %T", g)
}

func transformPoint(p geom.Point, t proj.Transformer) (geom.Point, error) {
	x, y, err := t(p.X, p.Y)
	if err != nil {
		return geom.Point{}, fmt.Errorf("geomshape: transforming point %v: %w", p, err)
	}
	return geom.Point{X: x, Y: y}, nil
}

func transformPoints(points []geom.Point, t proj.Transformer) ([]geom.Point, error) {
	out := make([]geom.Point, len(points))
	for i, p := range points {
		var err error
		if out[i], err = transformPoint(p, t); err != nil {
			return nil, err
		}
	}
	return out, nil
}

func transformPolygon(p geom.Polygon, t proj.Transformer) (geom.Polygon, error) {
	out := make(geom.Polygon, len(p))
	for i, r := range p {
		ring, err := transformPoints(r, t)
		if err != nil {
			return nil, err
		}
		out[i] = ring
	}
	return out, nil
}

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
	"github.com/spatialmodel/polyline"
	"github.com/spatialmodel/polyline/shape"
)

// Writer is a polyline.ShapeWriter for geometries. It handles
// shape.Geometry values as well as bare geometries used as shapes.
type Writer struct{}

// WriteShape encodes s if it holds a geometry.
func (Writer) WriteShape(e *polyline.Encoder, s shape.Shape) (bool, error) {
	var g geom.Geom
	switch ss := s.(type) {
	case shape.Geometry:
		g = ss.Geom
	case geom.Point, geom.LineString, geom.Polygon, geom.MultiPoint,
		geom.MultiLineString, geom.MultiPolygon, geom.GeometryCollection, *geom.Bounds:
		g = s.(geom.Geom)
	default:
		return false, nil
	}
	return true, writeGeom(e, g)
}

func writeGeom(e *polyline.Encoder, g geom.Geom) error {
	switch gg := g.(type) {
	case geom.Point:
		e.WriteKey(polyline.KindPoint.Key())
		e.WritePoint(gg)
	case geom.LineString:
		if len(gg) == 0 {
			return fmt.Errorf("geomshape: can not encode an empty line string")
		}
		e.WriteKey(polyline.KindLine.Key())
		e.WritePoints(gg)
	case geom.Polygon:
		if len(gg) == 0 {
			return fmt.Errorf("geomshape: can not encode an empty polygon")
		}
		e.WriteKey(polyline.KindPolygon.Key())
		for i, ring := range gg {
			if len(ring) == 0 {
				return fmt.Errorf("geomshape: can not encode empty polygon ring %d", i)
			}
			if i > 0 {
				e.WriteKey(polyline.KeyArgStart)
			}
			e.WritePoints(ring)
		}
	case geom.MultiPoint:
		if len(gg) == 0 {
			return fmt.Errorf("geomshape: can not encode an empty multipoint")
		}
		e.WriteKey(polyline.KindMultiPoint.Key())
		e.WritePoints(gg)
	case geom.MultiLineString:
		for _, l := range gg {
			if err := writeGeom(e, l); err != nil {
				return err
			}
		}
	case geom.MultiPolygon:
		for _, p := range gg {
			if err := writeGeom(e, p); err != nil {
				return err
			}
		}
	case geom.GeometryCollection:
		for _, m := range gg {
			if err := writeGeom(e, m); err != nil {
				return err
			}
		}
	case *geom.Bounds:
		e.WriteKey(polyline.KindBox.Key())
		e.WritePoint(gg.Min)
		e.WritePoint(gg.Max)
	default:
		return fmt.Errorf("geomshape: unsupported geometry type %T", g)
	}
	return nil
}

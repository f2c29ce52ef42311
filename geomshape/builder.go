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
	"github.com/ctessum/geom"
	"github.com/sirupsen/logrus"
	"github.com/spatialmodel/polyline"
	"github.com/spatialmodel/polyline/shape"
)

// ReadPolygon reads a polygon shell followed by zero or more holes, each
// introduced by polyline.KeyArgStart. Rings that are not closed are
// closed by repeating their first point.
func (b *Builder) ReadPolygon(c *polyline.Cursor) (shape.Shape, error) {
	var poly geom.Polygon
	for {
		ring, err := c.ReadPoints()
		if err != nil {
			return nil, err
		}
		if len(ring) == 0 {
			return nil, &polyline.FormatError{Offset: c.Offset(), Msg: "polygon ring should be followed by data"}
		}
		for _, p := range ring {
			if err := b.VerifyPoint(p); err != nil {
				return nil, err
			}
		}
		if ring[0] != ring[len(ring)-1] {
			ring = append(ring, ring[0])
		}
		poly = append(poly, ring)
		if c.Peek() != polyline.KeyArgStart {
			break
		}
		c.ReadKey()
	}
	return shape.Geometry{Geom: poly}, nil
}

// MakeCollection merges shapes into a single multi-geometry when they
// are all geometries of the same type. Other collections are returned
// as a shape.Collection.
func (b *Builder) MakeCollection(shapes []shape.Shape) (shape.Shape, error) {
	geoms := make([]geom.Geom, len(shapes))
	for i, s := range shapes {
		g, ok := s.(shape.Geometry)
		if !ok {
			return shape.Collection(shapes), nil
		}
		geoms[i] = g.Geom
	}
	g := BuildGeometry(geoms)
	if _, ok := g.(geom.GeometryCollection); ok {
		b.Log.WithFields(logrus.Fields{
			"shapes": len(shapes),
		}).Debug("geomshape: mixed geometry types, keeping shape collection")
		return shape.Collection(shapes), nil
	}
	return shape.Geometry{Geom: g}, nil
}

// BuildGeometry combines geoms into the most specific geometry that can
// hold all of them. A single geometry is returned unchanged, geometries
// that are all points, line strings or polygons are combined into the
// matching multi-geometry, and anything else becomes a
// geom.GeometryCollection.
func BuildGeometry(geoms []geom.Geom) geom.Geom {
	if len(geoms) == 0 {
		return geom.GeometryCollection{}
	}
	if len(geoms) == 1 {
		if _, ok := geoms[0].(geom.GeometryCollection); !ok {
			return geoms[0]
		}
	}
	switch geoms[0].(type) {
	case geom.Point:
		mp := make(geom.MultiPoint, 0, len(geoms))
		for _, g := range geoms {
			p, ok := g.(geom.Point)
			if !ok {
				return geom.GeometryCollection(geoms)
			}
			mp = append(mp, p)
		}
		return mp
	case geom.LineString:
		ml := make(geom.MultiLineString, 0, len(geoms))
		for _, g := range geoms {
			l, ok := g.(geom.LineString)
			if !ok {
				return geom.GeometryCollection(geoms)
			}
			ml = append(ml, l)
		}
		return ml
	case geom.Polygon:
		mp := make(geom.MultiPolygon, 0, len(geoms))
		for _, g := range geoms {
			p, ok := g.(geom.Polygon)
			if !ok {
				return geom.GeometryCollection(geoms)
			}
			mp = append(mp, p)
		}
		return mp
	}
	return geom.GeometryCollection(geoms)
}

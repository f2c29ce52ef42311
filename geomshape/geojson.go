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
	"encoding/json"
	"fmt"

	"github.com/ctessum/geom"
	"github.com/ctessum/geom/encoding/geojson"
	"github.com/spatialmodel/polyline/shape"
)

// geometryCollection is the GeoJSON form of a geometry collection, which
// geojson.Geometry can not hold.
type geometryCollection struct {
	Type       string        `json:"type"`
	Geometries []interface{} `json:"geometries"`
}

// ToGeoJSON converts s to a GeoJSON geometry object. Rectangles and
// bounds become polygons. Circles and buffered line strings have no
// GeoJSON form. Collections are converted to a GeometryCollection object,
// which is why the result is not always a *geojson.Geometry.
func ToGeoJSON(s shape.Shape) (interface{}, error) {
	switch ss := s.(type) {
	case shape.Geometry:
		return geomToGeoJSON(ss.Geom)
	case shape.Point:
		return geojson.ToGeoJSON(ss.Point)
	case shape.LineString:
		return geojson.ToGeoJSON(ss.LineString)
	case shape.Rectangle:
		return boxToGeoJSON(ss.Min, ss.Max), nil
	case shape.Collection:
		gc := geometryCollection{Type: "GeometryCollection"}
		for _, m := range ss {
			g, err := ToGeoJSON(m)
			if err != nil {
				return nil, err
			}
			gc.Geometries = append(gc.Geometries, g)
		}
		return gc, nil
	case geom.Geom:
		return geomToGeoJSON(ss)
	}
	return nil, &geojson.UnsupportedGeometryError{Type: fmt.Sprintf("%T", s)}
}

func geomToGeoJSON(g geom.Geom) (interface{}, error) {
	switch gg := g.(type) {
	case geom.MultiPoint:
		return &geojson.Geometry{Type: "MultiPoint", Coordinates: coordinates(gg)}, nil
	case geom.MultiLineString:
		c := make([][][]float64, len(gg))
		for i, l := range gg {
			c[i] = coordinates(l)
		}
		return &geojson.Geometry{Type: "MultiLineString", Coordinates: c}, nil
	case geom.MultiPolygon:
		c := make([][][][]float64, len(gg))
		for i, p := range gg {
			c[i] = make([][][]float64, len(p))
			for j, r := range p {
				c[i][j] = coordinates(r)
			}
		}
		return &geojson.Geometry{Type: "MultiPolygon", Coordinates: c}, nil
	case geom.GeometryCollection:
		gc := geometryCollection{Type: "GeometryCollection"}
		for _, m := range gg {
			o, err := geomToGeoJSON(m)
			if err != nil {
				return nil, err
			}
			gc.Geometries = append(gc.Geometries, o)
		}
		return gc, nil
	case *geom.Bounds:
		return boxToGeoJSON(gg.Min, gg.Max), nil
	}
	return geojson.ToGeoJSON(g)
}

// boxToGeoJSON returns the counter-clockwise polygon around a box.
func boxToGeoJSON(ll, ur geom.Point) *geojson.Geometry {
	ring := []geom.Point{
		ll,
		{X: ur.X, Y: ll.Y},
		ur,
		{X: ll.X, Y: ur.Y},
		ll,
	}
	return &geojson.Geometry{Type: "Polygon", Coordinates: [][][]float64{coordinates(ring)}}
}

func coordinates(points []geom.Point) [][]float64 {
	c := make([][]float64, len(points))
	for i, p := range points {
		c[i] = []float64{p.X, p.Y}
	}
	return c
}

// Encode returns the GeoJSON encoding of s.
func Encode(s shape.Shape) ([]byte, error) {
	o, err := ToGeoJSON(s)
	if err != nil {
		return nil, err
	}
	return json.Marshal(o)
}

// Decode parses a GeoJSON geometry object into a shape.Geometry.
func Decode(data []byte) (shape.Shape, error) {
	g, err := decodeGeom(data)
	if err != nil {
		return nil, err
	}
	return shape.Geometry{Geom: g}, nil
}

func decodeGeom(data []byte) (geom.Geom, error) {
	var o struct {
		Type        string            `json:"type"`
		Coordinates json.RawMessage   `json:"coordinates"`
		Geometries  []json.RawMessage `json:"geometries"`
	}
	if err := json.Unmarshal(data, &o); err != nil {
		return nil, fmt.Errorf("geomshape: decoding GeoJSON: %w", err)
	}
	switch o.Type {
	case "MultiPoint":
		var c [][]float64
		if err := json.Unmarshal(o.Coordinates, &c); err != nil {
			return nil, fmt.Errorf("geomshape: decoding MultiPoint: %w", err)
		}
		points, err := makePoints(c)
		return geom.MultiPoint(points), err
	case "MultiLineString":
		var c [][][]float64
		if err := json.Unmarshal(o.Coordinates, &c); err != nil {
			return nil, fmt.Errorf("geomshape: decoding MultiLineString: %w", err)
		}
		ml := make(geom.MultiLineString, len(c))
		for i, l := range c {
			points, err := makePoints(l)
			if err != nil {
				return nil, err
			}
			ml[i] = points
		}
		return ml, nil
	case "MultiPolygon":
		var c [][][][]float64
		if err := json.Unmarshal(o.Coordinates, &c); err != nil {
			return nil, fmt.Errorf("geomshape: decoding MultiPolygon: %w", err)
		}
		mp := make(geom.MultiPolygon, len(c))
		for i, p := range c {
			for _, r := range p {
				ring, err := makePoints(r)
				if err != nil {
					return nil, err
				}
				mp[i] = append(mp[i], ring)
			}
		}
		return mp, nil
	case "GeometryCollection":
		gc := make(geom.GeometryCollection, len(o.Geometries))
		for i, m := range o.Geometries {
			g, err := decodeGeom(m)
			if err != nil {
				return nil, err
			}
			gc[i] = g
		}
		return gc, nil
	}
	return geojson.Decode(data)
}

func makePoints(c [][]float64) ([]geom.Point, error) {
	points := make([]geom.Point, len(c))
	for i, xy := range c {
		if len(xy) < 2 {
			return nil, &geojson.InvalidGeometryError{}
		}
		points[i] = geom.Point{X: xy[0], Y: xy[1]}
	}
	return points, nil
}

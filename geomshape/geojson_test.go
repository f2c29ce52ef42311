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
	"strings"
	"testing"

	"github.com/ctessum/geom"
	"github.com/ctessum/geom/encoding/geojson"
	"github.com/spatialmodel/polyline/shape"
)

func TestDecodeGeoJSON(t *testing.T) {
	tests := []struct {
		name string
		json string
		want shape.Shape
	}{
		{
			name: "point",
			json: `{"type":"Point","coordinates":[100.1,0.1]}`,
			want: point(),
		},
		{
			name: "polygon",
			json: `{"type":"Polygon","coordinates":[
				[[100.1,0.1],[101.1,0.1],[101.1,1.1],[100.1,1.1],[100.1,0.1]],
				[[100.2,0.2],[100.8,0.2],[100.8,0.8],[100.2,0.8],[100.2,0.2]]]}`,
			want: shape.Geometry{Geom: polygon2()},
		},
		{
			name: "multiPoint",
			json: `{"type":"MultiPoint","coordinates":[[100.1,0.1],[101.1,1.1]]}`,
			want: multiPoint(),
		},
		{
			name: "multiLine",
			json: `{"type":"MultiLineString","coordinates":[
				[[100.1,0.1],[101.1,1.1]],
				[[102.1,2.1],[103.1,3.1]]]}`,
			want: multiLine(),
		},
		{
			name: "multiPolygon",
			json: `{"type":"MultiPolygon","coordinates":[
				[[[102.1,2.1],[103.1,2.1],[103.1,3.1],[102.1,3.1],[102.1,2.1]]],
				[[[100.1,0.1],[101.1,0.1],[101.1,1.1],[100.1,1.1],[100.1,0.1]],
				 [[100.2,0.2],[100.8,0.2],[100.8,0.8],[100.2,0.8],[100.2,0.2]]]]}`,
			want: multiPolygon(),
		},
		{
			name: "collection",
			json: `{"type":"GeometryCollection","geometries":[
				{"type":"Point","coordinates":[100.1,0.1]},
				{"type":"LineString","coordinates":[[101.1,0.1],[102.1,1.1]]}]}`,
			want: shape.Geometry{Geom: geom.GeometryCollection{
				geom.Point{X: 100.1, Y: 0.1},
				geom.LineString{{X: 101.1, Y: 0.1}, {X: 102.1, Y: 1.1}},
			}},
		},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			have, err := Decode([]byte(test.json))
			if err != nil {
				t.Fatal(err)
			}
			if !shape.Similar(have, test.want, tolerance) {
				t.Errorf("have %v, want %v", have, test.want)
			}
		})
	}
}

func TestDecodeGeoJSONErrors(t *testing.T) {
	for _, s := range []string{
		`{"type":"MultiPoint","coordinates":[[100.1]]}`,
		`{"type":"MultiPoint","coordinates":"x"}`,
		`{"type":"Curve","coordinates":[]}`,
		`not json`,
	} {
		if _, err := Decode([]byte(s)); err == nil {
			t.Errorf("%s: expected an error", s)
		}
	}
}

func TestEncodeGeoJSON(t *testing.T) {
	tests := []struct {
		name string
		s    shape.Shape
		want string
	}{
		{
			name: "point",
			s:    shape.Point{Point: geom.Point{X: 1, Y: 2}},
			want: `{"type":"Point","coordinates":[1,2]}`,
		},
		{
			name: "rectangle",
			s:    shape.Rectangle{Min: geom.Point{X: 1, Y: 2}, Max: geom.Point{X: 3, Y: 4}},
			want: `{"type":"Polygon","coordinates":[[[1,2],[3,2],[3,4],[1,4],[1,2]]]}`,
		},
		{
			name: "collection",
			s: shape.Collection{
				shape.Point{Point: geom.Point{X: 1, Y: 2}},
				shape.LineString{LineString: geom.LineString{{X: 1, Y: 2}, {X: 3, Y: 4}}},
			},
			want: `{"type":"GeometryCollection","geometries":[` +
				`{"type":"Point","coordinates":[1,2]},` +
				`{"type":"LineString","coordinates":[[1,2],[3,4]]}]}`,
		},
		{
			name: "multiPoint",
			s:    shape.Geometry{Geom: geom.MultiPoint{{X: 1, Y: 2}, {X: 3, Y: 4}}},
			want: `{"type":"MultiPoint","coordinates":[[1,2],[3,4]]}`,
		},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			b, err := Encode(test.s)
			if err != nil {
				t.Fatal(err)
			}
			if have := string(b); have != test.want {
				t.Errorf("have %s, want %s", have, test.want)
			}
		})
	}
}

func TestToGeoJSONUnsupported(t *testing.T) {
	for _, s := range []shape.Shape{
		shape.Circle{Center: geom.Point{X: 1, Y: 2}, Radius: 1},
		shape.BufferedLineString{Line: geom.LineString{{X: 1, Y: 2}, {X: 3, Y: 4}}, Buf: 1},
		shape.Collection{shape.Circle{Radius: 1}},
	} {
		_, err := ToGeoJSON(s)
		if err == nil {
			t.Errorf("%#v: expected an error", s)
			continue
		}
		if _, ok := err.(*geojson.UnsupportedGeometryError); !ok {
			t.Errorf("have error %T, want *geojson.UnsupportedGeometryError", err)
		}
		if !strings.Contains(err.Error(), "shape.") {
			t.Errorf("error %q should name the shape type", err)
		}
	}
}

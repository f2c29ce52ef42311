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

package polylineutil

import (
	"bytes"
	"io/ioutil"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/BurntSushi/toml"
	"github.com/ctessum/geom"
	"github.com/ctessum/geom/encoding/shp"
	"github.com/spatialmodel/polyline"
	"github.com/spatialmodel/polyline/geomshape"
	"github.com/spatialmodel/polyline/shape"
)

// run executes the root command with args and returns its output.
func run(args ...string) (string, error) {
	buf := new(bytes.Buffer)
	Root.SetOutput(buf)
	Root.SetArgs(args)
	err := Root.Execute()
	return buf.String(), err
}

func tempDir(t *testing.T) string {
	dir, err := ioutil.TempDir("", "polylineutil")
	if err != nil {
		t.Fatal(err)
	}
	return dir
}

func TestVersion(t *testing.T) {
	out, err := run("version")
	if err != nil {
		t.Fatal(err)
	}
	if want := "polyline v" + polyline.Version + "\n"; out != want {
		t.Errorf("have %q, want %q", out, want)
	}
}

func TestEncodeDecode(t *testing.T) {
	dir := tempDir(t)
	defer os.RemoveAll(dir)
	const polygon = `{"type":"Polygon","coordinates":[
		[[100.1,0.1],[101.1,0.1],[101.1,1.1],[100.1,1.1],[100.1,0.1]],
		[[100.2,0.2],[100.8,0.2],[100.8,0.8],[100.2,0.8],[100.2,0.2]]]}`
	fname := filepath.Join(dir, "polygon.json")
	if err := ioutil.WriteFile(fname, []byte(polygon), 0644); err != nil {
		t.Fatal(err)
	}

	enc, err := run("encode", fname)
	if err != nil {
		t.Fatal(err)
	}
	enc = strings.TrimSpace(enc)
	if enc == "" || enc[0] != polyline.KindPolygon.Key() {
		t.Fatalf("invalid encoding %q", enc)
	}

	out, err := run("decode", enc)
	if err != nil {
		t.Fatal(err)
	}
	have, err := geomshape.Decode([]byte(out))
	if err != nil {
		t.Fatal(err)
	}
	want, err := geomshape.Decode([]byte(polygon))
	if err != nil {
		t.Fatal(err)
	}
	if !shape.Similar(have, want, 1e-7) {
		t.Errorf("have %s, want %s", out, polygon)
	}
}

func TestDecodeGeneric(t *testing.T) {
	Cfg.Set("engine", "generic")
	defer Cfg.Set("engine", "geom")

	circle, err := polyline.String(shape.Circle{Center: geom.Point{X: 1, Y: 2}, Radius: 3})
	if err != nil {
		t.Fatal(err)
	}
	point, err := polyline.String(shape.Point{Point: geom.Point{X: 1, Y: 2}})
	if err != nil {
		t.Fatal(err)
	}
	out, err := run("decode", circle, point)
	if err != nil {
		t.Fatal(err)
	}
	lines := strings.Split(strings.TrimSpace(out), "\n")
	if len(lines) != 2 {
		t.Fatalf("have %d lines, want 2: %q", len(lines), out)
	}
	if !strings.Contains(lines[0], "Radius") {
		t.Errorf("circle: have %q", lines[0])
	}
	if want := `{"type":"Point","coordinates":[1,2]}`; lines[1] != want {
		t.Errorf("point: have %q, want %q", lines[1], want)
	}

	w := geomshape.NewWriter()
	poly, err := w.String(shape.Geometry{Geom: geom.Polygon{{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 1, Y: 1}, {X: 0, Y: 0}}}})
	if err != nil {
		t.Fatal(err)
	}
	if _, err := run("decode", poly); err == nil {
		t.Error("the generic engine should not read polygons")
	}
}

func TestInvalidEngine(t *testing.T) {
	Cfg.Set("engine", "jts")
	defer Cfg.Set("engine", "geom")
	if _, err := run("decode", "0??"); err == nil {
		t.Error("expected an error")
	}
}

func TestProbe(t *testing.T) {
	point, err := polyline.String(shape.Point{Point: geom.Point{X: -120.2, Y: 38.5}})
	if err != nil {
		t.Fatal(err)
	}
	out, err := run("probe", point, "hello", "0")
	if err != nil {
		t.Fatal(err)
	}
	want := point + "\tPOLY\nhello\tunknown\n0\tunknown\n"
	if out != want {
		t.Errorf("have %q, want %q", out, want)
	}

	outOfRange, err := polyline.String(shape.Point{Point: geom.Point{X: 200, Y: 0}})
	if err != nil {
		t.Fatal(err)
	}
	if _, err := run("probe", outOfRange); err == nil {
		t.Error("out of range coordinates should be an error")
	}
}

type shpRecord struct {
	geom.Point
	Name string
}

// writeShapefile creates a point shapefile in dir, with a .prj file
// holding prj if it is not empty.
func writeShapefile(t *testing.T, dir, prj string) string {
	fname := filepath.Join(dir, "points.shp")
	e, err := shp.NewEncoder(fname, shpRecord{})
	if err != nil {
		t.Fatal(err)
	}
	for _, r := range []shpRecord{
		{Point: geom.Point{X: -120.2, Y: 38.5}, Name: "a"},
		{Point: geom.Point{X: -126.453, Y: 43.252}, Name: "b"},
	} {
		if err := e.Encode(&r); err != nil {
			t.Fatal(err)
		}
	}
	e.Close()
	if prj != "" {
		if err := ioutil.WriteFile(filepath.Join(dir, "points.prj"), []byte(prj), 0644); err != nil {
			t.Fatal(err)
		}
	}
	return fname
}

func TestEncodeShapefile(t *testing.T) {
	const wgs84 = "+proj=longlat +datum=WGS84"
	a, err := polyline.String(shape.Point{Point: geom.Point{X: -120.2, Y: 38.5}})
	if err != nil {
		t.Fatal(err)
	}
	b, err := polyline.String(shape.Point{Point: geom.Point{X: -126.453, Y: 43.252}})
	if err != nil {
		t.Fatal(err)
	}
	want := a + "\ta\n" + b + "\tb\n"

	t.Run("prj", func(t *testing.T) {
		dir := tempDir(t)
		defer os.RemoveAll(dir)
		fname := writeShapefile(t, dir, wgs84)
		buf := new(bytes.Buffer)
		if err := EncodeShapefile(buf, fname, []string{"Name"}, true, wgs84); err != nil {
			t.Fatal(err)
		}
		if have := buf.String(); have != want {
			t.Errorf("have %q, want %q", have, want)
		}
	})

	t.Run("noprj", func(t *testing.T) {
		dir := tempDir(t)
		defer os.RemoveAll(dir)
		fname := writeShapefile(t, dir, "")
		buf := new(bytes.Buffer)
		if err := EncodeShapefile(buf, fname, nil, true, wgs84); err != nil {
			t.Fatal(err)
		}
		lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
		if len(lines) != 2 || lines[0] != a || lines[1] != b {
			t.Errorf("have %q", buf.String())
		}
	})

	t.Run("all", func(t *testing.T) {
		dir := tempDir(t)
		defer os.RemoveAll(dir)
		fname := writeShapefile(t, dir, "")
		buf := new(bytes.Buffer)
		if err := EncodeShapefile(buf, fname, []string{"*"}, false, ""); err != nil {
			t.Fatal(err)
		}
		if have := buf.String(); have != want {
			t.Errorf("have %q, want %q", have, want)
		}
	})

	t.Run("cmd", func(t *testing.T) {
		dir := tempDir(t)
		defer os.RemoveAll(dir)
		fname := writeShapefile(t, dir, "")
		Cfg.Set("fields", []string{"Name"})
		defer Cfg.Set("fields", []string{})
		out, err := run("shp", fname)
		if err != nil {
			t.Fatal(err)
		}
		if out != want {
			t.Errorf("have %q, want %q", out, want)
		}
	})
}

func TestConfig(t *testing.T) {
	dir := tempDir(t)
	defer os.RemoveAll(dir)
	cfgFile := filepath.Join(dir, "config.toml")
	err := ioutil.WriteFile(cfgFile, []byte("LogLevel = \"warn\"\nOutputProj = \"+proj=longlat\"\n"), 0644)
	if err != nil {
		t.Fatal(err)
	}
	Cfg.Set("config", cfgFile)
	defer func() {
		Cfg.Set("config", "")
		Cfg.Set("LogLevel", "info")
		Cfg.Set("OutputProj", "+proj=longlat +datum=WGS84")
	}()

	out, err := run("config")
	if err != nil {
		t.Fatal(err)
	}
	var have struct {
		LogLevel   string
		OutputProj string
		Geo        bool   `toml:"geo"`
		Engine     string `toml:"engine"`
	}
	if _, err := toml.DecodeReader(strings.NewReader(out), &have); err != nil {
		t.Fatal(err)
	}
	if have.LogLevel != "warn" {
		t.Errorf("LogLevel: have %q, want warn", have.LogLevel)
	}
	if have.OutputProj != "+proj=longlat" {
		t.Errorf("OutputProj: have %q, want +proj=longlat", have.OutputProj)
	}
	if !have.Geo {
		t.Error("geo should default to true")
	}
	if have.Engine != "geom" {
		t.Errorf("engine: have %q, want geom", have.Engine)
	}
}

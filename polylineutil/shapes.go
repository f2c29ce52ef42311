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
	"fmt"
	"io"
	"io/ioutil"
	"os"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/ctessum/geom/encoding/shp"
	"github.com/ctessum/geom/proj"
	"github.com/sirupsen/logrus"
	"github.com/spatialmodel/polyline"
	"github.com/spatialmodel/polyline/geomshape"
	"github.com/spatialmodel/polyline/shape"
	"github.com/spf13/cast"
	"github.com/spf13/cobra"
)

// NewReader returns a reader for the configured engine.
func NewReader() (*polyline.Reader, error) {
	geo, err := cast.ToBoolE(Cfg.Get("geo"))
	if err != nil {
		return nil, fmt.Errorf("polyline: invalid geo option: %v", err)
	}
	switch engine := Cfg.GetString("engine"); engine {
	case "geom":
		b := geomshape.NewBuilder(geomshape.NewContext(geo))
		return polyline.NewReader(b), nil
	case "generic":
		return polyline.NewReader(polyline.Generic(&shape.Context{Geo: geo})), nil
	default:
		return nil, fmt.Errorf("polyline: invalid engine %q; options are geom and generic", engine)
	}
}

var encodeCmd = &cobra.Command{
	Use:   "encode [file]",
	Short: "Encode a GeoJSON geometry",
	Long: `encode reads a GeoJSON geometry object from the given file, or from
standard input if no file is given, and prints its encoding.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		var r io.Reader = os.Stdin
		if len(args) == 1 {
			f, err := os.Open(args[0])
			if err != nil {
				return fmt.Errorf("polyline: opening GeoJSON file: %v", err)
			}
			defer f.Close()
			r = f
		}
		b, err := ioutil.ReadAll(r)
		if err != nil {
			return fmt.Errorf("polyline: reading GeoJSON: %v", err)
		}
		s, err := geomshape.Decode(b)
		if err != nil {
			return err
		}
		enc, err := geomshape.NewWriter().String(s)
		if err != nil {
			return err
		}
		logrus.WithFields(logrus.Fields{
			"geojson": len(b),
			"encoded": len(enc),
		}).Debug("polyline: encoded shape")
		fmt.Fprintln(cmd.OutOrStdout(), enc)
		return nil
	},
	DisableAutoGenTag: true,
}

var decodeCmd = &cobra.Command{
	Use:   "decode string...",
	Short: "Decode encoded shapes",
	Long: `decode prints each of the given encoded shapes as GeoJSON, one per
line. Shapes with no GeoJSON form, such as circles, are printed as Go values.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		r, err := NewReader()
		if err != nil {
			return err
		}
		for _, arg := range args {
			s, err := r.Read(arg)
			if err != nil {
				return err
			}
			b, err := geomshape.Encode(s)
			if err != nil {
				logrus.WithFields(logrus.Fields{
					"shape": fmt.Sprintf("%T", s),
				}).Debug("polyline: no GeoJSON form")
				fmt.Fprintf(cmd.OutOrStdout(), "%T%+v\n", s, s)
				continue
			}
			fmt.Fprintln(cmd.OutOrStdout(), string(b))
		}
		return nil
	},
	DisableAutoGenTag: true,
}

var probeCmd = &cobra.Command{
	Use:   "probe string...",
	Short: "Report whether strings are encoded shapes",
	Long: `probe prints each of the given strings followed by the name of the
format if it holds an encoded shape, or "unknown" otherwise. Strings that
are well-formed but describe invalid shapes cause an error.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		r, err := NewReader()
		if err != nil {
			return err
		}
		for _, arg := range args {
			s, err := r.ReadIfSupported(arg)
			if err != nil {
				return err
			}
			format := "unknown"
			if s != nil {
				format = r.FormatName()
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\n", arg, format)
		}
		return nil
	},
	DisableAutoGenTag: true,
}

var shpCmd = &cobra.Command{
	Use:   "shp file.shp",
	Short: "Encode the shapes in a shapefile",
	Long: `shp prints the encoding of each record in the given shapefile, one per
line, followed by the values of the attribute columns listed in --fields,
separated by tabs. If --reproject is true and the shapefile has a .prj file,
the shapes are first transformed to OutputProj.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		fields, err := cast.ToStringSliceE(Cfg.Get("fields"))
		if err != nil {
			return fmt.Errorf("polyline: invalid fields option: %v", err)
		}
		return EncodeShapefile(cmd.OutOrStdout(), args[0], fields,
			Cfg.GetBool("reproject"), Cfg.GetString("OutputProj"))
	},
	DisableAutoGenTag: true,
}

// EncodeShapefile writes the encoding of each record in the shapefile
// fname to w, followed by the values of the given attribute fields, or
// of all fields if fields is ["*"]. If reproject is true, shapes are transformed from the shapefile's spatial
// reference to outputProj.
func EncodeShapefile(w io.Writer, fname string, fields []string, reproject bool, outputProj string) error {
	d, err := shp.NewDecoder(fname)
	if err != nil {
		return fmt.Errorf("polyline: opening shapefile: %v", err)
	}
	defer d.Close()

	if len(fields) == 1 && fields[0] == "*" {
		fields = nil
		for _, f := range d.Reader.Fields() {
			fields = append(fields, f.String())
		}
	}

	var ct proj.Transformer
	if reproject {
		ct, err = shapefileTransform(d, outputProj)
		if err != nil {
			return err
		}
	}
	if ct == nil {
		logrus.WithFields(logrus.Fields{"file": fname}).Info("polyline: not reprojecting shapefile")
	}

	writer := geomshape.NewWriter()
	row := 0
	for {
		g, vals, more := d.DecodeRowFields(fields...)
		if !more {
			break
		}
		if err := d.Error(); err != nil {
			return fmt.Errorf("polyline: shapefile row %d: %v", row, err)
		}
		var s shape.Shape = shape.Geometry{Geom: g}
		if ct != nil {
			if s, err = geomshape.Transform(s, ct); err != nil {
				return fmt.Errorf("polyline: shapefile row %d: %v", row, err)
			}
		}
		enc, err := writer.String(s)
		if err != nil {
			return fmt.Errorf("polyline: shapefile row %d: %v", row, err)
		}
		line := []string{enc}
		for _, f := range fields {
			line = append(line, strings.Trim(vals[f], " \x00"))
		}
		fmt.Fprintln(w, strings.Join(line, "\t"))
		row++
	}
	if err := d.Error(); err != nil {
		return fmt.Errorf("polyline: reading shapefile: %v", err)
	}
	logrus.WithFields(logrus.Fields{
		"file": fname,
		"rows": row,
	}).Info("polyline: encoded shapefile")
	return nil
}

// shapefileTransform returns a transform from the spatial reference of d
// to outputProj, or nil if d has no spatial reference.
func shapefileTransform(d *shp.Decoder, outputProj string) (proj.Transformer, error) {
	src, err := d.SR()
	if os.IsNotExist(err) {
		return nil, nil
	} else if err != nil {
		return nil, fmt.Errorf("polyline: reading shapefile spatial reference: %v", err)
	}
	dst, err := proj.Parse(outputProj)
	if err != nil {
		return nil, fmt.Errorf("polyline: parsing OutputProj: %v", err)
	}
	ct, err := src.NewTransform(dst)
	if err != nil {
		return nil, fmt.Errorf("polyline: creating shapefile transform: %v", err)
	}
	return ct, nil
}

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the configuration",
	Long: `config prints the configuration options currently in effect, in
TOML format, so they can be used as a starting point for a configuration file.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		c := make(map[string]interface{})
		for _, option := range options {
			if option.name == "config" {
				continue
			}
			var err error
			switch option.defaultVal.(type) {
			case string:
				c[option.name], err = cast.ToStringE(Cfg.Get(option.name))
			case []string:
				var v []string
				v, err = cast.ToStringSliceE(Cfg.Get(option.name))
				if v == nil {
					v = []string{}
				}
				c[option.name] = v
			case bool:
				c[option.name], err = cast.ToBoolE(Cfg.Get(option.name))
			}
			if err != nil {
				return fmt.Errorf("polyline: option %s: %v", option.name, err)
			}
		}
		return toml.NewEncoder(cmd.OutOrStdout()).Encode(c)
	},
	DisableAutoGenTag: true,
}

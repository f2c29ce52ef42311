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

// Package polylineutil contains the command-line interface for reading
// and writing polyline-encoded shapes.
package polylineutil

import (
	"fmt"

	"github.com/lnashier/viper"
	"github.com/sirupsen/logrus"
	"github.com/spatialmodel/polyline"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// Cfg holds configuration information.
var Cfg *viper.Viper

var options []struct {
	name, usage, shorthand string
	defaultVal             interface{}
	flagsets               []*pflag.FlagSet
}

func init() {
	// Options are the configuration options available to the polyline
	// commands.
	options = []struct {
		name, usage, shorthand string
		defaultVal             interface{}
		flagsets               []*pflag.FlagSet
	}{
		{
			name: "config",
			usage: `
              config specifies the configuration file location.`,
			defaultVal: "",
			flagsets:   []*pflag.FlagSet{Root.PersistentFlags()},
		},
		{
			name: "LogLevel",
			usage: `
              LogLevel specifies the minimum level of log messages
              to print. Options are panic, fatal, error, warn, info
              and debug.`,
			defaultVal: "info",
			flagsets:   []*pflag.FlagSet{Root.PersistentFlags()},
		},
		{
			name: "engine",
			usage: `
              engine specifies how decoded shapes are represented. "geom"
              represents points, lines and polygons as geometries and
              merges collections of similar geometries; "generic" uses
              the basic shapes and does not support polygons.`,
			shorthand:  "e",
			defaultVal: "geom",
			flagsets:   []*pflag.FlagSet{Root.PersistentFlags()},
		},
		{
			name: "geo",
			usage: `
              geo specifies whether coordinates are longitude and latitude,
              in which case values outside of [-180, 180] and [-90, 90]
              degrees are rejected.`,
			defaultVal: true,
			flagsets:   []*pflag.FlagSet{Root.PersistentFlags()},
		},
		{
			name: "fields",
			usage: `
              fields specifies a list of shapefile attribute columns
              to print after each encoded shape. "*" selects all of
              the columns.`,
			shorthand:  "f",
			defaultVal: []string{},
			flagsets:   []*pflag.FlagSet{shpCmd.Flags()},
		},
		{
			name: "reproject",
			usage: `
              reproject specifies whether shapefile geometries should be
              transformed from the spatial reference in their .prj file
              to OutputProj before they are encoded.`,
			defaultVal: true,
			flagsets:   []*pflag.FlagSet{shpCmd.Flags()},
		},
		{
			name: "OutputProj",
			usage: `
              OutputProj specifies the spatial reference of encoded
              shapefile geometries, as a PROJ4 or WKT string.`,
			defaultVal: "+proj=longlat +datum=WGS84",
			flagsets:   []*pflag.FlagSet{shpCmd.Flags()},
		},
	}

	Cfg = viper.New()

	// Set the prefix for configuration environment variables.
	Cfg.SetEnvPrefix("POLYLINE")
	Cfg.AutomaticEnv()

	for _, option := range options {
		for i, set := range option.flagsets {
			if i != 0 { // We don't want to create the same flag twice.
				set.AddFlag(option.flagsets[0].Lookup(option.name))
				continue
			}
			switch option.defaultVal.(type) {
			case string:
				if option.shorthand == "" {
					set.String(option.name, option.defaultVal.(string), option.usage)
				} else {
					set.StringP(option.name, option.shorthand, option.defaultVal.(string), option.usage)
				}
			case []string:
				if option.shorthand == "" {
					set.StringSlice(option.name, option.defaultVal.([]string), option.usage)
				} else {
					set.StringSliceP(option.name, option.shorthand, option.defaultVal.([]string), option.usage)
				}
			case bool:
				if option.shorthand == "" {
					set.Bool(option.name, option.defaultVal.(bool), option.usage)
				} else {
					set.BoolP(option.name, option.shorthand, option.defaultVal.(bool), option.usage)
				}
			default:
				panic("invalid argument type")
			}
			Cfg.BindPFlag(option.name, set.Lookup(option.name))
		}
	}
}

func init() {
	// Link the commands together.
	Root.AddCommand(versionCmd)
	Root.AddCommand(encodeCmd)
	Root.AddCommand(decodeCmd)
	Root.AddCommand(probeCmd)
	Root.AddCommand(shpCmd)
	Root.AddCommand(configCmd)
}

// setConfig finds and reads in the configuration file, if there is one,
// and sets the logging level.
func setConfig() error {
	if cfgpath := Cfg.GetString("config"); cfgpath != "" {
		Cfg.SetConfigFile(cfgpath)
		if err := Cfg.ReadInConfig(); err != nil {
			return fmt.Errorf("polyline: problem reading configuration file: %v", err)
		}
	}
	lvl, err := logrus.ParseLevel(Cfg.GetString("LogLevel"))
	if err != nil {
		return fmt.Errorf("polyline: invalid LogLevel: %v", err)
	}
	logrus.SetLevel(lvl)
	return nil
}

// Root is the main command.
var Root = &cobra.Command{
	Use:   "polyline",
	Short: "A compact text encoding for two-dimensional shapes.",
	Long: `polyline converts shapes to and from a compact, URL-safe text encoding
that extends the Google polyline algorithm with points, boxes, circles,
multi-points and polygons with holes.

Configuration can be changed by using a configuration file (and providing the
path to the file using the --config flag), by using command-line arguments,
or by setting environment variables in the format 'POLYLINE_var' where 'var'
is the name of the variable to be set.
Refer to https://github.com/spf13/viper for additional configuration information.`,
	DisableAutoGenTag: true,
	PersistentPreRunE: func(*cobra.Command, []string) error { return setConfig() },
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number",
	Long:  "version prints the version number of this version of polyline.",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "polyline v%s\n", polyline.Version)
	},
	DisableAutoGenTag: true,
}

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

// Command polyline is a command-line interface for converting shapes to
// and from the compact polyline encoding.
package main

import (
	"fmt"
	"os"

	"github.com/spatialmodel/polyline/polylineutil"
)

func main() {
	if err := polylineutil.Root.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(-1)
	}
}

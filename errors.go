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

package polyline

import "fmt"

// FormatError is returned when the input is not a valid encoded shape.
type FormatError struct {
	// Offset is the index of the offending character in the input.
	Offset int
	Msg    string
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("polyline: %s at offset %d", e.Msg, e.Offset)
}

func formatErrorf(offset int, format string, args ...interface{}) *FormatError {
	return &FormatError{Offset: offset, Msg: fmt.Sprintf(format, args...)}
}

// IsFormatError reports whether err is a *FormatError.
func IsFormatError(err error) bool {
	_, ok := err.(*FormatError)
	return ok
}

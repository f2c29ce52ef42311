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

import (
	"fmt"
	"io"

	"github.com/ctessum/geom"
	"github.com/spatialmodel/polyline/shape"
)

// Encoder accumulates encoded output. Like Cursor, it tracks a running
// offset for each axis that returns to zero whenever a key is written.
type Encoder struct {
	buf      []byte
	lat, lng int64
}

// WriteKey writes key character k and resets the coordinate offsets.
func (e *Encoder) WriteKey(k byte) {
	e.lat, e.lng = 0, 0
	e.buf = append(e.buf, k)
}

// WriteArg writes v as a bracketed argument.
func (e *Encoder) WriteArg(v float64) {
	e.buf = append(e.buf, KeyArgStart)
	e.buf = appendInt(e.buf, toInt(v))
	e.buf = append(e.buf, KeyArgEnd)
}

// WritePoint writes p as a delta from the previous point.
func (e *Encoder) WritePoint(p geom.Point) {
	lat, lng := toInt(p.X), toInt(p.Y)
	e.buf = appendInt(e.buf, lat-e.lat)
	e.buf = appendInt(e.buf, lng-e.lng)
	e.lat, e.lng = lat, lng
}

// WritePoints writes each of points in order.
func (e *Encoder) WritePoints(points []geom.Point) {
	for _, p := range points {
		e.WritePoint(p)
	}
}

// Bytes returns the encoded output.
func (e *Encoder) Bytes() []byte { return e.buf }

func (e *Encoder) String() string { return string(e.buf) }

// Reset discards the encoded output.
func (e *Encoder) Reset() {
	e.buf = e.buf[:0]
	e.lat, e.lng = 0, 0
}

// ShapeWriter encodes shapes that Writer does not know about.
type ShapeWriter interface {
	// WriteShape encodes s to e and returns true, or returns false
	// if it does not handle s.
	WriteShape(e *Encoder, s shape.Shape) (bool, error)
}

// Writer encodes shapes.
type Writer struct {
	// Ext, if not nil, is offered every shape before the built-in
	// encodings are tried.
	Ext ShapeWriter
}

// String returns the encoding of s.
func (w *Writer) String(s shape.Shape) (string, error) {
	e := new(Encoder)
	if err := w.Encode(e, s); err != nil {
		return "", err
	}
	return e.String(), nil
}

// Write writes the encoding of s to out.
func (w *Writer) Write(out io.Writer, s shape.Shape) error {
	e := new(Encoder)
	if err := w.Encode(e, s); err != nil {
		return err
	}
	_, err := out.Write(e.Bytes())
	return err
}

// Encode appends the encoding of s to e. Collections are written one
// member after another.
func (w *Writer) Encode(e *Encoder, s shape.Shape) error {
	if w.Ext != nil {
		ok, err := w.Ext.WriteShape(e, s)
		if err != nil || ok {
			return err
		}
	}
	switch ss := s.(type) {
	case shape.Point:
		e.WriteKey(KindPoint.Key())
		e.WritePoint(ss.Point)
	case shape.LineString:
		return writeLine(e, ss.LineString, 0, false)
	case shape.BufferedLineString:
		return writeLine(e, ss.Line, ss.Buf, true)
	case shape.Rectangle:
		e.WriteKey(KindBox.Key())
		e.WritePoint(ss.Min)
		e.WritePoint(ss.Max)
	case shape.Circle:
		e.WriteKey(KindCircle.Key())
		e.WriteArg(ss.Radius)
		e.WritePoint(ss.Center)
	case shape.Collection:
		for _, m := range ss {
			if err := w.Encode(e, m); err != nil {
				return err
			}
		}
	default:
		return fmt.Errorf("polyline: unsupported shape type %T", s)
	}
	return nil
}

func writeLine(e *Encoder, points []geom.Point, buf float64, buffered bool) error {
	if len(points) == 0 {
		return fmt.Errorf("polyline: can not encode an empty line")
	}
	e.WriteKey(KindLine.Key())
	if buffered {
		e.WriteArg(buf)
	}
	e.WritePoints(points)
	return nil
}

// String returns the encoding of s using a Writer with no extensions.
func String(s shape.Shape) (string, error) {
	return new(Writer).String(s)
}

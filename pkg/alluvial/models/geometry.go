package models

import (
	"strconv"
	"strings"
)

// Point is a position in diagram coordinates: x in [0, 1] across buckets,
// y in count units from the bottom of the stack.
type Point struct {
	X float64 `json:"x" yaml:"x"`
	Y float64 `json:"y" yaml:"y"`
}

// PathOp is a path drawing command.
type PathOp string

const (
	// MoveTo starts a new subpath at Points[0].
	MoveTo PathOp = "M"
	// LineTo draws a straight segment to Points[0].
	LineTo PathOp = "L"
	// CubicTo draws a cubic Bézier with control points Points[0] and
	// Points[1], ending at Points[2].
	CubicTo PathOp = "C"
	// Close draws a straight segment back to the subpath start.
	Close PathOp = "Z"
)

// PathCommand is a single drawing command and its points.
type PathCommand struct {
	Op     PathOp  `json:"op" yaml:"op"`
	Points []Point `json:"points,omitempty" yaml:"points,omitempty,flow"`
}

// Path is a sequence of drawing commands.
type Path []PathCommand

// SVG returns the path as SVG path data, e.g. "M0 1 L0 2 Z".
// Floats use the shortest representation that round-trips, so equal
// paths always produce equal strings.
func (p Path) SVG() string {
	var b strings.Builder
	for i, cmd := range p {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(string(cmd.Op))
		for j, pt := range cmd.Points {
			if j > 0 {
				b.WriteByte(' ')
			}
			b.WriteString(formatFloat(pt.X))
			b.WriteByte(' ')
			b.WriteString(formatFloat(pt.Y))
		}
	}
	return b.String()
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}

// CubicAt evaluates the cubic Bézier p0,p1,p2,p3 at t in [0, 1].
func CubicAt(p0, p1, p2, p3 Point, t float64) Point {
	mt := 1 - t
	a := mt * mt * mt
	b := 3 * mt * mt * t
	c := 3 * mt * t * t
	d := t * t * t
	return Point{
		X: a*p0.X + b*p1.X + c*p2.X + d*p3.X,
		Y: a*p0.Y + b*p1.Y + c*p2.Y + d*p3.Y,
	}
}

// Extent is a category's vertical span [Bottom, Top) within one bucket.
type Extent struct {
	Bottom int `json:"bottom" yaml:"bottom"`
	Top    int `json:"top" yaml:"top"`
}

// Height returns Top - Bottom.
func (e Extent) Height() int {
	return e.Top - e.Bottom
}

package hypocycloid

import (
	"fmt"
	"math"
)

// Point is a position in the model plane. The model plane is y-up; the fixed
// circle is centered on the origin.
type Point struct {
	X float64
	Y float64
}

// Pt returns the point (x, y).
func Pt(x, y float64) Point {
	return Point{X: x, Y: y}
}

func (pt Point) String() string {
	return fmt.Sprintf("(%g, %g)", pt.X, pt.Y)
}

// Translate returns pt moved by o.
func (pt Point) Translate(o Vec2) Point { return Point{pt.X + o.X, pt.Y + o.Y} }

// Sub returns the vector from o to pt.
func (pt Point) Sub(o Point) Vec2 { return Vec2{pt.X - o.X, pt.Y - o.Y} }

func (pt Point) Transform(aff Affine) Point {
	return Point{
		X: aff.N0*pt.X + aff.N2*pt.Y + aff.N4,
		Y: aff.N1*pt.X + aff.N3*pt.Y + aff.N5,
	}
}

// Distance returns the euclidean distance between pt and o.
func (pt Point) Distance(o Point) float64 { return pt.Sub(o).Hypot() }

// Norm returns the distance of pt from the origin, which is the center of the
// fixed circle.
func (pt Point) Norm() float64 {
	return math.Hypot(pt.X, pt.Y)
}

// isFinite reports whether neither coordinate is NaN or infinite.
func (pt Point) isFinite() bool {
	return !math.IsNaN(pt.X) && !math.IsInf(pt.X, 0) && !math.IsNaN(pt.Y) && !math.IsInf(pt.Y, 0)
}

// Mean returns the arithmetic mean of pts. It returns the zero point for an
// empty slice.
func Mean(pts []Point) Point {
	if len(pts) == 0 {
		return Point{}
	}
	var sx, sy float64
	for _, pt := range pts {
		sx += pt.X
		sy += pt.Y
	}
	n := float64(len(pts))
	return Point{X: sx / n, Y: sy / n}
}

package hypocycloid

import "iter"

// Line is a segment from P0 to P1. Illusion dots travel back and forth on
// Lines through the origin.
type Line struct {
	P0 Point
	P1 Point
}

// Length returns the length of the segment.
func (l Line) Length() float64 {
	return l.P1.Sub(l.P0).Hypot()
}

// Eval returns the point at parameter t, with P0 at t = 0 and P1 at t = 1.
func (l Line) Eval(t float64) Point {
	return l.P0.Translate(l.P1.Sub(l.P0).Mul(t))
}

// Nearest returns the squared distance from pt to the segment and the
// parameter of the closest point.
func (l Line) Nearest(pt Point) (distSq, t float64) {
	d := l.P1.Sub(l.P0)
	proj := d.Dot(pt.Sub(l.P0))
	switch dd := d.Hypot2(); {
	case proj <= 0:
		return pt.Sub(l.P0).Hypot2(), 0
	case proj >= dd:
		return pt.Sub(l.P1).Hypot2(), 1
	default:
		t = proj / dd
		return pt.Sub(l.Eval(t)).Hypot2(), t
	}
}

func (l Line) Transform(aff Affine) Line {
	return Line{P0: l.P0.Transform(aff), P1: l.P1.Transform(aff)}
}

func (l Line) PathElements() iter.Seq[PathElement] {
	return func(yield func(PathElement) bool) {
		_ = yield(MoveTo(l.P0)) && yield(LineTo(l.P1))
	}
}

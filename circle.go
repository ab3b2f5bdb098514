package hypocycloid

import (
	"iter"
	"math"
)

// Circle is used for both the fixed circle and the rolling circle.
type Circle struct {
	Center Point
	Radius float64
}

// PointAt returns the point on the circle at angle th, measured anti-clockwise
// from the positive x axis.
func (c Circle) PointAt(th float64) Point {
	return c.Center.Translate(VecFromAngle(th).Mul(c.Radius))
}

func (c Circle) BoundingBox() Rect {
	return NewRectFromCenter(c.Center, c.Radius)
}

// PathElements approximates the circle with cubic Béziers whose error stays
// below tolerance. The path starts and ends at angle 0.
func (c Circle) PathElements(tolerance float64) iter.Seq[PathElement] {
	return func(yield func(PathElement) bool) {
		// Four arcs suffice until the error reaches 1.9608e-4 of the radius.
		// http://spencermortensen.com/articles/bezier-circle/
		n, arm := 4, 0.551915024494
		if scaled := math.Abs(c.Radius) / tolerance; scaled >= 1/1.9608e-4 {
			n = int(math.Ceil(math.Pow(1.1163*scaled, 1.0/6.0)))
			arm = 4.0 / 3.0 * math.Tan(math.Pi/2/float64(n))
		}
		if !yield(MoveTo(c.PointAt(0))) {
			return
		}
		step := 2 * math.Pi / float64(n)
		prev := VecFromAngle(0)
		for i := 1; i <= n; i++ {
			next := VecFromAngle(step * float64(i))
			if i == n {
				next = Vec(1, 0)
			}
			c1 := c.Center.Translate(Vec(prev.X-arm*prev.Y, prev.Y+arm*prev.X).Mul(c.Radius))
			c2 := c.Center.Translate(Vec(next.X+arm*next.Y, next.Y-arm*next.X).Mul(c.Radius))
			end := c.Center.Translate(next.Mul(c.Radius))
			if !yield(CubicTo(c1, c2, end)) {
				return
			}
			prev = next
		}
		yield(ClosePath())
	}
}

package hypocycloid

import "math"

// Vec2 is a displacement in the model plane.
type Vec2 struct {
	X float64
	Y float64
}

// Vec returns the vector ⟨x, y⟩.
func Vec(x, y float64) Vec2 {
	return Vec2{X: x, Y: y}
}

// Dot returns the dot product of v and o.
func (v Vec2) Dot(o Vec2) float64 {
	return v.X*o.X + v.Y*o.Y
}

// Hypot returns the magnitude of the vector.
func (v Vec2) Hypot() float64 {
	return math.Hypot(v.X, v.Y)
}

// Hypot2 returns the squared magnitude of the vector.
func (v Vec2) Hypot2() float64 {
	return v.Dot(v)
}

// VecFromAngle returns the unit vector at angle th, in radians. The model
// plane is y-up, so increasing th turns anti-clockwise and positive
// angular velocities roll the circle anti-clockwise.
func VecFromAngle(th float64) Vec2 {
	y, x := math.Sincos(th)
	return Vec2{X: x, Y: y}
}

func (v Vec2) Mul(f float64) Vec2 {
	return Vec2{X: v.X * f, Y: v.Y * f}
}

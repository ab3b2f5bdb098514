package hypocycloid

import (
	"iter"
	"math"
)

// Affine is a 2D affine map with coefficients (a, b, c, d, e, f), standing
// for the augmented matrix
//
//	| a c e |
//	| b d f |
//	| 0 0 1 |
type Affine struct {
	N0, N1, N2, N3, N4, N5 float64
}

// FlipY mirrors the plane in the x axis. Trajectories live in a y-up plane;
// renderers that draw y-down apply FlipY first.
var FlipY = Affine{1, 0, 0, -1, 0, 0}

// Rotate returns the rotation about the origin by th radians, anti-clockwise
// in the y-up model plane.
func Rotate(th float64) Affine {
	sin, cos := math.Sincos(th)
	return Affine{cos, sin, -sin, cos, 0, 0}
}

// Transform applies aff to every element of seq.
func Transform[T interface{ Transform(Affine) T }](seq iter.Seq[T], aff Affine) iter.Seq[T] {
	return func(yield func(T) bool) {
		for v := range seq {
			if !yield(v.Transform(aff)) {
				return
			}
		}
	}
}

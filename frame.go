package hypocycloid

import "iter"

// Frame is the state of an animation at one time index.
type Frame struct {
	Index int
	Time  float64
	// Rolling circle centers. Empty in illusion mode.
	Centers []Point
	// Tracked points.
	Dots []Point
	// Mean of Dots, valid only if HasCentroid is set.
	Centroid    Point
	HasCentroid bool
}

// Animation is implemented by [Curve] and [Illusion]. Frames are computed
// from materialized trajectories, so Frame can be called in any order and
// any number of times.
type Animation interface {
	Len() int
	Frame(i int) Frame
}

// Frames returns an iterator over all frames of a, in order.
func Frames(a Animation) iter.Seq[Frame] {
	return func(yield func(Frame) bool) {
		for i := range a.Len() {
			if !yield(a.Frame(i)) {
				return
			}
		}
	}
}

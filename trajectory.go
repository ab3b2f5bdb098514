package hypocycloid

import (
	"iter"
	"slices"
)

// Trajectory is the sequence of positions of one tracked entity, index-aligned
// with the [TimeGrid] it was generated on. Trajectories are plain slices:
// they can be indexed at random and iterated any number of times, which
// lets the same data drive both frame-by-frame playback and static overlays.
type Trajectory []Point

func (tr Trajectory) Len() int { return len(tr) }

// At returns the position at time index i.
func (tr Trajectory) At(i int) Point { return tr[i] }

// All returns an iterator over index, position pairs.
func (tr Trajectory) All() iter.Seq2[int, Point] { return slices.All(tr) }

// PathElements returns the trajectory as a polyline: a MoveTo to the first
// position followed by a LineTo for every other position. An empty
// trajectory yields no elements.
func (tr Trajectory) PathElements() iter.Seq[PathElement] {
	return func(yield func(PathElement) bool) {
		for i, pt := range tr {
			el := LineTo(pt)
			if i == 0 {
				el = MoveTo(pt)
			}
			if !yield(el) {
				return
			}
		}
	}
}

// BoundingBox returns the smallest rectangle containing every position. It
// returns the zero Rect for an empty trajectory.
func (tr Trajectory) BoundingBox() Rect {
	var bbox Rect
	for i, pt := range tr {
		if i == 0 {
			bbox = NewRectFromPoints(pt, pt)
			continue
		}
		bbox = bbox.UnionPoint(pt)
	}
	return bbox
}

func (tr Trajectory) isFinite() bool {
	for _, pt := range tr {
		if !pt.isFinite() {
			return false
		}
	}
	return true
}

// Centroid returns the per-index arithmetic mean of trs. All trajectories
// must have the same length; Centroid panics otherwise. It returns nil if
// trs is empty.
func Centroid(trs ...Trajectory) Trajectory {
	if len(trs) == 0 {
		return nil
	}
	n := len(trs[0])
	for _, tr := range trs[1:] {
		if len(tr) != n {
			panic("hypocycloid: trajectories of different lengths")
		}
	}
	out := make(Trajectory, n)
	pts := make([]Point, len(trs))
	for i := range out {
		for k, tr := range trs {
			pts[k] = tr[i]
		}
		out[i] = Mean(pts)
	}
	return out
}

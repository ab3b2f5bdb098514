package hypocycloid

import "math"

// MaxTime is the end of every time grid. One unit of angular velocity
// sweeps the center once around the fixed circle over [0, MaxTime].
const MaxTime = 2 * math.Pi

// DefaultResolution is the number of samples in a time grid when
// [Options.Resolution] is zero.
const DefaultResolution = 320

// TimeGrid is a strictly increasing sequence of sample times. The first
// element is exactly 0 and the last is exactly [MaxTime].
type TimeGrid []float64

// NewTimeGrid returns n times uniformly spaced over [0, MaxTime].
//
// Sample i is i·MaxTime/(n−1); the last sample is pinned to MaxTime so that
// rounding in the step cannot move the end of the grid.
func NewTimeGrid(n int) (TimeGrid, error) {
	if n < 2 {
		return nil, invalidf("resolution must be at least 2, got %d", n)
	}
	step := MaxTime / float64(n-1)
	g := make(TimeGrid, n)
	for i := range g {
		g[i] = float64(i) * step
	}
	g[n-1] = MaxTime
	return g, nil
}

func (g TimeGrid) Len() int { return len(g) }

// Step returns the spacing between consecutive samples.
func (g TimeGrid) Step() float64 {
	if len(g) < 2 {
		return 0
	}
	return g[1] - g[0]
}

// Options controls the discretization shared by [GenerateOpt] and
// [GenerateManyOpt].
type Options struct {
	// Number of samples in the time grid. Zero means DefaultResolution.
	Resolution int
}

func (opts Options) resolution() int {
	if opts.Resolution == 0 {
		return DefaultResolution
	}
	return opts.Resolution
}

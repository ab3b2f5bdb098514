package hypocycloid

import "math"

// Radii used by illusion mode. A rolling circle of half the fixed circle's
// radius turns every rim point's hypocycloid into a diameter of the fixed
// circle (the Tusi couple).
const (
	IllusionRadius        = 1.0
	IllusionRollingRadius = IllusionRadius / 2
)

// IllusionConfig parameterizes [GenerateManyOpt].
type IllusionConfig struct {
	// Number of tracked points. Must be positive.
	DotNumber int
	// Angular velocity of every rolling circle's center.
	AngVelocity float64
	// Whether to compute the centroid trajectory.
	ShowCentroid bool
}

// DefaultIllusionConfig returns one dot, ω = 2, with the centroid enabled.
func DefaultIllusionConfig() IllusionConfig {
	return IllusionConfig{
		DotNumber:    1,
		AngVelocity:  2,
		ShowCentroid: true,
	}
}

// Illusion is the result of illusion-mode generation.
type Illusion struct {
	Config IllusionConfig
	Times  TimeGrid
	// Dots[k] is the trajectory of dot k.
	Dots []Trajectory
	// Centroid is the per-frame mean of all dots, or nil if
	// Config.ShowCentroid is false. For two or more dots it traces a circle
	// of radius R−r about the origin. For a single dot it is that dot's
	// own trajectory.
	Centroid Trajectory
}

var _ Animation = Illusion{}

// GenerateMany computes the illusion for dotNumber points on the default
// time grid. See [GenerateManyOpt].
func GenerateMany(dotNumber int, angVelocity float64, showCentroid bool) (Illusion, error) {
	return GenerateManyOpt(IllusionConfig{
		DotNumber:    dotNumber,
		AngVelocity:  angVelocity,
		ShowCentroid: showCentroid,
	}, Options{})
}

// GenerateManyOpt computes one trajectory per dot, with R = IllusionRadius
// and r = IllusionRollingRadius.
//
// With A = 2π/DotNumber, dot k starts with exterior angle k·A and interior
// angle k·A + (DotNumber−k)·A. Its rolling circle turns at the same rate as
// its center, in the opposite direction. All failures are reported as
// [ErrInvalidArguments].
func GenerateManyOpt(cfg IllusionConfig, opts Options) (Illusion, error) {
	if cfg.DotNumber < 1 {
		return Illusion{}, invalidf("number of dots must be a positive integer, got %d", cfg.DotNumber)
	}
	if math.IsNaN(cfg.AngVelocity) || math.IsInf(cfg.AngVelocity, 0) {
		return Illusion{}, invalidf("parameters must be finite")
	}
	times, err := NewTimeGrid(opts.resolution())
	if err != nil {
		return Illusion{}, err
	}

	dots := make([]Trajectory, cfg.DotNumber)
	for k := range dots {
		dots[k] = make(Trajectory, len(times))
		cfg.roller(k).sample(times, nil, dots[k])
		if !dots[k].isFinite() {
			return Illusion{}, invalidf("trajectory of dot %d is not finite", k)
		}
	}
	ill := Illusion{
		Config: cfg,
		Times:  times,
		Dots:   dots,
	}
	if cfg.ShowCentroid {
		ill.Centroid = Centroid(dots...)
	}
	return ill, nil
}

func (cfg IllusionConfig) phase() float64 {
	return 2 * math.Pi / float64(cfg.DotNumber)
}

// roller returns the closed form of dot k.
func (cfg IllusionConfig) roller(k int) roller {
	a := cfg.phase()
	return roller{
		centerRadius: IllusionRadius - IllusionRollingRadius,
		radius:       IllusionRollingRadius,
		ext0:         float64(k) * a,
		int0:         float64(k)*a + float64(cfg.DotNumber-k)*a,
		extRate:      cfg.AngVelocity,
		intRate:      -cfg.AngVelocity * IllusionRadius / IllusionRadius,
	}
}

// Diameter returns the diameter of the fixed circle that dot k moves along.
//
// With r = R/2 and opposite rates, the dot is the sum of two half-radius
// vectors turning in opposite directions, which stays on the line through
// the origin at the mean of the two initial angles.
func (ill Illusion) Diameter(k int) Line {
	rl := ill.Config.roller(k)
	horizontal := Line{P0: Pt(-IllusionRadius, 0), P1: Pt(IllusionRadius, 0)}
	return horizontal.Transform(Rotate(0.5 * (rl.ext0 + rl.int0)))
}

// Diameters returns the diameter of every dot, indexed like Dots.
func (ill Illusion) Diameters() []Line {
	out := make([]Line, len(ill.Dots))
	for k := range out {
		out[k] = ill.Diameter(k)
	}
	return out
}

// FixedCircle returns the circle of radius IllusionRadius about the origin.
func (ill Illusion) FixedCircle() Circle {
	return Circle{Radius: IllusionRadius}
}

// Len returns the number of frames.
func (ill Illusion) Len() int { return len(ill.Times) }

// Frame returns the positions of all dots, and the centroid if computed, at
// time index i.
func (ill Illusion) Frame(i int) Frame {
	f := Frame{
		Index: i,
		Time:  ill.Times[i],
		Dots:  make([]Point, len(ill.Dots)),
	}
	for k, tr := range ill.Dots {
		f.Dots[k] = tr[i]
	}
	if ill.Centroid != nil {
		f.Centroid = ill.Centroid[i]
		f.HasCentroid = true
	}
	return f
}

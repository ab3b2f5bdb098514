package hypocycloid

// Curve is the result of single-curve generation: the path of the rolling
// circle's center and of one point on its rim.
type Curve struct {
	Config KinematicConfig
	Times  TimeGrid
	Center Trajectory
	Dot    Trajectory
}

var _ Animation = Curve{}

// Generate computes a [Curve] on the default time grid. See [GenerateOpt].
func Generate(cfg KinematicConfig) (Curve, error) {
	return GenerateOpt(cfg, Options{})
}

// GenerateOpt computes the center and dot trajectories of cfg at every time
// of a grid with opts.Resolution samples over [0, MaxTime].
//
// Index 0 of both trajectories is computed directly from the initial angles.
// Every failure, be it an invalid configuration, a bad resolution or a
// position that is not finite, is reported as [ErrInvalidArguments] and no
// Curve is returned.
func GenerateOpt(cfg KinematicConfig, opts Options) (Curve, error) {
	if err := cfg.Validate(); err != nil {
		return Curve{}, err
	}
	times, err := NewTimeGrid(opts.resolution())
	if err != nil {
		return Curve{}, err
	}
	center := make(Trajectory, len(times))
	dot := make(Trajectory, len(times))
	cfg.roller().sample(times, center, dot)
	if !center.isFinite() || !dot.isFinite() {
		return Curve{}, invalidf("trajectory is not finite")
	}
	return Curve{
		Config: cfg,
		Times:  times,
		Center: center,
		Dot:    dot,
	}, nil
}

// Len returns the number of frames.
func (c Curve) Len() int { return len(c.Times) }

// Frame returns the positions at time index i.
func (c Curve) Frame(i int) Frame {
	return Frame{
		Index:   i,
		Time:    c.Times[i],
		Centers: []Point{c.Center[i]},
		Dots:    []Point{c.Dot[i]},
	}
}

// FixedCircle returns the circle the curve rolls inside of.
func (c Curve) FixedCircle() Circle { return c.Config.FixedCircle() }

// Trajectories returns the center and dot trajectories, in that order.
func (c Curve) Trajectories() []Trajectory {
	return []Trajectory{c.Center, c.Dot}
}

package hypocycloid

import "math"

// KinematicConfig describes a circle of radius RollingRadius rolling without
// slipping inside a fixed circle of radius Radius centered on the origin.
// A KinematicConfig is a plain value; generating trajectories never
// modifies it.
type KinematicConfig struct {
	// Radius of the fixed circle, R.
	Radius float64
	// Radius of the rolling circle, r. Conventionally 0 < r < R. A negative
	// r or an r larger than R is evaluated by the same formulas.
	RollingRadius float64
	// Angular velocity ω of the rolling circle's center about the origin, in
	// radians per unit time. The sign selects the direction of rotation.
	AngVelocity float64
	// Initial exterior angle: the angle of the rolling circle's center at t = 0.
	ExtAngle float64
	// Initial interior angle: the angle of the tracked point about the
	// rolling circle's center at t = 0.
	IntAngle float64
}

// DefaultKinematicConfig returns R = 1, r = R/2, ω = 2 and zero initial
// angles.
func DefaultKinematicConfig() KinematicConfig {
	return KinematicConfig{
		Radius:        1,
		RollingRadius: 0.5,
		AngVelocity:   2,
	}
}

// Validate returns ErrInvalidArguments if the configuration cannot be
// evaluated: a zero rolling radius, or any parameter that is NaN or
// infinite.
func (cfg KinematicConfig) Validate() error {
	for _, v := range [...]float64{cfg.Radius, cfg.RollingRadius, cfg.AngVelocity, cfg.ExtAngle, cfg.IntAngle} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return invalidf("parameters must be finite")
		}
	}
	if cfg.RollingRadius == 0 {
		return invalidf("rolling radius must not be zero")
	}
	return nil
}

// ExtAngleAt returns θ_ext(t) = θ0_ext + ω·t.
func (cfg KinematicConfig) ExtAngleAt(t float64) float64 {
	return cfg.roller().extAngle(t)
}

// IntAngleAt returns θ_int(t) = θ0_int − ω·t·(R−r)/r. The rolling circle
// turns against the direction of its center, at the ratio of the distance
// its center travels to its own circumference.
func (cfg KinematicConfig) IntAngleAt(t float64) float64 {
	return cfg.roller().intAngle(t)
}

// CenterAt returns the rolling circle's center at time t. It always lies on
// [KinematicConfig.CenterCircle].
func (cfg KinematicConfig) CenterAt(t float64) Point {
	return cfg.roller().center(t)
}

// DotAt returns the tracked point on the rolling circle's rim at time t.
func (cfg KinematicConfig) DotAt(t float64) Point {
	return cfg.roller().dot(t)
}

// FixedCircle returns the circle of radius R centered on the origin.
func (cfg KinematicConfig) FixedCircle() Circle {
	return Circle{Radius: cfg.Radius}
}

// CenterCircle returns the circle of radius R−r that the rolling circle's
// center travels on.
func (cfg KinematicConfig) CenterCircle() Circle {
	return Circle{Radius: cfg.Radius - cfg.RollingRadius}
}

// RollingCircleAt returns the rolling circle at time t.
func (cfg KinematicConfig) RollingCircleAt(t float64) Circle {
	return Circle{Center: cfg.CenterAt(t), Radius: cfg.RollingRadius}
}

func (cfg KinematicConfig) roller() roller {
	R, r := cfg.Radius, cfg.RollingRadius
	return roller{
		centerRadius: R - r,
		radius:       r,
		ext0:         cfg.ExtAngle,
		int0:         cfg.IntAngle,
		extRate:      cfg.AngVelocity,
		intRate:      -cfg.AngVelocity * (R - r) / r,
	}
}

// roller evaluates the closed form of one rolling point. Both angles are
// linear in t, so any sample can be computed without its predecessors.
type roller struct {
	centerRadius float64
	radius       float64
	ext0, int0   float64
	extRate      float64
	intRate      float64
}

func (rl roller) extAngle(t float64) float64 { return rl.ext0 + rl.extRate*t }
func (rl roller) intAngle(t float64) float64 { return rl.int0 + rl.intRate*t }

func (rl roller) center(t float64) Point {
	return Point(VecFromAngle(rl.extAngle(t)).Mul(rl.centerRadius))
}

func (rl roller) dot(t float64) Point {
	return rl.center(t).Translate(VecFromAngle(rl.intAngle(t)).Mul(rl.radius))
}

// initial returns the positions at t = 0 straight from the initial angles.
func (rl roller) initial() (center, dot Point) {
	center = Point(VecFromAngle(rl.ext0).Mul(rl.centerRadius))
	dot = center.Translate(VecFromAngle(rl.int0).Mul(rl.radius))
	return center, dot
}

// sample fills center and dot (either may be nil) for every time in times.
func (rl roller) sample(times TimeGrid, center, dot Trajectory) {
	c0, d0 := rl.initial()
	for i, t := range times {
		c, d := c0, d0
		if i > 0 {
			c = rl.center(t)
			d = c.Translate(VecFromAngle(rl.intAngle(t)).Mul(rl.radius))
		}
		if center != nil {
			center[i] = c
		}
		if dot != nil {
			dot[i] = d
		}
	}
}

// Package hypocycloid computes the motion of points on a circle rolling
// without slipping inside a fixed circle, and the "rolling illusion" formed
// by many such points.
//
// # Kinematics
//
// A [KinematicConfig] describes a fixed circle of radius R centered on the
// origin and a rolling circle of radius r. The rolling circle's center moves
// on a circle of radius R−r at angular velocity ω, starting at the exterior
// angle θ0_ext. A point on the rolling circle's rim, starting at the interior
// angle θ0_int, turns about that center at −ω·(R−r)/r, which is the rate at
// which the rolling circle must spin for its rim not to slip against the
// fixed circle:
//
//	θ_ext(t) = θ0_ext + ω·t
//	C(t)     = (R−r)·(cos θ_ext(t), sin θ_ext(t))
//	θ_int(t) = θ0_int − ω·t·(R−r)/r
//	D(t)     = C(t) + r·(cos θ_int(t), sin θ_int(t))
//
// D traces a hypocycloid. The model plane is y-up, so positive angles and
// positive ω turn anti-clockwise.
//
// # Trajectories
//
// [Generate] evaluates the closed form at every time of a [TimeGrid]: by
// default 320 samples spread uniformly over [0, 2π]. The results are
// returned as [Trajectory] values, which are plain slices of points. All
// samples are computed before Generate returns; there is no streaming.
// Since each sample depends only on its own time, there is no accumulated
// error either.
//
// # The rolling illusion
//
// With r = R/2 the hypocycloid degenerates into a diameter of the fixed
// circle: the rim point slides back and forth on a straight line. This
// arrangement is known as the Tusi couple. [GenerateMany] places several
// such points with evenly spaced phases. Every point moves on a line, yet
// together they appear to rotate, and their centroid moves on a circle of
// radius R−r. See [Illusion.Diameter] and [Illusion.Centroid].
//
// # Errors
//
// The generators report every failure, from a zero rolling radius to a
// non-positive number of dots, as [ErrInvalidArguments]. Results are either
// complete or absent.
//
// # Rendering
//
// This package does not draw anything. [Curve] and [Illusion] implement
// [Animation], which the animate and svg packages consume. Geometry helpers
// such as [Circle], [Line], [Affine] and the path elements exist to serve
// those renderers; trajectories convert to polylines with
// [Trajectory.PathElements] and to SVG path data with [WriteSVG].
package hypocycloid

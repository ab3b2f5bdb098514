// Package config loads scene descriptions for the hypocycloid command from
// YAML files.
//
// Missing keys keep their defaults, which match the command-line defaults:
//
//	mode: curve            # or "illusion"
//	resolution: 320
//	curve:
//	  radius: 1
//	  rolling_radius: 0.5
//	  ang_velocity: 2
//	  ext_angle: 0
//	  int_angle: 0
//	illusion:
//	  dots: 1
//	  ang_velocity: 2
//	display:
//	  trajectories: true
//	  centroid: true
//	  interval: 20ms
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"honnef.co/go/hypocycloid"
	"honnef.co/go/hypocycloid/animate"
	"honnef.co/go/hypocycloid/svg"
)

const (
	ModeCurve    = "curve"
	ModeIllusion = "illusion"
)

// File is the top-level configuration.
type File struct {
	Mode       string          `yaml:"mode"`
	Resolution int             `yaml:"resolution"`
	Curve      CurveSection    `yaml:"curve"`
	Illusion   IllusionSection `yaml:"illusion"`
	Display    DisplaySection  `yaml:"display"`
}

// CurveSection holds the single-curve parameters.
type CurveSection struct {
	Radius        float64 `yaml:"radius"`
	RollingRadius float64 `yaml:"rolling_radius"`
	AngVelocity   float64 `yaml:"ang_velocity"`
	ExtAngle      float64 `yaml:"ext_angle"`
	IntAngle      float64 `yaml:"int_angle"`
}

// IllusionSection holds the illusion parameters.
type IllusionSection struct {
	Dots        int     `yaml:"dots"`
	AngVelocity float64 `yaml:"ang_velocity"`
}

// UnmarshalYAML rejects a dots value that is not tagged as an integer
// (a plain decode truncates 2.5 to 2) and keys other than dots and
// ang_velocity.
func (s *IllusionSection) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind == yaml.MappingNode {
		for i := 0; i+1 < len(value.Content); i += 2 {
			k, v := value.Content[i], value.Content[i+1]
			switch k.Value {
			case "dots":
				if v.ShortTag() != "!!int" {
					return fmt.Errorf("%w: dots must be an integer, got %q", hypocycloid.ErrInvalidArguments, v.Value)
				}
			case "ang_velocity":
			default:
				return fmt.Errorf("%w: line %d: unknown key %q in illusion", hypocycloid.ErrInvalidArguments, k.Line, k.Value)
			}
		}
	}
	type plain IllusionSection
	p := plain(*s)
	if err := value.Decode(&p); err != nil {
		return err
	}
	*s = IllusionSection(p)
	return nil
}

// DisplaySection holds rendering options.
type DisplaySection struct {
	Trajectories bool          `yaml:"trajectories"`
	Centroid     bool          `yaml:"centroid"`
	Interval     time.Duration `yaml:"interval"`
}

// Default returns the configuration used when no file is given.
func Default() File {
	kc := hypocycloid.DefaultKinematicConfig()
	ic := hypocycloid.DefaultIllusionConfig()
	return File{
		Mode:       ModeCurve,
		Resolution: hypocycloid.DefaultResolution,
		Curve: CurveSection{
			Radius:        kc.Radius,
			RollingRadius: kc.RollingRadius,
			AngVelocity:   kc.AngVelocity,
			ExtAngle:      kc.ExtAngle,
			IntAngle:      kc.IntAngle,
		},
		Illusion: IllusionSection{
			Dots:        ic.DotNumber,
			AngVelocity: ic.AngVelocity,
		},
		Display: DisplaySection{
			Trajectories: true,
			Centroid:     ic.ShowCentroid,
			Interval:     animate.DefaultInterval,
		},
	}
}

// Load reads and parses the file at path.
func Load(path string) (File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return File{}, fmt.Errorf("config: %w", err)
	}
	f, err := Parse(data)
	if err != nil {
		return File{}, fmt.Errorf("%s: %w", path, err)
	}
	return f, nil
}

// Parse decodes data on top of [Default] and validates the result.
//
// Values that cannot be decoded into their field, such as a fractional dot
// count, are reported as [hypocycloid.ErrInvalidArguments]. So are unknown
// keys.
func Parse(data []byte) (File, error) {
	f := Default()
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&f); err != nil && !errors.Is(err, io.EOF) {
		var te *yaml.TypeError
		if errors.As(err, &te) {
			return File{}, fmt.Errorf("%w: %v", hypocycloid.ErrInvalidArguments, te)
		}
		return File{}, fmt.Errorf("config: %w", err)
	}
	if err := f.Validate(); err != nil {
		return File{}, err
	}
	return f, nil
}

// Validate checks the fields that the generators do not check themselves.
func (f File) Validate() error {
	switch f.Mode {
	case ModeCurve, ModeIllusion:
	default:
		return fmt.Errorf("config: unknown mode %q", f.Mode)
	}
	if f.Display.Interval <= 0 {
		return fmt.Errorf("config: interval must be positive, got %s", f.Display.Interval)
	}
	return nil
}

func (f File) Kinematic() hypocycloid.KinematicConfig {
	return hypocycloid.KinematicConfig{
		Radius:        f.Curve.Radius,
		RollingRadius: f.Curve.RollingRadius,
		AngVelocity:   f.Curve.AngVelocity,
		ExtAngle:      f.Curve.ExtAngle,
		IntAngle:      f.Curve.IntAngle,
	}
}

func (f File) IllusionConfig() hypocycloid.IllusionConfig {
	return hypocycloid.IllusionConfig{
		DotNumber:    f.Illusion.Dots,
		AngVelocity:  f.Illusion.AngVelocity,
		ShowCentroid: f.Display.Centroid,
	}
}

func (f File) Options() hypocycloid.Options {
	return hypocycloid.Options{Resolution: f.Resolution}
}

func (f File) SVGOptions() svg.Options {
	return svg.Options{
		ShowTrajectories: f.Display.Trajectories,
		ShowCentroid:     f.Display.Centroid,
	}
}

// Build generates the animation selected by Mode and wraps it in a scene.
func (f File) Build() (*svg.Scene, error) {
	switch f.Mode {
	case ModeIllusion:
		ill, err := hypocycloid.GenerateManyOpt(f.IllusionConfig(), f.Options())
		if err != nil {
			return nil, err
		}
		return svg.NewIllusionScene(ill, f.SVGOptions()), nil
	default:
		c, err := hypocycloid.GenerateOpt(f.Kinematic(), f.Options())
		if err != nil {
			return nil, err
		}
		return svg.NewCurveScene(c, f.SVGOptions()), nil
	}
}

// Command hypocycloid draws a point rolling inside a circle, or the rolling
// illusion formed by many of them, as SVG.
//
// By default it writes a single animated SVG to stdout (or to -out). With
// -frames it plays the animation at -interval and writes one SVG per frame
// into the given directory.
//
// Examples:
//
//	hypocycloid -R 2 -r 1.5 -w 3 -ext 3.14159 -int 1.5708 > curve.svg
//	hypocycloid -mode illusion -dots 25 -out illusion.svg
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"strconv"
	"syscall"

	"honnef.co/go/hypocycloid"
	"honnef.co/go/hypocycloid/animate"
	"honnef.co/go/hypocycloid/internal/config"
	"honnef.co/go/hypocycloid/internal/log"
	"honnef.co/go/hypocycloid/svg"
)

func main() {
	if err := run(os.Args[1:], os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "hypocycloid: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string, stdout io.Writer) error {
	def := config.Default()
	fs := flag.NewFlagSet("hypocycloid", flag.ContinueOnError)
	var (
		configPath = fs.String("config", "", "YAML scene file; flags given explicitly override it")
		mode       = fs.String("mode", def.Mode, "curve or illusion")
		radius     = fs.Float64("R", def.Curve.Radius, "radius of the fixed circle")
		rolling    = fs.Float64("r", def.Curve.RollingRadius, "radius of the rolling circle")
		velocity   = fs.Float64("w", def.Curve.AngVelocity, "angular velocity")
		extAngle   = fs.Float64("ext", def.Curve.ExtAngle, "initial exterior angle, radians")
		intAngle   = fs.Float64("int", def.Curve.IntAngle, "initial interior angle, radians")
		dots       = &intFlag{n: def.Illusion.Dots}
		trajs      = fs.Bool("trajectories", def.Display.Trajectories, "draw full trajectories")
		centroid   = fs.Bool("centroid", def.Display.Centroid, "compute and draw the centroid in illusion mode")
		resolution = fs.Int("resolution", def.Resolution, "number of time samples")
		interval   = fs.Duration("interval", def.Display.Interval, "delay between frames")
		out        = fs.String("out", "", "write the animated SVG here instead of stdout")
		framesDir  = fs.String("frames", "", "write one SVG per frame into this directory")
		logLevel   = fs.String("log-level", "info", "debug, info, warn or error")
	)
	fs.Var(dots, "dots", "number of points in illusion mode")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if err := dots.parse("dots"); err != nil {
		return err
	}
	log.Init(*logLevel)

	cfg := def
	if *configPath != "" {
		var err error
		cfg, err = config.Load(*configPath)
		if err != nil {
			return err
		}
	}
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "mode":
			cfg.Mode = *mode
		case "R":
			cfg.Curve.Radius = *radius
		case "r":
			cfg.Curve.RollingRadius = *rolling
		case "w":
			cfg.Curve.AngVelocity = *velocity
			cfg.Illusion.AngVelocity = *velocity
		case "ext":
			cfg.Curve.ExtAngle = *extAngle
		case "int":
			cfg.Curve.IntAngle = *intAngle
		case "dots":
			cfg.Illusion.Dots = dots.n
		case "trajectories":
			cfg.Display.Trajectories = *trajs
		case "centroid":
			cfg.Display.Centroid = *centroid
		case "resolution":
			cfg.Resolution = *resolution
		case "interval":
			cfg.Display.Interval = *interval
		}
	})
	if err := cfg.Validate(); err != nil {
		return err
	}

	scene, err := cfg.Build()
	if err != nil {
		return err
	}
	log.Info("generated trajectories", "mode", cfg.Mode, "frames", scene.Animation().Len())

	if *framesDir != "" {
		return writeFrames(scene, *framesDir, cfg)
	}

	if *out == "" {
		return scene.WriteAnimated(stdout, cfg.Display.Interval)
	}
	f, err := os.Create(*out)
	if err != nil {
		return err
	}
	err = scene.WriteAnimated(f, cfg.Display.Interval)
	return errors.Join(err, f.Close())
}

// intFlag defers integer parsing until after flag parsing, so a
// non-integer value is reported as hypocycloid.ErrInvalidArguments like the
// other argument errors.
type intFlag struct {
	n   int
	raw *string
}

func (f *intFlag) String() string {
	if f == nil {
		return "0"
	}
	return strconv.Itoa(f.n)
}

func (f *intFlag) Set(s string) error {
	f.raw = &s
	return nil
}

func (f *intFlag) parse(name string) error {
	if f.raw == nil {
		return nil
	}
	n, err := strconv.Atoi(*f.raw)
	if err != nil {
		return fmt.Errorf("%w: -%s must be an integer, got %q", hypocycloid.ErrInvalidArguments, name, *f.raw)
	}
	f.n = n
	return nil
}

func writeFrames(scene *svg.Scene, dir string, cfg config.File) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	sink := &svg.FrameSink{
		Scene: scene,
		Open: func(i int) (io.WriteCloser, error) {
			return os.Create(filepath.Join(dir, fmt.Sprintf("frame%04d.svg", i)))
		},
	}
	d := &animate.Driver{Interval: cfg.Display.Interval, Logger: log.With("dir", dir)}
	if err := d.Play(ctx, scene.Animation(), sink); err != nil {
		return err
	}
	log.Info("wrote frames", "dir", dir, "count", scene.Animation().Len())
	return nil
}

// Package animate plays precomputed trajectories frame by frame.
//
// The driver never computes positions. It walks the frame indices of an
// already generated [hypocycloid.Animation] at a fixed interval and hands
// each frame to a [Renderer].
package animate

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"honnef.co/go/hypocycloid"
	"honnef.co/go/hypocycloid/internal/log"
)

// DefaultInterval is the delay between frames when Driver.Interval is zero.
const DefaultInterval = 20 * time.Millisecond

// ErrEmpty is returned by Play for an animation without frames.
var ErrEmpty = errors.New("animate: animation has no frames")

// Renderer draws a single frame.
type Renderer interface {
	RenderFrame(f hypocycloid.Frame) error
}

// RendererFunc adapts a function to the Renderer interface.
type RendererFunc func(f hypocycloid.Frame) error

func (fn RendererFunc) RenderFrame(f hypocycloid.Frame) error { return fn(f) }

// Driver plays animations. The zero value plays every frame once at
// DefaultInterval.
type Driver struct {
	// Delay between frames. Zero means DefaultInterval; a negative value
	// renders frames back to back without waiting.
	Interval time.Duration
	// Restart from the first frame after the last one instead of returning.
	Loop bool
	// Logger for progress messages. Nil means the global logger.
	Logger *slog.Logger
}

func (d *Driver) interval() time.Duration {
	if d.Interval == 0 {
		return DefaultInterval
	}
	return d.Interval
}

func (d *Driver) logger() *slog.Logger {
	if d.Logger == nil {
		return log.L()
	}
	return d.Logger
}

// Play renders the frames of anim in order. The first frame is rendered
// immediately, every following frame one interval later.
//
// Play returns nil after the last frame unless Loop is set, ctx.Err() if
// the context is cancelled, and the renderer's error, wrapped, if rendering
// fails.
func (d *Driver) Play(ctx context.Context, anim hypocycloid.Animation, r Renderer) error {
	n := anim.Len()
	if n == 0 {
		return ErrEmpty
	}
	lg := d.logger().With("frames", n, "interval", d.interval())
	lg.Debug("starting playback", "loop", d.Loop)

	var tick <-chan time.Time
	if iv := d.interval(); iv > 0 {
		ticker := time.NewTicker(iv)
		defer ticker.Stop()
		tick = ticker.C
	}

	for i, pass := 0, 0; ; {
		if err := ctx.Err(); err != nil {
			lg.Debug("playback cancelled", "frame", i, "pass", pass)
			return err
		}
		if err := r.RenderFrame(anim.Frame(i)); err != nil {
			lg.Error("rendering frame failed", "frame", i, "error", err)
			return fmt.Errorf("render frame %d: %w", i, err)
		}
		i++
		if i == n {
			if !d.Loop {
				lg.Debug("playback finished", "passes", pass+1)
				return nil
			}
			i = 0
			pass++
		}
		if tick == nil {
			continue
		}
		select {
		case <-ctx.Done():
			lg.Debug("playback cancelled", "frame", i, "pass", pass)
			return ctx.Err()
		case <-tick:
		}
	}
}

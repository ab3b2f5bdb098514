package svg

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"strings"
	"testing"
	"time"

	"honnef.co/go/hypocycloid"
	"honnef.co/go/hypocycloid/animate"
	"honnef.co/go/hypocycloid/internal/log"
)

func curveScene(t *testing.T, opts Options) *Scene {
	t.Helper()
	c, err := hypocycloid.GenerateOpt(hypocycloid.DefaultKinematicConfig(), hypocycloid.Options{Resolution: 12})
	if err != nil {
		t.Fatal(err)
	}
	return NewCurveScene(c, opts)
}

func illusionScene(t *testing.T, n int, opts Options) *Scene {
	t.Helper()
	ill, err := hypocycloid.GenerateManyOpt(hypocycloid.IllusionConfig{DotNumber: n, AngVelocity: 2, ShowCentroid: true}, hypocycloid.Options{Resolution: 5})
	if err != nil {
		t.Fatal(err)
	}
	return NewIllusionScene(ill, opts)
}

func TestWriteStaticCurve(t *testing.T) {
	tests := []struct {
		opts  Options
		paths int
	}{
		{DefaultOptions(), 3},
		{Options{}, 1},
	}
	for _, tt := range tests {
		var buf bytes.Buffer
		if err := curveScene(t, tt.opts).WriteStatic(&buf, 0); err != nil {
			t.Fatal(err)
		}
		out := buf.String()
		if !strings.HasPrefix(out, "<?xml") || !strings.HasSuffix(out, "</svg>\n") {
			t.Errorf("not a complete document:\n%s", out)
		}
		if !strings.Contains(out, "<title>Hypocycloid Movement</title>") {
			t.Error("missing title")
		}
		if n := strings.Count(out, "<circle"); n != 2 {
			t.Errorf("got %d markers, want 2", n)
		}
		if n := strings.Count(out, "<path"); n != tt.paths {
			t.Errorf("%+v: got %d paths, want %d", tt.opts, n, tt.paths)
		}
		// y is flipped, the dot starts at (1, 0)
		if !strings.Contains(out, "cx='1' cy='0'") {
			t.Errorf("missing dot marker at (1, 0):\n%s", out)
		}
	}
}

func TestViewBox(t *testing.T) {
	var buf bytes.Buffer
	if err := curveScene(t, DefaultOptions()).WriteStatic(&buf, 3); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(buf.String(), `viewBox="-2 -2 4 4"`) {
		t.Errorf("unexpected viewBox:\n%s", buf.String())
	}
}

func TestWriteStaticIllusion(t *testing.T) {
	tests := []struct {
		opts    Options
		circles int
		paths   int
	}{
		{DefaultOptions(), 4, 4},
		{Options{ShowTrajectories: true}, 3, 4},
		{Options{ShowCentroid: true}, 4, 1},
	}
	for _, tt := range tests {
		var buf bytes.Buffer
		s := illusionScene(t, 3, tt.opts)
		if err := s.WriteStatic(&buf, 2); err != nil {
			t.Fatal(err)
		}
		out := buf.String()
		if !strings.Contains(out, "(3 points)</title>") {
			t.Errorf("unexpected title %q", s.Title())
		}
		if n := strings.Count(out, "<circle"); n != tt.circles {
			t.Errorf("%+v: got %d markers, want %d", tt.opts, n, tt.circles)
		}
		if n := strings.Count(out, "<path"); n != tt.paths {
			t.Errorf("%+v: got %d paths, want %d", tt.opts, n, tt.paths)
		}
	}
}

func TestWriteStaticOutOfRange(t *testing.T) {
	s := curveScene(t, DefaultOptions())
	for _, i := range []int{-1, 12} {
		if err := s.WriteStatic(io.Discard, i); err == nil {
			t.Errorf("frame %d: expected error", i)
		}
	}
}

func TestWriteAnimated(t *testing.T) {
	var buf bytes.Buffer
	s := illusionScene(t, 2, DefaultOptions())
	if err := s.WriteAnimated(&buf, 20*time.Millisecond); err != nil {
		t.Fatal(err)
	}
	out := buf.String()
	// two dots and the centroid, each animating cx and cy
	if n := strings.Count(out, "<animate "); n != 6 {
		t.Errorf("got %d animate elements, want 6", n)
	}
	if n := strings.Count(out, "dur='0.1s'"); n != 6 {
		t.Errorf("got %d animations lasting 0.1s, want 6", n)
	}
	for _, line := range strings.Split(out, "\n") {
		if !strings.Contains(line, "<animate ") {
			continue
		}
		_, values, _ := strings.Cut(line, "values='")
		values, _, _ = strings.Cut(values, "'")
		if n := len(strings.Split(values, ";")); n != 5 {
			t.Errorf("got %d values, want 5: %s", n, line)
		}
	}

	if err := s.WriteAnimated(io.Discard, 0); err == nil {
		t.Error("expected error for zero interval")
	}
}

type errWriter struct{}

func (errWriter) Write([]byte) (int, error) { return 0, fmt.Errorf("disk full") }

func TestWriteError(t *testing.T) {
	if err := curveScene(t, DefaultOptions()).WriteStatic(errWriter{}, 0); err == nil {
		t.Error("expected write error")
	}
}

type nopCloser struct{ *bytes.Buffer }

func (nopCloser) Close() error { return nil }

func TestFrameSink(t *testing.T) {
	s := illusionScene(t, 3, DefaultOptions())
	bufs := map[int]*bytes.Buffer{}
	sink := &FrameSink{
		Scene: s,
		Open: func(i int) (io.WriteCloser, error) {
			b := &bytes.Buffer{}
			bufs[i] = b
			return nopCloser{b}, nil
		},
	}
	d := &animate.Driver{Interval: -1, Logger: log.Discard()}
	if err := d.Play(context.Background(), s.Animation(), sink); err != nil {
		t.Fatal(err)
	}
	if len(bufs) != 5 {
		t.Fatalf("got %d frames, want 5", len(bufs))
	}
	for i, b := range bufs {
		if !strings.HasPrefix(b.String(), "<?xml") {
			t.Errorf("frame %d is not an SVG document", i)
		}
	}
}

func TestIllusionDiameterOverlay(t *testing.T) {
	var buf bytes.Buffer
	s := illusionScene(t, 2, Options{ShowTrajectories: true})
	if err := s.WriteStatic(&buf, 0); err != nil {
		t.Fatal(err)
	}
	out := buf.String()
	// Dot 0 runs horizontally, dot 1 vertically.
	for _, want := range []string{"d='M1,0 L-1,0'", "d='M0,-1 L0,1'"} {
		if !strings.Contains(out, want) {
			t.Errorf("missing diameter %s in\n%s", want, out)
		}
	}
}

func TestWriteAnimatedValues(t *testing.T) {
	ill, err := hypocycloid.GenerateManyOpt(hypocycloid.IllusionConfig{DotNumber: 3, AngVelocity: 2, ShowCentroid: true}, hypocycloid.Options{Resolution: 7})
	if err != nil {
		t.Fatal(err)
	}
	s := NewIllusionScene(ill, DefaultOptions())
	var buf bytes.Buffer
	if err := s.WriteAnimated(&buf, 10*time.Millisecond); err != nil {
		t.Fatal(err)
	}
	opts := hypocycloid.SVGOptions{MaxPrecision: DefaultPrecision}
	for k, tr := range append(ill.Dots, ill.Centroid) {
		xs := make([]string, tr.Len())
		ys := make([]string, tr.Len())
		for i, pt := range tr.All() {
			xs[i] = hypocycloid.FormatCoord(pt.X, opts)
			ys[i] = hypocycloid.FormatCoord(-pt.Y, opts)
		}
		for _, want := range []string{
			fmt.Sprintf("attributeName='cx' calcMode='discrete' dur='0.07s' repeatCount='indefinite' values='%s'", strings.Join(xs, ";")),
			fmt.Sprintf("attributeName='cy' calcMode='discrete' dur='0.07s' repeatCount='indefinite' values='%s'", strings.Join(ys, ";")),
		} {
			if !strings.Contains(buf.String(), want) {
				t.Errorf("marker %d: missing %s", k, want)
			}
		}
	}
}

// Package svg draws hypocycloid animations as SVG documents.
//
// A [Scene] can write a single frame as a static image, or every frame at
// once as an animated document in which SMIL <animate> elements step the
// markers through the precomputed positions.
package svg

import (
	"fmt"
	"io"
	"iter"
	"strings"
	"time"

	"github.com/jbeda/geom"

	"honnef.co/go/hypocycloid"
)

// Styles, following the classic plot colors: blue dots and red centers for
// single curves, red dots and a blue centroid for the illusion.
const (
	fixedCurveStyle    = "stroke: #1f77b4; stroke-width: 0.02; fill: none"
	fixedIllusionStyle = "stroke: black; stroke-width: 0.04; fill: none"
	trajectoryStyle    = "stroke: black; stroke-width: 0.01; fill: none"
	dotColor           = "blue"
	centerColor        = "red"
	illusionDotColor   = "red"
	centroidColor      = "blue"
)

const (
	DefaultSize      = 480
	DefaultPrecision = 5
)

// Options controls what a Scene draws.
type Options struct {
	// Draw the traced paths behind the markers: the dot and center paths of
	// a curve, the diameters of an illusion.
	ShowTrajectories bool
	// Draw the centroid marker. Only meaningful for illusions that
	// computed a centroid.
	ShowCentroid bool
	// Width and height of the image in pixels. Zero means DefaultSize.
	Size int
	// Decimal places for coordinates. Zero means DefaultPrecision.
	Precision int
}

// DefaultOptions enables trajectories and the centroid.
func DefaultOptions() Options {
	return Options{ShowTrajectories: true, ShowCentroid: true}
}

// marker is a filled dot following one trajectory.
type marker struct {
	color string
	tr    hypocycloid.Trajectory
}

// Scene is a renderable view of a generated animation.
type Scene struct {
	anim       hypocycloid.Animation
	title      string
	fixed      hypocycloid.Circle
	fixedStyle string
	overlays   []iter.Seq[hypocycloid.PathElement]
	markers    []marker
	bounds     hypocycloid.Rect
	opts       Options
}

// NewCurveScene returns a scene for a single hypocycloid. Its overlays are
// the traced paths of the dot and the rolling circle's center.
func NewCurveScene(c hypocycloid.Curve, opts Options) *Scene {
	s := &Scene{
		anim:       c,
		title:      "Hypocycloid Movement",
		fixed:      c.FixedCircle(),
		fixedStyle: fixedCurveStyle,
		opts:       opts,
		markers: []marker{
			{dotColor, c.Dot},
			{centerColor, c.Center},
		},
	}
	for _, tr := range c.Trajectories() {
		s.overlays = append(s.overlays, tr.PathElements())
	}
	s.computeBounds()
	return s
}

// NewIllusionScene returns a scene for a rolling illusion. Its overlays are
// the diameters the dots travel on.
func NewIllusionScene(ill hypocycloid.Illusion, opts Options) *Scene {
	s := &Scene{
		anim:       ill,
		title:      fmt.Sprintf("Individual linear motion yields to circular movement illusion (%d points)", len(ill.Dots)),
		fixed:      ill.FixedCircle(),
		fixedStyle: fixedIllusionStyle,
		opts:       opts,
	}
	for _, d := range ill.Diameters() {
		s.overlays = append(s.overlays, d.PathElements())
	}
	for _, tr := range ill.Dots {
		s.markers = append(s.markers, marker{illusionDotColor, tr})
	}
	if opts.ShowCentroid && ill.Centroid != nil {
		s.markers = append(s.markers, marker{centroidColor, ill.Centroid})
	}
	s.computeBounds()
	return s
}

// computeBounds uses the axis limits [−R−1, R+1] in both directions,
// grown to contain every marker's trajectory in case a configuration
// leaves the fixed circle.
func (s *Scene) computeBounds() {
	s.bounds = s.fixed.BoundingBox().Inflate(1)
	for _, m := range s.markers {
		if len(m.tr) > 0 {
			s.bounds = s.bounds.Union(m.tr.BoundingBox())
		}
	}
}

// viewBox returns the bounds in y-down SVG coordinates.
func (s *Scene) viewBox() geom.Rect {
	return geom.Rect{
		Min: geom.Coord{X: s.bounds.X0, Y: -s.bounds.Y1},
		Max: geom.Coord{X: s.bounds.X1, Y: -s.bounds.Y0},
	}
}

// Title returns the document title.
func (s *Scene) Title() string { return s.title }

// Animation returns the animation the scene draws.
func (s *Scene) Animation() hypocycloid.Animation { return s.anim }

func (s *Scene) size() int {
	if s.opts.Size <= 0 {
		return DefaultSize
	}
	return s.opts.Size
}

func (s *Scene) pathOpts() hypocycloid.SVGOptions {
	p := s.opts.Precision
	if p <= 0 {
		p = DefaultPrecision
	}
	return hypocycloid.SVGOptions{MaxPrecision: p}
}

func (s *Scene) markerRadius() float64 {
	return 0.03 * s.bounds.Width() / 2
}

// WriteStatic writes frame i as a complete SVG document.
func (s *Scene) WriteStatic(w io.Writer, i int) error {
	if i < 0 || i >= s.anim.Len() {
		return fmt.Errorf("svg: frame %d out of range [0, %d)", i, s.anim.Len())
	}
	return s.WriteFrame(w, s.anim.Frame(i))
}

// WriteFrame writes f as a complete SVG document. Marker positions are
// looked up by f.Index, so f must belong to the scene's animation.
func (s *Scene) WriteFrame(w io.Writer, f hypocycloid.Frame) error {
	doc := newDocument(w, s.pathOpts())
	s.writeBackground(doc)
	for _, m := range s.markers {
		doc.Circle(m.tr[f.Index].Transform(hypocycloid.FlipY), s.markerRadius(), "fill: "+m.color)
	}
	doc.End()
	return doc.err
}

// WriteAnimated writes all frames into one SVG document. Each marker cycles
// through its positions, one per interval, and repeats indefinitely.
func (s *Scene) WriteAnimated(w io.Writer, interval time.Duration) error {
	if interval <= 0 {
		return fmt.Errorf("svg: interval must be positive, got %s", interval)
	}
	n := s.anim.Len()
	if n == 0 {
		return fmt.Errorf("svg: animation has no frames")
	}
	dur := time.Duration(n) * interval
	doc := newDocument(w, s.pathOpts())
	s.writeBackground(doc)
	for _, m := range s.markers {
		xs := make([]string, n)
		ys := make([]string, n)
		for i, pt := range m.tr.All() {
			pt = pt.Transform(hypocycloid.FlipY)
			xs[i] = doc.format(pt.X)
			ys[i] = doc.format(pt.Y)
		}
		doc.AnimatedCircle(xs, ys, s.markerRadius(), dur, "fill: "+m.color)
	}
	doc.End()
	return doc.err
}

func (s *Scene) writeBackground(doc *document) {
	doc.Start(s.viewBox(), s.size(), s.title)
	doc.Path(s.fixed.PathElements(1e-4), s.fixedStyle)
	if s.opts.ShowTrajectories {
		for _, o := range s.overlays {
			doc.Path(o, trajectoryStyle)
		}
	}
}

// document is a minimal SVG writer. The first write error sticks and
// turns all further writes into no-ops.
type document struct {
	w    io.Writer
	opts hypocycloid.SVGOptions
	err  error
}

func newDocument(w io.Writer, opts hypocycloid.SVGOptions) *document {
	return &document{w: w, opts: opts}
}

func (d *document) printf(format string, a ...any) {
	if d.err != nil {
		return
	}
	_, d.err = fmt.Fprintf(d.w, format, a...)
}

func (d *document) format(n float64) string {
	return hypocycloid.FormatCoord(n, d.opts)
}

func (d *document) Start(viewBox geom.Rect, size int, title string) {
	d.printf(`<?xml version="1.0"?>
<svg version="1.1" width="%d" height="%d" viewBox="%s %s %s %s" xmlns="http://www.w3.org/2000/svg">
<title>%s</title>
`, size, size,
		d.format(viewBox.Min.X), d.format(viewBox.Min.Y),
		d.format(viewBox.Width()), d.format(viewBox.Height()),
		escape(title))
}

func (d *document) End() {
	d.printf("</svg>\n")
}

func (d *document) Path(seq iter.Seq[hypocycloid.PathElement], style string) {
	if d.err != nil {
		return
	}
	var sb strings.Builder
	if err := hypocycloid.WriteSVG(&sb, hypocycloid.Transform(seq, hypocycloid.FlipY), d.opts); err != nil {
		d.err = err
		return
	}
	d.printf("<path d='%s' style='%s'/>\n", sb.String(), style)
}

func (d *document) Circle(c hypocycloid.Point, r float64, style string) {
	d.printf("<circle cx='%s' cy='%s' r='%s' style='%s'/>\n",
		d.format(c.X), d.format(c.Y), d.format(r), style)
}

func (d *document) AnimatedCircle(xs, ys []string, r float64, dur time.Duration, style string) {
	d.printf("<circle cx='%s' cy='%s' r='%s' style='%s'>\n", xs[0], ys[0], d.format(r), style)
	for _, attr := range [...]struct {
		name   string
		values []string
	}{{"cx", xs}, {"cy", ys}} {
		d.printf("  <animate attributeName='%s' calcMode='discrete' dur='%gs' repeatCount='indefinite' values='%s'/>\n",
			attr.name, dur.Seconds(), strings.Join(attr.values, ";"))
	}
	d.printf("</circle>\n")
}

var escaper = strings.NewReplacer("&", "&amp;", "<", "&lt;", ">", "&gt;")

func escape(s string) string { return escaper.Replace(s) }

// FrameSink renders every frame it receives as its own SVG document. It
// implements animate.Renderer.
type FrameSink struct {
	Scene *Scene
	// Open returns the destination for frame i. FrameSink closes it after
	// writing.
	Open func(i int) (io.WriteCloser, error)
}

func (fs *FrameSink) RenderFrame(f hypocycloid.Frame) error {
	w, err := fs.Open(f.Index)
	if err != nil {
		return err
	}
	if err := fs.Scene.WriteFrame(w, f); err != nil {
		w.Close()
		return err
	}
	return w.Close()
}

package hypocycloid

import (
	"bufio"
	"io"
	"iter"
	"strconv"
	"strings"
)

type PathElementKind int

const (
	// Start a new subpath at P0.
	MoveToKind PathElementKind = iota + 1
	// Straight line to P0.
	LineToKind
	// Cubic Bézier with control points P0 and P1, ending at P2.
	CubicToKind
	// Line back to the start of the subpath.
	ClosePathKind
)

// PathElement is one drawing command of a path. Trajectories and lines
// produce MoveTo followed by LineTo elements; circles produce CubicTo
// elements.
type PathElement struct {
	Kind PathElementKind
	P0   Point
	P1   Point
	P2   Point
}

func MoveTo(pt Point) PathElement { return PathElement{Kind: MoveToKind, P0: pt} }
func LineTo(pt Point) PathElement { return PathElement{Kind: LineToKind, P0: pt} }
func ClosePath() PathElement      { return PathElement{Kind: ClosePathKind} }

func CubicTo(p0, p1, p2 Point) PathElement {
	return PathElement{Kind: CubicToKind, P0: p0, P1: p1, P2: p2}
}

// points returns the points the element carries, in drawing order.
func (el PathElement) points() []Point {
	switch el.Kind {
	case MoveToKind, LineToKind:
		return []Point{el.P0}
	case CubicToKind:
		return []Point{el.P0, el.P1, el.P2}
	default:
		return nil
	}
}

func (el PathElement) Transform(aff Affine) PathElement {
	out := PathElement{Kind: el.Kind}
	dst := [...]*Point{&out.P0, &out.P1, &out.P2}
	for i, pt := range el.points() {
		*dst[i] = pt.Transform(aff)
	}
	return out
}

// SVGOptions specifies optional settings for [SVG] and [WriteSVG].
type SVGOptions struct {
	// Maximum number of decimal places per coordinate. Zero uses as many as
	// needed to represent the value exactly.
	MaxPrecision int
}

// SVG returns the SVG path data for seq.
func SVG(seq iter.Seq[PathElement], opts SVGOptions) string {
	var sb strings.Builder
	WriteSVG(&sb, seq, opts)
	return sb.String()
}

// FormatCoord formats a single coordinate the way [WriteSVG] does. Trailing
// zeros are dropped and negative zero is written as 0.
func FormatCoord(n float64, opts SVGOptions) string {
	if opts.MaxPrecision <= 0 {
		return strconv.FormatFloat(n, 'f', -1, 64)
	}
	s := strconv.FormatFloat(n, 'f', opts.MaxPrecision, 64)
	if strings.Contains(s, ".") {
		s = strings.TrimRight(strings.TrimRight(s, "0"), ".")
	}
	if s == "-0" {
		s = "0"
	}
	return s
}

var svgCommand = [...]byte{MoveToKind: 'M', LineToKind: 'L', CubicToKind: 'C', ClosePathKind: 'Z'}

// WriteSVG writes the SVG path data for seq to w, using absolute commands
// only.
func WriteSVG(w io.Writer, seq iter.Seq[PathElement], opts SVGOptions) error {
	bw := bufio.NewWriter(w)
	first := true
	for el := range seq {
		if el.Kind < MoveToKind || el.Kind > ClosePathKind {
			panic("unreachable")
		}
		if !first {
			bw.WriteByte(' ')
		}
		first = false
		bw.WriteByte(svgCommand[el.Kind])
		for i, pt := range el.points() {
			if i > 0 {
				bw.WriteByte(' ')
			}
			bw.WriteString(FormatCoord(pt.X, opts))
			bw.WriteByte(',')
			bw.WriteString(FormatCoord(pt.Y, opts))
		}
	}
	return bw.Flush()
}

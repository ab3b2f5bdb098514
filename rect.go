package hypocycloid

// Rect is an axis-aligned rectangle in the model plane.
type Rect struct {
	X0, Y0 float64
	X1, Y1 float64
}

// NewRectFromPoints returns the rectangle spanned by p0 and p1, with
// non-negative width and height.
func NewRectFromPoints(p0, p1 Point) Rect {
	return Rect{
		X0: min(p0.X, p1.X),
		Y0: min(p0.Y, p1.Y),
		X1: max(p0.X, p1.X),
		Y1: max(p0.Y, p1.Y),
	}
}

// NewRectFromCenter returns the square of half-width |r| centered on center.
func NewRectFromCenter(center Point, r float64) Rect {
	return NewRectFromPoints(
		Pt(center.X-r, center.Y-r),
		Pt(center.X+r, center.Y+r),
	)
}

func (r Rect) Width() float64  { return r.X1 - r.X0 }
func (r Rect) Height() float64 { return r.Y1 - r.Y0 }

// Union returns the smallest rectangle enclosing r and o.
func (r Rect) Union(o Rect) Rect {
	return Rect{
		X0: min(r.X0, o.X0),
		Y0: min(r.Y0, o.Y0),
		X1: max(r.X1, o.X1),
		Y1: max(r.Y1, o.Y1),
	}
}

// UnionPoint grows r to include pt.
func (r Rect) UnionPoint(pt Point) Rect {
	return r.Union(Rect{pt.X, pt.Y, pt.X, pt.Y})
}

// Inflate moves every edge outwards by d.
func (r Rect) Inflate(d float64) Rect {
	return Rect{r.X0 - d, r.Y0 - d, r.X1 + d, r.Y1 + d}
}

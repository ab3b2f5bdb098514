package hypocycloid

import (
	"testing"
)

func TestPointArithmetic(t *testing.T) {
	diff(t, Pt(0, 0).Translate(Vec(-10, 0)), Pt(-10, 0))
}

func TestPointDistance(t *testing.T) {
	p1 := Pt(0, 10)
	p2 := Pt(0, 5)
	if d := p1.Distance(p2); d != 5 {
		t.Errorf("got distance %v, want 5", d)
	}

	p3 := Pt(-11, 1)
	p4 := Pt(-7, -2)
	if d := p3.Distance(p4); d != 5 {
		t.Errorf("got distance %v, want 5", d)
	}
	if n := Pt(3, -4).Norm(); n != 5 {
		t.Errorf("got norm %v, want 5", n)
	}
}

func TestMean(t *testing.T) {
	diff(t, Point{}, Mean(nil))
	diff(t, Pt(2, -3), Mean([]Point{Pt(2, -3)}))
	diff(t, Pt(1, 1), Mean([]Point{Pt(0, 0), Pt(2, 0), Pt(2, 2), Pt(0, 2)}))
}

func TestVecFromAngle(t *testing.T) {
	const epsilon = 1e-12
	assertNear(t, Point(VecFromAngle(0)), Pt(1, 0), epsilon)
	assertNear(t, Point(VecFromAngle(1.5707963267948966)), Pt(0, 1), epsilon)
	if h := VecFromAngle(2.5).Hypot(); h < 1-epsilon || h > 1+epsilon {
		t.Errorf("got magnitude %v, want 1", h)
	}
}

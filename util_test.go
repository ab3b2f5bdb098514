package hypocycloid

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

func diff(t *testing.T, want, got any, opts ...cmp.Option) {
	t.Helper()
	if d := cmp.Diff(want, got, opts...); d != "" {
		t.Error(d)
	}
}

// approx compares floats, including those inside points and trajectories,
// with an absolute tolerance.
func approx(eps float64) cmp.Option {
	return cmpopts.EquateApprox(0, eps)
}

func assertNear(t *testing.T, got Point, want Point, epsilon float64) {
	t.Helper()
	if d := got.Sub(want).Hypot(); d > epsilon {
		t.Fatalf("got %s, expected %s", got, want)
	}
}

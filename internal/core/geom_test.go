package core

import (
	"math"
	"testing"
)

func TestRectEdges(t *testing.T) {
	r := NewRect(5, 10, 20, 15)

	if r.Right() != 25 {
		t.Errorf("Right() = %d, expected 25", r.Right())
	}
	if r.Bottom() != 25 {
		t.Errorf("Bottom() = %d, expected 25", r.Bottom())
	}

	cx, cy := r.Center()
	if cx != 15 || cy != 17 {
		t.Errorf("Center() = (%d, %d), expected (15, 17)", cx, cy)
	}
}

func TestClampF(t *testing.T) {
	tests := []struct {
		val, min, max, expected float64
	}{
		{5.5, 0.0, 10.0, 5.5},
		{-5.5, 0.0, 10.0, 0.0},
		{15.5, 0.0, 10.0, 10.0},
	}

	for _, tc := range tests {
		result := ClampF(tc.val, tc.min, tc.max)
		if result != tc.expected {
			t.Errorf("ClampF(%f, %f, %f) = %f, expected %f", tc.val, tc.min, tc.max, result, tc.expected)
		}
	}
}

func TestVecNormalized(t *testing.T) {
	tests := []struct {
		name string
		in   Vec
		want float64
	}{
		{"zero stays zero", V(0, 0), 0},
		{"unit axis unchanged", V(1, 0), 1},
		{"diagonal clamped to unit", V(1, 1), 1},
		{"short vector kept", V(0.3, 0.4), 0.5},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := tc.in.Normalized().Len()
			if math.Abs(got-tc.want) > 1e-9 {
				t.Errorf("Normalized().Len() = %f, expected %f", got, tc.want)
			}
		})
	}
}

func TestBoxOverlaps(t *testing.T) {
	a := BoxAround(V(1, 1), 0.5)

	if !a.Overlaps(BoxAround(V(1.5, 1), 0.5)) {
		t.Error("half-shifted boxes should overlap")
	}
	if a.Overlaps(BoxAround(V(2, 1), 0.5)) {
		t.Error("edge-touching boxes should not overlap")
	}
	if a.Overlaps(BoxAround(V(1, 3), 0.5)) {
		t.Error("distant boxes should not overlap")
	}
}

func TestPenetrationMinPush(t *testing.T) {
	wall := BoxAround(V(2, 1), 0.5)

	// Actor slightly left of the wall, vertically aligned: push left.
	actor := BoxAround(V(1.2, 1.05), 0.4)
	push := actor.Penetration(wall).MinPush()
	if push.Y != 0 || push.X >= 0 {
		t.Errorf("expected leftward push, got %+v", push)
	}

	if math.Abs(push.X+0.1) > 1e-9 {
		t.Errorf("expected push of 0.1 to the left, got %f", push.X)
	}

	// Actor clipping the wall's bottom edge: push down.
	actor = BoxAround(V(2.1, 1.85), 0.4)
	push = actor.Penetration(wall).MinPush()
	if push.X != 0 || push.Y <= 0 {
		t.Errorf("expected downward push, got %+v", push)
	}
}

package utils

import (
	"math"
	"testing"
)

func TestVec2Normalize(t *testing.T) {
	v := Vec2{3, 4}.Normalize()
	if math.Abs(v.Len()-1) > 1e-9 {
		t.Fatalf("len(normalize(3,4)) = %f, want 1", v.Len())
	}
	if v.X != 0.6 || v.Y != 0.8 {
		t.Fatalf("normalize(3,4) = %+v, want {0.6 0.8}", v)
	}

	if z := (Vec2{}).Normalize(); z != (Vec2{}) {
		t.Fatalf("normalize(0,0) = %+v, want zero vector", z)
	}
}

func TestVec2Dist(t *testing.T) {
	a := Vec2{1, 1}
	b := Vec2{4, 5}
	if d := a.Dist(b); d != 5 {
		t.Fatalf("dist = %f, want 5", d)
	}
	if d := b.Dist(a); d != 5 {
		t.Fatalf("dist is not symmetric: %f", d)
	}
}

func TestLerpAngleShortestArc(t *testing.T) {
	from := math.Pi - 0.1
	to := -math.Pi + 0.1
	got := LerpAngle(from, to, 0.5)
	if math.Abs(math.Abs(got)-math.Pi) > 1e-9 {
		t.Fatalf("LerpAngle crossed zero instead of pi: %f", got)
	}
}

func TestDistToSegment(t *testing.T) {
	a := Vec2{0, 0}
	b := Vec2{10, 0}
	tests := []struct {
		p    Vec2
		want float64
	}{
		{Vec2{5, 3}, 3},  // над серединой
		{Vec2{-4, 3}, 5}, // за началом
		{Vec2{13, 4}, 5}, // за концом
		{Vec2{7, 0}, 0},  // на отрезке
	}
	for _, tt := range tests {
		if got := DistToSegment(tt.p, a, b); math.Abs(got-tt.want) > 1e-9 {
			t.Errorf("DistToSegment(%v) = %f, want %f", tt.p, got, tt.want)
		}
	}
	if got := DistToSegment(Vec2{3, 4}, a, a); got != 5 {
		t.Errorf("degenerate segment: %f, want 5", got)
	}
}

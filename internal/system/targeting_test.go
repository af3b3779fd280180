package system

import (
	"testing"

	"towerpower/internal/types"
	"towerpower/internal/utils"
)

func TestFindNearestTarget(t *testing.T) {
	origin := utils.Vec2{X: 0, Y: 0}
	tests := []struct {
		name       string
		radius     float64
		candidates []Candidate
		wantID     types.EntityID
		wantFound  bool
	}{
		{name: "no candidates", radius: 5, wantFound: false},
		{
			name:   "all out of range",
			radius: 2,
			candidates: []Candidate{
				{ID: 1, Pos: utils.Vec2{X: 3, Y: 0}},
				{ID: 2, Pos: utils.Vec2{X: 0, Y: -2.5}},
			},
			wantFound: false,
		},
		{
			name:   "exactly on the edge is out of range",
			radius: 2,
			candidates: []Candidate{
				{ID: 1, Pos: utils.Vec2{X: 2, Y: 0}},
			},
			wantFound: false,
		},
		{
			name:   "nearest wins regardless of order",
			radius: 5,
			candidates: []Candidate{
				{ID: 1, Pos: utils.Vec2{X: 4, Y: 0}},
				{ID: 2, Pos: utils.Vec2{X: 1, Y: 1}},
				{ID: 3, Pos: utils.Vec2{X: 0, Y: 3}},
			},
			wantID:    2,
			wantFound: true,
		},
		{
			name:   "closer enemy outside range is ignored only if outside",
			radius: 3,
			candidates: []Candidate{
				{ID: 7, Pos: utils.Vec2{X: 10, Y: 0}},
				{ID: 8, Pos: utils.Vec2{X: 2.9, Y: 0}},
			},
			wantID:    8,
			wantFound: true,
		},
		{
			name:   "tie goes to the lower id",
			radius: 5,
			candidates: []Candidate{
				{ID: 9, Pos: utils.Vec2{X: 0, Y: 2}},
				{ID: 4, Pos: utils.Vec2{X: -2, Y: 0}},
				{ID: 6, Pos: utils.Vec2{X: 2, Y: 0}},
			},
			wantID:    4,
			wantFound: true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, found := FindNearestTarget(origin, tt.radius, tt.candidates)
			if found != tt.wantFound {
				t.Fatalf("found = %v, want %v", found, tt.wantFound)
			}
			if found && got.ID != tt.wantID {
				t.Fatalf("target = %d, want %d", got.ID, tt.wantID)
			}
		})
	}
}

// The selected target is at the minimum distance among in-range candidates.
func TestFindNearestTargetIsMinimum(t *testing.T) {
	origin := utils.Vec2{X: 5, Y: 5}
	var cs []Candidate
	for i := 0; i < 50; i++ {
		x := float64((i*37)%23) * 0.5
		y := float64((i*11)%17) * 0.6
		cs = append(cs, Candidate{ID: types.EntityID(i + 1), Pos: utils.Vec2{X: x, Y: y}})
	}
	const radius = 4.0
	got, found := FindNearestTarget(origin, radius, cs)
	if !found {
		t.Fatal("expected a target")
	}
	d := origin.Dist(got.Pos)
	for _, c := range cs {
		cd := origin.Dist(c.Pos)
		if cd < radius && cd < d {
			t.Fatalf("candidate %d at %f is closer than chosen %d at %f", c.ID, cd, got.ID, d)
		}
	}
}

// internal/system/targeting.go
package system

import (
	"towerpower/internal/entity"
	"towerpower/internal/types"
	"towerpower/internal/utils"
)

// Candidate is an enemy that can be targeted.
type Candidate struct {
	ID  types.EntityID
	Pos utils.Vec2
}

// FindNearestTarget returns the candidate closest to origin among those
// strictly inside radius. When two candidates are at exactly the same
// distance the lower ID wins, so the result does not depend on input order.
func FindNearestTarget(origin utils.Vec2, radius float64, candidates []Candidate) (Candidate, bool) {
	var best Candidate
	bestDist := radius
	found := false
	for _, c := range candidates {
		d := origin.Dist(c.Pos)
		if d >= radius {
			continue
		}
		if !found || d < bestDist || (d == bestDist && c.ID < best.ID) {
			best, bestDist, found = c, d, true
		}
	}
	return best, found
}

// enemyCandidates collects every live enemy with a position, in ID order.
func enemyCandidates(ecs *entity.ECS) []Candidate {
	ids := entity.SortedIDs(ecs.Enemies)
	out := make([]Candidate, 0, len(ids))
	for _, id := range ids {
		if pos, ok := ecs.Positions[id]; ok {
			out = append(out, Candidate{ID: id, Pos: pos.Vec()})
		}
	}
	return out
}

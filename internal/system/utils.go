// internal/system/utils.go
package system

import (
	"towerpower/internal/entity"
	"towerpower/internal/types"
)

// ApplyDamage наносит урон сущности. Health is clamped at zero; the return
// value reports whether this hit brought it there.
func ApplyDamage(ecs *entity.ECS, entityID types.EntityID, damage int) bool {
	health, hasHealth := ecs.Healths[entityID]
	if !hasHealth || damage <= 0 {
		return false
	}
	if health.Value <= 0 {
		// уже мёртв, повторно не засчитываем
		return false
	}

	health.Value -= damage
	if health.Value <= 0 {
		health.Value = 0
		return true
	}
	return false
}

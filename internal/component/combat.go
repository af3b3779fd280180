// internal/component/combat.go
package component

// Health — компонент здоровья. Never negative.
type Health struct {
	Value int
	Max   int
}

// Combat — компонент для башен, управляющий атакой
type Combat struct {
	FireInterval       float64 // seconds between shots
	FireCooldown       float64 // Оставшееся время до следующего выстрела
	Range              float64 // world units
	Damage             int
	ProjectileSpeed    float64
	ProjectileLifetime float64
}

package component

// Enemy представляет вражескую сущность.
type Enemy struct {
	DefID      string // ID из enemies.json
	Bounty     uint32 // сколько валюты даёт убийство
	ReachedEnd bool   // Достиг ли враг конца пути
}

// component/tower.go
package component

// Tower marks a player-built tower. Towers persist for the whole match.
type Tower struct {
	DefID     string // ID из towers.json
	SlotIndex int    // слот карты, на котором стоит башня
}

package component

// Enemy представляет жука, движущегося по одной из полос.
type Enemy struct {
	DefID string // ID из enemies.json
	Lane  int    // текущая полоса, 1..3
}

package entity

// Move is an edge between two game states. The states are shared, not owned.
type Move struct {
	Symbol      Symbol
	CellIndex   int
	BeforeState *GameState
	AfterState  *GameState
}

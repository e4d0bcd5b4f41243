package entity

import "time"

// MatchRecord is a finished match as kept in the history.
type MatchRecord struct {
	ID             string    `json:"id"`
	StartingSymbol Symbol    `json:"starting_symbol"`
	Cells          string    `json:"cells"`
	Moves          []int     `json:"moves"`
	Winner         Symbol    `json:"winner,omitempty"`
	Tie            bool      `json:"tie"`
	FinishedAt     time.Time `json:"finished_at"`
}

// NewMatchRecord - describes the final state of a match and the cells played to reach it.
func NewMatchRecord(id string, final *GameState, moves []int, finishedAt time.Time) *MatchRecord {
	winner, _ := final.Winner()

	return &MatchRecord{
		ID:             id,
		StartingSymbol: final.StartingSymbol(),
		Cells:          final.Board().Cells(),
		Moves:          moves,
		Winner:         winner,
		Tie:            final.Tie(),
		FinishedAt:     finishedAt,
	}
}

// Replay - rebuilds the final state by playing the recorded moves from an empty board.
func (that *MatchRecord) Replay() (*GameState, error) {
	state, err := NewGame(that.StartingSymbol)
	if err != nil {
		return nil, err
	}

	for _, cell := range that.Moves {
		move, err := state.MakeMoveTo(cell)
		if err != nil {
			return nil, err
		}
		state = move.AfterState
	}

	return state, nil
}

package player

import (
	"context"
	"fmt"
	"math/rand"

	"github.com/rocketscienceinc/tictactoe-engine/internal/entity"
	"github.com/rocketscienceinc/tictactoe-engine/internal/tictactoe"
)

type minimaxBot struct {
	symbol entity.Symbol
}

// NewMinimaxBot - a player that always plays the move found by the full game tree search.
func NewMinimaxBot(symbol entity.Symbol) Player {
	return &minimaxBot{symbol: symbol}
}

func (that *minimaxBot) Symbol() entity.Symbol {
	return that.symbol
}

func (that *minimaxBot) GetMove(_ context.Context, state *entity.GameState) (*entity.Move, error) {
	move, err := tictactoe.FindBestMove(state)
	if err != nil {
		return nil, fmt.Errorf("minimax bot failed to find move: %w", err)
	}

	return &move, nil
}

type randomBot struct {
	symbol entity.Symbol
	rnd    *rand.Rand
}

// NewRandomBot - a player that picks any free cell.
func NewRandomBot(symbol entity.Symbol, rnd *rand.Rand) Player {
	return &randomBot{
		symbol: symbol,
		rnd:    rnd,
	}
}

func (that *randomBot) Symbol() entity.Symbol {
	return that.symbol
}

func (that *randomBot) GetMove(_ context.Context, state *entity.GameState) (*entity.Move, error) {
	availableMoves, err := state.PossibleMoves()
	if err != nil {
		return nil, fmt.Errorf("random bot failed to list moves: %w", err)
	}

	if len(availableMoves) == 0 {
		return nil, nil
	}

	move := availableMoves[that.rnd.Intn(len(availableMoves))]

	return &move, nil
}

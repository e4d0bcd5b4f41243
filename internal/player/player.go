package player

import (
	"context"
	"fmt"

	"github.com/rocketscienceinc/tictactoe-engine/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-engine/internal/entity"
)

var (
	ErrNotYourTurn = fmt.Errorf("%w: it's not this player's turn", apperror.ErrInvalidMove)
	ErrNoMoreMoves = fmt.Errorf("%w: no more moves", apperror.ErrInvalidMove)
)

// Player picks moves for one symbol.
type Player interface {
	Symbol() entity.Symbol

	// GetMove returns nil without an error when the player has no move to make.
	GetMove(ctx context.Context, state *entity.GameState) (*entity.Move, error)
}

// MakeMove - asks the player for a move and returns the state after it.
func MakeMove(ctx context.Context, player Player, state *entity.GameState) (*entity.GameState, error) {
	if player.Symbol() != state.CurrentSymbol() {
		return nil, fmt.Errorf("%w: %s to move, got %s", ErrNotYourTurn, state.CurrentSymbol(), player.Symbol())
	}

	move, err := player.GetMove(ctx, state)
	if err != nil {
		return nil, fmt.Errorf("failed to get move of %s: %w", player.Symbol(), err)
	}

	if move == nil {
		return nil, ErrNoMoreMoves
	}

	return move.AfterState, nil
}

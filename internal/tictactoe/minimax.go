package tictactoe

import (
	"fmt"

	"github.com/rocketscienceinc/tictactoe-engine/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-engine/internal/entity"
)

var ErrNoAvailableMoves = fmt.Errorf("%w: no available moves", apperror.ErrInvalidMove)

// FindBestMove - searches the whole game tree and returns the move that is best for the symbol to move.
// Among equally scored moves the first generated one (lowest cell index) wins.
func FindBestMove(state *entity.GameState) (entity.Move, error) {
	moves, err := state.PossibleMoves()
	if err != nil {
		return entity.Move{}, fmt.Errorf("failed to generate moves: %w", err)
	}

	if len(moves) == 0 {
		return entity.Move{}, fmt.Errorf("%w: %s", ErrNoAvailableMoves, state)
	}

	maximizer := state.CurrentSymbol()

	var (
		bestMove  entity.Move
		bestScore int
	)

	for i, move := range moves {
		score, err := Minimax(move, maximizer, false)
		if err != nil {
			return entity.Move{}, fmt.Errorf("failed to score move to cell %d: %w", move.CellIndex, err)
		}

		if i == 0 || score > bestScore {
			bestMove, bestScore = move, score
		}
	}

	return bestMove, nil
}

// Minimax - scores the move for the maximizer assuming both sides play perfectly afterwards.
// chooseHighest tells whether the state after the move is the maximizer's turn.
func Minimax(move entity.Move, maximizer entity.Symbol, chooseHighest bool) (int, error) {
	if move.AfterState.GameOver() {
		return move.AfterState.EvaluateScore(maximizer)
	}

	moves, err := move.AfterState.PossibleMoves()
	if err != nil {
		return 0, fmt.Errorf("failed to generate moves: %w", err)
	}

	if len(moves) == 0 {
		return 0, fmt.Errorf("%w: %s", ErrNoAvailableMoves, move.AfterState)
	}

	var bestScore int
	for i, next := range moves {
		score, err := Minimax(next, maximizer, !chooseHighest)
		if err != nil {
			return 0, err
		}

		if i == 0 || (chooseHighest && score > bestScore) || (!chooseHighest && score < bestScore) {
			bestScore = score
		}
	}

	return bestScore, nil
}

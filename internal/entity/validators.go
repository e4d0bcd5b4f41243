package entity

import (
	"fmt"

	"github.com/rocketscienceinc/tictactoe-engine/internal/apperror"
)

// ValidatePlayers - checks that the two players of a match use different symbols.
func ValidatePlayers(first, second Symbol) error {
	if !first.IsValid() || !second.IsValid() {
		return fmt.Errorf("%w: players must use X or O", apperror.ErrInvalidPlayers)
	}

	if first == second {
		return fmt.Errorf("%w: players must use different symbols", apperror.ErrInvalidPlayers)
	}

	return nil
}

// ValidateBoard - checks the board has 9 cells of X, O or space.
func ValidateBoard(cells string) error {
	if len(cells) != BoardSize {
		return fmt.Errorf("%w: must contain %d cells, got %d", apperror.ErrInvalidState, BoardSize, len(cells))
	}

	for i := range len(cells) {
		switch cells[i] {
		case EmptyCell, Cross.cell(), Naught.cell():
		default:
			return fmt.Errorf("%w: cell %d must be X, O or space, got %q", apperror.ErrInvalidState, i, cells[i])
		}
	}

	return nil
}

// ValidateGameState - checks the symbol counts of the state are reachable by alternating turns.
func ValidateGameState(state *GameState) error {
	if err := ValidateNumberOfSymbols(state.board); err != nil {
		return err
	}

	return ValidateWinner(state.board, state.winner, state.startingSymbol)
}

func ValidateNumberOfSymbols(board Board) error {
	if diff := board.XCount() - board.OCount(); diff > 1 || diff < -1 {
		return fmt.Errorf("%w: too many symbols (X=%d, O=%d)", apperror.ErrInvalidState, board.XCount(), board.OCount())
	}

	return nil
}

// ValidateWinner - the first mover can only win one symbol ahead, the second mover only on equal counts.
// first is the state's starting symbol, not always X, so in games opened by O it is O that must lead to win.
func ValidateWinner(board Board, winner, first Symbol) error {
	if winner == NoSymbol {
		return nil
	}

	firstCount, secondCount := board.Count(first), board.Count(first.Other())

	switch winner {
	case first:
		if firstCount <= secondCount {
			return fmt.Errorf("%w: %s cannot win without leading", apperror.ErrInvalidState, winner)
		}
	default:
		if secondCount != firstCount {
			return fmt.Errorf("%w: %s cannot win out of turn", apperror.ErrInvalidState, winner)
		}
	}

	return nil
}

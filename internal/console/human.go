package console

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/rocketscienceinc/tictactoe-engine/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-engine/internal/entity"
)

// Human is a player typing coordinates on a terminal.
type Human struct {
	symbol entity.Symbol

	in  *bufio.Scanner
	out io.Writer
}

func NewHuman(symbol entity.Symbol, in *bufio.Scanner, out io.Writer) *Human {
	return &Human{
		symbol: symbol,
		in:     in,
		out:    out,
	}
}

func (that *Human) Symbol() entity.Symbol {
	return that.symbol
}

// GetMove - prompts until a free cell is entered. Returns no move once the game
// is over or the input ends.
func (that *Human) GetMove(ctx context.Context, state *entity.GameState) (*entity.Move, error) {
	for !state.GameOver() {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		fmt.Fprintf(that.out, "%s's move: ", that.symbol)

		if !that.in.Scan() {
			if err := that.in.Err(); err != nil {
				return nil, fmt.Errorf("failed to read move: %w", err)
			}
			return nil, nil
		}

		index, err := ParseCoordinates(that.in.Text())
		if err != nil {
			fmt.Fprintln(that.out, "Cell number format: <Letter><Number>, e.g. A1 or c3")
			continue
		}

		move, err := state.MakeMoveTo(index)
		if errors.Is(err, apperror.ErrInvalidMove) {
			fmt.Fprintln(that.out, "Cell taken.")
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("failed to make move: %w", err)
		}

		return &move, nil
	}

	return nil, nil
}

package cli

import (
	"fmt"
	"strings"

	"github.com/rocketscienceinc/tictactoe-engine/internal/console"
	"github.com/rocketscienceinc/tictactoe-engine/internal/entity"
	"github.com/rocketscienceinc/tictactoe-engine/internal/tictactoe"
	"github.com/spf13/cobra"
)

// BestMoveResult is the JSON form of the best command.
type BestMoveResult struct {
	Symbol      entity.Symbol `json:"symbol"`
	Cell        int           `json:"cell"`
	Coordinates string        `json:"coordinates"`
	Board       string        `json:"board"`
	Winner      entity.Symbol `json:"winner,omitempty"`
	Tie         bool          `json:"tie"`
}

func newBestCmd(deps *Dependencies, out func() *Output) *cobra.Command {
	var start string

	cmd := &cobra.Command{
		Use:   "best <cells>",
		Short: "Print the optimal move for a board",
		Long: `Print the optimal move for a board given as 9 cells in row-major order,
using X, O and '.' or space for empty cells, e.g. "XX.OO....".`,
		Args: cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			startingSymbol, err := startingSymbol(start, deps.StartingSymbol)
			if err != nil {
				return err
			}

			board, err := entity.NewBoard(strings.ReplaceAll(strings.ToUpper(args[0]), ".", " "))
			if err != nil {
				return fmt.Errorf("failed to read board: %w", err)
			}

			state, err := entity.NewGameState(board, startingSymbol)
			if err != nil {
				return fmt.Errorf("failed to read board: %w", err)
			}

			move, err := tictactoe.FindBestMove(state)
			if err != nil {
				return fmt.Errorf("failed to find best move: %w", err)
			}

			winner, _ := move.AfterState.Winner()
			result := BestMoveResult{
				Symbol:      move.Symbol,
				Cell:        move.CellIndex,
				Coordinates: console.FormatCoordinates(move.CellIndex),
				Board:       move.AfterState.Board().Cells(),
				Winner:      winner,
				Tie:         move.AfterState.Tie(),
			}

			text := fmt.Sprintf("Best move for %s: %s (cell %d)\n%s", result.Symbol, result.Coordinates, result.Cell,
				console.FormatBoard(move.AfterState))

			return out().Print(result, text)
		},
	}

	cmd.Flags().StringVar(&start, "start", "", "Symbol that moved first (default from config)")

	return cmd
}

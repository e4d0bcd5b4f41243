package cli

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/rocketscienceinc/tictactoe-engine/internal/console"
	"github.com/rocketscienceinc/tictactoe-engine/internal/entity"
	"github.com/spf13/cobra"
)

var (
	ErrHistoryDisabled = errors.New("match history is disabled, enable it in the config")
	ErrCorruptMatch    = errors.New("stored match is corrupt")
)

func newHistoryCmd(deps *Dependencies, out func() *Output) *cobra.Command {
	var (
		limit  int
		remove bool
	)

	cmd := &cobra.Command{
		Use:   "history [id]",
		Short: "List finished matches or show one of them",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if deps.Matches == nil {
				return ErrHistoryDisabled
			}

			if remove {
				if len(args) != 1 {
					return errors.New("--delete needs a match id")
				}

				if err := deps.Matches.DeleteByID(cmd.Context(), args[0]); err != nil {
					return fmt.Errorf("failed to delete match: %w", err)
				}

				return out().Print(map[string]string{"deleted": args[0]}, fmt.Sprintf("Match %s deleted.\n", args[0]))
			}

			if len(args) == 1 {
				match, err := deps.Matches.GetByID(cmd.Context(), args[0])
				if err != nil {
					return fmt.Errorf("failed to get match: %w", err)
				}

				text, err := formatMatch(match)
				if err != nil {
					return err
				}

				return out().Print(match, text)
			}

			matches, err := deps.Matches.ListRecent(cmd.Context(), limit)
			if err != nil {
				return fmt.Errorf("failed to list matches: %w", err)
			}

			var sb strings.Builder
			for _, match := range matches {
				fmt.Fprintf(&sb, "%s  %s  %-7s  %q\n", match.ID, match.FinishedAt.Format(time.DateTime), result(match), match.Cells)
			}
			if len(matches) == 0 {
				sb.WriteString("No matches yet.\n")
			}

			return out().Print(matches, sb.String())
		},
	}

	cmd.Flags().IntVarP(&limit, "limit", "n", 10, "Number of matches to list")
	cmd.Flags().BoolVar(&remove, "delete", false, "Delete the given match")

	return cmd
}

func result(match *entity.MatchRecord) string {
	if match.Tie {
		return "tie"
	}
	return match.Winner.String() + " won"
}

func formatMatch(match *entity.MatchRecord) (string, error) {
	state, err := match.Replay()
	if err != nil {
		return "", fmt.Errorf("%w: %s: %w", ErrCorruptMatch, match.ID, err)
	}

	if cells := state.Board().Cells(); cells != match.Cells {
		return "", fmt.Errorf("%w: %s: moves lead to %q, stored %q", ErrCorruptMatch, match.ID, cells, match.Cells)
	}

	moves := make([]string, 0, len(match.Moves))
	for _, cell := range match.Moves {
		moves = append(moves, console.FormatCoordinates(cell))
	}

	return fmt.Sprintf("Match %s, %s started, %s\nMoves: %s\n%s", match.ID, match.StartingSymbol, result(match),
		strings.Join(moves, " "), console.FormatBoard(state)), nil
}

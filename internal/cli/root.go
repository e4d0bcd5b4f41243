package cli

import (
	"io"
	"log/slog"

	"github.com/rocketscienceinc/tictactoe-engine/internal/entity"
	"github.com/rocketscienceinc/tictactoe-engine/internal/repository"
	"github.com/spf13/cobra"
)

// Dependencies are built by the application before the commands run.
type Dependencies struct {
	Logger *slog.Logger

	In  io.Reader
	Out io.Writer

	StartingSymbol entity.Symbol

	// Matches is nil when the match history is disabled.
	Matches repository.MatchRepository
}

// NewRootCmd creates the root command
func NewRootCmd(deps *Dependencies) *cobra.Command {
	var format string

	rootCmd := &cobra.Command{
		Use:   "tictactoe",
		Short: "Tic-tac-toe with a perfect minimax opponent",
		Long: `tictactoe plays tic-tac-toe on the console against humans, a random bot
or a minimax search that never loses, and keeps a history of finished matches.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.SetIn(deps.In)
	rootCmd.SetOut(deps.Out)
	rootCmd.PersistentFlags().StringVarP(&format, "output", "o", formatText, "Output format: text, json")

	out := func() *Output {
		return NewOutput(format, deps.Out)
	}

	rootCmd.AddCommand(newPlayCmd(deps))
	rootCmd.AddCommand(newBestCmd(deps, out))
	rootCmd.AddCommand(newHistoryCmd(deps, out))

	return rootCmd
}

package cli

import (
	"bufio"
	"fmt"
	"math/rand"
	"time"

	"github.com/rocketscienceinc/tictactoe-engine/internal/console"
	"github.com/rocketscienceinc/tictactoe-engine/internal/entity"
	"github.com/rocketscienceinc/tictactoe-engine/internal/player"
	"github.com/rocketscienceinc/tictactoe-engine/internal/usecase"
	"github.com/spf13/cobra"
)

const (
	kindHuman   = "human"
	kindMinimax = "minimax"
	kindRandom  = "random"
)

func newPlayCmd(deps *Dependencies) *cobra.Command {
	var (
		crossKind  string
		naughtKind string
		start      string
		seed       int64
	)

	cmd := &cobra.Command{
		Use:   "play",
		Short: "Play a match on the console",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			startingSymbol, err := startingSymbol(start, deps.StartingSymbol)
			if err != nil {
				return err
			}

			if seed == 0 {
				seed = time.Now().UnixNano()
			}
			rnd := rand.New(rand.NewSource(seed)) //nolint: gosec // it's ok
			input := bufio.NewScanner(deps.In)

			crossPlayer, err := newPlayer(crossKind, entity.Cross, deps, input, rnd)
			if err != nil {
				return err
			}

			naughtPlayer, err := newPlayer(naughtKind, entity.Naught, deps, input, rnd)
			if err != nil {
				return err
			}

			state, err := entity.NewGame(startingSymbol)
			if err != nil {
				return fmt.Errorf("failed to create game: %w", err)
			}

			manager := usecase.NewMatchManager(deps.Logger, deps.Matches, console.NewRenderer(deps.Out))
			if _, err = manager.Play(cmd.Context(), state, crossPlayer, naughtPlayer); err != nil {
				return fmt.Errorf("failed to play match: %w", err)
			}

			return nil
		},
	}

	cmd.Flags().StringVar(&crossKind, "x", kindHuman, "Player for X: human, minimax, random")
	cmd.Flags().StringVar(&naughtKind, "o", kindMinimax, "Player for O: human, minimax, random")
	cmd.Flags().StringVar(&start, "start", "", "Symbol that moves first (default from config)")
	cmd.Flags().Int64Var(&seed, "seed", 0, "Seed for the random player (default: current time)")

	return cmd
}

// newPlayer - humans share one scanner so neither buffers away the other's input.
func newPlayer(kind string, symbol entity.Symbol, deps *Dependencies, input *bufio.Scanner, rnd *rand.Rand) (player.Player, error) {
	switch kind {
	case kindHuman:
		return console.NewHuman(symbol, input, deps.Out), nil
	case kindMinimax:
		return player.NewMinimaxBot(symbol), nil
	case kindRandom:
		return player.NewRandomBot(symbol, rnd), nil
	default:
		return nil, fmt.Errorf("unknown player %q for %s, use human, minimax or random", kind, symbol)
	}
}

func startingSymbol(flag string, fallback entity.Symbol) (entity.Symbol, error) {
	if flag == "" {
		return fallback, nil
	}

	return entity.ParseSymbol(flag)
}

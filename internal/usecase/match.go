package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/rocketscienceinc/tictactoe-engine/internal/entity"
	"github.com/rocketscienceinc/tictactoe-engine/internal/pkg"
	"github.com/rocketscienceinc/tictactoe-engine/internal/player"
)

type matchRepo interface {
	Create(ctx context.Context, match *entity.MatchRecord) error
}

type renderer interface {
	Render(state *entity.GameState)
}

// MatchManager runs matches between two players and records the finished ones.
type MatchManager struct {
	logger    *slog.Logger
	matchRepo matchRepo
	renderer  renderer
	now       func() time.Time
}

// NewMatchManager - matchRepo may be nil when the history is disabled.
func NewMatchManager(logger *slog.Logger, matchRepo matchRepo, renderer renderer) *MatchManager {
	return &MatchManager{
		logger:    logger,
		matchRepo: matchRepo,
		renderer:  renderer,
		now:       time.Now,
	}
}

// Play - alternates the two players from the initial state until the game is over.
func (that *MatchManager) Play(ctx context.Context, initial *entity.GameState, first, second player.Player) (*entity.MatchRecord, error) {
	log := that.logger.With("method", "Play")

	if err := entity.ValidatePlayers(first.Symbol(), second.Symbol()); err != nil {
		return nil, err
	}

	players := map[entity.Symbol]player.Player{
		first.Symbol():  first,
		second.Symbol(): second,
	}

	state := initial
	moves := make([]int, 0, state.Board().EmptyCount())

	that.render(state)

	for !state.GameOver() {
		if err := ctx.Err(); err != nil {
			return nil, fmt.Errorf("match interrupted: %w", err)
		}

		current := players[state.CurrentSymbol()]

		next, err := player.MakeMove(ctx, current, state)
		if err != nil {
			return nil, fmt.Errorf("failed make move: %w", err)
		}

		moves = append(moves, changedCell(state.Board(), next.Board()))
		log.Debug("move made", "symbol", current.Symbol(), "board", next.Board().Cells())

		state = next
		that.render(state)
	}

	matchID, err := pkg.GenerateMatchID()
	if err != nil {
		return nil, fmt.Errorf("failed create match record: %w", err)
	}

	record := entity.NewMatchRecord(matchID, state, moves, that.now().UTC())
	log.Info("match finished", "id", record.ID, "winner", record.Winner, "tie", record.Tie)

	that.saveMatch(ctx, record)

	return record, nil
}

func (that *MatchManager) render(state *entity.GameState) {
	if that.renderer != nil {
		that.renderer.Render(state)
	}
}

// saveMatch - a failed save is logged, the match result stands.
func (that *MatchManager) saveMatch(ctx context.Context, record *entity.MatchRecord) {
	if that.matchRepo == nil {
		return
	}

	log := that.logger.With("method", "saveMatch", "matchID", record.ID)

	if err := that.matchRepo.Create(ctx, record); err != nil {
		log.Error("failed to save match", "error", err)
		return
	}

	log.Info("match saved")
}

func changedCell(before, after entity.Board) int {
	for i := range entity.BoardSize {
		if before.IsEmptyAt(i) && !after.IsEmptyAt(i) {
			return i
		}
	}

	return -1
}

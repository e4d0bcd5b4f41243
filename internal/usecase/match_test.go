package usecase

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"math/rand"
	"testing"
	"time"

	"github.com/rocketscienceinc/tictactoe-engine/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-engine/internal/entity"
	"github.com/rocketscienceinc/tictactoe-engine/internal/player"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var errRedisDown = errors.New("redis down")

type mockMatchRepo struct {
	mock.Mock
}

func (that *mockMatchRepo) Create(ctx context.Context, match *entity.MatchRecord) error {
	args := that.Called(ctx, match)
	return args.Error(0)
}

type countingRenderer struct {
	states []*entity.GameState
}

func (that *countingRenderer) Render(state *entity.GameState) {
	that.states = append(that.states, state)
}

func newLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newGame(t *testing.T) *entity.GameState {
	t.Helper()

	state, err := entity.NewGame(entity.Cross)
	require.NoError(t, err)

	return state
}

func TestMatchManager_Play(t *testing.T) {
	ctx := context.Background()

	t.Run("Minimax against minimax ends in a tie and is saved", func(t *testing.T) {
		// Given: two minimax bots and a repository accepting the record
		matchRepo := &mockMatchRepo{}
		matchRepo.On("Create", mock.Anything, mock.AnythingOfType("*entity.MatchRecord")).Return(nil).Once()
		renderer := &countingRenderer{}
		manager := NewMatchManager(newLogger(), matchRepo, renderer)
		manager.now = func() time.Time { return time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC) }

		// When: playing a match
		record, err := manager.Play(ctx, newGame(t), player.NewMinimaxBot(entity.Cross), player.NewMinimaxBot(entity.Naught))

		// Then: the match is a tie with nine recorded moves
		require.NoError(t, err)
		assert.True(t, record.Tie)
		assert.Equal(t, entity.NoSymbol, record.Winner)
		assert.Len(t, record.Moves, 9)
		assert.Len(t, renderer.states, 10)
		assert.Equal(t, time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC), record.FinishedAt)
		matchRepo.AssertExpectations(t)

		replayed, err := record.Replay()
		require.NoError(t, err)
		assert.Equal(t, record.Cells, replayed.Board().Cells())
	})

	t.Run("Players are asked in turn", func(t *testing.T) {
		// Given: a random bot against a minimax bot with no history
		manager := NewMatchManager(newLogger(), nil, nil)
		rnd := rand.New(rand.NewSource(3)) //nolint: gosec // it's ok

		// When: the random bot is passed second but plays X
		record, err := manager.Play(ctx, newGame(t), player.NewMinimaxBot(entity.Naught), player.NewRandomBot(entity.Cross, rnd))

		// Then: the match finishes and X did not win
		require.NoError(t, err)
		assert.NotEqual(t, entity.Cross, record.Winner)
		assert.NotEmpty(t, record.ID)
	})

	t.Run("Returns an error when both players use the same symbol", func(t *testing.T) {
		manager := NewMatchManager(newLogger(), nil, nil)

		_, err := manager.Play(ctx, newGame(t), player.NewMinimaxBot(entity.Cross), player.NewMinimaxBot(entity.Cross))

		require.ErrorIs(t, err, apperror.ErrInvalidPlayers)
	})

	t.Run("A failed save does not fail the match", func(t *testing.T) {
		matchRepo := &mockMatchRepo{}
		matchRepo.On("Create", mock.Anything, mock.Anything).Return(errRedisDown).Once()
		manager := NewMatchManager(newLogger(), matchRepo, nil)

		board, err := entity.NewBoard("XXOO     ")
		require.NoError(t, err)
		state, err := entity.NewGameState(board, entity.Cross)
		require.NoError(t, err)

		record, err := manager.Play(ctx, state, player.NewMinimaxBot(entity.Cross), player.NewMinimaxBot(entity.Naught))

		require.NoError(t, err)
		assert.Equal(t, entity.Cross, record.Winner)
		assert.Equal(t, []int{2}, record.Moves)
		matchRepo.AssertExpectations(t)
	})

	t.Run("Stops on canceled context", func(t *testing.T) {
		manager := NewMatchManager(newLogger(), nil, nil)
		canceled, cancel := context.WithCancel(ctx)
		cancel()

		_, err := manager.Play(canceled, newGame(t), player.NewMinimaxBot(entity.Cross), player.NewMinimaxBot(entity.Naught))

		require.ErrorIs(t, err, context.Canceled)
	})
}

package console

import (
	"bufio"
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/rocketscienceinc/tictactoe-engine/internal/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newState(t *testing.T, cells string) *entity.GameState {
	t.Helper()

	board, err := entity.NewBoard(cells)
	require.NoError(t, err)

	state, err := entity.NewGameState(board, entity.Cross)
	require.NoError(t, err)

	return state
}

func TestParseCoordinates(t *testing.T) {
	tests := []struct {
		input string
		want  int
	}{
		{"A1", 0},
		{"b1", 1},
		{"C1", 2},
		{"a2", 3},
		{" B2 ", 4},
		{"C3", 8},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			index, err := ParseCoordinates(tt.input)

			require.NoError(t, err)
			assert.Equal(t, tt.want, index)
			assert.Equal(t, strings.ToUpper(strings.TrimSpace(tt.input)), FormatCoordinates(index))
		})
	}

	for _, input := range []string{"", "A", "D1", "A4", "1A", "A10"} {
		_, err := ParseCoordinates(input)
		assert.ErrorIs(t, err, ErrInvalidCoordinates, input)
	}
}

func TestHuman_GetMove(t *testing.T) {
	ctx := context.Background()

	t.Run("Re-prompts until a free cell is entered", func(t *testing.T) {
		// Given: input with a bad format, an occupied cell and then a free cell
		var out bytes.Buffer
		human := NewHuman(entity.Naught, bufio.NewScanner(strings.NewReader("zz\na1\nb2\n")), &out)
		state := newState(t, "X        ")

		// When: asking for a move
		move, err := human.GetMove(ctx, state)

		// Then: the free cell is played and both mistakes were reported
		require.NoError(t, err)
		require.NotNil(t, move)
		assert.Equal(t, 4, move.CellIndex)
		assert.Equal(t, entity.Naught, move.Symbol)
		assert.Contains(t, out.String(), "Cell number format")
		assert.Contains(t, out.String(), "Cell taken.")
		assert.Equal(t, 3, strings.Count(out.String(), "O's move: "))
	})

	t.Run("Returns no move when input ends", func(t *testing.T) {
		human := NewHuman(entity.Cross, bufio.NewScanner(strings.NewReader("")), &bytes.Buffer{})

		move, err := human.GetMove(ctx, newState(t, "         "))

		require.NoError(t, err)
		assert.Nil(t, move)
	})

	t.Run("Returns no move on a finished game", func(t *testing.T) {
		human := NewHuman(entity.Naught, bufio.NewScanner(strings.NewReader("C3\n")), &bytes.Buffer{})

		move, err := human.GetMove(ctx, newState(t, "XXXOO    "))

		require.NoError(t, err)
		assert.Nil(t, move)
	})

	t.Run("Stops on canceled context", func(t *testing.T) {
		canceled, cancel := context.WithCancel(ctx)
		cancel()
		human := NewHuman(entity.Cross, bufio.NewScanner(strings.NewReader("A1\n")), &bytes.Buffer{})

		_, err := human.GetMove(canceled, newState(t, "         "))

		require.ErrorIs(t, err, context.Canceled)
	})
}

func TestRenderer(t *testing.T) {
	t.Run("Brackets the winning line", func(t *testing.T) {
		var out bytes.Buffer

		NewRenderer(&out).Render(newState(t, "XXXOO    "))

		assert.Equal(t, strings.Join([]string{
			"    A   B   C",
			"1  [X]|[X]|[X]",
			"   ---+---+---",
			"2   O | O |   ",
			"   ---+---+---",
			"3     |   |   ",
			"X wins!",
			"",
		}, "\n"), out.String())
	})

	t.Run("Announces a tie", func(t *testing.T) {
		var out bytes.Buffer

		NewRenderer(&out).Render(newState(t, "XOXXOOOXX"))

		assert.Contains(t, out.String(), "No one wins this time.")
	})
}

package repository

import (
	"fmt"
	"testing"
	"time"

	"github.com/rocketscienceinc/tictactoe-engine/internal/entity"
	"github.com/rocketscienceinc/tictactoe-engine/testing/suite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRecord(id string) *entity.MatchRecord {
	return &entity.MatchRecord{
		ID:             id,
		StartingSymbol: entity.Cross,
		Cells:          "XXXOO    ",
		Moves:          []int{0, 3, 1, 4, 2},
		Winner:         entity.Cross,
		FinishedAt:     time.Date(2024, 5, 6, 7, 8, 9, 0, time.UTC),
	}
}

func TestMatchRepository_Create(t *testing.T) {
	ctx, st := suite.New(t)

	matchRepo := NewMatchRepository(st.Storage, time.Hour, 10)

	// Given: a finished match
	match := newRecord("123")

	// When: Create is called
	err := matchRepo.Create(ctx, match)

	// Then: no error should be returned, and the match is stored
	require.NoError(t, err)

	ttl, err := st.Storage.TTL(ctx, matchKey("123")).Result()
	require.NoError(t, err)
	assert.Positive(t, ttl)
}

func TestMatchRepository_GetByID(t *testing.T) {
	t.Run("GetByID_Success", func(t *testing.T) {
		ctx, st := suite.New(t)

		matchRepo := NewMatchRepository(st.Storage, 0, 10)

		// Given: a stored match
		match := newRecord("123")
		require.NoError(t, matchRepo.Create(ctx, match))

		// When: GetByID is called with existing ID
		retrieved, err := matchRepo.GetByID(ctx, match.ID)

		// Then: the retrieved match should match the saved one
		require.NoError(t, err)
		assert.Equal(t, match, retrieved)
	})

	t.Run("GetByID_NotFound", func(t *testing.T) {
		ctx, st := suite.New(t)

		matchRepo := NewMatchRepository(st.Storage, 0, 10)

		// When: GetByID is called with non-existent ID
		retrieved, err := matchRepo.GetByID(ctx, "9999999")

		// Then: an ErrMatchNotFound error should be returned
		require.ErrorIs(t, err, ErrMatchNotFound)
		assert.Nil(t, retrieved)
	})
}

func TestMatchRepository_ListRecent(t *testing.T) {
	ctx, st := suite.New(t)

	matchRepo := NewMatchRepository(st.Storage, 0, 3)

	// Given: five stored matches with a history limit of three
	for i := range 5 {
		require.NoError(t, matchRepo.Create(ctx, newRecord(fmt.Sprint(i))))
	}

	// When: listing the recent matches
	matches, err := matchRepo.ListRecent(ctx, 10)

	// Then: only the three newest are listed, newest first
	require.NoError(t, err)
	ids := make([]string, 0, len(matches))
	for _, match := range matches {
		ids = append(ids, match.ID)
	}
	assert.Equal(t, []string{"4", "3", "2"}, ids)

	matches, err = matchRepo.ListRecent(ctx, 1)
	require.NoError(t, err)
	require.Len(t, matches, 1)
	assert.Equal(t, "4", matches[0].ID)
}

func TestMatchRepository_DeleteByID(t *testing.T) {
	t.Run("DeleteByID_Success", func(t *testing.T) {
		ctx, st := suite.New(t)

		matchRepo := NewMatchRepository(st.Storage, 0, 10)

		// Given: a stored match
		match := newRecord("123")
		require.NoError(t, matchRepo.Create(ctx, match))

		// When: DeleteByID is called with existing ID
		err := matchRepo.DeleteByID(ctx, match.ID)

		// Then: the match is gone from storage and from the list
		require.NoError(t, err)

		_, err = matchRepo.GetByID(ctx, match.ID)
		require.ErrorIs(t, err, ErrMatchNotFound)

		matches, err := matchRepo.ListRecent(ctx, 10)
		require.NoError(t, err)
		assert.Empty(t, matches)
	})

	t.Run("DeleteByID_NotFound", func(t *testing.T) {
		ctx, st := suite.New(t)

		matchRepo := NewMatchRepository(st.Storage, 0, 10)

		// When: DeleteByID is called with non-existent ID
		err := matchRepo.DeleteByID(ctx, "9999999")

		// Then: an ErrMatchNotFound error should be returned
		require.ErrorIs(t, err, ErrMatchNotFound)
	})
}

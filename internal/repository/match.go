package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rocketscienceinc/tictactoe-engine/internal/entity"
)

var ErrMatchNotFound = errors.New("match not found")

type MatchRepository interface {
	Create(ctx context.Context, match *entity.MatchRecord) error
	GetByID(ctx context.Context, id string) (*entity.MatchRecord, error)
	ListRecent(ctx context.Context, count int) ([]*entity.MatchRecord, error)
	DeleteByID(ctx context.Context, id string) error
}

type dbMatch struct {
	client *redis.Client

	ttl   time.Duration
	limit int64
}

// NewMatchRepository - stores matches for ttl (0 keeps them forever) and remembers the last limit ids.
func NewMatchRepository(client *redis.Client, ttl time.Duration, limit int) MatchRepository {
	return &dbMatch{
		client: client,
		ttl:    ttl,
		limit:  int64(limit),
	}
}

func (that *dbMatch) Create(ctx context.Context, match *entity.MatchRecord) error {
	matchJSON, err := json.Marshal(match)
	if err != nil {
		return fmt.Errorf("could not marshal match: %w", err)
	}

	pipe := that.client.TxPipeline()
	pipe.Set(ctx, matchKey(match.ID), matchJSON, that.ttl)
	pipe.LPush(ctx, recentMatchesKey(), match.ID)
	if that.limit > 0 {
		pipe.LTrim(ctx, recentMatchesKey(), 0, that.limit-1)
	}

	if _, err = pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to set match: %w", err)
	}

	return nil
}

func (that *dbMatch) GetByID(ctx context.Context, id string) (*entity.MatchRecord, error) {
	response, err := that.client.Get(ctx, matchKey(id)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, ErrMatchNotFound
	}

	if err != nil {
		return nil, fmt.Errorf("failed to get match by id: %w", err)
	}

	var match entity.MatchRecord
	if err = json.Unmarshal(response, &match); err != nil {
		return nil, fmt.Errorf("failed to unmarshal match: %w", err)
	}

	return &match, nil
}

// ListRecent - returns up to count stored matches, newest first. Expired matches are skipped.
func (that *dbMatch) ListRecent(ctx context.Context, count int) ([]*entity.MatchRecord, error) {
	if count <= 0 {
		return nil, nil
	}

	ids, err := that.client.LRange(ctx, recentMatchesKey(), 0, int64(count)-1).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to list matches: %w", err)
	}

	matches := make([]*entity.MatchRecord, 0, len(ids))
	for _, id := range ids {
		match, err := that.GetByID(ctx, id)
		if errors.Is(err, ErrMatchNotFound) {
			continue
		}
		if err != nil {
			return nil, err
		}
		matches = append(matches, match)
	}

	return matches, nil
}

func (that *dbMatch) DeleteByID(ctx context.Context, id string) error {
	pipe := that.client.TxPipeline()
	deleted := pipe.Del(ctx, matchKey(id))
	pipe.LRem(ctx, recentMatchesKey(), 0, id)

	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to delete match by ID: %w", err)
	}

	if deleted.Val() == 0 {
		return ErrMatchNotFound
	}

	return nil
}

package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/rocketscienceinc/tictactoe-leaderboard/internal/entity"
)

// DefaultLeaderboardKey is the key the whole collection is stored under.
const DefaultLeaderboardKey = "ticTacToeLeaderboard"

type LeaderboardRepository interface {
	Load(ctx context.Context) ([]entity.Record, error)
	Save(ctx context.Context, records []entity.Record) error
}

type dbLeaderboard struct {
	client *redis.Client
	key    string
}

func NewLeaderboardRepository(client *redis.Client, key string) LeaderboardRepository {
	if key == "" {
		key = DefaultLeaderboardKey
	}

	return &dbLeaderboard{
		client: client,
		key:    key,
	}
}

func (that *dbLeaderboard) Load(ctx context.Context) ([]entity.Record, error) {
	response, err := that.client.Get(ctx, that.key).Result()

	if errors.Is(err, redis.Nil) {
		return []entity.Record{}, nil
	}

	if err != nil {
		return nil, fmt.Errorf("failed to get leaderboard: %w", err)
	}

	records := make([]entity.Record, 0)
	if err = json.Unmarshal([]byte(response), &records); err != nil {
		return nil, fmt.Errorf("failed to unmarshal leaderboard: %w", err)
	}

	return records, nil
}

func (that *dbLeaderboard) Save(ctx context.Context, records []entity.Record) error {
	if records == nil {
		records = []entity.Record{}
	}

	leaderboardJSON, err := json.Marshal(records)
	if err != nil {
		return fmt.Errorf("failed to marshal leaderboard: %w", err)
	}

	if err = that.client.Set(ctx, that.key, leaderboardJSON, 0).Err(); err != nil {
		return fmt.Errorf("failed to set leaderboard: %w", err)
	}

	return nil
}

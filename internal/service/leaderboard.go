package service

import (
	"cmp"
	"context"
	"fmt"
	"log/slog"
	"slices"
	"sync"

	"github.com/rocketscienceinc/tictactoe-leaderboard/internal/entity"
)

type LeaderboardService interface {
	Load(ctx context.Context) error
	RecordOutcome(ctx context.Context, name string, won bool) ([]entity.Record, error)
	Snapshot() []entity.Record
}

type leaderboardRepo interface {
	Load(ctx context.Context) ([]entity.Record, error)
	Save(ctx context.Context, records []entity.Record) error
}

type leaderboardService struct {
	logger *slog.Logger

	leaderboardRepo leaderboardRepo

	mu      sync.RWMutex
	records []entity.Record
}

func NewLeaderboardService(logger *slog.Logger, leaderboardRepo leaderboardRepo) LeaderboardService {
	return &leaderboardService{
		logger:          logger.With("component", "leaderboard"),
		leaderboardRepo: leaderboardRepo,
	}
}

// Load replaces the in-memory collection with the stored one.
func (that *leaderboardService) Load(ctx context.Context) error {
	records, err := that.leaderboardRepo.Load(ctx)
	if err != nil {
		return fmt.Errorf("failed to load leaderboard: %w", err)
	}

	that.mu.Lock()
	that.records = records
	that.mu.Unlock()

	that.logger.Info("leaderboard loaded", "players", len(records))

	return nil
}

// RecordOutcome credits a win or a loss to the player with exactly this name, keeps the
// collection ordered by wins and writes it back in full. The in-memory collection is
// updated even when the write fails.
func (that *leaderboardService) RecordOutcome(ctx context.Context, name string, won bool) ([]entity.Record, error) {
	log := that.logger.With("method", "RecordOutcome", "player", name, "won", won)

	that.mu.Lock()
	idx := slices.IndexFunc(that.records, func(record entity.Record) bool {
		return record.Name == name
	})

	if idx == -1 {
		that.records = append(that.records, entity.Record{Name: name})
		idx = len(that.records) - 1
	}

	if won {
		that.records[idx].Wins++
	} else {
		that.records[idx].Losses++
	}

	slices.SortStableFunc(that.records, func(a, b entity.Record) int {
		return cmp.Compare(b.Wins, a.Wins)
	})

	snapshot := cloneRecords(that.records)
	that.mu.Unlock()

	if err := that.leaderboardRepo.Save(ctx, snapshot); err != nil {
		log.Error("failed to save leaderboard", "error", err)
		return snapshot, fmt.Errorf("failed to save leaderboard: %w", err)
	}

	log.Debug("outcome recorded")

	return snapshot, nil
}

func (that *leaderboardService) Snapshot() []entity.Record {
	that.mu.RLock()
	defer that.mu.RUnlock()

	return cloneRecords(that.records)
}

func cloneRecords(records []entity.Record) []entity.Record {
	return append(make([]entity.Record, 0, len(records)), records...)
}

package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/rocketscienceinc/tictactoe-leaderboard/internal/entity"
)

type sqliteLeaderboard struct {
	conn *sql.DB
}

// NewSQLiteLeaderboardRepository expects the leaderboard table created by storage.SQLiteStorage.Init.
func NewSQLiteLeaderboardRepository(conn *sql.DB) LeaderboardRepository {
	return &sqliteLeaderboard{
		conn: conn,
	}
}

func (that *sqliteLeaderboard) Load(ctx context.Context) ([]entity.Record, error) {
	query := `SELECT name, wins, losses FROM leaderboard ORDER BY position`

	rows, err := that.conn.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("can't query leaderboard: %w", err)
	}
	defer rows.Close()

	records := make([]entity.Record, 0)
	for rows.Next() {
		var record entity.Record
		if err = rows.Scan(&record.Name, &record.Wins, &record.Losses); err != nil {
			return nil, fmt.Errorf("can't scan leaderboard row: %w", err)
		}

		records = append(records, record)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("can't read leaderboard: %w", err)
	}

	return records, nil
}

// Save rewrites the whole table in one transaction.
func (that *sqliteLeaderboard) Save(ctx context.Context, records []entity.Record) error {
	tx, err := that.conn.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("can't begin transaction: %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	if _, err = tx.ExecContext(ctx, `DELETE FROM leaderboard`); err != nil {
		return fmt.Errorf("can't clear leaderboard: %w", err)
	}

	stmt, err := tx.PrepareContext(ctx, `INSERT INTO leaderboard (position, name, wins, losses) VALUES (?, ?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("can't prepare insert: %w", err)
	}
	defer stmt.Close()

	for position, record := range records {
		if _, err = stmt.ExecContext(ctx, position, record.Name, record.Wins, record.Losses); err != nil {
			return fmt.Errorf("can't save record %q: %w", record.Name, err)
		}
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("can't commit leaderboard: %w", err)
	}

	return nil
}

package repository

import (
	"context"
	"fmt"

	"github.com/ccouzens/minimax-backend/internal/entity"
	"github.com/ccouzens/minimax-backend/internal/repository/storage/sqlite"
)

type MatchRepository interface {
	Save(ctx context.Context, match *entity.Match) error
	ListRecent(ctx context.Context, limit int) ([]*entity.Match, error)
}

type dbMatch struct {
	storage *sqlite.Storage
}

func NewMatchRepository(storage *sqlite.Storage) MatchRepository {
	return &dbMatch{
		storage: storage,
	}
}

func (that *dbMatch) Save(ctx context.Context, match *entity.Match) error {
	query := `INSERT INTO matches (game_id, kind, winner, finished_at) VALUES (?, ?, ?, ?)`

	_, err := that.storage.Connection.ExecContext(ctx, query, match.GameID, match.Kind, match.Winner, match.FinishedAt)
	if err != nil {
		return fmt.Errorf("failed to save match: %w", err)
	}

	return nil
}

func (that *dbMatch) ListRecent(ctx context.Context, limit int) ([]*entity.Match, error) {
	query := `SELECT game_id, kind, winner, finished_at FROM matches ORDER BY finished_at DESC LIMIT ?`

	rows, err := that.storage.Connection.QueryContext(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query matches: %w", err)
	}
	defer rows.Close()

	var matches []*entity.Match
	for rows.Next() {
		var match entity.Match
		if err = rows.Scan(&match.GameID, &match.Kind, &match.Winner, &match.FinishedAt); err != nil {
			return nil, fmt.Errorf("failed to scan match: %w", err)
		}

		matches = append(matches, &match)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read matches: %w", err)
	}

	return matches, nil
}

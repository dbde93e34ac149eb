package service

import (
	"context"
	"fmt"
	"time"

	"github.com/ccouzens/minimax-backend/internal/entity"
)

type HistoryService interface {
	RecordMatch(ctx context.Context, game *entity.Game) error
	RecentMatches(ctx context.Context, limit int) ([]*entity.Match, error)
}

type matchRepo interface {
	Save(ctx context.Context, match *entity.Match) error
	ListRecent(ctx context.Context, limit int) ([]*entity.Match, error)
}

type historyService struct {
	matchRepo matchRepo
}

func NewHistoryService(matchRepo matchRepo) HistoryService {
	return &historyService{
		matchRepo: matchRepo,
	}
}

func (that *historyService) RecordMatch(ctx context.Context, game *entity.Game) error {
	match := &entity.Match{
		GameID:     game.ID,
		Kind:       game.Kind,
		Winner:     game.Winner,
		FinishedAt: time.Now().UTC(),
	}

	if err := that.matchRepo.Save(ctx, match); err != nil {
		return fmt.Errorf("failed to record match: %w", err)
	}

	return nil
}

func (that *historyService) RecentMatches(ctx context.Context, limit int) ([]*entity.Match, error) {
	matches, err := that.matchRepo.ListRecent(ctx, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list matches: %w", err)
	}

	return matches, nil
}

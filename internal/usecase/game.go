package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/ccouzens/minimax-backend/internal/apperror"
	"github.com/ccouzens/minimax-backend/internal/entity"
)

type GameUseCase interface {
	GetOrCreatePlayer(ctx context.Context, playerID string) (*entity.Player, error)

	GetOrCreateGame(ctx context.Context, playerID, kind, gameType string) (*entity.Game, error)
	CreateOrJoinToPublicGame(ctx context.Context, playerID, kind string) (*entity.Game, error)
	JoinGame(ctx context.Context, gameID, playerID string) (*entity.Game, error)
	GetGameByPlayerID(ctx context.Context, playerID string) (*entity.Game, error)
	EndGame(ctx context.Context, game *entity.Game) error

	MakeTurn(ctx context.Context, playerID string, cell int) (*entity.Game, error)
}

type playerService interface {
	CreatePlayer(ctx context.Context) (*entity.Player, error)
	GetPlayerByID(ctx context.Context, id string) (*entity.Player, error)
}

type gamePlayService interface {
	JoinGameByID(ctx context.Context, gameID, playerID string) (*entity.Game, error)
	JoinWaitingPublicGame(ctx context.Context, playerID, kind string) (*entity.Game, error)
	GetOrCreateGame(ctx context.Context, player *entity.Player, kind, gameType string) (*entity.Game, error)
	CleanupGame(ctx context.Context, game *entity.Game)
	MakeTurn(ctx context.Context, playerID string, cell int) (*entity.Game, error)
}

type historyService interface {
	RecordMatch(ctx context.Context, game *entity.Game) error
}

type gameUseCase struct {
	logger *slog.Logger

	playerService   playerService
	gamePlayService gamePlayService
	historyService  historyService
}

func NewGameUseCase(logger *slog.Logger, playerService playerService, gamePlayService gamePlayService, historyService historyService) GameUseCase {
	return &gameUseCase{
		logger:          logger,
		playerService:   playerService,
		gamePlayService: gamePlayService,
		historyService:  historyService,
	}
}

func (that *gameUseCase) GetOrCreatePlayer(ctx context.Context, playerID string) (*entity.Player, error) {
	if playerID == "" {
		player, err := that.playerService.CreatePlayer(ctx)
		if err != nil {
			return nil, fmt.Errorf("could not create player: %w", err)
		}

		return player, nil
	}

	player, err := that.playerService.GetPlayerByID(ctx, playerID)
	if err != nil {
		return nil, fmt.Errorf("failed to get player by id: %w", err)
	}

	return player, nil
}

func (that *gameUseCase) GetOrCreateGame(ctx context.Context, playerID, kind, gameType string) (*entity.Game, error) {
	player, err := that.playerService.GetPlayerByID(ctx, playerID)
	if err != nil {
		return nil, fmt.Errorf("failed to get player: %w", err)
	}

	game, err := that.gamePlayService.GetOrCreateGame(ctx, player, kind, gameType)
	if err != nil {
		return nil, fmt.Errorf("failed to get or create game: %w", err)
	}

	return game, nil
}

// CreateOrJoinToPublicGame seats the player in a waiting public game of
// the requested kind, or opens a new one when none waits.
func (that *gameUseCase) CreateOrJoinToPublicGame(ctx context.Context, playerID, kind string) (*entity.Game, error) {
	game, err := that.gamePlayService.JoinWaitingPublicGame(ctx, playerID, kind)
	if err == nil {
		return game, nil
	}

	if !errors.Is(err, apperror.ErrNoActiveGames) {
		return nil, fmt.Errorf("failed to join public game: %w", err)
	}

	game, err = that.GetOrCreateGame(ctx, playerID, kind, entity.PublicType)
	if err != nil {
		return nil, fmt.Errorf("failed to create public game: %w", err)
	}

	return game, nil
}

func (that *gameUseCase) JoinGame(ctx context.Context, gameID, playerID string) (*entity.Game, error) {
	game, err := that.gamePlayService.JoinGameByID(ctx, gameID, playerID)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to game: %w", err)
	}

	return game, nil
}

func (that *gameUseCase) GetGameByPlayerID(ctx context.Context, playerID string) (*entity.Game, error) {
	player, err := that.playerService.GetPlayerByID(ctx, playerID)
	if err != nil {
		return nil, fmt.Errorf("failed to get player: %w", err)
	}

	if player.GameID == "" {
		return nil, apperror.ErrNoActiveGames
	}

	game, err := that.gamePlayService.GetOrCreateGame(ctx, player, "", "")
	if err != nil {
		return nil, fmt.Errorf("failed to get game: %w", err)
	}

	return game, nil
}

// EndGame archives and removes a game regardless of its board state.
func (that *gameUseCase) EndGame(ctx context.Context, game *entity.Game) error {
	if err := that.historyService.RecordMatch(ctx, game); err != nil {
		that.logger.Error("failed to record match", "gameID", game.ID, "error", err)
	}

	that.gamePlayService.CleanupGame(ctx, game)

	return nil
}

func (that *gameUseCase) MakeTurn(ctx context.Context, playerID string, cell int) (*entity.Game, error) {
	game, err := that.gamePlayService.MakeTurn(ctx, playerID, cell)
	if err != nil {
		return game, fmt.Errorf("failed to make turn: %w", err)
	}

	if game.IsFinished() {
		if err = that.historyService.RecordMatch(ctx, game); err != nil {
			that.logger.Error("failed to record match", "gameID", game.ID, "error", err)
		}

		that.gamePlayService.CleanupGame(ctx, game)

		return game, apperror.ErrGameFinished
	}

	return game, nil
}

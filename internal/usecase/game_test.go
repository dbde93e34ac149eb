package usecase

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ccouzens/minimax-backend/internal/apperror"
	"github.com/ccouzens/minimax-backend/internal/entity"
)

type stubPlayerService struct {
	createPlayer  func(ctx context.Context) (*entity.Player, error)
	getPlayerByID func(ctx context.Context, id string) (*entity.Player, error)
}

func (that *stubPlayerService) CreatePlayer(ctx context.Context) (*entity.Player, error) {
	return that.createPlayer(ctx)
}

func (that *stubPlayerService) GetPlayerByID(ctx context.Context, id string) (*entity.Player, error) {
	return that.getPlayerByID(ctx, id)
}

type stubGamePlayService struct {
	joinGameByID          func(ctx context.Context, gameID, playerID string) (*entity.Game, error)
	joinWaitingPublicGame func(ctx context.Context, playerID, kind string) (*entity.Game, error)
	getOrCreateGame       func(ctx context.Context, player *entity.Player, kind, gameType string) (*entity.Game, error)
	cleanupGame           func(ctx context.Context, game *entity.Game)
	makeTurn              func(ctx context.Context, playerID string, cell int) (*entity.Game, error)
}

func (that *stubGamePlayService) JoinGameByID(ctx context.Context, gameID, playerID string) (*entity.Game, error) {
	return that.joinGameByID(ctx, gameID, playerID)
}

func (that *stubGamePlayService) JoinWaitingPublicGame(ctx context.Context, playerID, kind string) (*entity.Game, error) {
	return that.joinWaitingPublicGame(ctx, playerID, kind)
}

func (that *stubGamePlayService) GetOrCreateGame(ctx context.Context, player *entity.Player, kind, gameType string) (*entity.Game, error) {
	return that.getOrCreateGame(ctx, player, kind, gameType)
}

func (that *stubGamePlayService) CleanupGame(ctx context.Context, game *entity.Game) {
	that.cleanupGame(ctx, game)
}

func (that *stubGamePlayService) MakeTurn(ctx context.Context, playerID string, cell int) (*entity.Game, error) {
	return that.makeTurn(ctx, playerID, cell)
}

type stubHistoryService struct {
	recordMatch func(ctx context.Context, game *entity.Game) error
}

func (that *stubHistoryService) RecordMatch(ctx context.Context, game *entity.Game) error {
	return that.recordMatch(ctx, game)
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestGameUseCase_GetOrCreatePlayer(t *testing.T) {
	t.Run("creates a player when no id is given", func(t *testing.T) {
		// Given: a player service that mints new players
		players := &stubPlayerService{
			createPlayer: func(_ context.Context) (*entity.Player, error) {
				return &entity.Player{ID: "fresh"}, nil
			},
		}
		useCase := NewGameUseCase(testLogger(), players, &stubGamePlayService{}, &stubHistoryService{})

		// When: connecting without an id
		player, err := useCase.GetOrCreatePlayer(context.Background(), "")

		// Then: a new player is created
		require.NoError(t, err)
		assert.Equal(t, "fresh", player.ID)
	})

	t.Run("returns the existing player for a known id", func(t *testing.T) {
		// Given: a player service that knows the player
		players := &stubPlayerService{
			getPlayerByID: func(_ context.Context, id string) (*entity.Player, error) {
				return &entity.Player{ID: id, Mark: entity.PlayerX}, nil
			},
		}
		useCase := NewGameUseCase(testLogger(), players, &stubGamePlayService{}, &stubHistoryService{})

		// When: connecting with an id
		player, err := useCase.GetOrCreatePlayer(context.Background(), "known")

		// Then: the stored player comes back
		require.NoError(t, err)
		assert.Equal(t, "known", player.ID)
		assert.Equal(t, entity.PlayerX, player.Mark)
	})
}

func TestGameUseCase_CreateOrJoinToPublicGame(t *testing.T) {
	t.Run("joins a waiting game when one exists", func(t *testing.T) {
		// Given: a waiting public game
		gamePlay := &stubGamePlayService{
			joinWaitingPublicGame: func(_ context.Context, _, _ string) (*entity.Game, error) {
				return &entity.Game{ID: "waiting"}, nil
			},
		}
		useCase := NewGameUseCase(testLogger(), &stubPlayerService{}, gamePlay, &stubHistoryService{})

		// When: asking for a public game
		game, err := useCase.CreateOrJoinToPublicGame(context.Background(), "p1", entity.KindTicTacToe)

		// Then: the waiting game is joined
		require.NoError(t, err)
		assert.Equal(t, "waiting", game.ID)
	})

	t.Run("creates a game when none waits", func(t *testing.T) {
		// Given: no waiting games and a creatable player
		players := &stubPlayerService{
			getPlayerByID: func(_ context.Context, id string) (*entity.Player, error) {
				return &entity.Player{ID: id}, nil
			},
		}
		gamePlay := &stubGamePlayService{
			joinWaitingPublicGame: func(_ context.Context, _, _ string) (*entity.Game, error) {
				return nil, apperror.ErrNoActiveGames
			},
			getOrCreateGame: func(_ context.Context, _ *entity.Player, kind, gameType string) (*entity.Game, error) {
				return &entity.Game{ID: "created", Kind: kind, Type: gameType}, nil
			},
		}
		useCase := NewGameUseCase(testLogger(), players, gamePlay, &stubHistoryService{})

		// When: asking for a public game
		game, err := useCase.CreateOrJoinToPublicGame(context.Background(), "p1", entity.KindConnectFour)

		// Then: a fresh public game of the right kind is created
		require.NoError(t, err)
		assert.Equal(t, "created", game.ID)
		assert.Equal(t, entity.KindConnectFour, game.Kind)
		assert.Equal(t, entity.PublicType, game.Type)
	})

	t.Run("propagates unexpected join failures", func(t *testing.T) {
		// Given: a join that fails for a non-retriable reason
		gamePlay := &stubGamePlayService{
			joinWaitingPublicGame: func(_ context.Context, _, _ string) (*entity.Game, error) {
				return nil, errors.New("storage is down")
			},
		}
		useCase := NewGameUseCase(testLogger(), &stubPlayerService{}, gamePlay, &stubHistoryService{})

		// When: asking for a public game
		_, err := useCase.CreateOrJoinToPublicGame(context.Background(), "p1", entity.KindTicTacToe)

		// Then: the failure surfaces
		assert.Error(t, err)
	})
}

func TestGameUseCase_MakeTurn(t *testing.T) {
	t.Run("ongoing game passes through", func(t *testing.T) {
		// Given: a turn that keeps the game open
		gamePlay := &stubGamePlayService{
			makeTurn: func(_ context.Context, _ string, _ int) (*entity.Game, error) {
				return &entity.Game{ID: "g1", Status: entity.StatusOngoing}, nil
			},
		}
		useCase := NewGameUseCase(testLogger(), &stubPlayerService{}, gamePlay, &stubHistoryService{})

		// When: making the turn
		game, err := useCase.MakeTurn(context.Background(), "p1", 0)

		// Then: the updated game comes back without archiving
		require.NoError(t, err)
		assert.Equal(t, "g1", game.ID)
	})

	t.Run("finished game is archived and cleaned up", func(t *testing.T) {
		// Given: a turn that ends the game
		var recorded, cleaned bool

		gamePlay := &stubGamePlayService{
			makeTurn: func(_ context.Context, _ string, _ int) (*entity.Game, error) {
				return &entity.Game{ID: "g1", Status: entity.StatusFinished, Winner: entity.PlayerX}, nil
			},
			cleanupGame: func(_ context.Context, _ *entity.Game) {
				cleaned = true
			},
		}
		history := &stubHistoryService{
			recordMatch: func(_ context.Context, game *entity.Game) error {
				recorded = true
				assert.Equal(t, entity.PlayerX, game.Winner)
				return nil
			},
		}
		useCase := NewGameUseCase(testLogger(), &stubPlayerService{}, gamePlay, history)

		// When: making the final turn
		game, err := useCase.MakeTurn(context.Background(), "p1", 8)

		// Then: the game is archived, removed and reported as finished
		require.ErrorIs(t, err, apperror.ErrGameFinished)
		require.NotNil(t, game)
		assert.True(t, recorded)
		assert.True(t, cleaned)
	})

	t.Run("a failed archive still cleans up", func(t *testing.T) {
		// Given: match recording is broken
		var cleaned bool

		gamePlay := &stubGamePlayService{
			makeTurn: func(_ context.Context, _ string, _ int) (*entity.Game, error) {
				return &entity.Game{ID: "g1", Status: entity.StatusFinished}, nil
			},
			cleanupGame: func(_ context.Context, _ *entity.Game) {
				cleaned = true
			},
		}
		history := &stubHistoryService{
			recordMatch: func(_ context.Context, _ *entity.Game) error {
				return errors.New("sqlite is down")
			},
		}
		useCase := NewGameUseCase(testLogger(), &stubPlayerService{}, gamePlay, history)

		// When: making the final turn
		_, err := useCase.MakeTurn(context.Background(), "p1", 8)

		// Then: the game still finishes and is cleaned up
		require.ErrorIs(t, err, apperror.ErrGameFinished)
		assert.True(t, cleaned)
	})
}

func TestGameUseCase_EndGame(t *testing.T) {
	// Given: an open game a player walks away from
	var recorded, cleaned bool

	gamePlay := &stubGamePlayService{
		cleanupGame: func(_ context.Context, _ *entity.Game) {
			cleaned = true
		},
	}
	history := &stubHistoryService{
		recordMatch: func(_ context.Context, _ *entity.Game) error {
			recorded = true
			return nil
		},
	}
	useCase := NewGameUseCase(testLogger(), &stubPlayerService{}, gamePlay, history)

	// When: ending the game
	err := useCase.EndGame(context.Background(), &entity.Game{ID: "g1", Status: entity.StatusOngoing})

	// Then: the game is archived and removed
	require.NoError(t, err)
	assert.True(t, recorded)
	assert.True(t, cleaned)
}

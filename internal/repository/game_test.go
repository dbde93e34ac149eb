package repository

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ccouzens/minimax-backend/internal/apperror"
	"github.com/ccouzens/minimax-backend/internal/entity"
	"github.com/ccouzens/minimax-backend/testing/suite"
)

func TestGameRepository_CreateOrUpdate(t *testing.T) {
	ctx, st := suite.New(t)

	gameRepo := NewGameRepository(st.Storage)

	// Given: a game with ID and status
	game := &entity.Game{
		ID:     "123",
		Kind:   entity.KindTicTacToe,
		Status: entity.StatusWaiting,
	}

	// When: CreateOrUpdate is called
	err := gameRepo.CreateOrUpdate(ctx, game)

	// Then: no error should be returned, and game is stored
	require.NoError(t, err)
}

func TestGameRepository_GetByID(t *testing.T) {
	t.Run("GetByID_Success", func(t *testing.T) {
		ctx, st := suite.New(t)

		gameRepo := NewGameRepository(st.Storage)

		// Given: a stored game
		game := &entity.Game{
			ID:     "123",
			Kind:   entity.KindConnectFour,
			Status: entity.StatusWaiting,
		}

		err := gameRepo.CreateOrUpdate(ctx, game)
		require.NoError(t, err)

		// When: GetByID is called with existing ID
		retrievedGame, err := gameRepo.GetByID(ctx, game.ID)

		// Then: the retrieved game should match the saved game
		require.NoError(t, err)
		require.Equal(t, game.ID, retrievedGame.ID)
		require.Equal(t, game.Kind, retrievedGame.Kind)
		require.Equal(t, game.Status, retrievedGame.Status)
	})

	t.Run("GetByID_NotFound", func(t *testing.T) {
		ctx, st := suite.New(t)

		gameRepo := NewGameRepository(st.Storage)

		nonExistentGameID := "9999999"

		// When: GetByID is called with non-existent ID
		retrievedGame, err := gameRepo.GetByID(ctx, nonExistentGameID)

		// Then: an ErrGameNotFound error should be returned
		require.Error(t, err)
		assert.Equal(t, ErrGameNotFound, err)
		assert.Empty(t, retrievedGame.ID)
		assert.Empty(t, retrievedGame.Status)
	})
}

func TestGameRepository_GetWaitingPublicGame(t *testing.T) {
	t.Run("finds a waiting public game of the requested kind", func(t *testing.T) {
		ctx, st := suite.New(t)

		gameRepo := NewGameRepository(st.Storage)

		// Given: a waiting public game of each kind
		ticTacToe := &entity.Game{
			ID:     "ttt-1",
			Kind:   entity.KindTicTacToe,
			Status: entity.StatusWaiting,
			Type:   entity.PublicType,
		}
		connectFour := &entity.Game{
			ID:     "c4-1",
			Kind:   entity.KindConnectFour,
			Status: entity.StatusWaiting,
			Type:   entity.PublicType,
		}

		require.NoError(t, gameRepo.CreateOrUpdate(ctx, ticTacToe))
		require.NoError(t, gameRepo.CreateOrUpdate(ctx, connectFour))

		// When: looking for a waiting connect-four game
		found, err := gameRepo.GetWaitingPublicGame(ctx, entity.KindConnectFour)

		// Then: the connect-four game is returned
		require.NoError(t, err)
		assert.Equal(t, connectFour.ID, found.ID)
	})

	t.Run("ignores private and ongoing games", func(t *testing.T) {
		ctx, st := suite.New(t)

		gameRepo := NewGameRepository(st.Storage)

		// Given: a private waiting game and a public ongoing game
		private := &entity.Game{
			ID:     "priv-1",
			Kind:   entity.KindTicTacToe,
			Status: entity.StatusWaiting,
			Type:   entity.PrivateType,
		}
		ongoing := &entity.Game{
			ID:     "pub-1",
			Kind:   entity.KindTicTacToe,
			Status: entity.StatusOngoing,
			Type:   entity.PublicType,
		}

		require.NoError(t, gameRepo.CreateOrUpdate(ctx, private))
		require.NoError(t, gameRepo.CreateOrUpdate(ctx, ongoing))

		// When: looking for a waiting public game
		_, err := gameRepo.GetWaitingPublicGame(ctx, entity.KindTicTacToe)

		// Then: none is found
		assert.ErrorIs(t, err, apperror.ErrNoActiveGames)
	})
}

func TestGameRepository_DeleteByID(t *testing.T) {
	ctx, st := suite.New(t)

	gameRepo := NewGameRepository(st.Storage)

	// Given: a stored game
	game := &entity.Game{
		ID:     "123",
		Kind:   entity.KindTicTacToe,
		Status: entity.StatusFinished,
	}

	err := gameRepo.CreateOrUpdate(ctx, game)
	require.NoError(t, err)

	// When: DeleteByID is called with existing ID
	err = gameRepo.DeleteByID(ctx, game.ID)

	// Then: the game is gone
	require.NoError(t, err)

	_, err = gameRepo.GetByID(ctx, game.ID)
	require.Error(t, err)
	assert.Equal(t, ErrGameNotFound, err)
}

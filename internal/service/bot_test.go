package service

import (
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ccouzens/minimax-backend/internal/apperror"
	"github.com/ccouzens/minimax-backend/internal/entity"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func botGame(kind, board, turn string) *entity.Game {
	return &entity.Game{
		ID:     "000",
		Kind:   kind,
		Board:  board,
		Turn:   turn,
		Status: entity.StatusOngoing,
		Type:   entity.WithBotType,
		Players: []*entity.Player{
			{ID: "human", Mark: entity.PlayerX, GameID: "000"},
			entity.NewBotPlayer("000", entity.PlayerO),
		},
	}
}

func TestBotService_MakeTurn(t *testing.T) {
	botService := NewBotService(discardLogger())

	t.Run("bot completes a tic-tac-toe line", func(t *testing.T) {
		// Given: the bot plays O and has an open top row
		game := botGame(entity.KindTicTacToe, "<O O┃ X ┃X X>", entity.PlayerO)

		// When: the bot makes its turn
		err := botService.MakeTurn(game)
		require.NoError(t, err)

		// Then: the bot takes the winning cell and the game is over
		assert.Equal(t, "<OOO┃ X ┃X X>", game.Board)
		assert.Equal(t, entity.PlayerO, game.Winner)
		assert.Equal(t, entity.StatusFinished, game.Status)
	})

	t.Run("bot completes a connect-four run", func(t *testing.T) {
		// Given: the bot plays O, one column open above three O pieces
		game := botGame(entity.KindConnectFour, "< XOXXOX┃ XXOOXX┃ OOXXOO┃OXXOOXX┃OOOXXOO┃OXXOOXX>", entity.PlayerO)

		// When: the bot makes its turn
		err := botService.MakeTurn(game)
		require.NoError(t, err)

		// Then: the bot drops into the open column and wins
		assert.Equal(t, "< XOXXOX┃ XXOOXX┃OOOXXOO┃OXXOOXX┃OOOXXOO┃OXXOOXX>", game.Board)
		assert.Equal(t, entity.PlayerO, game.Winner)
		assert.Equal(t, entity.StatusFinished, game.Status)
	})

	t.Run("game keeps going after a non-decisive move", func(t *testing.T) {
		// Given: an opening position with the bot to move
		game := botGame(entity.KindTicTacToe, "<X  ┃   ┃   >", entity.PlayerO)

		// When: the bot makes its turn
		err := botService.MakeTurn(game)
		require.NoError(t, err)

		// Then: the turn passes back to the human
		assert.Equal(t, entity.PlayerX, game.Turn)
		assert.Equal(t, entity.StatusOngoing, game.Status)
	})

	t.Run("error when the game has no bot", func(t *testing.T) {
		// Given: a game between two humans
		game := botGame(entity.KindTicTacToe, "<   ┃   ┃   >", entity.PlayerO)
		game.Players = []*entity.Player{{ID: "human", Mark: entity.PlayerX}}

		// When: the bot is asked to move
		err := botService.MakeTurn(game)

		// Then: an ErrBotNotFound error should be returned
		assert.ErrorIs(t, err, ErrBotNotFound)
	})

	t.Run("error when it is not the bot's turn", func(t *testing.T) {
		// Given: the human to move
		game := botGame(entity.KindTicTacToe, "<   ┃   ┃   >", entity.PlayerX)

		// When: the bot is asked to move
		err := botService.MakeTurn(game)

		// Then: an ErrNotYourTurn error should be returned
		assert.ErrorIs(t, err, apperror.ErrNotYourTurn)
	})

	t.Run("error on an unknown game kind", func(t *testing.T) {
		// Given: a game of a kind nobody implements
		game := botGame("checkers", "<   ┃   ┃   >", entity.PlayerO)

		// When: the bot is asked to move
		err := botService.MakeTurn(game)

		// Then: the kind is rejected
		assert.ErrorIs(t, err, apperror.ErrUnknownGameKind)
	})
}

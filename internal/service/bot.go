package service

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/ccouzens/minimax-backend/internal/apperror"
	"github.com/ccouzens/minimax-backend/internal/connectfour"
	"github.com/ccouzens/minimax-backend/internal/entity"
	"github.com/ccouzens/minimax-backend/internal/minimax"
	"github.com/ccouzens/minimax-backend/internal/tictactoe"
)

var (
	ErrBotNotFound      = errors.New("bot player not found")
	ErrNoAvailableMoves = errors.New("no available moves")
)

type BotService interface {
	MakeTurn(game *entity.Game) error
}

type botService struct {
	logger *slog.Logger
}

func NewBotService(logger *slog.Logger) BotService {
	return &botService{
		logger: logger,
	}
}

// MakeTurn plays the bot's move. The position is searched to the end,
// so the move is game-theoretically optimal.
func (that *botService) MakeTurn(game *entity.Game) error {
	botPlayer := game.BotPlayer()
	if botPlayer == nil {
		return ErrBotNotFound
	}

	if game.Turn != botPlayer.Mark {
		return apperror.ErrNotYourTurn
	}

	board, err := that.bestBoard(game, botPlayer.Mark == entity.PlayerO)
	if err != nil {
		return err
	}

	game.Board = board
	game.Turn = entity.OpponentMark(botPlayer.Mark)
	game.UpdateGameState()

	that.logger.Debug("bot made a turn", "gameID", game.ID, "board", game.Board)

	return nil
}

func (that *botService) bestBoard(game *entity.Game, maximizing bool) (string, error) {
	switch game.Kind {
	case entity.KindTicTacToe:
		position, err := tictactoe.Parse(game.Board)
		if err != nil {
			return "", fmt.Errorf("failed to parse board: %w", err)
		}

		next, ok := minimax.BestMove(position, maximizing)
		if !ok {
			return "", ErrNoAvailableMoves
		}

		return next.String(), nil
	case entity.KindConnectFour:
		position, err := connectfour.Parse(game.Board)
		if err != nil {
			return "", fmt.Errorf("failed to parse board: %w", err)
		}

		next, ok := minimax.BestMove(position, maximizing)
		if !ok {
			return "", ErrNoAvailableMoves
		}

		return next.String(), nil
	default:
		return "", fmt.Errorf("%w: %q", apperror.ErrUnknownGameKind, game.Kind)
	}
}

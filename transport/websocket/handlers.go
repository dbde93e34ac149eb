package websocket

import (
	"bufio"
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/ccouzens/minimax-backend/internal/apperror"
	"github.com/ccouzens/minimax-backend/internal/entity"
)

// handleConnect - binds the socket to a player session. An empty player
// id in the payload creates a fresh player.
func (that *Server) handleConnect(ctx context.Context, message *Message, bufrw *bufio.ReadWriter) error {
	var payload Payload
	if len(message.Payload) > 0 {
		if err := json.Unmarshal(message.Payload, &payload); err != nil {
			return that.sendErrorResponse(bufrw, message.Action, "invalid payload")
		}
	}

	var playerID string
	if payload.Player != nil {
		playerID = payload.Player.ID
	}

	player, err := that.gameUseCase.GetOrCreatePlayer(ctx, playerID)
	if err != nil {
		that.logger.Error("failed to get or create player", "error", err)
		return that.sendErrorResponse(bufrw, message.Action, "failed to connect")
	}

	that.registerConnection(player.ID, bufrw)

	response := Payload{Player: player}
	if player.GameID != "" {
		game, gameErr := that.gameUseCase.GetGameByPlayerID(ctx, player.ID)
		if gameErr == nil {
			response.Game = maskGameDetails(game)
		}
	}

	return that.sendMessage(bufrw, message.Action, response)
}

// handleNewGame - creates a game of the requested kind and type. Public
// games first try to seat the player in a waiting room.
func (that *Server) handleNewGame(ctx context.Context, message *Message, bufrw *bufio.ReadWriter) error {
	var payload Payload
	if err := json.Unmarshal(message.Payload, &payload); err != nil {
		return that.sendErrorResponse(bufrw, message.Action, "invalid payload")
	}

	if payload.Player == nil || payload.Game == nil {
		return that.sendErrorResponse(bufrw, message.Action, "player and game are required")
	}

	kind := payload.Game.Kind
	gameType := payload.Game.Type

	var game *entity.Game
	var err error

	if gameType == entity.PublicType {
		game, err = that.gameUseCase.CreateOrJoinToPublicGame(ctx, payload.Player.ID, kind)
	} else {
		game, err = that.gameUseCase.GetOrCreateGame(ctx, payload.Player.ID, kind, gameType)
	}

	if err != nil {
		if errors.Is(err, apperror.ErrUnknownGameKind) {
			return that.sendErrorResponse(bufrw, message.Action, fmt.Sprintf("unknown game kind: %s", kind))
		}

		that.logger.Error("failed to create game", "error", err)

		return that.sendErrorResponse(bufrw, message.Action, "failed to create game")
	}

	that.notifyPlayers(game, message.Action)

	return nil
}

// handleJoinGame - joins a private game by its id.
func (that *Server) handleJoinGame(ctx context.Context, message *Message, bufrw *bufio.ReadWriter) error {
	var payload Payload
	if err := json.Unmarshal(message.Payload, &payload); err != nil {
		return that.sendErrorResponse(bufrw, message.Action, "invalid payload")
	}

	if payload.Player == nil || payload.Game == nil || payload.Game.ID == "" {
		return that.sendErrorResponse(bufrw, message.Action, "player and game id are required")
	}

	game, err := that.gameUseCase.JoinGame(ctx, payload.Game.ID, payload.Player.ID)
	if err != nil {
		if errors.Is(err, apperror.ErrGameAlreadyExists) {
			return that.sendErrorResponse(bufrw, message.Action, "game is already full")
		}

		that.logger.Error("failed to join game", "error", err)

		return that.sendErrorResponse(bufrw, message.Action, "failed to join game")
	}

	that.notifyPlayers(game, message.Action)

	return nil
}

// handleGameTurn - applies the player's move and broadcasts the result.
func (that *Server) handleGameTurn(ctx context.Context, message *Message, bufrw *bufio.ReadWriter) error {
	var payload Payload
	if err := json.Unmarshal(message.Payload, &payload); err != nil {
		return that.sendErrorResponse(bufrw, message.Action, "invalid payload")
	}

	if payload.Player == nil || payload.Cell == nil {
		return that.sendErrorResponse(bufrw, message.Action, "player and cell are required")
	}

	game, err := that.gameUseCase.MakeTurn(ctx, payload.Player.ID, *payload.Cell)

	switch {
	case err == nil:
		that.notifyPlayers(game, message.Action)
		return nil

	case errors.Is(err, apperror.ErrGameFinished):
		// the final board still goes out before the room is torn down
		that.notifyPlayers(game, message.Action)
		return nil

	case errors.Is(err, apperror.ErrGameIsNotStarted):
		return that.sendErrorResponse(bufrw, message.Action, "game is not started yet")

	case errors.Is(err, apperror.ErrNotYourTurn):
		return that.sendErrorResponse(bufrw, message.Action, "now is not your turn")

	case errors.Is(err, apperror.ErrCellOccupied):
		return that.sendErrorResponse(bufrw, message.Action, "cell is already occupied")

	case errors.Is(err, apperror.ErrInvalidCell):
		return that.sendErrorResponse(bufrw, message.Action, "invalid cell")

	case errors.Is(err, apperror.ErrColumnFull):
		return that.sendErrorResponse(bufrw, message.Action, "column is full")

	case errors.Is(err, apperror.ErrInvalidColumn):
		return that.sendErrorResponse(bufrw, message.Action, "invalid column")

	default:
		that.logger.Error("failed to make turn", "error", err)
		return that.sendErrorResponse(bufrw, message.Action, "failed to make turn")
	}
}

// handleGameLeave - ends the game for everyone in the room.
func (that *Server) handleGameLeave(ctx context.Context, message *Message, bufrw *bufio.ReadWriter) error {
	var payload Payload
	if err := json.Unmarshal(message.Payload, &payload); err != nil {
		return that.sendErrorResponse(bufrw, message.Action, "invalid payload")
	}

	if payload.Player == nil {
		return that.sendErrorResponse(bufrw, message.Action, "player is required")
	}

	game, err := that.gameUseCase.GetGameByPlayerID(ctx, payload.Player.ID)
	if err != nil {
		if errors.Is(err, apperror.ErrNoActiveGames) {
			return that.sendErrorResponse(bufrw, message.Action, "no active game")
		}

		that.logger.Error("failed to get game", "error", err)

		return that.sendErrorResponse(bufrw, message.Action, "failed to leave game")
	}

	if err = that.gameUseCase.EndGame(ctx, game); err != nil {
		that.logger.Error("failed to end game", "error", err)
		return that.sendErrorResponse(bufrw, message.Action, "failed to leave game")
	}

	that.notifyPlayers(game, message.Action)

	return nil
}

// notifyPlayers - sends the current game state to every connected human
// player in the room.
func (that *Server) notifyPlayers(game *entity.Game, action string) {
	masked := maskGameDetails(game)

	for _, player := range game.Players {
		if player.IsBot() {
			continue
		}

		conn, ok := that.connectionByPlayerID(player.ID)
		if !ok {
			continue
		}

		payload := Payload{Player: player, Game: masked}
		if err := that.sendMessage(conn, action, payload); err != nil {
			that.logger.Error("failed to notify player", "playerID", player.ID, "error", err)
		}
	}
}

// maskGameDetails - strips the player list from the outgoing game so a
// client never sees the opponent's session id.
func maskGameDetails(game *entity.Game) *entity.Game {
	masked := *game
	masked.Players = nil

	return &masked
}

package rest

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/ccouzens/minimax-backend/internal/apperror"
	"github.com/ccouzens/minimax-backend/internal/connectfour"
	"github.com/ccouzens/minimax-backend/internal/entity"
	"github.com/ccouzens/minimax-backend/internal/minimax"
	"github.com/ccouzens/minimax-backend/internal/tictactoe"
)

const defaultMatchesLimit = 20

type solveRequest struct {
	Kind   string `json:"kind"`
	Board  string `json:"board"`
	Player string `json:"player"`
}

type solveResponse struct {
	Board    string `json:"board"`
	Score    int    `json:"score"`
	Finished bool   `json:"finished"`
}

// SolveHandler - evaluates a position for the given player and returns
// the best continuation. The board is left untouched when the position
// is already terminal or has no moves.
func (that *Server) SolveHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req solveRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	if req.Player != entity.PlayerO && req.Player != entity.PlayerX {
		http.Error(w, "player must be O or X", http.StatusBadRequest)
		return
	}

	maximizing := req.Player == entity.PlayerO

	resp, err := solvePosition(req.Kind, req.Board, maximizing)
	if err != nil {
		switch {
		case errors.Is(err, apperror.ErrUnknownGameKind):
			http.Error(w, "unknown game kind", http.StatusBadRequest)
		case errors.Is(err, apperror.ErrMalformedBoard):
			http.Error(w, "malformed board", http.StatusBadRequest)
		default:
			that.logger.Error("failed to solve position", "error", err)
			http.Error(w, "internal error", http.StatusInternalServerError)
		}
		return
	}

	that.writeJSON(w, resp)
}

func solvePosition(kind, board string, maximizing bool) (*solveResponse, error) {
	switch kind {
	case entity.KindTicTacToe:
		game, err := tictactoe.Parse(board)
		if err != nil {
			return nil, err
		}

		outcome := minimax.Search(game, maximizing)

		resp := &solveResponse{Board: game.String(), Score: int(outcome.Score), Finished: !outcome.HasNext}
		if outcome.HasNext {
			resp.Board = outcome.Next.String()
		}

		return resp, nil

	case entity.KindConnectFour:
		game, err := connectfour.Parse(board)
		if err != nil {
			return nil, err
		}

		outcome := minimax.Search(game, maximizing)

		resp := &solveResponse{Board: game.String(), Score: int(outcome.Score), Finished: !outcome.HasNext}
		if outcome.HasNext {
			resp.Board = outcome.Next.String()
		}

		return resp, nil

	default:
		return nil, apperror.ErrUnknownGameKind
	}
}

// MatchesHandler - returns recently finished games, newest first.
func (that *Server) MatchesHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	limit := defaultMatchesLimit
	if raw := r.URL.Query().Get("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 1 {
			http.Error(w, "invalid limit", http.StatusBadRequest)
			return
		}
		limit = parsed
	}

	matches, err := that.historyService.RecentMatches(r.Context(), limit)
	if err != nil {
		that.logger.Error("failed to list matches", "error", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	that.writeJSON(w, matches)
}

func (that *Server) writeJSON(w http.ResponseWriter, v interface{}) {
	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(v); err != nil {
		that.logger.Error("failed to write response", "error", err)
	}
}

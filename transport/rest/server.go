package rest

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/ccouzens/minimax-backend/internal/entity"
)

type historyService interface {
	RecentMatches(ctx context.Context, limit int) ([]*entity.Match, error)
}

type Server struct {
	logger         *slog.Logger
	historyService historyService
}

func New(logger *slog.Logger, historyService historyService) *Server {
	return &Server{
		logger:         logger,
		historyService: historyService,
	}
}

// Start - starts REST server.
func (that *Server) Start(port string) error {
	mux := http.NewServeMux()

	mux.HandleFunc("/ping", that.PingHandler)
	mux.HandleFunc("/solve", that.SolveHandler)
	mux.HandleFunc("/matches", that.MatchesHandler)

	srv := &http.Server{
		Addr:         ":" + port,
		Handler:      mux,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  30 * time.Second,
	}

	if err := srv.ListenAndServe(); err != nil {
		return fmt.Errorf("failed to start server: %w", err)
	}

	return nil
}

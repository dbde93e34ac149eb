package entity

import (
	"fmt"
	"math/rand"

	"github.com/ccouzens/minimax-backend/internal/apperror"
	"github.com/ccouzens/minimax-backend/internal/connectfour"
	"github.com/ccouzens/minimax-backend/internal/minimax"
	"github.com/ccouzens/minimax-backend/internal/tictactoe"
)

const (
	StatusFinished = "finished"
	StatusOngoing  = "ongoing"
	StatusWaiting  = "waiting"

	PlayerX   = "X"
	PlayerO   = "O"
	PlayerTie = "-"
)

const (
	PublicType  = "public"
	PrivateType = "private"
	WithBotType = "bot"
)

const (
	KindTicTacToe   = "tictactoe"
	KindConnectFour = "connectfour"
)

// Game is the stored state of one match. Board holds the textual
// rendering of the position; the rules live in the game packages and
// are selected by Kind.
type Game struct {
	ID      string    `json:"id"`
	Kind    string    `json:"kind"`
	Board   string    `json:"board"`
	Winner  string    `json:"winner"`
	Status  string    `json:"status"`
	Turn    string    `json:"player_turn"`
	Players []*Player `json:"players,omitempty"`
	Type    string    `json:"type,omitempty"`
}

func NewGame(id, kind, gameType string) (*Game, error) {
	board, err := emptyBoard(kind)
	if err != nil {
		return nil, err
	}

	return &Game{
		ID:     id,
		Kind:   kind,
		Board:  board,
		Turn:   PlayerX,
		Status: StatusWaiting,
		Type:   gameType,
	}, nil
}

func emptyBoard(kind string) (string, error) {
	switch kind {
	case KindTicTacToe:
		return tictactoe.Game{}.String(), nil
	case KindConnectFour:
		return connectfour.Game{}.String(), nil
	default:
		return "", fmt.Errorf("%w: %q", apperror.ErrUnknownGameKind, kind)
	}
}

// MakeTurn applies the player's move: a row-major cell index for
// tic-tac-toe, a column index for connect-four.
func (that *Game) MakeTurn(playerMark string, cell int) error {
	if that.IsFinished() {
		return apperror.ErrGameFinished
	}

	if that.Turn != playerMark {
		return apperror.ErrNotYourTurn
	}

	board, err := that.applyMove(playerMark == PlayerO, cell)
	if err != nil {
		return err
	}

	that.Board = board
	that.Turn = OpponentMark(playerMark)
	that.UpdateGameState()

	return nil
}

func (that *Game) applyMove(maximizing bool, cell int) (string, error) {
	switch that.Kind {
	case KindTicTacToe:
		position, err := tictactoe.Parse(that.Board)
		if err != nil {
			return "", fmt.Errorf("failed to parse board: %w", err)
		}

		next, err := position.Place(maximizing, cell)
		if err != nil {
			return "", err
		}

		return next.String(), nil
	case KindConnectFour:
		position, err := connectfour.Parse(that.Board)
		if err != nil {
			return "", fmt.Errorf("failed to parse board: %w", err)
		}

		next, err := position.Drop(maximizing, cell)
		if err != nil {
			return "", err
		}

		return next.String(), nil
	default:
		return "", fmt.Errorf("%w: %q", apperror.ErrUnknownGameKind, that.Kind)
	}
}

// UpdateGameState recomputes winner and status from the board.
func (that *Game) UpdateGameState() {
	switch winner := that.DetermineGameResult(); winner {
	case PlayerX, PlayerO, PlayerTie:
		that.Winner = winner
		that.Status = StatusFinished
		that.Turn = ""
	default:
		that.Status = StatusOngoing
	}
}

// DetermineGameResult returns "O" or "X" for a completed line, "-" for
// a full drawn board, and "" while the game is still open.
func (that *Game) DetermineGameResult() string {
	score, over, err := that.finished()
	if err != nil || !over {
		return ""
	}

	switch score {
	case minimax.ScoreWin:
		return PlayerO
	case minimax.ScoreLoss:
		return PlayerX
	default:
		return PlayerTie
	}
}

func (that *Game) finished() (minimax.Score, bool, error) {
	switch that.Kind {
	case KindTicTacToe:
		position, err := tictactoe.Parse(that.Board)
		if err != nil {
			return 0, false, err
		}

		score, over := position.Finished()

		return score, over, nil
	case KindConnectFour:
		position, err := connectfour.Parse(that.Board)
		if err != nil {
			return 0, false, err
		}

		score, over := position.Finished()

		return score, over, nil
	default:
		return 0, false, fmt.Errorf("%w: %q", apperror.ErrUnknownGameKind, that.Kind)
	}
}

func (that *Game) IsFinished() bool {
	return that.Status == StatusFinished
}

func (that *Game) IsOngoing() bool {
	return that.Status == StatusOngoing
}

func (that *Game) IsWaiting() bool {
	return that.Status == StatusWaiting
}

func (that *Game) ConfirmOngoingState() error {
	switch {
	case that.IsWaiting():
		return apperror.ErrGameIsNotStarted
	case that.IsFinished():
		return apperror.ErrGameFinished
	default:
		return nil
	}
}

func (that *Game) IsPublic() bool {
	return that.Type == PublicType
}

func (that *Game) IsWithBot() bool {
	return that.Type == WithBotType
}

// BotPlayer returns the bot seat of the game, or nil when the game has
// no bot.
func (that *Game) BotPlayer() *Player {
	for _, player := range that.Players {
		if player.IsBot() {
			return player
		}
	}

	return nil
}

func (that *Game) GetRandomMarks() (string, string) {
	if rand.Intn(2) == 0 { //nolint: gosec // it's ok
		return PlayerX, PlayerO
	}
	return PlayerO, PlayerX
}

func OpponentMark(mark string) string {
	if mark == PlayerX {
		return PlayerO
	}
	return PlayerX
}

// Package tictactoe implements the 3x3 game as a searchable position
// for the minimax engine.
package tictactoe

import (
	"fmt"

	"github.com/ccouzens/minimax-backend/internal/apperror"
	"github.com/ccouzens/minimax-backend/internal/minimax"
)

// Size is the board edge length.
const Size = 3

type cell int8

const (
	cellEmpty cell = iota
	cellO          // maximizing player
	cellX          // minimizing player
)

func playerCell(maximizing bool) cell {
	if maximizing {
		return cellO
	}
	return cellX
}

// Game is an immutable snapshot of a 3x3 board, row 0 at the top. The
// zero value is the empty board. Game is comparable; equality is
// cell by cell.
type Game struct {
	board [Size][Size]cell
}

// Finished returns +1 for a completed O line, -1 for a completed X
// line, 0 for a full board with no line, and ok=false otherwise. The
// eight lines are the two diagonals, three rows and three columns.
func (that Game) Finished() (minimax.Score, bool) {
	board := that.board

	checks := []struct {
		mark  cell
		score minimax.Score
	}{
		{cellO, minimax.ScoreWin},
		{cellX, minimax.ScoreLoss},
	}

	for _, check := range checks {
		if board[0][0] == check.mark && board[1][1] == check.mark && board[2][2] == check.mark {
			return check.score, true
		}

		if board[0][2] == check.mark && board[1][1] == check.mark && board[2][0] == check.mark {
			return check.score, true
		}

		for i := 0; i < Size; i++ {
			if board[0][i] == check.mark && board[1][i] == check.mark && board[2][i] == check.mark {
				return check.score, true
			}

			if board[i][0] == check.mark && board[i][1] == check.mark && board[i][2] == check.mark {
				return check.score, true
			}
		}
	}

	for i := 0; i < Size*Size; i++ {
		if board[i/Size][i%Size] == cellEmpty {
			return 0, false
		}
	}

	return minimax.ScoreDraw, true
}

// Moves returns one successor per empty cell, in row-major scan order.
func (that Game) Moves(maximizing bool) []Game {
	mark := playerCell(maximizing)

	var moves []Game
	for i := 0; i < Size*Size; i++ {
		if that.board[i/Size][i%Size] != cellEmpty {
			continue
		}

		next := that
		next.board[i/Size][i%Size] = mark
		moves = append(moves, next)
	}

	return moves
}

// Place returns the board with the given row-major cell taken by the
// player. The receiver is left untouched.
func (that Game) Place(maximizing bool, index int) (Game, error) {
	if index < 0 || index >= Size*Size {
		return Game{}, fmt.Errorf("%w: %d", apperror.ErrInvalidCell, index)
	}

	row, col := index/Size, index%Size
	if that.board[row][col] != cellEmpty {
		return Game{}, fmt.Errorf("%w: %d", apperror.ErrCellOccupied, index)
	}

	next := that
	next.board[row][col] = playerCell(maximizing)

	return next, nil
}

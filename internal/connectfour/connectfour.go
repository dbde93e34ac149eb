// Package connectfour implements the 6x7 game as a searchable position
// for the minimax engine. Pieces fall under gravity: row 0 is the
// bottom row.
package connectfour

import (
	"fmt"

	"github.com/ccouzens/minimax-backend/internal/apperror"
	"github.com/ccouzens/minimax-backend/internal/minimax"
)

const (
	Rows    = 6
	Columns = 7

	winLength = 4
)

// columnOrder is the move-generation order: central columns first.
// Searching the center first tightens alpha-beta pruning and makes the
// first-optimal tie-break favor central play.
var columnOrder = [Columns]int{3, 2, 4, 1, 5, 0, 6}

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

// Game is an immutable snapshot of a 6x7 board. The zero value is the
// empty board. Game is comparable; equality is cell by cell.
type Game struct {
	board [Rows][Columns]cell
}

// Finished returns +1 when O has four in a row, -1 when X has, 0 when
// all 42 cells are filled with neither, and ok=false otherwise.
func (that Game) Finished() (minimax.Score, bool) {
	checks := []struct {
		mark  cell
		score minimax.Score
	}{
		{cellO, minimax.ScoreWin},
		{cellX, minimax.ScoreLoss},
	}

	for _, check := range checks {
		if that.hasRun(check.mark) {
			return check.score, true
		}
	}

	if that.full() {
		return minimax.ScoreDraw, true
	}

	return 0, false
}

// hasRun reports whether the player has winLength consecutive cells
// along a column, a row, or either diagonal.
func (that Game) hasRun(mark cell) bool {
	directions := [4][2]int{
		{1, 0},  // vertical
		{0, 1},  // horizontal
		{1, 1},  // diagonal, rising left to right
		{1, -1}, // diagonal, falling left to right
	}

	for row := 0; row < Rows; row++ {
		for col := 0; col < Columns; col++ {
			if that.board[row][col] != mark {
				continue
			}

			for _, dir := range directions {
				if that.runLength(row, col, dir[0], dir[1], mark) >= winLength {
					return true
				}
			}
		}
	}

	return false
}

func (that Game) runLength(row, col, dRow, dCol int, mark cell) int {
	length := 0
	for row >= 0 && row < Rows && col >= 0 && col < Columns && that.board[row][col] == mark {
		length++
		row += dRow
		col += dCol
	}

	return length
}

// full checks the top row only: a column fills bottom up.
func (that Game) full() bool {
	for col := 0; col < Columns; col++ {
		if that.board[Rows-1][col] == cellEmpty {
			return false
		}
	}

	return true
}

// Moves returns one successor per non-full column, in center-first
// column order.
func (that Game) Moves(maximizing bool) []Game {
	var moves []Game
	for _, col := range columnOrder {
		next, err := that.Drop(maximizing, col)
		if err != nil {
			continue
		}

		moves = append(moves, next)
	}

	return moves
}

// Drop returns the board after the player's piece falls to the lowest
// empty row of the column. The receiver is left untouched.
func (that Game) Drop(maximizing bool, col int) (Game, error) {
	if col < 0 || col >= Columns {
		return Game{}, fmt.Errorf("%w: %d", apperror.ErrInvalidColumn, col)
	}

	for row := 0; row < Rows; row++ {
		if that.board[row][col] == cellEmpty {
			next := that
			next.board[row][col] = playerCell(maximizing)

			return next, nil
		}
	}

	return Game{}, fmt.Errorf("%w: %d", apperror.ErrColumnFull, col)
}

package connectfour

import (
	"fmt"
	"strings"

	"github.com/ccouzens/minimax-backend/internal/apperror"
)

const rowSeparator = '┃'

func cellRune(c cell) rune {
	switch c {
	case cellO:
		return 'O'
	case cellX:
		return 'X'
	default:
		return ' '
	}
}

// String renders the board on one line: '<', the six rows top row
// first (the reverse of the bottom-indexed storage), a separator
// between rows, '>'.
func (that Game) String() string {
	var builder strings.Builder

	builder.WriteByte('<')
	for row := Rows - 1; row >= 0; row-- {
		if row < Rows-1 {
			builder.WriteRune(rowSeparator)
		}
		for col := 0; col < Columns; col++ {
			builder.WriteRune(cellRune(that.board[row][col]))
		}
	}
	builder.WriteByte('>')

	return builder.String()
}

// Parse is the inverse of String. Only ' ', 'O' and 'X' count as
// cells; every other rune is decoration and is skipped. Fewer than 42
// cells is a parse error; surplus cells are ignored.
func Parse(s string) (Game, error) {
	var game Game

	count := 0
	for _, r := range s {
		if count == Rows*Columns {
			break
		}

		var c cell
		switch r {
		case ' ':
			c = cellEmpty
		case 'O':
			c = cellO
		case 'X':
			c = cellX
		default:
			continue
		}

		game.board[Rows-1-count/Columns][count%Columns] = c
		count++
	}

	if count < Rows*Columns {
		return Game{}, fmt.Errorf("%w: found %d of %d cells", apperror.ErrMalformedBoard, count, Rows*Columns)
	}

	return game, nil
}

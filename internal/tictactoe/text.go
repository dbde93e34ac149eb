package tictactoe

import (
	"fmt"
	"strings"

	"github.com/ccouzens/minimax-backend/internal/apperror"
)

// rowSeparator divides rendered rows, as in "<OXO┃X O┃  X>".
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

// String renders the board on one line: '<', the three rows top row
// first, a separator between rows, '>'.
func (that Game) String() string {
	var builder strings.Builder

	builder.WriteByte('<')
	for row := 0; row < Size; row++ {
		if row > 0 {
			builder.WriteRune(rowSeparator)
		}
		for col := 0; col < Size; col++ {
			builder.WriteRune(cellRune(that.board[row][col]))
		}
	}
	builder.WriteByte('>')

	return builder.String()
}

// Parse is the inverse of String. Only ' ', 'O' and 'X' count as
// cells; every other rune is decoration and is skipped. Fewer than
// nine cells is a parse error; surplus cells are ignored.
func Parse(s string) (Game, error) {
	var game Game

	count := 0
	for _, r := range s {
		if count == Size*Size {
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

		game.board[count/Size][count%Size] = c
		count++
	}

	if count < Size*Size {
		return Game{}, fmt.Errorf("%w: found %d of %d cells", apperror.ErrMalformedBoard, count, Size*Size)
	}

	return game, nil
}

package apperror

import "errors"

var (
	ErrGameFinished      = errors.New("game is already finished")
	ErrGameIsNotStarted  = errors.New("game is not started")
	ErrNotYourTurn       = errors.New("it's not your turn")
	ErrNoActiveGames     = errors.New("no active games")
	ErrGameAlreadyExists = errors.New("game already exists")
	ErrUnknownGameKind   = errors.New("unknown game kind")

	ErrInvalidCell   = errors.New("invalid cell index")
	ErrCellOccupied  = errors.New("cell is already occupied")
	ErrInvalidColumn = errors.New("invalid column index")
	ErrColumnFull    = errors.New("column is full")

	ErrMalformedBoard = errors.New("malformed board")
)

package entity

import "time"

// Match is the archived record of a finished game.
type Match struct {
	GameID     string    `json:"game_id"`
	Kind       string    `json:"kind"`
	Winner     string    `json:"winner"`
	FinishedAt time.Time `json:"finished_at"`
}

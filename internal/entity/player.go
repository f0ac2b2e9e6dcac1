package entity

import "strings"

const (
	DefaultNameX = "Player X"
	DefaultNameO = "Player O"
)

// Player is one side of a session. Wins and losses only grow while the name stays the same.
type Player struct {
	Mark   string `json:"mark"`
	Name   string `json:"name"`
	Wins   int    `json:"wins"`
	Losses int    `json:"losses"`
}

// Rename sets a new display name; a different name starts a fresh tally.
func (that *Player) Rename(name string) {
	name = NormalizeName(name, that.Mark)
	if name == that.Name {
		return
	}

	that.Name = name
	that.Wins = 0
	that.Losses = 0
}

// NormalizeName trims the name and falls back to the default name of the mark when it is blank.
func NormalizeName(name, mark string) string {
	if trimmed := strings.TrimSpace(name); trimmed != "" {
		return trimmed
	}

	if mark == PlayerO {
		return DefaultNameO
	}

	return DefaultNameX
}

// Record is a persisted leaderboard row. Players are identified by name only.
type Record struct {
	Name   string `json:"name"`
	Wins   int    `json:"wins"`
	Losses int    `json:"losses"`
}

package models

import (
	"time"
)

// DateLayout is the calendar date format used for game dates.
// Dates in this format compare and sort correctly as plain strings.
const DateLayout = "2006-01-02"

// Game represents a scheduled game
type Game struct {
	// ID is the unique identifier for the game
	ID string `json:"id"`

	// Date is the calendar date of the game in DateLayout format
	Date string `json:"date"`

	// Year is the partition year the game is filed under. It is stamped
	// from the selected year at creation time, not derived from Date.
	Year int `json:"year"`

	// PlayersPlayed contains the IDs of players who played in the game
	PlayersPlayed []string `json:"playersPlayed"`
}

// ParseDate validates a calendar date string against DateLayout.
func ParseDate(date string) (time.Time, error) {
	return time.Parse(DateLayout, date)
}

package models

import (
	"github.com/shopspring/decimal"
)

// PlayerPayment is one player's reconciliation line for a year.
// A positive FinalAmount means the team owes the player; negative means
// the player owes the team.
type PlayerPayment struct {
	// PlayerID is the ID of the player
	PlayerID string `json:"playerId"`

	// PlayerName is the display name of the player
	PlayerName string `json:"playerName"`

	// GamesPlayed is how many of the year's games the player appeared in
	GamesPlayed int `json:"gamesPlayed"`

	// BasePayment is GamesPlayed times the per-game rate
	BasePayment decimal.Decimal `json:"basePayment"`

	// RefreshmentShare is the player's prorated share of the year's
	// communal refreshment cost, zero when proration is disabled
	RefreshmentShare decimal.Decimal `json:"refreshmentShare"`

	// RefreshmentPaid is the sum of the player's own purchases in the year
	RefreshmentPaid decimal.Decimal `json:"refreshmentPaid"`

	// FinalAmount is BasePayment - RefreshmentShare - RefreshmentPaid
	FinalAmount decimal.Decimal `json:"finalAmount"`
}

// PlayerStanding is one row of the participation leaderboard
type PlayerStanding struct {
	// Name is the display name of the player
	Name string `json:"name"`

	// Games is how many games the player played in the year
	Games int `json:"games"`
}

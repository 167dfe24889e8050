package models

import (
	"github.com/shopspring/decimal"
)

// Refreshment records a single refreshment purchase by a player.
// One record per purchase event, never aggregated.
type Refreshment struct {
	// ID is the unique identifier for the purchase
	ID string `json:"id"`

	// PlayerID is the ID of the player who paid
	PlayerID string `json:"playerId"`

	// Amount is the purchase amount, always positive at creation
	Amount decimal.Decimal `json:"amount"`

	// Year is the partition year the purchase is filed under
	Year int `json:"year"`
}

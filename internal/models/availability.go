package models

// AvailabilityState represents the tri-state availability of a player for a game
type AvailabilityState string

const (
	// AvailabilityUnset indicates the player has not answered yet
	AvailabilityUnset AvailabilityState = "unset"

	// AvailabilityAvailable indicates the player said yes
	AvailabilityAvailable AvailabilityState = "available"

	// AvailabilityUnavailable indicates the player said no
	AvailabilityUnavailable AvailabilityState = "unavailable"
)

// Availability records a player's answer for a single game. Absence of a
// record means "unset", which is distinct from an explicit no.
type Availability struct {
	// PlayerID is the ID of the player
	PlayerID string `json:"playerId"`

	// GameID is the ID of the game
	GameID string `json:"gameId"`

	// Available is true when the player said yes
	Available bool `json:"available"`
}

// State returns the tri-state value represented by the record.
func (a *Availability) State() AvailabilityState {
	if a == nil {
		return AvailabilityUnset
	}
	if a.Available {
		return AvailabilityAvailable
	}
	return AvailabilityUnavailable
}

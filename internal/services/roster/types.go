package roster

import (
	"time"

	"github.com/hopkinton-cheetahs/rosterd/internal/models"
	"github.com/shopspring/decimal"
)

// AddPlayerInput contains parameters for adding a player
type AddPlayerInput struct {
	Name string
}

// AddPlayerOutput contains the created player
type AddPlayerOutput struct {
	Player *models.Player
}

// RenamePlayerInput contains parameters for renaming a player
type RenamePlayerInput struct {
	PlayerID string
	Name     string
}

// RenamePlayerOutput contains the updated player
type RenamePlayerOutput struct {
	Player *models.Player
}

// DeletePlayerInput contains parameters for deleting a player
type DeletePlayerInput struct {
	PlayerID string
}

// DeletePlayerOutput contains the result of deleting a player
type DeletePlayerOutput struct {
	// Deleted is false when the player was already absent
	Deleted bool
}

// ListPlayersInput contains parameters for listing the roster
type ListPlayersInput struct{}

// ListPlayersOutput contains the roster in roster order
type ListPlayersOutput struct {
	Players []*models.Player
}

// AddGameInput contains parameters for scheduling a game
type AddGameInput struct {
	// Date is the game date in models.DateLayout format
	Date string

	// Year is the selected partition year, not derived from Date
	Year int
}

// AddGameOutput contains the created game
type AddGameOutput struct {
	Game *models.Game
}

// EditGameDateInput contains parameters for changing a game's date
type EditGameDateInput struct {
	GameID string
	Date   string
}

// EditGameDateOutput contains the updated game
type EditGameDateOutput struct {
	Game *models.Game
}

// DeleteGameInput contains parameters for deleting a game
type DeleteGameInput struct {
	GameID string
}

// DeleteGameOutput contains the result of deleting a game
type DeleteGameOutput struct {
	// Deleted is false when the game was already absent
	Deleted bool
}

// SetPlayersPlayedInput contains parameters for replacing a game's attendance
type SetPlayersPlayedInput struct {
	GameID string

	// PlayerIDs is the full attendance list; an empty list clears it
	PlayerIDs []string
}

// SetPlayersPlayedOutput contains the updated game
type SetPlayersPlayedOutput struct {
	Game *models.Game
}

// ListGamesInput contains parameters for listing a year's games
type ListGamesInput struct {
	Year int
}

// ListGamesOutput contains the year's games, newest first
type ListGamesOutput struct {
	Games []*models.Game
}

// AddRefreshmentInput contains parameters for recording a purchase
type AddRefreshmentInput struct {
	PlayerID string
	Amount   decimal.Decimal
	Year     int
}

// AddRefreshmentOutput contains the created purchase record
type AddRefreshmentOutput struct {
	Refreshment *models.Refreshment
}

// DeleteRefreshmentInput contains parameters for deleting a purchase record
type DeleteRefreshmentInput struct {
	RefreshmentID string
}

// DeleteRefreshmentOutput contains the result of deleting a purchase record
type DeleteRefreshmentOutput struct {
	// Deleted is false when the record was already absent
	Deleted bool
}

// ListRefreshmentsInput contains parameters for listing a year's purchases
type ListRefreshmentsInput struct {
	Year int
}

// PlayerRefreshments groups one player's purchases for a year
type PlayerRefreshments struct {
	Player    *models.Player
	Purchases []*models.Refreshment
	Total     decimal.Decimal
}

// ListRefreshmentsOutput contains per-player purchase groups in roster order
type ListRefreshmentsOutput struct {
	Players []*PlayerRefreshments
}

// ToggleAvailabilityInput contains parameters for advancing an answer
type ToggleAvailabilityInput struct {
	PlayerID string
	GameID   string
}

// ToggleAvailabilityOutput contains the state the answer advanced to
type ToggleAvailabilityOutput struct {
	State models.AvailabilityState
}

// GetAvailabilityInput contains parameters for looking up an answer
type GetAvailabilityInput struct {
	PlayerID string
	GameID   string
}

// GetAvailabilityOutput contains the answer, nil when unset
type GetAvailabilityOutput struct {
	Availability *models.Availability
}

// UpcomingGamesInput contains parameters for listing upcoming games
type UpcomingGamesInput struct {
	Year int

	// AsOf is the cutoff date; the zero value means "now"
	AsOf time.Time
}

// UpcomingGamesOutput contains the year's games on or after the cutoff,
// ascending by date
type UpcomingGamesOutput struct {
	Games []*models.Game
}

package roster

import "context"

//go:generate mockgen -package=mocks -destination=mocks/mock_service.go github.com/hopkinton-cheetahs/rosterd/internal/services/roster Service

// Service defines the interface for roster operations. It exclusively owns
// the four record collections; every mutation persists the whole roster
// document in one write so cascades are never partially visible.
type Service interface {
	// AddPlayer adds a player to the roster
	AddPlayer(ctx context.Context, input *AddPlayerInput) (*AddPlayerOutput, error)

	// RenamePlayer changes a player's display name
	RenamePlayer(ctx context.Context, input *RenamePlayerInput) (*RenamePlayerOutput, error)

	// DeletePlayer removes a player and every record referencing them
	DeletePlayer(ctx context.Context, input *DeletePlayerInput) (*DeletePlayerOutput, error)

	// ListPlayers returns the roster in roster order
	ListPlayers(ctx context.Context, input *ListPlayersInput) (*ListPlayersOutput, error)

	// AddGame schedules a game under the selected partition year
	AddGame(ctx context.Context, input *AddGameInput) (*AddGameOutput, error)

	// EditGameDate changes a game's date, leaving its partition year alone
	EditGameDate(ctx context.Context, input *EditGameDateInput) (*EditGameDateOutput, error)

	// DeleteGame removes a game and its availability records
	DeleteGame(ctx context.Context, input *DeleteGameInput) (*DeleteGameOutput, error)

	// SetPlayersPlayed replaces a game's attendance list wholesale
	SetPlayersPlayed(ctx context.Context, input *SetPlayersPlayedInput) (*SetPlayersPlayedOutput, error)

	// ListGames returns a year's games, newest first
	ListGames(ctx context.Context, input *ListGamesInput) (*ListGamesOutput, error)

	// AddRefreshment records a refreshment purchase by a player
	AddRefreshment(ctx context.Context, input *AddRefreshmentInput) (*AddRefreshmentOutput, error)

	// DeleteRefreshment removes a single purchase record
	DeleteRefreshment(ctx context.Context, input *DeleteRefreshmentInput) (*DeleteRefreshmentOutput, error)

	// ListRefreshments returns a year's purchases grouped per player
	ListRefreshments(ctx context.Context, input *ListRefreshmentsInput) (*ListRefreshmentsOutput, error)

	// ToggleAvailability advances the tri-state answer for one player and game
	ToggleAvailability(ctx context.Context, input *ToggleAvailabilityInput) (*ToggleAvailabilityOutput, error)

	// GetAvailability looks up one player's answer for one game
	GetAvailability(ctx context.Context, input *GetAvailabilityInput) (*GetAvailabilityOutput, error)

	// UpcomingGames returns a year's games on or after a date, ascending
	UpcomingGames(ctx context.Context, input *UpcomingGamesInput) (*UpcomingGamesOutput, error)
}

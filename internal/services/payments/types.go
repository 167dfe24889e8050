package payments

import (
	"github.com/hopkinton-cheetahs/rosterd/internal/models"
	"github.com/shopspring/decimal"
)

// ShareStrategy selects how the communal refreshment cost lands on players.
// The source history carries both behaviors; the choice is explicit here
// rather than silently merged.
type ShareStrategy string

const (
	// ShareStrategyProrated splits the year's total refreshment cost
	// across players in proportion to games played. System of record.
	ShareStrategyProrated ShareStrategy = "prorated"

	// ShareStrategyOwnPurchasesOnly charges nobody a communal share;
	// only a player's own purchases are subtracted
	ShareStrategyOwnPurchasesOnly ShareStrategy = "own_purchases_only"
)

// CalculatePaymentsInput contains parameters for reconciling one year
type CalculatePaymentsInput struct {
	Year int
}

// CalculatePaymentsOutput contains one line per roster player, in roster
// order, plus the year totals the lines were derived from
type CalculatePaymentsOutput struct {
	Payments []*models.PlayerPayment

	// TotalGamesPlayed is the sum of attendance-list sizes over the
	// year's games
	TotalGamesPlayed int

	// TotalRefreshmentCost is the sum of every purchase in the year
	TotalRefreshmentCost decimal.Decimal
}

// MatchesPlayedInput contains parameters for the participation ranking
type MatchesPlayedInput struct {
	Year int
}

// MatchesPlayedOutput contains payment lines sorted by games played
// descending, ties broken by collated name ascending
type MatchesPlayedOutput struct {
	Payments []*models.PlayerPayment
}

// TopPlayersInput contains parameters for the dashboard top list
type TopPlayersInput struct {
	Year int

	// Limit caps the list; zero means DefaultTopPlayersLimit
	Limit int
}

// TopPlayersOutput contains the most active players, best first
type TopPlayersOutput struct {
	Standings []*models.PlayerStanding
}

// SummaryInput contains parameters for the dashboard summary
type SummaryInput struct {
	Year int
}

// SummaryOutput aggregates the dashboard figures for one year
type SummaryOutput struct {
	// PlayerCount is the size of the whole roster, not year-scoped
	PlayerCount int

	// GameCount is the number of games in the year
	GameCount int

	// TotalRefreshments is the year's communal refreshment cost
	TotalRefreshments decimal.Decimal

	// TotalOutstanding is the sum of every player's final amount
	TotalOutstanding decimal.Decimal

	// RecentGameDates holds up to the last five game dates, newest first
	RecentGameDates []string

	// TopPlayers is the participation top list
	TopPlayers []*models.PlayerStanding
}

package payments

import "context"

//go:generate mockgen -package=mocks -destination=mocks/mock_service.go github.com/hopkinton-cheetahs/rosterd/internal/services/payments Service

// Service defines the interface for payment reconciliation and standings.
// It is a pure reader over the roster document; repeated calls without an
// intervening mutation return identical results.
type Service interface {
	// CalculatePayments reconciles one year for every roster player
	CalculatePayments(ctx context.Context, input *CalculatePaymentsInput) (*CalculatePaymentsOutput, error)

	// MatchesPlayed ranks the year's reconciliation by participation
	MatchesPlayed(ctx context.Context, input *MatchesPlayedInput) (*MatchesPlayedOutput, error)

	// TopPlayers returns the most active players of the year
	TopPlayers(ctx context.Context, input *TopPlayersInput) (*TopPlayersOutput, error)

	// Summary aggregates the dashboard figures for one year
	Summary(ctx context.Context, input *SummaryInput) (*SummaryOutput, error)
}

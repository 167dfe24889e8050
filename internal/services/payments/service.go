package payments

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"github.com/hopkinton-cheetahs/rosterd/internal/models"
	rosterRepo "github.com/hopkinton-cheetahs/rosterd/internal/repositories/roster"
	"github.com/shopspring/decimal"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

const (
	// DefaultPerGameRate is the fixed fee a player earns per game played
	DefaultPerGameRate = 15

	// DefaultTopPlayersLimit caps the dashboard top list
	DefaultTopPlayersLimit = 5
)

// Config holds dependencies and tuning for the payments service
type Config struct {
	// RosterRepo supplies the roster document
	RosterRepo rosterRepo.Repository

	// PerGameRate overrides DefaultPerGameRate when positive
	PerGameRate decimal.Decimal

	// ShareStrategy selects the refreshment-share formula; empty means
	// ShareStrategyProrated
	ShareStrategy ShareStrategy
}

// service implements the Service interface
type service struct {
	rosterRepo rosterRepo.Repository
	rate       decimal.Decimal
	strategy   ShareStrategy
	collator   *collate.Collator
}

// New creates a new payments service
func New(cfg *Config) (*service, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	if cfg.RosterRepo == nil {
		return nil, errors.New("roster repository cannot be nil")
	}

	rate := cfg.PerGameRate
	if !rate.IsPositive() {
		rate = decimal.NewFromInt(DefaultPerGameRate)
	}

	strategy := cfg.ShareStrategy
	if strategy == "" {
		strategy = ShareStrategyProrated
	}
	if strategy != ShareStrategyProrated && strategy != ShareStrategyOwnPurchasesOnly {
		return nil, fmt.Errorf("unknown share strategy %q", strategy)
	}

	return &service{
		rosterRepo: cfg.RosterRepo,
		rate:       rate,
		strategy:   strategy,
		collator:   collate.New(language.English, collate.IgnoreCase),
	}, nil
}

// CalculatePayments reconciles one year. Every roster player gets a line,
// including players with zero games, whose final amount is minus whatever
// they spent on refreshments.
func (s *service) CalculatePayments(ctx context.Context, input *CalculatePaymentsInput) (*CalculatePaymentsOutput, error) {
	out, err := s.rosterRepo.GetData(ctx, &rosterRepo.GetDataInput{})
	if err != nil {
		return nil, err
	}
	data := out.Data

	games := data.GamesInYear(input.Year)
	refreshments := data.RefreshmentsInYear(input.Year)

	// A player appearing in k attendance lists contributes k to the total.
	gamesPlayed := make(map[string]int)
	totalGamesPlayed := 0
	for _, g := range games {
		for _, playerID := range g.PlayersPlayed {
			gamesPlayed[playerID]++
			totalGamesPlayed++
		}
	}

	totalCost := decimal.Zero
	for _, r := range refreshments {
		totalCost = totalCost.Add(r.Amount)
	}

	payments := make([]*models.PlayerPayment, 0, len(data.Players))
	for _, p := range data.Players {
		played := gamesPlayed[p.ID]
		base := s.rate.Mul(decimal.NewFromInt(int64(played)))

		share := decimal.Zero
		if s.strategy == ShareStrategyProrated && totalGamesPlayed > 0 && played > 0 {
			share = totalCost.
				Mul(decimal.NewFromInt(int64(played))).
				Div(decimal.NewFromInt(int64(totalGamesPlayed)))
		}

		paid := decimal.Zero
		for _, r := range refreshments {
			if r.PlayerID == p.ID {
				paid = paid.Add(r.Amount)
			}
		}

		payments = append(payments, &models.PlayerPayment{
			PlayerID:         p.ID,
			PlayerName:       p.Name,
			GamesPlayed:      played,
			BasePayment:      base,
			RefreshmentShare: share,
			RefreshmentPaid:  paid,
			FinalAmount:      base.Sub(share).Sub(paid),
		})
	}

	return &CalculatePaymentsOutput{
		Payments:             payments,
		TotalGamesPlayed:     totalGamesPlayed,
		TotalRefreshmentCost: totalCost,
	}, nil
}

// MatchesPlayed returns the year's payment lines ranked by games played
// descending, ties broken by collated player name ascending. The tie-break
// makes the order total and deterministic.
func (s *service) MatchesPlayed(ctx context.Context, input *MatchesPlayedInput) (*MatchesPlayedOutput, error) {
	out, err := s.CalculatePayments(ctx, &CalculatePaymentsInput{Year: input.Year})
	if err != nil {
		return nil, err
	}

	ranked := make([]*models.PlayerPayment, len(out.Payments))
	copy(ranked, out.Payments)
	s.rank(ranked)

	return &MatchesPlayedOutput{Payments: ranked}, nil
}

// TopPlayers returns the most active players of the year, best first
func (s *service) TopPlayers(ctx context.Context, input *TopPlayersInput) (*TopPlayersOutput, error) {
	limit := input.Limit
	if limit <= 0 {
		limit = DefaultTopPlayersLimit
	}

	ranked, err := s.MatchesPlayed(ctx, &MatchesPlayedInput{Year: input.Year})
	if err != nil {
		return nil, err
	}

	standings := make([]*models.PlayerStanding, 0, limit)
	for _, p := range ranked.Payments {
		if len(standings) == limit {
			break
		}
		standings = append(standings, &models.PlayerStanding{
			Name:  p.PlayerName,
			Games: p.GamesPlayed,
		})
	}

	return &TopPlayersOutput{Standings: standings}, nil
}

// Summary aggregates the dashboard figures for one year
func (s *service) Summary(ctx context.Context, input *SummaryInput) (*SummaryOutput, error) {
	out, err := s.rosterRepo.GetData(ctx, &rosterRepo.GetDataInput{})
	if err != nil {
		return nil, err
	}
	data := out.Data

	payments, err := s.CalculatePayments(ctx, &CalculatePaymentsInput{Year: input.Year})
	if err != nil {
		return nil, err
	}

	outstanding := decimal.Zero
	for _, p := range payments.Payments {
		outstanding = outstanding.Add(p.FinalAmount)
	}

	games := data.GamesInYear(input.Year)
	sort.SliceStable(games, func(i, j int) bool {
		return games[i].Date > games[j].Date
	})
	recent := make([]string, 0, DefaultTopPlayersLimit)
	for _, g := range games {
		if len(recent) == DefaultTopPlayersLimit {
			break
		}
		recent = append(recent, g.Date)
	}

	top, err := s.TopPlayers(ctx, &TopPlayersInput{Year: input.Year})
	if err != nil {
		return nil, err
	}

	return &SummaryOutput{
		PlayerCount:       len(data.Players),
		GameCount:         len(games),
		TotalRefreshments: payments.TotalRefreshmentCost,
		TotalOutstanding:  outstanding,
		RecentGameDates:   recent,
		TopPlayers:        top.Standings,
	}, nil
}

// rank sorts payment lines by games played descending, then collated name
// ascending
func (s *service) rank(payments []*models.PlayerPayment) {
	sort.SliceStable(payments, func(i, j int) bool {
		if payments[i].GamesPlayed != payments[j].GamesPlayed {
			return payments[i].GamesPlayed > payments[j].GamesPlayed
		}
		return s.collator.CompareString(payments[i].PlayerName, payments[j].PlayerName) < 0
	})
}

package payments

import (
	"context"
	"testing"

	"github.com/hopkinton-cheetahs/rosterd/internal/models"
	rosterRepo "github.com/hopkinton-cheetahs/rosterd/internal/repositories/roster"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

type PaymentsServiceTestSuite struct {
	suite.Suite
	repo    rosterRepo.Repository
	service Service
	ctx     context.Context
}

func (s *PaymentsServiceTestSuite) SetupTest() {
	s.repo = rosterRepo.NewMemory()
	s.ctx = context.Background()

	service, err := New(&Config{
		RosterRepo: s.repo,
	})
	s.Require().NoError(err)
	s.service = service
}

func TestPaymentsServiceTestSuite(t *testing.T) {
	suite.Run(t, new(PaymentsServiceTestSuite))
}

// seed saves a roster document for the reader under test
func (s *PaymentsServiceTestSuite) seed(data *models.TeamData) {
	s.Require().NoError(s.repo.SaveData(s.ctx, &rosterRepo.SaveDataInput{Data: data}))
}

// twoPlayerData builds the reference scenario: roster [A, B], one 2026 game
// played by A only, one 10-unit refreshment bought by B.
func twoPlayerData() *models.TeamData {
	data := models.NewTeamData()
	data.Players = []*models.Player{
		{ID: "player-a", Name: "Alice"},
		{ID: "player-b", Name: "Bob"},
	}
	data.Games = []*models.Game{
		{ID: "game-1", Date: "2026-06-01", Year: 2026, PlayersPlayed: []string{"player-a"}},
	}
	data.Refreshments = []*models.Refreshment{
		{ID: "refreshment-1", PlayerID: "player-b", Amount: decimal.NewFromInt(10), Year: 2026},
	}
	return data
}

func (s *PaymentsServiceTestSuite) TestNewValidatesConfig() {
	_, err := New(nil)
	s.Error(err)

	_, err = New(&Config{})
	s.Error(err)

	_, err = New(&Config{RosterRepo: s.repo, ShareStrategy: "half-and-half"})
	s.Error(err)
}

func (s *PaymentsServiceTestSuite) TestCalculatePaymentsReferenceScenario() {
	s.seed(twoPlayerData())

	out, err := s.service.CalculatePayments(s.ctx, &CalculatePaymentsInput{Year: 2026})
	s.Require().NoError(err)

	s.Equal(1, out.TotalGamesPlayed)
	s.True(out.TotalRefreshmentCost.Equal(decimal.NewFromInt(10)))
	s.Require().Len(out.Payments, 2)

	alice := out.Payments[0]
	s.Equal("Alice", alice.PlayerName)
	s.Equal(1, alice.GamesPlayed)
	s.True(alice.BasePayment.Equal(decimal.NewFromInt(15)))
	s.True(alice.RefreshmentShare.Equal(decimal.NewFromInt(10)))
	s.True(alice.RefreshmentPaid.Equal(decimal.Zero))
	s.True(alice.FinalAmount.Equal(decimal.NewFromInt(5)))

	bob := out.Payments[1]
	s.Equal("Bob", bob.PlayerName)
	s.Equal(0, bob.GamesPlayed)
	s.True(bob.BasePayment.Equal(decimal.Zero))
	s.True(bob.RefreshmentShare.Equal(decimal.Zero))
	s.True(bob.RefreshmentPaid.Equal(decimal.NewFromInt(10)))
	s.True(bob.FinalAmount.Equal(decimal.NewFromInt(-10)))
}

func (s *PaymentsServiceTestSuite) TestCalculatePaymentsAfterPlayerDeleteCascade() {
	// The reference scenario after Alice is deleted: her attendance is
	// stripped and she no longer appears in the output at all.
	data := twoPlayerData()
	data.Players = data.Players[1:]
	data.Games[0].PlayersPlayed = []string{}
	s.seed(data)

	out, err := s.service.CalculatePayments(s.ctx, &CalculatePaymentsInput{Year: 2026})
	s.Require().NoError(err)

	s.Equal(0, out.TotalGamesPlayed)
	s.Require().Len(out.Payments, 1)
	s.Equal("Bob", out.Payments[0].PlayerName)
}

func (s *PaymentsServiceTestSuite) TestTotalGamesPlayedSumsAttendanceListSizes() {
	data := models.NewTeamData()
	data.Players = []*models.Player{
		{ID: "player-a", Name: "Alice"},
		{ID: "player-b", Name: "Bob"},
		{ID: "player-c", Name: "Cara"},
	}
	data.Games = []*models.Game{
		{ID: "game-1", Date: "2026-06-01", Year: 2026, PlayersPlayed: []string{"player-a", "player-b", "player-c"}},
		{ID: "game-2", Date: "2026-06-08", Year: 2026, PlayersPlayed: []string{"player-a", "player-b"}},
		{ID: "game-3", Date: "2026-06-15", Year: 2026, PlayersPlayed: []string{"player-a"}},
	}
	s.seed(data)

	out, err := s.service.CalculatePayments(s.ctx, &CalculatePaymentsInput{Year: 2026})
	s.Require().NoError(err)

	s.Equal(6, out.TotalGamesPlayed)
	s.Equal(3, out.Payments[0].GamesPlayed)
	s.Equal(2, out.Payments[1].GamesPlayed)
	s.Equal(1, out.Payments[2].GamesPlayed)
}

func (s *PaymentsServiceTestSuite) TestProrationSharesSumToTotalCost() {
	data := models.NewTeamData()
	data.Players = []*models.Player{
		{ID: "player-a", Name: "Alice"},
		{ID: "player-b", Name: "Bob"},
		{ID: "player-c", Name: "Cara"},
	}
	data.Games = []*models.Game{
		{ID: "game-1", Date: "2026-06-01", Year: 2026, PlayersPlayed: []string{"player-a", "player-b", "player-c"}},
	}
	// 10 split three ways does not divide evenly
	data.Refreshments = []*models.Refreshment{
		{ID: "refreshment-1", PlayerID: "player-a", Amount: decimal.NewFromInt(10), Year: 2026},
	}
	s.seed(data)

	out, err := s.service.CalculatePayments(s.ctx, &CalculatePaymentsInput{Year: 2026})
	s.Require().NoError(err)

	sum := decimal.Zero
	for _, p := range out.Payments {
		sum = sum.Add(p.RefreshmentShare)
	}

	tolerance := decimal.New(1, -9)
	s.True(sum.Sub(out.TotalRefreshmentCost).Abs().LessThan(tolerance),
		"share sum %s should be within tolerance of total %s", sum, out.TotalRefreshmentCost)
}

func (s *PaymentsServiceTestSuite) TestZeroGamesPlayerOwesNoShare() {
	// A player who bought refreshments but played nothing gets no share
	// and a final amount of minus their own spending.
	data := twoPlayerData()
	s.seed(data)

	out, err := s.service.CalculatePayments(s.ctx, &CalculatePaymentsInput{Year: 2026})
	s.Require().NoError(err)

	bob := out.Payments[1]
	s.True(bob.RefreshmentShare.Equal(decimal.Zero))
	s.True(bob.FinalAmount.Equal(bob.RefreshmentPaid.Neg()))
}

func (s *PaymentsServiceTestSuite) TestCalculatePaymentsIsIdempotent() {
	s.seed(twoPlayerData())

	first, err := s.service.CalculatePayments(s.ctx, &CalculatePaymentsInput{Year: 2026})
	s.Require().NoError(err)

	second, err := s.service.CalculatePayments(s.ctx, &CalculatePaymentsInput{Year: 2026})
	s.Require().NoError(err)

	s.Equal(first, second)
}

func (s *PaymentsServiceTestSuite) TestYearPartitionIsolation() {
	data := twoPlayerData()
	// Same shapes in another year must not leak into 2026
	data.Games = append(data.Games, &models.Game{
		ID: "game-old", Date: "2025-06-01", Year: 2025, PlayersPlayed: []string{"player-a", "player-b"},
	})
	data.Refreshments = append(data.Refreshments, &models.Refreshment{
		ID: "refreshment-old", PlayerID: "player-a", Amount: decimal.NewFromInt(99), Year: 2025,
	})
	s.seed(data)

	out, err := s.service.CalculatePayments(s.ctx, &CalculatePaymentsInput{Year: 2026})
	s.Require().NoError(err)

	s.Equal(1, out.TotalGamesPlayed)
	s.True(out.TotalRefreshmentCost.Equal(decimal.NewFromInt(10)))
}

func (s *PaymentsServiceTestSuite) TestOwnPurchasesOnlyStrategy() {
	service, err := New(&Config{
		RosterRepo:    s.repo,
		ShareStrategy: ShareStrategyOwnPurchasesOnly,
	})
	s.Require().NoError(err)

	s.seed(twoPlayerData())

	out, err := service.CalculatePayments(s.ctx, &CalculatePaymentsInput{Year: 2026})
	s.Require().NoError(err)

	alice := out.Payments[0]
	s.True(alice.RefreshmentShare.Equal(decimal.Zero))
	s.True(alice.FinalAmount.Equal(decimal.NewFromInt(15)))

	bob := out.Payments[1]
	s.True(bob.RefreshmentShare.Equal(decimal.Zero))
	s.True(bob.FinalAmount.Equal(decimal.NewFromInt(-10)))
}

func (s *PaymentsServiceTestSuite) TestConfigurablePerGameRate() {
	service, err := New(&Config{
		RosterRepo:  s.repo,
		PerGameRate: decimal.NewFromInt(20),
	})
	s.Require().NoError(err)

	s.seed(twoPlayerData())

	out, err := service.CalculatePayments(s.ctx, &CalculatePaymentsInput{Year: 2026})
	s.Require().NoError(err)
	s.True(out.Payments[0].BasePayment.Equal(decimal.NewFromInt(20)))
}

func (s *PaymentsServiceTestSuite) TestMatchesPlayedRanking() {
	data := models.NewTeamData()
	data.Players = []*models.Player{
		{ID: "player-a", Name: "zoe"},
		{ID: "player-b", Name: "Adam"},
		{ID: "player-c", Name: "Cara"},
	}
	data.Games = []*models.Game{
		{ID: "game-1", Date: "2026-06-01", Year: 2026, PlayersPlayed: []string{"player-a", "player-b"}},
		{ID: "game-2", Date: "2026-06-08", Year: 2026, PlayersPlayed: []string{"player-c"}},
	}
	s.seed(data)

	out, err := s.service.MatchesPlayed(s.ctx, &MatchesPlayedInput{Year: 2026})
	s.Require().NoError(err)

	s.Require().Len(out.Payments, 3)
	// Adam and zoe tie on games; case-insensitive name order breaks it
	s.Equal("Adam", out.Payments[0].PlayerName)
	s.Equal("zoe", out.Payments[1].PlayerName)
	s.Equal("Cara", out.Payments[2].PlayerName)
}

func (s *PaymentsServiceTestSuite) TestMatchesPlayedLeavesRosterOrderAlone() {
	s.seed(twoPlayerData())

	_, err := s.service.MatchesPlayed(s.ctx, &MatchesPlayedInput{Year: 2026})
	s.Require().NoError(err)

	// The reconciliation itself still comes back in roster order
	out, err := s.service.CalculatePayments(s.ctx, &CalculatePaymentsInput{Year: 2026})
	s.Require().NoError(err)
	s.Equal("Alice", out.Payments[0].PlayerName)
	s.Equal("Bob", out.Payments[1].PlayerName)
}

func (s *PaymentsServiceTestSuite) TestTopPlayersLimit() {
	data := models.NewTeamData()
	ids := []string{"player-a", "player-b", "player-c", "player-d", "player-e", "player-f", "player-g"}
	names := []string{"Alice", "Bob", "Cara", "Dan", "Eve", "Finn", "Gus"}
	for i, id := range ids {
		data.Players = append(data.Players, &models.Player{ID: id, Name: names[i]})
	}
	data.Games = []*models.Game{
		{ID: "game-1", Date: "2026-06-01", Year: 2026, PlayersPlayed: ids},
	}
	s.seed(data)

	out, err := s.service.TopPlayers(s.ctx, &TopPlayersInput{Year: 2026})
	s.Require().NoError(err)
	s.Len(out.Standings, DefaultTopPlayersLimit)

	two, err := s.service.TopPlayers(s.ctx, &TopPlayersInput{Year: 2026, Limit: 2})
	s.Require().NoError(err)
	s.Require().Len(two.Standings, 2)
	s.Equal("Alice", two.Standings[0].Name)
	s.Equal(1, two.Standings[0].Games)
}

func (s *PaymentsServiceTestSuite) TestSummary() {
	data := twoPlayerData()
	data.Games = append(data.Games,
		&models.Game{ID: "game-2", Date: "2026-06-08", Year: 2026, PlayersPlayed: []string{}},
		&models.Game{ID: "game-old", Date: "2025-06-08", Year: 2025, PlayersPlayed: []string{}},
	)
	s.seed(data)

	out, err := s.service.Summary(s.ctx, &SummaryInput{Year: 2026})
	s.Require().NoError(err)

	s.Equal(2, out.PlayerCount)
	s.Equal(2, out.GameCount)
	s.True(out.TotalRefreshments.Equal(decimal.NewFromInt(10)))
	// Alice +5, Bob -10
	s.True(out.TotalOutstanding.Equal(decimal.NewFromInt(-5)))
	s.Equal([]string{"2026-06-08", "2026-06-01"}, out.RecentGameDates)
	s.Require().NotEmpty(out.TopPlayers)
	s.Equal("Alice", out.TopPlayers[0].Name)
}

func (s *PaymentsServiceTestSuite) TestEmptyRoster() {
	out, err := s.service.CalculatePayments(s.ctx, &CalculatePaymentsInput{Year: 2026})
	s.Require().NoError(err)
	s.Empty(out.Payments)
	s.Equal(0, out.TotalGamesPlayed)
	s.True(out.TotalRefreshmentCost.Equal(decimal.Zero))
}

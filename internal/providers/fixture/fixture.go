// Package fixture supplies a deterministic season snapshot for local
// development and bootstrapping without upstream credentials.
package fixture

import (
	"context"
	"time"

	"soccer-rankings-service/internal/domain"
	"soccer-rankings-service/internal/timeutil"
)

// Provider returns a static season snapshot useful for local testing.
type Provider struct {
	now func() time.Time
}

// New creates a fixture provider with a time source.
func New() *Provider {
	return &Provider{
		now: time.Now,
	}
}

// ProviderName identifies the fixture provider in logs and metrics.
func (p *Provider) ProviderName() string {
	return "fixture"
}

// FetchSnapshot returns a deterministic example season.
func (p *Provider) FetchSnapshot(ctx context.Context) (domain.Snapshot, error) {
	_ = ctx

	notRanked := false
	two, one, zero, three := 2, 1, 0, 3

	teams := []domain.Team{
		{
			ID: "fx-1", Name: "Dallas Storm", Club: "Dallas Storm SC", AgeGroup: "G13",
			League: "ECNL", State: "TX",
			Wins: 10, Losses: 2, Draws: 1, GoalsFor: 31, GoalsAgainst: 12,
			PowerScore: 85.2, OffensiveRank: 2, OffensivePowerScore: 81.4,
			DefensiveRank: 5, DefensivePowerScore: 78.9,
			BestWin: "3-1 vs Solar SC", WorstLoss: "0-2 vs Eclipse",
		},
		{
			ID: "fx-2", Name: "Solar SC", Club: "Solar SC 13G Navy", AgeGroup: "G13",
			League: "ECNL", State: "TX",
			Wins: 8, Losses: 4, Draws: 1, GoalsFor: 25, GoalsAgainst: 15,
			PowerScore: 79.6, OffensiveRank: 4, DefensiveRank: 3,
		},
		{
			ID: "fx-3", Name: "Eclipse", Club: "Eclipse Select", AgeGroup: "G13",
			League: "GA", State: "IL",
			Wins: 7, Losses: 3, Draws: 3, GoalsFor: 22, GoalsAgainst: 13,
			PowerScore: 77.1,
		},
		{
			ID: "fx-4", Name: "Legends FC", Club: "Legends FC B14", AgeGroup: "B14",
			League: "ECNL-RL", State: "CA",
			Wins: 6, Losses: 6, Draws: 0, GoalsFor: 19, GoalsAgainst: 20,
			PowerScore: 64.8,
		},
		{
			// New team: no games, no ratings, outside the ranking pool.
			ID: "fx-5", Name: "Rising United", Club: "Rising United 13G", AgeGroup: "G13",
			League: "NPL", State: "TX",
			IsRanked: &notRanked,
		},
	}

	today := timeutil.FormatDate(p.now().UTC())
	games := []domain.Game{
		{HomeTeam: "Dallas Storm", AwayTeam: "Solar SC", HomeScore: &three, AwayScore: &one, Date: "2026-02-07", League: "ECNL", AgeGroup: "G13"},
		{HomeTeam: "Eclipse", AwayTeam: "Dallas Storm", HomeScore: &two, AwayScore: &zero, Date: "2026-02-14", League: "ECNL", AgeGroup: "G13"},
		{HomeTeam: "Solar SC", AwayTeam: "Eclipse", HomeScore: &one, AwayScore: &one, Date: "2026-02-21", League: "ECNL", AgeGroup: "G13"},
		{HomeTeam: "Dallas Storm", AwayTeam: "Eclipse", Date: "2099-05-01", League: "ECNL", AgeGroup: "G13"},
	}

	return domain.Snapshot{
		Teams:       teams,
		Games:       games,
		LastUpdated: today,
	}, nil
}

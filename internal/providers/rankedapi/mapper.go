package rankedapi

import "soccer-rankings-service/internal/domain"

// mapTeam normalizes an upstream team record. Missing numeric ratings
// soft-default to zero; rank-based sorting treats zero as "missing" further
// down the pipeline.
func mapTeam(u upstreamTeam) domain.Team {
	return domain.Team{
		ID:                  u.ID,
		Name:                u.Name,
		Club:                u.Club,
		AgeGroup:            u.AgeGroup,
		League:              u.League,
		State:               u.State,
		Wins:                u.Wins,
		Losses:              u.Losses,
		Draws:               u.Draws,
		GoalsFor:            u.GoalsFor,
		GoalsAgainst:        u.GoalsAgainst,
		PowerScore:          floatOrZero(u.PowerScore),
		OffensiveRank:       intOrZero(u.OffensiveRank),
		OffensivePowerScore: floatOrZero(u.OffensivePowerScore),
		DefensiveRank:       intOrZero(u.DefensiveRank),
		DefensivePowerScore: floatOrZero(u.DefensivePowerScore),
		IsRanked:            u.IsRanked,
		BestWin:             u.BestWin,
		SecondBestWin:       u.SecondBestWin,
		WorstLoss:           u.WorstLoss,
		SecondWorstLoss:     u.SecondWorstLoss,
	}
}

func mapGame(u upstreamGame) domain.Game {
	return domain.Game{
		HomeTeam:  u.HomeTeam,
		AwayTeam:  u.AwayTeam,
		HomeScore: u.HomeScore,
		AwayScore: u.AwayScore,
		Date:      u.Date,
		League:    u.League,
		AgeGroup:  u.AgeGroup,
	}
}

func floatOrZero(v *float64) float64 {
	if v == nil {
		return 0
	}
	return *v
}

func intOrZero(v *int) int {
	if v == nil {
		return 0
	}
	return *v
}

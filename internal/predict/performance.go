package predict

import (
	"sort"
	"strings"

	"soccer-rankings-service/internal/domain"
	"soccer-rankings-service/internal/names"
)

const (
	// Neutral performance score for a result exactly matching expectation.
	baselineScore = 50.0
	// Score points per goal of over/under-performance against expectation.
	pointsPerGoal = 10.0
)

// GamePerformance scores one completed game against pre-game expectation.
// A narrow loss to a much stronger opponent can outrank a blowout win over
// a much weaker one.
type GamePerformance struct {
	Game             domain.Game             `json:"game"`
	Opponent         domain.Team             `json:"opponent"`
	OpponentResolved bool                    `json:"opponentResolved"`
	Predicted        domain.PredictionResult `json:"predicted"`
	ActualDiff       int                     `json:"actualDiff"`
	PredictedDiff    int                     `json:"predictedDiff"`
	Score            float64                 `json:"score"`
	Rank             int                     `json:"rank"`
}

// FindOpponentInData resolves an opponent name (possibly carrying a league
// suffix) to a team in the snapshot via normalized-name lookup. Resolution
// prefers an ageGroup match when one is supplied. Historical game logs may
// reference teams outside the current snapshot; those resolve to a synthetic
// unranked placeholder rather than an error.
func FindOpponentInData(name, ageGroup string, allTeams []domain.Team) (domain.Team, bool) {
	normalized := names.Normalize(name)
	if normalized == "" {
		return placeholderOpponent(name), false
	}

	var nameOnly *domain.Team
	for i := range allTeams {
		t := &allTeams[i]
		if names.Normalize(t.Name) != normalized {
			continue
		}
		if ageGroup == "" || strings.EqualFold(t.AgeGroup, ageGroup) {
			return *t, true
		}
		if nameOnly == nil {
			nameOnly = t
		}
	}
	if nameOnly != nil {
		return *nameOnly, true
	}
	return placeholderOpponent(name), false
}

func placeholderOpponent(name string) domain.Team {
	unranked := false
	return domain.Team{
		Name:     name,
		IsRanked: &unranked,
	}
}

// RankGamesByPerformance scores every completed game for the team against
// the prediction that would have been made pre-game, then ranks the games
// 1..N best-performance-first within the season.
func (p *Predictor) RankGamesByPerformance(games []domain.Game, team domain.Team, allTeams []domain.Team) []GamePerformance {
	today := p.today()
	teamName := names.Normalize(team.Name)

	results := make([]GamePerformance, 0, len(games))
	for _, g := range games {
		if !g.IsPast(today) {
			continue
		}

		var oppName string
		var teamGoals, oppGoals int
		var teamIsHome bool
		switch teamName {
		case names.Normalize(g.HomeTeam):
			oppName = g.AwayTeam
			teamGoals, oppGoals = *g.HomeScore, *g.AwayScore
			teamIsHome = true
		case names.Normalize(g.AwayTeam):
			oppName = g.HomeTeam
			teamGoals, oppGoals = *g.AwayScore, *g.HomeScore
		default:
			continue
		}

		opponent, resolved := FindOpponentInData(oppName, g.AgeGroup, allTeams)

		// Reconstruct the pre-game prediction in the game's orientation.
		var predicted domain.PredictionResult
		var predictedDiff int
		if teamIsHome {
			predicted = p.PredictGame(team, opponent, allTeams)
			predictedDiff = predicted.PredictedHomeScore - predicted.PredictedAwayScore
		} else {
			predicted = p.PredictGame(opponent, team, allTeams)
			predictedDiff = predicted.PredictedAwayScore - predicted.PredictedHomeScore
		}

		actualDiff := teamGoals - oppGoals

		results = append(results, GamePerformance{
			Game:             g,
			Opponent:         opponent,
			OpponentResolved: resolved,
			Predicted:        predicted,
			ActualDiff:       actualDiff,
			PredictedDiff:    predictedDiff,
			Score:            performanceScore(actualDiff, predictedDiff),
		})
	}

	sort.SliceStable(results, func(i, j int) bool {
		return results[i].Score > results[j].Score
	})
	for i := range results {
		results[i].Rank = i + 1
	}
	return results
}

// performanceScore maps over/under-performance to a bounded 0..100 score,
// 50 meaning the result matched expectation exactly.
func performanceScore(actualDiff, predictedDiff int) float64 {
	score := baselineScore + float64(actualDiff-predictedDiff)*pointsPerGoal
	if score < 0 {
		return 0
	}
	if score > 100 {
		return 100
	}
	return score
}

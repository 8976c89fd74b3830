// Package rankings implements the leaderboard pipeline: category filtering,
// multi-key sorting, dense rank assignment, display-only search narrowing,
// and filter-independent national cohort ranks.
package rankings

import (
	"strings"

	"soccer-rankings-service/internal/domain"
)

// Leagues belonging to the national competitive tier.
var nationalLeagues = map[string]bool{
	"ECNL": true,
	"GA":   true,
}

// Leagues belonging to the regional competitive tier.
var regionalLeagues = map[string]bool{
	"ECNL-RL": true,
	"ASPIRE":  true,
	"NPL":     true,
}

// Filter returns the teams satisfying every category predicate in the filter
// state. The free-text search term is deliberately ignored here: search only
// narrows the displayed rows after ranks are assigned.
func Filter(teams []domain.Team, filters domain.FilterState) []domain.Team {
	result := make([]domain.Team, 0, len(teams))
	for _, t := range teams {
		if !matchGender(t, filters.Gender) {
			continue
		}
		if filters.AgeGroup != domain.FilterAll && t.AgeGroup != filters.AgeGroup {
			continue
		}
		if !matchLeague(t, filters.League) {
			continue
		}
		if filters.State != domain.FilterAll && t.State != filters.State {
			continue
		}
		result = append(result, t)
	}
	return result
}

func matchGender(t domain.Team, gender string) bool {
	if gender == domain.FilterAll || gender == "" {
		return true
	}
	return strings.EqualFold(t.Gender(), gender)
}

func matchLeague(t domain.Team, league string) bool {
	switch league {
	case domain.FilterAll, "":
		return true
	case domain.LeagueTierNational:
		return nationalLeagues[t.League]
	case domain.LeagueTierRegional:
		return regionalLeagues[t.League]
	default:
		return t.League == league
	}
}

// MatchesSearch reports whether the team matches a free-text search term via
// case-insensitive substring containment on name or club.
func MatchesSearch(t domain.Team, term string) bool {
	term = strings.ToLower(strings.TrimSpace(term))
	if term == "" {
		return true
	}
	return strings.Contains(strings.ToLower(t.Name), term) ||
		strings.Contains(strings.ToLower(t.Club), term)
}

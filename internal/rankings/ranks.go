package rankings

import "soccer-rankings-service/internal/domain"

// AssignRanks converts a filtered, sorted team list into ranked rows. Teams
// flagged out of the ranking pool are appended after all ranked teams with a
// nil rank, regardless of their sort position. Every row carries TotalRanked
// so a consumer can render "#7 of 212".
//
// Rank assignment runs before search narrowing (see ApplySearch): a team's
// displayed rank stays fixed while the user types into the search box.
func AssignRanks(sortedFiltered []domain.Team) []domain.RankedTeam {
	ranked := make([]domain.RankedTeam, 0, len(sortedFiltered))
	unranked := make([]domain.RankedTeam, 0)

	for _, t := range sortedFiltered {
		if t.Ranked() {
			ranked = append(ranked, domain.RankedTeam{Team: t})
		} else {
			unranked = append(unranked, domain.RankedTeam{Team: t})
		}
	}

	total := len(ranked)
	for i := range ranked {
		rank := i + 1
		ranked[i].DisplayRank = &rank
		ranked[i].TotalRanked = total
	}
	for i := range unranked {
		unranked[i].TotalRanked = total
	}

	return append(ranked, unranked...)
}

// ApplySearch narrows ranked rows to those matching the free-text term
// without recomputing any rank numbers. An empty term returns all rows.
func ApplySearch(ranked []domain.RankedTeam, term string) []domain.RankedTeam {
	result := make([]domain.RankedTeam, 0, len(ranked))
	for _, rt := range ranked {
		if MatchesSearch(rt.Team, term) {
			result = append(result, rt)
		}
	}
	return result
}

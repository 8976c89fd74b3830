package rankings

import (
	"sort"

	"soccer-rankings-service/internal/domain"
)

// NationalRanks computes each team's dense 1-based rank within its gender+age
// cohort (the age group already encodes gender), ignoring any active filter.
// The result is keyed by team id and is valid for one directory snapshot.
func NationalRanks(teams []domain.Team) map[string]int {
	cohorts := make(map[string][]domain.Team)
	for _, t := range teams {
		cohorts[t.AgeGroup] = append(cohorts[t.AgeGroup], t)
	}

	ranks := make(map[string]int, len(teams))
	for _, cohort := range cohorts {
		sort.SliceStable(cohort, func(i, j int) bool {
			return cohort[i].PowerScore > cohort[j].PowerScore
		})
		for i, t := range cohort {
			ranks[t.ID] = i + 1
		}
	}
	return ranks
}

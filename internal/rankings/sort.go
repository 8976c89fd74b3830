package rankings

import (
	"sort"

	"soccer-rankings-service/internal/domain"
)

// missingRank sorts teams without an offensive/defensive rank last.
const missingRank = 9999

// Sort orders teams by the active sort field and direction. The sort is
// stable so equal teams keep their input order across recomputes.
//
// Direction handling is asymmetric on purpose: power/record/gd are naturally
// descending-is-best, so "asc" inverts them; offRank/defRank are naturally
// ascending-is-best and ignore the direction toggle.
func Sort(teams []domain.Team, field, direction string) []domain.Team {
	result := make([]domain.Team, len(teams))
	copy(result, teams)

	less := lessFunc(field)
	if direction == domain.SortAsc && invertible(field) {
		inner := less
		less = func(a, b domain.Team) bool { return inner(b, a) }
	}

	sort.SliceStable(result, func(i, j int) bool {
		return less(result[i], result[j])
	})
	return result
}

func invertible(field string) bool {
	switch field {
	case domain.SortOffensiveRank, domain.SortDefensiveRank:
		return false
	}
	return true
}

func lessFunc(field string) func(a, b domain.Team) bool {
	switch field {
	case domain.SortRecord:
		return lessByRecord
	case domain.SortGoalDiff:
		return func(a, b domain.Team) bool {
			return a.GoalDiffPerGame() > b.GoalDiffPerGame()
		}
	case domain.SortOffensiveRank:
		return func(a, b domain.Team) bool {
			return rankOrMissing(a.OffensiveRank) < rankOrMissing(b.OffensiveRank)
		}
	case domain.SortDefensiveRank:
		return func(a, b domain.Team) bool {
			return rankOrMissing(a.DefensiveRank) < rankOrMissing(b.DefensiveRank)
		}
	default:
		// SortPower, and the safe fallback for unknown fields.
		return func(a, b domain.Team) bool {
			return a.PowerScore > b.PowerScore
		}
	}
}

func lessByRecord(a, b domain.Team) bool {
	appg, bppg := a.PointsPerGame(), b.PointsPerGame()
	if appg != bppg {
		return appg > bppg
	}
	// Tie-break: the team that has proven its record over more games first.
	return a.GamesPlayed() > b.GamesPlayed()
}

func rankOrMissing(rank int) int {
	if rank <= 0 {
		return missingRank
	}
	return rank
}

// FilterAndSort applies the category filters then the active sort, producing
// the ordered view the rank assignment step consumes.
func FilterAndSort(teams []domain.Team, filters domain.FilterState) []domain.Team {
	return Sort(Filter(teams, filters), filters.SortField, filters.SortDirection)
}

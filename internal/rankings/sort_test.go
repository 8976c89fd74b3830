package rankings

import (
	"testing"

	"soccer-rankings-service/internal/domain"
)

func ids(teams []domain.Team) []string {
	out := make([]string, len(teams))
	for i, t := range teams {
		out[i] = t.ID
	}
	return out
}

func assertOrder(t *testing.T, teams []domain.Team, want ...string) {
	t.Helper()
	got := ids(teams)
	if len(got) != len(want) {
		t.Fatalf("expected %d teams, got %v", len(want), got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("expected order %v, got %v", want, got)
		}
	}
}

func TestSortPowerDescending(t *testing.T) {
	teams := []domain.Team{
		{ID: "weak", PowerScore: 40},
		{ID: "strong", PowerScore: 90},
		{ID: "mid", PowerScore: 60},
	}
	assertOrder(t, Sort(teams, domain.SortPower, domain.SortDesc), "strong", "mid", "weak")
}

func TestSortPowerAscInverts(t *testing.T) {
	teams := []domain.Team{
		{ID: "strong", PowerScore: 90},
		{ID: "weak", PowerScore: 40},
	}
	assertOrder(t, Sort(teams, domain.SortPower, domain.SortAsc), "weak", "strong")
}

func TestSortPowerMissingScoreSortsLast(t *testing.T) {
	teams := []domain.Team{
		{ID: "new"},
		{ID: "rated", PowerScore: 10},
	}
	assertOrder(t, Sort(teams, domain.SortPower, domain.SortDesc), "rated", "new")
}

func TestSortRecordByPointsPerGame(t *testing.T) {
	teams := []domain.Team{
		// 2.0 ppg over 10 games
		{ID: "steady", Wins: 6, Draws: 2, Losses: 2},
		// 3.0 ppg over 2 games
		{ID: "perfect", Wins: 2},
		// no games
		{ID: "new"},
	}
	assertOrder(t, Sort(teams, domain.SortRecord, domain.SortDesc), "perfect", "steady", "new")
}

func TestSortRecordTieBreakMoreGames(t *testing.T) {
	teams := []domain.Team{
		{ID: "short", Wins: 2},
		{ID: "long", Wins: 8},
	}
	// Both 3.0 ppg; the longer season sorts first.
	assertOrder(t, Sort(teams, domain.SortRecord, domain.SortDesc), "long", "short")
}

func TestSortGoalDiffPerGame(t *testing.T) {
	teams := []domain.Team{
		// +1.0 per game
		{ID: "solid", Wins: 10, GoalsFor: 20, GoalsAgainst: 10},
		// +3.0 per game
		{ID: "crushing", Wins: 2, GoalsFor: 8, GoalsAgainst: 2},
		{ID: "new"},
	}
	assertOrder(t, Sort(teams, domain.SortGoalDiff, domain.SortDesc), "crushing", "solid", "new")
}

func TestSortOffRankAscendingWithSentinel(t *testing.T) {
	teams := []domain.Team{
		{ID: "unrated"},
		{ID: "third", OffensiveRank: 3},
		{ID: "first", OffensiveRank: 1},
	}
	assertOrder(t, Sort(teams, domain.SortOffensiveRank, domain.SortDesc), "first", "third", "unrated")
}

func TestSortRankFieldsIgnoreDirectionToggle(t *testing.T) {
	teams := []domain.Team{
		{ID: "second", DefensiveRank: 2},
		{ID: "first", DefensiveRank: 1},
	}
	// Rank fields are naturally ascending-is-best; asc must not flip them.
	assertOrder(t, Sort(teams, domain.SortDefensiveRank, domain.SortAsc), "first", "second")
	assertOrder(t, Sort(teams, domain.SortDefensiveRank, domain.SortDesc), "first", "second")
}

func TestSortStableAndDeterministic(t *testing.T) {
	teams := []domain.Team{
		{ID: "a", PowerScore: 50},
		{ID: "b", PowerScore: 50},
		{ID: "c", PowerScore: 50},
	}
	first := Sort(teams, domain.SortPower, domain.SortDesc)
	assertOrder(t, first, "a", "b", "c")

	second := Sort(teams, domain.SortPower, domain.SortDesc)
	for i := range first {
		if first[i].ID != second[i].ID {
			t.Fatalf("re-running an identical sort changed the order")
		}
	}
}

func TestSortDoesNotMutateInput(t *testing.T) {
	teams := []domain.Team{
		{ID: "weak", PowerScore: 1},
		{ID: "strong", PowerScore: 2},
	}
	Sort(teams, domain.SortPower, domain.SortDesc)
	if teams[0].ID != "weak" {
		t.Fatalf("Sort must copy, not reorder the caller's slice")
	}
}

func TestFilterAndSortReturnsEachMatchOnce(t *testing.T) {
	teams := []domain.Team{
		{ID: "1", AgeGroup: "G13", PowerScore: 50},
		{ID: "2", AgeGroup: "G13", PowerScore: 70},
		{ID: "3", AgeGroup: "B13", PowerScore: 90},
	}
	filters := domain.DefaultFilterState()
	filters.AgeGroup = "G13"

	got := FilterAndSort(teams, filters)
	assertOrder(t, got, "2", "1")
}

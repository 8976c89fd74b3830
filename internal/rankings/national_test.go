package rankings

import (
	"testing"

	"soccer-rankings-service/internal/domain"
)

func TestNationalRanksPerCohort(t *testing.T) {
	teams := []domain.Team{
		{ID: "g1", AgeGroup: "G13", PowerScore: 90},
		{ID: "g2", AgeGroup: "G13", PowerScore: 70},
		{ID: "g3", AgeGroup: "G13", PowerScore: 80},
		{ID: "b1", AgeGroup: "B13", PowerScore: 95},
		{ID: "b2", AgeGroup: "B13", PowerScore: 50},
	}

	ranks := NationalRanks(teams)
	want := map[string]int{"g1": 1, "g3": 2, "g2": 3, "b1": 1, "b2": 2}
	for id, r := range want {
		if ranks[id] != r {
			t.Fatalf("team %s: expected national rank %d, got %d", id, r, ranks[id])
		}
	}
}

func TestNationalRanksMissingPowerScoreSortsLast(t *testing.T) {
	teams := []domain.Team{
		{ID: "new", AgeGroup: "G13"},
		{ID: "rated", AgeGroup: "G13", PowerScore: 10},
	}
	ranks := NationalRanks(teams)
	if ranks["rated"] != 1 || ranks["new"] != 2 {
		t.Fatalf("unexpected ranks: %v", ranks)
	}
}

func TestNationalRanksIgnoreFilters(t *testing.T) {
	// The aggregator sees the full directory; cohort size reflects every
	// team in the age group regardless of league or state.
	teams := []domain.Team{
		{ID: "1", AgeGroup: "G13", League: "ECNL", State: "TX", PowerScore: 90},
		{ID: "2", AgeGroup: "G13", League: "NPL", State: "OK", PowerScore: 95},
	}
	ranks := NationalRanks(teams)
	if ranks["2"] != 1 || ranks["1"] != 2 {
		t.Fatalf("expected cross-league cohort ranking, got %v", ranks)
	}
}

func TestNationalRanksEmpty(t *testing.T) {
	if got := NationalRanks(nil); len(got) != 0 {
		t.Fatalf("expected empty map, got %v", got)
	}
}

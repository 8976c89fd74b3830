package rankings

import (
	"testing"

	"soccer-rankings-service/internal/domain"
)

func team(id, ageGroup, league, state string) domain.Team {
	return domain.Team{ID: id, Name: "Team " + id, AgeGroup: ageGroup, League: league, State: state}
}

func TestFilterConjunctive(t *testing.T) {
	teams := []domain.Team{
		team("1", "G13", "ECNL", "TX"),
		team("2", "G13", "GA", "TX"),
		team("3", "B13", "ECNL", "TX"),
		team("4", "G14", "ECNL", "TX"),
		team("5", "G13", "ECNL", "OK"),
	}
	filters := domain.FilterState{
		Gender:   domain.GenderGirls,
		AgeGroup: "G13",
		League:   "ECNL",
		State:    "TX",
	}

	got := Filter(teams, filters)
	if len(got) != 1 || got[0].ID != "1" {
		t.Fatalf("expected only team 1, got %+v", got)
	}
}

func TestFilterAllWildcards(t *testing.T) {
	teams := []domain.Team{
		team("1", "G13", "ECNL", "TX"),
		team("2", "B14", "NPL", "OK"),
	}
	got := Filter(teams, domain.DefaultFilterState())
	if len(got) != 2 {
		t.Fatalf("expected every team through wildcard filters, got %d", len(got))
	}
}

func TestFilterGenderFromAgeGroupPrefix(t *testing.T) {
	teams := []domain.Team{
		team("1", "G13", "ECNL", "TX"),
		team("2", "g13", "ECNL", "TX"),
		team("3", "B13", "ECNL", "TX"),
	}
	filters := domain.DefaultFilterState()
	filters.Gender = domain.GenderGirls

	got := Filter(teams, filters)
	if len(got) != 2 {
		t.Fatalf("expected both girls teams (case-insensitive prefix), got %+v", got)
	}
}

func TestFilterUmbrellaLeagues(t *testing.T) {
	teams := []domain.Team{
		team("1", "G13", "ECNL", "TX"),
		team("2", "G13", "GA", "TX"),
		team("3", "G13", "ECNL-RL", "TX"),
		team("4", "G13", "NPL", "TX"),
		team("5", "G13", "ASPIRE", "TX"),
		team("6", "G13", "Local", "TX"),
	}

	filters := domain.DefaultFilterState()
	filters.League = domain.LeagueTierNational
	if got := Filter(teams, filters); len(got) != 2 {
		t.Fatalf("expected 2 national-tier teams, got %+v", got)
	}

	filters.League = domain.LeagueTierRegional
	if got := Filter(teams, filters); len(got) != 3 {
		t.Fatalf("expected 3 regional-tier teams, got %+v", got)
	}
}

func TestFilterIgnoresSearchTerm(t *testing.T) {
	teams := []domain.Team{
		team("1", "G13", "ECNL", "TX"),
		team("2", "G13", "ECNL", "TX"),
	}
	filters := domain.DefaultFilterState()
	filters.Search = "Team 1"

	if got := Filter(teams, filters); len(got) != 2 {
		t.Fatalf("search must not narrow the filter stage, got %d teams", len(got))
	}
}

func TestMatchesSearch(t *testing.T) {
	tm := domain.Team{Name: "Dallas Storm", Club: "Storm SC"}
	cases := []struct {
		term string
		want bool
	}{
		{"", true},
		{"  ", true},
		{"storm", true},
		{"DALLAS", true},
		{"storm sc", true},
		{"eclipse", false},
	}
	for _, tc := range cases {
		if got := MatchesSearch(tm, tc.term); got != tc.want {
			t.Fatalf("MatchesSearch(%q): expected %v, got %v", tc.term, tc.want, got)
		}
	}
}

package leaderboard

import (
	"testing"

	"soccer-rankings-service/internal/domain"
	"soccer-rankings-service/internal/metrics"
)

type stubSource struct {
	teams      []domain.Team
	version    uint64
	teamsCalls int
}

func (s *stubSource) Teams() []domain.Team {
	s.teamsCalls++
	result := make([]domain.Team, len(s.teams))
	copy(result, s.teams)
	return result
}

func (s *stubSource) Version() uint64     { return s.version }
func (s *stubSource) AgeGroups() []string { return []string{"B14", "G13"} }
func (s *stubSource) Leagues() []string   { return []string{"ECNL", "GA"} }
func (s *stubSource) States() []string    { return []string{"CA", "TX"} }

func seasonTeams() []domain.Team {
	return []domain.Team{
		{ID: "t1", Name: "Dallas Storm ECNL", AgeGroup: "G13", League: "ECNL", State: "TX", PowerScore: 91.5},
		{ID: "t2", Name: "Solar SC", AgeGroup: "G13", League: "ECNL", State: "TX", PowerScore: 88.0},
		{ID: "t3", Name: "Eclipse", AgeGroup: "G13", League: "GA", State: "IL", PowerScore: 85.0},
		{ID: "t4", Name: "Legends FC", AgeGroup: "B14", League: "ECNL", State: "CA", PowerScore: 90.0},
	}
}

func TestLeaderboardPipeline(t *testing.T) {
	source := &stubSource{teams: seasonTeams(), version: 1}
	svc := NewService(source, metrics.NewRecorder())

	filters := domain.DefaultFilterState()
	filters.AgeGroup = "G13"

	rows := svc.Leaderboard(filters)
	if len(rows) != 3 {
		t.Fatalf("expected 3 rows, got %d", len(rows))
	}
	if rows[0].ID != "t1" || rows[0].DisplayRank == nil || *rows[0].DisplayRank != 1 {
		t.Fatalf("unexpected first row: %+v", rows[0])
	}
	if rows[2].ID != "t3" || *rows[2].DisplayRank != 3 {
		t.Fatalf("unexpected last row: %+v", rows[2])
	}
	if rows[0].TotalRanked != 3 {
		t.Fatalf("expected totalRanked 3, got %d", rows[0].TotalRanked)
	}
}

func TestLeaderboardMemoizesPerVersionAndFilters(t *testing.T) {
	source := &stubSource{teams: seasonTeams(), version: 1}
	svc := NewService(source, metrics.NewRecorder())
	filters := domain.DefaultFilterState()

	svc.Leaderboard(filters)
	calls := source.teamsCalls
	svc.Leaderboard(filters)
	if source.teamsCalls != calls {
		t.Fatalf("expected memoized second call, got %d fetches", source.teamsCalls)
	}

	// Different filter state recomputes.
	narrowed := filters
	narrowed.AgeGroup = "G13"
	svc.Leaderboard(narrowed)
	if source.teamsCalls != calls+1 {
		t.Fatalf("expected recompute for new filters")
	}

	// A new snapshot version invalidates the cache.
	source.version = 2
	svc.Leaderboard(filters)
	if source.teamsCalls != calls+2 {
		t.Fatalf("expected recompute for new snapshot version")
	}
}

func TestLeaderboardSearchDoesNotShiftRanksOrRecompute(t *testing.T) {
	source := &stubSource{teams: seasonTeams(), version: 1}
	svc := NewService(source, metrics.NewRecorder())

	filters := domain.DefaultFilterState()
	filters.AgeGroup = "G13"
	svc.Leaderboard(filters)
	calls := source.teamsCalls

	filters.Search = "eclipse"
	rows := svc.Leaderboard(filters)
	if source.teamsCalls != calls {
		t.Fatalf("search narrowing should reuse the memoized pipeline run")
	}
	if len(rows) != 1 || rows[0].ID != "t3" {
		t.Fatalf("unexpected search result: %+v", rows)
	}
	if rows[0].DisplayRank == nil || *rows[0].DisplayRank != 3 {
		t.Fatalf("search should keep the pre-search rank, got %+v", rows[0].DisplayRank)
	}
}

func TestNationalRanksMemoized(t *testing.T) {
	source := &stubSource{teams: seasonTeams(), version: 1}
	svc := NewService(source, metrics.NewRecorder())

	national := svc.NationalRanks()
	if national["t1"] != 1 || national["t2"] != 2 || national["t3"] != 3 {
		t.Fatalf("unexpected G13 cohort ranks: %+v", national)
	}
	if national["t4"] != 1 {
		t.Fatalf("B14 cohort should rank independently, got %d", national["t4"])
	}

	calls := source.teamsCalls
	svc.NationalRanks()
	if source.teamsCalls != calls {
		t.Fatalf("expected memoized national ranks")
	}

	source.version = 2
	svc.NationalRanks()
	if source.teamsCalls != calls+1 {
		t.Fatalf("expected recompute after snapshot version bump")
	}
}

func TestFiltersEnumerations(t *testing.T) {
	source := &stubSource{teams: seasonTeams(), version: 1}
	svc := NewService(source, metrics.NewRecorder())

	opts := svc.Filters()
	if len(opts.AgeGroups) != 2 || len(opts.Leagues) != 2 || len(opts.States) != 2 {
		t.Fatalf("unexpected enumerations: %+v", opts)
	}
	if len(opts.Genders) != 2 || opts.Genders[0] != domain.GenderGirls {
		t.Fatalf("unexpected genders: %+v", opts.Genders)
	}
}

func TestLeaderboardRecordsComputeMetric(t *testing.T) {
	recorder := metrics.NewRecorder()
	svc := NewService(&stubSource{teams: seasonTeams(), version: 1}, recorder)

	svc.Leaderboard(domain.DefaultFilterState())
	if recorder.Computes(metrics.OpLeaderboard) != 1 {
		t.Fatalf("expected 1 leaderboard compute recorded")
	}
}

// Package leaderboard runs the filter → sort → rank → search pipeline over
// the current season snapshot, memoizing per snapshot version and filter
// state so repeated reads of an unchanged leaderboard cost a map lookup.
package leaderboard

import (
	"sync"
	"time"

	"soccer-rankings-service/internal/domain"
	"soccer-rankings-service/internal/metrics"
	"soccer-rankings-service/internal/rankings"
)

// Source is the read side of the team directory.
type Source interface {
	Teams() []domain.Team
	Version() uint64
	AgeGroups() []string
	Leagues() []string
	States() []string
}

// FilterOptions enumerates the selectable values for each leaderboard
// control, derived from the current snapshot.
type FilterOptions struct {
	AgeGroups []string `json:"ageGroups"`
	Leagues   []string `json:"leagues"`
	States    []string `json:"states"`
	Genders   []string `json:"genders"`
}

// cacheKey identifies one memoized pipeline run. Search is excluded: rank
// assignment happens on the search-free state, and search narrowing is
// cheap enough to run per call.
type cacheKey struct {
	version uint64
	filters domain.FilterState
}

// Service coordinates leaderboard reads against a Source.
type Service struct {
	source  Source
	metrics *metrics.Recorder

	mu              sync.Mutex
	cacheVersion    uint64
	cache           map[cacheKey][]domain.RankedTeam
	nationalVersion uint64
	national        map[string]int
}

// NewService constructs a Service over the given Source.
func NewService(source Source, recorder *metrics.Recorder) *Service {
	return &Service{
		source:  source,
		metrics: recorder,
		cache:   make(map[cacheKey][]domain.RankedTeam),
	}
}

// Leaderboard returns the ranked rows for the given filter state. Rank
// numbers are computed before the search term narrows the rows, so typing
// a search never shifts any team's displayed rank.
func (s *Service) Leaderboard(filters domain.FilterState) []domain.RankedTeam {
	start := time.Now()
	defer func() {
		s.metrics.RecordCompute(metrics.OpLeaderboard, time.Since(start))
	}()

	ranked := s.rankedFor(filters.WithoutSearch())
	return rankings.ApplySearch(ranked, filters.Search)
}

// rankedFor returns the memoized ranked list for a search-free filter state.
func (s *Service) rankedFor(base domain.FilterState) []domain.RankedTeam {
	version := s.source.Version()
	key := cacheKey{version: version, filters: base}

	s.mu.Lock()
	if s.cacheVersion != version {
		// A new snapshot invalidates every memoized run at once.
		s.cache = make(map[cacheKey][]domain.RankedTeam)
		s.cacheVersion = version
	}
	if cached, ok := s.cache[key]; ok {
		s.mu.Unlock()
		return cached
	}
	s.mu.Unlock()

	ranked := rankings.AssignRanks(rankings.FilterAndSort(s.source.Teams(), base))

	s.mu.Lock()
	if s.cacheVersion == version {
		s.cache[key] = ranked
	}
	s.mu.Unlock()
	return ranked
}

// NationalRanks returns each team's position within its nationwide age-group
// cohort, keyed by team id. Memoized per snapshot version.
func (s *Service) NationalRanks() map[string]int {
	version := s.source.Version()

	s.mu.Lock()
	if s.national != nil && s.nationalVersion == version {
		cached := s.national
		s.mu.Unlock()
		return cached
	}
	s.mu.Unlock()

	start := time.Now()
	national := rankings.NationalRanks(s.source.Teams())
	s.metrics.RecordCompute(metrics.OpNationalRanks, time.Since(start))

	s.mu.Lock()
	s.national = national
	s.nationalVersion = version
	s.mu.Unlock()
	return national
}

// Filters enumerates the selectable filter values in the current snapshot.
func (s *Service) Filters() FilterOptions {
	return FilterOptions{
		AgeGroups: s.source.AgeGroups(),
		Leagues:   s.source.Leagues(),
		States:    s.source.States(),
		Genders:   []string{domain.GenderGirls, domain.GenderBoys},
	}
}

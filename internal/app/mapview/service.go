// Package mapview produces collision-free map placements for the currently
// filtered leaderboard, coloring markers by rank percentile.
package mapview

import (
	"time"

	"soccer-rankings-service/internal/domain"
	"soccer-rankings-service/internal/geo"
	"soccer-rankings-service/internal/metrics"
	"soccer-rankings-service/internal/rankings"
)

// Source is the read side of the team directory.
type Source interface {
	Teams() []domain.Team
}

// Service coordinates map placement reads against a Source.
type Service struct {
	source  Source
	engine  *geo.Engine
	metrics *metrics.Recorder
}

// NewService constructs a Service over the given Source and decluttering
// engine.
func NewService(source Source, engine *geo.Engine, recorder *metrics.Recorder) *Service {
	return &Service{
		source:  source,
		engine:  engine,
		metrics: recorder,
	}
}

// Positions runs the leaderboard pipeline for the given filters, then lays
// the resulting teams out on the map at the given zoom level. Placements are
// ephemeral: they are recomputed on every call, never persisted.
func (s *Service) Positions(filters domain.FilterState, zoomLevel float64) []domain.PositionedTeam {
	start := time.Now()
	defer func() {
		s.metrics.RecordCompute(metrics.OpDeclutter, time.Since(start))
	}()

	ranked := rankings.AssignRanks(rankings.FilterAndSort(s.source.Teams(), filters.WithoutSearch()))
	ranked = rankings.ApplySearch(ranked, filters.Search)

	total := 0
	inputs := make([]geo.Input, 0, len(ranked))
	for _, rt := range ranked {
		rank := 0
		if rt.DisplayRank != nil {
			rank = *rt.DisplayRank
		}
		if rt.TotalRanked > total {
			total = rt.TotalRanked
		}
		inputs = append(inputs, geo.Input{Team: rt.Team, Rank: rank})
	}

	positioned := s.engine.Declutter(inputs, zoomLevel)
	for i := range positioned {
		positioned[i].Color = geo.RankColor(positioned[i].Rank, total)
	}
	return positioned
}

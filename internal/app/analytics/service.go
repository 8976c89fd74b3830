// Package analytics serves match outcome predictions and per-game
// performance rankings over the current season snapshot.
package analytics

import (
	"errors"
	"time"

	"soccer-rankings-service/internal/domain"
	"soccer-rankings-service/internal/metrics"
	"soccer-rankings-service/internal/names"
	"soccer-rankings-service/internal/predict"
)

// ErrTeamNotFound is returned when a named team is absent from the snapshot.
var ErrTeamNotFound = errors.New("team not found")

// Source is the read side of the team directory.
type Source interface {
	Teams() []domain.Team
	Games() []domain.Game
}

// Service coordinates prediction and performance reads against a Source.
type Service struct {
	source    Source
	predictor *predict.Predictor
	metrics   *metrics.Recorder
}

// NewService constructs a Service over the given Source and predictor.
func NewService(source Source, predictor *predict.Predictor, recorder *metrics.Recorder) *Service {
	return &Service{
		source:    source,
		predictor: predictor,
		metrics:   recorder,
	}
}

// Predict returns the outcome prediction for a hypothetical game between the
// named home and away teams. Both teams must exist in the snapshot.
func (s *Service) Predict(homeName, awayName string) (domain.PredictionResult, error) {
	start := time.Now()
	defer func() {
		s.metrics.RecordCompute(metrics.OpPrediction, time.Since(start))
	}()

	teams := s.source.Teams()
	home, ok := findTeam(homeName, teams)
	if !ok {
		return domain.PredictionResult{}, ErrTeamNotFound
	}
	away, ok := findTeam(awayName, teams)
	if !ok {
		return domain.PredictionResult{}, ErrTeamNotFound
	}
	return s.predictor.PredictGame(home, away, teams), nil
}

// Performance returns the team's completed games ranked by how far the
// actual result beat the predicted one.
func (s *Service) Performance(teamName string) (domain.Team, []predict.GamePerformance, error) {
	start := time.Now()
	defer func() {
		s.metrics.RecordCompute(metrics.OpPerformance, time.Since(start))
	}()

	teams := s.source.Teams()
	team, ok := findTeam(teamName, teams)
	if !ok {
		return domain.Team{}, nil, ErrTeamNotFound
	}
	return team, s.predictor.RankGamesByPerformance(s.source.Games(), team, teams), nil
}

// findTeam resolves a name against the snapshot: exact match first, then
// normalized comparison so league suffixes and casing don't matter.
func findTeam(name string, teams []domain.Team) (domain.Team, bool) {
	for _, t := range teams {
		if t.Name == name {
			return t, true
		}
	}
	normalized := names.Normalize(name)
	if normalized == "" {
		return domain.Team{}, false
	}
	for _, t := range teams {
		if names.Normalize(t.Name) == normalized {
			return t, true
		}
	}
	return domain.Team{}, false
}

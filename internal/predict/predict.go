// Package predict implements the match outcome model: win/draw/loss
// probabilities from power-score differentials, predicted scorelines, and
// retrospective performance scoring of completed games.
package predict

import (
	"math"

	"soccer-rankings-service/internal/domain"
	"soccer-rankings-service/internal/timeutil"
)

const (
	// Per-outcome probability floor, in percent. No single match is ever
	// a 0% or 100% proposition.
	defaultFloorPct = 2

	// Power-score points added to the home side before the logistic map.
	defaultHomeAdvantage = 1.5

	// Logistic response scale: a diff of this many power-score points moves
	// the pre-draw win share to ~73/27.
	defaultScale = 25.0

	// Draw mass bounds and the fallback rate for a league with no history.
	minDrawRate     = 0.05
	maxDrawRate     = 0.45
	defaultDrawRate = 0.22

	// Fallback expected goals when neither team nor league has scoring data.
	defaultAvgGoals = 1.5

	// Power-score points per expected goal of scoreline adjustment.
	goalsPerPowerPoint = 1.0 / 40.0
)

// Config tunes the outcome model. Zero values fall back to defaults.
type Config struct {
	FloorPct      int
	HomeAdvantage float64
	Scale         float64
}

// Predictor computes match predictions over one directory snapshot.
type Predictor struct {
	floorPct      int
	homeAdvantage float64
	scale         float64
	today         func() string
}

// New constructs a Predictor with the provided configuration.
func New(cfg Config) *Predictor {
	p := &Predictor{
		floorPct:      cfg.FloorPct,
		homeAdvantage: cfg.HomeAdvantage,
		scale:         cfg.Scale,
		today:         timeutil.Today,
	}
	if p.floorPct <= 0 {
		p.floorPct = defaultFloorPct
	}
	if p.homeAdvantage == 0 {
		p.homeAdvantage = defaultHomeAdvantage
	}
	if p.scale <= 0 {
		p.scale = defaultScale
	}
	return p
}

// PredictGame computes win/draw/loss percentages and a predicted scoreline
// for home vs away. allTeams supplies league averages for teams without
// history. Percentages always sum to exactly 100.
func (p *Predictor) PredictGame(home, away domain.Team, allTeams []domain.Team) domain.PredictionResult {
	diff := home.PowerScore - away.PowerScore + p.homeAdvantage

	// Bounded logistic response over the power differential.
	homeShare := 1.0 / (1.0 + math.Exp(-diff/p.scale))

	draw := p.drawProbability(home, away, allTeams)
	pHome := (1 - draw) * homeShare
	pAway := (1 - draw) * (1 - homeShare)

	floor := float64(p.floorPct) / 100.0
	pHome, draw, pAway = applyFloor(pHome, draw, pAway, floor)

	h, d, a := roundTo100(pHome, draw, pAway, p.floorPct)

	homeGoals, awayGoals := p.predictScoreline(home, away, diff, allTeams)

	return domain.PredictionResult{
		HomeWinProbability: h,
		DrawProbability:    d,
		AwayWinProbability: a,
		PredictedHomeScore: homeGoals,
		PredictedAwayScore: awayGoals,
	}
}

// drawProbability blends both teams' historical draw rates, falling back to
// the league average for teams with no games played.
func (p *Predictor) drawProbability(home, away domain.Team, allTeams []domain.Team) float64 {
	leagueRate := leagueDrawRate(allTeams)

	homeRate, ok := home.DrawRate()
	if !ok {
		homeRate = leagueRate
	}
	awayRate, ok := away.DrawRate()
	if !ok {
		awayRate = leagueRate
	}

	rate := (homeRate + awayRate) / 2
	return clamp(rate, minDrawRate, maxDrawRate)
}

func leagueDrawRate(teams []domain.Team) float64 {
	var draws, games int
	for _, t := range teams {
		draws += t.Draws
		games += t.GamesPlayed()
	}
	if games == 0 {
		return defaultDrawRate
	}
	return float64(draws) / float64(games)
}

// applyFloor raises any outcome below the floor and removes the added mass
// from the largest outcome, keeping the total at 1.
func applyFloor(h, d, a, floor float64) (float64, float64, float64) {
	probs := []float64{h, d, a}
	var added float64
	for i, p := range probs {
		if p < floor {
			added += floor - p
			probs[i] = floor
		}
	}
	if added > 0 {
		largest := 0
		for i := 1; i < len(probs); i++ {
			if probs[i] > probs[largest] {
				largest = i
			}
		}
		probs[largest] -= added
	}
	return probs[0], probs[1], probs[2]
}

// roundTo100 rounds the three probabilities to integer percentages summing
// to exactly 100. Each value rounds to nearest; the residual point (if any)
// is added to the largest probability rather than rounding independently.
// The per-outcome floor is re-asserted after adjustment.
func roundTo100(h, d, a float64, floorPct int) (int, int, int) {
	vals := []int{
		int(math.Round(h * 100)),
		int(math.Round(d * 100)),
		int(math.Round(a * 100)),
	}
	raw := []float64{h, d, a}

	sum := vals[0] + vals[1] + vals[2]
	if sum != 100 {
		largest := 0
		for i := 1; i < len(raw); i++ {
			if raw[i] > raw[largest] {
				largest = i
			}
		}
		vals[largest] += 100 - sum
	}

	// Rounding can pull an outcome back under the floor; take the shortfall
	// from the largest value.
	for i := range vals {
		if vals[i] < floorPct {
			largest := 0
			for j := 1; j < len(vals); j++ {
				if vals[j] > vals[largest] {
					largest = j
				}
			}
			vals[largest] -= floorPct - vals[i]
			vals[i] = floorPct
		}
	}

	return vals[0], vals[1], vals[2]
}

// predictScoreline scales each side's average goals for/against the
// opponent's corresponding average, nudged by the power differential and
// clipped to non-negative integers.
func (p *Predictor) predictScoreline(home, away domain.Team, diff float64, allTeams []domain.Team) (int, int) {
	leagueAvg := leagueAverageGoals(allTeams)

	expHome := (avgOr(home.GoalsFor, home.GamesPlayed(), leagueAvg) +
		avgOr(away.GoalsAgainst, away.GamesPlayed(), leagueAvg)) / 2
	expAway := (avgOr(away.GoalsFor, away.GamesPlayed(), leagueAvg) +
		avgOr(home.GoalsAgainst, home.GamesPlayed(), leagueAvg)) / 2

	adjust := diff * goalsPerPowerPoint
	expHome += adjust
	expAway -= adjust

	return clipGoals(expHome), clipGoals(expAway)
}

func leagueAverageGoals(teams []domain.Team) float64 {
	var goals, games int
	for _, t := range teams {
		goals += t.GoalsFor
		games += t.GamesPlayed()
	}
	if games == 0 {
		return defaultAvgGoals
	}
	return float64(goals) / float64(games)
}

func avgOr(total, games int, fallback float64) float64 {
	if games == 0 {
		return fallback
	}
	return float64(total) / float64(games)
}

func clipGoals(expected float64) int {
	goals := int(math.Round(expected))
	if goals < 0 {
		return 0
	}
	return goals
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

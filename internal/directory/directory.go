// Package directory holds the in-memory season snapshot that every engine
// component reads. A snapshot is replaced wholesale; within one version all
// readers observe the same immutable team and game lists.
package directory

import (
	"sort"
	"sync"

	"soccer-rankings-service/internal/domain"
)

// Directory keeps a thread-safe copy of the most recently loaded season.
type Directory struct {
	mu      sync.RWMutex
	teams   []domain.Team
	games   []domain.Game
	version uint64
}

// New constructs an empty Directory at version 0.
func New() *Directory {
	return &Directory{}
}

// Replace swaps in a new snapshot and bumps the version. Inputs are copied
// so later caller mutations cannot leak into the directory.
func (d *Directory) Replace(teams []domain.Team, games []domain.Game) {
	teamsCopy := make([]domain.Team, len(teams))
	copy(teamsCopy, teams)
	gamesCopy := make([]domain.Game, len(games))
	copy(gamesCopy, games)

	d.mu.Lock()
	defer d.mu.Unlock()
	d.teams = teamsCopy
	d.games = gamesCopy
	d.version++
}

// Teams returns a copy of the current team list.
func (d *Directory) Teams() []domain.Team {
	d.mu.RLock()
	defer d.mu.RUnlock()

	result := make([]domain.Team, len(d.teams))
	copy(result, d.teams)
	return result
}

// Games returns a copy of the current game list.
func (d *Directory) Games() []domain.Game {
	d.mu.RLock()
	defer d.mu.RUnlock()

	result := make([]domain.Game, len(d.games))
	copy(result, d.games)
	return result
}

// Version returns the snapshot version, suitable as a memoization key.
func (d *Directory) Version() uint64 {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.version
}

// AgeGroups returns the distinct age groups in the snapshot, sorted.
func (d *Directory) AgeGroups() []string {
	return d.distinct(func(t domain.Team) string { return t.AgeGroup })
}

// Leagues returns the distinct leagues in the snapshot, sorted.
func (d *Directory) Leagues() []string {
	return d.distinct(func(t domain.Team) string { return t.League })
}

// States returns the distinct states in the snapshot, sorted.
func (d *Directory) States() []string {
	return d.distinct(func(t domain.Team) string { return t.State })
}

func (d *Directory) distinct(field func(domain.Team) string) []string {
	d.mu.RLock()
	defer d.mu.RUnlock()

	seen := make(map[string]bool, len(d.teams))
	for _, t := range d.teams {
		if v := field(t); v != "" {
			seen[v] = true
		}
	}
	result := make([]string, 0, len(seen))
	for v := range seen {
		result = append(result, v)
	}
	sort.Strings(result)
	return result
}

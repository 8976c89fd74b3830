package geo

import (
	"soccer-rankings-service/internal/domain"
	"soccer-rankings-service/internal/names"
)

// StaticGeocoder resolves coordinates from a fixed club-name table. It backs
// local fixtures and tests; production callers inject their own Geocoder.
type StaticGeocoder struct {
	byClub map[string]domain.LatLng
}

// NewStaticGeocoder builds a geocoder over a club -> coordinate table.
// Keys are normalized through the shared base-club rules.
func NewStaticGeocoder(table map[string]domain.LatLng) *StaticGeocoder {
	byClub := make(map[string]domain.LatLng, len(table))
	for club, pos := range table {
		byClub[names.BaseClub(club)] = pos
	}
	return &StaticGeocoder{byClub: byClub}
}

// Coordinates looks up the team's club in the table.
func (g *StaticGeocoder) Coordinates(team domain.Team) (domain.LatLng, bool) {
	pos, ok := g.byClub[names.BaseClub(team.Club)]
	return pos, ok
}

// Package geo computes collision-free map placements for teams whose
// geocoded coordinates land on (near-)identical points. Teams are grouped
// into ~1km coordinate buckets, then by base club; clubs spread vertically
// and a club's teams spread horizontally, centered on the true coordinate.
package geo

import (
	"fmt"
	"math"
	"sort"

	"soccer-rankings-service/internal/domain"
	"soccer-rankings-service/internal/names"
)

const (
	// Bucket precision in decimal degrees (~1km at mid latitudes).
	bucketPrecision = 2

	// Spacing floor in degrees so markers stay separated at any zoom.
	minSpacing = 0.002

	// Base spacing at zoom level 1; halves with each zoom step.
	baseSpacing = 0.2
)

// Geocoder resolves a team to an approximate coordinate. A miss returns
// false; the engine substitutes the service-area centroid so every team
// stays visible on the map.
type Geocoder interface {
	Coordinates(team domain.Team) (domain.LatLng, bool)
}

// Input pairs a team with its leaderboard rank for placement ordering.
type Input struct {
	Team domain.Team
	Rank int
}

// Engine computes marker placements against a geocoder and a fallback
// centroid for teams the geocoder cannot resolve.
type Engine struct {
	geocoder Geocoder
	centroid domain.LatLng
}

// NewEngine constructs a declustering engine. The centroid is the geographic
// center of the service area, used when geocoding misses.
func NewEngine(geocoder Geocoder, centroid domain.LatLng) *Engine {
	return &Engine{geocoder: geocoder, centroid: centroid}
}

// Declutter assigns every input a display coordinate such that no two teams
// sharing a coordinate bucket overlap. A bucket holding a single team of a
// single club renders exactly at its true coordinate.
func (e *Engine) Declutter(inputs []Input, zoomLevel float64) []domain.PositionedTeam {
	spacing := spacingForZoom(zoomLevel)

	type entry struct {
		input Input
		pos   domain.LatLng
	}
	buckets := make(map[string][]entry)
	order := make([]string, 0)

	for _, in := range inputs {
		pos, ok := e.geocoder.Coordinates(in.Team)
		if !ok {
			pos = e.centroid
		}
		key := bucketKey(pos)
		if _, seen := buckets[key]; !seen {
			order = append(order, key)
		}
		buckets[key] = append(buckets[key], entry{input: in, pos: pos})
	}

	result := make([]domain.PositionedTeam, 0, len(inputs))
	for _, key := range order {
		entries := buckets[key]

		// Group the bucket by base club.
		clubs := make(map[string][]entry)
		clubNames := make([]string, 0)
		for _, en := range entries {
			club := names.BaseClub(en.input.Team.Club)
			if _, seen := clubs[club]; !seen {
				clubNames = append(clubNames, club)
			}
			clubs[club] = append(clubs[club], en)
		}
		sort.Strings(clubNames)

		center := entries[0].pos
		for ci, club := range clubNames {
			clubEntries := clubs[club]
			sort.SliceStable(clubEntries, func(i, j int) bool {
				return clubEntries[i].input.Rank < clubEntries[j].input.Rank
			})

			latOffset := symmetricOffset(ci, len(clubNames), spacing)
			for ti, en := range clubEntries {
				lngOffset := symmetricOffset(ti, len(clubEntries), spacing)
				result = append(result, domain.PositionedTeam{
					Team:       en.input.Team,
					Rank:       en.input.Rank,
					DisplayLat: center.Lat + latOffset,
					DisplayLng: center.Lng + lngOffset,
				})
			}
		}
	}
	return result
}

// bucketKey rounds a coordinate to the bucket precision.
func bucketKey(pos domain.LatLng) string {
	factor := math.Pow(10, bucketPrecision)
	lat := math.Round(pos.Lat*factor) / factor
	lng := math.Round(pos.Lng*factor) / factor
	return fmt.Sprintf("%.2f,%.2f", lat, lng)
}

// spacingForZoom halves the degree offset per zoom step, floored so markers
// keep visual separation even fully zoomed in.
func spacingForZoom(zoomLevel float64) float64 {
	if zoomLevel < 1 {
		zoomLevel = 1
	}
	spacing := baseSpacing / math.Pow(2, zoomLevel-1)
	if spacing < minSpacing {
		return minSpacing
	}
	return spacing
}

// symmetricOffset spreads n items around zero: index i of n maps to
// (i - (n-1)/2) * spacing, so a single item gets no offset.
func symmetricOffset(i, n int, spacing float64) float64 {
	return (float64(i) - float64(n-1)/2) * spacing
}

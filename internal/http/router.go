// Package http assembles the service's HTTP surface.
package http

import (
	nethttp "net/http"

	"soccer-rankings-service/internal/http/handlers"
)

// NewRouter registers HTTP routes on a ServeMux.
func NewRouter(handler *handlers.Handler) nethttp.Handler {
	mux := nethttp.NewServeMux()
	mux.HandleFunc("/health", handler.Health)
	mux.HandleFunc("/ready", handler.Ready)
	mux.HandleFunc("/leaderboard", handler.Leaderboard)
	mux.HandleFunc("/filters", handler.Filters)
	mux.HandleFunc("/teams/national-ranks", handler.NationalRanks)
	mux.HandleFunc("/teams/", handler.TeamPerformance)
	mux.HandleFunc("/predict", handler.Predict)
	mux.HandleFunc("/map", handler.MapView)
	return mux
}

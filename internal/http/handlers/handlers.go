// Package handlers wires HTTP routes to the app services.
package handlers

import (
	"errors"
	"log/slog"
	nethttp "net/http"
	"net/url"
	"strconv"
	"strings"

	"soccer-rankings-service/internal/app/analytics"
	"soccer-rankings-service/internal/app/leaderboard"
	"soccer-rankings-service/internal/app/mapview"
	"soccer-rankings-service/internal/domain"
	"soccer-rankings-service/internal/poller"
)

const defaultZoomLevel = 7.0

// Handler wires HTTP routes to the engine services.
type Handler struct {
	leaderboard *leaderboard.Service
	analytics   *analytics.Service
	mapview     *mapview.Service
	logger      *slog.Logger
	statusFn    func() poller.Status
}

// NewHandler constructs a Handler.
func NewHandler(lb *leaderboard.Service, an *analytics.Service, mv *mapview.Service, logger *slog.Logger, statusFn func() poller.Status) *Handler {
	return &Handler{
		leaderboard: lb,
		analytics:   an,
		mapview:     mv,
		logger:      logger,
		statusFn:    statusFn,
	}
}

// Health reports the service health.
func (h *Handler) Health(w nethttp.ResponseWriter, r *nethttp.Request) {
	if r.Method != nethttp.MethodGet {
		writeError(w, r, nethttp.StatusMethodNotAllowed, "method not allowed", h.logger)
		return
	}
	if err := r.Context().Err(); err != nil {
		writeError(w, r, nethttp.StatusServiceUnavailable, "shutting down", h.logger)
		return
	}
	writeJSON(w, nethttp.StatusOK, map[string]string{"status": "ok"}, h.logger)
}

// Ready reports readiness for traffic (e.g., for Kubernetes probes).
func (h *Handler) Ready(w nethttp.ResponseWriter, r *nethttp.Request) {
	if r.Method != nethttp.MethodGet {
		writeError(w, r, nethttp.StatusMethodNotAllowed, "method not allowed", h.logger)
		return
	}
	if h.statusFn == nil {
		writeJSON(w, nethttp.StatusOK, map[string]string{"status": "ready"}, h.logger)
		return
	}
	if h.statusFn().IsReady() {
		writeJSON(w, nethttp.StatusOK, map[string]string{"status": "ready"}, h.logger)
		return
	}
	msg := h.statusFn().LastError
	if msg == "" {
		msg = "not ready"
	}
	writeError(w, r, nethttp.StatusServiceUnavailable, msg, h.logger)
}

// Leaderboard returns ranked rows for the filter state in the query string.
func (h *Handler) Leaderboard(w nethttp.ResponseWriter, r *nethttp.Request) {
	if r.Method != nethttp.MethodGet {
		writeError(w, r, nethttp.StatusMethodNotAllowed, "method not allowed", h.logger)
		return
	}
	filters, err := parseFilterState(r.URL.Query())
	if err != nil {
		writeError(w, r, nethttp.StatusBadRequest, err.Error(), h.logger)
		return
	}

	rows := h.leaderboard.Leaderboard(filters)
	logger := loggerFromContext(r, h.logger)
	if logger != nil {
		logger.Info("served leaderboard", "count", len(rows))
	}
	writeJSON(w, nethttp.StatusOK, map[string]any{
		"filters": filters,
		"teams":   rows,
	}, h.logger)
}

// Filters returns the selectable values for each leaderboard control.
func (h *Handler) Filters(w nethttp.ResponseWriter, r *nethttp.Request) {
	if r.Method != nethttp.MethodGet {
		writeError(w, r, nethttp.StatusMethodNotAllowed, "method not allowed", h.logger)
		return
	}
	writeJSON(w, nethttp.StatusOK, h.leaderboard.Filters(), h.logger)
}

// NationalRanks returns each team's nationwide age-group cohort position.
func (h *Handler) NationalRanks(w nethttp.ResponseWriter, r *nethttp.Request) {
	if r.Method != nethttp.MethodGet {
		writeError(w, r, nethttp.StatusMethodNotAllowed, "method not allowed", h.logger)
		return
	}
	writeJSON(w, nethttp.StatusOK, map[string]any{"ranks": h.leaderboard.NationalRanks()}, h.logger)
}

// Predict returns the outcome prediction for ?home=&away=.
func (h *Handler) Predict(w nethttp.ResponseWriter, r *nethttp.Request) {
	if r.Method != nethttp.MethodGet {
		writeError(w, r, nethttp.StatusMethodNotAllowed, "method not allowed", h.logger)
		return
	}
	home := r.URL.Query().Get("home")
	away := r.URL.Query().Get("away")
	if home == "" || away == "" {
		writeError(w, r, nethttp.StatusBadRequest, "home and away team names required", h.logger)
		return
	}

	result, err := h.analytics.Predict(home, away)
	if errors.Is(err, analytics.ErrTeamNotFound) {
		writeError(w, r, nethttp.StatusNotFound, "team not found", h.logger)
		return
	}
	if err != nil {
		writeError(w, r, nethttp.StatusInternalServerError, "prediction failed", h.logger)
		return
	}
	writeJSON(w, nethttp.StatusOK, result, h.logger)
}

// TeamPerformance returns a team's games ranked by performance against
// expectation. Expects path /teams/{name}/performance.
func (h *Handler) TeamPerformance(w nethttp.ResponseWriter, r *nethttp.Request) {
	if r.Method != nethttp.MethodGet {
		writeError(w, r, nethttp.StatusMethodNotAllowed, "method not allowed", h.logger)
		return
	}
	name, ok := performancePathName(r.URL.Path)
	if !ok {
		writeError(w, r, nethttp.StatusBadRequest, "invalid team name", h.logger)
		return
	}

	team, games, err := h.analytics.Performance(name)
	if errors.Is(err, analytics.ErrTeamNotFound) {
		writeError(w, r, nethttp.StatusNotFound, "team not found", h.logger)
		return
	}
	if err != nil {
		writeError(w, r, nethttp.StatusInternalServerError, "performance ranking failed", h.logger)
		return
	}
	writeJSON(w, nethttp.StatusOK, map[string]any{
		"team":  team,
		"games": games,
	}, h.logger)
}

// MapView returns collision-free map placements for the filtered teams.
func (h *Handler) MapView(w nethttp.ResponseWriter, r *nethttp.Request) {
	if r.Method != nethttp.MethodGet {
		writeError(w, r, nethttp.StatusMethodNotAllowed, "method not allowed", h.logger)
		return
	}
	query := r.URL.Query()
	filters, err := parseFilterState(query)
	if err != nil {
		writeError(w, r, nethttp.StatusBadRequest, err.Error(), h.logger)
		return
	}

	zoom := defaultZoomLevel
	if raw := query.Get("zoom"); raw != "" {
		zoom, err = strconv.ParseFloat(raw, 64)
		if err != nil || zoom <= 0 {
			writeError(w, r, nethttp.StatusBadRequest, "invalid zoom level", h.logger)
			return
		}
	}

	writeJSON(w, nethttp.StatusOK, map[string]any{
		"zoom":  zoom,
		"teams": h.mapview.Positions(filters, zoom),
	}, h.logger)
}

// parseFilterState builds a FilterState from query parameters, starting from
// the defaults. Unknown sort fields and directions are rejected rather than
// silently coerced.
func parseFilterState(query url.Values) (domain.FilterState, error) {
	filters := domain.DefaultFilterState()

	if v := query.Get("ageGroup"); v != "" {
		filters.AgeGroup = v
	}
	if v := query.Get("league"); v != "" {
		filters.League = v
	}
	if v := query.Get("state"); v != "" {
		filters.State = v
	}
	if v := query.Get("gender"); v != "" {
		filters.Gender = v
	}
	filters.Search = query.Get("search")

	if v := query.Get("sortField"); v != "" {
		switch v {
		case domain.SortPower, domain.SortRecord, domain.SortGoalDiff, domain.SortOffensiveRank, domain.SortDefensiveRank:
			filters.SortField = v
		default:
			return domain.FilterState{}, errors.New("unknown sort field")
		}
	}
	if v := query.Get("sortDirection"); v != "" {
		switch v {
		case domain.SortAsc, domain.SortDesc:
			filters.SortDirection = v
		default:
			return domain.FilterState{}, errors.New("unknown sort direction")
		}
	}
	return filters, nil
}

// performancePathName extracts the team name from /teams/{name}/performance.
func performancePathName(path string) (string, bool) {
	rest := strings.TrimPrefix(path, "/teams/")
	if rest == path || !strings.HasSuffix(rest, "/performance") {
		return "", false
	}
	rest = strings.TrimSuffix(rest, "/performance")
	if rest == "" || strings.Contains(rest, "/") {
		return "", false
	}
	name, err := url.PathUnescape(rest)
	if err != nil || name == "" {
		return "", false
	}
	return name, true
}

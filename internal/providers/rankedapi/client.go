// Package rankedapi fetches season snapshots from the upstream rankings API
// and maps them to domain models.
package rankedapi

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"soccer-rankings-service/internal/domain"
	"soccer-rankings-service/internal/providers"
)

const defaultTimeout = 30 * time.Second

// Config controls how the client reaches the upstream API.
type Config struct {
	BaseURL    string
	APIKey     string
	HTTPClient *http.Client
}

type httpDoer interface {
	Do(req *http.Request) (*http.Response, error)
}

// Client fetches the rankings and games resources.
type Client struct {
	baseURL    string
	apiKey     string
	httpClient httpDoer
}

// NewClient constructs a rankings API client with the provided configuration.
func NewClient(cfg Config) *Client {
	return &Client{
		baseURL:    normalizeBaseURL(cfg.BaseURL),
		apiKey:     cfg.APIKey,
		httpClient: resolveHTTPClient(cfg.HTTPClient),
	}
}

// ProviderName identifies this client in logs and metrics.
func (c *Client) ProviderName() string {
	return "rankedapi"
}

// FetchSnapshot retrieves the current season rankings plus the season game
// log and normalizes both into a domain snapshot.
func (c *Client) FetchSnapshot(ctx context.Context) (domain.Snapshot, error) {
	var payload rankingsResponse
	if err := c.getJSON(ctx, "/rankings", &payload); err != nil {
		return domain.Snapshot{}, err
	}

	var upstreamTeams []upstreamTeam
	if err := json.Unmarshal(payload.Rankings, &upstreamTeams); err != nil {
		return domain.Snapshot{}, &providers.MalformedSnapshotError{Reason: "rankings is not a list"}
	}

	teams := make([]domain.Team, 0, len(upstreamTeams))
	for _, u := range upstreamTeams {
		teams = append(teams, mapTeam(u))
	}

	var upstreamGames []upstreamGame
	if err := c.getJSON(ctx, "/games", &upstreamGames); err != nil {
		// The games resource is supplementary; rankings alone still make a
		// usable snapshot.
		upstreamGames = nil
	}
	games := make([]domain.Game, 0, len(upstreamGames))
	for _, u := range upstreamGames {
		games = append(games, mapGame(u))
	}

	return domain.Snapshot{
		Teams:       teams,
		Games:       games,
		LastUpdated: payload.LastUpdated,
	}, nil
}

func (c *Client) getJSON(ctx context.Context, path string, payload any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return err
	}
	if c.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.apiKey)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusTooManyRequests {
		return &providers.RateLimitError{
			Provider:   "rankedapi",
			StatusCode: resp.StatusCode,
			RetryAfter: parseRetryAfter(resp.Header.Get("Retry-After")),
		}
	}
	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("rankedapi: unexpected status %d: %s", resp.StatusCode, strings.TrimSpace(string(body)))
	}

	return json.NewDecoder(resp.Body).Decode(payload)
}

func parseRetryAfter(header string) time.Duration {
	if header == "" {
		return 0
	}
	if secs, err := strconv.Atoi(header); err == nil && secs > 0 {
		return time.Duration(secs) * time.Second
	}
	return 0
}

func normalizeBaseURL(base string) string {
	return strings.TrimRight(base, "/")
}

func resolveHTTPClient(client *http.Client) httpDoer {
	if client != nil {
		return client
	}
	return &http.Client{Timeout: defaultTimeout}
}

// Package providers defines how the season snapshot is fetched from
// upstream sources and the shared wrappers (retry, logging) applied to any
// concrete provider.
package providers

import (
	"context"

	"soccer-rankings-service/internal/domain"
)

// SnapshotProvider fetches a full season snapshot: the team rankings list
// plus the season's game log. Providers normalize upstream shapes into
// domain records; callers never see wire formats.
type SnapshotProvider interface {
	FetchSnapshot(ctx context.Context) (domain.Snapshot, error)
}

// Name returns the provider's self-reported name when it exposes one.
type Name interface {
	ProviderName() string
}

// ProviderName resolves a label for logging/metrics, preferring the
// provider's own name over the configured fallback.
func ProviderName(p SnapshotProvider, fallback string) string {
	if named, ok := p.(Name); ok {
		if n := named.ProviderName(); n != "" {
			return n
		}
	}
	if fallback != "" {
		return fallback
	}
	return "unknown"
}

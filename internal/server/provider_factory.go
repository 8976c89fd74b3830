package server

import (
	"log/slog"

	"soccer-rankings-service/internal/config"
	"soccer-rankings-service/internal/metrics"
	"soccer-rankings-service/internal/providers"
	"soccer-rankings-service/internal/providers/fixture"
	"soccer-rankings-service/internal/providers/rankedapi"
)

// providerFactory assembles the snapshot provider with the shared retry wrapper.
type providerFactory struct {
	logger  *slog.Logger
	metrics *metrics.Recorder
}

func newProviderFactory(logger *slog.Logger, metrics *metrics.Recorder) providerFactory {
	return providerFactory{logger: logger, metrics: metrics}
}

func (f providerFactory) build(cfg config.Config) providers.SnapshotProvider {
	base := selectProvider(cfg)
	name := providers.ProviderName(base, cfg.Provider)
	return providers.NewRetryingProvider(base, f.logger, f.metrics, name, 0, 0)
}

// selectProvider picks the base provider by configuration. An upstream URL
// always wins; the fixture provider backs local development.
func selectProvider(cfg config.Config) providers.SnapshotProvider {
	if cfg.Provider == "rankedapi" || cfg.Upstream.BaseURL != "" {
		return rankedapi.NewClient(rankedapi.Config{
			BaseURL: cfg.Upstream.BaseURL,
			APIKey:  cfg.Upstream.APIKey,
		})
	}
	return fixture.New()
}

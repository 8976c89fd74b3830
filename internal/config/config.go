package config

// Config holds runtime configuration for the server.
type Config struct {
	Port            string
	RefreshInterval Duration
	Provider        string
	SnapshotPath    string
	Upstream        UpstreamConfig
	Metrics         MetricsConfig
	Engine          EngineConfig
}

// UpstreamConfig points at the external rankings API.
type UpstreamConfig struct {
	BaseURL string
	APIKey  string
}

// EngineConfig carries tunables for the prediction and map-layout engines.
type EngineConfig struct {
	PredictionFloorPct int
	CentroidLat        float64
	CentroidLng        float64
}

// Load reads configuration from environment variables with sensible defaults.
func Load() Config {
	return Config{
		Port:            envOrDefault(envPort, defaultPort),
		RefreshInterval: durationEnvOrDefault(envRefreshInterval, defaultRefreshInterval),
		Provider:        envOrDefault(envProvider, defaultProvider),
		SnapshotPath:    envOrDefault(envSnapshotPath, defaultSnapshotPath),
		Upstream: UpstreamConfig{
			BaseURL: envOrDefault(envUpstreamURL, ""),
			APIKey:  envOrDefault(envUpstreamKey, ""),
		},
		Metrics: loadMetrics(),
		Engine: EngineConfig{
			PredictionFloorPct: intEnvOrDefault(envPredictionFloor, defaultPredictionFloor),
			CentroidLat:        floatEnvOrDefault(envCentroidLat, defaultCentroidLat),
			CentroidLng:        floatEnvOrDefault(envCentroidLng, defaultCentroidLng),
		},
	}
}

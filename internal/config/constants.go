package config

import "time"

const (
	envPort            = "PORT"
	envRefreshInterval = "REFRESH_INTERVAL"
	envProvider        = "PROVIDER"
	envSnapshotPath    = "SNAPSHOT_PATH"
	envMetricsPort     = "METRICS_PORT"
	envMetricsOn       = "METRICS_ENABLED"
	envOtelEndpoint    = "OTEL_EXPORTER_OTLP_ENDPOINT"
	envOtelService     = "OTEL_SERVICE_NAME"
	envOtelInsecure    = "OTEL_EXPORTER_OTLP_INSECURE"
	envUpstreamURL     = "RANKINGS_API_URL"
	envUpstreamKey     = "RANKINGS_API_KEY"
	envPredictionFloor = "PREDICTION_FLOOR_PCT"
	envCentroidLat     = "SERVICE_AREA_LAT"
	envCentroidLng     = "SERVICE_AREA_LNG"

	defaultPort        = "4000"
	defaultMetricsPort = "9090"
	defaultProvider    = "fixture"
	// Season rankings refresh upstream roughly daily; a conservative pull
	// interval keeps the snapshot fresh without hammering the API.
	defaultRefreshInterval = 6 * Duration(time.Hour)
	defaultSnapshotPath    = "data/snapshots"
	// Per-outcome probability floor for match predictions, in percent.
	defaultPredictionFloor = 2
	// Geographic center of the contiguous US, the fallback marker position
	// for teams the geocoder cannot resolve.
	defaultCentroidLat = 39.8283
	defaultCentroidLng = -98.5795
)

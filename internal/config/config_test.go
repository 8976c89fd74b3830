package config

import (
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv(envPort, "")
	t.Setenv(envRefreshInterval, "")
	t.Setenv(envProvider, "")
	t.Setenv(envPredictionFloor, "")

	cfg := Load()
	if cfg.Port != defaultPort {
		t.Fatalf("expected default port %s, got %s", defaultPort, cfg.Port)
	}
	if cfg.RefreshInterval != defaultRefreshInterval {
		t.Fatalf("expected default refresh interval, got %v", cfg.RefreshInterval)
	}
	if cfg.Provider != defaultProvider {
		t.Fatalf("expected default provider, got %s", cfg.Provider)
	}
	if cfg.Engine.PredictionFloorPct != defaultPredictionFloor {
		t.Fatalf("expected default prediction floor, got %d", cfg.Engine.PredictionFloorPct)
	}
	if cfg.Engine.CentroidLat != defaultCentroidLat || cfg.Engine.CentroidLng != defaultCentroidLng {
		t.Fatalf("expected default centroid, got %f,%f", cfg.Engine.CentroidLat, cfg.Engine.CentroidLng)
	}
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv(envPort, "8080")
	t.Setenv(envRefreshInterval, "30m")
	t.Setenv(envProvider, "rankedapi")
	t.Setenv(envUpstreamURL, "https://api.example.com")
	t.Setenv(envPredictionFloor, "5")

	cfg := Load()
	if cfg.Port != "8080" {
		t.Fatalf("expected port override, got %s", cfg.Port)
	}
	if cfg.RefreshInterval != 30*time.Minute {
		t.Fatalf("expected 30m interval, got %v", cfg.RefreshInterval)
	}
	if cfg.Provider != "rankedapi" {
		t.Fatalf("expected provider override, got %s", cfg.Provider)
	}
	if cfg.Upstream.BaseURL != "https://api.example.com" {
		t.Fatalf("expected upstream URL, got %s", cfg.Upstream.BaseURL)
	}
	if cfg.Engine.PredictionFloorPct != 5 {
		t.Fatalf("expected floor override, got %d", cfg.Engine.PredictionFloorPct)
	}
}

func TestInvalidValuesFallBack(t *testing.T) {
	t.Setenv(envRefreshInterval, "not-a-duration")
	t.Setenv(envPredictionFloor, "-3")

	cfg := Load()
	if cfg.RefreshInterval != defaultRefreshInterval {
		t.Fatalf("invalid duration should fall back, got %v", cfg.RefreshInterval)
	}
	if cfg.Engine.PredictionFloorPct != defaultPredictionFloor {
		t.Fatalf("non-positive floor should fall back, got %d", cfg.Engine.PredictionFloorPct)
	}
}

func TestBoolEnvParsing(t *testing.T) {
	t.Setenv(envMetricsOn, "yes")
	if !loadMetrics().Enabled {
		t.Fatalf("expected metrics enabled for 'yes'")
	}
	t.Setenv(envMetricsOn, "0")
	if loadMetrics().Enabled {
		t.Fatalf("expected metrics disabled for '0'")
	}
	t.Setenv(envMetricsOn, "garbage")
	if loadMetrics().Enabled {
		t.Fatalf("expected default for garbage input")
	}
}

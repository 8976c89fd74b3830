// Package server wires configuration, provider, poller, app services, and
// the HTTP surface into a runnable process.
package server

import (
	"context"
	"log/slog"
	"net/http"
	"os"

	"soccer-rankings-service/internal/app/analytics"
	"soccer-rankings-service/internal/app/leaderboard"
	"soccer-rankings-service/internal/app/mapview"
	"soccer-rankings-service/internal/config"
	"soccer-rankings-service/internal/directory"
	"soccer-rankings-service/internal/domain"
	"soccer-rankings-service/internal/geo"
	httpserver "soccer-rankings-service/internal/http"
	"soccer-rankings-service/internal/http/handlers"
	"soccer-rankings-service/internal/http/middleware"
	"soccer-rankings-service/internal/logging"
	"soccer-rankings-service/internal/metrics"
	"soccer-rankings-service/internal/poller"
	"soccer-rankings-service/internal/predict"
	"soccer-rankings-service/internal/providers"
	"soccer-rankings-service/internal/snapshots"
)

var metricsSetup = metrics.Setup

// Server owns every long-lived component of the process.
type Server struct {
	cfg           config.Config
	logger        *slog.Logger
	metrics       *metrics.Recorder
	directory     *directory.Directory
	httpServer    httpServer
	metricsServer httpServer
	poller        *poller.Poller
	metricsStop   func(context.Context) error
}

// New constructs a server with default provider and poller wiring.
func New(cfg config.Config, logger *slog.Logger) *Server {
	return newServerWithProvider(cfg, logger, nil)
}

func newServerWithProvider(cfg config.Config, logger *slog.Logger, provider providers.SnapshotProvider) *Server {
	recorder, metricsSrv, metricsShutdown := buildMetrics(cfg, logger)

	if provider == nil {
		provider = newProviderFactory(logger, recorder).build(cfg)
	}

	dir := directory.New()
	warmDirectory(dir, cfg, logger)

	writer := snapshots.NewWriter(cfg.SnapshotPath, 0)
	plr := poller.New(provider, dir, writer, logger, recorder, cfg.RefreshInterval)
	httpSrv := buildHTTPServer(cfg, dir, logger, recorder, plr)

	return &Server{
		cfg:           cfg,
		logger:        logger,
		metrics:       recorder,
		directory:     dir,
		httpServer:    httpSrv,
		metricsServer: metricsSrv,
		poller:        plr,
		metricsStop:   metricsShutdown,
	}
}

// warmDirectory seeds the directory from the last persisted snapshot so the
// service answers immediately after a restart, before the first refresh.
func warmDirectory(dir *directory.Directory, cfg config.Config, logger *slog.Logger) {
	snap, err := snapshots.NewFSStore(cfg.SnapshotPath).LoadLatest()
	if err != nil {
		if !os.IsNotExist(err) {
			logging.Warn(logger, "persisted snapshot unavailable", "err", err)
		}
		return
	}
	dir.Replace(snap.Teams, snap.Games)
	logging.Info(logger, "directory warmed from disk",
		slog.Int(logging.FieldCount, len(snap.Teams)),
	)
}

func buildHTTPServer(cfg config.Config, dir *directory.Directory, logger *slog.Logger, recorder *metrics.Recorder, plr *poller.Poller) httpServer {
	var statusFn func() poller.Status
	if plr != nil {
		statusFn = plr.Status
	}

	lb := leaderboard.NewService(dir, recorder)
	an := analytics.NewService(dir, predict.New(predict.Config{
		FloorPct: cfg.Engine.PredictionFloorPct,
	}), recorder)

	centroid := domain.LatLng{Lat: cfg.Engine.CentroidLat, Lng: cfg.Engine.CentroidLng}
	mv := mapview.NewService(dir, geo.NewEngine(geo.NewStaticGeocoder(nil), centroid), recorder)

	handler := handlers.NewHandler(lb, an, mv, logger, statusFn)
	router := httpserver.NewRouter(handler)
	if logger == nil {
		logger = logging.NewLogger(logging.Config{})
	}
	wrapped := middleware.LoggingMiddleware(logger, recorder, router)

	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      wrapped,
		ReadTimeout:  readTimeout,
		WriteTimeout: writeTimeout,
		IdleTimeout:  idleTimeout,
	}

	return netHTTPServer{srv: srv}
}

// Run starts the poller and HTTP server, then waits for context cancellation
// to shut down gracefully.
func (s *Server) Run(ctx context.Context, stop context.CancelFunc) {
	s.startMetrics()
	s.startServer(stop)
	s.poller.Start(ctx)

	<-ctx.Done()
	logging.Info(s.logger, "shutdown signal received")

	s.gracefulShutdown()
}

func (s *Server) startServer(stop context.CancelFunc) {
	launchServer("http", s.httpServer, s.logger, func(err error) {
		if stop != nil {
			stop()
		}
	})
}

func (s *Server) startMetrics() {
	if s.metricsServer == nil {
		return
	}
	launchServer("metrics", s.metricsServer, s.logger, nil)
}

func (s *Server) gracefulShutdown() {
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if s.metricsStop != nil {
		if err := s.metricsStop(shutdownCtx); err != nil {
			logging.Warn(s.logger, "metrics shutdown failed", "error", err)
		}
	}

	if s.metricsServer != nil {
		if err := s.metricsServer.Shutdown(shutdownCtx); err != nil {
			logging.Warn(s.logger, "metrics server shutdown failed", "error", err)
		}
	}

	s.poller.Stop()

	if err := s.httpServer.Shutdown(shutdownCtx); err != nil {
		logging.Error(s.logger, "graceful shutdown failed", err)
	}

	logging.Info(s.logger, "shutdown complete")
}

func buildMetrics(cfg config.Config, logger *slog.Logger) (*metrics.Recorder, httpServer, func(context.Context) error) {
	recCfg := metrics.TelemetryConfig{
		Enabled:      cfg.Metrics.Enabled,
		Port:         cfg.Metrics.Port,
		ServiceName:  cfg.Metrics.ServiceName,
		OtlpEndpoint: cfg.Metrics.OtlpEndpoint,
		OtlpInsecure: cfg.Metrics.OtlpInsecure,
	}

	rec, handler, shutdown, err := metricsSetup(context.Background(), recCfg)
	if err != nil {
		logging.Warn(logger, "metrics setup failed, continuing without telemetry", "err", err)
		return metrics.NewRecorder(), nil, nil
	}

	var metricsSrv httpServer
	if handler != nil && recCfg.Enabled {
		metricsSrv = netHTTPServer{
			srv: &http.Server{
				Addr:    ":" + recCfg.Port,
				Handler: handler,
			},
		}
	}

	return rec, metricsSrv, shutdown
}

func launchServer(name string, srv httpServer, logger *slog.Logger, onError func(error)) {
	go func() {
		logging.Info(logger, "starting "+name+" server", slog.String("addr", srv.Addr()))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logging.Warn(logger, name+" server failed", "error", err)
			if onError != nil {
				onError(err)
			}
		}
	}()
}

// Handler exposes the HTTP handler (useful for tests).
func (s *Server) Handler() http.Handler {
	return s.httpServer.Handler()
}

// Package poller refreshes the season snapshot on an interval, replacing
// the team directory and persisting the fetched snapshot to disk.
package poller

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"soccer-rankings-service/internal/domain"
	"soccer-rankings-service/internal/logging"
	"soccer-rankings-service/internal/metrics"
	"soccer-rankings-service/internal/providers"
	"soccer-rankings-service/internal/timeutil"
)

const defaultInterval = 6 * time.Hour

// DirectoryWriter receives the refreshed snapshot.
type DirectoryWriter interface {
	Replace(teams []domain.Team, games []domain.Game)
}

// SnapshotWriter persists fetched snapshots to disk.
type SnapshotWriter interface {
	WriteSnapshot(date string, snapshot domain.Snapshot) error
}

// Poller fetches the season snapshot on an interval.
type Poller struct {
	provider  providers.SnapshotProvider
	directory DirectoryWriter
	writer    SnapshotWriter
	logger    *slog.Logger
	metrics   *metrics.Recorder
	interval  time.Duration
	now       func() time.Time

	ticker   *time.Ticker
	done     chan struct{}
	stopOnce sync.Once
	startMu  sync.Mutex
	started  bool

	statusMu sync.RWMutex
	status   Status
}

// Status describes the recent health of the refresh loop.
type Status struct {
	ConsecutiveFailures int
	LastError           string
	LastAttempt         time.Time
	LastSuccess         time.Time
}

// IsReady reports whether the poller has had a recent success and is not
// failing repeatedly.
func (s Status) IsReady() bool {
	if s.LastSuccess.IsZero() {
		return false
	}
	return s.ConsecutiveFailures < 3
}

// New constructs a Poller with sane defaults.
func New(provider providers.SnapshotProvider, directory DirectoryWriter, writer SnapshotWriter, logger *slog.Logger, recorder *metrics.Recorder, interval time.Duration) *Poller {
	if interval <= 0 {
		interval = defaultInterval
	}
	return &Poller{
		provider:  provider,
		directory: directory,
		writer:    writer,
		logger:    logger,
		metrics:   recorder,
		interval:  interval,
		now:       time.Now,
		done:      make(chan struct{}),
	}
}

// Start begins polling until the context is cancelled or Stop is called.
func (p *Poller) Start(ctx context.Context) {
	p.startMu.Lock()
	if p.started {
		p.startMu.Unlock()
		return
	}
	p.started = true
	p.startMu.Unlock()

	p.ticker = time.NewTicker(p.interval)

	go func() {
		logging.Info(p.logger, "snapshot refresh loop started", slog.Int64(logging.FieldDurationMS, p.interval.Milliseconds()))
		// Initial fetch to warm the directory on boot.
		p.refreshOnce(ctx)

		for {
			select {
			case <-ctx.Done():
				p.stopTicker()
				logging.Info(p.logger, "snapshot refresh loop stopped")
				return
			case <-p.done:
				p.stopTicker()
				logging.Info(p.logger, "snapshot refresh loop stopped")
				return
			case <-p.ticker.C:
				p.refreshOnce(ctx)
			}
		}
	}()
}

// Stop halts the refresh loop. Safe to call more than once.
func (p *Poller) Stop() {
	p.stopOnce.Do(func() {
		close(p.done)
	})
}

// Status returns a copy of the current loop health.
func (p *Poller) Status() Status {
	p.statusMu.RLock()
	defer p.statusMu.RUnlock()
	return p.status
}

func (p *Poller) refreshOnce(ctx context.Context) {
	start := p.now()
	snap, err := p.provider.FetchSnapshot(ctx)
	duration := p.now().Sub(start)
	p.metrics.RecordRefresh(duration, err)

	p.statusMu.Lock()
	p.status.LastAttempt = start
	if err != nil {
		p.status.ConsecutiveFailures++
		p.status.LastError = err.Error()
	} else {
		p.status.ConsecutiveFailures = 0
		p.status.LastError = ""
		p.status.LastSuccess = start
	}
	p.statusMu.Unlock()

	if err != nil {
		logging.Error(p.logger, "snapshot refresh failed", err)
		return
	}

	p.directory.Replace(snap.Teams, snap.Games)
	logging.Info(p.logger, "snapshot refreshed",
		slog.Int(logging.FieldCount, len(snap.Teams)),
		slog.Int64(logging.FieldDurationMS, duration.Milliseconds()),
	)

	if p.writer != nil {
		date := timeutil.FormatDate(start.UTC())
		if err := p.writer.WriteSnapshot(date, snap); err != nil {
			logging.Warn(p.logger, "snapshot persist failed", "err", err)
		}
	}
}

func (p *Poller) stopTicker() {
	if p.ticker != nil {
		p.ticker.Stop()
	}
}

package metrics

import (
	"sync"
	"time"
)

type providerStats struct {
	calls           int
	errors          int
	rateLimitHits   int
	lastRetryAfter  time.Duration
	lastCallLatency time.Duration
}

type engineStats struct {
	computes        int
	lastComputeTime time.Duration
}

// Recorder captures lightweight, in-memory metrics about provider calls,
// snapshot refreshes, and engine computations. It is intentionally simple so
// it can be swapped for a real backend later.
type Recorder struct {
	mu        sync.Mutex
	providers map[string]*providerStats
	engine    map[string]*engineStats
	refreshes int
	otel      *otelInstruments
}

// NewRecorder constructs a Recorder without telemetry export.
func NewRecorder() *Recorder {
	return newRecorder(nil)
}

func newRecorder(otel *otelInstruments) *Recorder {
	return &Recorder{
		providers: make(map[string]*providerStats),
		engine:    make(map[string]*engineStats),
		otel:      otel,
	}
}

// RecordProviderAttempt increments counters for a provider call and stores
// the last observed latency.
func (r *Recorder) RecordProviderAttempt(provider string, duration time.Duration, err error) {
	if r == nil {
		return
	}

	r.mu.Lock()
	stats := r.ensureProvider(provider)
	stats.calls++
	stats.lastCallLatency = duration
	if err != nil {
		stats.errors++
	}
	r.mu.Unlock()

	if r.otel != nil {
		r.otel.recordProviderAttempt(provider, duration, err)
	}
}

// RecordRateLimit tracks a provider rate-limit response and the last
// Retry-After hint.
func (r *Recorder) RecordRateLimit(provider string, retryAfter time.Duration) {
	if r == nil {
		return
	}

	r.mu.Lock()
	stats := r.ensureProvider(provider)
	stats.rateLimitHits++
	if retryAfter > 0 {
		stats.lastRetryAfter = retryAfter
	}
	r.mu.Unlock()

	if r.otel != nil {
		r.otel.recordRateLimit(provider, retryAfter)
	}
}

// RecordRefresh tracks one snapshot refresh cycle.
func (r *Recorder) RecordRefresh(duration time.Duration, err error) {
	if r == nil {
		return
	}

	r.mu.Lock()
	r.refreshes++
	r.mu.Unlock()

	if r.otel != nil {
		r.otel.recordRefresh(duration, err)
	}
}

// RecordCompute tracks one engine computation (leaderboard, prediction, map
// layout) and its latency.
func (r *Recorder) RecordCompute(operation string, duration time.Duration) {
	if r == nil {
		return
	}

	r.mu.Lock()
	stats, ok := r.engine[operation]
	if !ok {
		stats = &engineStats{}
		r.engine[operation] = stats
	}
	stats.computes++
	stats.lastComputeTime = duration
	r.mu.Unlock()

	if r.otel != nil {
		r.otel.recordCompute(operation, duration)
	}
}

// RecordHTTPRequest tracks an HTTP request for the request counter and
// latency histogram.
func (r *Recorder) RecordHTTPRequest(method, path string, status int, duration time.Duration) {
	if r == nil || r.otel == nil {
		return
	}
	r.otel.recordHTTPRequest(method, path, status, duration)
}

// ProviderCalls returns the total attempts recorded for a provider.
func (r *Recorder) ProviderCalls(provider string) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.ensureProvider(provider).calls
}

// ProviderErrors returns the total failed attempts recorded for a provider.
func (r *Recorder) ProviderErrors(provider string) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.ensureProvider(provider).errors
}

// RateLimitHits returns the rate-limit events seen for a provider.
func (r *Recorder) RateLimitHits(provider string) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.ensureProvider(provider).rateLimitHits
}

// Refreshes returns the number of snapshot refresh cycles recorded.
func (r *Recorder) Refreshes() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.refreshes
}

// Computes returns the number of computations recorded for an operation.
func (r *Recorder) Computes(operation string) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	if stats, ok := r.engine[operation]; ok {
		return stats.computes
	}
	return 0
}

func (r *Recorder) ensureProvider(provider string) *providerStats {
	stats, ok := r.providers[provider]
	if !ok {
		stats = &providerStats{}
		r.providers[provider] = stats
	}
	return stats
}

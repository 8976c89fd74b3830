package providers

import (
	"context"
	"errors"
	"testing"
	"time"

	"soccer-rankings-service/internal/domain"
	"soccer-rankings-service/internal/metrics"
)

type stubProvider struct {
	calls     int
	failUntil int
	err       error
	snapshot  domain.Snapshot
}

func (s *stubProvider) FetchSnapshot(ctx context.Context) (domain.Snapshot, error) {
	s.calls++
	if s.calls <= s.failUntil {
		return domain.Snapshot{}, s.err
	}
	return s.snapshot, nil
}

func newFastRetrier(inner SnapshotProvider, attempts int, rec *metrics.Recorder) SnapshotProvider {
	p := NewRetryingProvider(inner, nil, rec, "stub", attempts, time.Millisecond)
	return p
}

func TestRetrySucceedsAfterTransientFailure(t *testing.T) {
	stub := &stubProvider{
		failUntil: 2,
		err:       errors.New("transient"),
		snapshot:  domain.Snapshot{LastUpdated: "2026-03-01"},
	}
	rec := metrics.NewRecorder()

	snap, err := newFastRetrier(stub, 3, rec).FetchSnapshot(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if snap.LastUpdated != "2026-03-01" {
		t.Fatalf("unexpected snapshot: %+v", snap)
	}
	if stub.calls != 3 {
		t.Fatalf("expected 3 attempts, got %d", stub.calls)
	}
	if rec.ProviderCalls("stub") != 3 || rec.ProviderErrors("stub") != 2 {
		t.Fatalf("unexpected metrics: calls=%d errors=%d", rec.ProviderCalls("stub"), rec.ProviderErrors("stub"))
	}
}

func TestRetryExhaustionReturnsLastError(t *testing.T) {
	wantErr := errors.New("permanent")
	stub := &stubProvider{failUntil: 10, err: wantErr}

	_, err := newFastRetrier(stub, 2, nil).FetchSnapshot(context.Background())
	if !errors.Is(err, wantErr) {
		t.Fatalf("expected last error, got %v", err)
	}
	if stub.calls != 2 {
		t.Fatalf("expected 2 attempts, got %d", stub.calls)
	}
}

func TestRetryRespectsContextCancellation(t *testing.T) {
	stub := &stubProvider{failUntil: 10, err: errors.New("down")}
	p := NewRetryingProvider(stub, nil, nil, "stub", 5, time.Minute)

	ctx, cancel := context.WithCancel(context.Background())
	go func() {
		time.Sleep(10 * time.Millisecond)
		cancel()
	}()

	_, err := p.FetchSnapshot(ctx)
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context cancellation, got %v", err)
	}
	if stub.calls != 1 {
		t.Fatalf("expected a single attempt before the long backoff, got %d", stub.calls)
	}
}

func TestRetryRecordsRateLimits(t *testing.T) {
	stub := &stubProvider{
		failUntil: 1,
		err:       &RateLimitError{Provider: "stub", StatusCode: 429, RetryAfter: time.Millisecond},
	}
	rec := metrics.NewRecorder()

	if _, err := newFastRetrier(stub, 2, rec).FetchSnapshot(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.RateLimitHits("stub") != 1 {
		t.Fatalf("expected a recorded rate limit hit")
	}
}

func TestProviderNameResolution(t *testing.T) {
	named := NewRetryingProvider(&stubProvider{}, nil, nil, "wrapped", 1, time.Millisecond)
	if got := ProviderName(named, "fallback"); got != "wrapped" {
		t.Fatalf("expected self-reported name, got %s", got)
	}
	if got := ProviderName(&stubProvider{}, "fallback"); got != "fallback" {
		t.Fatalf("expected fallback name, got %s", got)
	}
	if got := ProviderName(&stubProvider{}, ""); got != "unknown" {
		t.Fatalf("expected unknown, got %s", got)
	}
}

func TestAsRateLimitError(t *testing.T) {
	rl := &RateLimitError{StatusCode: 429}
	wrapped := errors.Join(errors.New("outer"), rl)

	got, ok := AsRateLimitError(wrapped)
	if !ok || got.StatusCode != 429 {
		t.Fatalf("expected unwrap to find rate limit error")
	}
	if _, ok := AsRateLimitError(errors.New("plain")); ok {
		t.Fatalf("plain errors must not unwrap as rate limit")
	}
}

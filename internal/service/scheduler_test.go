package service

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/pkruglov/notesync/internal/bus"
	"github.com/pkruglov/notesync/internal/config"
	"github.com/pkruglov/notesync/internal/logger"
	"github.com/pkruglov/notesync/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// spySyncService counts dispatched passes.
type spySyncService struct {
	calls atomic.Int64
	err   error
}

func (s *spySyncService) PerformIncrementalSync(_ context.Context) error {
	s.calls.Add(1)
	return s.err
}

func (s *spySyncService) ResolveConflict(_ context.Context, _ string, _ models.ConflictChoice) error {
	return nil
}

// stubTokens is a TokenProvider with a fixed answer.
type stubTokens struct {
	token string
}

func (s *stubTokens) Token(_ context.Context) (string, error) { return s.token, nil }

func newTestScheduler(spy *spySyncService, token string, events *bus.Bus) *Scheduler {
	cfg := config.ClientSync{
		FocusDebounce: 10 * time.Millisecond,
		DataDebounce:  20 * time.Millisecond,
		MinInterval:   50 * time.Millisecond,
	}
	return NewScheduler(cfg, spy, &stubTokens{token: token}, events, logger.Nop())
}

// waitCalls blocks until the spy saw want calls or the deadline passes.
func waitCalls(t *testing.T, spy *spySyncService, want int64) {
	t.Helper()
	deadline := time.Now().Add(500 * time.Millisecond)
	for time.Now().Before(deadline) {
		if spy.calls.Load() >= want {
			return
		}
		time.Sleep(time.Millisecond)
	}
	t.Fatalf("expected %d dispatched passes, got %d", want, spy.calls.Load())
}

// ── Defaults ─────────────────────────────────────────────────────────────────

func TestNewScheduler_AppliesDefaultCadences(t *testing.T) {
	spy := &spySyncService{}
	s := NewScheduler(config.ClientSync{}, spy, &stubTokens{}, nil, logger.Nop())
	defer s.Close()

	assert.Equal(t, DefaultFocusDebounce, s.focusDebounce)
	assert.Equal(t, DefaultDataDebounce, s.dataDebounce)
	assert.Equal(t, DefaultMinInterval, s.minInterval)
}

// ── Debounce ─────────────────────────────────────────────────────────────────

func TestScheduler_FocusBurstCollapsesToOnePass(t *testing.T) {
	spy := &spySyncService{}
	s := newTestScheduler(spy, "token", nil)
	defer s.Close()

	// a burst of foreground events within one debounce window
	s.OnFocus()
	s.OnFocus()
	s.OnFocus()

	waitCalls(t, spy, 1)
	time.Sleep(30 * time.Millisecond)
	assert.Equal(t, int64(1), spy.calls.Load(), "burst must collapse into a single pass")
}

func TestScheduler_DataMutationDebounce(t *testing.T) {
	spy := &spySyncService{}
	s := newTestScheduler(spy, "token", nil)
	defer s.Close()

	s.OnDataMutated(models.KindNote)
	s.OnDataMutated(models.KindTask)

	waitCalls(t, spy, 1)
	time.Sleep(40 * time.Millisecond)
	assert.Equal(t, int64(1), spy.calls.Load())
}

// ── Throttle ─────────────────────────────────────────────────────────────────

func TestScheduler_MinIntervalThrottles(t *testing.T) {
	spy := &spySyncService{}
	s := newTestScheduler(spy, "token", nil)
	defer s.Close()

	s.OnFocus()
	waitCalls(t, spy, 1)

	// fire again well inside the min interval: the trigger is dropped
	s.OnFocus()
	time.Sleep(40 * time.Millisecond)
	assert.Equal(t, int64(1), spy.calls.Load(), "second pass inside min interval must be throttled")

	// after the interval elapses a new trigger goes through
	time.Sleep(60 * time.Millisecond)
	s.OnFocus()
	waitCalls(t, spy, 2)
}

// ── Auth gating ──────────────────────────────────────────────────────────────

func TestScheduler_NoTokenNoPass(t *testing.T) {
	spy := &spySyncService{}
	s := newTestScheduler(spy, "", nil)
	defer s.Close()

	s.OnFocus()
	s.OnDataMutated(models.KindNote)
	time.Sleep(60 * time.Millisecond)

	assert.Zero(t, spy.calls.Load(), "no authenticated session means no passes at all")
}

// ── Bus integration ──────────────────────────────────────────────────────────

func TestScheduler_ListensToBusMutations(t *testing.T) {
	spy := &spySyncService{}
	events := bus.New()
	s := newTestScheduler(spy, "token", events)
	defer s.Close()

	events.PublishDataMutated(models.KindTask)

	waitCalls(t, spy, 1)
}

// ── Close ────────────────────────────────────────────────────────────────────

func TestScheduler_CloseCancelsPendingTimers(t *testing.T) {
	spy := &spySyncService{}
	s := newTestScheduler(spy, "token", nil)

	s.OnFocus()
	s.Close()
	time.Sleep(40 * time.Millisecond)

	assert.Zero(t, spy.calls.Load(), "armed timers must not fire after Close")
}

func TestScheduler_TriggersAfterCloseIgnored(t *testing.T) {
	spy := &spySyncService{}
	s := newTestScheduler(spy, "token", nil)
	s.Close()

	assert.NotPanics(t, func() {
		s.OnFocus()
		s.OnDataMutated(models.KindNote)
		s.Close()
	})
	time.Sleep(30 * time.Millisecond)
	assert.Zero(t, spy.calls.Load())
}

func TestScheduler_CloseDetachesFromBus(t *testing.T) {
	spy := &spySyncService{}
	events := bus.New()
	s := newTestScheduler(spy, "token", events)
	s.Close()

	events.PublishDataMutated(models.KindNote)
	time.Sleep(40 * time.Millisecond)

	assert.Zero(t, spy.calls.Load())
}

// ── Wiring ───────────────────────────────────────────────────────────────────

func TestScheduler_ImplementsSyncTrigger(t *testing.T) {
	spy := &spySyncService{}
	s := newTestScheduler(spy, "token", nil)
	defer s.Close()

	var trigger SyncTrigger = s
	require.NotNil(t, trigger)
}

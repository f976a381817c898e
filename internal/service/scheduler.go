package service

import (
	"context"
	"sync"
	"time"

	"github.com/pkruglov/notesync/internal/adapter"
	"github.com/pkruglov/notesync/internal/bus"
	"github.com/pkruglov/notesync/internal/config"
	"github.com/pkruglov/notesync/internal/logger"
	"github.com/pkruglov/notesync/models"
)

// Scheduler default cadences, used when the config leaves them zero.
const (
	DefaultFocusDebounce = 2 * time.Second
	DefaultDataDebounce  = 5 * time.Second
	DefaultMinInterval   = 30 * time.Second
)

// Scheduler turns bursty UI events into occasional reconciliation passes.
// Each trigger class has its own debounce window and every dispatch is
// gated by a global minimum interval. Extra triggers inside a window are
// dropped, not queued; the eventual pass covers them all anyway.
type Scheduler struct {
	syncService SyncService
	tokens      adapter.TokenProvider
	logger      *logger.Logger

	focusDebounce time.Duration
	dataDebounce  time.Duration
	minInterval   time.Duration

	mu           sync.Mutex
	focusTimer   *time.Timer
	dataTimer    *time.Timer
	lastDispatch time.Time
	closed       bool

	unsubscribe func()
	now         clock

	// wg tracks the in-flight pass so Close can be made deterministic in
	// tests; production shutdown does not wait on it.
	wg sync.WaitGroup
}

func NewScheduler(cfg config.ClientSync, syncService SyncService, tokens adapter.TokenProvider, events *bus.Bus, log *logger.Logger) *Scheduler {
	s := &Scheduler{
		syncService:   syncService,
		tokens:        tokens,
		logger:        log.GetChildLogger(),
		focusDebounce: cfg.FocusDebounce,
		dataDebounce:  cfg.DataDebounce,
		minInterval:   cfg.MinInterval,
		now:           time.Now,
	}
	if s.focusDebounce <= 0 {
		s.focusDebounce = DefaultFocusDebounce
	}
	if s.dataDebounce <= 0 {
		s.dataDebounce = DefaultDataDebounce
	}
	if s.minInterval <= 0 {
		s.minInterval = DefaultMinInterval
	}

	if events != nil {
		s.unsubscribe = events.SubscribeDataMutated(s.OnDataMutated)
	}
	return s
}

// OnFocus registers an app-foreground trigger. Repeated triggers inside
// the focus debounce window collapse into a single dispatch.
func (s *Scheduler) OnFocus() {
	s.restartTimer(&s.focusTimer, s.focusDebounce)
}

// OnDataMutated registers a local-edit trigger for any kind. The kind is
// not carried into the dispatch: a pass always reconciles everything.
func (s *Scheduler) OnDataMutated(models.RecordKind) {
	s.restartTimer(&s.dataTimer, s.dataDebounce)
}

// Close stops pending timers and detaches from the event bus. Triggers
// after Close are ignored.
func (s *Scheduler) Close() {
	s.mu.Lock()
	s.closed = true
	if s.focusTimer != nil {
		s.focusTimer.Stop()
	}
	if s.dataTimer != nil {
		s.dataTimer.Stop()
	}
	unsubscribe := s.unsubscribe
	s.unsubscribe = nil
	s.mu.Unlock()

	if unsubscribe != nil {
		unsubscribe()
	}
}

// restartTimer arms (or re-arms) one debounce timer. Re-arming an already
// pending timer pushes the deadline out, which is what debouncing means.
func (s *Scheduler) restartTimer(timer **time.Timer, window time.Duration) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return
	}
	if *timer != nil {
		(*timer).Stop()
	}
	*timer = time.AfterFunc(window, s.fire)
}

// fire is the debounce-timer callback. It applies the global throttle,
// skips silently when no session is authenticated, and records the
// dispatch time before the pass runs so overlapping passes cannot start.
func (s *Scheduler) fire() {
	ctx := context.Background()

	token, err := s.tokens.Token(ctx)
	if err != nil {
		s.logger.Error().Err(err).Msg("scheduler: token lookup failed, pass skipped")
		return
	}
	if token == "" {
		s.logger.Debug().Msg("scheduler: no authenticated session, pass skipped")
		return
	}

	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return
	}
	now := s.now()
	if elapsed := now.Sub(s.lastDispatch); !s.lastDispatch.IsZero() && elapsed < s.minInterval {
		s.logger.Debug().Dur("elapsed", elapsed).Msg("scheduler: throttled")
		s.mu.Unlock()
		return
	}
	s.lastDispatch = now
	s.wg.Add(1)
	s.mu.Unlock()

	go func() {
		defer s.wg.Done()
		if err := s.syncService.PerformIncrementalSync(ctx); err != nil {
			s.logger.Error().Err(err).Msg("scheduled sync pass failed")
		}
	}()
}

package services

import (
	"context"
	"sync"
	"time"

	"github.com/rs/zerolog"
)

type sessionEntry struct {
	list     *TaskList
	lastSeen time.Time
	// attached counts open Attach calls; attached sessions are never swept.
	attached int
}

// SessionStore keeps one TaskList per browser session in memory.
type SessionStore struct {
	logger    zerolog.Logger
	idleTTL   time.Duration
	now       func() time.Time
	observers []Observer

	mu       sync.Mutex
	sessions map[string]*sessionEntry
}

var _ SessionService = (*SessionStore)(nil)

type SessionStoreOption func(*SessionStore)

func WithSessionClock(now func() time.Time) SessionStoreOption {
	return func(s *SessionStore) {
		s.now = now
	}
}

// WithObservers subscribes the given observers to every
// task list the store creates.
func WithObservers(observers ...Observer) SessionStoreOption {
	return func(s *SessionStore) {
		s.observers = append(s.observers, observers...)
	}
}

func NewSessionStore(
	logger zerolog.Logger,
	idleTTL time.Duration,
	opts ...SessionStoreOption,
) *SessionStore {
	s := &SessionStore{
		logger:   logger,
		idleTTL:  idleTTL,
		now:      time.Now,
		sessions: make(map[string]*sessionEntry),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *SessionStore) TaskList(sessionID string) TaskListController {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.entryLocked(sessionID).list
}

func (s *SessionStore) Attach(sessionID string) (TaskListController, func()) {
	s.mu.Lock()
	entry := s.entryLocked(sessionID)
	entry.attached++
	s.mu.Unlock()

	var once sync.Once
	detach := func() {
		once.Do(func() {
			s.mu.Lock()
			defer s.mu.Unlock()
			entry.attached--
			entry.lastSeen = s.now()
		})
	}
	return entry.list, detach
}

// entryLocked returns the session's entry, creating it on first use,
// and marks the session as seen.
func (s *SessionStore) entryLocked(sessionID string) *sessionEntry {
	now := s.now()
	if entry, ok := s.sessions[sessionID]; ok {
		entry.lastSeen = now
		return entry
	}

	logger := s.logger.With().
		Str("session_id", sessionID).
		Logger()
	list := NewTaskList(logger)
	for _, observer := range s.observers {
		observer := observer
		list.Subscribe(func(e Event) {
			e.SessionID = sessionID
			observer(e)
		})
	}

	entry := &sessionEntry{list: list, lastSeen: now}
	s.sessions[sessionID] = entry
	sessionsActive.Set(float64(len(s.sessions)))

	logger.Info().Msg("created session")
	return entry
}

// Len returns the number of live sessions.
func (s *SessionStore) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.sessions)
}

func (s *SessionStore) Sweep() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	swept := 0
	for id, entry := range s.sessions {
		if entry.attached == 0 && now.Sub(entry.lastSeen) > s.idleTTL {
			delete(s.sessions, id)
			swept++
		}
	}
	sessionsActive.Set(float64(len(s.sessions)))

	if swept > 0 {
		s.logger.Info().
			Int("swept", swept).
			Int("remaining", len(s.sessions)).
			Msg("swept idle sessions")
	}
	return swept
}

func (s *SessionStore) Run(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	s.logger.Info().
		Dur("interval", interval).
		Dur("idle_ttl", s.idleTTL).
		Msg("started session sweeper")
	for {
		select {
		case <-ctx.Done():
			s.logger.Info().Msg("stopped session sweeper")
			return
		case <-ticker.C:
			s.Sweep()
		}
	}
}

package server

import (
	"context"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"github.com/vango-dev/selectdemo/internal/gallery"
	"github.com/vango-dev/selectdemo/pkg/middleware"
)

// Session is one browser's gallery. The gallery is not safe for
// concurrent use, so every access goes through Do.
type Session struct {
	ID        string
	CreatedAt time.Time

	mu         sync.Mutex
	gallery    *gallery.Gallery
	flash      []map[string]any
	lastActive atomic.Int64 // unix nanos
}

// Do runs fn with exclusive access to the session's gallery.
func (s *Session) Do(fn func(g *gallery.Gallery)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.touch()
	fn(s.gallery)
}

// AddFlash queues notification details for the next page render.
func (s *Session) AddFlash(toasts ...map[string]any) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.flash = append(s.flash, toasts...)
}

// TakeFlash returns and clears the queued notifications.
func (s *Session) TakeFlash() []map[string]any {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := s.flash
	s.flash = nil
	return out
}

// LastActive returns when the session was last used.
func (s *Session) LastActive() time.Time {
	return time.Unix(0, s.lastActive.Load())
}

func (s *Session) touch() {
	s.lastActive.Store(time.Now().UnixNano())
}

// Store holds sessions in memory and evicts idle ones.
type Store struct {
	mu       sync.Mutex
	sessions map[string]*Session

	newGallery  func() *gallery.Gallery
	idleTimeout time.Duration
	logger      *slog.Logger
	metrics     *middleware.Metrics
}

// NewStore creates an empty store. newGallery builds the gallery of each
// new session.
func NewStore(newGallery func() *gallery.Gallery, idleTimeout time.Duration, logger *slog.Logger, m *middleware.Metrics) *Store {
	if logger == nil {
		logger = slog.Default()
	}
	return &Store{
		sessions:    make(map[string]*Session),
		newGallery:  newGallery,
		idleTimeout: idleTimeout,
		logger:      logger.With("component", "sessions"),
		metrics:     m,
	}
}

// Get returns the session with id, if present.
func (st *Store) Get(id string) (*Session, bool) {
	if id == "" {
		return nil, false
	}
	st.mu.Lock()
	defer st.mu.Unlock()
	s, ok := st.sessions[id]
	return s, ok
}

// Create starts a session with a fresh gallery.
func (st *Store) Create() *Session {
	s := &Session{
		ID:        uuid.NewString(),
		CreatedAt: time.Now(),
		gallery:   st.newGallery(),
	}
	s.touch()

	st.mu.Lock()
	st.sessions[s.ID] = s
	count := len(st.sessions)
	st.mu.Unlock()

	st.metrics.SessionOpened()
	st.logger.Debug("session created", "session_id", s.ID, "count", count)
	return s
}

// Len returns the number of sessions.
func (st *Store) Len() int {
	st.mu.Lock()
	defer st.mu.Unlock()
	return len(st.sessions)
}

// Sweep removes sessions idle since before now minus the idle timeout and
// returns how many were removed.
func (st *Store) Sweep(now time.Time) int {
	st.mu.Lock()
	var expired []string
	for id, s := range st.sessions {
		if now.Sub(s.LastActive()) > st.idleTimeout {
			expired = append(expired, id)
		}
	}
	for _, id := range expired {
		delete(st.sessions, id)
	}
	remaining := len(st.sessions)
	st.mu.Unlock()

	for range expired {
		st.metrics.SessionClosed()
	}
	if len(expired) > 0 {
		st.logger.Info("evicted idle sessions", "count", len(expired), "remaining", remaining)
	}
	return len(expired)
}

// Run sweeps idle sessions every interval until ctx is done.
func (st *Store) Run(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case now := <-ticker.C:
			st.Sweep(now)
		case <-ctx.Done():
			return
		}
	}
}

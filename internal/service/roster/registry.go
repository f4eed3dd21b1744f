package roster

import (
	"log/slog"
	"sync"
	"time"

	"github.com/cmlabs-hris/talent-dashboard-go/internal/domain/employee"
)

// Registry keeps one Session per signed-in user.
type Registry struct {
	mu       sync.RWMutex
	sessions map[string]*Session
	source   employee.EmployeeSource
	now      func() time.Time
}

func NewRegistry(source employee.EmployeeSource) *Registry {
	return &Registry{
		sessions: make(map[string]*Session),
		source:   source,
		now:      time.Now,
	}
}

// Get returns the session for key, creating it on first use.
func (r *Registry) Get(key string) *Session {
	now := r.now()

	r.mu.RLock()
	session, ok := r.sessions[key]
	r.mu.RUnlock()
	if ok {
		session.touch(now)
		return session
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if session, ok = r.sessions[key]; ok {
		session.touch(now)
		return session
	}
	session = NewSession(r.source)
	session.touch(now)
	r.sessions[key] = session
	slog.Debug("Roster session created", "session", key)
	return session
}

// Drop removes the session for key, if any.
func (r *Registry) Drop(key string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.sessions, key)
}

// SweepIdle removes sessions not accessed for longer than maxIdle and returns how many were removed.
func (r *Registry) SweepIdle(maxIdle time.Duration) int {
	cutoff := r.now().Add(-maxIdle)

	r.mu.Lock()
	defer r.mu.Unlock()

	removed := 0
	for key, session := range r.sessions {
		if session.IsLoading() {
			continue
		}
		if session.idleSince().Before(cutoff) {
			delete(r.sessions, key)
			removed++
		}
	}
	return removed
}

func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return len(r.sessions)
}

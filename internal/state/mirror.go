// Package state holds the in-memory mirror of the record store. The
// mirror is loaded once at startup, read by every consumer, and kept
// consistent by the services fanning each successful store mutation into
// the equivalent in-memory change. It is injected explicitly, never a
// package-level singleton.
package state

import (
	"context"
	"sync"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/openslp/trialtrack-backend/internal/store"
	"github.com/openslp/trialtrack-backend/internal/types"
)

// Mirror guards its snapshot with a RWMutex: the original design assumed
// a single-threaded event loop, but an HTTP server serves concurrent
// readers.
type Mirror struct {
	mu       sync.RWMutex
	clients  []types.Client
	goals    []types.Goal
	sessions []types.Session
	settings types.AppSettings
}

func NewMirror() *Mirror {
	return &Mirror{settings: types.DefaultSettings()}
}

// Reload discards the snapshot and reloads all four collections. The
// collections are independent documents, so the reads run concurrently.
func (m *Mirror) Reload(ctx context.Context, clients store.ClientStore, goals store.GoalStore, sessions store.SessionStore, settings store.SettingsStore) error {
	var (
		cl  []types.Client
		gl  []types.Goal
		sl  []types.Session
		set types.AppSettings
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) { cl, err = clients.GetAll(gctx); return })
	g.Go(func() (err error) { gl, err = goals.GetAll(gctx); return })
	g.Go(func() (err error) { sl, err = sessions.GetAll(gctx); return })
	g.Go(func() (err error) { set, err = settings.Get(gctx); return })
	if err := g.Wait(); err != nil {
		return err
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	m.clients = cl
	m.goals = gl
	m.sessions = sl
	m.settings = set
	return nil
}

// Clients returns a copy of the client snapshot.
func (m *Mirror) Clients() []types.Client {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]types.Client, len(m.clients))
	copy(out, m.clients)
	return out
}

// Goals returns a copy of the goal snapshot.
func (m *Mirror) Goals() []types.Goal {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]types.Goal, len(m.goals))
	copy(out, m.goals)
	return out
}

// Sessions returns a copy of the session snapshot.
func (m *Mirror) Sessions() []types.Session {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]types.Session, len(m.sessions))
	copy(out, m.sessions)
	return out
}

// Settings returns the settings snapshot.
func (m *Mirror) Settings() types.AppSettings {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.settings
}

// GoalByID looks a goal up in the snapshot; consumers must handle the
// absent case (dangling references are expected after deletes).
func (m *Mirror) GoalByID(id uuid.UUID) (types.Goal, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	for _, g := range m.goals {
		if g.ID == id {
			return g, true
		}
	}
	return types.Goal{}, false
}

// PutClient replaces the client with the same id or appends it.
func (m *Mirror) PutClient(c types.Client) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i := range m.clients {
		if m.clients[i].ID == c.ID {
			m.clients[i] = c
			return
		}
	}
	m.clients = append(m.clients, c)
}

// RemoveClient drops the client and, mirroring the store cascade, every
// goal and session that references it.
func (m *Mirror) RemoveClient(id uuid.UUID) {
	m.mu.Lock()
	defer m.mu.Unlock()
	clients := m.clients[:0]
	for _, c := range m.clients {
		if c.ID != id {
			clients = append(clients, c)
		}
	}
	m.clients = clients
	goals := m.goals[:0]
	for _, g := range m.goals {
		if g.ClientID != id {
			goals = append(goals, g)
		}
	}
	m.goals = goals
	sessions := m.sessions[:0]
	for _, s := range m.sessions {
		if s.ClientID != id {
			sessions = append(sessions, s)
		}
	}
	m.sessions = sessions
}

// PutGoal replaces the goal with the same id or appends it.
func (m *Mirror) PutGoal(g types.Goal) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i := range m.goals {
		if m.goals[i].ID == g.ID {
			m.goals[i] = g
			return
		}
	}
	m.goals = append(m.goals, g)
}

// RemoveGoal drops the goal. Sessions referencing it are left alone; the
// reference is weak.
func (m *Mirror) RemoveGoal(id uuid.UUID) {
	m.mu.Lock()
	defer m.mu.Unlock()
	goals := m.goals[:0]
	for _, g := range m.goals {
		if g.ID != id {
			goals = append(goals, g)
		}
	}
	m.goals = goals
}

// PutSession replaces the session with the same id or appends it.
func (m *Mirror) PutSession(s types.Session) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i := range m.sessions {
		if m.sessions[i].ID == s.ID {
			m.sessions[i] = s
			return
		}
	}
	m.sessions = append(m.sessions, s)
}

// RemoveSession drops the session.
func (m *Mirror) RemoveSession(id uuid.UUID) {
	m.mu.Lock()
	defer m.mu.Unlock()
	sessions := m.sessions[:0]
	for _, s := range m.sessions {
		if s.ID != id {
			sessions = append(sessions, s)
		}
	}
	m.sessions = sessions
}

// PutSettings replaces the settings snapshot.
func (m *Mirror) PutSettings(s types.AppSettings) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.settings = s
}

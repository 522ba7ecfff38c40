package store

import (
	"context"
	"sort"
	"sync"

	"github.com/google/uuid"

	"github.com/openslp/trialtrack-backend/internal/kv"
	apperr "github.com/openslp/trialtrack-backend/internal/pkg/errors"
	"github.com/openslp/trialtrack-backend/internal/pkg/logger"
	"github.com/openslp/trialtrack-backend/internal/types"
)

type SessionStore interface {
	GetAll(ctx context.Context) ([]types.Session, error)
	GetByID(ctx context.Context, id uuid.UUID) (*types.Session, error)
	// GetByClientID returns the client's sessions newest-first by date.
	GetByClientID(ctx context.Context, clientID uuid.UUID) ([]types.Session, error)
	// GetByGoalID returns sessions whose goal set contains the goal,
	// newest-first by date.
	GetByGoalID(ctx context.Context, goalID uuid.UUID) ([]types.Session, error)
	Save(ctx context.Context, session *types.Session) error
	Delete(ctx context.Context, id uuid.UUID) error
	DeleteByClientID(ctx context.Context, clientID uuid.UUID) (int, error)
}

type sessionStore struct {
	kv  kv.Store
	log *logger.Logger
	// mu serializes the read-modify-write cycle of every mutation.
	mu sync.Mutex
}

func NewSessionStore(kvs kv.Store, baseLog *logger.Logger) SessionStore {
	return &sessionStore{kv: kvs, log: baseLog.With("store", "SessionStore")}
}

func (ss *sessionStore) GetAll(ctx context.Context) ([]types.Session, error) {
	var sessions []types.Session
	if err := readDoc(ctx, ss.kv, ss.log, sessionsKey, &sessions); err != nil {
		return nil, err
	}
	return sessions, nil
}

func (ss *sessionStore) GetByID(ctx context.Context, id uuid.UUID) (*types.Session, error) {
	sessions, err := ss.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	for i := range sessions {
		if sessions[i].ID == id {
			return &sessions[i], nil
		}
	}
	return nil, apperr.ErrNotFound
}

func (ss *sessionStore) GetByClientID(ctx context.Context, clientID uuid.UUID) ([]types.Session, error) {
	sessions, err := ss.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	var out []types.Session
	for _, s := range sessions {
		if s.ClientID == clientID {
			out = append(out, s)
		}
	}
	sortNewestFirst(out)
	return out, nil
}

func (ss *sessionStore) GetByGoalID(ctx context.Context, goalID uuid.UUID) ([]types.Session, error) {
	sessions, err := ss.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	var out []types.Session
	for i := range sessions {
		if sessions[i].CoversGoal(goalID) {
			out = append(out, sessions[i])
		}
	}
	sortNewestFirst(out)
	return out, nil
}

func (ss *sessionStore) Save(ctx context.Context, session *types.Session) error {
	ss.mu.Lock()
	defer ss.mu.Unlock()
	sessions, err := ss.GetAll(ctx)
	if err != nil {
		return err
	}
	replaced := false
	for i := range sessions {
		if sessions[i].ID == session.ID {
			sessions[i] = *session
			replaced = true
			break
		}
	}
	if !replaced {
		sessions = append(sessions, *session)
	}
	return writeDoc(ctx, ss.kv, sessionsKey, sessions)
}

func (ss *sessionStore) Delete(ctx context.Context, id uuid.UUID) error {
	ss.mu.Lock()
	defer ss.mu.Unlock()
	sessions, err := ss.GetAll(ctx)
	if err != nil {
		return err
	}
	kept := sessions[:0]
	found := false
	for _, s := range sessions {
		if s.ID == id {
			found = true
			continue
		}
		kept = append(kept, s)
	}
	if !found {
		return apperr.ErrNotFound
	}
	return writeDoc(ctx, ss.kv, sessionsKey, kept)
}

func (ss *sessionStore) DeleteByClientID(ctx context.Context, clientID uuid.UUID) (int, error) {
	ss.mu.Lock()
	defer ss.mu.Unlock()
	sessions, err := ss.GetAll(ctx)
	if err != nil {
		return 0, err
	}
	kept := sessions[:0]
	removed := 0
	for _, s := range sessions {
		if s.ClientID == clientID {
			removed++
			continue
		}
		kept = append(kept, s)
	}
	if removed == 0 {
		return 0, nil
	}
	return removed, writeDoc(ctx, ss.kv, sessionsKey, kept)
}

func sortNewestFirst(sessions []types.Session) {
	sort.SliceStable(sessions, func(i, j int) bool {
		return sessions[i].Date.After(sessions[j].Date)
	})
}

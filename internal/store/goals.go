package store

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/openslp/trialtrack-backend/internal/kv"
	apperr "github.com/openslp/trialtrack-backend/internal/pkg/errors"
	"github.com/openslp/trialtrack-backend/internal/pkg/logger"
	"github.com/openslp/trialtrack-backend/internal/types"
)

type GoalStore interface {
	GetAll(ctx context.Context) ([]types.Goal, error)
	GetByID(ctx context.Context, id uuid.UUID) (*types.Goal, error)
	// GetByClientID returns the client's goals in insertion order.
	GetByClientID(ctx context.Context, clientID uuid.UUID) ([]types.Goal, error)
	GetActiveByClientID(ctx context.Context, clientID uuid.UUID) ([]types.Goal, error)
	Save(ctx context.Context, goal *types.Goal) error
	Delete(ctx context.Context, id uuid.UUID) error
	// DeleteByClientID removes every goal owned by the client and returns
	// how many were removed. Used by the client-delete cascade.
	DeleteByClientID(ctx context.Context, clientID uuid.UUID) (int, error)
}

type goalStore struct {
	kv  kv.Store
	log *logger.Logger
	// mu serializes the read-modify-write cycle of every mutation.
	mu sync.Mutex
}

func NewGoalStore(kvs kv.Store, baseLog *logger.Logger) GoalStore {
	return &goalStore{kv: kvs, log: baseLog.With("store", "GoalStore")}
}

func (gs *goalStore) GetAll(ctx context.Context) ([]types.Goal, error) {
	var goals []types.Goal
	if err := readDoc(ctx, gs.kv, gs.log, goalsKey, &goals); err != nil {
		return nil, err
	}
	return goals, nil
}

func (gs *goalStore) GetByID(ctx context.Context, id uuid.UUID) (*types.Goal, error) {
	goals, err := gs.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	for i := range goals {
		if goals[i].ID == id {
			return &goals[i], nil
		}
	}
	return nil, apperr.ErrNotFound
}

func (gs *goalStore) GetByClientID(ctx context.Context, clientID uuid.UUID) ([]types.Goal, error) {
	goals, err := gs.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	var out []types.Goal
	for _, g := range goals {
		if g.ClientID == clientID {
			out = append(out, g)
		}
	}
	return out, nil
}

func (gs *goalStore) GetActiveByClientID(ctx context.Context, clientID uuid.UUID) ([]types.Goal, error) {
	goals, err := gs.GetByClientID(ctx, clientID)
	if err != nil {
		return nil, err
	}
	var out []types.Goal
	for _, g := range goals {
		if g.Status == types.StatusActive {
			out = append(out, g)
		}
	}
	return out, nil
}

func (gs *goalStore) Save(ctx context.Context, goal *types.Goal) error {
	gs.mu.Lock()
	defer gs.mu.Unlock()
	goals, err := gs.GetAll(ctx)
	if err != nil {
		return err
	}
	replaced := false
	for i := range goals {
		if goals[i].ID == goal.ID {
			goal.UpdatedAt = time.Now().UTC()
			goals[i] = *goal
			replaced = true
			break
		}
	}
	if !replaced {
		goals = append(goals, *goal)
	}
	return writeDoc(ctx, gs.kv, goalsKey, goals)
}

func (gs *goalStore) Delete(ctx context.Context, id uuid.UUID) error {
	gs.mu.Lock()
	defer gs.mu.Unlock()
	goals, err := gs.GetAll(ctx)
	if err != nil {
		return err
	}
	kept := goals[:0]
	found := false
	for _, g := range goals {
		if g.ID == id {
			found = true
			continue
		}
		kept = append(kept, g)
	}
	if !found {
		return apperr.ErrNotFound
	}
	return writeDoc(ctx, gs.kv, goalsKey, kept)
}

func (gs *goalStore) DeleteByClientID(ctx context.Context, clientID uuid.UUID) (int, error) {
	gs.mu.Lock()
	defer gs.mu.Unlock()
	goals, err := gs.GetAll(ctx)
	if err != nil {
		return 0, err
	}
	kept := goals[:0]
	removed := 0
	for _, g := range goals {
		if g.ClientID == clientID {
			removed++
			continue
		}
		kept = append(kept, g)
	}
	if removed == 0 {
		return 0, nil
	}
	return removed, writeDoc(ctx, gs.kv, goalsKey, kept)
}

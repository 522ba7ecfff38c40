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

type ClientStore interface {
	GetAll(ctx context.Context) ([]types.Client, error)
	GetByID(ctx context.Context, id uuid.UUID) (*types.Client, error)
	// Save replaces the record with the same id in place (stamping
	// UpdatedAt) or appends when the id is new.
	Save(ctx context.Context, client *types.Client) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type clientStore struct {
	kv  kv.Store
	log *logger.Logger
	// mu serializes the read-modify-write cycle of every mutation; the
	// HTTP server runs each request on its own goroutine.
	mu sync.Mutex
}

func NewClientStore(kvs kv.Store, baseLog *logger.Logger) ClientStore {
	return &clientStore{kv: kvs, log: baseLog.With("store", "ClientStore")}
}

func (cs *clientStore) GetAll(ctx context.Context) ([]types.Client, error) {
	var clients []types.Client
	if err := readDoc(ctx, cs.kv, cs.log, clientsKey, &clients); err != nil {
		return nil, err
	}
	return clients, nil
}

func (cs *clientStore) GetByID(ctx context.Context, id uuid.UUID) (*types.Client, error) {
	clients, err := cs.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	for i := range clients {
		if clients[i].ID == id {
			return &clients[i], nil
		}
	}
	return nil, apperr.ErrNotFound
}

func (cs *clientStore) Save(ctx context.Context, client *types.Client) error {
	cs.mu.Lock()
	defer cs.mu.Unlock()
	clients, err := cs.GetAll(ctx)
	if err != nil {
		return err
	}
	replaced := false
	for i := range clients {
		if clients[i].ID == client.ID {
			client.UpdatedAt = time.Now().UTC()
			clients[i] = *client
			replaced = true
			break
		}
	}
	if !replaced {
		clients = append(clients, *client)
	}
	return writeDoc(ctx, cs.kv, clientsKey, clients)
}

func (cs *clientStore) Delete(ctx context.Context, id uuid.UUID) error {
	cs.mu.Lock()
	defer cs.mu.Unlock()
	clients, err := cs.GetAll(ctx)
	if err != nil {
		return err
	}
	kept := clients[:0]
	found := false
	for _, c := range clients {
		if c.ID == id {
			found = true
			continue
		}
		kept = append(kept, c)
	}
	if !found {
		return apperr.ErrNotFound
	}
	return writeDoc(ctx, cs.kv, clientsKey, kept)
}

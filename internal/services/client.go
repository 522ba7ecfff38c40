package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	apperr "github.com/openslp/trialtrack-backend/internal/pkg/errors"
	"github.com/openslp/trialtrack-backend/internal/pkg/logger"
	"github.com/openslp/trialtrack-backend/internal/state"
	"github.com/openslp/trialtrack-backend/internal/store"
	"github.com/openslp/trialtrack-backend/internal/types"
)

type ClientService interface {
	List(ctx context.Context) []types.Client
	Get(ctx context.Context, id uuid.UUID) (*types.Client, error)
	Create(ctx context.Context, client *types.Client) (*types.Client, error)
	Update(ctx context.Context, client *types.Client) (*types.Client, error)
	// Delete removes the client and cascades to its goals and sessions.
	// The three collection writes are separate; an interruption can leave
	// orphans, which the reconcile pass cleans up.
	Delete(ctx context.Context, id uuid.UUID) error
}

type clientService struct {
	log      *logger.Logger
	clients  store.ClientStore
	goals    store.GoalStore
	sessions store.SessionStore
	mirror   *state.Mirror
}

func NewClientService(log *logger.Logger, clients store.ClientStore, goals store.GoalStore, sessions store.SessionStore, mirror *state.Mirror) ClientService {
	return &clientService{
		log:      log.With("service", "ClientService"),
		clients:  clients,
		goals:    goals,
		sessions: sessions,
		mirror:   mirror,
	}
}

func (cs *clientService) List(_ context.Context) []types.Client {
	return cs.mirror.Clients()
}

func (cs *clientService) Get(ctx context.Context, id uuid.UUID) (*types.Client, error) {
	return cs.clients.GetByID(ctx, id)
}

func (cs *clientService) Create(ctx context.Context, client *types.Client) (*types.Client, error) {
	if strings.TrimSpace(client.FirstName) == "" {
		return nil, fmt.Errorf("%w: first name is required", apperr.ErrInvalidArgument)
	}
	if client.ID == uuid.Nil {
		client.ID = uuid.New()
	}
	now := time.Now().UTC()
	client.CreatedAt = now
	client.UpdatedAt = now
	client.IsActive = true
	if err := cs.clients.Save(ctx, client); err != nil {
		return nil, err
	}
	cs.mirror.PutClient(*client)
	cs.log.Info("client created", "client_id", client.ID)
	return client, nil
}

func (cs *clientService) Update(ctx context.Context, client *types.Client) (*types.Client, error) {
	if strings.TrimSpace(client.FirstName) == "" {
		return nil, fmt.Errorf("%w: first name is required", apperr.ErrInvalidArgument)
	}
	existing, err := cs.clients.GetByID(ctx, client.ID)
	if err != nil {
		return nil, err
	}
	client.CreatedAt = existing.CreatedAt
	if err := cs.clients.Save(ctx, client); err != nil {
		return nil, err
	}
	cs.mirror.PutClient(*client)
	return client, nil
}

func (cs *clientService) Delete(ctx context.Context, id uuid.UUID) error {
	if err := cs.clients.Delete(ctx, id); err != nil {
		return err
	}
	goalCount, err := cs.goals.DeleteByClientID(ctx, id)
	if err != nil {
		return err
	}
	sessionCount, err := cs.sessions.DeleteByClientID(ctx, id)
	if err != nil {
		return err
	}
	cs.mirror.RemoveClient(id)
	cs.log.Info("client deleted", "client_id", id, "goals_removed", goalCount, "sessions_removed", sessionCount)
	return nil
}

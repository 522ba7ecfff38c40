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
	"github.com/openslp/trialtrack-backend/internal/stats"
	"github.com/openslp/trialtrack-backend/internal/store"
	"github.com/openslp/trialtrack-backend/internal/types"
)

type SessionService interface {
	ListByClient(ctx context.Context, clientID uuid.UUID) ([]types.Session, error)
	ListByGoal(ctx context.Context, goalID uuid.UUID) ([]types.Session, error)
	Get(ctx context.Context, id uuid.UUID) (*types.Session, error)
	// Record persists a completed session and then folds each worked
	// goal's trial accuracy into the goal's stored accuracy. Trials arrive
	// with placeholder session ids and are rewritten to the real id. An id
	// that is already recorded is rejected; sessions are append-only.
	Record(ctx context.Context, session *types.Session) (*types.Session, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type sessionService struct {
	log      *logger.Logger
	sessions store.SessionStore
	clients  store.ClientStore
	goals    GoalService
	mirror   *state.Mirror
}

func NewSessionService(log *logger.Logger, sessions store.SessionStore, clients store.ClientStore, goals GoalService, mirror *state.Mirror) SessionService {
	return &sessionService{
		log:      log.With("service", "SessionService"),
		sessions: sessions,
		clients:  clients,
		goals:    goals,
		mirror:   mirror,
	}
}

func (ss *sessionService) ListByClient(ctx context.Context, clientID uuid.UUID) ([]types.Session, error) {
	return ss.sessions.GetByClientID(ctx, clientID)
}

func (ss *sessionService) ListByGoal(ctx context.Context, goalID uuid.UUID) ([]types.Session, error) {
	return ss.sessions.GetByGoalID(ctx, goalID)
}

func (ss *sessionService) Get(ctx context.Context, id uuid.UUID) (*types.Session, error) {
	return ss.sessions.GetByID(ctx, id)
}

func (ss *sessionService) Record(ctx context.Context, session *types.Session) (*types.Session, error) {
	if _, err := ss.clients.GetByID(ctx, session.ClientID); err != nil {
		return nil, fmt.Errorf("%w: client %s does not exist", apperr.ErrInvalidArgument, session.ClientID)
	}
	if session.Duration <= 0 {
		return nil, fmt.Errorf("%w: duration must be positive", apperr.ErrInvalidArgument)
	}
	if len(session.GoalIDs) == 0 {
		return nil, fmt.Errorf("%w: a session must cover at least one goal", apperr.ErrInvalidArgument)
	}
	if session.ID == uuid.Nil {
		session.ID = uuid.New()
	} else {
		// Sessions are append-only. A replayed id must not amend the
		// stored record or fold its accuracy into the goals twice.
		switch _, err := ss.sessions.GetByID(ctx, session.ID); {
		case err == nil:
			return nil, fmt.Errorf("%w: session %s is already recorded", apperr.ErrInvalidArgument, session.ID)
		case !apperr.Is(err, apperr.ErrNotFound):
			return nil, err
		}
	}
	now := time.Now().UTC()
	if session.Date.IsZero() {
		session.Date = now
	}
	session.CreatedAt = now

	for i := range session.Trials {
		t := &session.Trials[i]
		if !session.CoversGoal(t.GoalID) {
			return nil, fmt.Errorf("%w: trial %d targets goal %s outside the session's goal set", apperr.ErrInvalidArgument, i, t.GoalID)
		}
		if !t.Response.Valid() {
			return nil, fmt.Errorf("%w: trial %d has unknown response %q", apperr.ErrInvalidArgument, i, t.Response)
		}
		if !t.CueLevel.Valid() {
			return nil, fmt.Errorf("%w: trial %d has unknown cue level %q", apperr.ErrInvalidArgument, i, t.CueLevel)
		}
		if t.ID == uuid.Nil {
			t.ID = uuid.New()
		}
		t.SessionID = session.ID
		if strings.TrimSpace(t.Prompt) == "" {
			t.Prompt = fmt.Sprintf("Trial %d", i+1)
		}
		if t.Timestamp.IsZero() {
			t.Timestamp = now
		}
	}

	if err := ss.sessions.Save(ctx, session); err != nil {
		return nil, err
	}
	ss.mirror.PutSession(*session)
	ss.log.Info("session recorded", "session_id", session.ID, "client_id", session.ClientID, "trials", len(session.Trials))

	// Accuracy updates happen only after the session document is durably
	// saved, once per goal. Goals listed on the session with no trials are
	// skipped so an untouched goal's accuracy is not halved toward zero.
	for _, goalID := range session.GoalIDs {
		goalTrials := session.TrialsForGoal(goalID)
		if len(goalTrials) == 0 {
			continue
		}
		sessionStats := stats.ComputeStats(goalTrials)
		if _, err := ss.goals.ApplySessionAccuracy(ctx, goalID, sessionStats.Accuracy); err != nil {
			ss.log.Warn("goal accuracy update failed", "goal_id", goalID, "error", err)
		}
	}

	return session, nil
}

func (ss *sessionService) Delete(ctx context.Context, id uuid.UUID) error {
	if err := ss.sessions.Delete(ctx, id); err != nil {
		return err
	}
	ss.mirror.RemoveSession(id)
	return nil
}

package types

import (
	"time"

	"github.com/google/uuid"
)

// Session is one therapy encounter for a client, covering one or more
// goals. Once recorded it is append-only reporting data: it may be
// deleted wholesale but never partially amended.
type Session struct {
	ID        uuid.UUID   `json:"id"`
	ClientID  uuid.UUID   `json:"client_id"`
	Date      time.Time   `json:"date"`
	Duration  int         `json:"duration"`
	Notes     string      `json:"notes,omitempty"`
	GoalIDs   []uuid.UUID `json:"goal_ids"`
	Trials    []Trial     `json:"trials"`
	CreatedAt time.Time   `json:"created_at"`
}

// CoversGoal reports whether the goal is in the session's goal set.
func (s *Session) CoversGoal(goalID uuid.UUID) bool {
	for _, id := range s.GoalIDs {
		if id == goalID {
			return true
		}
	}
	return false
}

// TrialsForGoal returns the session's trials attributed to the goal, in
// recorded order.
func (s *Session) TrialsForGoal(goalID uuid.UUID) []Trial {
	var out []Trial
	for _, t := range s.Trials {
		if t.GoalID == goalID {
			out = append(out, t)
		}
	}
	return out
}

package types

import (
	"time"

	"github.com/google/uuid"
)

// ResponseType is the recorded outcome of a single trial.
type ResponseType string

const (
	ResponseCorrect       ResponseType = "correct"
	ResponseIncorrect     ResponseType = "incorrect"
	ResponseApproximation ResponseType = "approximation"
	ResponseNoResponse    ResponseType = "no_response"
)

// Valid returns true when the response is a supported value.
func (r ResponseType) Valid() bool {
	switch r {
	case ResponseCorrect, ResponseIncorrect, ResponseApproximation, ResponseNoResponse:
		return true
	default:
		return false
	}
}

// CueLevel is the degree of prompting given before a trial, ordered from
// fully independent to full physical assistance.
type CueLevel string

const (
	CueIndependent     CueLevel = "independent"
	CueVerbal          CueLevel = "verbal_cue"
	CueVisual          CueLevel = "visual_cue"
	CueModel           CueLevel = "model"
	CuePartialPhysical CueLevel = "partial_physical"
	CueFullPhysical    CueLevel = "full_physical"
)

// Valid returns true when the cue level is a supported value.
func (c CueLevel) Valid() bool {
	switch c {
	case CueIndependent, CueVerbal, CueVisual, CueModel, CuePartialPhysical, CueFullPhysical:
		return true
	default:
		return false
	}
}

// Trial is one recorded stimulus/response event inside a session,
// attributed to a goal. The goal reference is weak: deleting a goal
// leaves historical trials in place.
type Trial struct {
	ID        uuid.UUID    `json:"id"`
	SessionID uuid.UUID    `json:"session_id"`
	GoalID    uuid.UUID    `json:"goal_id"`
	Prompt    string       `json:"prompt"`
	Response  ResponseType `json:"response"`
	CueLevel  CueLevel     `json:"cue_level"`
	Notes     string       `json:"notes,omitempty"`
	Timestamp time.Time    `json:"timestamp"`
}

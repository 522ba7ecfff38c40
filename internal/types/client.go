package types

import (
	"time"

	"github.com/google/uuid"
)

// Client is a person receiving therapy. Deleting a client cascades to the
// goals and sessions that reference it.
type Client struct {
	ID          uuid.UUID `json:"id"`
	FirstName   string    `json:"first_name"`
	LastName    string    `json:"last_name"`
	DateOfBirth time.Time `json:"date_of_birth"`
	Diagnosis   string    `json:"diagnosis,omitempty"`
	Notes       string    `json:"notes,omitempty"`
	IsActive    bool      `json:"is_active"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

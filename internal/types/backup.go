package types

import "time"

// Backup is the whole-store document exchanged at the system boundary.
// Collections are pointers so an import can tell a missing key (left
// untouched) from an explicitly empty one (overwritten with empty).
type Backup struct {
	ExportDate time.Time    `json:"exportDate"`
	Clients    *[]Client    `json:"clients,omitempty"`
	Goals      *[]Goal      `json:"goals,omitempty"`
	Sessions   *[]Session   `json:"sessions,omitempty"`
	Settings   *AppSettings `json:"settings,omitempty"`
}

// Package reports holds the client-side view of municipal issue reports:
// the wire type, submission validation, and the filtering/aggregation used
// by the tracking commands.
package reports

import "strings"

// Report statuses as used by the tracking views. The backend writes
// "Pending" on creation; Normalize folds that into StatusSubmitted.
const (
	StatusSubmitted  = "submitted"
	StatusAssigned   = "assigned"
	StatusInProgress = "in_progress"
	StatusResolved   = "resolved"
)

// Urgency levels accepted by the backend.
const (
	UrgencyHigh   = "High"
	UrgencyMedium = "Medium"
	UrgencyLow    = "Low"
)

// Report is an issue report as returned by the backend. CreatedAt is kept as
// the backend's timestamp string; the CLI only displays it.
type Report struct {
	ID              int     `json:"id"`
	Title           string  `json:"title"`
	Description     string  `json:"description"`
	UrgencyLevel    string  `json:"urgency_level"`
	Status          string  `json:"status"`
	Department      string  `json:"department"`
	LocationLat     float64 `json:"location_lat"`
	LocationLong    float64 `json:"location_long"`
	LocationAddress string  `json:"location_address"`
	CreatedAt       string  `json:"created_at"`
}

// Normalize maps a backend status value onto the canonical lowercase set.
func Normalize(status string) string {
	s := strings.ToLower(strings.TrimSpace(status))
	switch s {
	case "pending":
		return StatusSubmitted
	case "in progress":
		return StatusInProgress
	default:
		return s
	}
}

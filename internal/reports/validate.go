package reports

import (
	"fmt"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// Submission is a new issue report as sent to the backend. The validation
// rules mirror what the backend enforces server-side, so obviously bad input
// fails before a network round trip.
type Submission struct {
	UserName        string  `json:"user_name" validate:"required,min=2"`
	UserMobile      string  `json:"user_mobile" validate:"required,len=10,numeric"`
	UserEmail       string  `json:"user_email,omitempty" validate:"omitempty,email"`
	UrgencyLevel    string  `json:"urgency_level" validate:"required,oneof=High Medium Low"`
	Title           string  `json:"title" validate:"required,min=5"`
	Description     string  `json:"description" validate:"required,min=10"`
	LocationLat     float64 `json:"location_lat" validate:"required,latitude"`
	LocationLong    float64 `json:"location_long" validate:"required,longitude"`
	LocationAddress string  `json:"location_address,omitempty"`
	Department      string  `json:"department,omitempty"`
}

// Validate checks the submission against the backend's rules.
func (s *Submission) Validate() error {
	if err := validate.Struct(s); err != nil {
		return fmt.Errorf("invalid report: %w", err)
	}
	return nil
}

package session

import (
	"errors"
	"strings"
	"time"
)

// Business rule constants
const (
	TypeRegular  = "regular"
	TypeTraining = "training"
	TypeEvent    = "event"

	StatusScheduled  = "scheduled"
	StatusInProgress = "in-progress"
	StatusCompleted  = "completed"
	StatusCancelled  = "cancelled"

	DefaultMaxCapacity = 50
)

// ValidStatuses contains all valid session status values.
var ValidStatuses = []string{StatusScheduled, StatusInProgress, StatusCompleted, StatusCancelled}

// Domain errors
var (
	ErrEmptyName     = errors.New("session name cannot be empty")
	ErrInvalidDate   = errors.New("session date must be YYYY-MM-DD")
	ErrEmptyTime     = errors.New("session time cannot be empty")
	ErrInvalidStatus = errors.New("status must be 'scheduled', 'in-progress', 'completed', or 'cancelled'")
)

// Session holds state for a scheduled rink session: a class or event
// occurrence members can be marked against.
type Session struct {
	ID          string
	Name        string
	Date        string // YYYY-MM-DD
	Time        string // HH:MM wall clock
	Type        string
	Instructor  string
	Description string
	MaxCapacity int
	Status      string
	CreatedAt   time.Time
}

// Validate checks if the Session has valid data.
// PRE: Session struct is initialized
// POST: Returns error if validation fails, nil otherwise
// INVARIANT: Date parses as a calendar date, Status is one of ValidStatuses
func (s *Session) Validate() error {
	if strings.TrimSpace(s.Name) == "" {
		return ErrEmptyName
	}
	if _, err := time.Parse("2006-01-02", s.Date); err != nil {
		return ErrInvalidDate
	}
	if strings.TrimSpace(s.Time) == "" {
		return ErrEmptyTime
	}
	valid := false
	for _, st := range ValidStatuses {
		if s.Status == st {
			valid = true
			break
		}
	}
	if !valid {
		return ErrInvalidStatus
	}
	if s.MaxCapacity <= 0 {
		return errors.New("max capacity must be positive")
	}
	return nil
}

// IsUpcoming returns true if the session's date is on or after today.
// Dates are compared lexically; both are YYYY-MM-DD.
func (s *Session) IsUpcoming(today string) bool {
	return s.Date >= today
}

// IsCancelled returns true if the session has been cancelled.
// INVARIANT: Status field is not mutated
func (s *Session) IsCancelled() bool {
	return s.Status == StatusCancelled
}

package orchestrators

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"rinkside/internal/domain/session"

	"github.com/google/uuid"
)

// SessionStore defines the session persistence interface used by the
// scheduling orchestrators.
type SessionStore interface {
	GetByID(ctx context.Context, id string) (session.Session, error)
	Save(ctx context.Context, s session.Session) error
	Delete(ctx context.Context, id string) error
}

// AttendanceCascadeStore removes a session's attendance records ahead of
// deleting the session itself.
type AttendanceCascadeStore interface {
	DeleteBySessionID(ctx context.Context, sessionID string) (int, error)
}

// CreateSessionInput carries input for session creation.
type CreateSessionInput struct {
	Name        string
	Date        string // YYYY-MM-DD
	Time        string // HH:MM
	Type        string
	Instructor  string
	Description string
	MaxCapacity int // 0 means the default capacity
}

// CreateSessionResult carries the newly created session.
type CreateSessionResult struct {
	Session session.Session
}

// CreateSessionDeps holds dependencies for CreateSession.
type CreateSessionDeps struct {
	SessionStore SessionStore
	Now          func() time.Time
	GenerateID   func() string
}

// ExecuteCreateSession validates and persists a new skating session.
// PRE: Name, Date and Time are provided
// POST: Session persisted with status scheduled
func ExecuteCreateSession(ctx context.Context, input CreateSessionInput, deps CreateSessionDeps) (CreateSessionResult, error) {
	now := time.Now
	if deps.Now != nil {
		now = deps.Now
	}
	generateID := uuid.NewString
	if deps.GenerateID != nil {
		generateID = deps.GenerateID
	}

	capacity := input.MaxCapacity
	if capacity == 0 {
		capacity = session.DefaultMaxCapacity
	}
	sessionType := input.Type
	if sessionType == "" {
		sessionType = session.TypeRegular
	}

	s := session.Session{
		ID:          generateID(),
		Name:        strings.TrimSpace(input.Name),
		Date:        input.Date,
		Time:        input.Time,
		Type:        sessionType,
		Instructor:  strings.TrimSpace(input.Instructor),
		Description: input.Description,
		MaxCapacity: capacity,
		Status:      session.StatusScheduled,
		CreatedAt:   now(),
	}
	if err := s.Validate(); err != nil {
		return CreateSessionResult{}, err
	}

	if err := deps.SessionStore.Save(ctx, s); err != nil {
		return CreateSessionResult{}, err
	}

	slog.Info("session_event", "event", "created", "session_id", s.ID, "date", s.Date, "type", s.Type)
	return CreateSessionResult{Session: s}, nil
}

// UpdateSessionInput carries the partial update for one session. Nil pointer
// fields are left unchanged.
type UpdateSessionInput struct {
	SessionID   string
	Name        *string
	Date        *string
	Time        *string
	Type        *string
	Instructor  *string
	Description *string
	MaxCapacity *int
	Status      *string
}

// UpdateSessionDeps holds dependencies for UpdateSession.
type UpdateSessionDeps struct {
	SessionStore SessionStore
}

// ExecuteUpdateSession merges the provided fields into an existing session.
// PRE: SessionID refers to an existing session
// POST: Only the provided fields change; ID and CreatedAt survive
func ExecuteUpdateSession(ctx context.Context, input UpdateSessionInput, deps UpdateSessionDeps) (session.Session, error) {
	s, err := deps.SessionStore.GetByID(ctx, input.SessionID)
	if err != nil {
		return session.Session{}, err
	}

	if input.Name != nil {
		s.Name = strings.TrimSpace(*input.Name)
	}
	if input.Date != nil {
		s.Date = *input.Date
	}
	if input.Time != nil {
		s.Time = *input.Time
	}
	if input.Type != nil {
		s.Type = *input.Type
	}
	if input.Instructor != nil {
		s.Instructor = strings.TrimSpace(*input.Instructor)
	}
	if input.Description != nil {
		s.Description = *input.Description
	}
	if input.MaxCapacity != nil {
		s.MaxCapacity = *input.MaxCapacity
	}
	if input.Status != nil {
		s.Status = *input.Status
	}

	if err := s.Validate(); err != nil {
		return session.Session{}, err
	}
	if err := deps.SessionStore.Save(ctx, s); err != nil {
		return session.Session{}, err
	}

	slog.Info("session_event", "event", "updated", "session_id", s.ID)
	return s, nil
}

// DeleteSessionInput identifies the session to remove.
type DeleteSessionInput struct {
	SessionID string
}

// DeleteSessionDeps holds dependencies for DeleteSession.
type DeleteSessionDeps struct {
	SessionStore    SessionStore
	AttendanceStore AttendanceCascadeStore
}

// ExecuteDeleteSession removes a session and its attendance records.
// Attendance goes first: a failure between the two steps leaves a session
// with no records, never records with no session.
// PRE: SessionID refers to an existing session
// POST: Session and all its attendance records are gone
func ExecuteDeleteSession(ctx context.Context, input DeleteSessionInput, deps DeleteSessionDeps) error {
	if _, err := deps.SessionStore.GetByID(ctx, input.SessionID); err != nil {
		return err
	}

	removed, err := deps.AttendanceStore.DeleteBySessionID(ctx, input.SessionID)
	if err != nil {
		return err
	}
	if err := deps.SessionStore.Delete(ctx, input.SessionID); err != nil {
		return err
	}

	slog.Info("session_event", "event", "deleted", "session_id", input.SessionID, "attendance_removed", removed)
	return nil
}

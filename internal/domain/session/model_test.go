package session_test

import (
	"testing"

	"rinkside/internal/domain/session"
)

// TestSessionValidation tests validation of Session.
func TestSessionValidation(t *testing.T) {
	valid := session.Session{
		ID:          "s1",
		Name:        "Friday Night Skate",
		Date:        "2024-06-01",
		Time:        "19:00",
		Type:        session.TypeRegular,
		MaxCapacity: session.DefaultMaxCapacity,
		Status:      session.StatusScheduled,
	}

	tests := []struct {
		name    string
		mutate  func(s *session.Session)
		wantErr bool
	}{
		{name: "valid session", mutate: func(s *session.Session) {}, wantErr: false},
		{name: "empty name", mutate: func(s *session.Session) { s.Name = " " }, wantErr: true},
		{name: "bad date", mutate: func(s *session.Session) { s.Date = "01/06/2024" }, wantErr: true},
		{name: "empty date", mutate: func(s *session.Session) { s.Date = "" }, wantErr: true},
		{name: "empty time", mutate: func(s *session.Session) { s.Time = "" }, wantErr: true},
		{name: "bad status", mutate: func(s *session.Session) { s.Status = "paused" }, wantErr: true},
		{name: "zero capacity", mutate: func(s *session.Session) { s.MaxCapacity = 0 }, wantErr: true},
		{name: "cancelled is valid", mutate: func(s *session.Session) { s.Status = session.StatusCancelled }, wantErr: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := valid
			tt.mutate(&s)
			err := s.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

// TestIsUpcoming verifies the date comparison against today.
func TestIsUpcoming(t *testing.T) {
	s := session.Session{Date: "2024-06-15"}

	if !s.IsUpcoming("2024-06-15") {
		t.Error("session on today's date should be upcoming")
	}
	if !s.IsUpcoming("2024-06-01") {
		t.Error("future session should be upcoming")
	}
	if s.IsUpcoming("2024-07-01") {
		t.Error("past session should not be upcoming")
	}
}

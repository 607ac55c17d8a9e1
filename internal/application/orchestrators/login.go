package orchestrators

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"rinkside/internal/domain/member"
)

// MemberStoreForLogin defines the store interface needed by Login.
type MemberStoreForLogin interface {
	GetByEmail(ctx context.Context, email string) (member.Member, error)
}

// LoginInput carries input for the login orchestrator.
type LoginInput struct {
	Email    string
	Password string
}

// LoginResult carries the result of a successful login.
type LoginResult struct {
	MemberID  string
	Name      string
	Email     string
	Role      string
	DebugMode bool
}

// LoginDeps holds dependencies for Login.
type LoginDeps struct {
	MemberStore MemberStoreForLogin
}

var ErrInvalidCredentials = errors.New("invalid email or password")

// ExecuteLogin validates credentials and returns member info for session creation.
// The built-in demo accounts live in the member store like everyone else, so
// one lookup path covers both.
// PRE: Valid email and password provided
// POST: Returns member info on success; debug role enables the diagnostics panel
func ExecuteLogin(ctx context.Context, input LoginInput, deps LoginDeps) (LoginResult, error) {
	email := strings.TrimSpace(strings.ToLower(input.Email))
	if email == "" || input.Password == "" {
		return LoginResult{}, ErrInvalidCredentials
	}

	m, err := deps.MemberStore.GetByEmail(ctx, email)
	if err != nil {
		slog.Info("auth_event", "event", "login_failed", "email", email, "reason", "not_found")
		return LoginResult{}, ErrInvalidCredentials
	}

	if err := m.CheckPassword(input.Password); err != nil {
		slog.Info("auth_event", "event", "login_failed", "email", email, "reason", "wrong_password")
		return LoginResult{}, ErrInvalidCredentials
	}

	slog.Info("auth_event", "event", "login_success", "member_id", m.ID, "email", m.Email, "role", m.Role)
	return LoginResult{
		MemberID:  m.ID,
		Name:      m.Name,
		Email:     m.Email,
		Role:      m.Role,
		DebugMode: m.Role == member.RoleDebug,
	}, nil
}

package member

import (
	"errors"
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"
)

// Max length constants for user-editable fields.
const (
	MaxNameLength  = 100
	MaxEmailLength = 254
)

// Role constants
const (
	RoleMember = "member"
	RoleAdmin  = "admin"
	RoleDebug  = "debug"
)

// Payment status constants
const (
	PaymentPending = "pending"
	PaymentPaid    = "paid"
)

// DefaultPassword is the shared fallback password for members registered
// without one. Kept for compatibility with existing accounts.
const DefaultPassword = "password"

// ValidRoles contains all valid role values.
var ValidRoles = []string{RoleMember, RoleAdmin, RoleDebug}

// Domain errors
var (
	ErrEmptyName     = errors.New("member name cannot be empty")
	ErrInvalidEmail  = errors.New("member email must contain '@'")
	ErrInvalidRole   = errors.New("role must be one of: member, admin, debug")
	ErrInvalidStatus = errors.New("payment status must be 'pending' or 'paid'")
	ErrWrongPassword = errors.New("incorrect password")
)

// Member holds state for the Member concept: a registered skater with a
// monthly membership fee.
type Member struct {
	ID            string
	Name          string
	Email         string
	Phone         string
	Role          string
	PaymentStatus string
	PasswordHash  string `json:"-"` // never serialized; empty means the shared default password applies
	RegisteredAt  time.Time
	LastPaymentAt time.Time // zero until the first successful payment
}

// Validate checks if the Member has valid data.
// PRE: Member struct is initialized
// POST: Returns error if validation fails, nil otherwise
// INVARIANT: Email must contain '@', Name must not be empty
func (m *Member) Validate() error {
	if strings.TrimSpace(m.Name) == "" {
		return ErrEmptyName
	}
	if len(m.Name) > MaxNameLength {
		return errors.New("member name cannot exceed 100 characters")
	}
	if !strings.Contains(m.Email, "@") {
		return ErrInvalidEmail
	}
	if len(m.Email) > MaxEmailLength {
		return errors.New("member email cannot exceed 254 characters")
	}
	valid := false
	for _, r := range ValidRoles {
		if m.Role == r {
			valid = true
			break
		}
	}
	if !valid {
		return ErrInvalidRole
	}
	if m.PaymentStatus != PaymentPending && m.PaymentStatus != PaymentPaid {
		return ErrInvalidStatus
	}
	return nil
}

// SetPassword hashes and stores the given password.
// PRE: password is non-empty
// POST: PasswordHash contains a bcrypt hash of password
func (m *Member) SetPassword(password string) error {
	if password == "" {
		return errors.New("password cannot be empty")
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	m.PasswordHash = string(hash)
	return nil
}

// CheckPassword verifies the given password against the stored hash.
// Members without a stored hash fall back to the shared default password.
// PRE: Member is initialized
// POST: Returns nil on match, ErrWrongPassword otherwise
func (m *Member) CheckPassword(password string) error {
	if m.PasswordHash == "" {
		if password == DefaultPassword {
			return nil
		}
		return ErrWrongPassword
	}
	if err := bcrypt.CompareHashAndPassword([]byte(m.PasswordHash), []byte(password)); err != nil {
		return ErrWrongPassword
	}
	return nil
}

// IsPaid returns true if the member's current billing period is paid.
// INVARIANT: PaymentStatus field is not mutated
func (m *Member) IsPaid() bool {
	return m.PaymentStatus == PaymentPaid
}

// IsAdmin returns true for accounts with administrative access.
// The debug role carries admin rights plus the diagnostics panel.
func (m *Member) IsAdmin() bool {
	return m.Role == RoleAdmin || m.Role == RoleDebug
}

package payment

import (
	"errors"
	"time"
)

// Payment status constants. Only completed transactions are recorded;
// declined attempts never produce a Payment.
const (
	StatusCompleted = "completed"
)

// MethodSimulated is the payment method label used by the simulated gateway.
const MethodSimulated = "Google Pay"

// Domain errors
var (
	ErrEmptyMember   = errors.New("payment must reference a member")
	ErrInvalidAmount = errors.New("payment amount must be positive")
	ErrInvalidMonth  = errors.New("billing month must be 1-12")
)

// Payment is one completed membership-fee transaction. Member name and
// email are denormalized snapshots taken at payment time; records are
// immutable once created.
type Payment struct {
	ID            string
	MemberID      string
	MemberName    string
	MemberEmail   string
	AmountCents   int64
	Description   string
	Status        string
	Method        string
	TransactionID string
	PaidAt        time.Time
	Month         int // billing month, 1-12
	Year          int
}

// Validate checks if the Payment has valid data.
// PRE: Payment struct is initialized
// POST: Returns error if validation fails, nil otherwise
func (p *Payment) Validate() error {
	if p.MemberID == "" {
		return ErrEmptyMember
	}
	if p.AmountCents <= 0 {
		return ErrInvalidAmount
	}
	if p.Month < 1 || p.Month > 12 {
		return ErrInvalidMonth
	}
	if p.Status != StatusCompleted {
		return errors.New("recorded payments must have status 'completed'")
	}
	if p.TransactionID == "" {
		return errors.New("payment must carry a transaction id")
	}
	return nil
}

// AmountDollars returns the amount as a decimal dollar value for display.
func (p *Payment) AmountDollars() float64 {
	return float64(p.AmountCents) / 100
}

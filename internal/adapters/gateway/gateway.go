// Package gateway abstracts the external card processor. The production
// deployment would swap in a real processor client; the simulated gateway
// reproduces its timing and decline behavior for development.
package gateway

import "context"

// ChargeRequest describes one payment attempt.
type ChargeRequest struct {
	MemberID    string
	AmountCents int64
	Description string
}

// ChargeResult is the processor's answer. Authorized=false is a decline,
// not an error: errors are reserved for transport or processor failures.
type ChargeResult struct {
	Authorized    bool
	TransactionID string
	DeclineReason string
}

// Gateway charges a member's payment method.
type Gateway interface {
	Charge(ctx context.Context, req ChargeRequest) (ChargeResult, error)
}

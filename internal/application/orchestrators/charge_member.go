package orchestrators

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"rinkside/internal/adapters/email"
	"rinkside/internal/adapters/gateway"
	"rinkside/internal/domain/payment"

	"github.com/google/uuid"
)

// PaymentStore defines the payment persistence interface used by the billing
// orchestrators.
type PaymentStore interface {
	RecordCompleted(ctx context.Context, p payment.Payment) error
}

// ChargeMemberInput carries input for one membership charge.
type ChargeMemberInput struct {
	MemberID    string
	AmountCents int64
	Description string
	Month       int // billing month, 1-12
	Year        int
}

// ChargeMemberResult reports the processor's answer. A decline is a normal
// result, not an error.
type ChargeMemberResult struct {
	Authorized    bool
	DeclineReason string
	Payment       payment.Payment // zero value on decline
}

// ChargeMemberDeps holds dependencies for ChargeMember.
type ChargeMemberDeps struct {
	MemberStore  MemberStore
	PaymentStore PaymentStore
	Gateway      gateway.Gateway
	EmailSender  email.Sender // optional: nil skips the receipt
	Now          func() time.Time
	GenerateID   func() string
}

// ExecuteChargeMember runs one membership payment end to end: charge the
// processor, and on authorization record the payment and mark the member paid
// in one transaction. Declines leave no trace in the ledger. The receipt
// email is best effort and never fails the payment.
// PRE: MemberID refers to an existing member; AmountCents > 0
// POST: Authorized charges append exactly one payment and set the member paid
func ExecuteChargeMember(ctx context.Context, input ChargeMemberInput, deps ChargeMemberDeps) (ChargeMemberResult, error) {
	now := time.Now
	if deps.Now != nil {
		now = deps.Now
	}
	generateID := uuid.NewString
	if deps.GenerateID != nil {
		generateID = deps.GenerateID
	}

	m, err := deps.MemberStore.GetByID(ctx, input.MemberID)
	if err != nil {
		return ChargeMemberResult{}, err
	}

	result, err := deps.Gateway.Charge(ctx, gateway.ChargeRequest{
		MemberID:    m.ID,
		AmountCents: input.AmountCents,
		Description: input.Description,
	})
	if err != nil {
		return ChargeMemberResult{}, err
	}
	if !result.Authorized {
		return ChargeMemberResult{Authorized: false, DeclineReason: result.DeclineReason}, nil
	}

	paidAt := now()
	p := payment.Payment{
		ID:            generateID(),
		MemberID:      m.ID,
		MemberName:    m.Name,
		MemberEmail:   m.Email,
		AmountCents:   input.AmountCents,
		Description:   input.Description,
		Status:        payment.StatusCompleted,
		Method:        payment.MethodSimulated,
		TransactionID: result.TransactionID,
		PaidAt:        paidAt,
		Month:         input.Month,
		Year:          input.Year,
	}
	if err := p.Validate(); err != nil {
		return ChargeMemberResult{}, err
	}

	if err := deps.PaymentStore.RecordCompleted(ctx, p); err != nil {
		return ChargeMemberResult{}, err
	}

	slog.Info("payment_event", "event", "payment_recorded", "payment_id", p.ID, "member_id", m.ID, "amount_cents", p.AmountCents, "transaction_id", p.TransactionID)

	if deps.EmailSender != nil {
		if _, err := deps.EmailSender.Send(ctx, receiptEmail(p)); err != nil {
			slog.Warn("payment_event", "event", "receipt_send_failed", "payment_id", p.ID, "error", err)
		}
	}

	return ChargeMemberResult{Authorized: true, Payment: p}, nil
}

func receiptEmail(p payment.Payment) email.SendRequest {
	return email.SendRequest{
		To:      []string{p.MemberEmail},
		Subject: fmt.Sprintf("Payment receipt: $%.2f", p.AmountDollars()),
		HTML: fmt.Sprintf(
			"<p>Hi %s,</p><p>We received your payment of <strong>$%.2f</strong> (%s).</p><p>Transaction reference: %s</p><p>See you on the rink!</p>",
			p.MemberName, p.AmountDollars(), p.Description, p.TransactionID,
		),
	}
}

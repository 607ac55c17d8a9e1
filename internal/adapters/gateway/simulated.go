package gateway

import (
	"context"
	"log/slog"
	"math/rand"
	"time"

	"github.com/google/uuid"
)

// Defaults for the simulated processor: a two second round trip and a nine in
// ten authorization rate.
const (
	DefaultDelay       = 2 * time.Second
	DefaultSuccessRate = 0.9
)

// Simulated is a Gateway that approves a fixed fraction of charges after a
// fixed delay. Rand and Sleep are injectable so tests run deterministic and
// fast.
type Simulated struct {
	Delay       time.Duration
	SuccessRate float64
	Rand        func() float64
	Sleep       func(ctx context.Context, d time.Duration) error
}

// NewSimulated creates a Simulated gateway with production-like defaults.
func NewSimulated() *Simulated {
	return &Simulated{
		Delay:       DefaultDelay,
		SuccessRate: DefaultSuccessRate,
		Rand:        rand.Float64,
		Sleep:       sleepCtx,
	}
}

// Charge waits out the processor round trip and then authorizes or declines.
// PRE: req.AmountCents > 0
// POST: Authorized results carry a transaction id; declines carry a reason
func (g *Simulated) Charge(ctx context.Context, req ChargeRequest) (ChargeResult, error) {
	if err := g.Sleep(ctx, g.Delay); err != nil {
		return ChargeResult{}, err
	}

	if g.Rand() >= g.SuccessRate {
		slog.Info("payment_event", "event", "charge_declined", "member_id", req.MemberID, "amount_cents", req.AmountCents)
		return ChargeResult{
			Authorized:    false,
			DeclineReason: "Payment failed. Please try again or use a different payment method.",
		}, nil
	}

	txID := "RS_" + uuid.NewString()
	slog.Info("payment_event", "event", "charge_authorized", "member_id", req.MemberID, "amount_cents", req.AmountCents, "transaction_id", txID)
	return ChargeResult{Authorized: true, TransactionID: txID}, nil
}

func sleepCtx(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

package gateway

import (
	"context"
	"strings"
	"testing"
	"time"
)

func fastGateway(randValue float64) (*Simulated, *time.Duration) {
	var slept time.Duration
	g := NewSimulated()
	g.Rand = func() float64 { return randValue }
	g.Sleep = func(ctx context.Context, d time.Duration) error {
		slept = d
		return nil
	}
	return g, &slept
}

func TestCharge_Authorized(t *testing.T) {
	g, slept := fastGateway(0.5)

	result, err := g.Charge(context.Background(), ChargeRequest{MemberID: "m1", AmountCents: 5000})
	if err != nil {
		t.Fatalf("Charge failed: %v", err)
	}
	if !result.Authorized {
		t.Fatal("charge below the success threshold must authorize")
	}
	if !strings.HasPrefix(result.TransactionID, "RS_") {
		t.Errorf("transaction id = %q, want RS_ prefix", result.TransactionID)
	}
	if result.DeclineReason != "" {
		t.Errorf("authorized result must have no decline reason, got %q", result.DeclineReason)
	}
	if *slept != DefaultDelay {
		t.Errorf("slept %v, want processor delay %v", *slept, DefaultDelay)
	}
}

func TestCharge_Declined(t *testing.T) {
	g, _ := fastGateway(0.95)

	result, err := g.Charge(context.Background(), ChargeRequest{MemberID: "m1", AmountCents: 5000})
	if err != nil {
		t.Fatalf("Charge failed: %v", err)
	}
	if result.Authorized {
		t.Fatal("charge at or above the success threshold must decline")
	}
	if result.TransactionID != "" {
		t.Errorf("declined result must have no transaction id, got %q", result.TransactionID)
	}
	if result.DeclineReason == "" {
		t.Error("declined result must carry a reason")
	}
}

func TestCharge_ContextCancelled(t *testing.T) {
	g := NewSimulated()
	g.Delay = 50 * time.Millisecond

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := g.Charge(ctx, ChargeRequest{MemberID: "m1", AmountCents: 5000}); err == nil {
		t.Fatal("cancelled context must abort the charge")
	}
}

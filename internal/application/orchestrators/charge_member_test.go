package orchestrators

import (
	"context"
	"errors"
	"testing"

	"rinkside/internal/adapters/gateway"
	"rinkside/internal/domain/member"
	"rinkside/internal/domain/payment"
)

func chargeDeps(g *mockGateway) (ChargeMemberDeps, *mockPaymentStore, *mockEmailSender) {
	members := newMockMemberStore()
	members.members["m1"] = member.Member{
		ID: "m1", Name: "Sarah Johnson", Email: "sarah@example.com",
		Role: member.RoleMember, PaymentStatus: member.PaymentPending, RegisteredAt: fixedTime,
	}
	payments := &mockPaymentStore{}
	sender := &mockEmailSender{}
	return ChargeMemberDeps{
		MemberStore:  members,
		PaymentStore: payments,
		Gateway:      g,
		EmailSender:  sender,
		Now:          fixedNow,
		GenerateID:   seqID(),
	}, payments, sender
}

func TestExecuteChargeMember_Authorized(t *testing.T) {
	g := &mockGateway{result: gateway.ChargeResult{Authorized: true, TransactionID: "RS_tx1"}}
	deps, payments, sender := chargeDeps(g)

	result, err := ExecuteChargeMember(context.Background(), ChargeMemberInput{
		MemberID:    "m1",
		AmountCents: 5000,
		Description: "Monthly membership",
		Month:       6,
		Year:        2026,
	}, deps)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !result.Authorized {
		t.Fatal("expected an authorized result")
	}

	if len(payments.payments) != 1 {
		t.Fatalf("expected one recorded payment, got %d", len(payments.payments))
	}
	p := payments.payments[0]
	if p.TransactionID != "RS_tx1" || p.Status != payment.StatusCompleted {
		t.Errorf("unexpected payment: %+v", p)
	}
	if p.MemberName != "Sarah Johnson" || p.MemberEmail != "sarah@example.com" {
		t.Error("payment must snapshot member name and email")
	}
	if !p.PaidAt.Equal(fixedTime) {
		t.Errorf("PaidAt = %v, want injected now", p.PaidAt)
	}

	if g.lastReq.AmountCents != 5000 || g.lastReq.MemberID != "m1" {
		t.Errorf("unexpected charge request: %+v", g.lastReq)
	}
	if len(sender.sent) != 1 {
		t.Fatalf("expected one receipt email, got %d", len(sender.sent))
	}
	if sender.sent[0].To[0] != "sarah@example.com" {
		t.Errorf("receipt addressed to %s", sender.sent[0].To[0])
	}
}

func TestExecuteChargeMember_DeclinedLeavesNoTrace(t *testing.T) {
	g := &mockGateway{result: gateway.ChargeResult{Authorized: false, DeclineReason: "card declined"}}
	deps, payments, sender := chargeDeps(g)

	result, err := ExecuteChargeMember(context.Background(), ChargeMemberInput{
		MemberID: "m1", AmountCents: 5000, Month: 6, Year: 2026,
	}, deps)
	if err != nil {
		t.Fatalf("a decline is a result, not an error: %v", err)
	}
	if result.Authorized {
		t.Fatal("expected a declined result")
	}
	if result.DeclineReason != "card declined" {
		t.Errorf("decline reason = %q", result.DeclineReason)
	}
	if len(payments.payments) != 0 {
		t.Error("declined charge must not record a payment")
	}
	if len(sender.sent) != 0 {
		t.Error("declined charge must not send a receipt")
	}
}

func TestExecuteChargeMember_GatewayError(t *testing.T) {
	g := &mockGateway{err: errors.New("processor unreachable")}
	deps, payments, _ := chargeDeps(g)

	if _, err := ExecuteChargeMember(context.Background(), ChargeMemberInput{
		MemberID: "m1", AmountCents: 5000, Month: 6, Year: 2026,
	}, deps); err == nil {
		t.Fatal("expected gateway error to propagate")
	}
	if len(payments.payments) != 0 {
		t.Error("failed charge must not record a payment")
	}
}

func TestExecuteChargeMember_UnknownMember(t *testing.T) {
	g := &mockGateway{result: gateway.ChargeResult{Authorized: true, TransactionID: "RS_tx1"}}
	deps, _, _ := chargeDeps(g)

	if _, err := ExecuteChargeMember(context.Background(), ChargeMemberInput{
		MemberID: "ghost", AmountCents: 5000, Month: 6, Year: 2026,
	}, deps); err == nil {
		t.Fatal("expected error for unknown member")
	}
	if g.callCount != 0 {
		t.Error("unknown member must never reach the processor")
	}
}

func TestExecuteChargeMember_ReceiptFailureDoesNotFailPayment(t *testing.T) {
	g := &mockGateway{result: gateway.ChargeResult{Authorized: true, TransactionID: "RS_tx1"}}
	deps, payments, sender := chargeDeps(g)
	sender.sendErr = errors.New("smtp down")

	result, err := ExecuteChargeMember(context.Background(), ChargeMemberInput{
		MemberID: "m1", AmountCents: 5000, Month: 6, Year: 2026,
	}, deps)
	if err != nil {
		t.Fatalf("receipt failure must not fail the payment: %v", err)
	}
	if !result.Authorized || len(payments.payments) != 1 {
		t.Error("payment must still be recorded")
	}
}

func TestExecuteChargeMember_NoSenderConfigured(t *testing.T) {
	g := &mockGateway{result: gateway.ChargeResult{Authorized: true, TransactionID: "RS_tx1"}}
	deps, payments, _ := chargeDeps(g)
	deps.EmailSender = nil

	if _, err := ExecuteChargeMember(context.Background(), ChargeMemberInput{
		MemberID: "m1", AmountCents: 5000, Month: 6, Year: 2026,
	}, deps); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(payments.payments) != 1 {
		t.Error("payment must still be recorded without a sender")
	}
}

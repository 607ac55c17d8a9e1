package orchestrators

import (
	"context"
	"testing"

	"rinkside/internal/domain/member"
)

func TestExecuteSendPaymentReminders_OnlyUnpaid(t *testing.T) {
	store := newMockMemberStore()
	store.members["m1"] = member.Member{ID: "m1", Name: "Sarah", Email: "sarah@example.com", Role: member.RoleMember, PaymentStatus: member.PaymentPending, RegisteredAt: fixedTime}
	store.members["m2"] = member.Member{ID: "m2", Name: "Marcus", Email: "marcus@example.com", Role: member.RoleMember, PaymentStatus: member.PaymentPaid, RegisteredAt: fixedTime}
	store.members["m3"] = member.Member{ID: "m3", Name: "Priya", Email: "priya@example.com", Role: member.RoleMember, PaymentStatus: member.PaymentPending, RegisteredAt: fixedTime}
	sender := &mockEmailSender{}

	result, err := ExecuteSendPaymentReminders(context.Background(), SendPaymentRemindersInput{
		MonthLabel:  "June 2026",
		AmountCents: 5000,
	}, SendPaymentRemindersDeps{MemberStore: store, EmailSender: sender})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.Recipients != 2 {
		t.Errorf("expected 2 reminders, got %d", result.Recipients)
	}
	if len(sender.batches) != 1 {
		t.Fatalf("expected one batch send, got %d", len(sender.batches))
	}
	for _, req := range sender.batches[0] {
		if req.To[0] == "marcus@example.com" {
			t.Error("paid members must not receive reminders")
		}
	}
}

func TestExecuteSendPaymentReminders_NoUnpaid(t *testing.T) {
	store := newMockMemberStore()
	store.members["m1"] = member.Member{ID: "m1", Name: "Sarah", Email: "sarah@example.com", Role: member.RoleMember, PaymentStatus: member.PaymentPaid, RegisteredAt: fixedTime}
	sender := &mockEmailSender{}

	result, err := ExecuteSendPaymentReminders(context.Background(), SendPaymentRemindersInput{
		MonthLabel: "June 2026", AmountCents: 5000,
	}, SendPaymentRemindersDeps{MemberStore: store, EmailSender: sender})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.Recipients != 0 {
		t.Errorf("expected no reminders, got %d", result.Recipients)
	}
	if len(sender.batches) != 0 {
		t.Error("no batch must be sent when everyone is paid")
	}
}

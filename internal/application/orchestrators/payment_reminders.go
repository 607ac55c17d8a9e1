package orchestrators

import (
	"context"
	"fmt"
	"log/slog"

	"rinkside/internal/adapters/email"
	"rinkside/internal/domain/member"
)

// UnpaidRosterStore lists members who still owe for the current period.
type UnpaidRosterStore interface {
	ListUnpaid(ctx context.Context) ([]member.Member, error)
}

// SendPaymentRemindersInput names the billing period the reminder covers.
type SendPaymentRemindersInput struct {
	MonthLabel  string // e.g. "June 2026"
	AmountCents int64
}

// SendPaymentRemindersResult reports how many reminders went out.
type SendPaymentRemindersResult struct {
	Recipients int
}

// SendPaymentRemindersDeps holds dependencies for SendPaymentReminders.
type SendPaymentRemindersDeps struct {
	MemberStore UnpaidRosterStore
	EmailSender email.Sender
}

// ExecuteSendPaymentReminders emails every member whose fee is still pending.
// PRE: EmailSender is configured
// POST: One reminder per unpaid member is queued; paid members get nothing
func ExecuteSendPaymentReminders(ctx context.Context, input SendPaymentRemindersInput, deps SendPaymentRemindersDeps) (SendPaymentRemindersResult, error) {
	unpaid, err := deps.MemberStore.ListUnpaid(ctx)
	if err != nil {
		return SendPaymentRemindersResult{}, err
	}
	if len(unpaid) == 0 {
		return SendPaymentRemindersResult{}, nil
	}

	reqs := make([]email.SendRequest, 0, len(unpaid))
	for _, m := range unpaid {
		reqs = append(reqs, email.SendRequest{
			To:      []string{m.Email},
			Subject: fmt.Sprintf("Membership fee reminder for %s", input.MonthLabel),
			HTML: fmt.Sprintf(
				"<p>Hi %s,</p><p>Your membership fee of <strong>$%.2f</strong> for %s is still outstanding.</p><p>You can pay from your member dashboard.</p>",
				m.Name, float64(input.AmountCents)/100, input.MonthLabel,
			),
		})
	}

	results, err := deps.EmailSender.SendBatch(ctx, reqs)
	if err != nil {
		return SendPaymentRemindersResult{Recipients: len(results)}, err
	}

	slog.Info("payment_event", "event", "reminders_sent", "count", len(results), "month", input.MonthLabel)
	return SendPaymentRemindersResult{Recipients: len(results)}, nil
}

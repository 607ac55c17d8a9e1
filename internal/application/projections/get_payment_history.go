package projections

import (
	"context"

	"rinkside/internal/domain/member"
	"rinkside/internal/domain/payment"
)

// HistoryPaymentStore defines the payment store interface needed by the
// billing projections.
type HistoryPaymentStore interface {
	ListByMemberID(ctx context.Context, memberID string) ([]payment.Payment, error)
	ListAll(ctx context.Context) ([]payment.Payment, error)
	MonthlyRevenueCents(ctx context.Context, month, year int) (int64, error)
}

// PendingRosterStore lists members who still owe for the current period.
type PendingRosterStore interface {
	ListUnpaid(ctx context.Context) ([]member.Member, error)
}

// GetPaymentHistoryQuery selects one member's payment history.
type GetPaymentHistoryQuery struct {
	MemberID string
}

// GetPaymentHistoryDeps holds dependencies for the payment history projection.
type GetPaymentHistoryDeps struct {
	MemberStore  MemberLookupStore
	PaymentStore HistoryPaymentStore
}

// PaymentHistoryResult carries one member's payments, most recent first.
type PaymentHistoryResult struct {
	MemberID        string
	MemberName      string
	PaymentStatus   string
	Payments        []payment.Payment
	TotalPaidCents  int64
	LastPaymentDate string // YYYY-MM-DD, empty when no payments
}

// QueryGetPaymentHistory lists a member's payments with a running total.
func QueryGetPaymentHistory(ctx context.Context, query GetPaymentHistoryQuery, deps GetPaymentHistoryDeps) (PaymentHistoryResult, error) {
	m, err := deps.MemberStore.GetByID(ctx, query.MemberID)
	if err != nil {
		return PaymentHistoryResult{}, err
	}

	payments, err := deps.PaymentStore.ListByMemberID(ctx, query.MemberID)
	if err != nil {
		return PaymentHistoryResult{}, err
	}

	result := PaymentHistoryResult{
		MemberID:      m.ID,
		MemberName:    m.Name,
		PaymentStatus: m.PaymentStatus,
		Payments:      payments,
	}
	for _, p := range payments {
		result.TotalPaidCents += p.AmountCents
	}
	if len(payments) > 0 {
		result.LastPaymentDate = payments[0].PaidAt.Format("2006-01-02")
	}
	return result, nil
}

// GetBillingSummaryQuery names the calendar month to summarize.
type GetBillingSummaryQuery struct {
	Month int // 1-12
	Year  int
}

// GetBillingSummaryDeps holds dependencies for the billing summary projection.
type GetBillingSummaryDeps struct {
	PaymentStore HistoryPaymentStore
	MemberStore  PendingRosterStore
}

// BillingSummaryResult is the admin's view of one month: revenue, the full
// ledger, and who still owes.
type BillingSummaryResult struct {
	Month              int
	Year               int
	RevenueCents       int64
	Payments           []payment.Payment
	PendingMembers     []member.Member
	PendingMemberCount int
}

// QueryGetBillingSummary computes the month's revenue from payment dates and
// attaches the pending-payment roster.
func QueryGetBillingSummary(ctx context.Context, query GetBillingSummaryQuery, deps GetBillingSummaryDeps) (BillingSummaryResult, error) {
	revenue, err := deps.PaymentStore.MonthlyRevenueCents(ctx, query.Month, query.Year)
	if err != nil {
		return BillingSummaryResult{}, err
	}

	payments, err := deps.PaymentStore.ListAll(ctx)
	if err != nil {
		return BillingSummaryResult{}, err
	}

	pending, err := deps.MemberStore.ListUnpaid(ctx)
	if err != nil {
		return BillingSummaryResult{}, err
	}

	return BillingSummaryResult{
		Month:              query.Month,
		Year:               query.Year,
		RevenueCents:       revenue,
		Payments:           payments,
		PendingMembers:     pending,
		PendingMemberCount: len(pending),
	}, nil
}

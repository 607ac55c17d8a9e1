package payment

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"rinkside/internal/adapters/storage"
	memberDomain "rinkside/internal/domain/member"
	domain "rinkside/internal/domain/payment"
)

const paymentColumns = "id, member_id, member_name, member_email, amount_cents, description, status, method, transaction_id, paid_at, month, year"

// SQLiteStore implements Store using SQLite.
type SQLiteStore struct {
	db storage.SQLDB
}

// NewSQLiteStore creates a new payment store.
func NewSQLiteStore(db storage.SQLDB) *SQLiteStore {
	return &SQLiteStore{db: db}
}

func scanPayment(scan func(dest ...any) error) (domain.Payment, error) {
	var p domain.Payment
	var paidStr string
	err := scan(
		&p.ID,
		&p.MemberID,
		&p.MemberName,
		&p.MemberEmail,
		&p.AmountCents,
		&p.Description,
		&p.Status,
		&p.Method,
		&p.TransactionID,
		&paidStr,
		&p.Month,
		&p.Year,
	)
	if err != nil {
		return domain.Payment{}, err
	}
	p.PaidAt, err = storage.ParseStoredTime(paidStr)
	if err != nil {
		return domain.Payment{}, fmt.Errorf("failed to parse paid_at: %w", err)
	}
	return p, nil
}

// GetByID retrieves a Payment by its ID.
// PRE: id is non-empty
// POST: Returns the entity or an error if not found
func (s *SQLiteStore) GetByID(ctx context.Context, id string) (domain.Payment, error) {
	row := s.db.QueryRowContext(ctx, "SELECT "+paymentColumns+" FROM payment WHERE id = ?", id)
	p, err := scanPayment(row.Scan)
	if err == sql.ErrNoRows {
		return domain.Payment{}, fmt.Errorf("payment not found: %w", err)
	}
	return p, err
}

// RecordCompleted inserts the payment and marks the paying member paid in a
// single transaction: either both writes land or neither does.
// PRE: entity has been validated and has status 'completed'
// POST: Payment row exists and member.payment_status = 'paid'
func (s *SQLiteStore) RecordCompleted(ctx context.Context, p domain.Payment) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `
		INSERT INTO payment (id, member_id, member_name, member_email, amount_cents, description, status, method, transaction_id, paid_at, month, year)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		p.ID, p.MemberID, p.MemberName, p.MemberEmail, p.AmountCents, p.Description,
		p.Status, p.Method, p.TransactionID, p.PaidAt.Format(time.RFC3339Nano), p.Month, p.Year,
	); err != nil {
		return err
	}

	if _, err := tx.ExecContext(ctx,
		"UPDATE member SET payment_status = ?, last_payment_at = ? WHERE id = ?",
		memberDomain.PaymentPaid, p.PaidAt.Format(time.RFC3339Nano), p.MemberID,
	); err != nil {
		return err
	}

	return tx.Commit()
}

// ListByMemberID retrieves all payments for a member, most recent first.
// PRE: memberID is non-empty
// POST: Returns payments ordered by paid_at descending
func (s *SQLiteStore) ListByMemberID(ctx context.Context, memberID string) ([]domain.Payment, error) {
	rows, err := s.db.QueryContext(ctx,
		"SELECT "+paymentColumns+" FROM payment WHERE member_id = ? ORDER BY paid_at DESC",
		memberID)
	if err != nil {
		return nil, err
	}
	return collectPayments(rows)
}

// ListAll retrieves the full payment history, most recent first.
// PRE: none
// POST: Returns all payments ordered by paid_at descending
func (s *SQLiteStore) ListAll(ctx context.Context) ([]domain.Payment, error) {
	rows, err := s.db.QueryContext(ctx,
		"SELECT "+paymentColumns+" FROM payment ORDER BY paid_at DESC")
	if err != nil {
		return nil, err
	}
	return collectPayments(rows)
}

// MonthlyRevenueCents sums payment amounts whose payment date falls in the
// given calendar month. The filter key is when the payment happened, not the
// billing month it covers.
// PRE: month is 1-12
// POST: Returns total cents (0 when no payments match)
func (s *SQLiteStore) MonthlyRevenueCents(ctx context.Context, month, year int) (int64, error) {
	prefix := fmt.Sprintf("%04d-%02d", year, month)
	var total sql.NullInt64
	err := s.db.QueryRowContext(ctx,
		"SELECT SUM(amount_cents) FROM payment WHERE SUBSTR(paid_at, 1, 7) = ?", prefix).Scan(&total)
	if err != nil {
		return 0, err
	}
	if !total.Valid {
		return 0, nil
	}
	return total.Int64, nil
}

func collectPayments(rows *sql.Rows) ([]domain.Payment, error) {
	defer rows.Close()
	var results []domain.Payment
	for rows.Next() {
		p, err := scanPayment(rows.Scan)
		if err != nil {
			return nil, err
		}
		results = append(results, p)
	}
	return results, rows.Err()
}

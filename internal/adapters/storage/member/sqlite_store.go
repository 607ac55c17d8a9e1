package member

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"rinkside/internal/adapters/storage"
	domain "rinkside/internal/domain/member"
)

const memberColumns = "id, name, email, phone, role, payment_status, password_hash, registered_at, last_payment_at"

// SQLiteStore implements Store using SQLite.
type SQLiteStore struct {
	db storage.SQLDB
}

// NewSQLiteStore creates a new member store.
func NewSQLiteStore(db storage.SQLDB) *SQLiteStore {
	return &SQLiteStore{db: db}
}

func scanMember(scan func(dest ...any) error) (domain.Member, error) {
	var m domain.Member
	var registeredStr string
	var lastPaymentStr sql.NullString
	err := scan(
		&m.ID,
		&m.Name,
		&m.Email,
		&m.Phone,
		&m.Role,
		&m.PaymentStatus,
		&m.PasswordHash,
		&registeredStr,
		&lastPaymentStr,
	)
	if err != nil {
		return domain.Member{}, err
	}
	m.RegisteredAt, err = storage.ParseStoredTime(registeredStr)
	if err != nil {
		return domain.Member{}, fmt.Errorf("failed to parse registered_at: %w", err)
	}
	if lastPaymentStr.Valid && lastPaymentStr.String != "" {
		m.LastPaymentAt, err = storage.ParseStoredTime(lastPaymentStr.String)
		if err != nil {
			return domain.Member{}, fmt.Errorf("failed to parse last_payment_at: %w", err)
		}
	}
	return m, nil
}

// GetByID retrieves a Member by its ID.
// PRE: id is non-empty
// POST: Returns the entity or an error if not found
func (s *SQLiteStore) GetByID(ctx context.Context, id string) (domain.Member, error) {
	row := s.db.QueryRowContext(ctx, "SELECT "+memberColumns+" FROM member WHERE id = ?", id)
	m, err := scanMember(row.Scan)
	if err == sql.ErrNoRows {
		return domain.Member{}, fmt.Errorf("member not found: %w", err)
	}
	return m, err
}

// GetByEmail retrieves the earliest-registered Member with the given email.
// Emails are not unique; registration order breaks ties, matching the
// first-match lookup used by login.
// PRE: email is non-empty
// POST: Returns the entity or an error if not found
func (s *SQLiteStore) GetByEmail(ctx context.Context, email string) (domain.Member, error) {
	row := s.db.QueryRowContext(ctx,
		"SELECT "+memberColumns+" FROM member WHERE email = ? ORDER BY rowid ASC LIMIT 1", email)
	m, err := scanMember(row.Scan)
	if err == sql.ErrNoRows {
		return domain.Member{}, fmt.Errorf("member not found: %w", err)
	}
	return m, err
}

// Save persists a Member to the database.
// PRE: entity has been validated
// POST: Entity is persisted (insert or update)
func (s *SQLiteStore) Save(ctx context.Context, m domain.Member) error {
	var lastPayment any
	if !m.LastPaymentAt.IsZero() {
		lastPayment = m.LastPaymentAt.Format(time.RFC3339Nano)
	}

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO member (id, name, email, phone, role, payment_status, password_hash, registered_at, last_payment_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			name=excluded.name,
			email=excluded.email,
			phone=excluded.phone,
			role=excluded.role,
			payment_status=excluded.payment_status,
			password_hash=excluded.password_hash,
			registered_at=excluded.registered_at,
			last_payment_at=excluded.last_payment_at`,
		m.ID, m.Name, m.Email, m.Phone, m.Role, m.PaymentStatus, m.PasswordHash,
		m.RegisteredAt.Format(time.RFC3339Nano), lastPayment,
	)
	return err
}

// List retrieves members matching the filter, newest registration first.
// PRE: filter has valid parameters
// POST: Returns matching entities
func (s *SQLiteStore) List(ctx context.Context, filter ListFilter) ([]domain.Member, error) {
	query := "SELECT " + memberColumns + " FROM member"
	var conds []string
	var args []any
	if filter.Role != "" {
		conds = append(conds, "role = ?")
		args = append(args, filter.Role)
	}
	if filter.PaymentStatus != "" {
		conds = append(conds, "payment_status = ?")
		args = append(args, filter.PaymentStatus)
	}
	if len(conds) > 0 {
		query += " WHERE " + strings.Join(conds, " AND ")
	}
	query += " ORDER BY registered_at DESC"
	if filter.Limit > 0 {
		query += " LIMIT ? OFFSET ?"
		args = append(args, filter.Limit, filter.Offset)
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var results []domain.Member
	for rows.Next() {
		m, err := scanMember(rows.Scan)
		if err != nil {
			return nil, err
		}
		results = append(results, m)
	}
	return results, rows.Err()
}

// ListUnpaid retrieves all members whose payment status is not 'paid'.
// PRE: none
// POST: Returns the pending-payment roster
func (s *SQLiteStore) ListUnpaid(ctx context.Context) ([]domain.Member, error) {
	rows, err := s.db.QueryContext(ctx,
		"SELECT "+memberColumns+" FROM member WHERE payment_status != ? ORDER BY registered_at ASC",
		domain.PaymentPaid)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var results []domain.Member
	for rows.Next() {
		m, err := scanMember(rows.Scan)
		if err != nil {
			return nil, err
		}
		results = append(results, m)
	}
	return results, rows.Err()
}

// UpdatePaymentStatus overwrites the payment status and last-payment time of
// one member. Unknown ids are a silent no-op.
// PRE: status is a valid payment status
// POST: Matching member carries the new status; zero rows affected when absent
func (s *SQLiteStore) UpdatePaymentStatus(ctx context.Context, id string, status string, paidAt time.Time) error {
	_, err := s.db.ExecContext(ctx,
		"UPDATE member SET payment_status = ?, last_payment_at = ? WHERE id = ?",
		status, paidAt.Format(time.RFC3339Nano), id)
	return err
}

package attendance

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"rinkside/internal/adapters/storage"
	domain "rinkside/internal/domain/attendance"
)

const recordColumns = "id, session_id, member_id, status, recorded_at"

// SQLiteStore implements Store using SQLite.
type SQLiteStore struct {
	db storage.SQLDB
}

// NewSQLiteStore creates a new attendance store.
func NewSQLiteStore(db storage.SQLDB) *SQLiteStore {
	return &SQLiteStore{db: db}
}

func scanRecord(scan func(dest ...any) error) (domain.Record, error) {
	var r domain.Record
	var recordedStr string
	err := scan(
		&r.ID,
		&r.SessionID,
		&r.MemberID,
		&r.Status,
		&recordedStr,
	)
	if err != nil {
		return domain.Record{}, err
	}
	r.RecordedAt, err = storage.ParseStoredTime(recordedStr)
	if err != nil {
		return domain.Record{}, fmt.Errorf("failed to parse recorded_at: %w", err)
	}
	return r, nil
}

func collectRecords(rows *sql.Rows) ([]domain.Record, error) {
	defer rows.Close()
	var results []domain.Record
	for rows.Next() {
		r, err := scanRecord(rows.Scan)
		if err != nil {
			return nil, err
		}
		results = append(results, r)
	}
	return results, rows.Err()
}

// GetBySessionAndMember retrieves the one record for a (session, member) pair.
// PRE: sessionID and memberID are non-empty
// POST: Returns the record or an error if none exists
func (s *SQLiteStore) GetBySessionAndMember(ctx context.Context, sessionID, memberID string) (domain.Record, error) {
	row := s.db.QueryRowContext(ctx,
		"SELECT "+recordColumns+" FROM attendance WHERE session_id = ? AND member_id = ?",
		sessionID, memberID)
	r, err := scanRecord(row.Scan)
	if err == sql.ErrNoRows {
		return domain.Record{}, fmt.Errorf("attendance record not found: %w", err)
	}
	return r, err
}

// Save persists a Record, upserting on the (session_id, member_id) pair.
// An existing record for the pair keeps its original id; only status and
// recorded_at are overwritten.
// PRE: entity has been validated
// POST: Exactly one record exists for the pair, carrying entity's status
func (s *SQLiteStore) Save(ctx context.Context, r domain.Record) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO attendance (id, session_id, member_id, status, recorded_at)
		VALUES (?, ?, ?, ?, ?)
		ON CONFLICT(session_id, member_id) DO UPDATE SET
			status=excluded.status,
			recorded_at=excluded.recorded_at`,
		r.ID, r.SessionID, r.MemberID, r.Status, r.RecordedAt.Format(time.RFC3339Nano),
	)
	return err
}

// ReplaceForSession atomically replaces all attendance for one session with
// the given records: every prior record for the session is deleted, then one
// row per input record is inserted, in a single transaction.
// PRE: every record references sessionID and has been validated
// POST: The session's attendance is exactly the input set
func (s *SQLiteStore) ReplaceForSession(ctx context.Context, sessionID string, records []domain.Record) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, "DELETE FROM attendance WHERE session_id = ?", sessionID); err != nil {
		return err
	}
	for _, r := range records {
		if _, err := tx.ExecContext(ctx,
			"INSERT INTO attendance (id, session_id, member_id, status, recorded_at) VALUES (?, ?, ?, ?, ?)",
			r.ID, r.SessionID, r.MemberID, r.Status, r.RecordedAt.Format(time.RFC3339Nano),
		); err != nil {
			return err
		}
	}

	return tx.Commit()
}

// DeleteBySessionID removes every record for a session.
// PRE: sessionID is non-empty
// POST: Returns the number of deleted records
func (s *SQLiteStore) DeleteBySessionID(ctx context.Context, sessionID string) (int, error) {
	result, err := s.db.ExecContext(ctx, "DELETE FROM attendance WHERE session_id = ?", sessionID)
	if err != nil {
		return 0, err
	}
	n, err := result.RowsAffected()
	return int(n), err
}

// ListBySessionID retrieves all records for a session.
// PRE: sessionID is non-empty
// POST: Returns records ordered by recording time ascending
func (s *SQLiteStore) ListBySessionID(ctx context.Context, sessionID string) ([]domain.Record, error) {
	rows, err := s.db.QueryContext(ctx,
		"SELECT "+recordColumns+" FROM attendance WHERE session_id = ? ORDER BY recorded_at ASC",
		sessionID)
	if err != nil {
		return nil, err
	}
	return collectRecords(rows)
}

// ListByMemberID retrieves all records for a member, most recent first.
// PRE: memberID is non-empty
// POST: Returns records ordered by recording time descending
func (s *SQLiteStore) ListByMemberID(ctx context.Context, memberID string) ([]domain.Record, error) {
	rows, err := s.db.QueryContext(ctx,
		"SELECT "+recordColumns+" FROM attendance WHERE member_id = ? ORDER BY recorded_at DESC",
		memberID)
	if err != nil {
		return nil, err
	}
	return collectRecords(rows)
}

// ListBySessionIDs retrieves all records belonging to any of the given
// sessions. Used by date-range reports, which select records by their
// parent session's date.
// PRE: none; an empty id list yields no records
// POST: Returns matching records in no particular order
func (s *SQLiteStore) ListBySessionIDs(ctx context.Context, sessionIDs []string) ([]domain.Record, error) {
	if len(sessionIDs) == 0 {
		return nil, nil
	}
	placeholders := make([]string, len(sessionIDs))
	args := make([]any, len(sessionIDs))
	for i, id := range sessionIDs {
		placeholders[i] = "?"
		args[i] = id
	}

	query := fmt.Sprintf(
		"SELECT "+recordColumns+" FROM attendance WHERE session_id IN (%s)",
		strings.Join(placeholders, ","),
	)
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	return collectRecords(rows)
}

package session

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"rinkside/internal/adapters/storage"
	domain "rinkside/internal/domain/session"
)

const sessionColumns = "id, name, date, time, type, instructor, description, max_capacity, status, created_at"

// SQLiteStore implements Store using SQLite.
type SQLiteStore struct {
	db storage.SQLDB
}

// NewSQLiteStore creates a new session store.
func NewSQLiteStore(db storage.SQLDB) *SQLiteStore {
	return &SQLiteStore{db: db}
}

func scanSession(scan func(dest ...any) error) (domain.Session, error) {
	var s domain.Session
	var createdStr string
	err := scan(
		&s.ID,
		&s.Name,
		&s.Date,
		&s.Time,
		&s.Type,
		&s.Instructor,
		&s.Description,
		&s.MaxCapacity,
		&s.Status,
		&createdStr,
	)
	if err != nil {
		return domain.Session{}, err
	}
	s.CreatedAt, err = storage.ParseStoredTime(createdStr)
	if err != nil {
		return domain.Session{}, fmt.Errorf("failed to parse created_at: %w", err)
	}
	return s, nil
}

func collectSessions(rows *sql.Rows) ([]domain.Session, error) {
	defer rows.Close()
	var results []domain.Session
	for rows.Next() {
		s, err := scanSession(rows.Scan)
		if err != nil {
			return nil, err
		}
		results = append(results, s)
	}
	return results, rows.Err()
}

// GetByID retrieves a Session by its ID.
// PRE: id is non-empty
// POST: Returns the entity or an error if not found
func (s *SQLiteStore) GetByID(ctx context.Context, id string) (domain.Session, error) {
	row := s.db.QueryRowContext(ctx, "SELECT "+sessionColumns+" FROM session WHERE id = ?", id)
	entity, err := scanSession(row.Scan)
	if err == sql.ErrNoRows {
		return domain.Session{}, fmt.Errorf("session not found: %w", err)
	}
	return entity, err
}

// Save persists a Session to the database.
// PRE: entity has been validated
// POST: Entity is persisted (insert or update)
func (s *SQLiteStore) Save(ctx context.Context, entity domain.Session) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO session (id, name, date, time, type, instructor, description, max_capacity, status, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			name=excluded.name,
			date=excluded.date,
			time=excluded.time,
			type=excluded.type,
			instructor=excluded.instructor,
			description=excluded.description,
			max_capacity=excluded.max_capacity,
			status=excluded.status`,
		entity.ID, entity.Name, entity.Date, entity.Time, entity.Type,
		entity.Instructor, entity.Description, entity.MaxCapacity, entity.Status,
		entity.CreatedAt.Format(time.RFC3339Nano),
	)
	return err
}

// Delete removes a Session from the database. Attendance rows referencing the
// session must already be gone; the delete-session orchestrator removes them
// first so a failure between the two steps can never leave orphaned records.
// PRE: id is non-empty
// POST: Entity with given id is removed
func (s *SQLiteStore) Delete(ctx context.Context, id string) error {
	_, err := s.db.ExecContext(ctx, "DELETE FROM session WHERE id = ?", id)
	return err
}

// List retrieves sessions matching the filter, most recently created first.
// PRE: filter has valid parameters
// POST: Returns matching entities
func (s *SQLiteStore) List(ctx context.Context, filter ListFilter) ([]domain.Session, error) {
	query := "SELECT " + sessionColumns + " FROM session"
	var conds []string
	var args []any
	if filter.Status != "" {
		conds = append(conds, "status = ?")
		args = append(args, filter.Status)
	}
	if filter.Type != "" {
		conds = append(conds, "type = ?")
		args = append(args, filter.Type)
	}
	if len(conds) > 0 {
		query += " WHERE " + strings.Join(conds, " AND ")
	}
	query += " ORDER BY created_at DESC"
	if filter.Limit > 0 {
		query += " LIMIT ? OFFSET ?"
		args = append(args, filter.Limit, filter.Offset)
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	return collectSessions(rows)
}

// ListUpcoming retrieves sessions dated today or later, soonest first.
// PRE: today is YYYY-MM-DD
// POST: Returns sessions with date >= today ascending by date
func (s *SQLiteStore) ListUpcoming(ctx context.Context, today string) ([]domain.Session, error) {
	rows, err := s.db.QueryContext(ctx,
		"SELECT "+sessionColumns+" FROM session WHERE date >= ? ORDER BY date ASC, time ASC", today)
	if err != nil {
		return nil, err
	}
	return collectSessions(rows)
}

// ListRecent retrieves past sessions, most recent first, truncated to limit.
// PRE: today is YYYY-MM-DD, limit > 0
// POST: Returns at most limit sessions with date <= today descending by date
func (s *SQLiteStore) ListRecent(ctx context.Context, today string, limit int) ([]domain.Session, error) {
	rows, err := s.db.QueryContext(ctx,
		"SELECT "+sessionColumns+" FROM session WHERE date <= ? ORDER BY date DESC, time DESC LIMIT ?",
		today, limit)
	if err != nil {
		return nil, err
	}
	return collectSessions(rows)
}

// ListByDateRange retrieves sessions whose date falls in [startDate, endDate].
// PRE: startDate and endDate are YYYY-MM-DD
// POST: Returns sessions in the inclusive range ascending by date
func (s *SQLiteStore) ListByDateRange(ctx context.Context, startDate, endDate string) ([]domain.Session, error) {
	rows, err := s.db.QueryContext(ctx,
		"SELECT "+sessionColumns+" FROM session WHERE date >= ? AND date <= ? ORDER BY date ASC, time ASC",
		startDate, endDate)
	if err != nil {
		return nil, err
	}
	return collectSessions(rows)
}

package post

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"rinkside/internal/adapters/storage"
	domain "rinkside/internal/domain/post"
)

const postColumns = "id, title, excerpt, content, author, category, status, featured, views, created_at, updated_at, published_at"

// SQLiteStore implements Store using SQLite.
type SQLiteStore struct {
	db storage.SQLDB
}

// NewSQLiteStore creates a new post store.
func NewSQLiteStore(db storage.SQLDB) *SQLiteStore {
	return &SQLiteStore{db: db}
}

func scanPost(scan func(dest ...any) error) (domain.Post, error) {
	var p domain.Post
	var featured int
	var createdStr string
	var updatedStr, publishedStr sql.NullString
	err := scan(
		&p.ID,
		&p.Title,
		&p.Excerpt,
		&p.Content,
		&p.Author,
		&p.Category,
		&p.Status,
		&featured,
		&p.Views,
		&createdStr,
		&updatedStr,
		&publishedStr,
	)
	if err != nil {
		return domain.Post{}, err
	}
	p.Featured = featured != 0
	p.CreatedAt, err = storage.ParseStoredTime(createdStr)
	if err != nil {
		return domain.Post{}, fmt.Errorf("failed to parse created_at: %w", err)
	}
	if updatedStr.Valid && updatedStr.String != "" {
		p.UpdatedAt, err = storage.ParseStoredTime(updatedStr.String)
		if err != nil {
			return domain.Post{}, fmt.Errorf("failed to parse updated_at: %w", err)
		}
	}
	if publishedStr.Valid && publishedStr.String != "" {
		p.PublishedAt, err = storage.ParseStoredTime(publishedStr.String)
		if err != nil {
			return domain.Post{}, fmt.Errorf("failed to parse published_at: %w", err)
		}
	}
	return p, nil
}

// GetByID retrieves a Post by its ID.
// PRE: id is non-empty
// POST: Returns the entity or an error if not found
func (s *SQLiteStore) GetByID(ctx context.Context, id string) (domain.Post, error) {
	row := s.db.QueryRowContext(ctx, "SELECT "+postColumns+" FROM post WHERE id = ?", id)
	p, err := scanPost(row.Scan)
	if err == sql.ErrNoRows {
		return domain.Post{}, fmt.Errorf("post not found: %w", err)
	}
	return p, err
}

// Save persists a Post to the database.
// PRE: entity has been validated
// POST: Entity is persisted (insert or update)
func (s *SQLiteStore) Save(ctx context.Context, p domain.Post) error {
	featured := 0
	if p.Featured {
		featured = 1
	}
	var updated, published any
	if !p.UpdatedAt.IsZero() {
		updated = p.UpdatedAt.Format(time.RFC3339Nano)
	}
	if !p.PublishedAt.IsZero() {
		published = p.PublishedAt.Format(time.RFC3339Nano)
	}

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO post (id, title, excerpt, content, author, category, status, featured, views, created_at, updated_at, published_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			title=excluded.title,
			excerpt=excluded.excerpt,
			content=excluded.content,
			author=excluded.author,
			category=excluded.category,
			status=excluded.status,
			featured=excluded.featured,
			views=excluded.views,
			updated_at=excluded.updated_at,
			published_at=excluded.published_at`,
		p.ID, p.Title, p.Excerpt, p.Content, p.Author, p.Category, p.Status,
		featured, p.Views, p.CreatedAt.Format(time.RFC3339Nano), updated, published,
	)
	return err
}

// Delete removes a Post from the database.
// PRE: id is non-empty
// POST: Entity with given id is removed
func (s *SQLiteStore) Delete(ctx context.Context, id string) error {
	_, err := s.db.ExecContext(ctx, "DELETE FROM post WHERE id = ?", id)
	return err
}

// List retrieves posts matching the filter, newest first.
// PRE: filter has valid parameters
// POST: Returns matching entities
func (s *SQLiteStore) List(ctx context.Context, filter ListFilter) ([]domain.Post, error) {
	query := "SELECT " + postColumns + " FROM post"
	var conds []string
	var args []any
	if filter.Status != "" {
		conds = append(conds, "status = ?")
		args = append(args, filter.Status)
	}
	if filter.Category != "" {
		conds = append(conds, "category = ?")
		args = append(args, filter.Category)
	}
	if filter.Featured {
		conds = append(conds, "featured = 1")
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
	defer rows.Close()

	var results []domain.Post
	for rows.Next() {
		p, err := scanPost(rows.Scan)
		if err != nil {
			return nil, err
		}
		results = append(results, p)
	}
	return results, rows.Err()
}

// IncrementViews bumps the view counter for one post. Unknown ids no-op.
// PRE: id is non-empty
// POST: views incremented by one when the post exists
func (s *SQLiteStore) IncrementViews(ctx context.Context, id string) error {
	_, err := s.db.ExecContext(ctx, "UPDATE post SET views = views + 1 WHERE id = ?", id)
	return err
}

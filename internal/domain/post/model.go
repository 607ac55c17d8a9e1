package post

import (
	"errors"
	"strings"
	"time"
)

// Max length constants for user-editable fields.
const (
	MaxTitleLength = 200
)

// Post status constants
const (
	StatusDraft     = "draft"
	StatusPublished = "published"
)

// Category constants
const (
	CategoryTips      = "tips"
	CategoryEvents    = "events"
	CategoryEquipment = "equipment"
	CategoryCommunity = "community"
)

// ValidCategories contains all valid post categories.
var ValidCategories = []string{CategoryTips, CategoryEvents, CategoryEquipment, CategoryCommunity}

// Domain errors
var (
	ErrEmptyTitle       = errors.New("post title cannot be empty")
	ErrEmptyContent     = errors.New("post content cannot be empty")
	ErrInvalidCategory  = errors.New("category must be one of: tips, events, equipment, community")
	ErrAlreadyPublished = errors.New("post is already published")
)

// Post holds state for one blog article. Content is markdown; rendering
// to HTML happens at the delivery edge.
type Post struct {
	ID          string
	Title       string
	Excerpt     string
	Content     string
	Author      string
	Category    string
	Status      string
	Featured    bool
	Views       int
	CreatedAt   time.Time
	UpdatedAt   time.Time
	PublishedAt time.Time // zero until published
}

// Validate checks if the Post has valid data.
// PRE: Post struct is initialized
// POST: Returns error if validation fails, nil otherwise
func (p *Post) Validate() error {
	if strings.TrimSpace(p.Title) == "" {
		return ErrEmptyTitle
	}
	if len(p.Title) > MaxTitleLength {
		return errors.New("post title cannot exceed 200 characters")
	}
	if strings.TrimSpace(p.Content) == "" {
		return ErrEmptyContent
	}
	valid := false
	for _, c := range ValidCategories {
		if p.Category == c {
			valid = true
			break
		}
	}
	if !valid {
		return ErrInvalidCategory
	}
	if p.Status != StatusDraft && p.Status != StatusPublished {
		return errors.New("status must be 'draft' or 'published'")
	}
	return nil
}

// IsPublished returns true if the post is visible to members.
// INVARIANT: Status field is not mutated
func (p *Post) IsPublished() bool {
	return p.Status == StatusPublished
}

// Publish marks the post as published at the given time.
// PRE: Post is in draft status
// POST: Status is published, PublishedAt is set
func (p *Post) Publish(now time.Time) error {
	if p.Status == StatusPublished {
		return ErrAlreadyPublished
	}
	p.Status = StatusPublished
	p.PublishedAt = now
	return nil
}

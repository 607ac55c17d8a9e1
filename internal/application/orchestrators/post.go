package orchestrators

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"rinkside/internal/domain/post"

	"github.com/google/uuid"
)

// PostStore defines the blog persistence interface used by the content
// orchestrators.
type PostStore interface {
	GetByID(ctx context.Context, id string) (post.Post, error)
	Save(ctx context.Context, p post.Post) error
	Delete(ctx context.Context, id string) error
}

// CreatePostInput carries input for drafting a blog post.
type CreatePostInput struct {
	Title    string
	Excerpt  string
	Content  string // markdown
	Author   string
	Category string
	Featured bool
	Publish  bool // publish immediately instead of saving a draft
}

// CreatePostDeps holds dependencies for CreatePost.
type CreatePostDeps struct {
	PostStore  PostStore
	Now        func() time.Time
	GenerateID func() string
}

// ExecuteCreatePost validates and persists a new blog post.
// PRE: Title, Content and Category are provided
// POST: Post persisted as draft, or published when Publish is set
func ExecuteCreatePost(ctx context.Context, input CreatePostInput, deps CreatePostDeps) (post.Post, error) {
	now := time.Now
	if deps.Now != nil {
		now = deps.Now
	}
	generateID := uuid.NewString
	if deps.GenerateID != nil {
		generateID = deps.GenerateID
	}

	p := post.Post{
		ID:        generateID(),
		Title:     strings.TrimSpace(input.Title),
		Excerpt:   strings.TrimSpace(input.Excerpt),
		Content:   input.Content,
		Author:    strings.TrimSpace(input.Author),
		Category:  input.Category,
		Status:    post.StatusDraft,
		Featured:  input.Featured,
		CreatedAt: now(),
	}
	if input.Publish {
		if err := p.Publish(now()); err != nil {
			return post.Post{}, err
		}
	}
	if err := p.Validate(); err != nil {
		return post.Post{}, err
	}

	if err := deps.PostStore.Save(ctx, p); err != nil {
		return post.Post{}, err
	}

	slog.Info("post_event", "event", "created", "post_id", p.ID, "status", p.Status, "category", p.Category)
	return p, nil
}

// UpdatePostInput carries the partial update for one post. Nil pointer fields
// are left unchanged.
type UpdatePostInput struct {
	PostID   string
	Title    *string
	Excerpt  *string
	Content  *string
	Category *string
	Featured *bool
}

// UpdatePostDeps holds dependencies for UpdatePost.
type UpdatePostDeps struct {
	PostStore PostStore
	Now       func() time.Time
}

// ExecuteUpdatePost merges the provided fields into an existing post and
// stamps UpdatedAt.
// PRE: PostID refers to an existing post
// POST: Only the provided fields change; status and view count survive
func ExecuteUpdatePost(ctx context.Context, input UpdatePostInput, deps UpdatePostDeps) (post.Post, error) {
	now := time.Now
	if deps.Now != nil {
		now = deps.Now
	}

	p, err := deps.PostStore.GetByID(ctx, input.PostID)
	if err != nil {
		return post.Post{}, err
	}

	if input.Title != nil {
		p.Title = strings.TrimSpace(*input.Title)
	}
	if input.Excerpt != nil {
		p.Excerpt = strings.TrimSpace(*input.Excerpt)
	}
	if input.Content != nil {
		p.Content = *input.Content
	}
	if input.Category != nil {
		p.Category = *input.Category
	}
	if input.Featured != nil {
		p.Featured = *input.Featured
	}
	p.UpdatedAt = now()

	if err := p.Validate(); err != nil {
		return post.Post{}, err
	}
	if err := deps.PostStore.Save(ctx, p); err != nil {
		return post.Post{}, err
	}

	slog.Info("post_event", "event", "updated", "post_id", p.ID)
	return p, nil
}

// PublishPostInput identifies the draft to publish.
type PublishPostInput struct {
	PostID string
}

// ExecutePublishPost moves a draft to published.
// PRE: PostID refers to a draft post
// POST: Post is published with PublishedAt set; republishing fails
func ExecutePublishPost(ctx context.Context, input PublishPostInput, deps UpdatePostDeps) (post.Post, error) {
	now := time.Now
	if deps.Now != nil {
		now = deps.Now
	}

	p, err := deps.PostStore.GetByID(ctx, input.PostID)
	if err != nil {
		return post.Post{}, err
	}
	if err := p.Publish(now()); err != nil {
		return post.Post{}, err
	}
	if err := deps.PostStore.Save(ctx, p); err != nil {
		return post.Post{}, err
	}

	slog.Info("post_event", "event", "published", "post_id", p.ID)
	return p, nil
}

// DeletePostInput identifies the post to remove.
type DeletePostInput struct {
	PostID string
}

// DeletePostDeps holds dependencies for DeletePost.
type DeletePostDeps struct {
	PostStore PostStore
}

// ExecuteDeletePost removes a post outright. Drafts and published posts
// delete the same way.
// PRE: PostID is non-empty
// POST: Post with given id is gone
func ExecuteDeletePost(ctx context.Context, input DeletePostInput, deps DeletePostDeps) error {
	if err := deps.PostStore.Delete(ctx, input.PostID); err != nil {
		return err
	}
	slog.Info("post_event", "event", "deleted", "post_id", input.PostID)
	return nil
}

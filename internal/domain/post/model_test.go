package post_test

import (
	"testing"
	"time"

	"rinkside/internal/domain/post"
)

// TestPostValidation tests validation of Post.
func TestPostValidation(t *testing.T) {
	valid := post.Post{
		ID:       "b1",
		Title:    "Essential Safety Tips for Beginner Skaters",
		Excerpt:  "Fundamentals before you hit the rink.",
		Content:  "Wear your **pads**.",
		Author:   "Sarah Johnson",
		Category: post.CategoryTips,
		Status:   post.StatusDraft,
	}

	tests := []struct {
		name    string
		mutate  func(p *post.Post)
		wantErr bool
	}{
		{name: "valid draft", mutate: func(p *post.Post) {}, wantErr: false},
		{name: "empty title", mutate: func(p *post.Post) { p.Title = "" }, wantErr: true},
		{name: "empty content", mutate: func(p *post.Post) { p.Content = "  " }, wantErr: true},
		{name: "bad category", mutate: func(p *post.Post) { p.Category = "news" }, wantErr: true},
		{name: "bad status", mutate: func(p *post.Post) { p.Status = "archived" }, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := valid
			tt.mutate(&p)
			err := p.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

// TestPublish verifies the draft-to-published transition.
func TestPublish(t *testing.T) {
	now := time.Date(2024, 6, 1, 9, 0, 0, 0, time.UTC)
	p := post.Post{Title: "T", Content: "c", Category: post.CategoryEvents, Status: post.StatusDraft}

	if err := p.Publish(now); err != nil {
		t.Fatalf("Publish failed: %v", err)
	}
	if !p.IsPublished() {
		t.Error("post should be published")
	}
	if !p.PublishedAt.Equal(now) {
		t.Errorf("PublishedAt = %v, want %v", p.PublishedAt, now)
	}

	if err := p.Publish(now); err != post.ErrAlreadyPublished {
		t.Errorf("second Publish error = %v, want ErrAlreadyPublished", err)
	}
}

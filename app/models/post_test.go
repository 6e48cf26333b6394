package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPostValidation(t *testing.T) {
	valid := func() *Post {
		return &Post{
			ID:      "1700000000000-abcd1234",
			Slug:    "valid-title",
			Title:   "Valid Title",
			Content: "Some body text.",
			Date:    Today(),
			Source:  SourceLocal,
		}
	}

	tests := []struct {
		name    string
		mutate  func(*Post)
		wantErr bool
	}{
		{name: "valid post", mutate: func(p *Post) {}, wantErr: false},
		{name: "missing id", mutate: func(p *Post) { p.ID = "" }, wantErr: true},
		{name: "missing slug", mutate: func(p *Post) { p.Slug = "" }, wantErr: true},
		{name: "missing title", mutate: func(p *Post) { p.Title = "" }, wantErr: true},
		{name: "missing content", mutate: func(p *Post) { p.Content = "" }, wantErr: true},
		{name: "zero date", mutate: func(p *Post) { p.Date = Date{} }, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			post := valid()
			tt.mutate(post)
			err := post.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestPostBeforeCreate(t *testing.T) {
	t.Run("fills defaults", func(t *testing.T) {
		post := &Post{ID: "x", Slug: "x", Title: "X", Content: "Body text for the post."}
		post.BeforeCreate()
		assert.False(t, post.Date.IsZero())
		assert.Equal(t, "Body text for the post.", post.Excerpt)
		assert.Equal(t, SourceLocal, post.Source)
	})

	t.Run("preserves explicit values", func(t *testing.T) {
		date, _ := ParseDate("2020-05-01")
		post := &Post{ID: "x", Slug: "x", Title: "X", Content: "Body", Excerpt: "Custom", Date: date, Source: SourceOrigin}
		post.BeforeCreate()
		assert.Equal(t, "2020-05-01", post.Date.String())
		assert.Equal(t, "Custom", post.Excerpt)
		assert.Equal(t, SourceOrigin, post.Source)
	})
}

func TestPostIsOrigin(t *testing.T) {
	assert.True(t, (&Post{Source: SourceOrigin}).IsOrigin())
	assert.False(t, (&Post{Source: SourceLocal}).IsOrigin())
	assert.False(t, (&Post{}).IsOrigin())
}

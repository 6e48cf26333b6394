package models

import "time"

// Source tags where a post record came from. Origin posts arrive from the
// read-only seed collection and are never editable; local posts live in the
// persistent store and support full CRUD.
type Source string

const (
	SourceOrigin Source = "origin"
	SourceLocal  Source = "local"
)

// Post represents a blog post from either source.
type Post struct {
	ID      string `json:"id" validate:"required"`
	Slug    string `json:"slug" validate:"required"`
	Title   string `json:"title" validate:"required"`
	Content string `json:"content" validate:"required"`
	Excerpt string `json:"excerpt,omitempty" validate:"-"`
	Date    Date   `json:"date" validate:"-"`
	Source  Source `json:"source,omitempty" validate:"-"`
}

// Comment represents a reader comment, keyed to a post by its slug. The slug
// is denormalized and never validated against existing posts; a comment for a
// vanished slug is simply unreachable.
type Comment struct {
	ID       string    `json:"id" validate:"required"`
	PostSlug string    `json:"postSlug" validate:"required"`
	Author   string    `json:"author" validate:"required"`
	Content  string    `json:"content" validate:"required,min=3"`
	Date     time.Time `json:"date" validate:"required"`
}

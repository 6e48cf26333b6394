package repositories

import "inkwell/app/models"

// PostRepository defines the interface for mutable post data access. Origin
// posts never enter this collection, so lookups against their ids always
// miss. That membership test is what decides editability.
type PostRepository interface {
	Create(post *models.Post) error
	GetByID(id string) (*models.Post, error)
	List() []models.Post
	Update(id string, update PostUpdate) error
	Delete(id string) (*models.Post, error)
	IsEditable(id string) bool
}

// CommentRepository defines the interface for comment data access. Comments
// are append-only from the caller's side; the only removal path is the
// cascade triggered by a post deletion.
type CommentRepository interface {
	Create(comment *models.Comment) error
	ListBySlug(postSlug string) []models.Comment
	CountBySlug(postSlug string) int
	DeleteBySlug(postSlug string) error
}

// PostUpdate carries the fields an update may replace. Nil fields are left
// untouched; id, date, and source are immutable after creation.
type PostUpdate struct {
	Title   *string
	Content *string
	Slug    *string
	Excerpt *string
}

package repositories

import (
	"fmt"
	"sort"

	"inkwell/app/models"
	"inkwell/app/store"
)

// StoreCommentRepository implements CommentRepository over a key-value store
// adapter, with the same total-read / fail-closed-write policy as the post
// repository.
type StoreCommentRepository struct {
	store store.Store
}

// NewStoreCommentRepository creates a new StoreCommentRepository.
func NewStoreCommentRepository(st store.Store) *StoreCommentRepository {
	return &StoreCommentRepository{store: st}
}

func (r *StoreCommentRepository) load() []models.Comment {
	var comments []models.Comment
	_ = r.store.Load(store.CommentsCollection, &comments)
	return comments
}

// Create assigns a fresh id, stamps the timestamp, and appends the comment.
// Insertion order does not matter for display; ListBySlug sorts.
func (r *StoreCommentRepository) Create(comment *models.Comment) error {
	comment.ID = newRecordID()
	comment.BeforeCreate()

	if err := comment.Validate(); err != nil {
		return fmt.Errorf("invalid comment: %w", err)
	}

	comments := append(r.load(), *comment)
	if err := r.store.SaveAll(store.CommentsCollection, comments); err != nil {
		return fmt.Errorf("failed to save comment: %w", err)
	}
	return nil
}

// ListBySlug returns the comments for a post slug, newest-first. The sort is
// stable so equal timestamps keep their insertion order.
func (r *StoreCommentRepository) ListBySlug(postSlug string) []models.Comment {
	var matched []models.Comment
	for _, comment := range r.load() {
		if comment.PostSlug == postSlug {
			matched = append(matched, comment)
		}
	}
	sort.SliceStable(matched, func(i, j int) bool {
		return matched[i].Date.After(matched[j].Date)
	})
	return matched
}

// CountBySlug returns the number of comments for a post slug.
func (r *StoreCommentRepository) CountBySlug(postSlug string) int {
	count := 0
	for _, comment := range r.load() {
		if comment.PostSlug == postSlug {
			count++
		}
	}
	return count
}

// DeleteBySlug removes every comment whose postSlug matches. Deleting a slug
// with zero comments is a no-op, not an error; the cascade path relies on
// that idempotence.
func (r *StoreCommentRepository) DeleteBySlug(postSlug string) error {
	comments := r.load()
	kept := comments[:0]
	removed := false
	for _, comment := range comments {
		if comment.PostSlug == postSlug {
			removed = true
			continue
		}
		kept = append(kept, comment)
	}
	if !removed {
		return nil
	}
	if err := r.store.SaveAll(store.CommentsCollection, kept); err != nil {
		return fmt.Errorf("failed to delete comments: %w", err)
	}
	return nil
}

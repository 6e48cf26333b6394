package repositories

import (
	"fmt"

	"inkwell/app/models"
	"inkwell/app/store"
)

// StorePostRepository implements PostRepository over a key-value store
// adapter. The whole collection is read and rewritten on every mutation; the
// data volume is a single user's posts, so simplicity wins over indexing.
//
// Read methods are total over persistence failures: an unreadable backend
// behaves like an empty collection. Mutations report an error when the write
// cannot be persisted, and nothing is ever partially written.
type StorePostRepository struct {
	store store.Store
}

// NewStorePostRepository creates a new StorePostRepository.
func NewStorePostRepository(st store.Store) *StorePostRepository {
	return &StorePostRepository{store: st}
}

func (r *StorePostRepository) load() []models.Post {
	var posts []models.Post
	// Fail soft: unavailable or corrupt state reads as empty.
	_ = r.store.Load(store.PostsCollection, &posts)
	return posts
}

// Create assigns a fresh id, stamps defaults, and prepends the post so the
// collection stays newest-first in insertion order.
func (r *StorePostRepository) Create(post *models.Post) error {
	post.ID = newRecordID()
	post.BeforeCreate()

	if err := post.Validate(); err != nil {
		return fmt.Errorf("invalid post: %w", err)
	}

	posts := append([]models.Post{*post}, r.load()...)
	if err := r.store.SaveAll(store.PostsCollection, posts); err != nil {
		return fmt.Errorf("failed to save post: %w", err)
	}
	return nil
}

// GetByID retrieves a mutable post by id.
func (r *StorePostRepository) GetByID(id string) (*models.Post, error) {
	for _, post := range r.load() {
		if post.ID == id {
			return &post, nil
		}
	}
	return nil, ErrNotFound
}

// List returns every mutable post in stored order, newest-first.
func (r *StorePostRepository) List() []models.Post {
	return r.load()
}

// Update merges the provided fields over the stored record and persists the
// full collection. Posts absent from the mutable collection (origin posts
// included, by construction) report ErrNotFound.
func (r *StorePostRepository) Update(id string, update PostUpdate) error {
	posts := r.load()
	for i := range posts {
		if posts[i].ID != id {
			continue
		}
		if update.Title != nil {
			posts[i].Title = *update.Title
		}
		if update.Content != nil {
			posts[i].Content = *update.Content
		}
		if update.Slug != nil {
			posts[i].Slug = *update.Slug
		}
		if update.Excerpt != nil {
			posts[i].Excerpt = *update.Excerpt
		}
		if err := r.store.SaveAll(store.PostsCollection, posts); err != nil {
			return fmt.Errorf("failed to save post: %w", err)
		}
		return nil
	}
	return ErrNotFound
}

// Delete removes the post and persists the remainder, returning the removed
// record so the caller can cascade comment deletion by its slug.
func (r *StorePostRepository) Delete(id string) (*models.Post, error) {
	posts := r.load()
	for i := range posts {
		if posts[i].ID != id {
			continue
		}
		deleted := posts[i]
		posts = append(posts[:i], posts[i+1:]...)
		if err := r.store.SaveAll(store.PostsCollection, posts); err != nil {
			return nil, fmt.Errorf("failed to delete post: %w", err)
		}
		return &deleted, nil
	}
	return nil, ErrNotFound
}

// IsEditable reports whether id belongs to the mutable collection.
func (r *StorePostRepository) IsEditable(id string) bool {
	for _, post := range r.load() {
		if post.ID == id {
			return true
		}
	}
	return false
}

package services

import (
	"fmt"
	"strings"

	"inkwell/app/models"
	"inkwell/app/repositories"
)

// PostService handles business logic for mutable posts: boundary validation,
// slug and excerpt derivation, and the comment cascade on delete. The
// repository below it may assume trimmed, non-empty input.
type PostService struct {
	postRepo    repositories.PostRepository
	commentRepo repositories.CommentRepository
}

// NewPostService creates a new PostService
func NewPostService(postRepo repositories.PostRepository, commentRepo repositories.CommentRepository) *PostService {
	return &PostService{
		postRepo:    postRepo,
		commentRepo: commentRepo,
	}
}

// CreatePost validates the input, derives slug and excerpt, and persists a
// new mutable post stamped with today's date.
func (s *PostService) CreatePost(title, content string) (*models.Post, error) {
	title = strings.TrimSpace(title)
	content = strings.TrimSpace(content)
	slug, err := validatePostFields(title, content)
	if err != nil {
		return nil, err
	}

	post := &models.Post{
		Title:   title,
		Slug:    slug,
		Content: content,
		Excerpt: models.Excerpt(content, models.ExcerptLength),
		Date:    models.Today(),
		Source:  models.SourceLocal,
	}
	if err := s.postRepo.Create(post); err != nil {
		return nil, err
	}
	return post, nil
}

// UpdatePost replaces title and content on an existing mutable post,
// recomputing slug and excerpt. The stored date is deliberately preserved;
// updates do not re-stamp it. Origin posts are never present in the mutable
// collection, so targeting one reports ErrNotFound.
func (s *PostService) UpdatePost(id, title, content string) error {
	title = strings.TrimSpace(title)
	content = strings.TrimSpace(content)
	slug, err := validatePostFields(title, content)
	if err != nil {
		return err
	}

	excerpt := models.Excerpt(content, models.ExcerptLength)
	return s.postRepo.Update(id, repositories.PostUpdate{
		Title:   &title,
		Content: &content,
		Slug:    &slug,
		Excerpt: &excerpt,
	})
}

// DeletePost removes a mutable post and cascades: every comment keyed to the
// deleted post's slug goes with it.
func (s *PostService) DeletePost(id string) error {
	deleted, err := s.postRepo.Delete(id)
	if err != nil {
		return err
	}
	if err := s.commentRepo.DeleteBySlug(deleted.Slug); err != nil {
		return fmt.Errorf("post deleted but cascade failed: %w", err)
	}
	return nil
}

// GetPost retrieves a mutable post by id.
func (s *PostService) GetPost(id string) (*models.Post, error) {
	return s.postRepo.GetByID(id)
}

// IsEditable reports whether id names a mutable post.
func (s *PostService) IsEditable(id string) bool {
	return s.postRepo.IsEditable(id)
}

// validatePostFields checks the trimmed title and content and returns the
// derived slug. A title made entirely of special characters slugifies to the
// empty string, which is rejected here because it cannot serve as a route key.
func validatePostFields(title, content string) (string, error) {
	if title == "" {
		return "", fmt.Errorf("title is required")
	}
	if content == "" {
		return "", fmt.Errorf("content is required")
	}
	slug := models.Slugify(title)
	if slug == "" {
		return "", fmt.Errorf("title must contain at least one letter or number")
	}
	return slug, nil
}

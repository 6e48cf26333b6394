package services

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"inkwell/app/models"
	"inkwell/app/repositories"
)

// minCommentLength is the minimum comment body length after trimming.
const minCommentLength = 3

// CommentService handles business logic for comments. The post slug is taken
// as given and never checked against existing posts; a comment on an unknown
// slug is stored and simply never listed.
type CommentService struct {
	commentRepo repositories.CommentRepository
}

// NewCommentService creates a new CommentService
func NewCommentService(commentRepo repositories.CommentRepository) *CommentService {
	return &CommentService{commentRepo: commentRepo}
}

// AddComment validates and appends a comment. The id and timestamp are
// assigned at save time, never taken from the caller.
func (s *CommentService) AddComment(postSlug, author, content string) (*models.Comment, error) {
	author = strings.TrimSpace(author)
	content = strings.TrimSpace(content)

	if author == "" {
		return nil, fmt.Errorf("author is required")
	}
	if content == "" {
		return nil, fmt.Errorf("content is required")
	}
	if utf8.RuneCountInString(content) < minCommentLength {
		return nil, fmt.Errorf("content must be at least %d characters", minCommentLength)
	}

	comment := &models.Comment{
		PostSlug: postSlug,
		Author:   author,
		Content:  content,
	}
	if err := s.commentRepo.Create(comment); err != nil {
		return nil, err
	}
	return comment, nil
}

// ListBySlug returns a post's comments, newest-first.
func (s *CommentService) ListBySlug(postSlug string) []models.Comment {
	return s.commentRepo.ListBySlug(postSlug)
}

// CountBySlug returns how many comments a post has.
func (s *CommentService) CountBySlug(postSlug string) int {
	return s.commentRepo.CountBySlug(postSlug)
}

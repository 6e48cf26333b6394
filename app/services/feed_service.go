package services

import (
	"sort"
	"strings"

	"inkwell/app/models"
	"inkwell/app/repositories"
)

// DefaultPageSize is the number of posts per listing page.
const DefaultPageSize = 6

// FeedService is the merge/query engine: it joins the read-only origin
// collection with the mutable repository into one ordered view. There is no
// cache; every Combine call re-reads persisted state, trading recomputation
// for always-fresh consistency with the last write.
type FeedService struct {
	postRepo repositories.PostRepository
}

// NewFeedService creates a new FeedService
func NewFeedService(postRepo repositories.PostRepository) *FeedService {
	return &FeedService{postRepo: postRepo}
}

// Combine merges the mutable collection with originPosts and sorts the result
// newest-first by date. The sort is stable and mutable posts are concatenated
// first, so on equal dates user posts lead and relative order is preserved.
func (s *FeedService) Combine(originPosts []models.Post) []models.Post {
	local := s.postRepo.List()
	merged := make([]models.Post, 0, len(local)+len(originPosts))
	merged = append(merged, local...)
	merged = append(merged, originPosts...)

	sort.SliceStable(merged, func(i, j int) bool {
		return merged[i].Date.After(merged[j].Date.Time)
	})
	return merged
}

// FindBySlug returns the first post in the combined feed whose slug matches.
// Slug uniqueness is not enforced anywhere, so duplicates resolve to first
// match in feed order; mutable posts shadow origin posts on collision.
func (s *FeedService) FindBySlug(originPosts []models.Post, slug string) (*models.Post, bool) {
	for _, post := range s.Combine(originPosts) {
		if post.Slug == slug {
			return &post, true
		}
	}
	return nil, false
}

// Search filters posts by case-insensitive substring match against the title.
// An empty or whitespace-only query returns the input unchanged.
func (s *FeedService) Search(posts []models.Post, query string) []models.Post {
	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" {
		return posts
	}

	var matched []models.Post
	for _, post := range posts {
		if strings.Contains(strings.ToLower(post.Title), query) {
			matched = append(matched, post)
		}
	}
	return matched
}

// Paginate slices out the requested page. Pages are 1-based; a page past the
// end yields an empty slice rather than an error.
func (s *FeedService) Paginate(posts []models.Post, page, pageSize int) []models.Post {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 {
		pageSize = DefaultPageSize
	}

	start := (page - 1) * pageSize
	if start >= len(posts) {
		return []models.Post{}
	}
	end := start + pageSize
	if end > len(posts) {
		end = len(posts)
	}
	return posts[start:end]
}

// TotalPages reports how many pages a collection spans. An empty collection
// still counts as one page so the UI always has a "page 1 of 1" state.
func (s *FeedService) TotalPages(count, pageSize int) int {
	if pageSize < 1 {
		pageSize = DefaultPageSize
	}
	pages := (count + pageSize - 1) / pageSize
	if pages < 1 {
		return 1
	}
	return pages
}

package services

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"inkwell/app/models"
	"inkwell/app/repositories"
	"inkwell/app/store"
)

func mustDate(t *testing.T, s string) models.Date {
	t.Helper()
	d, err := models.ParseDate(s)
	assert.NoError(t, err)
	return d
}

func seedFeed(t *testing.T) (*FeedService, *store.MemoryStore) {
	t.Helper()
	st := store.NewMemoryStore()
	local := []models.Post{
		{ID: "l1", Slug: "local-newest", Title: "Local Newest", Content: "body", Date: mustDate(t, "2024-08-01"), Source: models.SourceLocal},
		{ID: "l2", Slug: "local-tied", Title: "Local Tied", Content: "body", Date: mustDate(t, "2024-04-18"), Source: models.SourceLocal},
	}
	assert.NoError(t, st.SaveAll(store.PostsCollection, local))
	return NewFeedService(repositories.NewStorePostRepository(st)), st
}

func originFixture(t *testing.T) []models.Post {
	t.Helper()
	return []models.Post{
		{ID: "o1", Slug: "origin-tied", Title: "Origin Tied", Content: "body", Date: mustDate(t, "2024-04-18"), Source: models.SourceOrigin},
		{ID: "o2", Slug: "origin-oldest", Title: "Origin Oldest", Content: "body", Date: mustDate(t, "2024-01-15"), Source: models.SourceOrigin},
	}
}

func TestCombine(t *testing.T) {
	feed, st := seedFeed(t)
	origin := originFixture(t)

	t.Run("sorted newest first", func(t *testing.T) {
		combined := feed.Combine(origin)
		assert.Len(t, combined, 4)
		for i := 1; i < len(combined); i++ {
			assert.False(t, combined[i].Date.After(combined[i-1].Date.Time),
				"feed must be non-increasing by date at index %d", i)
		}
		assert.Equal(t, "local-newest", combined[0].Slug)
		assert.Equal(t, "origin-oldest", combined[3].Slug)
	})

	t.Run("equal dates put local posts first", func(t *testing.T) {
		combined := feed.Combine(origin)
		assert.Equal(t, "local-tied", combined[1].Slug)
		assert.Equal(t, "origin-tied", combined[2].Slug)
	})

	t.Run("re-reads the store on every call", func(t *testing.T) {
		extra := []models.Post{
			{ID: "l3", Slug: "just-written", Title: "Just Written", Content: "body", Date: mustDate(t, "2024-09-01"), Source: models.SourceLocal},
		}
		assert.NoError(t, st.SaveAll(store.PostsCollection, extra))
		combined := feed.Combine(origin)
		assert.Equal(t, "just-written", combined[0].Slug)
	})

	t.Run("empty origin still lists local posts", func(t *testing.T) {
		combined := feed.Combine(nil)
		assert.Len(t, combined, 1)
	})
}

func TestFindBySlug(t *testing.T) {
	feed, _ := seedFeed(t)
	origin := originFixture(t)

	t.Run("finds origin and local posts", func(t *testing.T) {
		post, ok := feed.FindBySlug(origin, "origin-oldest")
		assert.True(t, ok)
		assert.Equal(t, "o2", post.ID)

		post, ok = feed.FindBySlug(origin, "local-newest")
		assert.True(t, ok)
		assert.Equal(t, "l1", post.ID)
	})

	t.Run("missing slug", func(t *testing.T) {
		_, ok := feed.FindBySlug(origin, "no-such-slug")
		assert.False(t, ok)
	})

	t.Run("duplicate slugs resolve to first match in feed order", func(t *testing.T) {
		dup := append(originFixture(t), models.Post{
			ID: "o3", Slug: "local-tied", Title: "Origin Shadowed", Content: "body",
			Date: mustDate(t, "2023-01-01"), Source: models.SourceOrigin,
		})
		post, ok := feed.FindBySlug(dup, "local-tied")
		assert.True(t, ok)
		assert.Equal(t, "l2", post.ID, "local post should shadow the origin duplicate")
	})
}

func TestSearch(t *testing.T) {
	feed := NewFeedService(repositories.NewStorePostRepository(store.NewMemoryStore()))
	posts := []models.Post{
		{Title: "Go Fast"},
		{Title: "Slow and Steady"},
		{Title: "Going Places"},
	}

	t.Run("case-insensitive substring", func(t *testing.T) {
		matched := feed.Search(posts, "go")
		assert.Len(t, matched, 2)
		assert.Equal(t, "Go Fast", matched[0].Title)
		assert.Equal(t, "Going Places", matched[1].Title)
	})

	t.Run("empty query returns input unchanged", func(t *testing.T) {
		assert.Equal(t, posts, feed.Search(posts, ""))
		assert.Equal(t, posts, feed.Search(posts, "   "))
	})

	t.Run("no matches", func(t *testing.T) {
		assert.Empty(t, feed.Search(posts, "zeppelin"))
	})
}

func TestPaginate(t *testing.T) {
	feed := NewFeedService(repositories.NewStorePostRepository(store.NewMemoryStore()))

	posts := make([]models.Post, 10)
	for i := range posts {
		posts[i] = models.Post{ID: fmt.Sprintf("p%d", i)}
	}

	t.Run("second page holds the remainder", func(t *testing.T) {
		page := feed.Paginate(posts, 2, 6)
		assert.Len(t, page, 4)
		assert.Equal(t, "p6", page[0].ID)
		assert.Equal(t, "p9", page[3].ID)
	})

	t.Run("page past the end is empty", func(t *testing.T) {
		assert.Empty(t, feed.Paginate(posts, 3, 6))
	})

	t.Run("full first page", func(t *testing.T) {
		page := feed.Paginate(posts, 1, 6)
		assert.Len(t, page, 6)
		assert.Equal(t, "p0", page[0].ID)
	})

	t.Run("out-of-range page number normalized", func(t *testing.T) {
		page := feed.Paginate(posts, 0, 6)
		assert.Len(t, page, 6)
	})
}

func TestTotalPages(t *testing.T) {
	feed := NewFeedService(repositories.NewStorePostRepository(store.NewMemoryStore()))

	assert.Equal(t, 2, feed.TotalPages(10, 6))
	assert.Equal(t, 1, feed.TotalPages(6, 6))
	assert.Equal(t, 1, feed.TotalPages(1, 6))
	assert.Equal(t, 1, feed.TotalPages(0, 6), "empty collections still show page 1 of 1")
}

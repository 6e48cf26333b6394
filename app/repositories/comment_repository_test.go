package repositories

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"inkwell/app/models"
	"inkwell/app/store"
)

func TestCommentRepositoryCreate(t *testing.T) {
	repo := NewStoreCommentRepository(store.NewMemoryStore())

	before := time.Now()
	comment := &models.Comment{PostSlug: "hello-world", Author: "Ada", Content: "Nice post!"}
	assert.NoError(t, repo.Create(comment))

	assert.NotEmpty(t, comment.ID)
	assert.False(t, comment.Date.Before(before.Add(-time.Second)))

	listed := repo.ListBySlug("hello-world")
	assert.Len(t, listed, 1)
	assert.Equal(t, "Ada", listed[0].Author)
}

func TestCommentRepositoryListBySlug(t *testing.T) {
	st := store.NewMemoryStore()
	repo := NewStoreCommentRepository(st)

	base := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	seeded := []models.Comment{
		{ID: "a", PostSlug: "hello-world", Author: "Ada", Content: "oldest", Date: base},
		{ID: "b", PostSlug: "other-post", Author: "Bob", Content: "elsewhere", Date: base.Add(time.Hour)},
		{ID: "c", PostSlug: "hello-world", Author: "Cleo", Content: "newest", Date: base.Add(2 * time.Hour)},
		{ID: "d", PostSlug: "hello-world", Author: "Dee", Content: "tied first", Date: base.Add(time.Hour)},
		{ID: "e", PostSlug: "hello-world", Author: "Eve", Content: "tied second", Date: base.Add(time.Hour)},
	}
	assert.NoError(t, st.SaveAll(store.CommentsCollection, seeded))

	t.Run("filters by exact slug and sorts newest first", func(t *testing.T) {
		listed := repo.ListBySlug("hello-world")
		assert.Len(t, listed, 4)
		assert.Equal(t, "newest", listed[0].Content)
		assert.Equal(t, "oldest", listed[3].Content)
	})

	t.Run("equal timestamps keep insertion order", func(t *testing.T) {
		listed := repo.ListBySlug("hello-world")
		assert.Equal(t, "tied first", listed[1].Content)
		assert.Equal(t, "tied second", listed[2].Content)
	})

	t.Run("unknown slug returns empty", func(t *testing.T) {
		assert.Empty(t, repo.ListBySlug("no-such-slug"))
	})
}

func TestCommentRepositoryCountBySlug(t *testing.T) {
	repo := NewStoreCommentRepository(store.NewMemoryStore())

	for i := 0; i < 3; i++ {
		comment := &models.Comment{PostSlug: "hello-world", Author: "Ada", Content: "A fine comment."}
		assert.NoError(t, repo.Create(comment))
	}
	other := &models.Comment{PostSlug: "other-post", Author: "Bob", Content: "Different thread."}
	assert.NoError(t, repo.Create(other))

	assert.Equal(t, 3, repo.CountBySlug("hello-world"))
	assert.Equal(t, 1, repo.CountBySlug("other-post"))
	assert.Equal(t, 0, repo.CountBySlug("no-such-slug"))
}

func TestCommentRepositoryDeleteBySlug(t *testing.T) {
	repo := NewStoreCommentRepository(store.NewMemoryStore())

	for i := 0; i < 2; i++ {
		assert.NoError(t, repo.Create(&models.Comment{PostSlug: "doomed", Author: "Ada", Content: "Going away."}))
	}
	assert.NoError(t, repo.Create(&models.Comment{PostSlug: "survivor", Author: "Bob", Content: "Staying put."}))

	t.Run("removes only matching comments", func(t *testing.T) {
		assert.NoError(t, repo.DeleteBySlug("doomed"))
		assert.Equal(t, 0, repo.CountBySlug("doomed"))
		assert.Equal(t, 1, repo.CountBySlug("survivor"))
	})

	t.Run("idempotent on empty slug", func(t *testing.T) {
		assert.NoError(t, repo.DeleteBySlug("doomed"))
		assert.NoError(t, repo.DeleteBySlug("never-existed"))
	})
}

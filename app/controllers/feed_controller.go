package controllers

import (
	"html/template"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"inkwell/app/models"
	"inkwell/app/render"
	"inkwell/app/services"
)

// FeedController serves the public, merged post feed: origin and user posts
// combined, searched, and paginated on every request.
type FeedController struct {
	feed     *services.FeedService
	posts    *services.PostService
	comments *services.CommentService
	origin   []models.Post
	pageSize int
}

// NewFeedController creates a new FeedController over the static origin
// collection supplied at process start.
func NewFeedController(feed *services.FeedService, posts *services.PostService, comments *services.CommentService, origin []models.Post, pageSize int) *FeedController {
	if pageSize < 1 {
		pageSize = services.DefaultPageSize
	}
	return &FeedController{
		feed:     feed,
		posts:    posts,
		comments: comments,
		origin:   origin,
		pageSize: pageSize,
	}
}

type feedEntry struct {
	models.Post
	CommentCount int  `json:"commentCount"`
	Editable     bool `json:"editable"`
}

type feedPage struct {
	Posts      []feedEntry `json:"posts"`
	Page       int         `json:"page"`
	TotalPages int         `json:"totalPages"`
	Total      int         `json:"total"`
}

type postDetail struct {
	feedEntry
	ContentHTML template.HTML    `json:"contentHtml"`
	Comments    []models.Comment `json:"comments"`
}

// Index handles the combined feed with optional search and pagination.
func (fc *FeedController) Index(w http.ResponseWriter, r *http.Request) {
	page := 1
	if pageStr := r.URL.Query().Get("page"); pageStr != "" {
		if p, err := strconv.Atoi(pageStr); err == nil && p > 0 {
			page = p
		}
	}

	perPage := fc.pageSize
	if perPageStr := r.URL.Query().Get("per_page"); perPageStr != "" {
		if pp, err := strconv.Atoi(perPageStr); err == nil && pp > 0 {
			perPage = pp
		}
	}

	posts := fc.feed.Combine(fc.origin)
	posts = fc.feed.Search(posts, r.URL.Query().Get("q"))

	entries := make([]feedEntry, 0, perPage)
	for _, post := range fc.feed.Paginate(posts, page, perPage) {
		entries = append(entries, fc.entry(post))
	}

	sendJSON(w, feedPage{
		Posts:      entries,
		Page:       page,
		TotalPages: fc.feed.TotalPages(len(posts), perPage),
		Total:      len(posts),
	})
}

// Show handles a single post by slug, with rendered content and its comment
// thread. Duplicate slugs resolve to the first match in feed order.
func (fc *FeedController) Show(w http.ResponseWriter, r *http.Request) {
	slug := mux.Vars(r)["slug"]

	post, ok := fc.feed.FindBySlug(fc.origin, slug)
	if !ok {
		sendError(w, "Post not found", http.StatusNotFound)
		return
	}

	comments := fc.comments.ListBySlug(slug)
	if comments == nil {
		comments = []models.Comment{}
	}

	sendJSON(w, postDetail{
		feedEntry:   fc.entry(*post),
		ContentHTML: render.Markdown(post.Content),
		Comments:    comments,
	})
}

func (fc *FeedController) entry(post models.Post) feedEntry {
	if post.Excerpt == "" {
		// Fallback for records stored before excerpts existed.
		post.Excerpt = models.Excerpt(post.Content, models.ExcerptLength)
	}
	return feedEntry{
		Post:         post,
		CommentCount: fc.comments.CountBySlug(post.Slug),
		Editable:     fc.posts.IsEditable(post.ID),
	}
}

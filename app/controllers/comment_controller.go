package controllers

import (
	"net/http"

	"github.com/gorilla/mux"

	"inkwell/app/models"
	"inkwell/app/services"
)

// CommentController handles HTTP requests for comments
type CommentController struct {
	commentService *services.CommentService
}

// NewCommentController creates a new CommentController
func NewCommentController(commentService *services.CommentService) *CommentController {
	return &CommentController{commentService: commentService}
}

type commentRequest struct {
	Author  string `json:"author"`
	Content string `json:"content"`
}

// Index handles listing all comments for a post slug, newest-first.
func (cc *CommentController) Index(w http.ResponseWriter, r *http.Request) {
	slug := mux.Vars(r)["slug"]

	comments := cc.commentService.ListBySlug(slug)
	if comments == nil {
		comments = []models.Comment{}
	}
	sendJSON(w, comments)
}

// Create handles appending a comment to a post's thread. The slug is taken as
// given; commenting on a slug with no post succeeds and the comment is simply
// never surfaced.
func (cc *CommentController) Create(w http.ResponseWriter, r *http.Request) {
	slug := mux.Vars(r)["slug"]

	var req commentRequest
	if !decodeBody(w, r, &req) {
		return
	}

	comment, err := cc.commentService.AddComment(slug, req.Author, req.Content)
	if err != nil {
		sendError(w, err.Error(), http.StatusBadRequest)
		return
	}

	w.WriteHeader(http.StatusCreated)
	sendJSON(w, comment)
}

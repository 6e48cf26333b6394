package controllers

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"inkwell/app/repositories"
	"inkwell/app/services"
)

// PostController handles the admin CRUD surface for mutable posts. Origin
// posts never appear here; they are not in the mutable collection, so every
// lookup against their ids reports not found.
type PostController struct {
	postService *services.PostService
}

// NewPostController creates a new PostController
func NewPostController(postService *services.PostService) *PostController {
	return &PostController{postService: postService}
}

type postRequest struct {
	Title   string `json:"title"`
	Content string `json:"content"`
}

// Create handles creating a new post
func (pc *PostController) Create(w http.ResponseWriter, r *http.Request) {
	var req postRequest
	if !decodeBody(w, r, &req) {
		return
	}

	post, err := pc.postService.CreatePost(req.Title, req.Content)
	if err != nil {
		sendError(w, err.Error(), http.StatusBadRequest)
		return
	}

	w.WriteHeader(http.StatusCreated)
	sendJSON(w, post)
}

// Show handles fetching a mutable post by id, for the edit form.
func (pc *PostController) Show(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	post, err := pc.postService.GetPost(id)
	if err != nil {
		sendError(w, "Post not found", http.StatusNotFound)
		return
	}
	sendJSON(w, post)
}

// Edit handles updating an existing post
func (pc *PostController) Edit(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	var req postRequest
	if !decodeBody(w, r, &req) {
		return
	}

	if err := pc.postService.UpdatePost(id, req.Title, req.Content); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			sendError(w, "Post not found", http.StatusNotFound)
			return
		}
		sendError(w, err.Error(), http.StatusBadRequest)
		return
	}

	post, err := pc.postService.GetPost(id)
	if err != nil {
		sendError(w, "Post not found", http.StatusNotFound)
		return
	}
	sendJSON(w, post)
}

// Delete handles deleting a post and its comment thread.
func (pc *PostController) Delete(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	if err := pc.postService.DeletePost(id); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			sendError(w, "Post not found", http.StatusNotFound)
			return
		}
		sendError(w, err.Error(), http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

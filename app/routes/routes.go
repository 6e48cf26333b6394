package routes

import (
	"github.com/gorilla/mux"

	"inkwell/app/config"
	"inkwell/app/controllers"
	"inkwell/app/middleware"
	"inkwell/app/models"
	"inkwell/app/repositories"
	"inkwell/app/services"
	"inkwell/app/store"
)

// Setup wires repositories, services, and controllers over the given store
// and returns the application's router. originPosts is the static read-only
// collection supplied once at process start.
func Setup(st store.Store, originPosts []models.Post, cfg config.AppConfig) (*mux.Router, error) {
	postRepo := repositories.NewStorePostRepository(st)
	commentRepo := repositories.NewStoreCommentRepository(st)

	postService := services.NewPostService(postRepo, commentRepo)
	commentService := services.NewCommentService(commentRepo)
	feedService := services.NewFeedService(postRepo)
	authService, err := services.NewAuthService(st, cfg.AdminPassword)
	if err != nil {
		return nil, err
	}

	feedController := controllers.NewFeedController(feedService, postService, commentService, originPosts, cfg.PageSize)
	postController := controllers.NewPostController(postService)
	commentController := controllers.NewCommentController(commentService)
	authController := controllers.NewAuthController(authService)

	router := mux.NewRouter()

	// Apply global middleware
	router.Use(middleware.Logger)
	router.Use(middleware.Recoverer)

	api := router.PathPrefix("/api").Subrouter()
	api.Use(middleware.ContentTypeJSON)

	// Public feed and comment endpoints
	api.HandleFunc("/posts", feedController.Index).Methods("GET")
	api.HandleFunc("/posts/{slug}", feedController.Show).Methods("GET")
	api.HandleFunc("/posts/{slug}/comments", commentController.Index).Methods("GET")
	api.HandleFunc("/posts/{slug}/comments", commentController.Create).Methods("POST")

	// Advisory admin gate
	api.HandleFunc("/admin/login", authController.Login).Methods("POST")
	api.HandleFunc("/admin/logout", authController.Logout).Methods("POST")
	api.HandleFunc("/admin/session", authController.Session).Methods("GET")

	// Admin CRUD endpoints behind the gate
	admin := api.PathPrefix("/admin").Subrouter()
	admin.Use(middleware.RequireAdmin(authService))
	admin.HandleFunc("/posts", postController.Create).Methods("POST")
	admin.HandleFunc("/posts/{id}", postController.Show).Methods("GET")
	admin.HandleFunc("/posts/{id}", postController.Edit).Methods("PUT")
	admin.HandleFunc("/posts/{id}", postController.Delete).Methods("DELETE")

	return router, nil
}

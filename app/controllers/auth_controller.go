package controllers

import (
	"net/http"

	"inkwell/app/services"
)

// AuthController handles the advisory admin gate: login, logout, and the
// session probe the admin UI polls. See AuthService for what this gate is
// and is not.
type AuthController struct {
	authService *services.AuthService
}

// NewAuthController creates a new AuthController
func NewAuthController(authService *services.AuthService) *AuthController {
	return &AuthController{authService: authService}
}

type loginRequest struct {
	Password string `json:"password"`
}

// Login checks the password and flips the privileged flag on success.
func (ac *AuthController) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if !decodeBody(w, r, &req) {
		return
	}

	ok, err := ac.authService.Login(req.Password)
	if err != nil {
		sendError(w, "Login failed: "+err.Error(), http.StatusInternalServerError)
		return
	}
	if !ok {
		sendError(w, "Invalid password", http.StatusUnauthorized)
		return
	}
	sendJSON(w, map[string]bool{"admin": true})
}

// Logout clears the privileged flag.
func (ac *AuthController) Logout(w http.ResponseWriter, r *http.Request) {
	if err := ac.authService.Logout(); err != nil {
		sendError(w, "Logout failed: "+err.Error(), http.StatusInternalServerError)
		return
	}
	sendJSON(w, map[string]bool{"admin": false})
}

// Session reports the current advisory flag state.
func (ac *AuthController) Session(w http.ResponseWriter, r *http.Request) {
	sendJSON(w, map[string]bool{"admin": ac.authService.IsAdmin()})
}

package services

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"inkwell/app/store"
)

// AuthService is the advisory admin gate. The privileged state is a single
// boolean flag in the store, trivially flippable by anyone with store access.
// It is a UX convenience, not a security boundary; nothing trusted may depend
// on it.
type AuthService struct {
	store        store.Store
	passwordHash []byte
}

// NewAuthService hashes the configured admin password once at construction so
// the plaintext never sits on the struct.
func NewAuthService(st store.Store, adminPassword string) (*AuthService, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(adminPassword), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash admin password: %w", err)
	}
	return &AuthService{store: st, passwordHash: hash}, nil
}

// Login checks the password and, on match, persists the privileged flag.
// A wrong password reports false with no error.
func (s *AuthService) Login(password string) (bool, error) {
	if bcrypt.CompareHashAndPassword(s.passwordHash, []byte(password)) != nil {
		return false, nil
	}
	if err := s.store.SaveFlag(store.AdminFlag, true); err != nil {
		return false, err
	}
	return true, nil
}

// Logout clears the privileged flag.
func (s *AuthService) Logout() error {
	return s.store.SaveFlag(store.AdminFlag, false)
}

// IsAdmin reports the current advisory flag state.
func (s *AuthService) IsAdmin() bool {
	return s.store.LoadFlag(store.AdminFlag)
}

// Package service implements the authentication and request business logic,
// delegating persistence to repository interfaces.
package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/swiftserve/registry/internal/models"
)

// Authentication errors surfaced to the user.
var (
	// ErrFieldsMissing is returned when a required form field is empty.
	ErrFieldsMissing = errors.New("please fill in all fields")
	// ErrPasswordMismatch is returned when a password and its confirmation differ.
	ErrPasswordMismatch = errors.New("passwords do not match")
	// ErrSamePassword is returned when the new password equals the current one.
	ErrSamePassword = errors.New("new password cannot be the same")
	// ErrUsernameTaken is returned when signing up with a registered username.
	ErrUsernameTaken = errors.New("username already exists")
	// ErrInvalidCredentials is returned on a failed login.
	ErrInvalidCredentials = errors.New("invalid username or password")
	// ErrWrongCurrentPassword is returned when the supplied current password
	// does not match the stored one.
	ErrWrongCurrentPassword = errors.New("your current password is wrong")
)

// The administrator is a hardcoded credential pair, independent of the
// user directory.
const (
	adminUsername = "Admin"
	adminPassword = "Admin"
)

// SessionRepository defines the session persistence operations required by
// the authentication service.
type SessionRepository interface {
	// Load reads the persisted session flags.
	Load(ctx context.Context) (models.SessionFlags, error)
	// Save persists the session flags.
	Save(ctx context.Context, flags models.SessionFlags) error
	// Clear removes the persisted session flags.
	Clear(ctx context.Context) error
}

// UserRepository defines the user-directory persistence operations required
// by the authentication service.
type UserRepository interface {
	// Exists reports whether username is registered.
	Exists(ctx context.Context, username string) (bool, error)
	// Password returns the stored password for username; ok is false when
	// the user is not registered.
	Password(ctx context.Context, username string) (string, bool, error)
	// Put creates or overwrites the directory entry for username.
	Put(ctx context.Context, username, password string) error
}

// AuthService implements login, signup, logout, and password change.
type AuthService struct {
	sessions SessionRepository
	users    UserRepository
}

// NewAuthService constructs an AuthService using the provided repositories.
func NewAuthService(sessions SessionRepository, users UserRepository) *AuthService {
	return &AuthService{sessions: sessions, users: users}
}

// passwordMatches is the single place credentials are compared. The stored
// form is plaintext for compatibility with existing devices; swapping in a
// hashed scheme only touches this function and Signup/ChangePassword.
func passwordMatches(stored, supplied string) bool {
	return stored == supplied
}

// Login authenticates username/password and persists the resulting session.
// The hardcoded administrator pair bypasses the user directory entirely.
func (s *AuthService) Login(ctx context.Context, username, password string) (models.SessionFlags, error) {
	if username == "" || password == "" {
		return models.SessionFlags{}, ErrFieldsMissing
	}

	if username == adminUsername && password == adminPassword {
		flags := models.SessionFlags{LoggedIn: true, CurrentUser: adminUsername, IsAdmin: true}
		if err := s.sessions.Save(ctx, flags); err != nil {
			return models.SessionFlags{}, fmt.Errorf("persist session: %w", err)
		}
		return flags, nil
	}

	stored, ok, err := s.users.Password(ctx, username)
	if err != nil {
		return models.SessionFlags{}, fmt.Errorf("look up user: %w", err)
	}
	if !ok || !passwordMatches(stored, password) {
		return models.SessionFlags{}, ErrInvalidCredentials
	}

	flags := models.SessionFlags{LoggedIn: true, CurrentUser: username, IsAdmin: false}
	if err := s.sessions.Save(ctx, flags); err != nil {
		return models.SessionFlags{}, fmt.Errorf("persist session: %w", err)
	}
	return flags, nil
}

// Signup registers a new user. It does not log the user in.
func (s *AuthService) Signup(ctx context.Context, username, password, confirmPassword string) error {
	if username == "" || password == "" || confirmPassword == "" {
		return ErrFieldsMissing
	}
	if password != confirmPassword {
		return ErrPasswordMismatch
	}
	taken, err := s.users.Exists(ctx, username)
	if err != nil {
		return fmt.Errorf("look up user: %w", err)
	}
	if taken {
		return ErrUsernameTaken
	}
	if err := s.users.Put(ctx, username, password); err != nil {
		return fmt.Errorf("register user: %w", err)
	}
	return nil
}

// Logout clears the persisted session flags.
func (s *AuthService) Logout(ctx context.Context) error {
	if err := s.sessions.Clear(ctx); err != nil {
		return fmt.Errorf("clear session: %w", err)
	}
	return nil
}

// ChangePassword verifies the current password for username and overwrites
// the directory entry with the new one. Checks run in a fixed order:
// missing fields, confirmation mismatch, unchanged password, then the
// stored-password comparison.
func (s *AuthService) ChangePassword(ctx context.Context, username, currentPassword, newPassword, confirmPassword string) error {
	if username == "" || currentPassword == "" || newPassword == "" || confirmPassword == "" {
		return ErrFieldsMissing
	}
	if newPassword != confirmPassword {
		return ErrPasswordMismatch
	}
	if newPassword == currentPassword {
		return ErrSamePassword
	}
	stored, ok, err := s.users.Password(ctx, username)
	if err != nil {
		return fmt.Errorf("look up user: %w", err)
	}
	if !ok || !passwordMatches(stored, currentPassword) {
		return ErrWrongCurrentPassword
	}
	if err := s.users.Put(ctx, username, newPassword); err != nil {
		return fmt.Errorf("store password: %w", err)
	}
	return nil
}

// Package auth wraps the external authentication provider behind an
// interface and issues the session tokens the gated routes verify.
package auth

import (
	"context"
	"errors"
)

// User is the provider's view of an authenticated person.
type User struct {
	ID            string
	Email         string
	FirstName     string
	LastName      string
	EmailVerified bool
	TokenVersion  int
}

// ErrInvalidCredentials is returned for a failed sign-in.
var ErrInvalidCredentials = errors.New("invalid email or password")

// ErrUserNotFound is returned when no user exists for the email.
var ErrUserNotFound = errors.New("user not found")

// Provider abstracts the external auth service. The application never touches
// session state directly; it only reads users and delegates sign-out.
type Provider interface {
	SignIn(ctx context.Context, email, password string) (User, error)
	SignOut(ctx context.Context, userID string) error
	UserByEmail(ctx context.Context, email string) (User, error)
	UserByID(ctx context.Context, id string) (User, error)
}

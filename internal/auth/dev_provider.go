package auth

import (
	"context"
	"strings"
	"sync"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

// DevProvider is an in-memory stand-in for the external auth provider, used
// in development and tests. Sign-out bumps the user's token version so
// previously issued sessions stop verifying.
type DevProvider struct {
	mu    sync.RWMutex
	users map[string]*devUser
}

type devUser struct {
	user         User
	passwordHash []byte
}

// NewDevProvider builds an empty development auth provider.
func NewDevProvider() *DevProvider {
	return &DevProvider{users: make(map[string]*devUser)}
}

// Register adds a user with a bcrypt-hashed password.
func (p *DevProvider) Register(email, password, firstName, lastName string) (User, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return User{}, err
	}

	user := User{
		ID:        uuid.New().String(),
		Email:     strings.ToLower(strings.TrimSpace(email)),
		FirstName: firstName,
		LastName:  lastName,
	}

	p.mu.Lock()
	defer p.mu.Unlock()
	p.users[user.Email] = &devUser{user: user, passwordHash: hash}
	return user, nil
}

// MarkVerified flags the user's email as verified.
func (p *DevProvider) MarkVerified(email string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if u, ok := p.users[strings.ToLower(email)]; ok {
		u.user.EmailVerified = true
	}
}

// SignIn validates credentials.
func (p *DevProvider) SignIn(_ context.Context, email, password string) (User, error) {
	p.mu.RLock()
	u, ok := p.users[strings.ToLower(strings.TrimSpace(email))]
	p.mu.RUnlock()
	if !ok {
		return User{}, ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword(u.passwordHash, []byte(password)); err != nil {
		return User{}, ErrInvalidCredentials
	}
	return u.user, nil
}

// SignOut invalidates the user's outstanding sessions.
func (p *DevProvider) SignOut(_ context.Context, userID string) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	for _, u := range p.users {
		if u.user.ID == userID {
			u.user.TokenVersion++
			return nil
		}
	}
	return ErrUserNotFound
}

// UserByEmail looks a user up by email.
func (p *DevProvider) UserByEmail(_ context.Context, email string) (User, error) {
	p.mu.RLock()
	defer p.mu.RUnlock()
	if u, ok := p.users[strings.ToLower(strings.TrimSpace(email))]; ok {
		return u.user, nil
	}
	return User{}, ErrUserNotFound
}

// UserByID looks a user up by id.
func (p *DevProvider) UserByID(_ context.Context, id string) (User, error) {
	p.mu.RLock()
	defer p.mu.RUnlock()
	for _, u := range p.users {
		if u.user.ID == id {
			return u.user, nil
		}
	}
	return User{}, ErrUserNotFound
}

package auth

import (
	"context"
	"testing"
	"time"
)

func TestSignInAndSessionRoundTrip(t *testing.T) {
	provider := NewDevProvider()
	sessions := NewSessions("test-secret", time.Hour)
	ctx := context.Background()

	registered, err := provider.Register("jane@example.com", "hunter22", "Jane", "Doe")
	if err != nil {
		t.Fatalf("register: %v", err)
	}
	provider.MarkVerified(registered.Email)

	user, err := provider.SignIn(ctx, "jane@example.com", "hunter22")
	if err != nil {
		t.Fatalf("sign in: %v", err)
	}

	token, err := sessions.Issue(user)
	if err != nil {
		t.Fatalf("issue: %v", err)
	}

	session, err := sessions.Verify(token)
	if err != nil {
		t.Fatalf("verify: %v", err)
	}
	if session.UserID != user.ID || session.Email != "jane@example.com" {
		t.Fatalf("unexpected session: %+v", session)
	}
	if !session.EmailVerified {
		t.Fatal("expected verified session")
	}
}

func TestSignInWrongPassword(t *testing.T) {
	provider := NewDevProvider()
	if _, err := provider.Register("jane@example.com", "hunter22", "Jane", "Doe"); err != nil {
		t.Fatalf("register: %v", err)
	}

	if _, err := provider.SignIn(context.Background(), "jane@example.com", "wrong"); err != ErrInvalidCredentials {
		t.Fatalf("expected invalid credentials, got %v", err)
	}
}

func TestVerifyRejectsTamperedToken(t *testing.T) {
	sessions := NewSessions("test-secret", time.Hour)
	token, err := sessions.Issue(User{ID: "u1", Email: "a@b.c"})
	if err != nil {
		t.Fatalf("issue: %v", err)
	}

	if _, err := sessions.Verify(token + "x"); err == nil {
		t.Fatal("expected verification failure")
	}
	if _, err := NewSessions("other-secret", time.Hour).Verify(token); err == nil {
		t.Fatal("expected signature mismatch")
	}
}

func TestVerifyRejectsExpiredToken(t *testing.T) {
	sessions := NewSessions("test-secret", -time.Minute)
	token, err := sessions.Issue(User{ID: "u1", Email: "a@b.c"})
	if err != nil {
		t.Fatalf("issue: %v", err)
	}

	if _, err := sessions.Verify(token); err == nil {
		t.Fatal("expected expiry failure")
	}
}

func TestSignOutBumpsTokenVersion(t *testing.T) {
	provider := NewDevProvider()
	ctx := context.Background()

	user, err := provider.Register("jane@example.com", "hunter22", "Jane", "Doe")
	if err != nil {
		t.Fatalf("register: %v", err)
	}

	if err := provider.SignOut(ctx, user.ID); err != nil {
		t.Fatalf("sign out: %v", err)
	}

	refreshed, err := provider.UserByID(ctx, user.ID)
	if err != nil {
		t.Fatalf("user by id: %v", err)
	}
	if refreshed.TokenVersion != user.TokenVersion+1 {
		t.Fatalf("expected token version bump, got %d", refreshed.TokenVersion)
	}
}

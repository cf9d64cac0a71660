package auth

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"encoding/json"
	"errors"
	"strings"
	"time"
)

var b64 = base64.RawURLEncoding

// SignHS256 creates a compact JWT string using HS256.
func SignHS256(claims map[string]any, secret []byte) (string, error) {
	header := map[string]string{"alg": "HS256", "typ": "JWT"}
	h, err := json.Marshal(header)
	if err != nil {
		return "", err
	}
	c, err := json.Marshal(claims)
	if err != nil {
		return "", err
	}
	unsigned := b64.EncodeToString(h) + "." + b64.EncodeToString(c)
	mac := hmac.New(sha256.New, secret)
	mac.Write([]byte(unsigned))
	sig := mac.Sum(nil)
	return unsigned + "." + b64.EncodeToString(sig), nil
}

// ParseAndVerifyHS256 verifies token signature and returns claims.
func ParseAndVerifyHS256(token string, secret []byte) (map[string]any, error) {
	parts := strings.Split(token, ".")
	if len(parts) != 3 {
		return nil, errors.New("invalid token format")
	}
	unsigned := parts[0] + "." + parts[1]
	sigBytes, err := b64.DecodeString(parts[2])
	if err != nil {
		return nil, errors.New("invalid signature encoding")
	}
	mac := hmac.New(sha256.New, secret)
	mac.Write([]byte(unsigned))
	if !hmac.Equal(sigBytes, mac.Sum(nil)) {
		return nil, errors.New("signature mismatch")
	}
	payload, err := b64.DecodeString(parts[1])
	if err != nil {
		return nil, errors.New("invalid payload encoding")
	}
	var claims map[string]any
	if err := json.Unmarshal(payload, &claims); err != nil {
		return nil, errors.New("invalid claims json")
	}
	return claims, nil
}

// Session is the verified content of a session token.
type Session struct {
	UserID        string
	Email         string
	EmailVerified bool
	TokenVersion  int
}

// Sessions issues and verifies HS256 session tokens for signed-in users.
type Sessions struct {
	secret []byte
	ttl    time.Duration
}

// NewSessions builds a session token signer/verifier.
func NewSessions(secret string, ttl time.Duration) *Sessions {
	return &Sessions{secret: []byte(secret), ttl: ttl}
}

// Issue signs a session token for the user.
func (s *Sessions) Issue(user User) (string, error) {
	now := time.Now()
	claims := map[string]any{
		"sub":      user.ID,
		"email":    user.Email,
		"verified": user.EmailVerified,
		"ver":      user.TokenVersion,
		"iat":      now.Unix(),
		"exp":      now.Add(s.ttl).Unix(),
	}
	return SignHS256(claims, s.secret)
}

// Verify checks the token's signature and expiry and returns the session.
func (s *Sessions) Verify(token string) (Session, error) {
	claims, err := ParseAndVerifyHS256(token, s.secret)
	if err != nil {
		return Session{}, err
	}

	expFloat, _ := claims["exp"].(float64)
	if expFloat == 0 || time.Now().After(time.Unix(int64(expFloat), 0)) {
		return Session{}, errors.New("session expired")
	}

	sub, _ := claims["sub"].(string)
	email, _ := claims["email"].(string)
	verified, _ := claims["verified"].(bool)
	verFloat, _ := claims["ver"].(float64)

	if sub == "" || email == "" {
		return Session{}, errors.New("incomplete session claims")
	}

	return Session{
		UserID:        sub,
		Email:         email,
		EmailVerified: verified,
		TokenVersion:  int(verFloat),
	}, nil
}

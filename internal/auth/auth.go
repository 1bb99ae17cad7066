// Package auth carries the current user through a request context and
// issues and verifies the bearer tokens that establish it.
package auth

import (
	"context"
	"errors"
	"strings"
	"time"

	jwt "github.com/golang-jwt/jwt/v5"
)

// User is the authenticated caller. ID is opaque.
type User struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	Name  string `json:"name"`
}

type ctxKey int

const userKey ctxKey = 1

// WithUser attaches u to ctx.
func WithUser(ctx context.Context, u User) context.Context {
	return context.WithValue(ctx, userKey, u)
}

// UserFrom returns the current user, if one was attached.
func UserFrom(ctx context.Context) (User, bool) {
	u, ok := ctx.Value(userKey).(User)
	return u, ok && u.ID != ""
}

// Claims is the JWT payload.
type Claims struct {
	UID   string `json:"uid"`
	Email string `json:"email"`
	Name  string `json:"name,omitempty"`
	jwt.RegisteredClaims
}

var (
	// ErrInvalidToken is returned for tokens that fail verification.
	ErrInvalidToken = errors.New("invalid token")
	// ErrNoSecret is returned by NewSigner for an empty secret.
	ErrNoSecret = errors.New("signing secret is empty")
)

// DevSecret is the well-known secret used when a development server is
// explicitly started without one. Tokens signed with it are forgeable.
const DevSecret = "discern-dev-secret"

// Signer issues and verifies HS256 tokens.
type Signer struct {
	secret []byte
}

// NewSigner creates a Signer for secret, which must not be blank.
func NewSigner(secret string) (*Signer, error) {
	if strings.TrimSpace(secret) == "" {
		return nil, ErrNoSecret
	}
	return &Signer{secret: []byte(secret)}, nil
}

// Sign issues a token for u valid for ttl.
func (s *Signer) Sign(u User, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := Claims{
		UID:   u.ID,
		Email: u.Email,
		Name:  u.Name,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   u.ID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.secret)
}

// Parse verifies tok and returns the user it names.
func (s *Signer) Parse(tok string) (User, error) {
	t, err := jwt.ParseWithClaims(tok, &Claims{}, func(*jwt.Token) (any, error) {
		return s.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		return User{}, err
	}
	c, ok := t.Claims.(*Claims)
	if !ok || !t.Valid || c.UID == "" {
		return User{}, ErrInvalidToken
	}
	return User{ID: c.UID, Email: strings.ToLower(c.Email), Name: c.Name}, nil
}

// BearerToken extracts the token from an Authorization header value.
func BearerToken(header string) (string, bool) {
	const prefix = "Bearer "
	if len(header) < len(prefix) || !strings.EqualFold(header[:len(prefix)], prefix) {
		return "", false
	}
	tok := strings.TrimSpace(header[len(prefix):])
	return tok, tok != ""
}

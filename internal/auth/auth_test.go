package auth

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	jwt "github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newSigner(t *testing.T, secret string) *Signer {
	t.Helper()
	s, err := NewSigner(secret)
	require.NoError(t, err)
	return s
}

func TestSignAndParse(t *testing.T) {
	s := newSigner(t, "test-secret")
	tok, err := s.Sign(User{ID: "u1", Email: "Ada@Example.com", Name: "Ada"}, time.Hour)
	require.NoError(t, err)

	u, err := s.Parse(tok)
	require.NoError(t, err)
	assert.Equal(t, User{ID: "u1", Email: "ada@example.com", Name: "Ada"}, u)
}

func TestNewSigner_RequiresSecret(t *testing.T) {
	for _, secret := range []string{"", "   "} {
		s, err := NewSigner(secret)
		assert.ErrorIs(t, err, ErrNoSecret)
		assert.Nil(t, s)
	}
}

func TestParse_RejectsDevSecretTokens(t *testing.T) {
	forged, err := newSigner(t, DevSecret).Sign(User{ID: "victim", Email: "admin@example.com"}, time.Hour)
	require.NoError(t, err)

	_, err = newSigner(t, "prod-secret").Parse(forged)
	assert.Error(t, err)
}

func TestParse_Rejects(t *testing.T) {
	s := newSigner(t, "test-secret")

	expired, err := s.Sign(User{ID: "u1"}, -time.Minute)
	require.NoError(t, err)
	_, err = s.Parse(expired)
	assert.Error(t, err, "expired")

	other, err := newSigner(t, "other-secret").Sign(User{ID: "u1"}, time.Hour)
	require.NoError(t, err)
	_, err = s.Parse(other)
	assert.Error(t, err, "wrong secret")

	noUID, err := s.Sign(User{}, time.Hour)
	require.NoError(t, err)
	_, err = s.Parse(noUID)
	assert.ErrorIs(t, err, ErrInvalidToken)

	none := jwt.NewWithClaims(jwt.SigningMethodNone, Claims{UID: "u1"})
	unsigned, err := none.SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)
	_, err = s.Parse(unsigned)
	assert.Error(t, err, "alg none")
}

func TestBearerToken(t *testing.T) {
	tests := []struct {
		header string
		want   string
		ok     bool
	}{
		{"Bearer abc", "abc", true},
		{"bearer  abc ", "abc", true},
		{"Bearer ", "", false},
		{"Basic abc", "", false},
		{"", "", false},
	}
	for _, tt := range tests {
		got, ok := BearerToken(tt.header)
		assert.Equal(t, tt.want, got, tt.header)
		assert.Equal(t, tt.ok, ok, tt.header)
	}
}

func TestMiddleware(t *testing.T) {
	s := newSigner(t, "test-secret")
	tok, err := s.Sign(User{ID: "u1", Email: "a@b.c"}, time.Hour)
	require.NoError(t, err)

	var seen User
	h := s.WithAuth(RequireAuth(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen, _ = UserFrom(r.Context())
		w.WriteHeader(http.StatusNoContent)
	})))

	req := httptest.NewRequest(http.MethodGet, "/api/v1/report", nil)
	req.Header.Set("Authorization", "Bearer "+tok)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Equal(t, "u1", seen.ID)

	req = httptest.NewRequest(http.MethodGet, "/api/v1/report", nil)
	req.Header.Set("Authorization", "Bearer garbage")
	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.JSONEq(t, `{"error":"unauthorized"}`, rec.Body.String())
}

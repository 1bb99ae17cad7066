package app

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/discern/internal/assessment"
	"github.com/abhisek/discern/internal/auth"
	"github.com/abhisek/discern/internal/catalog"
	"github.com/abhisek/discern/internal/llm"
	"github.com/abhisek/discern/internal/report"
)

var ada = auth.User{ID: "local", Name: "Ada"}

func TestConfigFromEnv(t *testing.T) {
	t.Setenv("DISCERN_ADDR", "127.0.0.1:9000")
	t.Setenv("DISCERN_ADMIN_EMAILS", "grace@example.com, ops@example.com")
	t.Setenv("DISCERN_USER_NAME", "Ada")
	t.Setenv("DISCERN_USER_EMAIL", "Ada@Example.com")
	t.Setenv("DISCERN_SYNTHESIS_MAX_TOKENS", "3000")

	t.Setenv("DISCERN_JWT_SECRET", "s3cret")
	t.Setenv("DISCERN_LLM_TIMEOUT", "45s")

	cfg, err := ConfigFromEnv()
	require.NoError(t, err)
	assert.Equal(t, "127.0.0.1:9000", cfg.Addr)
	assert.Equal(t, "s3cret", cfg.JWTSecret)
	assert.Equal(t, 45*time.Second, cfg.LLMTimeout)
	assert.False(t, cfg.InsecureDev)
	assert.Equal(t, 2, cfg.Admins.Len())
	assert.Equal(t, "local", cfg.LocalUser.ID)
	assert.Equal(t, "Ada", cfg.LocalUser.Name)
	assert.Equal(t, "ada@example.com", cfg.LocalUser.Email)
	assert.Equal(t, 3000, cfg.Report.SynthesisMaxTokens)
}

func TestConfigFromEnv_Defaults(t *testing.T) {
	t.Setenv("DISCERN_ADDR", "")
	t.Setenv("DISCERN_USER_ID", "")

	cfg, err := ConfigFromEnv()
	require.NoError(t, err)
	assert.Equal(t, ":8080", cfg.Addr)
	assert.Equal(t, "local", cfg.LocalUser.ID)
}

func testConfig(t *testing.T) Config {
	t.Helper()
	for _, key := range []string{
		"DISCERN_LLM_PROVIDER", "DISCERN_ANTHROPIC_API_KEY",
		"ANTHROPIC_API_KEY", "OPENAI_API_KEY", "GEMINI_API_KEY", "OPENROUTER_API_KEY",
	} {
		t.Setenv(key, "")
	}
	return Config{
		DBPath:     filepath.Join(t.TempDir(), "discern.db"),
		Addr:       "127.0.0.1:0",
		JWTSecret:  "test-secret",
		Report:     report.DefaultConfig(),
		LocalUser:  ada,
		LLMTimeout: time.Second,
	}
}

func newTestApp(t *testing.T) *App {
	t.Helper()
	return newAppWith(t, testConfig(t))
}

func newAppWith(t *testing.T, cfg Config) *App {
	t.Helper()
	a, err := New(context.Background(), cfg, nil)
	require.NoError(t, err)
	t.Cleanup(func() { a.Close() })
	return a
}

func TestNew_WiresHandlerAndMCP(t *testing.T) {
	a := newTestApp(t)

	h, err := a.Handler()
	require.NoError(t, err)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthz", nil))
	assert.Equal(t, http.StatusOK, rec.Code)

	assert.NotNil(t, a.MCPServer("test").GetTool("generate_report"))
	assert.Equal(t, ada, a.LocalUser())
}

func TestServe_RequiresJWTSecret(t *testing.T) {
	cfg := testConfig(t)
	cfg.JWTSecret = ""
	a := newAppWith(t, cfg)

	// The CLI and MCP paths still work without a secret.
	_, err := a.Progress.List(context.Background(), ada.ID)
	require.NoError(t, err)

	_, err = a.Handler()
	assert.ErrorIs(t, err, ErrNoJWTSecret)

	done := make(chan error, 1)
	go func() { done <- a.Serve(context.Background()) }()
	select {
	case err := <-done:
		assert.ErrorIs(t, err, ErrNoJWTSecret)
	case <-time.After(5 * time.Second):
		t.Fatal("Serve started without a JWT secret")
	}
}

func TestServe_InsecureDevUsesDevSecret(t *testing.T) {
	cfg := testConfig(t)
	cfg.JWTSecret = ""
	cfg.InsecureDev = true
	a := newAppWith(t, cfg)

	dev, err := auth.NewSigner(auth.DevSecret)
	require.NoError(t, err)
	tok, err := dev.Sign(ada, time.Hour)
	require.NoError(t, err)
	u, err := a.Signer.Parse(tok)
	require.NoError(t, err)
	assert.Equal(t, ada.ID, u.ID)
}

func TestSigner_IgnoresDevSecretWhenConfigured(t *testing.T) {
	a := newTestApp(t)

	dev, err := auth.NewSigner(auth.DevSecret)
	require.NoError(t, err)
	forged, err := dev.Sign(auth.User{ID: "victim"}, time.Hour)
	require.NoError(t, err)

	h, err := a.Handler()
	require.NoError(t, err)
	req := httptest.NewRequest(http.MethodGet, "/api/v1/progress", nil)
	req.Header.Set("Authorization", "Bearer "+forged)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestNew_BadReportConfig(t *testing.T) {
	cfg := Config{DBPath: filepath.Join(t.TempDir(), "discern.db"), Report: report.Config{}}
	_, err := New(context.Background(), cfg, nil)
	require.Error(t, err)
}

func TestUnconfiguredProvider(t *testing.T) {
	p := unconfigured{err: errors.New("no key")}
	_, err := p.Generate(context.Background(), llm.Request{})

	var unavailable *llm.ErrProviderUnavailable
	require.ErrorAs(t, err, &unavailable)
	assert.Equal(t, "unconfigured", p.ModelID())
}

func TestServe_StopsOnCancel(t *testing.T) {
	a := newTestApp(t)
	ctx, cancel := context.WithCancel(context.Background())

	done := make(chan error, 1)
	go func() { done <- a.Serve(ctx) }()
	time.Sleep(50 * time.Millisecond)
	cancel()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("Serve did not return after cancel")
	}
}

func TestLocalFlow(t *testing.T) {
	a := newTestApp(t)
	ctx := context.Background()

	_, err := a.Progress.RecordAnswer(ctx, ada.ID, catalog.Strengths, "sp-1", assessment.Numeric(5), 0)
	require.NoError(t, err)

	list, err := a.Progress.List(ctx, ada.ID)
	require.NoError(t, err)
	assert.Len(t, list, 1)
}

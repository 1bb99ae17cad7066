// Package app builds the service graph shared by every entry point.
package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/mark3labs/mcp-go/server"

	"github.com/abhisek/discern/internal/admin"
	"github.com/abhisek/discern/internal/api"
	"github.com/abhisek/discern/internal/auth"
	"github.com/abhisek/discern/internal/llm"
	"github.com/abhisek/discern/internal/mcptools"
	"github.com/abhisek/discern/internal/progress"
	"github.com/abhisek/discern/internal/report"
	"github.com/abhisek/discern/internal/store"
)

// Config holds the deployment settings. Package-level settings such as
// the LLM provider are read by their own packages.
type Config struct {
	DBPath    string
	Addr      string
	JWTSecret string
	Admins    admin.AllowList
	Report    report.Config

	// InsecureDev lets Serve run without JWTSecret, signing with
	// auth.DevSecret. Anyone can mint tokens for such a server.
	InsecureDev bool

	// LLMTimeout is the per-call LLM bound the HTTP write timeout is
	// derived from.
	LLMTimeout time.Duration

	// LocalUser is the identity used by the CLI and the MCP server, which
	// have no bearer token.
	LocalUser auth.User
}

// ConfigFromEnv reads DISCERN_ADDR, DISCERN_JWT_SECRET, DISCERN_ADMIN_EMAILS,
// DISCERN_USER_ID, DISCERN_USER_NAME and DISCERN_USER_EMAIL plus the report
// and LLM timeout settings. DBPath is left to the caller.
func ConfigFromEnv() (Config, error) {
	reportCfg, err := report.ConfigFromEnv()
	if err != nil {
		return Config{}, err
	}
	cfg := Config{
		Addr:      envOr("DISCERN_ADDR", ":8080"),
		JWTSecret: os.Getenv("DISCERN_JWT_SECRET"),
		Admins:    admin.AllowListFromEnv(),
		Report:    reportCfg,
		LocalUser: auth.User{
			ID:    envOr("DISCERN_USER_ID", "local"),
			Name:  os.Getenv("DISCERN_USER_NAME"),
			Email: strings.ToLower(os.Getenv("DISCERN_USER_EMAIL")),
		},
	}
	cfg.LLMTimeout = llm.ConfigFromEnv().Timeout
	return cfg, nil
}

func envOr(key, def string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return def
}

// App is the wired service graph.
type App struct {
	cfg    Config
	logger *slog.Logger

	Store    *store.Store
	Provider llm.Provider
	Progress *progress.Service
	Reports  *report.Service
	Admin    *admin.Service
	Signer   *auth.Signer
}

// ErrNoJWTSecret is returned by Handler and Serve when DISCERN_JWT_SECRET is
// unset and InsecureDev is off.
var ErrNoJWTSecret = errors.New("DISCERN_JWT_SECRET is required to serve the HTTP API")

// New opens the store and wires every service. A missing LLM configuration
// is not fatal: report generation then fails with a retryable error while
// everything else keeps working. A missing JWT secret only fails the HTTP
// entry points; the CLI and MCP server act as the local user.
func New(ctx context.Context, cfg Config, logger *slog.Logger) (*App, error) {
	if logger == nil {
		logger = slog.Default()
	}
	if err := cfg.Report.Validate(); err != nil {
		return nil, err
	}

	st, err := store.Open(cfg.DBPath)
	if err != nil {
		return nil, fmt.Errorf("open store: %w", err)
	}

	provider, err := llm.NewProviderFromEnv(ctx, st.EventRepo(), logger)
	if err != nil {
		logger.Warn("LLM provider not configured, report generation disabled", "error", err)
		provider = unconfigured{err: err}
	} else {
		logger.Debug("LLM provider ready", "model", provider.ModelID())
	}
	a, err := newApp(cfg, st, provider, logger)
	if err != nil {
		st.Close()
		return nil, err
	}
	return a, nil
}

func newApp(cfg Config, st *store.Store, provider llm.Provider, logger *slog.Logger) (*App, error) {
	signer, err := newSigner(cfg, logger)
	if err != nil {
		return nil, err
	}
	reports := report.NewService(st.ProgressRepo(), st.ReportRepo(), provider, cfg.Report, logger)
	if cfg.Admins.Len() == 0 {
		logger.Debug("no admin e-mails configured")
	}
	return &App{
		cfg:      cfg,
		logger:   logger,
		Store:    st,
		Provider: provider,
		Progress: progress.NewService(st.ProgressRepo(), logger),
		Reports:  reports,
		Admin:    admin.NewService(cfg.Admins, st.ProgressRepo(), reports),
		Signer:   signer,
	}, nil
}

// newSigner returns nil, without error, when no secret is configured.
func newSigner(cfg Config, logger *slog.Logger) (*auth.Signer, error) {
	secret := cfg.JWTSecret
	if strings.TrimSpace(secret) == "" {
		if !cfg.InsecureDev {
			return nil, nil
		}
		logger.Warn("serving with the development JWT secret, tokens are forgeable")
		secret = auth.DevSecret
	}
	return auth.NewSigner(secret)
}

// Close releases the store.
func (a *App) Close() error {
	return a.Store.Close()
}

// LocalUser returns the configured local identity.
func (a *App) LocalUser() auth.User {
	return a.cfg.LocalUser
}

// Handler returns the HTTP API, or ErrNoJWTSecret when there is no signer.
func (a *App) Handler() (http.Handler, error) {
	if a.Signer == nil {
		return nil, ErrNoJWTSecret
	}
	h := api.NewHandler(a.Progress, a.Reports, a.Admin, a.logger)
	return api.NewRouter(h, a.Signer), nil
}

// MCPServer returns the MCP tool server bound to the local user.
func (a *App) MCPServer(version string) *server.MCPServer {
	return mcptools.NewServer(version, a.cfg.LocalUser, a.Progress, a.Reports)
}

// Serve runs the HTTP API until ctx is cancelled, then drains in-flight
// requests for up to shutdownGrace.
func (a *App) Serve(ctx context.Context) error {
	handler, err := a.Handler()
	if err != nil {
		return err
	}
	srv := api.NewServer(a.cfg.Addr, handler, a.cfg.LLMTimeout)

	errCh := make(chan error, 1)
	go func() {
		a.logger.Info("discern listening", "addr", a.cfg.Addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownGrace)
	defer cancel()
	a.logger.Info("shutting down")
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	return nil
}

const shutdownGrace = 30 * time.Second

// unconfigured stands in for a provider that could not be built.
type unconfigured struct {
	err error
}

func (u unconfigured) Generate(context.Context, llm.Request) (*llm.Response, error) {
	return nil, &llm.ErrProviderUnavailable{Err: u.err}
}

func (u unconfigured) ModelID() string { return "unconfigured" }

package api

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/abhisek/discern/internal/auth"
)

// NewRouter wires every route. Routes under /api/v1 require a bearer token.
func NewRouter(h *Handler, signer *auth.Signer) http.Handler {
	mux := http.NewServeMux()
	private := func(fn http.HandlerFunc) http.Handler {
		return auth.RequireAuth(fn)
	}

	mux.HandleFunc("GET /healthz", h.healthz)
	mux.Handle("GET /api/v1/modules", private(h.modules))
	mux.Handle("GET /api/v1/progress", private(h.listProgress))
	mux.Handle("PUT /api/v1/progress/{module}/answers", private(h.recordAnswer))
	mux.Handle("POST /api/v1/progress/{module}/complete", private(h.completeModule))
	mux.Handle("GET /api/v1/scores/{module}", private(h.scores))
	mux.Handle("GET /api/v1/report", private(h.latestReport))
	mux.Handle("POST /api/v1/report", private(h.generateReport))
	mux.Handle("GET /api/v1/reports", private(h.reportHistory))
	mux.Handle("GET /api/v1/admin/users", private(h.adminUsers))
	mux.Handle("GET /api/v1/admin/users/{userID}", private(h.adminUser))

	return withRequestLogging(h.logger, withCORS(withJSONContentType(signer.WithAuth(mux))))
}

// NewServer returns an http.Server for handler. llmTimeout is the bound on
// one LLM call; see WriteTimeout.
func NewServer(addr string, handler http.Handler, llmTimeout time.Duration) *http.Server {
	return &http.Server{
		Addr:              addr,
		Handler:           handler,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       30 * time.Second,
		WriteTimeout:      WriteTimeout(llmTimeout),
		IdleTimeout:       2 * time.Minute,
	}
}

// writeSlack covers the store reads and writes around the LLM calls.
const writeSlack = 30 * time.Second

// WriteTimeout is the response deadline for a server whose LLM calls are
// each bounded by llmTimeout. Report generation makes two sequential calls.
// An unbounded llmTimeout leaves writes unbounded too.
func WriteTimeout(llmTimeout time.Duration) time.Duration {
	if llmTimeout <= 0 {
		return 0
	}
	return 2*llmTimeout + writeSlack
}

func withJSONContentType(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if (r.Method == http.MethodPost || r.Method == http.MethodPut) && r.Header.Get("Content-Type") == "" {
			r.Header.Set("Content-Type", "application/json")
		}
		next.ServeHTTP(w, r)
	})
}

func withRequestLogging(logger *slog.Logger, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		id := r.Header.Get("X-Request-ID")
		if id == "" {
			id = uuid.NewString()
		}
		w.Header().Set("X-Request-ID", id)

		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(rec, r)
		logger.InfoContext(r.Context(), "http request",
			"request_id", id,
			"method", r.Method,
			"path", r.URL.RequestURI(),
			"status", rec.status,
			"duration", time.Since(start).Truncate(time.Millisecond),
			"remote", r.RemoteAddr,
		)
	})
}

func withCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")
		w.Header().Set("Access-Control-Max-Age", "600")

		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}

		next.ServeHTTP(w, r)
	})
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(statusCode int) {
	r.status = statusCode
	r.ResponseWriter.WriteHeader(statusCode)
}

// Package api serves the assessment and report operations over HTTP.
package api

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/abhisek/discern/internal/admin"
	"github.com/abhisek/discern/internal/assessment"
	"github.com/abhisek/discern/internal/auth"
	"github.com/abhisek/discern/internal/catalog"
	"github.com/abhisek/discern/internal/progress"
	"github.com/abhisek/discern/internal/report"
	"github.com/abhisek/discern/internal/scoring"
	"github.com/abhisek/discern/internal/store"
)

// maxBodyBytes bounds request bodies. Free-response answers are the largest.
const maxBodyBytes = 1 << 20

type Handler struct {
	progress *progress.Service
	reports  *report.Service
	admin    *admin.Service
	logger   *slog.Logger
}

func NewHandler(progress *progress.Service, reports *report.Service, admin *admin.Service, logger *slog.Logger) *Handler {
	if logger == nil {
		logger = slog.Default()
	}
	return &Handler{progress: progress, reports: reports, admin: admin, logger: logger}
}

type answerRequest struct {
	QuestionID    string           `json:"questionId"`
	Value         assessment.Value `json:"value"`
	QuestionIndex int              `json:"questionIndex"`
}

func (h *Handler) healthz(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (h *Handler) modules(w http.ResponseWriter, _ *http.Request) {
	out := make([]catalog.ModuleInfo, 0, len(catalog.Modules))
	for _, m := range catalog.Modules {
		out = append(out, m.Info())
	}
	writeJSON(w, http.StatusOK, map[string]any{"modules": out})
}

func (h *Handler) listProgress(w http.ResponseWriter, r *http.Request) {
	user := currentUser(r)
	list, err := h.progress.List(r.Context(), user.ID)
	if err != nil {
		h.writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"progress": list})
}

func (h *Handler) recordAnswer(w http.ResponseWriter, r *http.Request) {
	module, ok := pathModule(w, r)
	if !ok {
		return
	}

	var req answerRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}

	p, err := h.progress.RecordAnswer(r.Context(), currentUser(r).ID, module, req.QuestionID, req.Value, req.QuestionIndex)
	if err != nil {
		h.writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, p)
}

func (h *Handler) completeModule(w http.ResponseWriter, r *http.Request) {
	module, ok := pathModule(w, r)
	if !ok {
		return
	}
	p, err := h.progress.Complete(r.Context(), currentUser(r).ID, module)
	if err != nil {
		h.writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, p)
}

func (h *Handler) scores(w http.ResponseWriter, r *http.Request) {
	module, ok := pathModule(w, r)
	if !ok {
		return
	}
	if !module.Scored() {
		writeError(w, http.StatusBadRequest, "module "+string(module)+" has no scores")
		return
	}

	// A module not yet started scores as all zeros.
	p, err := h.progress.Get(r.Context(), currentUser(r).ID, module)
	if err != nil && !errors.Is(err, progress.ErrNotStarted) {
		h.writeServiceError(w, r, err)
		return
	}
	res, err := scoring.ScoreModule(module, p)
	if err != nil {
		h.writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, res)
}

func (h *Handler) latestReport(w http.ResponseWriter, r *http.Request) {
	rep, err := h.reports.LatestReport(r.Context(), currentUser(r).ID)
	if err != nil {
		h.writeServiceError(w, r, err)
		return
	}
	if rep == nil {
		writeError(w, http.StatusNotFound, "no report generated yet")
		return
	}
	writeJSON(w, http.StatusOK, rep)
}

func (h *Handler) generateReport(w http.ResponseWriter, r *http.Request) {
	rep, err := h.reports.GenerateReport(r.Context(), currentUser(r))
	if err != nil {
		h.writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, rep)
}

func (h *Handler) reportHistory(w http.ResponseWriter, r *http.Request) {
	reports, err := h.reports.History(r.Context(), currentUser(r).ID)
	if err != nil {
		h.writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"reports": reports})
}

func (h *Handler) adminUsers(w http.ResponseWriter, r *http.Request) {
	users, err := h.admin.ListUsers(r.Context(), currentUser(r))
	if err != nil {
		h.writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"users": users})
}

func (h *Handler) adminUser(w http.ResponseWriter, r *http.Request) {
	userID := strings.TrimSpace(r.PathValue("userID"))
	if userID == "" {
		writeError(w, http.StatusBadRequest, "user id is required")
		return
	}
	detail, err := h.admin.User(r.Context(), currentUser(r), userID)
	if err != nil {
		h.writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, detail)
}

// writeServiceError maps service errors onto status codes. Anything
// unrecognised is logged and reported as a 500 without detail.
func (h *Handler) writeServiceError(w http.ResponseWriter, r *http.Request, err error) {
	var (
		missing *report.MissingModulesError
		failed  *report.GenerationFailedError
	)
	switch {
	case errors.As(err, &missing):
		writeJSON(w, http.StatusBadRequest, map[string]any{
			"error":   missing.Error(),
			"missing": missing.Modules,
		})
	case errors.As(err, &failed):
		h.logger.WarnContext(r.Context(), "report generation failed", "error", err)
		writeJSON(w, http.StatusBadGateway, map[string]any{
			"error":     "report generation failed, please try again",
			"retryable": failed.Retryable(),
		})
	case errors.Is(err, store.ErrUnavailable):
		h.logger.ErrorContext(r.Context(), "store unavailable", "error", err)
		writeError(w, http.StatusServiceUnavailable, "storage is temporarily unavailable")
	case errors.Is(err, admin.ErrForbidden):
		writeError(w, http.StatusForbidden, err.Error())
	case errors.Is(err, admin.ErrUserNotFound), errors.Is(err, progress.ErrNotStarted):
		writeError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, progress.ErrInvalidAnswer):
		writeError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, progress.ErrIncomplete):
		writeError(w, http.StatusConflict, err.Error())
	case errors.Is(err, context.Canceled):
		// Client went away; nobody reads this.
		writeError(w, 499, "request cancelled")
	default:
		h.logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "error", err)
		writeError(w, http.StatusInternalServerError, "internal error")
	}
}

func currentUser(r *http.Request) auth.User {
	u, _ := auth.UserFrom(r.Context())
	return u
}

func pathModule(w http.ResponseWriter, r *http.Request) (catalog.Module, bool) {
	m, err := catalog.ParseModule(r.PathValue("module"))
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return "", false
	}
	return m, true
}

func decodeJSON(w http.ResponseWriter, r *http.Request, dst any) error {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	dec.DisallowUnknownFields()
	return dec.Decode(dst)
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}

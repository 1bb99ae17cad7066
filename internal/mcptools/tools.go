// Package mcptools exposes the assessment operations as MCP tools for a
// single local user.
package mcptools

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/abhisek/discern/internal/assessment"
	"github.com/abhisek/discern/internal/auth"
	"github.com/abhisek/discern/internal/catalog"
	"github.com/abhisek/discern/internal/progress"
	"github.com/abhisek/discern/internal/report"
	"github.com/abhisek/discern/internal/scoring"
)

func moduleArg(req mcp.CallToolRequest) (catalog.Module, *mcp.CallToolResult) {
	m, err := catalog.ParseModule(req.GetString("module", ""))
	if err != nil {
		return "", mcp.NewToolResultError(err.Error())
	}
	return m, nil
}

func moduleParam(desc string) mcp.ToolOption {
	return mcp.WithString("module",
		mcp.Required(),
		mcp.Enum("strengths", "gifts", "vocational", "freetext"),
		mcp.Description(desc),
	)
}

// toolError turns a service error into a tool result the client can show.
// Errors never propagate as protocol errors.
func toolError(err error) *mcp.CallToolResult {
	var missing *report.MissingModulesError
	switch {
	case errors.As(err, &missing):
		return mcp.NewToolResultError(missing.Error())
	case errors.Is(err, progress.ErrNotStarted):
		return mcp.NewToolResultError(err.Error() + ". Record an answer first.")
	case errors.Is(err, progress.ErrInvalidAnswer):
		return mcp.NewToolResultError(err.Error())
	case errors.Is(err, progress.ErrIncomplete):
		return mcp.NewToolResultError(err.Error() + ". Answer the remaining questions first.")
	}
	return mcp.NewToolResultErrorFromErr("request failed", err)
}

// --- record_answer ---

// RecordAnswerTool handles the record_answer tool.
type RecordAnswerTool struct {
	user     auth.User
	progress *progress.Service
}

func NewRecordAnswerTool(user auth.User, svc *progress.Service) *RecordAnswerTool {
	return &RecordAnswerTool{user: user, progress: svc}
}

func (t *RecordAnswerTool) Definition() mcp.Tool {
	return mcp.NewTool("record_answer",
		mcp.WithDescription(
			"Record one answer in an assessment module. Answering the same question again replaces the earlier answer.",
		),
		moduleParam("Module the question belongs to."),
		mcp.WithString("question_id",
			mcp.Required(),
			mcp.Description("Question identifier, e.g. 'sp-1' or 'ft-passions'."),
		),
		mcp.WithAny("value",
			mcp.Required(),
			mcp.Description("A number on the 1-5 scale, an option token such as 'sp-high', a list of tokens, or free text."),
		),
		mcp.WithNumber("question_index",
			mcp.Description("Zero-based position of the question, used to resume."),
			mcp.Min(0),
		),
	)
}

func (t *RecordAnswerTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	module, bad := moduleArg(req)
	if bad != nil {
		return bad, nil
	}
	value, err := valueArg(req.GetArguments()["value"])
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	p, err := t.progress.RecordAnswer(ctx, t.user.ID, module,
		req.GetString("question_id", ""), value, req.GetInt("question_index", 0))
	if err != nil {
		return toolError(err), nil
	}
	return mcp.NewToolResultText(fmt.Sprintf("Recorded %s in %s (%d answers so far).",
		req.GetString("question_id", ""), module, len(p.Answers))), nil
}

// valueArg converts a decoded JSON argument back into an answer value.
func valueArg(v any) (assessment.Value, error) {
	if v == nil {
		return assessment.Value{}, errors.New("value is required")
	}
	raw, err := json.Marshal(v)
	if err != nil {
		return assessment.Value{}, fmt.Errorf("value: %w", err)
	}
	return assessment.ParseValue(raw)
}

// --- complete_module ---

// CompleteModuleTool handles the complete_module tool.
type CompleteModuleTool struct {
	user     auth.User
	progress *progress.Service
}

func NewCompleteModuleTool(user auth.User, svc *progress.Service) *CompleteModuleTool {
	return &CompleteModuleTool{user: user, progress: svc}
}

func (t *CompleteModuleTool) Definition() mcp.Tool {
	return mcp.NewTool("complete_module",
		mcp.WithDescription("Mark an assessment module as finished. Every question of the module must have an answer."),
		moduleParam("Module to complete."),
	)
}

func (t *CompleteModuleTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	module, bad := moduleArg(req)
	if bad != nil {
		return bad, nil
	}
	if _, err := t.progress.Complete(ctx, t.user.ID, module); err != nil {
		return toolError(err), nil
	}
	return mcp.NewToolResultText(fmt.Sprintf("%s completed.", module.Info().Title)), nil
}

// --- score_module ---

// ScoreModuleTool handles the score_module tool.
type ScoreModuleTool struct {
	user     auth.User
	progress *progress.Service
}

func NewScoreModuleTool(user auth.User, svc *progress.Service) *ScoreModuleTool {
	return &ScoreModuleTool{user: user, progress: svc}
}

func (t *ScoreModuleTool) Definition() mcp.Tool {
	return mcp.NewTool("score_module",
		mcp.WithDescription(
			"Score and classify the answers recorded so far for strengths, gifts or vocational direction. "+
				"Returns raw domain scores and the ranked classification as JSON.",
		),
		mcp.WithString("module",
			mcp.Required(),
			mcp.Enum("strengths", "gifts", "vocational"),
			mcp.Description("Scored module."),
		),
	)
}

func (t *ScoreModuleTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	module, bad := moduleArg(req)
	if bad != nil {
		return bad, nil
	}
	if !module.Scored() {
		return mcp.NewToolResultError(fmt.Sprintf("module %s has no scores", module)), nil
	}
	// Nothing recorded yet scores as all zeros.
	p, err := t.progress.Get(ctx, t.user.ID, module)
	if err != nil && !errors.Is(err, progress.ErrNotStarted) {
		return toolError(err), nil
	}
	res, err := scoring.ScoreModule(module, p)
	if err != nil {
		return toolError(err), nil
	}
	return mcp.NewToolResultJSON(res)
}

// --- generate_report ---

// GenerateReportTool handles the generate_report tool.
type GenerateReportTool struct {
	user    auth.User
	reports *report.Service
}

func NewGenerateReportTool(user auth.User, svc *report.Service) *GenerateReportTool {
	return &GenerateReportTool{user: user, reports: svc}
}

func (t *GenerateReportTool) Definition() mcp.Tool {
	return mcp.NewTool("generate_report",
		mcp.WithDescription(
			"Generate a new discernment report from all four completed modules. "+
				"This calls the language model and can take a minute.",
		),
	)
}

func (t *GenerateReportTool) Handle(ctx context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	r, err := t.reports.GenerateReport(ctx, t.user)
	if err != nil {
		return toolError(err), nil
	}
	return mcp.NewToolResultText(reportText(r)), nil
}

// --- latest_report ---

// LatestReportTool handles the latest_report tool.
type LatestReportTool struct {
	user    auth.User
	reports *report.Service
}

func NewLatestReportTool(user auth.User, svc *report.Service) *LatestReportTool {
	return &LatestReportTool{user: user, reports: svc}
}

func (t *LatestReportTool) Definition() mcp.Tool {
	return mcp.NewTool("latest_report",
		mcp.WithDescription("Return the most recently generated discernment report."),
	)
}

func (t *LatestReportTool) Handle(ctx context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	r, err := t.reports.LatestReport(ctx, t.user.ID)
	if err != nil {
		return toolError(err), nil
	}
	if r == nil {
		return mcp.NewToolResultText("No report yet. Complete all four modules, then call generate_report."), nil
	}
	return mcp.NewToolResultText(reportText(r)), nil
}

func reportText(r *report.Report) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Report %s (generated %s, %s)\n\n", r.ID, r.GeneratedAt.Format("2006-01-02 15:04 MST"), r.Model)
	b.WriteString(r.Content)
	if themes := r.ModuleData.Freetext.ExtractedThemes; len(themes) > 0 {
		fmt.Fprintf(&b, "\n\nThemes: %s", strings.Join(themes, ", "))
	}
	return b.String()
}

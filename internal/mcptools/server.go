package mcptools

import (
	"github.com/mark3labs/mcp-go/server"

	"github.com/abhisek/discern/internal/auth"
	"github.com/abhisek/discern/internal/progress"
	"github.com/abhisek/discern/internal/report"
)

const instructions = `discern walks one person through four discernment modules (strengths, gifts, vocational, freetext).
Record answers with record_answer, finish each module with complete_module, inspect scores with score_module,
then call generate_report once all four are complete.`

// NewServer registers every tool for user.
func NewServer(version string, user auth.User, progressSvc *progress.Service, reports *report.Service) *server.MCPServer {
	s := server.NewMCPServer(
		"discern",
		version,
		server.WithToolCapabilities(true),
		server.WithRecovery(),
		server.WithInstructions(instructions),
	)

	recordTool := NewRecordAnswerTool(user, progressSvc)
	s.AddTool(recordTool.Definition(), recordTool.Handle)

	completeTool := NewCompleteModuleTool(user, progressSvc)
	s.AddTool(completeTool.Definition(), completeTool.Handle)

	scoreTool := NewScoreModuleTool(user, progressSvc)
	s.AddTool(scoreTool.Definition(), scoreTool.Handle)

	generateTool := NewGenerateReportTool(user, reports)
	s.AddTool(generateTool.Definition(), generateTool.Handle)

	latestTool := NewLatestReportTool(user, reports)
	s.AddTool(latestTool.Definition(), latestTool.Handle)

	return s
}

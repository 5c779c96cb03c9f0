// Package server wires all MCP components and creates the server instance.
//
// This is the composition root: it takes the loaded dataset and injects it
// into the tools, prompts and resources. No query logic lives here, only
// wiring.
package server

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"github.com/truqu/truqu-mcp/internal/dataset"
	"github.com/truqu/truqu-mcp/internal/prompts"
	"github.com/truqu/truqu-mcp/internal/resources"
	"github.com/truqu/truqu-mcp/internal/tools"
	"go.uber.org/zap"
)

// Name is the server name announced during MCP initialization.
const Name = "truqu-mcp"

// Version is set at build time via ldflags.
var Version = "dev"

// New creates the MCP server with all tools, prompts and resources
// registered against data. data is normally non-nil: a failed load stops
// the process before New is called. A nil data still yields a working
// server whose tools answer "not available".
func New(data *dataset.Dataset, logger *zap.Logger) *server.MCPServer {
	if logger == nil {
		logger = zap.NewNop()
	}

	s := server.NewMCPServer(
		Name,
		Version,
		server.WithToolCapabilities(false),
		server.WithResourceCapabilities(false, false),
		server.WithPromptCapabilities(false),
		server.WithRecovery(),
		server.WithHooks(newHooks(logger)),
		server.WithInstructions(serverInstructions()),
	)

	// --- Register query tools ---

	tools.NewDispatcher(data).Register(s)

	// --- Register resources ---

	resourceHandler := resources.NewHandler(data)
	s.AddResource(resourceHandler.ProfileResource(), resourceHandler.HandleProfile)
	s.AddResource(resourceHandler.SummaryResource(), resourceHandler.HandleSummary)

	// --- Register prompts ---

	overview := prompts.NewOverviewPrompt()
	s.AddPrompt(overview.Definition(), overview.Handle)

	checkin := prompts.NewCheckinPrompt()
	s.AddPrompt(checkin.Definition(), checkin.Handle)

	return s
}

// newHooks logs every tool call at debug level and every request error.
func newHooks(logger *zap.Logger) *server.Hooks {
	hooks := &server.Hooks{}

	hooks.AddBeforeCallTool(func(ctx context.Context, id any, req *mcp.CallToolRequest) {
		logger.Debug("tool call",
			zap.Any("id", id),
			zap.String("tool", req.Params.Name),
			zap.Any("arguments", req.GetArguments()),
		)
	})

	hooks.AddOnError(func(ctx context.Context, id any, method mcp.MCPMethod, message any, err error) {
		logger.Error("mcp error",
			zap.Any("id", id),
			zap.String("method", string(method)),
			zap.Error(err),
		)
	})

	return hooks
}

// serverInstructions tells the AI what this server is for.
func serverInstructions() string {
	return `You have read-only access to one person's professional development data:
their goals, the feedback (reviews) they received and their reflections.

## Tools
- list_goals: compact list (id, title, created, due, status). Start here.
- get_goals_detailed: full goals including body, sharing, action points and items.
- get_goal_by_id: one full goal; pass goalId from list_goals.
- get_feedback: reviews from colleagues or external reviewers.
- get_reflections: self-assessments with their period and assessors.

## Date filters
list_goals, get_goals_detailed, get_feedback and get_reflections accept
startDate and endDate (YYYY-MM-DD). Both are optional and inclusive.
Goals and reflections are filtered on their creation date, feedback on
its review date. Records without that date are always included.

Nothing can be changed through this server.`
}

// Package prompts implements MCP prompts for working with the loaded
// dataset.
//
// MCP prompts are user-triggered workflows (like slash commands) that
// instruct the AI to run a sequence of tool calls. Unlike tools (which
// the AI calls), prompts are initiated by the user.
package prompts

import (
	"context"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
)

// OverviewPrompt handles the truqu-overview MCP prompt.
// It asks the AI to pull goals, feedback and reflections for a period and
// summarize them.
type OverviewPrompt struct{}

// NewOverviewPrompt creates an OverviewPrompt.
func NewOverviewPrompt() *OverviewPrompt {
	return &OverviewPrompt{}
}

// Definition returns the MCP prompt definition for registration.
func (p *OverviewPrompt) Definition() mcp.Prompt {
	return mcp.NewPrompt("truqu-overview",
		mcp.WithPromptDescription(
			"Summarize my goals, the feedback I received and my reflections, "+
				"optionally limited to a period.",
		),
		mcp.WithArgument("startDate",
			mcp.ArgumentDescription("First day of the period (YYYY-MM-DD). Default: no lower bound"),
		),
		mcp.WithArgument("endDate",
			mcp.ArgumentDescription("Last day of the period (YYYY-MM-DD). Default: no upper bound"),
		),
	)
}

// Handle processes the truqu-overview prompt request.
func (p *OverviewPrompt) Handle(ctx context.Context, req mcp.GetPromptRequest) (*mcp.GetPromptResult, error) {
	var startDate, endDate string
	if args := req.Params.Arguments; args != nil {
		startDate = args["startDate"]
		endDate = args["endDate"]
	}

	period := "over all time"
	rangeArgs := ""
	switch {
	case startDate != "" && endDate != "":
		period = fmt.Sprintf("from %s to %s", startDate, endDate)
		rangeArgs = fmt.Sprintf(" with startDate='%s' and endDate='%s'", startDate, endDate)
	case startDate != "":
		period = fmt.Sprintf("since %s", startDate)
		rangeArgs = fmt.Sprintf(" with startDate='%s'", startDate)
	case endDate != "":
		period = fmt.Sprintf("up to %s", endDate)
		rangeArgs = fmt.Sprintf(" with endDate='%s'", endDate)
	}

	return &mcp.GetPromptResult{
		Description: fmt.Sprintf("Goals, feedback and reflections %s", period),
		Messages: []mcp.PromptMessage{
			{
				Role: mcp.RoleUser,
				Content: mcp.NewTextContent(fmt.Sprintf(
					"Give me an overview of my development %s.\n\n"+
						"Please:\n"+
						"1. Run `list_goals`%s and group my goals by status\n"+
						"2. Run `get_feedback`%s and pull out recurring themes\n"+
						"3. Run `get_reflections`%s and note what I said about myself\n"+
						"4. Point out where the feedback and my reflections agree or disagree\n"+
						"5. Suggest which goals deserve attention next",
					period, rangeArgs, rangeArgs, rangeArgs,
				)),
			},
		},
	}, nil
}

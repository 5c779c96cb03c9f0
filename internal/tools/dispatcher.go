package tools

import (
	"context"
	"errors"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"github.com/truqu/truqu-mcp/internal/dataset"
)

// ErrUnknownOperation is returned by Dispatcher.Call for a tool name that
// is not in the catalog.
var ErrUnknownOperation = errors.New("unknown tool")

// Tool is one entry of the catalog.
type Tool interface {
	Definition() mcp.Tool
	Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error)
}

// Dispatcher owns the fixed catalog of query tools and routes calls by name.
type Dispatcher struct {
	tools  []Tool
	byName map[string]Tool
}

// NewDispatcher builds the catalog over data. data may be nil.
func NewDispatcher(data *dataset.Dataset) *Dispatcher {
	d := &Dispatcher{
		tools: []Tool{
			NewListGoalsTool(data),
			NewDetailedGoalsTool(data),
			NewGoalByIDTool(data),
			NewFeedbackTool(data),
			NewReflectionsTool(data),
		},
		byName: make(map[string]Tool),
	}
	for _, t := range d.tools {
		d.byName[t.Definition().Name] = t
	}
	return d
}

// Tools returns the catalog in registration order.
func (d *Dispatcher) Tools() []Tool {
	return d.tools
}

// Call runs the named tool with args. Unknown names fail with an error
// wrapping ErrUnknownOperation; every other outcome is a tool result.
func (d *Dispatcher) Call(ctx context.Context, name string, args map[string]any) (*mcp.CallToolResult, error) {
	t, ok := d.byName[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownOperation, name)
	}

	req := mcp.CallToolRequest{}
	req.Params.Name = name
	req.Params.Arguments = args
	return t.Handle(ctx, req)
}

// Register adds every tool to the MCP server.
func (d *Dispatcher) Register(s *server.MCPServer) {
	for _, t := range d.tools {
		s.AddTool(t.Definition(), t.Handle)
	}
}

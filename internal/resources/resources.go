// Package resources implements read-only MCP resources over the loaded
// dataset.
//
// Resources give the host context without a tool call. They use
// URI-based addressing (truqu://...) following MCP conventions.
package resources

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/truqu/truqu-mcp/internal/dataset"
)

// Resource URIs.
const (
	ProfileURI = "truqu://user/profile"
	SummaryURI = "truqu://dataset/summary"
)

// Handler serves resources from a dataset snapshot. data may be nil.
type Handler struct {
	data *dataset.Dataset
}

// NewHandler creates a resource Handler with its dependencies.
func NewHandler(data *dataset.Dataset) *Handler {
	return &Handler{data: data}
}

// Summary counts the records that belong to the user.
type Summary struct {
	UserID        string         `json:"userId"`
	Goals         int            `json:"goals"`
	GoalsByStatus map[string]int `json:"goalsByStatus"`
	Reviews       int            `json:"reviews"`
	Reflections   int            `json:"reflections"`
	Statuses      []string       `json:"statuses"`
}

// ProfileResource returns the MCP resource definition for the user profile.
func (h *Handler) ProfileResource() mcp.Resource {
	return mcp.NewResource(
		ProfileURI,
		"User Profile",
		mcp.WithResourceDescription("The user whose goals, feedback and reflections are loaded"),
		mcp.WithMIMEType("application/json"),
	)
}

// SummaryResource returns the MCP resource definition for the dataset summary.
func (h *Handler) SummaryResource() mcp.Resource {
	return mcp.NewResource(
		SummaryURI,
		"Dataset Summary",
		mcp.WithResourceDescription("Counts of the user's goals (by status), reviews and reflections"),
		mcp.WithMIMEType("application/json"),
	)
}

// HandleProfile returns the loaded user as JSON.
func (h *Handler) HandleProfile(ctx context.Context, req mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
	if h.data == nil || h.data.User == nil {
		return errorResource(req.Params.URI, "data not available"), nil
	}
	return jsonResource(req.Params.URI, h.data.User)
}

// HandleSummary returns record counts for the loaded user as JSON.
func (h *Handler) HandleSummary(ctx context.Context, req mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
	if h.data == nil {
		return errorResource(req.Params.URI, "data not available"), nil
	}
	return jsonResource(req.Params.URI, Summarize(h.data))
}

// Summarize counts the user's own records.
func Summarize(data *dataset.Dataset) Summary {
	uid := data.UserID()
	goals := dataset.OwnedBy(data.Goals, uid, dataset.GoalOwner)

	s := Summary{
		UserID:        uid,
		Goals:         len(goals),
		GoalsByStatus: make(map[string]int),
		Reviews:       len(dataset.OwnedBy(data.Reviews, uid, dataset.ReviewProfessional)),
		Reflections:   len(dataset.OwnedBy(data.Reflections, uid, dataset.ReflectionUser)),
		Statuses:      []string{},
	}
	for _, g := range goals {
		if _, seen := s.GoalsByStatus[g.Status.Tag]; !seen {
			s.Statuses = append(s.Statuses, g.Status.Tag)
		}
		s.GoalsByStatus[g.Status.Tag]++
	}
	sort.Strings(s.Statuses)
	return s
}

func jsonResource(uri string, v any) ([]mcp.ResourceContents, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshaling %s: %w", uri, err)
	}

	return []mcp.ResourceContents{
		mcp.TextResourceContents{
			URI:      uri,
			MIMEType: "application/json",
			Text:     string(data),
		},
	}, nil
}

// errorResource returns a resource with an error message.
func errorResource(uri, message string) []mcp.ResourceContents {
	return []mcp.ResourceContents{
		mcp.TextResourceContents{
			URI:      uri,
			MIMEType: "text/plain",
			Text:     fmt.Sprintf("Error: %s", message),
		},
	}
}

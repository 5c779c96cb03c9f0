// Package tools implements the read-only MCP query tools over the loaded
// dataset.
//
// Each tool is a struct holding the dataset snapshot it reads from:
// - NewXTool(data) builds it
// - Definition() returns the mcp.Tool schema
// - Handle() filters the snapshot and returns pretty-printed JSON
//
// Tools never mutate the dataset. A nil dataset is valid and makes every
// tool answer with a "not available" text instead of failing.
package tools

import (
	"encoding/json"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/truqu/truqu-mcp/internal/dataset"
)

// NotAvailableText is returned by every tool when no dataset is loaded.
const NotAvailableText = "Data not available: no goals dataset is loaded."

// notAvailable is the soft result for a missing dataset. It is deliberately
// not an error result: the caller did nothing wrong.
func notAvailable() *mcp.CallToolResult {
	return mcp.NewToolResultText(NotAvailableText)
}

// dateRangeOptions returns the optional startDate/endDate parameters shared
// by the list-style tools. what names the date being filtered on.
func dateRangeOptions(what string) []mcp.ToolOption {
	return []mcp.ToolOption{
		mcp.WithString("startDate",
			mcp.Description(fmt.Sprintf("Only include records whose %s is on or after this day (YYYY-MM-DD)", what)),
		),
		mcp.WithString("endDate",
			mcp.Description(fmt.Sprintf("Only include records whose %s is on or before this day (YYYY-MM-DD)", what)),
		),
	}
}

// boundsArg reads startDate/endDate from the request.
func boundsArg(req mcp.CallToolRequest) (dataset.Bounds, error) {
	return dataset.ParseBounds(
		req.GetString("startDate", ""),
		req.GetString("endDate", ""),
	)
}

// jsonResult renders v as indented JSON in a single text block.
func jsonResult(v any) (*mcp.CallToolResult, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshaling result: %w", err)
	}
	return mcp.NewToolResultText(string(data)), nil
}

package tools

import (
	"context"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/HendryAvila/energywiz/internal/sessions"
)

// EndTool handles the energy_wizard_end MCP tool. It discards a session
// handle and everything stored under it.
type EndTool struct {
	store sessions.Store
}

// NewEndTool creates an EndTool with the given session store.
func NewEndTool(store sessions.Store) *EndTool {
	return &EndTool{store: store}
}

// Definition returns the MCP tool definition for registration.
func (t *EndTool) Definition() mcp.Tool {
	return mcp.NewTool("energy_wizard_end",
		mcp.WithDescription(
			"End a session and discard its answers. The handle cannot be used afterwards.",
		),
		withSessionID(),
	)
}

// Handle processes the energy_wizard_end tool call.
func (t *EndTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	id, errResult := requireSessionID(req)
	if errResult != nil {
		return errResult, nil
	}

	if err := t.store.Delete(ctx, id); err != nil {
		return sessionFailure(id, err)
	}

	return mcp.NewToolResultText(fmt.Sprintf("# Session Ended\n\nSession `%s` was discarded.", id)), nil
}

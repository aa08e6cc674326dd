package tools

import (
	"context"
	"errors"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/HendryAvila/energywiz/internal/sessions"
)

// StartTool handles the energy_wizard_start MCP tool.
// It opens a new session handle positioned at step 1.
type StartTool struct {
	store sessions.Store
}

// NewStartTool creates a StartTool with the given session store.
func NewStartTool(store sessions.Store) *StartTool {
	return &StartTool{store: store}
}

// Definition returns the MCP tool definition for registration.
func (t *StartTool) Definition() mcp.Tool {
	return mcp.NewTool("energy_wizard_start",
		mcp.WithDescription(
			"Start a new energy calculator session. Returns a `session_id` handle "+
				"and the first question. Walk the user through all 8 steps with "+
				"`energy_wizard_submit`, and call `energy_wizard_end` when finished.",
		),
	)
}

// Handle processes the energy_wizard_start tool call.
func (t *StartTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	sess, err := t.store.Create(ctx)
	if errors.Is(err, sessions.ErrTooManySessions) {
		return mcp.NewToolResultError(
			"Too many open sessions. End an existing one with `energy_wizard_end` and try again.",
		), nil
	}
	if err != nil {
		return nil, fmt.Errorf("creating session: %w", err)
	}

	response := fmt.Sprintf(
		"# ⚡ Energy Wizard Started\n\n"+
			"**Session:** `%s`\n\n"+
			"## Progress\n\n"+
			"%s\n"+
			"%s",
		sess.ID,
		renderProgress(sess.State.Step()),
		renderPrompt(sess.State),
	)
	return mcp.NewToolResultText(response), nil
}

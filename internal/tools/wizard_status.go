package tools

import (
	"context"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/HendryAvila/energywiz/internal/sessions"
)

// StatusTool handles the energy_wizard_status MCP tool.
// It shows where a session is and what has been answered so far.
type StatusTool struct {
	store sessions.Store
}

// NewStatusTool creates a StatusTool with the given session store.
func NewStatusTool(store sessions.Store) *StatusTool {
	return &StatusTool{store: store}
}

// Definition returns the MCP tool definition for registration.
func (t *StatusTool) Definition() mcp.Tool {
	return mcp.NewTool("energy_wizard_status",
		mcp.WithDescription(
			"Show the current step, progress and the answers collected so far "+
				"for a session, plus the question to ask next.",
		),
		withSessionID(),
	)
}

// Handle processes the energy_wizard_status tool call.
func (t *StatusTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	id, errResult := requireSessionID(req)
	if errResult != nil {
		return errResult, nil
	}

	sess, err := t.store.Load(ctx, id)
	if err != nil {
		return sessionFailure(id, err)
	}

	response := fmt.Sprintf(
		"# Energy Wizard Status\n\n"+
			"**Session:** `%s`\n"+
			"**Created:** %s\n"+
			"**Updated:** %s\n\n"+
			"## Progress\n\n"+
			"%s\n"+
			"## Answers So Far\n\n"+
			"%s\n"+
			"%s",
		sess.ID, sess.CreatedAt, sess.UpdatedAt,
		renderProgress(sess.State.Step()),
		renderAnswers(sess.State.Answers()),
		renderPrompt(sess.State),
	)
	return mcp.NewToolResultText(response), nil
}

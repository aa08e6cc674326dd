package tools

import (
	"context"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/HendryAvila/energywiz/internal/sessions"
	"github.com/HendryAvila/energywiz/internal/wizard"
)

// ResetTool handles the energy_wizard_reset MCP tool ("Start Over").
type ResetTool struct {
	store sessions.Store
}

// NewResetTool creates a ResetTool with the given session store.
func NewResetTool(store sessions.Store) *ResetTool {
	return &ResetTool{store: store}
}

// Definition returns the MCP tool definition for registration.
func (t *ResetTool) Definition() mcp.Tool {
	return mcp.NewTool("energy_wizard_reset",
		mcp.WithDescription(
			"Start over: clear every answer and the estimate and return to step 1. "+
				"The session handle stays valid.",
		),
		withSessionID(),
	)
}

// Handle processes the energy_wizard_reset tool call.
func (t *ResetTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	id, errResult := requireSessionID(req)
	if errResult != nil {
		return errResult, nil
	}

	sess, err := t.store.Update(ctx, id, func(st *wizard.State) error {
		st.Reset()
		return nil
	})
	if err != nil {
		return sessionFailure(id, err)
	}

	response := fmt.Sprintf(
		"# 🔄 Starting Over\n\n"+
			"All answers were cleared.\n\n"+
			"## Progress\n\n"+
			"%s\n"+
			"%s",
		renderProgress(sess.State.Step()),
		renderPrompt(sess.State),
	)
	return mcp.NewToolResultText(response), nil
}

package tools

import (
	"context"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/HendryAvila/energywiz/internal/sessions"
	"github.com/HendryAvila/energywiz/internal/wizard"
)

// BackTool handles the energy_wizard_back MCP tool.
type BackTool struct {
	store sessions.Store
}

// NewBackTool creates a BackTool with the given session store.
func NewBackTool(store sessions.Store) *BackTool {
	return &BackTool{store: store}
}

// Definition returns the MCP tool definition for registration.
func (t *BackTool) Definition() mcp.Tool {
	return mcp.NewTool("energy_wizard_back",
		mcp.WithDescription(
			"Go back one step. Answers already given are kept. "+
				"Does nothing on step 1.",
		),
		withSessionID(),
	)
}

// Handle processes the energy_wizard_back tool call.
func (t *BackTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	id, errResult := requireSessionID(req)
	if errResult != nil {
		return errResult, nil
	}

	sess, err := t.store.Update(ctx, id, func(st *wizard.State) error {
		st.GoBack()
		return nil
	})
	if err != nil {
		return sessionFailure(id, err)
	}

	response := fmt.Sprintf(
		"# ← Back to Step %d\n\n"+
			"## Progress\n\n"+
			"%s\n"+
			"%s",
		sess.State.Step(),
		renderProgress(sess.State.Step()),
		renderPrompt(sess.State),
	)
	return mcp.NewToolResultText(response), nil
}

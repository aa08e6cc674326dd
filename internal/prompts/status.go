package prompts

import (
	"context"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
)

// StatusPrompt handles the energy-status MCP prompt.
type StatusPrompt struct{}

// NewStatusPrompt creates a StatusPrompt.
func NewStatusPrompt() *StatusPrompt {
	return &StatusPrompt{}
}

// Definition returns the MCP prompt definition for registration.
func (p *StatusPrompt) Definition() mcp.Prompt {
	return mcp.NewPrompt("energy-status",
		mcp.WithPromptDescription(
			"Check where an energy calculator session is and what to answer next.",
		),
		mcp.WithArgument("session_id",
			mcp.ArgumentDescription("Session handle from energy_wizard_start."),
			mcp.RequiredArgument(),
		),
	)
}

// Handle processes the energy-status prompt request.
func (p *StatusPrompt) Handle(ctx context.Context, req mcp.GetPromptRequest) (*mcp.GetPromptResult, error) {
	id := req.Params.Arguments["session_id"]
	if id == "" {
		return nil, fmt.Errorf("session_id argument is required")
	}

	return &mcp.GetPromptResult{
		Description: "Energy Wizard Status",
		Messages: []mcp.PromptMessage{
			{
				Role: mcp.RoleUser,
				Content: mcp.NewTextContent(fmt.Sprintf(
					"Please run `energy_wizard_status` with session_id `%s`.\n\n"+
						"Then:\n"+
						"1. Show me which step I am on and how far along I am\n"+
						"2. Summarize what I have answered so far\n"+
						"3. Ask me the next question",
					id,
				)),
			},
		},
	}, nil
}

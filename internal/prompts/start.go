// Package prompts implements MCP prompt handlers for the energy wizard.
package prompts

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"
)

// StartPrompt handles the energy-start MCP prompt.
// It instructs the AI to walk the user through the wizard one question
// at a time.
type StartPrompt struct{}

// NewStartPrompt creates a StartPrompt.
func NewStartPrompt() *StartPrompt {
	return &StartPrompt{}
}

// Definition returns the MCP prompt definition for registration.
func (p *StartPrompt) Definition() mcp.Prompt {
	return mcp.NewPrompt("energy-start",
		mcp.WithPromptDescription(
			"Calculate your home's daily energy consumption. "+
				"Walks you through 8 short questions about you, your home and your appliances.",
		),
	)
}

// Handle processes the energy-start prompt request.
func (p *StartPrompt) Handle(ctx context.Context, req mcp.GetPromptRequest) (*mcp.GetPromptResult, error) {
	return &mcp.GetPromptResult{
		Description: "Smart Energy Calculator",
		Messages: []mcp.PromptMessage{
			{
				Role: mcp.RoleUser,
				Content: mcp.NewTextContent(
					"I want to estimate my home's daily energy consumption.\n\n" +
						"Please:\n" +
						"1. Call `energy_wizard_start` and keep the returned `session_id`\n" +
						"2. Ask me ONE step's question at a time, exactly as the tool describes it\n" +
						"3. For steps 3-7, show me the choices and submit as soon as I pick one\n" +
						"4. For steps 1-2, confirm my answers before calling `energy_wizard_submit`\n" +
						"5. If a submission is rejected, explain why and ask the same question again\n" +
						"6. If I want to change an earlier answer, use `energy_wizard_back`; to start over, `energy_wizard_reset`\n" +
						"7. Show me the final summary and energy breakdown, then call `energy_wizard_end`",
				),
			},
		},
	}, nil
}

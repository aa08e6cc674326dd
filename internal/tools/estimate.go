package tools

import (
	"context"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/HendryAvila/energywiz/internal/energy"
	"github.com/HendryAvila/energywiz/internal/profile"
)

// EstimateTool handles the energy_estimate MCP tool: a one-shot
// estimate without going through the wizard.
type EstimateTool struct{}

// NewEstimateTool creates an EstimateTool.
func NewEstimateTool() *EstimateTool {
	return &EstimateTool{}
}

// Definition returns the MCP tool definition for registration.
func (t *EstimateTool) Definition() mcp.Tool {
	return mcp.NewTool("energy_estimate",
		mcp.WithDescription(
			"Estimate daily energy consumption directly from a bedroom configuration "+
				"and appliance ownership. Unknown or missing values contribute 0 kWh.",
		),
		mcp.WithString("facility",
			mcp.Description("Bedroom configuration: `1bhk`, `2bhk` or `3bhk`."),
		),
		mcp.WithBoolean("ac",
			mcp.Description("Whether the home uses air conditioning."),
		),
		mcp.WithBoolean("fridge",
			mcp.Description("Whether the home has a refrigerator."),
		),
		mcp.WithBoolean("washing_machine",
			mcp.Description("Whether the home has a washing machine."),
		),
	)
}

// Handle processes the energy_estimate tool call.
func (t *EstimateTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	raw := req.GetString("facility", "")
	facility, ok := profile.ParseFacility(raw)
	if !ok {
		facility = profile.Facility(raw)
	}

	b := energy.Estimate(profile.Answers{
		Facility:       facility,
		AC:             profile.Bool(req.GetBool("ac", false)),
		Fridge:         profile.Bool(req.GetBool("fridge", false)),
		WashingMachine: profile.Bool(req.GetBool("washing_machine", false)),
	})

	var sb strings.Builder
	sb.WriteString("# ⚡ Energy Estimate\n\n")
	sb.WriteString(renderBreakdown(b))
	if !ok && raw != "" {
		sb.WriteString("\n⚠️ Unrecognized facility `" + raw + "`; base load counted as 0.\n")
	}
	return mcp.NewToolResultText(sb.String()), nil
}

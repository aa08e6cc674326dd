package prompts

import (
	"context"
	"testing"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func promptText(t *testing.T, result *mcp.GetPromptResult) string {
	t.Helper()
	require.Len(t, result.Messages, 1)
	tc, ok := result.Messages[0].Content.(mcp.TextContent)
	require.True(t, ok, "content is %T, want mcp.TextContent", result.Messages[0].Content)
	return tc.Text
}

func TestStartPrompt(t *testing.T) {
	p := NewStartPrompt()
	assert.Equal(t, "energy-start", p.Definition().Name)

	result, err := p.Handle(context.Background(), mcp.GetPromptRequest{})
	require.NoError(t, err)

	text := promptText(t, result)
	for _, tool := range []string{"energy_wizard_start", "energy_wizard_submit", "energy_wizard_back", "energy_wizard_end"} {
		assert.Contains(t, text, tool)
	}
}

func TestStatusPrompt(t *testing.T) {
	p := NewStatusPrompt()

	req := mcp.GetPromptRequest{}
	req.Params.Arguments = map[string]string{"session_id": "abc-123"}
	result, err := p.Handle(context.Background(), req)
	require.NoError(t, err)
	assert.Contains(t, promptText(t, result), "`abc-123`")
}

func TestStatusPrompt_RequiresSessionID(t *testing.T) {
	_, err := NewStatusPrompt().Handle(context.Background(), mcp.GetPromptRequest{})
	assert.Error(t, err)
}

// Package tools implements the MCP tool handlers for the energy wizard.
//
// Each tool is a struct that receives its dependencies at construction
// and exposes Definition() for registration and Handle() for calls.
// Validation problems the user can fix are returned as tool error
// results; only infrastructure failures are returned as Go errors.
package tools

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/HendryAvila/energywiz/internal/profile"
	"github.com/HendryAvila/energywiz/internal/sessions"
)

// withSessionID is the shared session_id argument.
func withSessionID() mcp.ToolOption {
	return mcp.WithString("session_id",
		mcp.Required(),
		mcp.Description("Session handle returned by `energy_wizard_start`."),
	)
}

// requireSessionID reads session_id, returning a tool error result when
// it is missing.
func requireSessionID(req mcp.CallToolRequest) (string, *mcp.CallToolResult) {
	id := strings.TrimSpace(req.GetString("session_id", ""))
	if id == "" {
		return "", mcp.NewToolResultError("'session_id' is required. Start a session with `energy_wizard_start` first")
	}
	return id, nil
}

// sessionFailure turns a store error into a tool result. Unknown handles
// are the caller's problem; anything else is an infrastructure error.
func sessionFailure(id string, err error) (*mcp.CallToolResult, error) {
	if errors.Is(err, sessions.ErrNotFound) {
		return mcp.NewToolResultError(fmt.Sprintf(
			"Session %q not found. It may have ended; start a new one with `energy_wizard_start`.", id,
		)), nil
	}
	return nil, fmt.Errorf("session %s: %w", id, err)
}

// choiceArg reads a selection argument. Booleans are accepted as well as
// strings so hosts can send either `true` or "yes".
func choiceArg(req mcp.CallToolRequest, key string) string {
	raw, ok := req.GetArguments()[key]
	if !ok || raw == nil {
		return ""
	}
	switch v := raw.(type) {
	case bool:
		return profile.YesNo(v)
	case string:
		return v
	default:
		return fmt.Sprint(v)
	}
}

// intArg reads a whole-number argument. JSON numbers arrive as float64,
// so a fractional part is rejected rather than truncated. Numeric strings
// are accepted. raw is the value as the caller sent it, for error
// messages. A missing argument yields 0 with ok set.
func intArg(req mcp.CallToolRequest, key string) (n int, raw string, ok bool) {
	v, present := req.GetArguments()[key]
	if !present || v == nil {
		return 0, "", true
	}
	switch x := v.(type) {
	case int:
		return x, strconv.Itoa(x), true
	case int64:
		return clampInt(float64(x)), strconv.FormatInt(x, 10), true
	case float64:
		raw = strconv.FormatFloat(x, 'f', -1, 64)
		if math.IsNaN(x) || math.IsInf(x, 0) || x != math.Trunc(x) {
			return 0, raw, false
		}
		return clampInt(x), raw, true
	case string:
		s := strings.TrimSpace(x)
		if i, err := strconv.Atoi(s); err == nil {
			return i, strconv.Quote(x), true
		}
		return 0, strconv.Quote(x), false
	default:
		return 0, fmt.Sprintf("%v", v), false
	}
}

// clampInt keeps huge integral values inside int32 so range checks
// still reject them instead of overflowing.
func clampInt(f float64) int {
	switch {
	case f > math.MaxInt32:
		return math.MaxInt32
	case f < math.MinInt32:
		return math.MinInt32
	}
	return int(f)
}

// Package resources implements MCP resource handlers for the energy wizard.
//
// Resources provide read-only data the host can consume for diagnostics.
// They use URI-based addressing (energywiz://...) following MCP conventions.
package resources

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/HendryAvila/energywiz/internal/sessions"
	"github.com/HendryAvila/energywiz/internal/wizard"
)

// sessionURIPrefix is the fixed part of the session snapshot URI.
const sessionURIPrefix = "energywiz://sessions/"

// Handler manages energy wizard resource endpoints.
type Handler struct {
	store sessions.Store
}

// NewHandler creates a resource Handler with its dependencies.
func NewHandler(store sessions.Store) *Handler {
	return &Handler{store: store}
}

// sessionDebug is the JSON shape of a session snapshot.
type sessionDebug struct {
	ID        string `json:"id"`
	CreatedAt string `json:"created_at"`
	UpdatedAt string `json:"updated_at"`
	wizard.Snapshot
}

// SessionTemplate returns the MCP resource template for session snapshots.
func (h *Handler) SessionTemplate() mcp.ResourceTemplate {
	return mcp.NewResourceTemplate(
		sessionURIPrefix+"{session_id}",
		"Energy Wizard Session",
		mcp.WithTemplateDescription("Read-only debug snapshot of a session: step, answers and computed energy"),
		mcp.WithTemplateMIMEType("application/json"),
	)
}

// HandleSession returns a session snapshot as JSON. It never mutates
// the session.
func (h *Handler) HandleSession(ctx context.Context, req mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
	uri := req.Params.URI
	id := strings.TrimPrefix(uri, sessionURIPrefix)
	if id == "" || id == uri {
		return errorResource(uri, "expected "+sessionURIPrefix+"<session_id>"), nil
	}

	sess, err := h.store.Load(ctx, id)
	if errors.Is(err, sessions.ErrNotFound) {
		return errorResource(uri, fmt.Sprintf("session %q not found", id)), nil
	}
	if err != nil {
		return nil, fmt.Errorf("loading session %s: %w", id, err)
	}

	data, err := json.MarshalIndent(sessionDebug{
		ID:        sess.ID,
		CreatedAt: sess.CreatedAt,
		UpdatedAt: sess.UpdatedAt,
		Snapshot:  sess.State.Snapshot(),
	}, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshaling session: %w", err)
	}

	return []mcp.ResourceContents{
		mcp.TextResourceContents{
			URI:      uri,
			MIMEType: "application/json",
			Text:     string(data),
		},
	}, nil
}

// errorResource returns a resource with an error message.
func errorResource(uri, message string) []mcp.ResourceContents {
	return []mcp.ResourceContents{
		mcp.TextResourceContents{
			URI:      uri,
			MIMEType: "text/plain",
			Text:     fmt.Sprintf("Error: %s", message),
		},
	}
}

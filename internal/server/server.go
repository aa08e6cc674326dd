// Package server wires all MCP components and creates the server instance.
//
// This is the composition root: it creates concrete implementations and
// injects them into the tools/prompts/resources that depend on
// abstractions. No business logic lives here, only wiring.
package server

import (
	"fmt"
	"log"

	"github.com/mark3labs/mcp-go/server"

	"github.com/HendryAvila/energywiz/internal/config"
	"github.com/HendryAvila/energywiz/internal/prompts"
	"github.com/HendryAvila/energywiz/internal/resources"
	"github.com/HendryAvila/energywiz/internal/sessions"
	"github.com/HendryAvila/energywiz/internal/tools"
)

// Version is set at build time via ldflags.
var Version = "dev"

// New creates and configures the MCP server with all tools, prompts,
// and resources registered.
//
// The returned cleanup function closes the session store and must be
// called on shutdown (typically via defer). It is always non-nil.
func New(cfg *config.Config) (*server.MCPServer, func(), error) {
	// --- Create shared dependencies ---

	store, err := sessions.NewSQLiteStore(cfg.Sessions())
	if err != nil {
		return nil, noop, fmt.Errorf("creating session store: %w", err)
	}
	cleanup := func() {
		if err := store.Close(); err != nil {
			log.Printf("WARNING: session store close: %v", err)
		}
	}

	// --- Create the MCP server ---

	s := server.NewMCPServer(
		cfg.ServerName,
		Version,
		server.WithToolCapabilities(true),
		server.WithResourceCapabilities(false, true),
		server.WithPromptCapabilities(true),
		server.WithRecovery(),
		server.WithInstructions(serverInstructions()),
	)

	// --- Register wizard tools ---

	startTool := tools.NewStartTool(store)
	s.AddTool(startTool.Definition(), startTool.Handle)

	submitTool := tools.NewSubmitTool(store)
	s.AddTool(submitTool.Definition(), submitTool.Handle)

	backTool := tools.NewBackTool(store)
	s.AddTool(backTool.Definition(), backTool.Handle)

	resetTool := tools.NewResetTool(store)
	s.AddTool(resetTool.Definition(), resetTool.Handle)

	statusTool := tools.NewStatusTool(store)
	s.AddTool(statusTool.Definition(), statusTool.Handle)

	endTool := tools.NewEndTool(store)
	s.AddTool(endTool.Definition(), endTool.Handle)

	// Stateless: no session needed.
	estimateTool := tools.NewEstimateTool()
	s.AddTool(estimateTool.Definition(), estimateTool.Handle)

	// --- Register prompts ---

	startPrompt := prompts.NewStartPrompt()
	s.AddPrompt(startPrompt.Definition(), startPrompt.Handle)

	statusPrompt := prompts.NewStatusPrompt()
	s.AddPrompt(statusPrompt.Definition(), statusPrompt.Handle)

	// --- Register resources ---
	//
	// Session snapshots are a debugging aid and stay hidden unless
	// ENERGYWIZ_DEBUG is set.

	if cfg.Debug {
		resourceHandler := resources.NewHandler(store)
		s.AddResourceTemplate(resourceHandler.SessionTemplate(), resourceHandler.HandleSession)
		log.Printf("debug: session snapshots exposed at energywiz://sessions/{session_id}")
	}

	return s, cleanup, nil
}

// noop is the cleanup returned when construction fails.
func noop() {}

// serverInstructions tells the AI how to drive the wizard.
func serverInstructions() string {
	return `You have access to energywiz, a guided energy consumption calculator.

## WHEN TO USE IT

Use energywiz when the user wants to estimate how much electricity their
home uses per day, or asks how appliances like AC, a fridge or a washing
machine affect their consumption.

## THE WIZARD

The wizard has 8 steps and every session is identified by a session_id:

1. Personal information: name and age (1-120)
2. Location: city and area
3. Housing type: flat or tenement
4. Room configuration: 1bhk, 2bhk or 3bhk
5. Air conditioning: yes or no
6. Refrigerator: yes or no
7. Washing machine: yes or no
8. Results: the daily estimate with a per-category breakdown

Rules:
- Call energy_wizard_start once and reuse the session_id.
- Ask ONE step at a time. Do not invent answers for the user.
- Submit with energy_wizard_submit, passing the current step number.
- Steps 3-7 are single choice: submit as soon as the user picks.
- Steps 1-2 are free text: confirm with the user before submitting.
- A rejected submission leaves the session unchanged; ask again.
- energy_wizard_back goes one step back, energy_wizard_reset starts over.
- Call energy_wizard_end when the user is done.

For a quick answer without the wizard, use energy_estimate.`
}

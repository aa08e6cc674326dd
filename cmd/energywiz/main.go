// energywiz: Smart Energy Calculator MCP Server
//
// An MCP server that lets any AI assistant walk a user through a short
// guided form about their home and appliances and estimate their daily
// electricity consumption.
//
// Usage:
//
//	energywiz serve      # Start MCP server (stdio transport)
//	energywiz estimate   # One-shot estimate from flags
package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/mark3labs/mcp-go/server"

	"github.com/HendryAvila/energywiz/internal/config"
	"github.com/HendryAvila/energywiz/internal/energy"
	"github.com/HendryAvila/energywiz/internal/profile"
	wizserver "github.com/HendryAvila/energywiz/internal/server"
)

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	switch os.Args[1] {
	case "serve":
		if err := run(); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	case "estimate":
		if err := runEstimate(os.Args[2:], os.Stdout); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(2)
		}
	case "--help", "-h", "help":
		printUsage()
		os.Exit(0)
	case "--version", "-v", "version":
		fmt.Printf("energywiz v%s\n", wizserver.Version)
		os.Exit(0)
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n\n", os.Args[1])
		printUsage()
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	s, cleanup, err := wizserver.New(cfg)
	if err != nil {
		return fmt.Errorf("creating server: %w", err)
	}
	defer cleanup()

	// ServeStdio handles SIGINT/SIGTERM itself and returns on shutdown,
	// so the deferred cleanup still runs.
	return server.ServeStdio(s)
}

// runEstimate prints a breakdown for the given flags without starting
// the wizard.
func runEstimate(args []string, out io.Writer) error {
	fs := flag.NewFlagSet("estimate", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	facilityFlag := fs.String("facility", "", "bedroom configuration: 1bhk, 2bhk or 3bhk")
	ac := fs.Bool("ac", false, "home uses air conditioning")
	fridge := fs.Bool("fridge", false, "home has a refrigerator")
	washing := fs.Bool("washing-machine", false, "home has a washing machine")
	if err := fs.Parse(args); err != nil {
		return fmt.Errorf("parsing flags: %w", err)
	}

	facility, ok := profile.ParseFacility(*facilityFlag)
	if *facilityFlag != "" && !ok {
		return fmt.Errorf("unknown facility %q: must be one of 1bhk, 2bhk, 3bhk", *facilityFlag)
	}

	b := energy.Estimate(profile.Answers{
		Facility:       facility,
		AC:             profile.Bool(*ac),
		Fridge:         profile.Bool(*fridge),
		WashingMachine: profile.Bool(*washing),
	})

	fmt.Fprintf(out, "Base:     %s\n", energy.FormatComponent(b.Base))
	fmt.Fprintf(out, "AC:       %s\n", energy.FormatComponent(b.AC))
	fmt.Fprintf(out, "Fridge:   %s\n", energy.FormatComponent(b.Fridge))
	fmt.Fprintf(out, "Washing:  %s\n", energy.FormatComponent(b.Washing))
	fmt.Fprintf(out, "Total:    %s per day\n", b.FormatTotal())
	return nil
}

func printUsage() {
	fmt.Fprintf(os.Stderr, `energywiz v%s — Smart Energy Calculator MCP Server

Usage:
  energywiz serve       Start the MCP server (stdio transport)
  energywiz estimate    Print an estimate, e.g.
                        energywiz estimate -facility 2bhk -ac -fridge

Environment:
  ENERGYWIZ_SERVER_NAME    name advertised to MCP clients (default energywiz)
  ENERGYWIZ_SESSION_DSN    in-memory SQLite DSN for sessions (default :memory:)
  ENERGYWIZ_MAX_SESSIONS   open session cap, 0 = unlimited (default 64)
  ENERGYWIZ_DEBUG          expose energywiz://sessions/{id} snapshots

Configuration:
  Add to your AI tool's MCP config:

  {
    "mcpServers": {
      "energywiz": {
        "command": "energywiz",
        "args": ["serve"]
      }
    }
  }
`, wizserver.Version)
}

// ABOUTME: MCP command starts Model Context Protocol server
// ABOUTME: Enables LLM agents like Claude to use FLIPFLOPS via stdio
package commands

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	mcpserver "github.com/mark3labs/mcp-go/server"
	"github.com/spf13/cobra"

	"flipflops/internal/mcp"
)

// NewMCPCmd creates the MCP command
func NewMCPCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "mcp",
		Short: "Start MCP server for LLM agents",
		Long: `Start MCP server for LLM agents

Runs FLIPFLOPS as an MCP (Model Context Protocol) server, exposing the
study assistant tools (ask_question, explain_concept, generate_exam,
list_topics, ingest_document) over stdio.`,
		RunE: runMCP,
		Example: `  # Start MCP server (typically called by an MCP host)
  flipflops mcp

  # Configure in claude_desktop_config.json:
  # {
  #   "mcpServers": {
  #     "flipflops": {
  #       "command": "flipflops",
  #       "args": ["mcp"]
  #     }
  #   }
  # }`,
	}

	return cmd
}

// runMCP starts the MCP server
func runMCP(cmd *cobra.Command, args []string) error {
	// Load .env file if it exists (for API keys)
	if err := godotenv.Load(); err != nil && !quiet {
		log.Printf("No .env file found (this is okay for production): %v", err)
	}

	a, err := newApp()
	if err != nil {
		return err
	}
	defer a.close()

	if err := a.withTutor(); err != nil {
		return err
	}

	server := mcpserver.NewMCPServer(
		"FLIPFLOPS Study Assistant",
		"0.1.0",
	)

	mcp.RegisterTools(server, a.tutor, a.topics, a.ingestor, a.logger)

	// Setup graceful shutdown
	ctx, stop := signal.NotifyContext(context.Background(),
		os.Interrupt, syscall.SIGTERM)
	defer stop()

	if !quiet {
		log.Println("FLIPFLOPS MCP server starting on stdio...")
	}

	serverErr := make(chan error, 1)
	go func() {
		serverErr <- mcpserver.ServeStdio(server)
	}()

	select {
	case <-ctx.Done():
		if !quiet {
			log.Println("Shutdown signal received, gracefully shutting down...")
		}

		// Persist anything ingested over MCP during this session
		if err := a.saveIndex(); err != nil {
			log.Printf("Warning: %v", err)
		}

		if !quiet {
			log.Println("Shutdown complete")
		}

	case err := <-serverErr:
		if err != nil {
			return fmt.Errorf("server error: %w", err)
		}
	}

	return nil
}

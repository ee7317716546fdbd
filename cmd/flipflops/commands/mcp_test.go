// ABOUTME: Tests for MCP command metadata
// ABOUTME: Verifies command structure without starting a server

package commands

import (
	"strings"
	"testing"
)

func TestNewMCPCmd(t *testing.T) {
	cmd := NewMCPCmd()

	if cmd.Use != "mcp" {
		t.Errorf("Use = %q, want %q", cmd.Use, "mcp")
	}

	if cmd.RunE == nil {
		t.Error("RunE should be set")
	}

	if !strings.Contains(cmd.Example, "mcpServers") {
		t.Error("Example should show MCP host configuration")
	}
}

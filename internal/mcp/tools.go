// ABOUTME: MCP tool definitions and registration for the FLIPFLOPS server
// ABOUTME: Defines JSON schemas for the 5 study assistant tools
package mcp

import (
	"log/slog"

	"github.com/mark3labs/mcp-go/mcp"
	mcpserver "github.com/mark3labs/mcp-go/server"

	"flipflops/internal/core"
	"flipflops/internal/ingest"
)

// RegisterTools registers all MCP tools with the server
func RegisterTools(server *mcpserver.MCPServer, tutor *core.Tutor, topics *core.TopicService, ingestor *ingest.Ingestor, logger *slog.Logger) *Handlers {
	if logger == nil {
		logger = slog.Default()
	}
	handlers := &Handlers{
		tutor:    tutor,
		topics:   topics,
		ingestor: ingestor,
		logger:   logger,
	}

	// 1. ask_question - Answer a study question over the ingested material
	server.AddTool(mcp.Tool{
		Name:        "ask_question",
		Description: "Answer a study question in Portuguese using the ingested study material as context. Falls back to general knowledge when nothing relevant is indexed.",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"question": map[string]interface{}{
					"type":        "string",
					"description": "The student's question",
				},
			},
			Required: []string{"question"},
		},
	}, handlers.AskQuestion)

	// 2. explain_concept - Socratic explanation of a concept
	server.AddTool(mcp.Tool{
		Name:        "explain_concept",
		Description: "Explain a concept using the Socratic method, with guiding questions and examples relevant to the FUVEST exam.",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"concept": map[string]interface{}{
					"type":        "string",
					"description": "The concept to explain",
				},
			},
			Required: []string{"concept"},
		},
	}, handlers.ExplainConcept)

	// 3. generate_exam - Generate validated multiple-choice questions
	server.AddTool(mcp.Tool{
		Name:        "generate_exam",
		Description: "Generate multiple-choice exam questions (5 options each, FUVEST style) about a topic, grounded in the ingested material.",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"topic": map[string]interface{}{
					"type":        "string",
					"description": "Exam topic",
				},
				"num_questions": map[string]interface{}{
					"type":        "number",
					"description": "How many questions to generate (default: 5)",
					"default":     5,
				},
			},
			Required: []string{"topic"},
		},
	}, handlers.GenerateExam)

	// 4. list_topics - List the available study topics
	server.AddTool(mcp.Tool{
		Name:        "list_topics",
		Description: "List the study topics available in the ingested material.",
		InputSchema: mcp.ToolInputSchema{
			Type:       "object",
			Properties: map[string]interface{}{},
		},
	}, handlers.ListTopics)

	// 5. ingest_document - Add a document to the knowledge base
	server.AddTool(mcp.Tool{
		Name:        "ingest_document",
		Description: "Ingest a study document (.txt, .md or .csv) into the knowledge base so it can ground future answers.",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"path": map[string]interface{}{
					"type":        "string",
					"description": "Path of the file to ingest",
				},
			},
			Required: []string{"path"},
		},
	}, handlers.IngestDocument)

	return handlers
}

// ABOUTME: MCP tool handler implementations for the FLIPFLOPS server
// ABOUTME: Contains handler implementations with proper error handling for all 5 tools
package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/mark3labs/mcp-go/mcp"

	"flipflops/internal/core"
	"flipflops/internal/ingest"
)

// Handlers contains the handler functions for all MCP tools
type Handlers struct {
	tutor    *core.Tutor
	topics   *core.TopicService
	ingestor *ingest.Ingestor
	logger   *slog.Logger
}

// AskQuestion handles the ask_question tool
func (h *Handlers) AskQuestion(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	question, err := request.RequireString("question")
	if err != nil {
		return mcp.NewToolResultError("question argument is required and must be a string"), nil
	}

	answer, err := h.tutor.Answer(ctx, question)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to answer question: %v", err)), nil
	}

	response := map[string]interface{}{
		"question": question,
		"answer":   answer,
	}
	jsonResponse, err := json.Marshal(response)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to marshal response: %v", err)), nil
	}

	return mcp.NewToolResultText(string(jsonResponse)), nil
}

// ExplainConcept handles the explain_concept tool
func (h *Handlers) ExplainConcept(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	concept, err := request.RequireString("concept")
	if err != nil {
		return mcp.NewToolResultError("concept argument is required and must be a string"), nil
	}

	explanation, err := h.tutor.Explain(ctx, concept)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to explain concept: %v", err)), nil
	}

	response := map[string]interface{}{
		"concept":     concept,
		"explanation": explanation,
	}
	jsonResponse, err := json.Marshal(response)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to marshal response: %v", err)), nil
	}

	return mcp.NewToolResultText(string(jsonResponse)), nil
}

// GenerateExam handles the generate_exam tool
func (h *Handlers) GenerateExam(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	topic, err := request.RequireString("topic")
	if err != nil {
		return mcp.NewToolResultError("topic argument is required and must be a string"), nil
	}

	numQuestions := request.GetInt("num_questions", 5)
	if numQuestions < 1 {
		return mcp.NewToolResultError("num_questions must be at least 1"), nil
	}

	questions, err := h.tutor.GenerateExam(ctx, topic, numQuestions)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to generate exam: %v", err)), nil
	}

	response := map[string]interface{}{
		"topic":     topic,
		"requested": numQuestions,
		"count":     len(questions),
		"questions": questions,
	}
	jsonResponse, err := json.Marshal(response)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to marshal response: %v", err)), nil
	}

	return mcp.NewToolResultText(string(jsonResponse)), nil
}

// ListTopics handles the list_topics tool
func (h *Handlers) ListTopics(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	topics, err := h.topics.Topics(ctx)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to list topics: %v", err)), nil
	}

	names := make([]string, 0, len(topics))
	for _, t := range topics {
		names = append(names, t.Name)
	}

	response := map[string]interface{}{
		"count":  len(names),
		"topics": names,
	}
	jsonResponse, err := json.Marshal(response)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to marshal response: %v", err)), nil
	}

	return mcp.NewToolResultText(string(jsonResponse)), nil
}

// IngestDocument handles the ingest_document tool
func (h *Handlers) IngestDocument(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	path, err := request.RequireString("path")
	if err != nil {
		return mcp.NewToolResultError("path argument is required and must be a string"), nil
	}

	doc, indexed, err := h.ingestor.IngestFile(ctx, path)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to ingest document: %v", err)), nil
	}

	h.logger.Info("document ingested", "path", path, "chunks", indexed)

	response := map[string]interface{}{
		"document_id":    doc.ID,
		"name":           doc.Name,
		"file_type":      doc.FileType,
		"chunks_indexed": indexed,
	}
	jsonResponse, err := json.Marshal(response)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to marshal response: %v", err)), nil
	}

	return mcp.NewToolResultText(string(jsonResponse)), nil
}

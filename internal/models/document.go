// ABOUTME: Document entity for ingested study material
// ABOUTME: Represents a loaded source file with extraction metadata
package models

import "time"

// Document represents an ingested source file (text, markdown, CSV or
// pre-extracted PDF text) together with loader metadata.
type Document struct {
	ID        string         `json:"id"`
	Name      string         `json:"name"`
	Content   string         `json:"content"`
	FileType  string         `json:"file_type"`
	Metadata  map[string]any `json:"metadata,omitempty"`
	CreatedAt time.Time      `json:"created_at"`
}

// Chunk is a bounded-length slice of a document, independently embedded.
type Chunk struct {
	ChunkID    string `json:"chunk_id"`
	DocumentID string `json:"document_id"`
	Content    string `json:"content"`
	Index      int    `json:"index"`
	StartIndex int    `json:"start_index"`
}

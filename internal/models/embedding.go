// ABOUTME: Embedding models for vector storage and semantic search
// ABOUTME: Defines Embedding and RankedResult structures
package models

// Embedding represents a stored embedding vector for a text chunk
type Embedding struct {
	ID         string         `json:"id"`
	Vector     []float64      `json:"vector"`
	Text       string         `json:"text"`
	DocumentID string         `json:"document_id,omitempty"`
	ChunkID    string         `json:"chunk_id,omitempty"`
	Metadata   map[string]any `json:"metadata,omitempty"`
}

// Dimension returns the length of the embedding vector
func (e *Embedding) Dimension() int {
	return len(e.Vector)
}

// GetMetadataString returns a string metadata value, or fallback when the
// key is absent or holds a non-string value.
func (e *Embedding) GetMetadataString(key, fallback string) string {
	if e.Metadata == nil {
		return fallback
	}
	if v, ok := e.Metadata[key].(string); ok {
		return v
	}
	return fallback
}

// GetMetadataFloat returns a numeric metadata value, or fallback when the
// key is absent or holds a non-numeric value. JSON round-trips store numbers
// as float64, so both float64 and int are accepted.
func (e *Embedding) GetMetadataFloat(key string, fallback float64) float64 {
	if e.Metadata == nil {
		return fallback
	}
	switch v := e.Metadata[key].(type) {
	case float64:
		return v
	case int:
		return float64(v)
	}
	return fallback
}

// SetMetadata adds a metadata entry, allocating the map on first use.
func (e *Embedding) SetMetadata(key string, value any) {
	if e.Metadata == nil {
		e.Metadata = make(map[string]any)
	}
	e.Metadata[key] = value
}

// RankedResult is an embedding paired with its adjusted relevance score.
// Computed transiently by the ranker and never persisted.
type RankedResult struct {
	Embedding  *Embedding `json:"embedding"`
	FinalScore float64    `json:"final_score"`
}

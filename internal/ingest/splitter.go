// ABOUTME: Splitter cuts documents into overlapping fixed-size chunks
// ABOUTME: Prefers paragraph and sentence boundaries near the cut point
package ingest

import (
	"strings"

	"github.com/google/uuid"

	"flipflops/internal/models"
)

const (
	// DefaultChunkSize is the target chunk length in runes.
	DefaultChunkSize = 1000
	// DefaultChunkOverlap is carried between consecutive chunks.
	DefaultChunkOverlap = 200
)

// Splitter produces overlapping chunks from document content.
type Splitter struct {
	chunkSize int
	overlap   int
}

// NewSplitter creates a splitter. Non-positive size or overlap, or an
// overlap at least as large as the size, fall back to the defaults.
func NewSplitter(chunkSize, overlap int) *Splitter {
	if chunkSize <= 0 {
		chunkSize = DefaultChunkSize
	}
	if overlap < 0 || overlap >= chunkSize {
		overlap = DefaultChunkOverlap
		if overlap >= chunkSize {
			overlap = chunkSize / 5
		}
	}
	return &Splitter{chunkSize: chunkSize, overlap: overlap}
}

// Split cuts the document into chunks. Short documents yield one chunk;
// empty content yields none.
func (s *Splitter) Split(doc *models.Document) []models.Chunk {
	text := strings.TrimSpace(doc.Content)
	if text == "" {
		return nil
	}

	runes := []rune(text)
	var chunks []models.Chunk
	start := 0

	for start < len(runes) {
		end := start + s.chunkSize
		if end >= len(runes) {
			end = len(runes)
		} else {
			end = s.adjustCut(runes, start, end)
		}

		content := strings.TrimSpace(string(runes[start:end]))
		if content != "" {
			chunks = append(chunks, models.Chunk{
				ChunkID:    "chunk_" + uuid.New().String(),
				DocumentID: doc.ID,
				Content:    content,
				Index:      len(chunks),
				StartIndex: start,
			})
		}

		if end == len(runes) {
			break
		}
		next := end - s.overlap
		if next <= start {
			next = end
		}
		start = next
	}

	return chunks
}

// adjustCut pulls the cut point back to the nearest paragraph break,
// sentence end or space inside the final fifth of the window. No boundary
// there means a hard cut.
func (s *Splitter) adjustCut(runes []rune, start, end int) int {
	window := string(runes[start:end])
	floor := len(window) - len(window)/5

	for _, boundary := range []string{"\n\n", ". ", "\n", " "} {
		idx := strings.LastIndex(window, boundary)
		if idx >= floor {
			return start + len([]rune(window[:idx+len(boundary)]))
		}
	}
	return end
}

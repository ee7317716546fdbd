// ABOUTME: Tests for the overlapping document splitter
// ABOUTME: Covers single-chunk docs, overlap continuity and boundary cuts
package ingest

import (
	"strings"
	"testing"

	"flipflops/internal/models"
)

func docWith(content string) *models.Document {
	return &models.Document{ID: "doc-1", Name: "teste.txt", Content: content}
}

func TestSplitShortDocument(t *testing.T) {
	s := NewSplitter(1000, 200)

	chunks := s.Split(docWith("Um parágrafo curto sobre biologia."))
	if len(chunks) != 1 {
		t.Fatalf("expected 1 chunk, got %d", len(chunks))
	}
	if chunks[0].DocumentID != "doc-1" {
		t.Errorf("document id = %q", chunks[0].DocumentID)
	}
	if chunks[0].Index != 0 || chunks[0].StartIndex != 0 {
		t.Errorf("unexpected chunk position: %+v", chunks[0])
	}
	if chunks[0].ChunkID == "" {
		t.Error("chunk should get an id")
	}
}

func TestSplitEmptyDocument(t *testing.T) {
	s := NewSplitter(1000, 200)

	if chunks := s.Split(docWith("   \n  ")); len(chunks) != 0 {
		t.Errorf("expected no chunks, got %d", len(chunks))
	}
}

func TestSplitLongDocumentOverlaps(t *testing.T) {
	s := NewSplitter(100, 20)

	content := strings.Repeat("palavra ", 100) // ~800 chars, no paragraph breaks
	chunks := s.Split(docWith(content))

	if len(chunks) < 2 {
		t.Fatalf("expected multiple chunks, got %d", len(chunks))
	}
	for i, chunk := range chunks {
		if len([]rune(chunk.Content)) > 100 {
			t.Errorf("chunk %d exceeds size: %d runes", i, len([]rune(chunk.Content)))
		}
		if chunk.Index != i {
			t.Errorf("chunk %d carries index %d", i, chunk.Index)
		}
	}
	// Consecutive chunks share overlapping text.
	for i := 1; i < len(chunks); i++ {
		if chunks[i].StartIndex >= chunks[i-1].StartIndex+100 {
			t.Errorf("chunk %d starts at %d, expected overlap with previous start %d",
				i, chunks[i].StartIndex, chunks[i-1].StartIndex)
		}
	}
}

func TestSplitPrefersParagraphBoundary(t *testing.T) {
	s := NewSplitter(100, 10)

	first := strings.Repeat("a", 85)
	second := strings.Repeat("b", 85)
	chunks := s.Split(docWith(first + "\n\n" + second))

	if len(chunks) < 2 {
		t.Fatalf("expected at least 2 chunks, got %d", len(chunks))
	}
	if strings.Contains(chunks[0].Content, "b") {
		t.Errorf("first chunk should cut at the paragraph break:\n%q", chunks[0].Content)
	}
}

func TestNewSplitterDefaults(t *testing.T) {
	s := NewSplitter(0, -1)
	if s.chunkSize != DefaultChunkSize {
		t.Errorf("chunk size = %d, want default", s.chunkSize)
	}
	if s.overlap != DefaultChunkOverlap {
		t.Errorf("overlap = %d, want default", s.overlap)
	}

	s = NewSplitter(50, 60)
	if s.overlap >= s.chunkSize {
		t.Errorf("overlap %d must stay below chunk size %d", s.overlap, s.chunkSize)
	}
}

// ABOUTME: Tests for the cosine vector index
// ABOUTME: Covers dimension enforcement, search ordering, sampling and persistence
package storage

import (
	"math"
	"path/filepath"
	"testing"

	"flipflops/internal/models"
)

func TestAddEnforcesDimension(t *testing.T) {
	idx := NewVectorIndex(3)

	if err := idx.Add(&models.Embedding{ID: "a", Vector: []float64{1, 0, 0}}); err != nil {
		t.Fatalf("Add failed: %v", err)
	}
	if err := idx.Add(&models.Embedding{ID: "b", Vector: []float64{1, 0}}); err == nil {
		t.Error("expected dimension mismatch error")
	}
	if err := idx.Add(&models.Embedding{ID: "c"}); err == nil {
		t.Error("expected error for empty vector")
	}
	if idx.Count() != 1 {
		t.Errorf("count = %d, want 1", idx.Count())
	}
}

func TestAddAdoptsFirstDimension(t *testing.T) {
	idx := NewVectorIndex(0)

	if err := idx.Add(&models.Embedding{ID: "a", Vector: []float64{1, 2}}); err != nil {
		t.Fatalf("Add failed: %v", err)
	}
	if idx.Dimension() != 2 {
		t.Errorf("dimension = %d, want 2", idx.Dimension())
	}
	if err := idx.Add(&models.Embedding{ID: "b", Vector: []float64{1, 2, 3}}); err == nil {
		t.Error("expected mismatch after dimension was adopted")
	}
}

func TestSearchOrdersBySimilarity(t *testing.T) {
	idx := NewVectorIndex(2)

	exact := &models.Embedding{ID: "exact", Vector: []float64{1, 0}, Text: "exato"}
	orthogonal := &models.Embedding{ID: "orthogonal", Vector: []float64{0, 1}, Text: "ortogonal"}
	near := &models.Embedding{ID: "close", Vector: []float64{1, 0.2}, Text: "próximo"}

	for _, e := range []*models.Embedding{orthogonal, exact, near} {
		if err := idx.Add(e); err != nil {
			t.Fatalf("Add failed: %v", err)
		}
	}

	results, err := idx.Search([]float64{1, 0}, 2)
	if err != nil {
		t.Fatalf("Search failed: %v", err)
	}
	if len(results) != 2 {
		t.Fatalf("expected 2 results, got %d", len(results))
	}
	if results[0].ID != "exact" || results[1].ID != "close" {
		t.Errorf("unexpected order: %s, %s", results[0].ID, results[1].ID)
	}

	score := results[0].GetMetadataFloat("score", -1)
	if math.Abs(score-1.0) > 1e-9 {
		t.Errorf("exact match score = %v, want 1.0", score)
	}
}

func TestSearchDoesNotMutateStoredEntries(t *testing.T) {
	idx := NewVectorIndex(2)

	stored := &models.Embedding{ID: "a", Vector: []float64{1, 0}, Metadata: map[string]any{"source": "doc.txt"}}
	if err := idx.Add(stored); err != nil {
		t.Fatalf("Add failed: %v", err)
	}

	if _, err := idx.Search([]float64{1, 0}, 1); err != nil {
		t.Fatalf("Search failed: %v", err)
	}
	if _, tainted := stored.Metadata["score"]; tainted {
		t.Error("search must not write scores into stored entries")
	}
}

func TestSearchEmptyIndex(t *testing.T) {
	idx := NewVectorIndex(3)

	results, err := idx.Search([]float64{1, 0, 0}, 5)
	if err != nil {
		t.Fatalf("Search failed: %v", err)
	}
	if len(results) != 0 {
		t.Errorf("expected no results, got %d", len(results))
	}
}

func TestSearchRejectsWrongQueryDimension(t *testing.T) {
	idx := NewVectorIndex(3)
	if err := idx.Add(&models.Embedding{ID: "a", Vector: []float64{1, 0, 0}}); err != nil {
		t.Fatalf("Add failed: %v", err)
	}

	if _, err := idx.Search([]float64{1, 0}, 1); err == nil {
		t.Error("expected query dimension error")
	}
}

func TestSampleTexts(t *testing.T) {
	idx := NewVectorIndex(1)
	for _, text := range []string{"um", "dois", "três"} {
		if err := idx.Add(&models.Embedding{Vector: []float64{1}, Text: text}); err != nil {
			t.Fatalf("Add failed: %v", err)
		}
	}

	texts := idx.SampleTexts(2)
	if len(texts) != 2 || texts[0] != "um" || texts[1] != "dois" {
		t.Errorf("unexpected sample: %v", texts)
	}
	if got := idx.SampleTexts(0); len(got) != 3 {
		t.Errorf("n<=0 should return everything, got %d", len(got))
	}
}

func TestSaveLoadRoundtrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "index.json")

	idx := NewVectorIndex(2)
	e := &models.Embedding{ID: "a", Vector: []float64{0.5, 0.5}, Text: "conteúdo"}
	e.SetMetadata("source", "doc.pdf")
	if err := idx.Add(e); err != nil {
		t.Fatalf("Add failed: %v", err)
	}
	if err := idx.Save(path); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	loaded := NewVectorIndex(0)
	if err := loaded.Load(path); err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if loaded.Count() != 1 || loaded.Dimension() != 2 {
		t.Errorf("loaded count=%d dim=%d", loaded.Count(), loaded.Dimension())
	}

	results, err := loaded.Search([]float64{0.5, 0.5}, 1)
	if err != nil {
		t.Fatalf("Search after load failed: %v", err)
	}
	if results[0].GetMetadataString("source", "") != "doc.pdf" {
		t.Error("metadata lost in roundtrip")
	}
}

func TestLoadMissingFile(t *testing.T) {
	idx := NewVectorIndex(3)
	if err := idx.Load(filepath.Join(t.TempDir(), "nope.json")); err != nil {
		t.Errorf("missing file should not error: %v", err)
	}
	if idx.Count() != 0 {
		t.Errorf("count = %d, want 0", idx.Count())
	}
}

func TestClear(t *testing.T) {
	idx := NewVectorIndex(1)
	if err := idx.Add(&models.Embedding{Vector: []float64{1}}); err != nil {
		t.Fatalf("Add failed: %v", err)
	}
	idx.Clear()
	if idx.Count() != 0 {
		t.Errorf("count = %d after clear, want 0", idx.Count())
	}
	if idx.Dimension() != 1 {
		t.Errorf("clear should keep the dimension, got %d", idx.Dimension())
	}
}

// ABOUTME: Tests for Embedding metadata helpers
// ABOUTME: Verifies fallback behavior for absent and mistyped metadata keys

package models

import "testing"

func TestEmbedding_Dimension(t *testing.T) {
	e := &Embedding{Vector: []float64{0.1, 0.2, 0.3}}
	if got := e.Dimension(); got != 3 {
		t.Errorf("Dimension() = %d, want 3", got)
	}
}

func TestEmbedding_GetMetadataFloat(t *testing.T) {
	e := &Embedding{Metadata: map[string]any{
		"score":    0.9,
		"count":    7,
		"not_num":  "high",
		"nil_safe": nil,
	}}

	tests := []struct {
		key      string
		fallback float64
		want     float64
	}{
		{"score", 0.5, 0.9},
		{"count", 0.5, 7},
		{"not_num", 0.5, 0.5},
		{"missing", 0.5, 0.5},
	}

	for _, tt := range tests {
		if got := e.GetMetadataFloat(tt.key, tt.fallback); got != tt.want {
			t.Errorf("GetMetadataFloat(%q) = %v, want %v", tt.key, got, tt.want)
		}
	}
}

func TestEmbedding_GetMetadataFloat_NilMap(t *testing.T) {
	e := &Embedding{}
	if got := e.GetMetadataFloat("score", 0.5); got != 0.5 {
		t.Errorf("GetMetadataFloat() on nil map = %v, want 0.5", got)
	}
}

func TestEmbedding_GetMetadataString(t *testing.T) {
	e := &Embedding{Metadata: map[string]any{"source": "apostila.pdf", "pages": 12}}

	if got := e.GetMetadataString("source", "Unknown"); got != "apostila.pdf" {
		t.Errorf("GetMetadataString(source) = %q, want %q", got, "apostila.pdf")
	}
	if got := e.GetMetadataString("pages", "Unknown"); got != "Unknown" {
		t.Errorf("GetMetadataString(pages) = %q, want fallback", got)
	}
}

func TestEmbedding_SetMetadata(t *testing.T) {
	e := &Embedding{}
	e.SetMetadata("score", 0.8)
	if got := e.GetMetadataFloat("score", 0); got != 0.8 {
		t.Errorf("SetMetadata then GetMetadataFloat = %v, want 0.8", got)
	}
}

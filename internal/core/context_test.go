// ABOUTME: Tests for the context assembler budget enforcement
// ABOUTME: Covers greedy packing, citation formatting and empty input
package core

import (
	"strings"
	"testing"

	"flipflops/internal/models"
)

func rankedResult(text string, score float64) models.RankedResult {
	return models.RankedResult{
		Embedding:  &models.Embedding{ID: "e", Text: text},
		FinalScore: score,
	}
}

func TestPrepareContextBudget(t *testing.T) {
	ca := NewContextAssembler(50)

	first := rankedResult(strings.Repeat("a", 40), 0.9)
	second := rankedResult(strings.Repeat("b", 40), 0.8)

	passages := ca.PrepareContext(testQuery(), []models.RankedResult{first, second})
	if len(passages) != 1 {
		t.Fatalf("expected 1 passage within budget, got %d", len(passages))
	}
	if passages[0] != first.Embedding.Text {
		t.Errorf("wrong passage survived: %q", passages[0])
	}
}

func TestPrepareContextStopsAtFirstOverflow(t *testing.T) {
	ca := NewContextAssembler(100)

	// The second passage overflows; the third would fit but assembly stops
	// rather than reordering around the budget.
	results := []models.RankedResult{
		rankedResult(strings.Repeat("a", 60), 0.9),
		rankedResult(strings.Repeat("b", 60), 0.8),
		rankedResult(strings.Repeat("c", 10), 0.7),
	}

	passages := ca.PrepareContext(testQuery(), results)
	if len(passages) != 1 {
		t.Fatalf("expected assembly to stop at the overflow, got %d passages", len(passages))
	}
}

func TestPrepareContextEmptyInput(t *testing.T) {
	ca := NewContextAssembler(0)

	passages := ca.PrepareContext(testQuery(), nil)
	if len(passages) != 0 {
		t.Errorf("expected no passages, got %d", len(passages))
	}
}

func TestPrepareContextCitesSource(t *testing.T) {
	ca := NewContextAssembler(0)

	e := &models.Embedding{Text: "A célula é a unidade básica da vida."}
	e.SetMetadata("source", "biologia.pdf")

	passages := ca.PrepareContext(testQuery(), []models.RankedResult{{Embedding: e, FinalScore: 0.9}})
	if len(passages) != 1 {
		t.Fatalf("expected 1 passage, got %d", len(passages))
	}
	if !strings.Contains(passages[0], "Fonte: biologia.pdf") {
		t.Errorf("passage missing source citation: %q", passages[0])
	}
	if !strings.Contains(passages[0], e.Text) {
		t.Errorf("passage missing chunk text: %q", passages[0])
	}
}

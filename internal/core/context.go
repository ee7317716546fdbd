// ABOUTME: ContextAssembler packs ranked chunks into a bounded context window
// ABOUTME: Greedily appends cited passages until the character budget is hit
package core

import (
	"fmt"

	"flipflops/internal/models"
)

// DefaultMaxContextLength is the character budget for assembled context.
const DefaultMaxContextLength = 5000

// ContextAssembler builds the context passage list handed to the LLM.
type ContextAssembler struct {
	maxLength int
}

// NewContextAssembler creates an assembler with the given character budget.
// A non-positive budget falls back to the default.
func NewContextAssembler(maxLength int) *ContextAssembler {
	if maxLength <= 0 {
		maxLength = DefaultMaxContextLength
	}
	return &ContextAssembler{maxLength: maxLength}
}

// PrepareContext formats ranked results into passages, highest-ranked first.
// A passage that would push the running total over the budget stops assembly;
// remaining lower-ranked results are dropped. Never fails.
func (ca *ContextAssembler) PrepareContext(query *models.Query, results []models.RankedResult) []string {
	passages := make([]string, 0, len(results))
	total := 0

	for _, result := range results {
		passage := formatPassage(result.Embedding)
		if total+len(passage) > ca.maxLength {
			break
		}
		passages = append(passages, passage)
		total += len(passage)
	}

	return passages
}

// formatPassage appends a source citation when the chunk metadata names one.
func formatPassage(embedding *models.Embedding) string {
	source := embedding.GetMetadataString("source", "")
	if source == "" {
		return embedding.Text
	}
	return fmt.Sprintf("%s\n(Fonte: %s)", embedding.Text, source)
}

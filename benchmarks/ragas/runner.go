// ABOUTME: Benchmark runner for retrieval quality - executes scenarios and collects results
// ABOUTME: Drives the real split/index/rank/assemble pipeline with deterministic embeddings
package ragas

import (
	"encoding/json"
	"fmt"
	"hash/fnv"
	"math"
	"os"
	"strings"
	"time"

	"flipflops/internal/core"
	"flipflops/internal/ingest"
	"flipflops/internal/models"
	"flipflops/internal/storage"
)

// embedDim is the dimensionality of the deterministic benchmark embeddings.
const embedDim = 128

// minRankScore admits weak bag-of-words matches; the real pipeline uses a
// stricter threshold over dense embeddings.
const minRankScore = 0.05

// BenchmarkRunner executes the retrieval quality scenarios
type BenchmarkRunner struct {
	metrics *MetricsCalculator
	verbose bool
}

// NewBenchmarkRunner creates a new benchmark runner
func NewBenchmarkRunner(verbose bool) *BenchmarkRunner {
	return &BenchmarkRunner{
		metrics: NewMetricsCalculator(),
		verbose: verbose,
	}
}

// RunTest executes a single benchmark scenario against a fresh index
func (r *BenchmarkRunner) RunTest(scenario TestScenario) (TestResult, error) {
	if r.verbose {
		fmt.Printf("\n========================================\n")
		fmt.Printf("RUNNING: %s\n", scenario.Name)
		fmt.Printf("========================================\n")
		fmt.Printf("Description: %s\n\n", scenario.Description)
	}

	index := storage.NewVectorIndex(embedDim)
	splitter := ingest.NewSplitter(300, 50)

	// Seed the index the way the ingestor would
	for _, doc := range scenario.Documents {
		chunks := splitter.Split(&models.Document{
			ID:      doc.Name,
			Name:    doc.Name,
			Content: doc.Text,
		})
		for _, chunk := range chunks {
			emb := &models.Embedding{
				ID:         chunk.ChunkID,
				Vector:     embedText(chunk.Content),
				Text:       chunk.Content,
				DocumentID: chunk.DocumentID,
				ChunkID:    chunk.ChunkID,
				Metadata: map[string]any{
					"source":     doc.Name,
					"file_type":  doc.FileType,
					"created_at": time.Now().Format(time.RFC3339),
				},
			}
			if err := index.Add(emb); err != nil {
				return TestResult{}, fmt.Errorf("indexing %s: %w", doc.Name, err)
			}
		}
	}

	query, err := core.NewQueryProcessor().ProcessQuery(scenario.Question)
	if err != nil {
		return TestResult{}, fmt.Errorf("processing question: %w", err)
	}

	candidates, err := index.Search(embedText(scenario.Question), 5)
	if err != nil {
		return TestResult{}, fmt.Errorf("searching index: %w", err)
	}

	ranked := core.NewRanker(minRankScore).RankResults(query, candidates)
	retrievedContext := core.NewContextAssembler(0).PrepareContext(query, ranked)

	if r.verbose {
		fmt.Printf("  [DEBUG] Context items (%d)\n", len(retrievedContext))
	}

	// Deterministic stand-in for generation: the response restates the
	// retrieved material, so faithfulness measures retrieval end to end
	finalResponse := composeResponse(scenario.Question, retrievedContext)

	result := r.metrics.EvaluateTest(scenario, finalResponse, retrievedContext)

	if r.verbose {
		fmt.Printf("\n========================================\n")
		fmt.Printf("RESULTS: %s\n", scenario.Name)
		fmt.Printf("========================================\n")
		fmt.Printf("Faithfulness: %.2f\n", result.FaithfulnessScore)
		fmt.Printf("Context Recall: %.2f\n", result.ContextRecallScore)
		fmt.Printf("Overall Score: %.2f\n", result.OverallScore)
		fmt.Printf("Status: %s\n", result.Status)
		fmt.Printf("========================================\n\n")
	}

	return result, nil
}

// RunAllTests executes all benchmark scenarios
func (r *BenchmarkRunner) RunAllTests() ([]TestResult, error) {
	scenarios := GetAllTests()
	results := make([]TestResult, 0, len(scenarios))

	for _, scenario := range scenarios {
		result, err := r.RunTest(scenario)
		if err != nil {
			return nil, fmt.Errorf("test %s failed: %w", scenario.ID, err)
		}
		results = append(results, result)
	}

	return results, nil
}

// ExportResults exports test results to JSON
func (r *BenchmarkRunner) ExportResults(results []TestResult, outputPath string) error {
	summary := map[string]interface{}{
		"timestamp":   time.Now().Format(time.RFC3339),
		"total_tests": len(results),
		"passed":      0,
		"failed":      0,
		"results":     results,
	}

	for _, result := range results {
		if result.Status == "PASS" {
			summary["passed"] = summary["passed"].(int) + 1
		} else {
			summary["failed"] = summary["failed"].(int) + 1
		}
	}

	jsonData, err := json.MarshalIndent(summary, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal results: %w", err)
	}

	if err := os.WriteFile(outputPath, jsonData, 0644); err != nil {
		return fmt.Errorf("failed to write results file: %w", err)
	}

	fmt.Printf("✓ Results exported to: %s\n", outputPath)
	return nil
}

// embedText maps text to a normalized bag-of-words vector. Identical texts
// always produce identical vectors, keeping benchmark runs reproducible
// without an embeddings API.
func embedText(text string) []float64 {
	vector := make([]float64, embedDim)

	for _, word := range strings.Fields(strings.ToLower(text)) {
		word = strings.Trim(word, ".,;:!?()\"'")
		if len(word) < 3 {
			continue
		}
		h := fnv.New32a()
		_, _ = h.Write([]byte(word))
		vector[h.Sum32()%embedDim]++
	}

	var norm float64
	for _, v := range vector {
		norm += v * v
	}
	if norm > 0 {
		norm = math.Sqrt(norm)
		for i := range vector {
			vector[i] /= norm
		}
	}

	return vector
}

// composeResponse builds the deterministic benchmark response from the
// assembled context.
func composeResponse(question string, context []string) string {
	if len(context) == 0 {
		return "Não encontrei material relevante para: " + question
	}
	return "Com base no material: " + strings.Join(context, " ")
}

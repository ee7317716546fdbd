// ABOUTME: In-memory vector index with cosine similarity search
// ABOUTME: Guards entries with an RWMutex and persists to a JSON file
package storage

import (
	"encoding/json"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"sort"
	"sync"

	"flipflops/internal/models"
)

// VectorIndex stores embeddings and answers nearest-neighbor queries by
// cosine similarity. Adds are atomic: readers never observe a partial entry.
type VectorIndex struct {
	mu         sync.RWMutex
	dimension  int
	embeddings []*models.Embedding
}

// NewVectorIndex creates an index for vectors of the given dimension.
// Dimension 0 adopts the dimension of the first added embedding.
func NewVectorIndex(dimension int) *VectorIndex {
	return &VectorIndex{dimension: dimension}
}

// Add stores an embedding. The vector dimension must match the index
// dimension; mismatches are rejected so one index never mixes models.
func (idx *VectorIndex) Add(embedding *models.Embedding) error {
	if embedding == nil || len(embedding.Vector) == 0 {
		return fmt.Errorf("embedding must carry a non-empty vector")
	}

	idx.mu.Lock()
	defer idx.mu.Unlock()

	if idx.dimension == 0 {
		idx.dimension = len(embedding.Vector)
	}
	if len(embedding.Vector) != idx.dimension {
		return fmt.Errorf("invalid embedding dimension: expected %d, got %d", idx.dimension, len(embedding.Vector))
	}

	idx.embeddings = append(idx.embeddings, embedding)
	return nil
}

// Search returns up to k stored embeddings nearest to the query vector,
// most similar first. Each result is a copy carrying its cosine similarity
// under the "score" metadata key.
func (idx *VectorIndex) Search(queryVector []float64, k int) ([]*models.Embedding, error) {
	idx.mu.RLock()
	defer idx.mu.RUnlock()

	if len(idx.embeddings) == 0 {
		return nil, nil
	}
	if len(queryVector) != idx.dimension {
		return nil, fmt.Errorf("invalid query dimension: expected %d, got %d", idx.dimension, len(queryVector))
	}

	type scored struct {
		embedding  *models.Embedding
		similarity float64
	}

	all := make([]scored, 0, len(idx.embeddings))
	for _, emb := range idx.embeddings {
		all = append(all, scored{embedding: emb, similarity: cosineSimilarity(queryVector, emb.Vector)})
	}

	sort.SliceStable(all, func(i, j int) bool {
		return all[i].similarity > all[j].similarity
	})

	if k > 0 && len(all) > k {
		all = all[:k]
	}

	results := make([]*models.Embedding, 0, len(all))
	for _, s := range all {
		entry := *s.embedding
		entry.Metadata = make(map[string]any, len(s.embedding.Metadata)+1)
		for key, value := range s.embedding.Metadata {
			entry.Metadata[key] = value
		}
		entry.Metadata["score"] = s.similarity
		results = append(results, &entry)
	}

	return results, nil
}

// Count returns the number of stored embeddings.
func (idx *VectorIndex) Count() int {
	idx.mu.RLock()
	defer idx.mu.RUnlock()
	return len(idx.embeddings)
}

// Dimension returns the index vector dimension (0 while empty and unset).
func (idx *VectorIndex) Dimension() int {
	idx.mu.RLock()
	defer idx.mu.RUnlock()
	return idx.dimension
}

// SampleTexts returns the texts of up to n stored embeddings, in insertion
// order. Used for topic extraction over ingested material.
func (idx *VectorIndex) SampleTexts(n int) []string {
	idx.mu.RLock()
	defer idx.mu.RUnlock()

	if n <= 0 || n > len(idx.embeddings) {
		n = len(idx.embeddings)
	}

	texts := make([]string, 0, n)
	for _, emb := range idx.embeddings[:n] {
		texts = append(texts, emb.Text)
	}
	return texts
}

// Clear removes all entries, keeping the dimension.
func (idx *VectorIndex) Clear() {
	idx.mu.Lock()
	defer idx.mu.Unlock()
	idx.embeddings = nil
}

// indexFile is the on-disk JSON layout.
type indexFile struct {
	Dimension  int                 `json:"dimension"`
	Embeddings []*models.Embedding `json:"embeddings"`
}

// Save writes the index to path. The file is written to a temp sibling and
// renamed so a crash never leaves a torn index on disk.
func (idx *VectorIndex) Save(path string) error {
	idx.mu.RLock()
	file := indexFile{Dimension: idx.dimension, Embeddings: idx.embeddings}
	data, err := json.MarshalIndent(file, "", "  ")
	idx.mu.RUnlock()
	if err != nil {
		return fmt.Errorf("failed to marshal index: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create index directory: %w", err)
	}

	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, 0644); err != nil {
		return fmt.Errorf("failed to write index: %w", err)
	}
	if err := os.Rename(tmp, path); err != nil {
		return fmt.Errorf("failed to replace index: %w", err)
	}
	return nil
}

// Load reads the index from path. A missing file leaves the index empty
// without error; a fresh install has nothing to load.
func (idx *VectorIndex) Load(path string) error {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to read index: %w", err)
	}

	var file indexFile
	if err := json.Unmarshal(data, &file); err != nil {
		return fmt.Errorf("failed to parse index: %w", err)
	}

	idx.mu.Lock()
	defer idx.mu.Unlock()
	idx.dimension = file.Dimension
	idx.embeddings = file.Embeddings
	return nil
}

// cosineSimilarity calculates cosine similarity between two vectors
func cosineSimilarity(a, b []float64) float64 {
	if len(a) != len(b) {
		return 0.0
	}

	var dotProduct, normA, normB float64
	for i := range a {
		dotProduct += a[i] * b[i]
		normA += a[i] * a[i]
		normB += b[i] * b[i]
	}

	if normA == 0 || normB == 0 {
		return 0.0
	}

	return dotProduct / (math.Sqrt(normA) * math.Sqrt(normB))
}

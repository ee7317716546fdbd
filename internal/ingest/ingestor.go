// ABOUTME: Ingestor runs the load, split, embed and index pipeline for documents
// ABOUTME: Per-chunk embedding failures are logged and skipped, not fatal
package ingest

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"flipflops/internal/models"
)

// Embedder converts chunk text into a vector.
type Embedder interface {
	Embed(ctx context.Context, text string) ([]float64, error)
}

// Indexer is the write side of the vector index.
type Indexer interface {
	Add(embedding *models.Embedding) error
}

// Ingestor loads study material into the vector index.
type Ingestor struct {
	embedder Embedder
	index    Indexer
	splitter *Splitter
	logger   *slog.Logger
}

// NewIngestor wires the ingestion pipeline.
func NewIngestor(embedder Embedder, index Indexer, splitter *Splitter, logger *slog.Logger) *Ingestor {
	if splitter == nil {
		splitter = NewSplitter(DefaultChunkSize, DefaultChunkOverlap)
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Ingestor{
		embedder: embedder,
		index:    index,
		splitter: splitter,
		logger:   logger,
	}
}

// IngestFile loads, splits, embeds and indexes one file. Returns the loaded
// document and how many chunks made it into the index. A chunk whose
// embedding or index-add fails is skipped; the rest of the document still
// lands.
func (ing *Ingestor) IngestFile(ctx context.Context, path string) (*models.Document, int, error) {
	doc, err := LoadDocument(path)
	if err != nil {
		return nil, 0, err
	}

	chunks := ing.splitter.Split(doc)
	if len(chunks) == 0 {
		ing.logger.Warn("document has no content to index", "name", doc.Name)
		return doc, 0, nil
	}

	indexed := 0
	for _, chunk := range chunks {
		if err := ctx.Err(); err != nil {
			return doc, indexed, err
		}

		vector, err := ing.embedder.Embed(ctx, chunk.Content)
		if err != nil {
			ing.logger.Warn("failed to embed chunk", "name", doc.Name, "chunk", chunk.Index, "error", err)
			continue
		}

		embedding := &models.Embedding{
			ID:         chunk.ChunkID,
			Vector:     vector,
			Text:       chunk.Content,
			DocumentID: doc.ID,
			ChunkID:    chunk.ChunkID,
			Metadata: map[string]any{
				"source":      doc.Name,
				"file_type":   doc.FileType,
				"created_at":  doc.CreatedAt.Format(time.RFC3339),
				"chunk_index": chunk.Index,
			},
		}

		if err := ing.index.Add(embedding); err != nil {
			ing.logger.Warn("failed to index chunk", "name", doc.Name, "chunk", chunk.Index, "error", err)
			continue
		}
		indexed++
	}

	ing.logger.Info("document ingested", "name", doc.Name, "chunks", len(chunks), "indexed", indexed)
	return doc, indexed, nil
}

// IngestDirectory ingests every supported file directly under dir. Files
// that fail to load are reported in the error count, not fatal.
func (ing *Ingestor) IngestDirectory(ctx context.Context, dir string) (int, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return 0, fmt.Errorf("failed to read directory %s: %w", dir, err)
	}

	ingested := 0
	for _, entry := range entries {
		if entry.IsDir() || !IsSupported(entry.Name()) {
			continue
		}
		path := filepath.Join(dir, entry.Name())
		if _, _, err := ing.IngestFile(ctx, path); err != nil {
			if ctx.Err() != nil {
				return ingested, err
			}
			ing.logger.Warn("failed to ingest file", "path", path, "error", err)
			continue
		}
		ingested++
	}
	return ingested, nil
}

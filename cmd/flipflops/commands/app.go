// ABOUTME: Shared wiring for CLI commands
// ABOUTME: Builds config, storage, API clients and the tutor pipeline
package commands

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"flipflops/internal/config"
	"flipflops/internal/core"
	"flipflops/internal/embedding"
	"flipflops/internal/ingest"
	"flipflops/internal/llm"
	"flipflops/internal/storage"
	"flipflops/internal/storage/sqlite"
)

// app bundles everything a command may need. Fields for features a given
// command did not request stay nil.
type app struct {
	cfg      *config.Config
	logger   *slog.Logger
	index    *storage.VectorIndex
	topics   *core.TopicService
	tutor    *core.Tutor
	ingestor *ingest.Ingestor
	db       *sqlite.DB
	attempts *sqlite.AttemptStore
}

func newLogger() *slog.Logger {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	} else if quiet {
		level = slog.LevelError
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}

func (a *app) indexPath() string {
	return filepath.Join(a.cfg.DataDir, "index.json")
}

func (a *app) topicsPath() string {
	return filepath.Join(a.cfg.DataDir, "topics.json")
}

func (a *app) dbPath() string {
	return filepath.Join(a.cfg.DataDir, "flipflops.db")
}

func (a *app) conversationsDir() string {
	return filepath.Join(a.cfg.DataDir, "conversations")
}

// newApp loads config and the vector index from disk. Every command starts
// here; the with* methods add the heavier pieces on top.
func newApp() (*app, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("loading configuration: %w", err)
	}

	a := &app{cfg: cfg, logger: newLogger()}
	a.index = storage.NewVectorIndex(cfg.VectorDimension)
	if err := a.index.Load(a.indexPath()); err != nil {
		return nil, fmt.Errorf("loading vector index: %w", err)
	}
	return a, nil
}

// withTutor wires the embedding and generation clients into a Tutor and
// TopicService. Both API keys are required.
func (a *app) withTutor() error {
	if a.cfg.OpenAIKey == "" {
		return fmt.Errorf("OPENAI_API_KEY is not set (needed for embeddings)")
	}
	if a.cfg.AnthropicKey == "" {
		return fmt.Errorf("ANTHROPIC_API_KEY is not set (needed for generation)")
	}

	embedder, err := embedding.NewClientWithConfig(&embedding.ClientConfig{
		APIKey:     a.cfg.OpenAIKey,
		MaxRetries: a.cfg.MaxRetries,
		RetryDelay: a.cfg.RetryDelay,
		Logger:     a.logger,
	})
	if err != nil {
		return fmt.Errorf("initializing embedding client: %w", err)
	}

	generator, err := llm.NewClient(&llm.ClientConfig{
		APIKey:      a.cfg.AnthropicKey,
		Model:       a.cfg.Model,
		MaxTokens:   a.cfg.MaxTokens,
		Temperature: a.cfg.Temperature,
		Timeout:     a.cfg.Timeout,
		Logger:      a.logger,
	})
	if err != nil {
		return fmt.Errorf("initializing Claude client: %w", err)
	}

	a.tutor = core.NewTutor(embedder, a.index, generator, core.TutorConfig{
		TopK:             a.cfg.TopK,
		MinScore:         a.cfg.MinScoreThreshold,
		MaxContextLength: a.cfg.MaxContextLength,
		Logger:           a.logger,
	})
	a.topics = core.NewTopicService(storage.NewTopicStore(a.topicsPath()), a.tutor, a.index, a.logger)

	a.ingestor = ingest.NewIngestor(embedder, a.index, nil, a.logger)
	return nil
}

// withAttempts opens the SQLite exam history.
func (a *app) withAttempts() error {
	db, err := sqlite.Open(a.dbPath())
	if err != nil {
		return fmt.Errorf("opening exam history: %w", err)
	}
	a.db = db
	a.attempts = sqlite.NewAttemptStore(db)
	return nil
}

// saveIndex persists the vector index back to disk.
func (a *app) saveIndex() error {
	if err := a.index.Save(a.indexPath()); err != nil {
		return fmt.Errorf("saving vector index: %w", err)
	}
	return nil
}

// close releases held resources.
func (a *app) close() {
	if a.db != nil {
		if err := a.db.Close(); err != nil {
			a.logger.Warn("closing exam history", "error", err)
		}
	}
}

// ABOUTME: TopicService lists study topics with a store-first, LLM-fallback strategy
// ABOUTME: Extracted topics are deduplicated, cached and reused across calls
package core

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"flipflops/internal/models"
)

// TopicStore persists the extracted topic list between sessions.
type TopicStore interface {
	List() ([]*models.Topic, error)
	SaveAll(topics []*models.Topic) error
}

// ContentSampler provides document texts for topic extraction.
type ContentSampler interface {
	SampleTexts(n int) []string
}

// topicSampleSize bounds how many chunks feed one extraction prompt.
const topicSampleSize = 10

// TopicService answers "what can I study?" over the ingested material.
type TopicService struct {
	store     TopicStore
	tutor     *Tutor
	sampler   ContentSampler
	processor *QueryProcessor
	logger    *slog.Logger
}

// NewTopicService creates a TopicService around the store and tutor.
func NewTopicService(store TopicStore, tutor *Tutor, sampler ContentSampler, logger *slog.Logger) *TopicService {
	if logger == nil {
		logger = slog.Default()
	}
	return &TopicService{
		store:     store,
		tutor:     tutor,
		sampler:   sampler,
		processor: NewQueryProcessor(),
		logger:    logger,
	}
}

// Topics returns the known study topics. The persisted list wins; when it is
// empty, topics are mined from sampled document content and cached. No
// ingested material means no topics, not an error.
func (ts *TopicService) Topics(ctx context.Context) ([]*models.Topic, error) {
	cached, err := ts.store.List()
	if err != nil {
		return nil, fmt.Errorf("loading topics: %w", err)
	}
	if len(cached) > 0 {
		return cached, nil
	}

	samples := ts.sampler.SampleTexts(topicSampleSize)
	if len(samples) == 0 {
		return nil, nil
	}

	names, err := ts.tutor.ExtractTopics(ctx, strings.Join(samples, "\n\n"))
	if err != nil {
		return nil, err
	}

	topics := ts.buildTopics(names)
	if len(topics) == 0 {
		return nil, nil
	}

	if err := ts.store.SaveAll(topics); err != nil {
		// A failed cache write still leaves a usable answer.
		ts.logger.Warn("failed to cache extracted topics", "error", err)
	}
	return topics, nil
}

// buildTopics dedupes extracted names on their normalized form.
func (ts *TopicService) buildTopics(names []string) []*models.Topic {
	seen := make(map[string]bool, len(names))
	topics := make([]*models.Topic, 0, len(names))

	for _, name := range names {
		name = strings.TrimSpace(name)
		normalized := ts.processor.Normalize(name)
		if normalized == "" || seen[normalized] {
			continue
		}
		seen[normalized] = true
		topics = append(topics, &models.Topic{
			ID:        uuid.New().String(),
			Name:      name,
			CreatedAt: time.Now(),
		})
	}
	return topics
}

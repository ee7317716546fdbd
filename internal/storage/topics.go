// ABOUTME: Topic persistence as a flat JSON array on disk
// ABOUTME: Serves as the cache in front of LLM topic extraction
package storage

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"flipflops/internal/models"
)

// TopicStore persists the extracted study topics in one JSON file.
type TopicStore struct {
	path string
}

// NewTopicStore creates a store backed by the given file path.
func NewTopicStore(path string) *TopicStore {
	return &TopicStore{path: path}
}

// List returns all stored topics. A missing file means no topics yet and
// returns nil without error.
func (ts *TopicStore) List() ([]*models.Topic, error) {
	data, err := os.ReadFile(ts.path)
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read topics: %w", err)
	}

	var topics []*models.Topic
	if err := json.Unmarshal(data, &topics); err != nil {
		return nil, fmt.Errorf("failed to parse topics: %w", err)
	}
	return topics, nil
}

// SaveAll replaces the stored topic list.
func (ts *TopicStore) SaveAll(topics []*models.Topic) error {
	data, err := json.MarshalIndent(topics, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal topics: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(ts.path), 0755); err != nil {
		return fmt.Errorf("failed to create topics directory: %w", err)
	}
	return os.WriteFile(ts.path, data, 0644)
}

// Clear removes the stored topics. Clearing an empty store is a no-op.
func (ts *TopicStore) Clear() error {
	err := os.Remove(ts.path)
	if os.IsNotExist(err) {
		return nil
	}
	return err
}

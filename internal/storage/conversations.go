// ABOUTME: Conversation persistence as one JSON file per conversation
// ABOUTME: Absent conversations are a normal condition, returned as nil
package storage

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"flipflops/internal/models"
)

// ConversationStore persists conversations under a directory, keyed by id.
type ConversationStore struct {
	dir string
}

// NewConversationStore creates the backing directory when needed.
func NewConversationStore(dir string) (*ConversationStore, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create conversations directory: %w", err)
	}
	return &ConversationStore{dir: dir}, nil
}

// Save writes the conversation to <dir>/<id>.json.
func (cs *ConversationStore) Save(conversation *models.Conversation) error {
	if conversation == nil || conversation.ID == "" {
		return fmt.Errorf("conversation must have an id")
	}

	data, err := json.MarshalIndent(conversation, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal conversation: %w", err)
	}

	return os.WriteFile(cs.path(conversation.ID), data, 0644)
}

// Get loads a conversation by id. Returns nil without error when absent.
func (cs *ConversationStore) Get(id string) (*models.Conversation, error) {
	data, err := os.ReadFile(cs.path(id))
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read conversation %s: %w", id, err)
	}

	var conversation models.Conversation
	if err := json.Unmarshal(data, &conversation); err != nil {
		return nil, fmt.Errorf("failed to parse conversation %s: %w", id, err)
	}
	return &conversation, nil
}

// List returns the ids of all stored conversations.
func (cs *ConversationStore) List() ([]string, error) {
	entries, err := os.ReadDir(cs.dir)
	if err != nil {
		return nil, fmt.Errorf("failed to list conversations: %w", err)
	}

	var ids []string
	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() || !strings.HasSuffix(name, ".json") {
			continue
		}
		ids = append(ids, strings.TrimSuffix(name, ".json"))
	}
	return ids, nil
}

// Delete removes a conversation. Deleting an absent conversation is a no-op.
func (cs *ConversationStore) Delete(id string) error {
	err := os.Remove(cs.path(id))
	if os.IsNotExist(err) {
		return nil
	}
	return err
}

func (cs *ConversationStore) path(id string) string {
	return filepath.Join(cs.dir, id+".json")
}

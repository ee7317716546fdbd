// ABOUTME: Conversation entity holding the message history of a study session
// ABOUTME: Messages carry role, content and timestamp for context replay
package models

import (
	"time"

	"github.com/google/uuid"
)

// Message roles used in conversation history.
const (
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// Message is a single turn in a conversation.
type Message struct {
	Role      string    `json:"role"`
	Content   string    `json:"content"`
	Timestamp time.Time `json:"timestamp"`
}

// Conversation is an ordered message history keyed by id.
type Conversation struct {
	ID        string    `json:"id"`
	Messages  []Message `json:"messages"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// NewConversation creates an empty conversation with a fresh id.
func NewConversation() *Conversation {
	now := time.Now()
	return &Conversation{
		ID:        uuid.New().String(),
		Messages:  []Message{},
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// AddMessage appends a message with the current timestamp.
func (c *Conversation) AddMessage(role, content string) {
	now := time.Now()
	c.Messages = append(c.Messages, Message{
		Role:      role,
		Content:   content,
		Timestamp: now,
	})
	c.UpdatedAt = now
}

// Clear removes all messages but keeps the conversation id.
func (c *Conversation) Clear() {
	c.Messages = []Message{}
	c.UpdatedAt = time.Now()
}

// ABOUTME: Query represents a processed user question or study request
// ABOUTME: Carries classification metadata computed by the query processor
package models

import "time"

// QueryMetadata holds facts about a query computed at processing time.
type QueryMetadata struct {
	Timestamp    time.Time `json:"timestamp"`
	Length       int       `json:"length"`
	WordCount    int       `json:"word_count"`
	IsQuestion   bool      `json:"is_question"`
	QuestionType string    `json:"question_type,omitempty"`
}

// Query represents a structured search query built from raw user text.
type Query struct {
	ID       string        `json:"id"`
	Text     string        `json:"text"`
	Metadata QueryMetadata `json:"metadata"`
}

// WordCount returns the number of whitespace-separated words in the query text.
func (q *Query) WordCount() int {
	return q.Metadata.WordCount
}

// UpdateText replaces the query text. Metadata is not recomputed; callers
// that need fresh metadata should reprocess the raw text instead.
func (q *Query) UpdateText(text string) {
	q.Text = text
}

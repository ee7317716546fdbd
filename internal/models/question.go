// ABOUTME: Question entity for multiple-choice exam questions
// ABOUTME: Enforces the 5-option a-e schema at construction time
package models

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// OptionLetters are the valid answer letters, in option order.
var OptionLetters = []string{"a", "b", "c", "d", "e"}

// Question represents a multiple-choice question with exactly five options.
// Instances are immutable after construction.
type Question struct {
	ID            string   `json:"id"`
	Text          string   `json:"text"`
	Options       []string `json:"options"`
	CorrectAnswer string   `json:"correct_answer"`
	Explanation   string   `json:"explanation"`
	Topic         string   `json:"topic"`
}

// NewQuestion validates and constructs a Question. The correct answer letter
// is normalized to lowercase; construction fails when the letter is outside
// a-e or the option count is not exactly five.
func NewQuestion(text string, options []string, correctAnswer, explanation, topic string) (*Question, error) {
	if strings.TrimSpace(text) == "" {
		return nil, fmt.Errorf("question text cannot be empty")
	}

	if len(options) != 5 {
		return nil, fmt.Errorf("must provide exactly 5 options (a-e), got %d", len(options))
	}

	answer := strings.ToLower(strings.TrimSpace(correctAnswer))
	valid := false
	for _, letter := range OptionLetters {
		if answer == letter {
			valid = true
			break
		}
	}
	if !valid {
		return nil, fmt.Errorf("correct answer must be one of %v, got: %q", OptionLetters, correctAnswer)
	}

	return &Question{
		ID:            uuid.New().String(),
		Text:          text,
		Options:       options,
		CorrectAnswer: answer,
		Explanation:   explanation,
		Topic:         topic,
	}, nil
}

// FormatForDisplay renders the question text followed by its lettered options.
func (q *Question) FormatForDisplay() string {
	var sb strings.Builder
	sb.WriteString(q.Text)
	sb.WriteString("\n")
	for i, option := range q.Options {
		sb.WriteString(fmt.Sprintf("\n(%s) %s", OptionLetters[i], option))
	}
	return sb.String()
}

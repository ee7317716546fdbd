// ABOUTME: Tests for Question entity validation
// ABOUTME: Verifies the 5-option schema and answer letter normalization

package models

import (
	"strings"
	"testing"
)

func validOptions() []string {
	return []string{"Opção A", "Opção B", "Opção C", "Opção D", "Opção E"}
}

func TestNewQuestion(t *testing.T) {
	q, err := NewQuestion("O que é fotossíntese?", validOptions(), "a", "Processo de conversão de luz.", "Biologia")
	if err != nil {
		t.Fatalf("NewQuestion() error = %v", err)
	}

	if q.ID == "" {
		t.Error("ID should be generated")
	}
	if q.CorrectAnswer != "a" {
		t.Errorf("CorrectAnswer = %q, want %q", q.CorrectAnswer, "a")
	}
	if q.Topic != "Biologia" {
		t.Errorf("Topic = %q, want %q", q.Topic, "Biologia")
	}
}

func TestNewQuestion_NormalizesAnswerCase(t *testing.T) {
	q, err := NewQuestion("Q", validOptions(), "A", "exp", "topic")
	if err != nil {
		t.Fatalf("NewQuestion() with uppercase answer error = %v", err)
	}
	if q.CorrectAnswer != "a" {
		t.Errorf("CorrectAnswer = %q, want normalized %q", q.CorrectAnswer, "a")
	}
}

func TestNewQuestion_InvalidAnswer(t *testing.T) {
	tests := []struct {
		name   string
		answer string
	}{
		{"letter out of range", "f"},
		{"uppercase out of range", "F"},
		{"empty", ""},
		{"word", "alternativa a"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := NewQuestion("Q", validOptions(), tt.answer, "exp", "topic"); err == nil {
				t.Errorf("NewQuestion() with answer %q should fail", tt.answer)
			}
		})
	}
}

func TestNewQuestion_OptionCount(t *testing.T) {
	tests := []struct {
		name    string
		options []string
		wantErr bool
	}{
		{"five options", validOptions(), false},
		{"four options", validOptions()[:4], true},
		{"six options", append(validOptions(), "Opção F"), true},
		{"no options", nil, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewQuestion("Q", tt.options, "a", "exp", "topic")
			if (err != nil) != tt.wantErr {
				t.Errorf("NewQuestion() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestNewQuestion_EmptyText(t *testing.T) {
	if _, err := NewQuestion("   ", validOptions(), "a", "exp", "topic"); err == nil {
		t.Error("NewQuestion() with blank text should fail")
	}
}

func TestQuestion_FormatForDisplay(t *testing.T) {
	q, err := NewQuestion("Qual é a capital do Brasil?", validOptions(), "c", "exp", "Geografia")
	if err != nil {
		t.Fatalf("NewQuestion() error = %v", err)
	}

	display := q.FormatForDisplay()

	if !strings.HasPrefix(display, "Qual é a capital do Brasil?") {
		t.Errorf("display should start with the question text, got %q", display)
	}
	for i, letter := range OptionLetters {
		want := "(" + letter + ") " + validOptions()[i]
		if !strings.Contains(display, want) {
			t.Errorf("display missing option %q", want)
		}
	}
}

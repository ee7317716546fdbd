// ABOUTME: Tests for the topic service caching and extraction fallback
// ABOUTME: Also covers text normalization used for deduplication
package core

import (
	"context"
	"testing"

	"flipflops/internal/models"
)

type fakeTopicStore struct {
	topics []*models.Topic
	saved  []*models.Topic
}

func (f *fakeTopicStore) List() ([]*models.Topic, error) {
	return f.topics, nil
}

func (f *fakeTopicStore) SaveAll(topics []*models.Topic) error {
	f.saved = topics
	return nil
}

type fakeSampler struct {
	texts []string
}

func (f *fakeSampler) SampleTexts(n int) []string {
	if n < len(f.texts) {
		return f.texts[:n]
	}
	return f.texts
}

func topicsTutor(response string) *Tutor {
	return NewTutor(&fakeEmbedder{}, &fakeIndex{}, &fakeGenerator{response: response}, TutorConfig{})
}

func TestTopicsUsesStoreFirst(t *testing.T) {
	store := &fakeTopicStore{topics: []*models.Topic{{ID: "1", Name: "Mitose"}}}
	service := NewTopicService(store, topicsTutor(""), &fakeSampler{}, nil)

	topics, err := service.Topics(context.Background())
	if err != nil {
		t.Fatalf("Topics failed: %v", err)
	}
	if len(topics) != 1 || topics[0].Name != "Mitose" {
		t.Errorf("unexpected topics: %v", topics)
	}
	if store.saved != nil {
		t.Error("cached topics must not trigger extraction or re-saving")
	}
}

func TestTopicsExtractsAndCaches(t *testing.T) {
	store := &fakeTopicStore{}
	sampler := &fakeSampler{texts: []string{"texto sobre fotossíntese", "texto sobre respiração"}}
	tutor := topicsTutor("```json\n{\"topics\": [\"Fotossíntese\", \"fotossíntese!\", \"Respiração celular\", \"  \"]}\n```")

	service := NewTopicService(store, tutor, sampler, nil)

	topics, err := service.Topics(context.Background())
	if err != nil {
		t.Fatalf("Topics failed: %v", err)
	}
	if len(topics) != 2 {
		t.Fatalf("expected 2 deduplicated topics, got %d", len(topics))
	}
	if topics[0].Name != "Fotossíntese" || topics[1].Name != "Respiração celular" {
		t.Errorf("unexpected topics: %v, %v", topics[0].Name, topics[1].Name)
	}
	if len(store.saved) != 2 {
		t.Errorf("extracted topics should be cached, saved %d", len(store.saved))
	}
	for _, topic := range topics {
		if topic.ID == "" {
			t.Error("topics should get ids")
		}
	}
}

func TestTopicsNoContent(t *testing.T) {
	service := NewTopicService(&fakeTopicStore{}, topicsTutor(""), &fakeSampler{}, nil)

	topics, err := service.Topics(context.Background())
	if err != nil {
		t.Fatalf("Topics failed: %v", err)
	}
	if topics != nil {
		t.Errorf("no ingested content should mean no topics, got %v", topics)
	}
}

func TestNormalize(t *testing.T) {
	qp := NewQueryProcessor()

	tests := []struct {
		in   string
		want string
	}{
		{"Fotossíntese!", "fotossíntese"},
		{"  Revolução   Francesa (1789) ", "revolução francesa 1789"},
		{"O que é DNA?", "o que é dna"},
		{"?!...", ""},
	}

	for _, tt := range tests {
		if got := qp.Normalize(tt.in); got != tt.want {
			t.Errorf("Normalize(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

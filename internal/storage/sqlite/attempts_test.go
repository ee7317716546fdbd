// ABOUTME: Tests for the exam attempt history store
// ABOUTME: Uses an in-memory database for save, query and aggregate checks
package sqlite

import (
	"math"
	"testing"
	"time"

	"flipflops/internal/models"
)

func newTestStore(t *testing.T) *AttemptStore {
	t.Helper()
	db, err := OpenInMemory()
	if err != nil {
		t.Fatalf("OpenInMemory failed: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })
	return NewAttemptStore(db)
}

func TestSaveFillsDefaults(t *testing.T) {
	store := newTestStore(t)

	attempt := &models.ExamAttempt{Topic: "biologia", Score: 0.8, CorrectCount: 4, TotalQuestions: 5}
	if err := store.Save(attempt); err != nil {
		t.Fatalf("Save failed: %v", err)
	}
	if attempt.ID == "" {
		t.Error("Save should assign an id")
	}
	if attempt.TakenAt.IsZero() {
		t.Error("Save should assign a timestamp")
	}

	loaded, err := store.GetByID(attempt.ID)
	if err != nil {
		t.Fatalf("GetByID failed: %v", err)
	}
	if loaded == nil || loaded.Topic != "biologia" || loaded.CorrectCount != 4 {
		t.Errorf("unexpected loaded attempt: %+v", loaded)
	}
}

func TestGetByIDAbsent(t *testing.T) {
	store := newTestStore(t)

	loaded, err := store.GetByID("nope")
	if err != nil {
		t.Fatalf("GetByID failed: %v", err)
	}
	if loaded != nil {
		t.Errorf("expected nil for absent attempt, got %+v", loaded)
	}
}

func TestRecentOrdersNewestFirst(t *testing.T) {
	store := newTestStore(t)

	base := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	for i := 0; i < 3; i++ {
		attempt := &models.ExamAttempt{
			Topic:          "história",
			Score:          float64(i) / 10,
			TotalQuestions: 5,
			TakenAt:        base.Add(time.Duration(i) * time.Hour),
		}
		if err := store.Save(attempt); err != nil {
			t.Fatalf("Save failed: %v", err)
		}
	}

	attempts, err := store.Recent(2)
	if err != nil {
		t.Fatalf("Recent failed: %v", err)
	}
	if len(attempts) != 2 {
		t.Fatalf("got %d attempts, want 2", len(attempts))
	}
	if !attempts[0].TakenAt.After(attempts[1].TakenAt) {
		t.Error("attempts should be newest first")
	}
}

func TestByTopicAndAverage(t *testing.T) {
	store := newTestStore(t)

	scores := []float64{0.4, 0.8}
	for _, score := range scores {
		attempt := &models.ExamAttempt{Topic: "química", Score: score, TotalQuestions: 5}
		if err := store.Save(attempt); err != nil {
			t.Fatalf("Save failed: %v", err)
		}
	}
	other := &models.ExamAttempt{Topic: "física", Score: 1.0, TotalQuestions: 5}
	if err := store.Save(other); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	attempts, err := store.ByTopic("química")
	if err != nil {
		t.Fatalf("ByTopic failed: %v", err)
	}
	if len(attempts) != 2 {
		t.Errorf("got %d attempts for topic, want 2", len(attempts))
	}

	avg, ok, err := store.AverageScore("química")
	if err != nil {
		t.Fatalf("AverageScore failed: %v", err)
	}
	if !ok || math.Abs(avg-0.6) > 1e-9 {
		t.Errorf("average = %v (ok=%v), want 0.6", avg, ok)
	}

	_, ok, err = store.AverageScore("geografia")
	if err != nil {
		t.Fatalf("AverageScore failed: %v", err)
	}
	if ok {
		t.Error("topic without attempts should report no average")
	}
}

func TestDeleteAll(t *testing.T) {
	store := newTestStore(t)

	if err := store.Save(&models.ExamAttempt{Topic: "biologia", Score: 1.0, TotalQuestions: 5}); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	deleted, err := store.DeleteAll()
	if err != nil {
		t.Fatalf("DeleteAll failed: %v", err)
	}
	if deleted != 1 {
		t.Errorf("deleted %d rows, want 1", deleted)
	}

	attempts, err := store.Recent(10)
	if err != nil {
		t.Fatalf("Recent failed: %v", err)
	}
	if len(attempts) != 0 {
		t.Errorf("expected empty history, got %d", len(attempts))
	}
}

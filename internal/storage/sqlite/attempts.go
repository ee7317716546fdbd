// ABOUTME: Exam attempt storage operations for SQLite
// ABOUTME: Records graded exam sittings and answers history queries
package sqlite

import (
	"database/sql"
	"time"

	"github.com/google/uuid"

	"flipflops/internal/models"
)

// AttemptStore handles exam attempt persistence
type AttemptStore struct {
	db *DB
}

// NewAttemptStore creates a new AttemptStore
func NewAttemptStore(db *DB) *AttemptStore {
	return &AttemptStore{db: db}
}

// Save records a graded exam attempt. A missing id or timestamp is filled in.
func (s *AttemptStore) Save(attempt *models.ExamAttempt) error {
	if attempt.ID == "" {
		attempt.ID = uuid.New().String()
	}
	if attempt.TakenAt.IsZero() {
		attempt.TakenAt = time.Now()
	}

	_, err := s.db.Exec(`
		INSERT INTO exam_attempts (id, topic, score, correct_count, total_questions, taken_at)
		VALUES (?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			topic = excluded.topic,
			score = excluded.score,
			correct_count = excluded.correct_count,
			total_questions = excluded.total_questions
	`, attempt.ID, attempt.Topic, attempt.Score, attempt.CorrectCount,
		attempt.TotalQuestions, attempt.TakenAt)

	return err
}

// GetByID retrieves an attempt by its ID. Absent attempts return nil.
func (s *AttemptStore) GetByID(id string) (*models.ExamAttempt, error) {
	var attempt models.ExamAttempt

	err := s.db.QueryRow(`
		SELECT id, topic, score, correct_count, total_questions, taken_at
		FROM exam_attempts
		WHERE id = ?
	`, id).Scan(&attempt.ID, &attempt.Topic, &attempt.Score,
		&attempt.CorrectCount, &attempt.TotalQuestions, &attempt.TakenAt)

	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &attempt, nil
}

// Recent retrieves the most recent attempts, newest first.
func (s *AttemptStore) Recent(limit int) ([]models.ExamAttempt, error) {
	rows, err := s.db.Query(`
		SELECT id, topic, score, correct_count, total_questions, taken_at
		FROM exam_attempts
		ORDER BY taken_at DESC
		LIMIT ?
	`, limit)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	return s.scanAttempts(rows)
}

// ByTopic retrieves all attempts for a topic, newest first.
func (s *AttemptStore) ByTopic(topic string) ([]models.ExamAttempt, error) {
	rows, err := s.db.Query(`
		SELECT id, topic, score, correct_count, total_questions, taken_at
		FROM exam_attempts
		WHERE topic = ?
		ORDER BY taken_at DESC
	`, topic)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	return s.scanAttempts(rows)
}

// AverageScore computes the mean score across all attempts for a topic.
// No attempts yields 0 and false.
func (s *AttemptStore) AverageScore(topic string) (float64, bool, error) {
	var avg sql.NullFloat64

	err := s.db.QueryRow(`
		SELECT AVG(score) FROM exam_attempts WHERE topic = ?
	`, topic).Scan(&avg)
	if err != nil {
		return 0, false, err
	}
	if !avg.Valid {
		return 0, false, nil
	}
	return avg.Float64, true, nil
}

// DeleteAll removes the whole attempt history.
func (s *AttemptStore) DeleteAll() (int64, error) {
	result, err := s.db.Exec("DELETE FROM exam_attempts")
	if err != nil {
		return 0, err
	}
	return result.RowsAffected()
}

// scanAttempts scans rows into a slice of ExamAttempt
func (s *AttemptStore) scanAttempts(rows *sql.Rows) ([]models.ExamAttempt, error) {
	var attempts []models.ExamAttempt

	for rows.Next() {
		var attempt models.ExamAttempt
		err := rows.Scan(&attempt.ID, &attempt.Topic, &attempt.Score,
			&attempt.CorrectCount, &attempt.TotalQuestions, &attempt.TakenAt)
		if err != nil {
			return nil, err
		}
		attempts = append(attempts, attempt)
	}

	return attempts, rows.Err()
}

// ABOUTME: ExamAttempt records one graded exam sitting for study history
// ABOUTME: Persisted in the SQLite history store
package models

import "time"

// ExamAttempt is a persisted record of a graded exam.
type ExamAttempt struct {
	ID             string    `json:"id"`
	Topic          string    `json:"topic"`
	Score          float64   `json:"score"`
	CorrectCount   int       `json:"correct_count"`
	TotalQuestions int       `json:"total_questions"`
	TakenAt        time.Time `json:"taken_at"`
}

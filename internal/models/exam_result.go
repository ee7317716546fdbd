// ABOUTME: ExamResult holds the outcome of grading a multiple-choice exam
// ABOUTME: Derived per grading call, never persisted
package models

// ExamResult summarizes how a student scored on a graded exam.
type ExamResult struct {
	Score          float64 `json:"score"`
	CorrectCount   int     `json:"correct_count"`
	TotalQuestions int     `json:"total_questions"`
}

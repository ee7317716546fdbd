// ABOUTME: ExamParser salvages multiple-choice questions from free-form LLM output
// ABOUTME: ExamGrader scores submitted answer letters against validated questions
package core

import (
	"encoding/json"
	"log/slog"
	"regexp"
	"strings"

	"flipflops/internal/models"
)

var (
	// fencedJSONPattern matches a JSON object inside a ```json code block.
	fencedJSONPattern = regexp.MustCompile("(?s)```(?:json)?\\s*(\\{.*?\\})\\s*```")

	// bareJSONPattern is the fallback: an unfenced object carrying a
	// "questions" array somewhere in the text.
	bareJSONPattern = regexp.MustCompile(`(?s)\{.*"questions"\s*:\s*\[.*\]\s*\}`)
)

// ExamParser extracts and validates exam questions embedded in LLM responses.
type ExamParser struct {
	logger *slog.Logger
}

// NewExamParser creates a new ExamParser instance
func NewExamParser(logger *slog.Logger) *ExamParser {
	if logger == nil {
		logger = slog.Default()
	}
	return &ExamParser{logger: logger}
}

// ParseQuestions extracts as many valid questions as possible from raw LLM
// output. Malformed individual questions are skipped; a malformed payload or
// no JSON at all yields an empty slice. Never fails — best effort salvage.
func (p *ExamParser) ParseQuestions(raw, topic string) []*models.Question {
	payload := extractJSON(raw)
	if payload == "" {
		p.logger.Warn("no JSON payload found in exam output", "topic", topic)
		return []*models.Question{}
	}

	var parsed struct {
		Questions []json.RawMessage `json:"questions"`
	}
	if err := json.Unmarshal([]byte(payload), &parsed); err != nil {
		p.logger.Warn("malformed exam JSON", "topic", topic, "error", err)
		return []*models.Question{}
	}

	questions := make([]*models.Question, 0, len(parsed.Questions))
	for i, rawQuestion := range parsed.Questions {
		question, ok := p.buildQuestion(rawQuestion, topic)
		if !ok {
			p.logger.Warn("skipping malformed question", "topic", topic, "index", i)
			continue
		}
		questions = append(questions, question)
	}

	return questions
}

// buildQuestion validates one element of the questions array. All four
// fields must be present and options must have exactly five entries before
// the constructor runs its own checks.
func (p *ExamParser) buildQuestion(raw json.RawMessage, topic string) (*models.Question, bool) {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(raw, &fields); err != nil {
		return nil, false
	}

	for _, required := range []string{"text", "options", "correct_answer", "explanation"} {
		if _, present := fields[required]; !present {
			return nil, false
		}
	}

	var entry struct {
		Text          string   `json:"text"`
		Options       []string `json:"options"`
		CorrectAnswer string   `json:"correct_answer"`
		Explanation   string   `json:"explanation"`
	}
	if err := json.Unmarshal(raw, &entry); err != nil {
		return nil, false
	}
	if len(entry.Options) != 5 {
		return nil, false
	}

	question, err := models.NewQuestion(entry.Text, entry.Options, entry.CorrectAnswer, entry.Explanation, topic)
	if err != nil {
		return nil, false
	}
	return question, true
}

// extractJSON finds the JSON substring in raw output: fenced code block
// first, bare questions object as fallback. Empty string when neither hits.
func extractJSON(raw string) string {
	if match := fencedJSONPattern.FindStringSubmatch(raw); match != nil {
		return match[1]
	}
	if match := bareJSONPattern.FindString(raw); match != "" {
		return match
	}
	return ""
}

// ExamGrader scores answer sheets against a question list.
type ExamGrader struct{}

// NewExamGrader creates a new ExamGrader instance
func NewExamGrader() *ExamGrader {
	return &ExamGrader{}
}

// GradeExam compares submitted answer letters to the correct ones. When the
// answer count differs from the question count, only the answered prefix is
// graded. Empty input grades to zero.
func (g *ExamGrader) GradeExam(answers []string, questions []*models.Question) *models.ExamResult {
	if len(questions) > len(answers) {
		questions = questions[:len(answers)]
	}
	if len(questions) == 0 {
		return &models.ExamResult{}
	}

	correct := 0
	for i, question := range questions {
		answer := strings.ToLower(strings.TrimSpace(answers[i]))
		if answer == question.CorrectAnswer {
			correct++
		}
	}

	return &models.ExamResult{
		Score:          float64(correct) / float64(len(questions)),
		CorrectCount:   correct,
		TotalQuestions: len(questions),
	}
}

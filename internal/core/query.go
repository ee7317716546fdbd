// ABOUTME: QueryProcessor normalizes raw user text into structured Query records
// ABOUTME: Classifies Portuguese question patterns for downstream routing
package core

import (
	"errors"
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"

	"flipflops/internal/models"
)

// ErrEmptyQuery is returned when the raw text is empty after trimming.
var ErrEmptyQuery = errors.New("query text cannot be empty")

// questionPattern pairs a classification label with the regex that detects it.
type questionPattern struct {
	label   string
	pattern *regexp.Regexp
}

// questionPatterns are checked in order against the lowercased query text;
// the first match wins. More specific prefixes come before shorter ones.
var questionPatterns = []questionPattern{
	{"o_que_e", regexp.MustCompile(`^o que é`)},
	{"o_que_sao", regexp.MustCompile(`^o que são`)},
	{"quem_e", regexp.MustCompile(`^quem é`)},
	{"quem_sao", regexp.MustCompile(`^quem são`)},
	{"como", regexp.MustCompile(`^como`)},
	{"quando", regexp.MustCompile(`^quando`)},
	{"onde", regexp.MustCompile(`^onde`)},
	{"por_que", regexp.MustCompile(`^por que`)},
	{"qual", regexp.MustCompile(`^qual`)},
	{"quais", regexp.MustCompile(`^quais`)},
	{"explique", regexp.MustCompile(`^explique`)},
	{"defina", regexp.MustCompile(`^defina`)},
	{"descreva", regexp.MustCompile(`^descreva`)},
	{"compare", regexp.MustCompile(`^compare`)},
	{"analise", regexp.MustCompile(`^analise`)},
}

// nonWordPattern strips punctuation while keeping letters (accents
// included), digits and whitespace.
var nonWordPattern = regexp.MustCompile(`[^\p{L}\p{N}\s]+`)

// whitespacePattern collapses runs of whitespace.
var whitespacePattern = regexp.MustCompile(`\s+`)

// QueryProcessor turns raw user input into classified Query values.
type QueryProcessor struct{}

// NewQueryProcessor creates a new QueryProcessor instance
func NewQueryProcessor() *QueryProcessor {
	return &QueryProcessor{}
}

// ProcessQuery trims and classifies raw user text. Returns ErrEmptyQuery
// when nothing remains after trimming. No side effects.
func (qp *QueryProcessor) ProcessQuery(rawText string) (*models.Query, error) {
	text := strings.TrimSpace(rawText)
	if text == "" {
		return nil, ErrEmptyQuery
	}

	meta := models.QueryMetadata{
		Timestamp: time.Now(),
		Length:    len(text),
		WordCount: len(strings.Fields(text)),
	}

	lowered := strings.ToLower(text)
	for _, p := range questionPatterns {
		if p.pattern.MatchString(lowered) {
			meta.IsQuestion = true
			meta.QuestionType = p.label
			break
		}
	}

	return &models.Query{
		ID:       uuid.New().String(),
		Text:     text,
		Metadata: meta,
	}, nil
}

// Normalize lowercases text, strips punctuation and collapses whitespace.
// Used to compare topic names independent of formatting.
func (qp *QueryProcessor) Normalize(text string) string {
	normalized := strings.ToLower(strings.TrimSpace(text))
	normalized = nonWordPattern.ReplaceAllString(normalized, "")
	normalized = whitespacePattern.ReplaceAllString(normalized, " ")
	return strings.TrimSpace(normalized)
}

// ABOUTME: Tutor orchestrates the retrieval-augmented pipeline end to end
// ABOUTME: Wires query processing, search, ranking, assembly and generation
package core

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"

	"flipflops/internal/llm"
	"flipflops/internal/llm/prompts"
	"flipflops/internal/models"
)

// Embedder converts text into a query vector.
type Embedder interface {
	Embed(ctx context.Context, text string) ([]float64, error)
}

// Generator produces text from a prompt with optional context passages.
type Generator interface {
	GenerateText(ctx context.Context, prompt string, contextPassages []string, opts *llm.GenerateOptions) (string, error)
}

// SearchIndex is the read side of the vector index. Search results carry
// their similarity under the "score" metadata key.
type SearchIndex interface {
	Search(vector []float64, k int) ([]*models.Embedding, error)
	Count() int
}

// TutorConfig tunes the pipeline.
type TutorConfig struct {
	TopK             int
	MinScore         float64
	MaxContextLength int
	ExamMaxTokens    int
	Logger           *slog.Logger
}

// Tutor is the educational assistant: answers questions, explains concepts
// and generates exams over the ingested study material.
type Tutor struct {
	processor *QueryProcessor
	ranker    *Ranker
	assembler *ContextAssembler
	parser    *ExamParser
	grader    *ExamGrader
	embedder  Embedder
	index     SearchIndex
	generator Generator
	topK      int
	examMax   int
	logger    *slog.Logger
}

// NewTutor assembles the pipeline around the given collaborators.
func NewTutor(embedder Embedder, index SearchIndex, generator Generator, config TutorConfig) *Tutor {
	topK := config.TopK
	if topK <= 0 {
		topK = 5
	}
	examMax := config.ExamMaxTokens
	if examMax <= 0 {
		examMax = 4096
	}
	logger := config.Logger
	if logger == nil {
		logger = slog.Default()
	}

	return &Tutor{
		processor: NewQueryProcessor(),
		ranker:    NewRanker(config.MinScore),
		assembler: NewContextAssembler(config.MaxContextLength),
		parser:    NewExamParser(logger),
		grader:    NewExamGrader(),
		embedder:  embedder,
		index:     index,
		generator: generator,
		topK:      topK,
		examMax:   examMax,
		logger:    logger,
	}
}

// Answer runs the full question-answering pipeline: classify the query,
// retrieve and rank relevant chunks, then generate a grounded answer. When
// nothing relevant is indexed, the answer falls back to general knowledge.
func (t *Tutor) Answer(ctx context.Context, rawText string) (string, error) {
	query, err := t.processor.ProcessQuery(rawText)
	if err != nil {
		return "", err
	}

	passages, err := t.retrieve(ctx, query)
	if err != nil {
		return "", err
	}

	opts := &llm.GenerateOptions{SystemPrompt: prompts.System()}
	if len(passages) == 0 {
		t.logger.Debug("no relevant context found, answering from general knowledge", "query_id", query.ID)
		return t.generator.GenerateText(ctx, prompts.AnswerWithoutContext(query.Text), nil, opts)
	}

	t.logger.Debug("answering with retrieved context", "query_id", query.ID, "passages", len(passages))
	return t.generator.GenerateText(ctx, prompts.Answer(query.Text), passages, opts)
}

// Explain produces a Socratic explanation of a concept, grounded in
// retrieved material when any is relevant.
func (t *Tutor) Explain(ctx context.Context, concept string) (string, error) {
	query, err := t.processor.ProcessQuery(concept)
	if err != nil {
		return "", err
	}

	passages, err := t.retrieve(ctx, query)
	if err != nil {
		return "", err
	}

	opts := &llm.GenerateOptions{SystemPrompt: prompts.System()}
	return t.generator.GenerateText(ctx, prompts.Explain(query.Text), passages, opts)
}

// GenerateExam creates up to numQuestions validated multiple-choice
// questions about the topic. Fewer questions than requested can come back
// when the model produced malformed entries; callers decide whether to
// retry generation.
func (t *Tutor) GenerateExam(ctx context.Context, topic string, numQuestions int) ([]*models.Question, error) {
	query, err := t.processor.ProcessQuery(topic)
	if err != nil {
		return nil, err
	}
	if numQuestions <= 0 {
		return nil, fmt.Errorf("number of questions must be positive, got %d", numQuestions)
	}

	passages, err := t.retrieve(ctx, query)
	if err != nil {
		return nil, err
	}

	contextText := strings.Join(passages, "\n\n")
	if contextText == "" {
		contextText = "Conhecimento geral sobre " + query.Text
	}

	opts := &llm.GenerateOptions{MaxTokens: t.examMax}
	raw, err := t.generator.GenerateText(ctx, prompts.Exam(query.Text, contextText, numQuestions), nil, opts)
	if err != nil {
		return nil, fmt.Errorf("generating exam: %w", err)
	}

	questions := t.parser.ParseQuestions(raw, query.Text)
	if len(questions) < numQuestions {
		t.logger.Warn("exam under-yield", "topic", query.Text, "requested", numQuestions, "valid", len(questions))
	}
	return questions, nil
}

// Grade scores an answer sheet against the exam's questions.
func (t *Tutor) Grade(answers []string, questions []*models.Question) *models.ExamResult {
	return t.grader.GradeExam(answers, questions)
}

// ExtractTopics asks the model to mine study topics from sampled document
// content. Returns an empty slice when the response carries no topic JSON.
func (t *Tutor) ExtractTopics(ctx context.Context, sampleContent string) ([]string, error) {
	raw, err := t.generator.GenerateText(ctx, prompts.Topics(sampleContent), nil, nil)
	if err != nil {
		return nil, fmt.Errorf("extracting topics: %w", err)
	}

	payload := extractJSON(raw)
	if payload == "" {
		return []string{}, nil
	}

	var parsed struct {
		Topics []string `json:"topics"`
	}
	if err := json.Unmarshal([]byte(payload), &parsed); err != nil {
		t.logger.Warn("malformed topics JSON", "error", err)
		return []string{}, nil
	}
	return parsed.Topics, nil
}

// retrieve embeds the query, searches the index and assembles the bounded
// context. An empty index short-circuits without an embedding call.
func (t *Tutor) retrieve(ctx context.Context, query *models.Query) ([]string, error) {
	if t.index == nil || t.index.Count() == 0 {
		return nil, nil
	}

	vector, err := t.embedder.Embed(ctx, query.Text)
	if err != nil {
		return nil, fmt.Errorf("embedding query: %w", err)
	}

	candidates, err := t.index.Search(vector, t.topK)
	if err != nil {
		return nil, fmt.Errorf("searching index: %w", err)
	}

	ranked := t.ranker.RankResults(query, candidates)
	return t.assembler.PrepareContext(query, ranked), nil
}

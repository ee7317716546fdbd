// ABOUTME: CLI command to generate and apply a practice exam
// ABOUTME: Interactive answering with grading and SQLite attempt history
package commands

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"flipflops/internal/models"
)

var (
	provaQuestoes int
)

// NewGerarProvaCmd creates the gerar-prova command
func NewGerarProvaCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "gerar-prova <tópico>",
		Short: "Gera uma prova de múltipla escolha sobre um tópico",
		Long: `Generate a multiple-choice practice exam about a topic.

Each question has five alternatives (a-e) in the FUVEST style,
grounded in the ingested study material when available. The exam is
applied interactively; the result is graded and recorded in the local
exam history.

With --format json the questions are printed as JSON (including the
answer key) and no interaction happens.

Examples:
  flipflops gerar-prova "Era Vargas"
  flipflops gerar-prova --questoes 10 "ecologia"
  flipflops --format json gerar-prova "literatura modernista"`,
		Args: cobra.ExactArgs(1),
		RunE: runGerarProva,
	}

	cmd.Flags().IntVar(&provaQuestoes, "questoes", 5, "Number of questions to generate")

	return cmd
}

func runGerarProva(cmd *cobra.Command, args []string) error {
	_ = godotenv.Load()

	if err := validatePositiveInt(provaQuestoes, "questoes"); err != nil {
		return err
	}

	a, err := newApp()
	if err != nil {
		return err
	}
	defer a.close()

	if err := a.withTutor(); err != nil {
		return err
	}

	topic := args[0]
	questions, err := a.tutor.GenerateExam(cmd.Context(), topic, provaQuestoes)
	if err != nil {
		return fmt.Errorf("generating exam: %w", err)
	}
	if len(questions) == 0 {
		return fmt.Errorf("no valid questions were generated for topic %q", topic)
	}

	if outputFormat == "json" {
		jsonData, err := json.MarshalIndent(questions, "", "  ")
		if err != nil {
			return fmt.Errorf("marshaling JSON: %w", err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%s\n", jsonData)
		return nil
	}

	out := cmd.OutOrStdout()
	if !quiet && len(questions) < provaQuestoes {
		fmt.Fprintf(out, "Aviso: apenas %d de %d questões foram geradas.\n\n", len(questions), provaQuestoes)
	}

	answers := collectAnswers(cmd.InOrStdin(), out, questions)
	result := a.tutor.Grade(answers, questions)
	printExamResult(out, result, questions, answers)

	// Record the attempt; a broken history DB should not lose the result
	if err := a.withAttempts(); err != nil {
		a.logger.Warn("exam history unavailable", "error", err)
		return nil
	}
	attempt := &models.ExamAttempt{
		Topic:          topic,
		Score:          result.Score,
		CorrectCount:   result.CorrectCount,
		TotalQuestions: result.TotalQuestions,
	}
	if err := a.attempts.Save(attempt); err != nil {
		a.logger.Warn("recording exam attempt", "error", err)
	}

	return nil
}

// optionLetters indexes alternatives a-e.
var optionLetters = []string{"a", "b", "c", "d", "e"}

// collectAnswers applies the exam: prints each question with its lettered
// alternatives and reads one answer per question. A read failure or EOF
// leaves the remaining answers blank.
func collectAnswers(in io.Reader, out io.Writer, questions []*models.Question) []string {
	scanner := bufio.NewScanner(in)
	answers := make([]string, len(questions))

	for i, q := range questions {
		fmt.Fprintf(out, "Questão %d/%d: %s\n", i+1, len(questions), q.Text)
		for j, option := range q.Options {
			letter := ""
			if j < len(optionLetters) {
				letter = optionLetters[j]
			}
			fmt.Fprintf(out, "  %s) %s\n", letter, option)
		}
		fmt.Fprintf(out, "Resposta (a-e): ")

		if scanner.Scan() {
			answers[i] = strings.TrimSpace(scanner.Text())
		}
		fmt.Fprintln(out)
	}

	return answers
}

// printExamResult prints the grade and the per-question correction.
func printExamResult(out io.Writer, result *models.ExamResult, questions []*models.Question, answers []string) {
	fmt.Fprintf(out, "Resultado: %d/%d acertos (%.0f%%)\n\n",
		result.CorrectCount, result.TotalQuestions, result.Score*100)

	for i, q := range questions {
		given := ""
		if i < len(answers) {
			given = strings.ToLower(strings.TrimSpace(answers[i]))
		}
		if given == q.CorrectAnswer {
			fmt.Fprintf(out, "✓ Questão %d: correta (%s)\n", i+1, q.CorrectAnswer)
			continue
		}
		if given == "" {
			given = "em branco"
		}
		fmt.Fprintf(out, "✗ Questão %d: sua resposta %s, gabarito %s\n", i+1, given, q.CorrectAnswer)
		if q.Explanation != "" {
			fmt.Fprintf(out, "  %s\n", q.Explanation)
		}
	}
}

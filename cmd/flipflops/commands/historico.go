// ABOUTME: CLI command to show the exam attempt history
// ABOUTME: Lists recent attempts with optional per-topic filter and average
package commands

import (
	"encoding/json"
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"flipflops/internal/models"
)

var (
	historicoLimit int
	historicoTopic string
)

// NewHistoricoCmd creates the historico command
func NewHistoricoCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "historico",
		Short: "Mostra o histórico de provas realizadas",
		Long: `Show the history of graded practice exams.

Attempts are listed newest first. Filtering by topic also shows the
average score for that topic.

Examples:
  flipflops historico
  flipflops historico --limite 20
  flipflops historico --topico "Era Vargas"`,
		Args: cobra.NoArgs,
		RunE: runHistorico,
	}

	cmd.Flags().IntVar(&historicoLimit, "limite", 10, "Maximum attempts to show")
	cmd.Flags().StringVar(&historicoTopic, "topico", "", "Filter by exam topic")

	return cmd
}

func runHistorico(cmd *cobra.Command, args []string) error {
	if err := validatePositiveInt(historicoLimit, "limite"); err != nil {
		return err
	}

	a, err := newApp()
	if err != nil {
		return err
	}
	defer a.close()

	if err := a.withAttempts(); err != nil {
		return err
	}

	var attempts []models.ExamAttempt
	if historicoTopic != "" {
		attempts, err = a.attempts.ByTopic(historicoTopic)
	} else {
		attempts, err = a.attempts.Recent(historicoLimit)
	}
	if err != nil {
		return fmt.Errorf("reading exam history: %w", err)
	}

	if len(attempts) == 0 {
		if !quiet {
			fmt.Fprintln(cmd.OutOrStdout(), "Nenhuma prova realizada ainda.")
		}
		return nil
	}

	if outputFormat == "json" {
		jsonData, err := json.MarshalIndent(attempts, "", "  ")
		if err != nil {
			return fmt.Errorf("marshaling JSON: %w", err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%s\n", jsonData)
		return nil
	}

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "DATA\tTÓPICO\tACERTOS\tNOTA\n")
	fmt.Fprintf(w, "----\t------\t-------\t----\n")
	for _, at := range attempts {
		fmt.Fprintf(w, "%s\t%s\t%d/%d\t%.0f%%\n",
			formatTime(at.TakenAt),
			truncate(at.Topic, 30),
			at.CorrectCount, at.TotalQuestions,
			at.Score*100)
	}
	w.Flush()

	if historicoTopic != "" {
		avg, ok, err := a.attempts.AverageScore(historicoTopic)
		if err != nil {
			return fmt.Errorf("computing average: %w", err)
		}
		if ok && !quiet {
			fmt.Fprintf(cmd.OutOrStdout(), "\nMédia em %q: %.0f%%\n", historicoTopic, avg*100)
		}
	}

	return nil
}

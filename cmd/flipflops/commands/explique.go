// ABOUTME: CLI command to explain a concept with the Socratic method
// ABOUTME: Generates guided explanations grounded in the study material
package commands

import (
	"encoding/json"
	"fmt"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

// NewExpliqueCmd creates the explique command
func NewExpliqueCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "explique <conceito>",
		Short: "Explica um conceito pelo método socrático",
		Long: `Explain a concept using the Socratic method.

The explanation starts from a guiding question, builds the concept in
simple steps with examples, connects it to FUVEST themes and ends with
a reflection question.

Examples:
  flipflops explique "fotossíntese"
  flipflops explique "Revolução Industrial"`,
		Args: cobra.ExactArgs(1),
		RunE: runExplique,
	}

	return cmd
}

func runExplique(cmd *cobra.Command, args []string) error {
	_ = godotenv.Load()

	a, err := newApp()
	if err != nil {
		return err
	}
	defer a.close()

	if err := a.withTutor(); err != nil {
		return err
	}

	explanation, err := a.tutor.Explain(cmd.Context(), args[0])
	if err != nil {
		return fmt.Errorf("explaining concept: %w", err)
	}

	if outputFormat == "json" {
		jsonData, err := json.MarshalIndent(map[string]string{
			"concept":     args[0],
			"explanation": explanation,
		}, "", "  ")
		if err != nil {
			return fmt.Errorf("marshaling JSON: %w", err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%s\n", jsonData)
		return nil
	}

	fmt.Fprintln(cmd.OutOrStdout(), explanation)
	return nil
}

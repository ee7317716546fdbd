// ABOUTME: CLI command to clear the local knowledge base
// ABOUTME: Wipes the vector index, topic cache and optionally the history
package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"flipflops/internal/storage"
)

var (
	limparForce     bool
	limparHistorico bool
)

// NewLimparCmd creates the limpar command
func NewLimparCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "limpar",
		Short: "Apaga o índice e o cache de tópicos",
		Long: `Clear the local knowledge base.

Removes every indexed chunk and the cached topic list. With
--historico the exam attempt history is wiped as well. Requires
--force; there is no undo.

Examples:
  flipflops limpar --force
  flipflops limpar --force --historico`,
		Args: cobra.NoArgs,
		RunE: runLimpar,
	}

	cmd.Flags().BoolVar(&limparForce, "force", false, "Confirm the wipe")
	cmd.Flags().BoolVar(&limparHistorico, "historico", false, "Also wipe the exam history")

	return cmd
}

func runLimpar(cmd *cobra.Command, args []string) error {
	if !limparForce {
		return fmt.Errorf("this wipes all indexed material; re-run with --force to confirm")
	}

	a, err := newApp()
	if err != nil {
		return err
	}
	defer a.close()

	removed := a.index.Count()
	a.index.Clear()
	if err := a.saveIndex(); err != nil {
		return err
	}

	if err := storage.NewTopicStore(a.topicsPath()).Clear(); err != nil {
		return fmt.Errorf("clearing topic cache: %w", err)
	}

	if !quiet {
		fmt.Fprintf(cmd.OutOrStdout(), "✓ %d trecho(s) removido(s) do índice\n", removed)
	}

	if limparHistorico {
		if err := a.withAttempts(); err != nil {
			return err
		}
		deleted, err := a.attempts.DeleteAll()
		if err != nil {
			return fmt.Errorf("clearing exam history: %w", err)
		}
		if !quiet {
			fmt.Fprintf(cmd.OutOrStdout(), "✓ %d prova(s) removida(s) do histórico\n", deleted)
		}
	}

	return nil
}

// ABOUTME: CLI command to ingest study material into the knowledge base
// ABOUTME: Accepts a single file or a directory of supported documents
package commands

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

// NewAdicionarCmd creates the adicionar command
func NewAdicionarCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "adicionar <caminho>",
		Short: "Adiciona material de estudo ao índice",
		Long: `Ingest study material into the local knowledge base.

The path may be a single file or a directory; supported formats are
.txt, .md and .csv. Documents are split into chunks, embedded and
added to the vector index.

Examples:
  flipflops adicionar apostila-historia.md
  flipflops adicionar ./material/`,
		Args: cobra.ExactArgs(1),
		RunE: runAdicionar,
	}

	return cmd
}

func runAdicionar(cmd *cobra.Command, args []string) error {
	_ = godotenv.Load()

	a, err := newApp()
	if err != nil {
		return err
	}
	defer a.close()

	if err := a.withTutor(); err != nil {
		return err
	}

	path := args[0]
	info, err := os.Stat(path)
	if err != nil {
		return fmt.Errorf("reading %s: %w", path, err)
	}

	var indexed int
	if info.IsDir() {
		indexed, err = a.ingestor.IngestDirectory(cmd.Context(), path)
		if err != nil {
			return fmt.Errorf("ingesting directory: %w", err)
		}
	} else {
		_, indexed, err = a.ingestor.IngestFile(cmd.Context(), path)
		if err != nil {
			return fmt.Errorf("ingesting file: %w", err)
		}
	}

	if err := a.saveIndex(); err != nil {
		return err
	}

	if !quiet {
		fmt.Fprintf(cmd.OutOrStdout(), "✓ %d trecho(s) indexado(s); o índice agora tem %d trechos\n",
			indexed, a.index.Count())
	}

	return nil
}

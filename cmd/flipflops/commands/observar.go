// ABOUTME: CLI command to watch a directory and ingest new documents
// ABOUTME: Uses fsnotify to pick up created and modified files
package commands

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"flipflops/internal/ingest"
)

// NewObservarCmd creates the observar command
func NewObservarCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "observar <diretório>",
		Short: "Observa um diretório e indexa novos documentos",
		Long: `Watch a directory and ingest supported documents as they appear.

Created and modified .txt, .md and .csv files are ingested
automatically. The watch runs until interrupted; the vector index is
saved on shutdown.

Examples:
  flipflops observar ./material/`,
		Args: cobra.ExactArgs(1),
		RunE: runObservar,
	}

	return cmd
}

func runObservar(cmd *cobra.Command, args []string) error {
	_ = godotenv.Load()

	a, err := newApp()
	if err != nil {
		return err
	}
	defer a.close()

	if err := a.withTutor(); err != nil {
		return err
	}

	watcher, err := ingest.NewWatcher(a.ingestor, a.logger)
	if err != nil {
		return fmt.Errorf("creating watcher: %w", err)
	}
	defer func() { _ = watcher.Close() }()

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if !quiet {
		fmt.Fprintf(cmd.OutOrStdout(), "Observando %s (Ctrl+C para sair)...\n", args[0])
	}

	if err := watcher.Watch(ctx, args[0]); err != nil && ctx.Err() == nil {
		return fmt.Errorf("watching %s: %w", args[0], err)
	}

	if err := a.saveIndex(); err != nil {
		return err
	}
	if !quiet {
		fmt.Fprintf(cmd.OutOrStdout(), "Índice salvo com %d trechos\n", a.index.Count())
	}

	return nil
}

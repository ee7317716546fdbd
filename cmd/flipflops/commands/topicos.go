// ABOUTME: CLI command to list available study topics
// ABOUTME: Serves the cached topic list or mines topics from the index
package commands

import (
	"encoding/json"
	"fmt"
	"text/tabwriter"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

// NewTopicosCmd creates the topicos command
func NewTopicosCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "topicos",
		Short: "Lista os tópicos de estudo disponíveis",
		Long: `List the study topics available in the ingested material.

The cached topic list is served when present; otherwise topics are
extracted from a sample of the indexed content and cached for the
next call.

Examples:
  flipflops topicos
  flipflops --format json topicos`,
		Args: cobra.NoArgs,
		RunE: runTopicos,
	}

	return cmd
}

func runTopicos(cmd *cobra.Command, args []string) error {
	_ = godotenv.Load()

	a, err := newApp()
	if err != nil {
		return err
	}
	defer a.close()

	if err := a.withTutor(); err != nil {
		return err
	}

	topics, err := a.topics.Topics(cmd.Context())
	if err != nil {
		return fmt.Errorf("listing topics: %w", err)
	}

	if len(topics) == 0 {
		if !quiet {
			fmt.Fprintln(cmd.OutOrStdout(), "Nenhum material indexado ainda. Use 'flipflops adicionar' primeiro.")
		}
		return nil
	}

	if outputFormat == "json" {
		jsonData, err := json.MarshalIndent(topics, "", "  ")
		if err != nil {
			return fmt.Errorf("marshaling JSON: %w", err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%s\n", jsonData)
		return nil
	}

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "TÓPICO\tID\n")
	fmt.Fprintf(w, "------\t--\n")
	for _, t := range topics {
		fmt.Fprintf(w, "%s\t%s\n", t.Name, truncate(t.ID, 12))
	}
	w.Flush()

	if !quiet {
		fmt.Fprintf(cmd.OutOrStdout(), "\n%d tópico(s)\n", len(topics))
	}

	return nil
}

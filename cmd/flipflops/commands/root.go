// ABOUTME: Root CLI command with global flags and subcommand registration
// ABOUTME: Defines the flipflops command tree and shared output settings
package commands

import (
	"github.com/spf13/cobra"
)

var (
	verbose      bool
	quiet        bool
	outputFormat string
)

const banner = `
███████╗██╗     ██╗██████╗ ███████╗██╗      ██████╗ ██████╗ ███████╗
██╔════╝██║     ██║██╔══██╗██╔════╝██║     ██╔═══██╗██╔══██╗██╔════╝
█████╗  ██║     ██║██████╔╝█████╗  ██║     ██║   ██║██████╔╝███████╗
██╔══╝  ██║     ██║██╔═══╝ ██╔══╝  ██║     ██║   ██║██╔═══╝ ╚════██║
██║     ███████╗██║██║     ██║     ███████╗╚██████╔╝██║     ███████║
╚═╝     ╚══════╝╚═╝╚═╝     ╚═╝     ╚══════╝ ╚═════╝ ╚═╝     ╚══════╝
`

// NewRootCmd creates the root command with all subcommands
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "flipflops",
		Short: "Assistente de estudos para a FUVEST",
		Long: banner + `
FLIPFLOPS is a study assistant for the FUVEST entrance exam.

It ingests your study material (.txt, .md, .csv), answers questions
grounded in that material, explains concepts using the Socratic method
and generates multiple-choice practice exams in the FUVEST style.

Answers are generated in Portuguese via the Anthropic API; retrieval
uses OpenAI embeddings over a local vector index.`,
		SilenceUsage: true,
	}

	cmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Verbose output")
	cmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false, "Suppress non-essential output")
	cmd.PersistentFlags().StringVar(&outputFormat, "format", "auto", "Output format: auto, table, json")
	cmd.MarkFlagsMutuallyExclusive("verbose", "quiet")

	cmd.AddCommand(
		NewPerguntaCmd(),
		NewExpliqueCmd(),
		NewGerarProvaCmd(),
		NewTopicosCmd(),
		NewAdicionarCmd(),
		NewObservarCmd(),
		NewHistoricoCmd(),
		NewLimparCmd(),
		NewMCPCmd(),
		NewVersionCmd(),
	)

	return cmd
}

// Execute runs the root command
func Execute() error {
	return NewRootCmd().Execute()
}

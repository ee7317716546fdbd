// ABOUTME: CLI command to ask a study question
// ABOUTME: Runs the retrieval-augmented answering pipeline
package commands

import (
	"encoding/json"
	"fmt"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"flipflops/internal/models"
	"flipflops/internal/storage"
)

var perguntaSessao string

// NewPerguntaCmd creates the pergunta command
func NewPerguntaCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "pergunta <texto>",
		Short: "Faz uma pergunta sobre o material de estudo",
		Long: `Answer a question using the ingested study material as context.

The question is embedded, relevant chunks are retrieved from the local
vector index and the answer is generated in Portuguese. When nothing
relevant is indexed the assistant falls back to general knowledge.

Each exchange is appended to a session history; --sessao groups
exchanges under a named session.

Examples:
  flipflops pergunta "O que foi a Semana de Arte Moderna?"
  flipflops pergunta --sessao historia "Quando foi proclamada a República?"
  flipflops --format json pergunta "Quando foi proclamada a República?"`,
		Args: cobra.ExactArgs(1),
		RunE: runPergunta,
	}

	cmd.Flags().StringVar(&perguntaSessao, "sessao", "default", "Session id for the conversation history")

	return cmd
}

func runPergunta(cmd *cobra.Command, args []string) error {
	// Load .env for API keys
	_ = godotenv.Load()

	a, err := newApp()
	if err != nil {
		return err
	}
	defer a.close()

	if err := a.withTutor(); err != nil {
		return err
	}

	answer, err := a.tutor.Answer(cmd.Context(), args[0])
	if err != nil {
		return fmt.Errorf("answering question: %w", err)
	}

	// A failed history write should not hide a good answer
	if err := recordExchange(a, perguntaSessao, args[0], answer); err != nil {
		a.logger.Warn("recording conversation", "session", perguntaSessao, "error", err)
	}

	if outputFormat == "json" {
		jsonData, err := json.MarshalIndent(map[string]string{
			"question": args[0],
			"answer":   answer,
		}, "", "  ")
		if err != nil {
			return fmt.Errorf("marshaling JSON: %w", err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%s\n", jsonData)
		return nil
	}

	fmt.Fprintln(cmd.OutOrStdout(), answer)
	return nil
}

// recordExchange appends the question and answer to the session history.
func recordExchange(a *app, session, question, answer string) error {
	store, err := storage.NewConversationStore(a.conversationsDir())
	if err != nil {
		return err
	}

	conversation, err := store.Get(session)
	if err != nil {
		return err
	}
	if conversation == nil {
		conversation = models.NewConversation()
		conversation.ID = session
	}

	conversation.AddMessage(models.RoleUser, question)
	conversation.AddMessage(models.RoleAssistant, answer)
	return store.Save(conversation)
}

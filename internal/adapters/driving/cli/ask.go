package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/tutor-cli/internal/core/domain"
)

var askCmd = &cobra.Command{
	Use:   "ask [question]",
	Short: "Ask the tutor a question",
	Long: `Asks a single question. The tutor searches your knowledge base for
relevant material, includes your learning profile, and answers with the
configured LLM. The exchange is recorded in your history.`,
	Args: cobra.ExactArgs(1),
	RunE: runAsk,
}

func init() {
	rootCmd.AddCommand(askCmd)
}

func runAsk(cmd *cobra.Command, args []string) error {
	question := args[0]

	if tutorService == nil {
		return errors.New("tutor service not configured")
	}

	answer, err := tutorService.Ask(context.Background(), question)
	if err != nil {
		if errors.Is(err, domain.ErrLLMUnavailable) {
			return fmt.Errorf("no LLM provider configured: set GEMINI_API_KEY or run 'tutor settings llm'")
		}
		return fmt.Errorf("ask failed: %w", err)
	}

	cmd.Println(answer.Text)

	if answer.FlaggedTopic != "" {
		cmd.Println()
		cmd.Printf("Noted: %s added to your weak topics for extra practice.\n", answer.FlaggedTopic)
	}
	if !answer.UsedKnowledgeBase {
		cmd.Println()
		cmd.Println("(Answered from general knowledge; upload materials with 'tutor ingest' for grounded answers.)")
	}

	return nil
}

package cli

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/custodia-labs/tutor-cli/internal/core/ports/driven"
)

var settingsCmd = &cobra.Command{
	Use:   "settings",
	Short: "Manage application settings",
	Long: `View and configure storage, LLM provider, and heuristics options.

Use subcommands to configure specific settings.`,
	RunE: runSettingsShow,
}

var settingsShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show current settings",
	RunE:  runSettingsShow,
}

var settingsLLMCmd = &cobra.Command{
	Use:   "llm",
	Short: "Configure the LLM provider",
	Long: `Configure the LLM provider used to answer questions.

Available providers:
  gemini - Google Gemini (default)
  openai - OpenAI GPT models or compatible APIs`,
	RunE: runSettingsLLM,
}

var settingsStorageCmd = &cobra.Command{
	Use:   "storage [backend]",
	Short: "Set the storage backend (file or sqlite)",
	Args:  cobra.ExactArgs(1),
	RunE:  runSettingsStorage,
}

var settingsStrategyCmd = &cobra.Command{
	Use:   "strategy [name]",
	Short: "Set the intent extraction strategy (legacy or anchored)",
	Long: `Sets how the tutor extracts names and weak topics from questions.

  legacy   - original slot extraction (default)
  anchored - stricter extraction anchored on trigger phrases`,
	Args: cobra.ExactArgs(1),
	RunE: runSettingsStrategy,
}

func init() {
	settingsCmd.AddCommand(settingsShowCmd)
	settingsCmd.AddCommand(settingsLLMCmd)
	settingsCmd.AddCommand(settingsStorageCmd)
	settingsCmd.AddCommand(settingsStrategyCmd)
	rootCmd.AddCommand(settingsCmd)
}

func runSettingsShow(cmd *cobra.Command, _ []string) error {
	if configStore == nil {
		return errors.New("config store not configured")
	}

	cmd.Println("Current Settings")
	cmd.Println("================")
	cmd.Println()

	cmd.Println("[Storage]")
	backend := configStore.GetString(driven.KeyStorageBackend)
	if backend == "" {
		backend = "file (default)"
	}
	cmd.Printf("  Backend: %s\n", backend)
	cmd.Println()

	cmd.Println("[LLM]")
	provider := configStore.GetString(driven.KeyLLMProvider)
	if provider == "" {
		provider = "gemini (default)"
	}
	cmd.Printf("  Provider: %s\n", provider)
	if model := configStore.GetString(driven.KeyLLMModel); model != "" {
		cmd.Printf("  Model: %s\n", model)
	}
	if key := configStore.GetString(driven.KeyLLMAPIKey); key != "" {
		cmd.Printf("  API Key: %s\n", maskAPIKey(key))
	} else {
		cmd.Printf("  API Key: (not set; environment variables are also checked)\n")
	}
	cmd.Println()

	cmd.Println("[Heuristics]")
	strategy := configStore.GetString(driven.KeyExtractionStrategy)
	if strategy == "" {
		strategy = "legacy (default)"
	}
	cmd.Printf("  Extraction strategy: %s\n", strategy)

	return nil
}

func runSettingsLLM(cmd *cobra.Command, _ []string) error {
	if configStore == nil {
		return errors.New("config store not configured")
	}

	reader := bufio.NewReader(os.Stdin)

	cmd.Println("Select LLM Provider")
	cmd.Println("  1. gemini (Google Gemini)")
	cmd.Println("  2. openai (OpenAI / compatible)")
	cmd.Print("\nEnter choice [1]: ")

	provider := "gemini"
	if readLine(reader) == "2" {
		provider = "openai"
	}
	if err := configStore.Set(driven.KeyLLMProvider, provider); err != nil {
		return fmt.Errorf("save provider: %w", err)
	}

	cmd.Print("Enter model name (empty for provider default): ")
	if model := readLine(reader); model != "" {
		if err := configStore.Set(driven.KeyLLMModel, model); err != nil {
			return fmt.Errorf("save model: %w", err)
		}
	}

	cmd.Print("Enter API key: ")
	apiKey := readPassword()
	cmd.Println()
	if apiKey != "" {
		if err := configStore.Set(driven.KeyLLMAPIKey, apiKey); err != nil {
			return fmt.Errorf("save API key: %w", err)
		}
	}

	cmd.Printf("LLM provider configured: %s\n", provider)
	return nil
}

func runSettingsStorage(cmd *cobra.Command, args []string) error {
	if configStore == nil {
		return errors.New("config store not configured")
	}

	backend := args[0]
	if backend != "file" && backend != "sqlite" {
		return fmt.Errorf("unknown backend %q (expected \"file\" or \"sqlite\")", backend)
	}

	if err := configStore.Set(driven.KeyStorageBackend, backend); err != nil {
		return fmt.Errorf("save backend: %w", err)
	}
	cmd.Printf("Storage backend set to: %s\n", backend)
	cmd.Println("Note: existing data is not migrated between backends.")
	return nil
}

func runSettingsStrategy(cmd *cobra.Command, args []string) error {
	if configStore == nil {
		return errors.New("config store not configured")
	}

	strategy := args[0]
	if strategy != "legacy" && strategy != "anchored" {
		return fmt.Errorf("unknown strategy %q (expected \"legacy\" or \"anchored\")", strategy)
	}

	if err := configStore.Set(driven.KeyExtractionStrategy, strategy); err != nil {
		return fmt.Errorf("save strategy: %w", err)
	}
	cmd.Printf("Extraction strategy set to: %s\n", strategy)
	return nil
}

// Helper functions.

//nolint:errcheck // CLI helper, error ignored for UX
func readLine(reader *bufio.Reader) string {
	input, _ := reader.ReadString('\n')
	return strings.TrimSpace(input)
}

//nolint:errcheck // CLI helper, error ignored for UX
func readPassword() string {
	// Try to read the key without echo
	if term.IsTerminal(int(os.Stdin.Fd())) {
		password, err := term.ReadPassword(int(os.Stdin.Fd()))
		if err == nil {
			return string(password)
		}
	}
	// Fallback to regular input
	reader := bufio.NewReader(os.Stdin)
	input, _ := reader.ReadString('\n')
	return strings.TrimSpace(input)
}

func maskAPIKey(key string) string {
	if len(key) <= 8 {
		return "****"
	}
	return key[:4] + "..." + key[len(key)-4:]
}

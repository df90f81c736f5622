// Package cli provides the cobra command tree driving the tutor application.
package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	configfile "github.com/custodia-labs/tutor-cli/internal/adapters/driven/config/file"
	"github.com/custodia-labs/tutor-cli/internal/adapters/driven/llm/gemini"
	"github.com/custodia-labs/tutor-cli/internal/adapters/driven/llm/openai"
	"github.com/custodia-labs/tutor-cli/internal/adapters/driven/llm/ratelimit"
	storagefile "github.com/custodia-labs/tutor-cli/internal/adapters/driven/storage/file"
	"github.com/custodia-labs/tutor-cli/internal/adapters/driven/storage/sqlite"
	"github.com/custodia-labs/tutor-cli/internal/core/ports/driven"
	"github.com/custodia-labs/tutor-cli/internal/core/ports/driving"
	"github.com/custodia-labs/tutor-cli/internal/core/services"
	"github.com/custodia-labs/tutor-cli/internal/extractors/pdf"
	"github.com/custodia-labs/tutor-cli/internal/extractors/plaintext"
	"github.com/custodia-labs/tutor-cli/internal/logger"
)

// Services wired once in initServices and shared by all commands.
var (
	ingestService    driving.IngestService
	retrievalService driving.RetrievalService
	profileService   driving.ProfileService
	tutorService     driving.TutorService
	configStore      driven.ConfigStore
	promptStore      driven.PromptStore
	llmService       driven.LLMService

	closers []func() error
)

var (
	verboseFlag bool
	configDir   string
	dataDir     string
)

var rootCmd = &cobra.Command{
	Use:   "tutor",
	Short: "Personal study assistant backed by your own materials",
	Long: `Tutor ingests your study materials (notes, markdown, PDFs) into a local
knowledge base, remembers your progress, and answers questions with an LLM
grounded in what you uploaded.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
		logger.SetVerbose(verboseFlag)
		return initServices()
	},
	PersistentPostRunE: func(_ *cobra.Command, _ []string) error {
		return closeServices()
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verboseFlag, "verbose", "v", false, "enable verbose logging")
	rootCmd.PersistentFlags().StringVar(&configDir, "config-dir", "", "config directory (default ~/.tutor)")
	rootCmd.PersistentFlags().StringVar(&dataDir, "data-dir", "", "data directory (default ~/.tutor/data)")
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

// initServices wires stores, extractors, and the LLM provider according to
// configuration. Commands that don't need the LLM still work without a key.
func initServices() error {
	cfg, err := configfile.NewConfigStore(configDir)
	if err != nil {
		return fmt.Errorf("open config: %w", err)
	}
	configStore = cfg

	prompts, err := configfile.NewPromptStore(promptDirFor(configDir))
	if err != nil {
		return fmt.Errorf("open prompt store: %w", err)
	}
	promptStore = prompts

	kbStore, profStore, err := openStores(cfg)
	if err != nil {
		return err
	}

	ingestService = services.NewIngestService(kbStore, plaintext.New(), pdf.New())
	retrievalService = services.NewRetrievalService(kbStore)
	profileService = services.NewProfileService(profStore)

	llmService = buildLLMService(cfg)

	intents := services.NewIntentExtractor(
		services.ExtractionStrategy(cfg.GetString(driven.KeyExtractionStrategy)),
	)
	tutorService = services.NewTutorService(
		retrievalService,
		profileService,
		llmService,
		promptStore,
		intents,
	)

	return nil
}

// openStores selects the storage backend from config. "file" is the default;
// "sqlite" keeps everything in a single database file.
func openStores(cfg driven.ConfigStore) (driven.KnowledgeStore, driven.ProfileStore, error) {
	backend := cfg.GetString(driven.KeyStorageBackend)
	switch backend {
	case "", "file":
		kb, err := storagefile.NewKnowledgeStore(dataDir)
		if err != nil {
			return nil, nil, fmt.Errorf("open knowledge store: %w", err)
		}
		prof, err := storagefile.NewProfileStore(dataDir)
		if err != nil {
			return nil, nil, fmt.Errorf("open profile store: %w", err)
		}
		closers = append(closers, kb.Close, prof.Close)
		return kb, prof, nil
	case "sqlite":
		store, err := sqlite.NewStore(dataDir)
		if err != nil {
			return nil, nil, fmt.Errorf("open sqlite store: %w", err)
		}
		closers = append(closers, store.Close)
		return store.KnowledgeStore(), store.ProfileStore(), nil
	default:
		return nil, nil, fmt.Errorf("unknown storage backend %q (expected \"file\" or \"sqlite\")", backend)
	}
}

// buildLLMService constructs the configured provider. A missing API key is
// not an error here: ingest and profile commands work offline, and ask fails
// with a clear message instead.
func buildLLMService(cfg driven.ConfigStore) driven.LLMService {
	provider := cfg.GetString(driven.KeyLLMProvider)
	if provider == "" {
		provider = "gemini"
	}
	model := cfg.GetString(driven.KeyLLMModel)

	var (
		svc driven.LLMService
		err error
	)
	switch provider {
	case "gemini":
		svc, err = gemini.NewLLMService(gemini.LLMConfig{
			APIKey: resolveAPIKey(cfg, "GEMINI_API_KEY"),
			Model:  model,
		})
	case "openai":
		svc, err = openai.NewLLMService(openai.LLMConfig{
			APIKey: resolveAPIKey(cfg, "OPENAI_API_KEY"),
			Model:  model,
		})
	default:
		logger.Warn("Unknown LLM provider %q, questions will fail", provider)
		return nil
	}
	if err != nil {
		logger.Debug("LLM provider %s not configured: %v", provider, err)
		return nil
	}

	limited := ratelimit.Wrap(svc, cfg.GetInt("llm.requests_per_minute"))
	closers = append(closers, limited.Close)
	return limited
}

// resolveAPIKey prefers the environment variable over the config file.
func resolveAPIKey(cfg driven.ConfigStore, envVar string) string {
	if key := os.Getenv(envVar); key != "" {
		return key
	}
	return cfg.GetString(driven.KeyLLMAPIKey)
}

// promptDirFor returns the prompts directory under a custom config dir, or
// empty to let the store use its default.
func promptDirFor(configDir string) string {
	if configDir == "" {
		return ""
	}
	return filepath.Join(configDir, "prompts")
}

func closeServices() error {
	var firstErr error
	for _, closeFn := range closers {
		if err := closeFn(); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	closers = nil
	return firstErr
}

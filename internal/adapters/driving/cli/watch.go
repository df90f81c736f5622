package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/tutor-cli/internal/connectors/filesystem"
	"github.com/custodia-labs/tutor-cli/internal/core/domain"
	"github.com/custodia-labs/tutor-cli/internal/logger"
)

// watchExtensions are the file types auto-ingested by the watch command.
var watchExtensions = []string{".txt", ".md", ".pdf"}

var watchCmd = &cobra.Command{
	Use:   "watch [directory]",
	Short: "Watch a directory and ingest new materials automatically",
	Long: `Watches a directory for new or modified study materials and ingests
them into the knowledge base as they appear. Press Ctrl+C to stop.`,
	Args: cobra.ExactArgs(1),
	RunE: runWatch,
}

func init() {
	rootCmd.AddCommand(watchCmd)
}

func runWatch(cmd *cobra.Command, args []string) error {
	if ingestService == nil {
		return errors.New("ingest service not configured")
	}

	watcher, err := filesystem.NewWatcher(args[0], watchExtensions)
	if err != nil {
		return fmt.Errorf("start watcher: %w", err)
	}
	defer watcher.Stop() //nolint:errcheck // Best-effort shutdown

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	if err := watcher.Start(ctx); err != nil {
		return fmt.Errorf("start watcher: %w", err)
	}

	cmd.Printf("Watching %s for new materials (Ctrl+C to stop)...\n", args[0])

	for {
		select {
		case <-ctx.Done():
			cmd.Println("\nStopped watching.")
			return nil
		case path, ok := <-watcher.Events():
			if !ok {
				return nil
			}
			if err := ingestPath(ctx, path); err != nil {
				logger.Warn("Ingest %s failed: %v", path, err)
				continue
			}
			cmd.Printf("Ingested %s\n", filepath.Base(path))
		}
	}
}

func ingestPath(ctx context.Context, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read %s: %w", path, err)
	}
	_, err = ingestService.Ingest(ctx, []domain.IngestFile{
		{Name: filepath.Base(path), Data: data},
	})
	return err
}

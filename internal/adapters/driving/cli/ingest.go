package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/tutor-cli/internal/core/domain"
)

var ingestCmd = &cobra.Command{
	Use:   "ingest [files...]",
	Short: "Add study materials to the knowledge base",
	Long: `Reads the given files, extracts their text, and stores them in the
knowledge base. Batches of five or more files are combined into a single
section; smaller uploads are stored individually.

Supported formats: .txt, .md, .pdf. Unsupported files are stored as
placeholders so the upload is still acknowledged.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runIngest,
}

func init() {
	rootCmd.AddCommand(ingestCmd)
}

func runIngest(cmd *cobra.Command, args []string) error {
	if ingestService == nil {
		return errors.New("ingest service not configured")
	}

	files, err := readIngestFiles(args)
	if err != nil {
		return err
	}

	result, err := ingestService.Ingest(context.Background(), files)
	if err != nil {
		return fmt.Errorf("ingest failed: %w", err)
	}

	if result.Sections == 1 && len(files) >= domain.BatchThreshold {
		cmd.Printf("Stored %d files as a combined section: %s\n", len(files), result.Stored)
	} else {
		cmd.Printf("Stored %d file(s): %s\n", result.Sections, result.Stored)
	}
	cmd.Println("Your materials are saved in the knowledge base.")

	return nil
}

// readIngestFiles loads each path into memory. Filenames, not paths, become
// the section sources.
func readIngestFiles(paths []string) ([]domain.IngestFile, error) {
	files := make([]domain.IngestFile, 0, len(paths))
	for _, path := range paths {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read %s: %w", path, err)
		}
		files = append(files, domain.IngestFile{
			Name: filepath.Base(path),
			Data: data,
		})
	}
	return files, nil
}

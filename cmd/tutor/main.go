// Command tutor is a personal study assistant: it ingests your materials
// into a local knowledge base, tracks your learning profile, and answers
// questions with an LLM grounded in what you uploaded.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"

	"github.com/custodia-labs/tutor-cli/internal/adapters/driving/cli"
)

func main() {
	// Load .env if present; API keys can live there instead of the shell.
	_ = godotenv.Load()

	if err := cli.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

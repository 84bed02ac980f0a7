package cmd

import (
	"os"

	"github.com/spf13/cobra"
)

const defaultServerURL = "http://localhost:8080"

var serverURL string

var rootCmd = &cobra.Command{
	Use:   "flashdeck",
	Short: "Flashcard study service and client",
	Long: `Flashdeck stores flashcards behind a small REST API and lets you study
them from the terminal. Card text supports Markdown and LaTeX.`,
	SilenceUsage: true,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// GetRootCmd returns the root command for tests.
func GetRootCmd() *cobra.Command {
	return rootCmd
}

func init() {
	defaultURL := os.Getenv("FLASHDECK_SERVER")
	if defaultURL == "" {
		defaultURL = defaultServerURL
	}
	rootCmd.PersistentFlags().StringVar(&serverURL, "server", defaultURL, "Collection service base URL (client commands)")
}

package cmd

import (
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/andrewpaige1/flashdeck/client"
	"github.com/andrewpaige1/flashdeck/study"
)

var importCmd = &cobra.Command{
	Use:   "import <file.json>",
	Short: "Bulk import flashcards from a JSON array",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		data, err := os.ReadFile(args[0])
		if err != nil {
			return err
		}

		logger := slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), nil))
		ctrl := study.NewController(client.New(serverURL, nil), logger)

		state := study.NewState()
		state.BulkInput = string(data)
		state = ctrl.BulkImport(cmd.Context(), state)
		if state.BulkError != "" {
			if state.Err != nil {
				return fmt.Errorf("%s: %w", state.BulkError, state.Err)
			}
			return errors.New(state.BulkError)
		}

		fmt.Fprintln(cmd.OutOrStdout(), state.Notice)
		if state.Err != nil {
			// The cards were created; only the follow-up listing failed
			fmt.Fprintf(cmd.ErrOrStderr(), "could not list flashcards: %v\n", state.Err)
			return nil
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%d flashcards in collection\n", len(state.Cards))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(importCmd)
}

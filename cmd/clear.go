package cmd

import (
	"bufio"
	"fmt"
	"log/slog"
	"strings"

	"github.com/spf13/cobra"

	"github.com/andrewpaige1/flashdeck/client"
	"github.com/andrewpaige1/flashdeck/study"
)

var clearYes bool

var clearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Delete every flashcard",
	RunE: func(cmd *cobra.Command, args []string) error {
		logger := slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), nil))
		ctrl := study.NewController(client.New(serverURL, nil), logger)

		confirmed := clearYes
		confirm := func() bool {
			if confirmed {
				return true
			}
			fmt.Fprint(cmd.OutOrStdout(), "Are you sure you want to delete ALL flashcards? This cannot be undone! [y/N]: ")
			response, _ := bufio.NewReader(cmd.InOrStdin()).ReadString('\n')
			response = strings.TrimSpace(response)
			confirmed = response == "y" || response == "Y"
			return confirmed
		}

		state := ctrl.DeleteAll(cmd.Context(), study.NewState(), confirm)
		if !confirmed {
			fmt.Fprintln(cmd.OutOrStdout(), "Cancelled.")
			return nil
		}
		if state.Err != nil {
			return fmt.Errorf("failed to delete flashcards: %w", state.Err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%d flashcards in collection\n", len(state.Cards))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(clearCmd)
	clearCmd.Flags().BoolVarP(&clearYes, "yes", "y", false, "Skip confirmation prompt")
}

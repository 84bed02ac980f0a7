package cmd

import (
	"io"
	"log/slog"
	"math/rand/v2"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/andrewpaige1/flashdeck/client"
	"github.com/andrewpaige1/flashdeck/study"
	"github.com/andrewpaige1/flashdeck/tui"
)

var studyLogPath string

var studyCmd = &cobra.Command{
	Use:   "study",
	Short: "Study flashcards in the terminal",
	RunE: func(cmd *cobra.Command, args []string) error {
		// The terminal belongs to the UI, so logs go to a file or nowhere
		var out io.Writer = io.Discard
		if studyLogPath != "" {
			f, err := os.OpenFile(studyLogPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
			if err != nil {
				return err
			}
			defer f.Close()
			out = f
		}
		logger := slog.New(slog.NewTextHandler(out, nil))

		ctrl := study.NewController(client.New(serverURL, nil), logger)
		rng := rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))

		p := tea.NewProgram(tui.NewModel(ctrl, rng), tea.WithAltScreen())
		_, err := p.Run()
		return err
	},
}

func init() {
	rootCmd.AddCommand(studyCmd)
	studyCmd.Flags().StringVar(&studyLogPath, "log", os.Getenv("FLASHDECK_LOG"), "Write client logs to this file")
}

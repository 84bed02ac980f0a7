package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/andrewpaige1/flashdeck/client"
)

var showCmd = &cobra.Command{
	Use:   "show <id>",
	Short: "Print a flashcard as sanitized HTML",
	Long: `Show fetches the server-rendered form of one flashcard: Markdown converted
to HTML, math wrapped for typesetting, unsafe markup removed.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := strconv.ParseUint(args[0], 10, 64)
		if err != nil {
			return fmt.Errorf("invalid id %q", args[0])
		}

		rendered, err := client.New(serverURL, nil).Rendered(cmd.Context(), uint(id))
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "<!-- flashcard %d -->\n", rendered.ID)
		fmt.Fprintf(out, "<section class=\"question\">\n%s</section>\n", rendered.Question)
		fmt.Fprintf(out, "<section class=\"answer\">\n%s</section>\n", rendered.Answer)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(showCmd)
}

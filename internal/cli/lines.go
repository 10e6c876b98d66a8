package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"democtl/internal/config"
	"democtl/internal/player"
	"democtl/internal/runner"
	"democtl/internal/script"
)

func init() {
	rootCmd.AddCommand(linesCmd)
}

var linesCmd = &cobra.Command{
	Use:   "lines <script>",
	Short: "List the lines of a demo script with their numbers",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return err
		}
		r, err := runner.New(cfg.Runner, "")
		if err != nil {
			return err
		}
		scr, err := script.Load(args[0], cfg.CommentMarker, r.Noop())
		if err != nil {
			return err
		}
		theme := player.NewTheme(cfg.Colors)
		for i, line := range scr.Lines() {
			num := fmt.Sprintf("%4d", i+1)
			if scr.IsComment(i) {
				line = theme.CommentStyle().Render(line)
			} else {
				line = theme.CommandStyle().Render(line)
			}
			fmt.Printf("%s  %s\n", num, line)
		}
		return nil
	},
}

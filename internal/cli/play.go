package cli

import (
	"time"

	"github.com/spf13/cobra"

	"democtl/internal/app"
)

var (
	playStart    int
	playInterval float64
	playAuto     bool
	playNoPause  bool
	playRunner   string
	playListen   string
	playWatch    bool
)

func init() {
	rootCmd.AddCommand(playCmd)
	for _, c := range []*cobra.Command{playCmd, rootCmd} {
		c.Flags().IntVar(&playStart, "start", 0, "1-based line to start from")
		c.Flags().Float64Var(&playInterval, "interval", 0, "auto-play interval in seconds (overrides config)")
		c.Flags().BoolVar(&playAuto, "auto", false, "start in auto-play mode")
		c.Flags().BoolVar(&playNoPause, "no-pause", false, "advance right after each executed line")
		c.Flags().StringVar(&playRunner, "runner", "", "line runner: shell or starlark (overrides config)")
		c.Flags().StringVar(&playListen, "listen", "", "serve the status API on this address (e.g. :8787)")
		c.Flags().BoolVar(&playWatch, "watch", false, "reload the script when the file changes")
	}
}

var playCmd = &cobra.Command{
	Use:   "play [script]",
	Short: "Play a demo script line by line",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runPlay,
}

func runPlay(cmd *cobra.Command, args []string) error {
	_, o, err := app.LoadSetup()
	if err != nil {
		return err
	}
	if len(args) > 0 {
		o.ScriptPath = args[0]
	}
	o.StartLine = playStart
	o.AutoPlay = playAuto
	o.Listen = playListen
	if playInterval > 0 {
		o.Interval = time.Duration(playInterval * float64(time.Second))
	}
	if cmd.Flags().Changed("no-pause") {
		o.NoPause = playNoPause
	}
	if cmd.Flags().Changed("runner") {
		o.Runner = playRunner
	}
	if cmd.Flags().Changed("watch") {
		o.Watch = playWatch
	}
	return app.Run(o)
}

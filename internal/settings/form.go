package settings

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"democtl/internal/config"
)

// Run launches an interactive form over the player configuration and
// saves it on submit.
func Run() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	marker := cfg.CommentMarker
	interval := strconv.FormatFloat(cfg.IntervalSeconds, 'f', -1, 64)
	runnerName := cfg.Runner
	noPause := cfg.NoPause
	watch := cfg.WatchScript

	green := lipgloss.Color("#4d9375")
	theme := huh.ThemeCharm()
	theme.FieldSeparator = lipgloss.NewStyle()
	theme.Blurred.Title = theme.Blurred.Title.Width(18).Foreground(lipgloss.Color("7"))
	theme.Focused.Title = theme.Focused.Title.Width(18).Foreground(green).Bold(true)
	theme.Focused.Base.BorderForeground(green)

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewNote().Title("democtl settings").Description("saved to "+mustPath()),
			huh.NewInput().
				Title("Comment marker").
				Description("prefix for lines that display without running").
				Value(&marker).
				Validate(func(s string) error {
					if strings.TrimSpace(s) == "" {
						return fmt.Errorf("marker cannot be empty")
					}
					return nil
				}),
			huh.NewInput().
				Title("Auto-play interval").
				Description("seconds between lines in auto-play").
				Value(&interval).
				Validate(func(s string) error {
					v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
					if err != nil || v <= 0 {
						return fmt.Errorf("enter a positive number of seconds")
					}
					return nil
				}),
			huh.NewSelect[string]().
				Title("Runner").
				Options(
					huh.NewOption("shell", "shell"),
					huh.NewOption("starlark", "starlark"),
				).
				Value(&runnerName),
			huh.NewConfirm().
				Title("Skip pauses").
				Description("advance right after each executed line instead of waiting for a key").
				Value(&noPause),
			huh.NewConfirm().
				Title("Watch script").
				Description("reload the script when the file changes on disk").
				Value(&watch),
		),
	).WithTheme(theme).WithWidth(64)

	if err := form.Run(); err != nil {
		return err
	}

	cfg.CommentMarker = strings.TrimSpace(marker)
	cfg.IntervalSeconds, _ = strconv.ParseFloat(strings.TrimSpace(interval), 64)
	cfg.Runner = runnerName
	cfg.NoPause = noPause
	cfg.WatchScript = watch
	if err := config.Save(cfg); err != nil {
		return err
	}
	fmt.Println("\n✓ settings saved")
	return nil
}

func mustPath() string {
	p, err := config.FilePath()
	if err != nil {
		return "config.json"
	}
	return p
}

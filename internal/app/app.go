package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/charmbracelet/huh"
	"github.com/fsnotify/fsnotify"

	"democtl/internal/config"
	"democtl/internal/player"
	"democtl/internal/runner"
	"democtl/internal/script"
	"democtl/internal/system"
	"democtl/internal/webui/server"
)

// Options is the fully resolved session setup: CLI flags layered over
// the config file, nothing left to look up.
type Options struct {
	ScriptPath string
	Marker     string
	Runner     string
	StartLine  int
	Interval   time.Duration
	AutoPlay   bool
	NoPause    bool
	Watch      bool
	Listen     string
	Theme      player.Theme
}

// Run prepares one demo session and blocks in the player until it ends.
func Run(o Options) error {
	r, err := runner.New(o.Runner, "")
	if err != nil {
		return err
	}

	path, err := resolveScript(o.ScriptPath)
	if err != nil {
		return err
	}

	scr, err := script.Load(path, o.Marker, r.Noop())
	if err != nil {
		return err
	}

	var watcher *fsnotify.Watcher
	if o.Watch {
		watcher, err = fsnotify.NewWatcher()
		if err != nil {
			return fmt.Errorf("watch %s: %w", path, err)
		}
		if err := watcher.Add(path); err != nil {
			watcher.Close()
			return fmt.Errorf("watch %s: %w", path, err)
		}
		defer watcher.Close()
	}

	var st *server.Status
	if o.Listen != "" {
		st = server.NewStatus(path, r.Name(), scr.Lines())
		srv := &server.Server{Addr: o.Listen, Status: st}
		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()
		go func() {
			if err := srv.Start(ctx); err != nil && !errors.Is(err, http.ErrServerClosed) {
				system.Logger.Error("status server stopped", "err", err)
			}
		}()
	}

	return player.Start(player.Options{
		Script:    scr,
		Runner:    r,
		Theme:     o.Theme,
		StartLine: o.StartLine,
		Interval:  o.Interval,
		AutoPlay:  o.AutoPlay,
		NoPause:   o.NoPause,
		Status:    st,
		Watcher:   watcher,
	})
}

// resolveScript checks that the script file is readable and, when it is
// not, keeps asking for a path until one is or the prompt is canceled.
func resolveScript(path string) (string, error) {
	for {
		path = strings.TrimSpace(path)
		if path != "" {
			if _, err := os.Stat(path); err == nil {
				return path, nil
			} else {
				fmt.Fprintf(os.Stderr, "cannot read %s: %v\n", path, err)
			}
		}
		var next string
		in := huh.NewInput().
			Title("Demo script").
			Description("path to the script file to play").
			Value(&next).
			Validate(func(s string) error {
				if strings.TrimSpace(s) == "" {
					return fmt.Errorf("a path is required")
				}
				return nil
			})
		if err := huh.NewForm(huh.NewGroup(in)).Run(); err != nil {
			return "", err
		}
		path = next
	}
}

// LoadSetup reads the config file and turns it into the parts of
// Options that have file-level defaults.
func LoadSetup() (config.Config, Options, error) {
	cfg, err := config.Load()
	if err != nil {
		return cfg, Options{}, err
	}
	o := Options{
		Marker:   cfg.CommentMarker,
		Runner:   cfg.Runner,
		Interval: time.Duration(cfg.IntervalSeconds * float64(time.Second)),
		NoPause:  cfg.NoPause,
		Watch:    cfg.WatchScript,
		Theme:    player.NewTheme(cfg.Colors),
	}
	return cfg, o, nil
}

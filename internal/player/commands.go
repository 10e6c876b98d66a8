package player

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/fsnotify/fsnotify"

	"democtl/internal/runner"
)

// execTimeout bounds a single line execution so a hung command cannot
// wedge the whole demo.
const execTimeout = 5 * time.Minute

// Commands

func runLineCmd(r runner.Runner, index int, line string, suspend bool) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), execTimeout)
		defer cancel()
		out, err := r.Run(ctx, line)
		return execDoneMsg{index: index, line: line, out: out, err: err, suspend: suspend}
	}
}

func autoTickCmd(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(time.Time) tea.Msg { return autoTickMsg{} })
}

// once-a-second tick for the window title and elapsed display
func clockTickCmd() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg { return clockTickMsg(t) })
}

// watchCmd blocks on the next relevant fsnotify event. Update re-issues
// it after handling each message.
func watchCmd(w *fsnotify.Watcher) tea.Cmd {
	if w == nil {
		return nil
	}
	return func() tea.Msg {
		for {
			select {
			case ev, ok := <-w.Events:
				if !ok {
					return nil
				}
				if ev.Op&(fsnotify.Write|fsnotify.Create) != 0 {
					return scriptChangedMsg{}
				}
			case err, ok := <-w.Errors:
				if !ok {
					return nil
				}
				return watchErrMsg{err: err}
			}
		}
	}
}

package player

import "time"

// Bubble Tea messages

// execDoneMsg reports a finished line execution.
type execDoneMsg struct {
	index   int // cursor at execution time; -1 for suspend-prompt lines
	line    string
	out     string
	err     error
	suspend bool
}

// autoTickMsg paces auto-play between lines.
type autoTickMsg struct{}

// clockTickMsg drives the window title / elapsed display.
type clockTickMsg time.Time

// scriptChangedMsg signals the watched script file was modified.
type scriptChangedMsg struct{}

type watchErrMsg struct{ err error }

package player

import (
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/fsnotify/fsnotify"
	runewidth "github.com/mattn/go-runewidth"

	"democtl/internal/history"
	"democtl/internal/runner"
	"democtl/internal/script"
	"democtl/internal/webui/server"
)

// Options configures one demo session.
type Options struct {
	Script    *script.Script
	Runner    runner.Runner
	Theme     Theme
	StartLine int // 1-based starting line; 0 and 1 both mean the first line
	Interval  time.Duration
	AutoPlay  bool
	NoPause   bool
	Status    *server.Status    // optional status publisher
	Watcher   *fsnotify.Watcher // optional, already watching the script file
}

type mode int

const (
	modePrompt mode = iota // displaying current line, awaiting a key
	modeRunning
	modePostExec // executed, waiting one more key
	modeGoto
	modeFind
	modeInterval
	modeSuspend
	modeSuspendRunning
	modeSource
	modeHelp
	modeDone
)

func (d mode) String() string {
	switch d {
	case modePrompt:
		return "prompt"
	case modeRunning:
		return "running"
	case modePostExec:
		return "post-exec"
	case modeGoto:
		return "goto"
	case modeFind:
		return "find"
	case modeInterval:
		return "interval"
	case modeSuspend, modeSuspendRunning:
		return "suspended"
	case modeSource:
		return "source"
	case modeHelp:
		return "help"
	case modeDone:
		return "done"
	}
	return "unknown"
}

type model struct {
	scr   *script.Script
	run   runner.Runner
	theme Theme
	keys  keymap
	help  help.Model

	cursor    int
	mode      mode
	startedAt time.Time
	executed  int

	autoplay bool
	interval time.Duration
	noPause  bool

	input textinput.Model
	vp    viewport.Model
	spin  spinner.Model
	prog  progress.Model

	// source overlay state
	srcMatches []script.Match
	srcSel     int

	helpView  string
	helpWidth int

	watcher *fsnotify.Watcher
	status  *server.Status

	width, height int
	quitting      bool
}

// startMsg kicks off the first display once the program is running.
type startMsg struct{}

func newModel(o Options) model {
	ti := textinput.New()
	ti.Prompt = " > "
	ti.CharLimit = 512
	ti.Width = 60

	sp := spinner.New()
	sp.Spinner = spinner.MiniDot
	sp.Style = lipgloss.NewStyle().Foreground(o.Theme.Accent)

	pr := progress.New(progress.WithDefaultGradient(), progress.WithWidth(30), progress.WithoutPercentage())

	start := o.StartLine - 1
	if start < 0 {
		start = 0
	}
	if start >= o.Script.Len() {
		start = o.Script.Len() - 1
	}

	return model{
		scr:       o.Script,
		run:       o.Runner,
		theme:     o.Theme,
		keys:      defaultKeymap(),
		help:      help.New(),
		cursor:    start,
		mode:      modePrompt,
		startedAt: time.Now(),
		autoplay:  o.AutoPlay,
		interval:  o.Interval,
		noPause:   o.NoPause,
		input:     ti,
		vp:        viewport.New(80, 16),
		spin:      sp,
		prog:      pr,
		watcher:   o.Watcher,
		status:    o.Status,
	}
}

func (m model) Init() tea.Cmd {
	cmds := []tea.Cmd{
		func() tea.Msg { return startMsg{} },
		clockTickCmd(),
	}
	if c := watchCmd(m.watcher); c != nil {
		cmds = append(cmds, c)
	}
	return tea.Batch(cmds...)
}

// enterLine echoes any comment lines under the cursor and settles on
// the first executable one. The loop never waits for a keystroke on a
// comment. Reaching the end of the script finishes the session.
func (m *model) enterLine() tea.Cmd {
	var cmds []tea.Cmd
	if m.cursor < 0 {
		m.cursor = 0
	}
	for m.cursor < m.scr.Len() && m.scr.IsComment(m.cursor) {
		cmds = append(cmds, tea.Println(m.theme.CommentStyle().Render(m.scr.Line(m.cursor))))
		m.cursor++
	}
	if m.cursor >= m.scr.Len() {
		cmds = append(cmds, m.finish())
		return tea.Sequence(cmds...)
	}
	m.mode = modePrompt
	m.publish()
	cmds = append(cmds, m.titleCmd())
	if m.autoplay {
		cmds = append(cmds, m.execCurrent())
	}
	return tea.Sequence(cmds...)
}

// advance moves to the next line; the auto-increment every command
// description refers to.
func (m *model) advance() tea.Cmd {
	m.cursor++
	return m.enterLine()
}

// execCurrent echoes the current line and hands it to the runner.
func (m *model) execCurrent() tea.Cmd {
	line := m.scr.Line(m.cursor)
	m.mode = modeRunning
	m.publish()
	echo := m.theme.PromptStyle().Render("› ") + m.theme.CommandStyle().Render(line)
	return tea.Sequence(
		tea.Println(echo),
		tea.Batch(m.spin.Tick, runLineCmd(m.run, m.cursor, line, false)),
	)
}

// finish prints the completion summary and ends the program.
func (m *model) finish() tea.Cmd {
	m.mode = modeDone
	m.quitting = true
	if m.cursor > m.scr.Len() {
		m.cursor = m.scr.Len()
	}
	m.publish()
	summary := fmt.Sprintf("demo complete — %d lines run in %s",
		m.executed, formatElapsed(time.Since(m.startedAt)))
	return tea.Sequence(
		tea.Println(m.theme.AccentBold().Render(summary)),
		tea.Quit,
	)
}

func (m *model) publish() {
	if m.status == nil {
		return
	}
	m.status.Publish(m.cursor, m.scr.Line(m.cursor), m.mode.String(), m.executed)
}

// titleCmd updates the terminal window title with elapsed time and the
// current line.
func (m *model) titleCmd() tea.Cmd {
	line := runewidth.Truncate(m.scr.Line(m.cursor), 48, "…")
	return tea.SetWindowTitle(fmt.Sprintf("democtl %s — %s",
		formatElapsed(time.Since(m.startedAt)), line))
}

// suspend opens the nested prompt with persisted history suggestions.
func (m *model) suspend() tea.Cmd {
	m.mode = modeSuspend
	m.input.Prompt = " ! "
	m.input.Placeholder = `command ("exit" resumes the demo)`
	m.input.SetValue("")
	if h, err := history.Load(); err == nil && len(h) > 0 {
		m.input.SetSuggestions(h)
		m.input.ShowSuggestions = true
	}
	m.input.Focus()
	return textinput.Blink
}

// openInput switches to a one-line input mode (goto / find / interval).
func (m *model) openInput(md mode, prompt, placeholder, value string) tea.Cmd {
	m.mode = md
	m.input.Prompt = " " + prompt + " "
	m.input.Placeholder = placeholder
	m.input.ShowSuggestions = false
	m.input.SetValue(value)
	m.input.CursorEnd()
	m.input.Focus()
	return textinput.Blink
}

func (m *model) closeInput() {
	m.input.Blur()
	m.input.SetValue("")
	m.mode = modePrompt
}

// formatElapsed renders a wall-clock duration as h/m/s with
// zero-valued higher units omitted: 1h02m03s, 2m03s, 45s.
func formatElapsed(d time.Duration) string {
	if d < 0 {
		d = 0
	}
	d = d.Round(time.Second)
	h := int(d.Hours())
	mi := int(d.Minutes()) % 60
	s := int(d.Seconds()) % 60
	switch {
	case h > 0:
		return fmt.Sprintf("%dh%02dm%02ds", h, mi, s)
	case mi > 0:
		return fmt.Sprintf("%dm%02ds", mi, s)
	default:
		return fmt.Sprintf("%ds", s)
	}
}

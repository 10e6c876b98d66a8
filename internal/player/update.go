package player

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	zone "github.com/lrstanley/bubblezone"

	"democtl/internal/history"
)

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case startMsg:
		return m, m.enterLine()

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		w := msg.Width - 4
		if w < 20 {
			w = 20
		}
		m.input.Width = w
		m.vp.Width = msg.Width
		h := msg.Height - 6
		if h < 5 {
			h = 5
		}
		m.vp.Height = h
		if m.mode == modeSource {
			m.refreshSource()
		}
		return m, nil

	case clockTickMsg:
		if m.quitting {
			return m, nil
		}
		return m, tea.Batch(clockTickCmd(), m.titleCmd())

	case spinner.TickMsg:
		if m.mode == modeRunning || m.mode == modeSuspendRunning {
			var cmd tea.Cmd
			m.spin, cmd = m.spin.Update(msg)
			return m, cmd
		}
		return m, nil

	case execDoneMsg:
		return m, m.handleExecDone(msg)

	case autoTickMsg:
		if !m.autoplay || m.quitting {
			return m, nil
		}
		return m, m.advance()

	case scriptChangedMsg:
		return m, m.handleScriptChanged()

	case watchErrMsg:
		return m, tea.Batch(
			tea.Println(m.theme.ErrorStyle().Render("watch error: "+msg.err.Error())),
			watchCmd(m.watcher),
		)

	case tea.MouseMsg:
		if m.mode == modeSource && msg.Action == tea.MouseActionRelease && msg.Button == tea.MouseButtonLeft {
			for i := range m.srcMatches {
				if zone.Get(fmt.Sprintf("src.%d", i)).InBounds(msg) {
					return m, m.jumpTo(m.srcMatches[i].Index)
				}
			}
		}
		return m, nil

	case tea.KeyMsg:
		// Ctrl+C always ends the session, whatever the mode.
		if msg.String() == "ctrl+c" {
			return m, m.quit()
		}
		switch m.mode {
		case modePrompt:
			return m, m.updatePrompt(msg)
		case modePostExec:
			return m, m.updatePostExec(msg)
		case modeGoto, modeFind, modeInterval:
			return m, m.updateInput(msg)
		case modeSuspend:
			return m, m.updateSuspend(msg)
		case modeSource:
			return m, m.updateSource(msg)
		case modeHelp:
			m.mode = modePrompt
			return m, nil
		case modeRunning, modeSuspendRunning, modeDone:
			// a line is executing or the session is over; swallow keys
			return m, nil
		}
	}
	return m, nil
}

// quit forces the cursor to end-of-script, ending the loop.
func (m *model) quit() tea.Cmd {
	m.cursor = m.scr.Len()
	return m.finish()
}

func (m *model) updatePrompt(msg tea.KeyMsg) tea.Cmd {
	k := m.keys
	switch {
	case key.Matches(msg, k.Run):
		return m.execCurrent()

	case key.Matches(msg, k.Skip):
		echo := m.theme.MutedStyle().Render("· " + m.scr.Line(m.cursor) + "  (skipped)")
		return tea.Sequence(tea.Println(echo), m.advance())

	case key.Matches(msg, k.Prev):
		m.cursor = m.scr.Rewind(m.cursor, 1)
		m.publish()
		return m.titleCmd()

	case key.Matches(msg, k.Goto):
		return m.openInput(modeGoto, "goto", fmt.Sprintf("line number (1-%d)", m.scr.Len()), "")

	case key.Matches(msg, k.Find):
		return m.openInput(modeFind, "find", "substring to search for", "")

	case key.Matches(msg, k.Auto):
		cur := strconv.FormatFloat(m.interval.Seconds(), 'f', -1, 64)
		return m.openInput(modeInterval, "auto", "interval in seconds", cur)

	case key.Matches(msg, k.Source):
		return m.openSource()

	case key.Matches(msg, k.Time):
		elapsed := "elapsed " + formatElapsed(time.Since(m.startedAt))
		return tea.Println(m.theme.AccentBold().Render(elapsed))

	case key.Matches(msg, k.Suspend):
		return m.suspend()

	case key.Matches(msg, k.Clear):
		return tea.ClearScreen

	case key.Matches(msg, k.Help):
		if m.helpView == "" || m.helpWidth != m.width {
			m.helpView = renderHelp(m.width)
			m.helpWidth = m.width
		}
		m.mode = modeHelp
		return nil

	case key.Matches(msg, k.Quit):
		return m.quit()
	}
	hint := m.theme.MutedStyle().Render("press ? for help, enter to run the current line")
	return tea.Println(hint)
}

// updatePostExec implements the one-extra-keystroke pause after an
// executed line.
func (m *model) updatePostExec(msg tea.KeyMsg) tea.Cmd {
	if key.Matches(msg, m.keys.Quit) {
		return m.quit()
	}
	return m.advance()
}

func (m *model) updateInput(msg tea.KeyMsg) tea.Cmd {
	switch msg.Type {
	case tea.KeyEsc:
		m.closeInput()
		return nil
	case tea.KeyEnter:
		val := strings.TrimSpace(m.input.Value())
		md := m.mode
		m.closeInput()
		switch md {
		case modeGoto:
			return m.submitGoto(val)
		case modeFind:
			return m.submitFind(val)
		case modeInterval:
			return m.submitInterval(val)
		}
		return nil
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return cmd
}

// submitGoto places the cursor so the auto-increment lands exactly on
// the requested 1-based line. Out-of-range targets are ignored; zero
// and negative reset to just before the first line.
func (m *model) submitGoto(val string) tea.Cmd {
	n, err := strconv.Atoi(val)
	if err != nil {
		return nil
	}
	if n <= 0 {
		m.cursor = -1
		return m.advance()
	}
	if n > m.scr.Len() {
		return nil
	}
	m.cursor = n - 2
	return m.advance()
}

// submitFind prints matches with 0-based line numbers. The cursor
// never moves, match or not.
func (m *model) submitFind(val string) tea.Cmd {
	if val == "" {
		return nil
	}
	matches := m.scr.Search(val)
	if matches == nil {
		return tea.Println(m.theme.MutedStyle().Render(fmt.Sprintf("not found: %q", val)))
	}
	cmds := make([]tea.Cmd, 0, len(matches))
	for _, match := range matches {
		num := m.theme.AccentBold().Render(fmt.Sprintf("%4d", match.Index))
		cmds = append(cmds, tea.Println(num+"  "+match.Text))
	}
	return tea.Sequence(cmds...)
}

func (m *model) submitInterval(val string) tea.Cmd {
	secs, err := strconv.ParseFloat(val, 64)
	if err != nil || secs <= 0 {
		return nil
	}
	m.autoplay = true
	m.interval = time.Duration(secs * float64(time.Second))
	return m.execCurrent()
}

func (m *model) updateSuspend(msg tea.KeyMsg) tea.Cmd {
	switch msg.Type {
	case tea.KeyEsc:
		return m.resume()
	case tea.KeyEnter:
		val := strings.TrimSpace(m.input.Value())
		switch val {
		case "":
			return nil
		case "exit", "quit":
			return m.resume()
		}
		m.input.SetValue("")
		_ = history.Append(val)
		m.mode = modeSuspendRunning
		echo := m.theme.PromptStyle().Render("! ") + m.theme.CommandStyle().Render(val)
		return tea.Sequence(
			tea.Println(echo),
			tea.Batch(m.spin.Tick, runLineCmd(m.run, -1, val, true)),
		)
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return cmd
}

// resume returns from the nested prompt to the main loop, re-displaying
// the same line.
func (m *model) resume() tea.Cmd {
	m.closeInput()
	m.publish()
	return tea.Println(m.theme.MutedStyle().Render("resumed"))
}

func (m *model) openSource() tea.Cmd {
	m.mode = modeSource
	m.input.Prompt = " / "
	m.input.Placeholder = "type to filter, enter jumps, esc closes"
	m.input.ShowSuggestions = false
	m.input.SetValue("")
	m.input.Focus()
	m.srcMatches = m.scr.Fuzzy("")
	m.srcSel = m.cursor
	m.refreshSource()
	return nil
}

func (m *model) updateSource(msg tea.KeyMsg) tea.Cmd {
	switch msg.Type {
	case tea.KeyEsc:
		m.closeInput()
		return nil
	case tea.KeyUp:
		if m.srcSel > 0 {
			m.srcSel--
			m.refreshSource()
		}
		return nil
	case tea.KeyDown:
		if m.srcSel < len(m.srcMatches)-1 {
			m.srcSel++
			m.refreshSource()
		}
		return nil
	case tea.KeyEnter:
		if len(m.srcMatches) == 0 {
			return nil
		}
		return m.jumpTo(m.srcMatches[m.srcSel].Index)
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	m.srcMatches = m.scr.Fuzzy(m.input.Value())
	m.srcSel = 0
	m.refreshSource()
	return cmd
}

// jumpTo leaves the source overlay and moves to the given line.
func (m *model) jumpTo(index int) tea.Cmd {
	m.closeInput()
	m.cursor = index - 1
	return m.advance()
}

func (m *model) handleExecDone(msg execDoneMsg) tea.Cmd {
	var cmds []tea.Cmd
	if out := strings.TrimRight(msg.out, "\n"); out != "" {
		cmds = append(cmds, tea.Println(out))
	}
	if msg.err != nil {
		cmds = append(cmds, tea.Println(m.theme.ErrorStyle().Render("error: "+msg.err.Error())))
	}
	if msg.suspend {
		// back to the nested prompt
		m.mode = modeSuspend
		return tea.Sequence(cmds...)
	}
	m.executed++
	switch {
	case m.autoplay:
		m.mode = modeRunning
		m.publish()
		cmds = append(cmds, autoTickCmd(m.interval))
	case m.noPause:
		cmds = append(cmds, m.advance())
	default:
		m.mode = modePostExec
		m.publish()
	}
	return tea.Sequence(cmds...)
}

func (m *model) handleScriptChanged() tea.Cmd {
	var note tea.Cmd
	if err := m.scr.Reload(); err != nil {
		note = tea.Println(m.theme.ErrorStyle().Render("script reload failed: " + err.Error()))
	} else {
		if m.cursor >= m.scr.Len() {
			m.cursor = m.scr.Len() - 1
		}
		if m.status != nil {
			m.status.SetLines(m.scr.Lines())
		}
		if m.mode == modeSource {
			m.srcMatches = m.scr.Fuzzy(m.input.Value())
			m.srcSel = 0
			m.refreshSource()
		}
		m.publish()
		note = tea.Println(m.theme.MutedStyle().Render(
			fmt.Sprintf("script reloaded (%d lines)", m.scr.Len())))
	}
	return tea.Batch(note, watchCmd(m.watcher))
}

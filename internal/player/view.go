package player

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"
	xansi "github.com/charmbracelet/x/ansi"
	zone "github.com/lrstanley/bubblezone"
)

func (m model) View() string {
	if m.quitting {
		return ""
	}
	switch m.mode {
	case modeHelp:
		return zone.Scan(m.helpView + m.theme.MutedStyle().Render("press any key to return") + "\n")
	case modeSource:
		header := m.theme.AccentBold().Render(
			fmt.Sprintf("source — %s (%d lines)", m.scr.Path, m.scr.Len()))
		return zone.Scan(header + "\n" + m.renderInputBox() + "\n" + m.vp.View() + "\n")
	}

	b := &strings.Builder{}
	b.WriteString(m.renderStatusLine())
	b.WriteString("\n")
	switch m.mode {
	case modeGoto, modeFind, modeInterval, modeSuspend:
		b.WriteString(m.renderInputBox())
		b.WriteString("\n")
	case modeRunning:
		if m.autoplay {
			frac := float64(m.cursor+1) / float64(m.scr.Len())
			fmt.Fprintf(b, "  %s %s %d/%d\n",
				m.spin.View(), m.prog.ViewAs(frac), m.cursor+1, m.scr.Len())
		} else {
			b.WriteString("  " + m.spin.View() + m.theme.MutedStyle().Render(" running…") + "\n")
		}
	case modeSuspendRunning:
		b.WriteString("  " + m.spin.View() + m.theme.MutedStyle().Render(" running…") + "\n")
	case modePostExec:
		b.WriteString(m.theme.MutedStyle().Render("  press any key for the next line…") + "\n")
	default:
		b.WriteString(m.help.View(m.keys))
		b.WriteString("\n")
	}
	return zone.Scan(b.String())
}

// renderStatusLine shows the 1-based position and the pending line.
func (m model) renderStatusLine() string {
	pos := m.theme.MutedStyle().Render(fmt.Sprintf("[%d/%d]", m.cursor+1, m.scr.Len()))
	s := pos + m.theme.PromptStyle().Render(" › ") + m.theme.CommandStyle().Render(m.scr.Line(m.cursor))
	if m.width > 0 && xansi.StringWidth(s) > m.width {
		s = xansi.Truncate(s, m.width, "…")
	}
	return s
}

func (m model) renderInputBox() string {
	w := m.width
	if w <= 0 {
		w = 80
	}
	inner := w - 2
	if inner < 24 {
		inner = 24
	}
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(m.theme.Border).
		Width(inner).
		Render(m.input.View())
}

// refreshSource rebuilds the viewport content for the source overlay.
// Every row is zone-marked so a mouse click can jump to it.
func (m *model) refreshSource() {
	width := m.vp.Width
	if width <= 0 {
		width = 80
	}
	sel := lipgloss.NewStyle().Bold(true).Foreground(m.theme.Accent).Reverse(true)
	b := &strings.Builder{}
	for i, match := range m.srcMatches {
		line := fmt.Sprintf("%4d  %s", match.Index, match.Text)
		if xansi.StringWidth(line) > width-1 {
			line = xansi.Truncate(line, width-1, "…")
		}
		var st lipgloss.Style
		switch {
		case i == m.srcSel:
			st = sel
		case match.Index == m.cursor:
			st = m.theme.AccentBold()
		case m.scr.IsComment(match.Index):
			st = m.theme.CommentStyle()
		default:
			st = m.theme.CommandStyle()
		}
		b.WriteString(zone.Mark(fmt.Sprintf("src.%d", i), st.Render(line)))
		b.WriteByte('\n')
	}
	m.vp.SetContent(strings.TrimRight(b.String(), "\n"))
	off := m.srcSel - m.vp.Height/2
	if maxOff := len(m.srcMatches) - m.vp.Height; off > maxOff {
		off = maxOff
	}
	if off < 0 {
		off = 0
	}
	m.vp.SetYOffset(off)
}

const helpMD = `# democtl

Walks an operator through a script one line at a time. Comment lines
are shown and skipped automatically.

| key | action |
|-----|--------|
| enter, y | run the current line |
| n, s, → | skip without running |
| p, b, ← | back to the previous command |
| g | go to a line by number |
| /, f | find lines by substring |
| a | auto-play with a fixed interval |
| v, d | view the whole script (filter, click or enter to jump) |
| t | show elapsed time |
| ! | suspend into a nested prompt ("exit" resumes) |
| ctrl+l | clear the screen |
| q, esc | end the demo |
`

// renderHelp renders the key legend through glamour.
func renderHelp(width int) string {
	if width <= 0 || width > 100 {
		width = 100
	}
	r, err := glamour.NewTermRenderer(glamour.WithAutoStyle(), glamour.WithWordWrap(width))
	if err != nil {
		return helpMD
	}
	out, err := r.Render(helpMD)
	if err != nil {
		return helpMD
	}
	return out
}

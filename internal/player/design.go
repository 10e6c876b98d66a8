package player

import (
	"github.com/charmbracelet/lipgloss"

	"democtl/internal/config"
)

// Theme centralizes the player palette. The three roles the operator
// can configure (prompt decoration, echoed command text, comment
// lines) come from the config file; the rest stays fixed.
type Theme struct {
	Prompt  lipgloss.Color
	Command lipgloss.Color
	Comment lipgloss.Color

	Muted  lipgloss.Color // #dedcd590
	Error  lipgloss.Color // #cb7676
	Accent lipgloss.Color // #4d9375
	Border lipgloss.Color // #252525
}

// NewTheme builds the theme from configured colors.
func NewTheme(c config.Colors) Theme {
	return Theme{
		Prompt:  lipgloss.Color(c.Prompt),
		Command: lipgloss.Color(c.Command),
		Comment: lipgloss.Color(c.Comment),
		Muted:   lipgloss.Color("#dedcd590"),
		Error:   lipgloss.Color("#cb7676"),
		Accent:  lipgloss.Color("#4d9375"),
		Border:  lipgloss.Color("#252525"),
	}
}

// Convenience style helpers

func (t Theme) PromptStyle() lipgloss.Style {
	return lipgloss.NewStyle().Bold(true).Foreground(t.Prompt)
}

func (t Theme) CommandStyle() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(t.Command)
}

func (t Theme) CommentStyle() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(t.Comment)
}

func (t Theme) MutedStyle() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(t.Muted)
}

func (t Theme) ErrorStyle() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(t.Error)
}

func (t Theme) AccentBold() lipgloss.Style {
	return lipgloss.NewStyle().Bold(true).Foreground(t.Accent)
}

func (t Theme) BorderStyle() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(t.Border)
}

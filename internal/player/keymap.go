package player

import "github.com/charmbracelet/bubbles/key"

type keymap struct {
	Run     key.Binding
	Skip    key.Binding
	Prev    key.Binding
	Goto    key.Binding
	Find    key.Binding
	Auto    key.Binding
	Source  key.Binding
	Time    key.Binding
	Suspend key.Binding
	Clear   key.Binding
	Help    key.Binding
	Quit    key.Binding
}

func defaultKeymap() keymap {
	return keymap{
		Run:     key.NewBinding(key.WithKeys("enter", "y"), key.WithHelp("enter", "run")),
		Skip:    key.NewBinding(key.WithKeys("n", "s", "right"), key.WithHelp("n", "skip")),
		Prev:    key.NewBinding(key.WithKeys("p", "b", "left"), key.WithHelp("p", "back")),
		Goto:    key.NewBinding(key.WithKeys("g"), key.WithHelp("g", "go to line")),
		Find:    key.NewBinding(key.WithKeys("/", "f"), key.WithHelp("/", "find")),
		Auto:    key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "auto-play")),
		Source:  key.NewBinding(key.WithKeys("v", "d"), key.WithHelp("v", "view source")),
		Time:    key.NewBinding(key.WithKeys("t"), key.WithHelp("t", "time check")),
		Suspend: key.NewBinding(key.WithKeys("!"), key.WithHelp("!", "suspend")),
		Clear:   key.NewBinding(key.WithKeys("ctrl+l"), key.WithHelp("ctrl+l", "clear")),
		Help:    key.NewBinding(key.WithKeys("?", "h"), key.WithHelp("?", "help")),
		Quit:    key.NewBinding(key.WithKeys("q", "esc", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

// ShortHelp is the one-line legend under the prompt.
func (k keymap) ShortHelp() []key.Binding {
	return []key.Binding{k.Run, k.Skip, k.Prev, k.Auto, k.Help, k.Quit}
}

func (k keymap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Run, k.Skip, k.Prev, k.Goto},
		{k.Find, k.Auto, k.Source, k.Time},
		{k.Suspend, k.Clear, k.Help, k.Quit},
	}
}

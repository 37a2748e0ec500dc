package tui

import (
	"github.com/charmbracelet/bubbles/key"

	"eduquiz/internal/quiz"
)

// keyMap binds player intents to keys.
type keyMap struct {
	Options    []key.Binding
	Select     key.Binding
	Enter      key.Binding
	Hint       key.Binding
	FiftyFifty key.Binding
	Skip       key.Binding
	Reset      key.Binding
	Help       key.Binding
	Quit       key.Binding
}

func defaultKeyMap() keyMap {
	options := make([]key.Binding, quiz.OptionCount)
	for idx := range options {
		letter := string(rune('a' + idx))
		digit := string(rune('1' + idx))
		options[idx] = key.NewBinding(key.WithKeys(letter, digit))
	}
	return keyMap{
		Options:    options,
		Select:     key.NewBinding(key.WithKeys("a", "b", "c", "d"), key.WithHelp("a-d", "select")),
		Enter:      key.NewBinding(key.WithKeys("enter", " "), key.WithHelp("enter", "confirm/next")),
		Hint:       key.NewBinding(key.WithKeys("h"), key.WithHelp("h", "hint")),
		FiftyFifty: key.NewBinding(key.WithKeys("f"), key.WithHelp("f", "50/50")),
		Skip:       key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "skip")),
		Reset:      key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "restart")),
		Help:       key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "more")),
		Quit:       key.NewBinding(key.WithKeys("q", "esc", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Select, k.Enter, k.Hint, k.FiftyFifty, k.Skip, k.Help, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Select, k.Enter},
		{k.Hint, k.FiftyFifty, k.Skip},
		{k.Reset, k.Help, k.Quit},
	}
}

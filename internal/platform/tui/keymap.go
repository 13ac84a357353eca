package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/pongping/internal/config"
	"github.com/vovakirdan/pongping/internal/core"
)

// KeyMap holds the terminal key bindings. Player keys come from the game
// configuration so the help footer always matches the seat table.
type KeyMap struct {
	P1Up   key.Binding
	P1Down key.Binding
	P2Up   key.Binding
	P2Down key.Binding
	Start  key.Binding
	Quit   key.Binding
}

// NewKeyMap builds bindings from the configured key names.
func NewKeyMap(cfg config.PongControls) KeyMap {
	return KeyMap{
		P1Up:   binding(cfg.Player1.Up, "P1 up"),
		P1Down: binding(cfg.Player1.Down, "P1 down"),
		P2Up:   binding(cfg.Player2.Up, "P2 up"),
		P2Down: binding(cfg.Player2.Down, "P2 down"),
		Start:  binding(cfg.Start, "serve"),
		Quit: key.NewBinding(
			key.WithKeys("q", "esc", "ctrl+c"),
			key.WithHelp("q/esc", "quit"),
		),
	}
}

// binding creates a binding for one configured key.
func binding(name, desc string) key.Binding {
	k := core.ParseKey(name)
	return key.NewBinding(
		key.WithKeys(terminalName(k)),
		key.WithHelp(k.String(), desc),
	)
}

// ShortHelp returns key bindings for the short help view.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.P1Up, k.P1Down, k.P2Up, k.P2Down, k.Start, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.P1Up, k.P1Down},
		{k.P2Up, k.P2Down},
		{k.Start, k.Quit},
	}
}

// terminalName returns the Bubble Tea name of a key.
func terminalName(k core.Key) string {
	if k == core.KeySpace {
		return " "
	}
	return k.String()
}

// keyFromMsg translates a Bubble Tea key message to a game key.
func keyFromMsg(msg tea.KeyMsg) core.Key {
	return core.ParseKey(msg.String())
}

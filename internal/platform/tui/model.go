package tui

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/pongping/internal/config"
	"github.com/vovakirdan/pongping/internal/core"
	"github.com/vovakirdan/pongping/internal/platform"
)

// footerHeight is the number of rows reserved for the help footer.
const footerHeight = 1

// Model is the Bubble Tea model running one game session.
// The runner must already be started.
type Model struct {
	runner   *platform.Runner
	screen   *core.Screen
	surface  *core.CellSurface
	keyboard *core.Keyboard
	keys     KeyMap
	help     help.Model
	tickRate int
	quitting bool
}

// NewModel creates a model for a terminal of the given size.
func NewModel(r *platform.Runner, cfg config.PongConfig, width, height int) Model {
	rc := r.Runtime()
	screen := core.NewScreen(width, height-footerHeight)

	h := help.New()
	h.Width = width

	return Model{
		runner:   r,
		screen:   screen,
		surface:  core.NewCellSurface(screen, rc.ScreenW, rc.ScreenH),
		keyboard: core.NewKeyboard(cfg.Input.HoldFrames),
		keys:     NewKeyMap(cfg.Controls),
		help:     h,
		tickRate: rc.TickRate,
	}
}

// Init starts the frame clock.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.tickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if key.Matches(msg, m.keys.Quit) {
			m.quitting = true
			return m, tea.Quit
		}
		m.keyboard.Press(keyFromMsg(msg))
		return m, nil

	case tea.WindowSizeMsg:
		m.screen.Resize(msg.Width, msg.Height-footerHeight)
		m.help.Width = msg.Width
		return m, nil

	case tea.BlurMsg:
		// Key events stop arriving while unfocused; drop held keys.
		m.keyboard.Release()
		return m, nil

	case TickMsg:
		m.keyboard.Latch()
		m.runner.Frame(m.keyboard)
		return m, tickCmd(m.tickRate)
	}

	return m, nil
}

// View renders the current frame.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.runner.Draw(m.surface)
	return RenderScreen(m.screen) + "\n" + footerStyle.Render(m.help.View(m.keys))
}

// Quitting reports whether the user asked to quit.
func (m Model) Quitting() bool {
	return m.quitting
}

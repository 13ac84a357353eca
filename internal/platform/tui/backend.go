package tui

import (
	"context"
	"errors"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/term"

	"github.com/vovakirdan/pongping/internal/config"
	"github.com/vovakirdan/pongping/internal/platform"
	"github.com/vovakirdan/pongping/internal/registry"
)

// BackendID is the registry name of the terminal backend.
const BackendID = "tui"

// Backend plays the game in the current terminal.
type Backend struct{}

// ID returns the registry name.
func (Backend) ID() string {
	return BackendID
}

// Title returns a short description.
func (Backend) Title() string {
	return "Terminal (Bubble Tea)"
}

// Run starts the Bubble Tea program and blocks until the user quits or ctx is done.
func (Backend) Run(ctx context.Context, r *platform.Runner, cfg config.PongConfig) error {
	// Bubble Tea sends the real size on start; this only avoids an empty first frame.
	width, height := 80, 24
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width, height = w, h
	}

	p := tea.NewProgram(
		NewModel(r, cfg, width, height),
		tea.WithAltScreen(),
		tea.WithContext(ctx),
		tea.WithReportFocus(),
	)

	_, err := p.Run()
	if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
		return nil
	}
	return err
}

func init() {
	registry.Register(BackendID, func() registry.Backend {
		return Backend{}
	})
}

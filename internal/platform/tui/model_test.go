package tui

import (
	"io"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/pongping/internal/config"
	"github.com/vovakirdan/pongping/internal/core"
	"github.com/vovakirdan/pongping/internal/games/pong"
	"github.com/vovakirdan/pongping/internal/platform"
)

func newTestModel(t *testing.T) (Model, *pong.Game) {
	t.Helper()
	cfg := config.DefaultPongConfig()
	game := pong.New(cfg)
	r := platform.NewRunner(game, nil, log.New(io.Discard), "test")
	r.Start(cfg.Runtime(60, 7))
	return NewModel(r, cfg, 80, 24), game
}

// send applies messages in order and returns the updated model.
func send(t *testing.T, m Model, msgs ...tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	var cmd tea.Cmd
	for _, msg := range msgs {
		var next tea.Model
		next, cmd = m.Update(msg)
		var ok bool
		if m, ok = next.(Model); !ok {
			t.Fatalf("Update returned %T, want Model", next)
		}
	}
	return m, cmd
}

var (
	spaceKey = tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}
	wKey     = tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'w'}}
	tick     = TickMsg(time.Time{})
)

func TestModelStartsOnSpace(t *testing.T) {
	m, game := newTestModel(t)

	m, _ = send(t, m, tick)
	if game.Phase() != pong.StatePaused {
		t.Fatal("game should wait for the start key")
	}

	m, cmd := send(t, m, spaceKey, tick)
	if game.Phase() != pong.StatePlaying {
		t.Errorf("phase = %v, want Playing", game.Phase())
	}
	if cmd == nil {
		t.Error("tick should schedule the next tick")
	}
	if !m.runner.Last().Started {
		t.Error("last frame should report the start")
	}
}

func TestModelHeldKeyMovesPaddle(t *testing.T) {
	m, game := newTestModel(t)
	m, _ = send(t, m, spaceKey, tick)

	startY := game.Snapshot().Paddle1Y
	// One key event keeps the key down for the hold window.
	m, _ = send(t, m, wKey, tick, tick, tick)

	want := startY - 3*game.Field().PaddleStep
	if got := game.Snapshot().Paddle1Y; got != want {
		t.Errorf("paddle Y = %v, want %v", got, want)
	}

	// Once the window expires the paddle stops.
	for range core.DefaultHoldFrames {
		m, _ = send(t, m, tick)
	}
	stopped := game.Snapshot().Paddle1Y
	_, _ = send(t, m, tick)
	if got := game.Snapshot().Paddle1Y; got != stopped {
		t.Errorf("paddle kept moving after the hold window: %v -> %v", stopped, got)
	}
}

func TestModelBlurReleasesKeys(t *testing.T) {
	m, game := newTestModel(t)
	m, _ = send(t, m, spaceKey, tick)

	startY := game.Snapshot().Paddle1Y
	_, _ = send(t, m, wKey, tea.BlurMsg{}, tick)

	if got := game.Snapshot().Paddle1Y; got != startY {
		t.Errorf("blur should release held keys, paddle moved to %v", got)
	}
}

func TestModelQuit(t *testing.T) {
	m, _ := newTestModel(t)

	m, cmd := send(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})
	if !m.Quitting() {
		t.Error("q should quit")
	}
	if cmd == nil {
		t.Error("quit should return a command")
	}
	if m.View() != "" {
		t.Error("view should be empty after quitting")
	}
}

func TestModelResize(t *testing.T) {
	m, _ := newTestModel(t)

	m, _ = send(t, m, tea.WindowSizeMsg{Width: 100, Height: 40})
	if m.screen.Width() != 100 || m.screen.Height() != 40-footerHeight {
		t.Errorf("screen = %dx%d, want 100x%d", m.screen.Width(), m.screen.Height(), 40-footerHeight)
	}
}

func TestModelView(t *testing.T) {
	m, _ := newTestModel(t)

	view := m.View()
	for _, want := range []string{"to play!", "P1: 0, P2: 0", "quit"} {
		if !strings.Contains(view, want) {
			t.Errorf("view should contain %q", want)
		}
	}
	if lines := strings.Count(view, "\n") + 1; lines != 24 {
		t.Errorf("view has %d lines, want 24", lines)
	}
}

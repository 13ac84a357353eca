package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/pongping/internal/config"
	"github.com/vovakirdan/pongping/internal/games/pong"
	"github.com/vovakirdan/pongping/internal/platform"
	"github.com/vovakirdan/pongping/internal/platform/tui"
	"github.com/vovakirdan/pongping/internal/registry"
	"github.com/vovakirdan/pongping/internal/storage"
)

// windowBackend is preferred when the binary was built with it.
const windowBackend = "window"

var flagBackend string

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play a local two-player game",
	Long: `Start a game for two players sharing one keyboard.

Controls:
  W/S        - Player 1 up/down
  Up/Down    - Player 2 up/down
  Space      - Serve the ball
  Esc        - Quit (Q and Ctrl+C also quit in the terminal)

Backends:
  window     - Native 640x480 window (binary built with -tags ebiten)
  tui        - The current terminal

Examples:
  pongping play
  pongping play --backend tui
  pongping play --seed 42 --log-level debug
  pongping play --config ./my-pong.yaml`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func init() {
	playCmd.Flags().StringVarP(&flagBackend, "backend", "b", "", "Backend: window or tui (default: window when available)")
}

func runPlay(cmd *cobra.Command, _ []string) error {
	backendID := flagBackend
	if backendID == "" {
		backendID = tui.BackendID
		if registry.Exists(windowBackend) {
			backendID = windowBackend
		}
	}

	backend, err := registry.Create(backendID)
	if err != nil {
		return fmt.Errorf("%w (run 'pongping list' to see available backends)", err)
	}

	cfg, err := config.LoadPong(flagConfig)
	if err != nil {
		return err
	}

	// The terminal backend owns the screen; log to a file instead.
	logOut := os.Stderr
	if backendID == tui.BackendID {
		f, fileErr := openLogFile()
		if fileErr != nil {
			return fileErr
		}
		defer f.Close()
		logOut = f
	}
	logger, err := newLogger(logOut, "pongping")
	if err != nil {
		return err
	}

	// Open history storage
	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open history database, playing without it", "error", err)
		store = nil
	}
	if store != nil {
		defer store.Close()
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	runner := platform.NewRunner(pong.New(cfg), store, logger, backendID)
	runner.Start(cfg.Runtime(flagFPS, flagSeed))

	runErr := backend.Run(ctx, runner, cfg)

	if err := runner.Close(); err != nil {
		logger.Warn("could not store final score", "error", err)
	}

	if runErr != nil {
		return fmt.Errorf("error running game: %w", runErr)
	}
	return nil
}


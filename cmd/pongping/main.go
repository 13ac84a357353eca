// pongping is a two-player Pong for a native window, the terminal or SSH.
//
// Usage:
//
//	pongping play            - Play locally (window if built with -tags ebiten, else terminal)
//	pongping play -b tui     - Play in the terminal
//	pongping serve           - Start SSH server for remote play
//	pongping scores          - Show recent sessions and totals
//	pongping list            - List available backends
//
// Global flags:
//
//	--fps <rate>        - Set tick rate (default: 60)
//	--seed <value>      - Set RNG seed for reproducible serves
//	--db <path>         - Set history database path (default: ~/.pongping/history.db)
//	--config <path>     - Use a custom game config YAML
//	--log-level <level> - debug, info, warn or error (default: info)
package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	// Import backends to register them
	_ "github.com/vovakirdan/pongping/internal/platform/tui"
	_ "github.com/vovakirdan/pongping/internal/platform/window"
)

var (
	// Global flags
	flagFPS      int
	flagSeed     int64
	flagDBPath   string
	flagConfig   string
	flagLogLevel string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "pongping",
	Short: "Pong Ping - two-player Pong",
	Long: `Pong Ping is a classic two-player Pong. Player 1 uses W/S, player 2
uses the arrow keys and space serves the ball.

Available commands:
  play     - Play locally in a window or the terminal
  serve    - Start SSH server for remote play
  scores   - View the session history
  list     - Show available backends

Examples:
  pongping play
  pongping play --backend tui
  pongping serve --ssh :2222
  pongping scores --limit 20`,
	SilenceUsage: true,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.pongping/history.db", "Path to history database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	// Add subcommands
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
}

// newLogger creates the process logger writing to w.
func newLogger(w io.Writer, prefix string) (*log.Logger, error) {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return nil, fmt.Errorf("invalid --log-level %q: %w", flagLogLevel, err)
	}
	return log.NewWithOptions(w, log.Options{
		Level:           level,
		Prefix:          prefix,
		ReportTimestamp: true,
	}), nil
}

// openLogFile opens ~/.pongping/pongping.log for appending. The terminal
// backend owns the screen, so it cannot log to stderr.
func openLogFile() (*os.File, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return nil, fmt.Errorf("cannot get home directory: %w", err)
	}
	dir := filepath.Join(home, ".pongping")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("cannot create %s: %w", dir, err)
	}
	return os.OpenFile(filepath.Join(dir, "pongping.log"), os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
}

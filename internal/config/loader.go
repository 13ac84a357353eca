package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/pongping/internal/core"
)

// LoadPong loads the game configuration.
// Search order: customPath -> ~/.pongping/configs/pong.yaml -> ./configs/pong.yaml -> embedded default.
// Files are applied on top of the defaults, so partial files are allowed.
func LoadPong(customPath string) (PongConfig, error) {
	cfg := DefaultPongConfig()

	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("config: failed to read %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("config: failed to parse %s: %w", customPath, err)
		}
		return cfg, cfg.Validate()
	}

	// Try user config directory, then the local configs directory
	for _, path := range []string{userConfigPath("pong.yaml"), filepath.Join("configs", "pong.yaml")} {
		if path == "" {
			continue
		}
		data, err := os.ReadFile(path)
		if err != nil {
			continue
		}
		candidate := DefaultPongConfig()
		if err := yaml.Unmarshal(data, &candidate); err == nil && candidate.Validate() == nil {
			return candidate, nil
		}
	}

	// Use embedded default YAML
	if err := yaml.Unmarshal(defaultPongYAML, &cfg); err != nil {
		return DefaultPongConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// Validate reports settings the game cannot run with.
func (c PongConfig) Validate() error {
	var errs []error
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		errs = append(errs, fmt.Errorf("window size must be positive, got %vx%v", c.Window.Width, c.Window.Height))
	}
	if c.Paddles.Width <= 0 || c.Paddles.Height <= 0 {
		errs = append(errs, fmt.Errorf("paddle size must be positive, got %vx%v", c.Paddles.Width, c.Paddles.Height))
	}
	if c.Paddles.Height > c.Window.Height {
		errs = append(errs, fmt.Errorf("paddle height %v exceeds window height %v", c.Paddles.Height, c.Window.Height))
	}
	if c.Paddles.Step <= 0 {
		errs = append(errs, fmt.Errorf("paddle step must be positive, got %v", c.Paddles.Step))
	}
	if c.Ball.Size <= 0 {
		errs = append(errs, fmt.Errorf("ball size must be positive, got %v", c.Ball.Size))
	}
	if c.Ball.Speed <= 0 {
		errs = append(errs, fmt.Errorf("ball speed must be positive, got %v", c.Ball.Speed))
	}
	if c.Scoring.Point <= 0 {
		errs = append(errs, fmt.Errorf("point value must be positive, got %d", c.Scoring.Point))
	}
	for _, k := range []struct{ name, value string }{
		{"player1.up", c.Controls.Player1.Up},
		{"player1.down", c.Controls.Player1.Down},
		{"player2.up", c.Controls.Player2.Up},
		{"player2.down", c.Controls.Player2.Down},
		{"start", c.Controls.Start},
	} {
		if k.value == "" {
			errs = append(errs, fmt.Errorf("%s key must be set", k.name))
		} else if !core.ParseKey(k.value).Valid() {
			errs = append(errs, fmt.Errorf("%s key %q is not a known key", k.name, k.value))
		}
	}
	if err := errors.Join(errs...); err != nil {
		return fmt.Errorf("config: invalid: %w", err)
	}
	return nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".pongping", "configs", filename)
}

// Package config provides YAML-based game configuration loading with embedded
// defaults.
package config

import "github.com/vovakirdan/pongping/internal/core"

// PongConfig contains all configuration for the game.
type PongConfig struct {
	Window   PongWindow   `yaml:"window"`
	Paddles  PongPaddles  `yaml:"paddles"`
	Ball     PongBall     `yaml:"ball"`
	Scoring  PongScoring  `yaml:"scoring"`
	Controls PongControls `yaml:"controls"`
	Input    PongInput    `yaml:"input"`
}

// PongWindow defines the play area and window title.
type PongWindow struct {
	Title  string  `yaml:"title"`
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// PongPaddles defines paddle dimensions and movement.
type PongPaddles struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
	Step   float64 `yaml:"step"` // Distance moved per frame while a key is down
}

// PongBall defines ball size and speed.
type PongBall struct {
	Size  float64 `yaml:"size"`
	Speed float64 `yaml:"speed"` // Distance moved per frame along each axis
}

// PongScoring defines how much a point is worth.
type PongScoring struct {
	Point int `yaml:"point"`
}

// PongControls defines key bindings.
type PongControls struct {
	Player1 PongKeys `yaml:"player1"`
	Player2 PongKeys `yaml:"player2"`
	Start   string   `yaml:"start"`
}

// PongKeys is a pair of up/down key names.
type PongKeys struct {
	Up   string `yaml:"up"`
	Down string `yaml:"down"`
}

// PongInput defines terminal input handling.
type PongInput struct {
	// HoldFrames is how many frames a terminal key stays down after its last
	// key event. Window backends report real key state and ignore it.
	HoldFrames int `yaml:"hold_frames"`
}

// Runtime returns the RuntimeConfig matching the window section.
func (c PongConfig) Runtime(tickRate int, seed int64) core.RuntimeConfig {
	return core.RuntimeConfig{
		Title:    c.Window.Title,
		ScreenW:  c.Window.Width,
		ScreenH:  c.Window.Height,
		TickRate: tickRate,
		Seed:     seed,
	}
}

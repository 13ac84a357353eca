package config

import (
	_ "embed"
)

//go:embed defaults/pong.yaml
var defaultPongYAML []byte

// DefaultPongConfig returns the default configuration.
func DefaultPongConfig() PongConfig {
	return PongConfig{
		Window: PongWindow{
			Title:  "Pong Ping",
			Width:  640,
			Height: 480,
		},
		Paddles: PongPaddles{
			Width:  16,
			Height: 64,
			Step:   10,
		},
		Ball: PongBall{
			Size:  16,
			Speed: 6,
		},
		Scoring: PongScoring{
			Point: 100,
		},
		Controls: PongControls{
			Player1: PongKeys{Up: "w", Down: "s"},
			Player2: PongKeys{Up: "up", Down: "down"},
			Start:   "space",
		},
		Input: PongInput{
			HoldFrames: 8,
		},
	}
}

// DefaultYAML returns the embedded default YAML.
func DefaultYAML() []byte {
	return defaultPongYAML
}

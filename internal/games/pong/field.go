package pong

import (
	"github.com/vovakirdan/pongping/internal/config"
	"github.com/vovakirdan/pongping/internal/core"
)

// Side is the edge of the field a paddle defends.
type Side int

const (
	SideLeft Side = iota
	SideRight
)

// Binding is the pair of keys that moves one paddle.
type Binding struct {
	Up   core.Key
	Down core.Key
}

// Seat is the fixed layout of one player: where the paddle lives and which
// keys drive it.
type Seat struct {
	Side Side
	Keys Binding
}

// Field describes the play area, entity dimensions and the seat table.
type Field struct {
	Width  float64
	Height float64

	PaddleW    float64
	PaddleH    float64
	PaddleStep float64

	BallSize  float64
	BallSpeed float64

	Point int
	Start core.Key

	// Seats maps each player to its layout. Only Player1 and Player2 exist.
	Seats map[core.PlayerID]Seat
}

// NewField builds a field from the game configuration.
func NewField(cfg config.PongConfig) Field {
	return Field{
		Width:      cfg.Window.Width,
		Height:     cfg.Window.Height,
		PaddleW:    cfg.Paddles.Width,
		PaddleH:    cfg.Paddles.Height,
		PaddleStep: cfg.Paddles.Step,
		BallSize:   cfg.Ball.Size,
		BallSpeed:  cfg.Ball.Speed,
		Point:      cfg.Scoring.Point,
		Start:      core.ParseKey(cfg.Controls.Start),
		Seats: map[core.PlayerID]Seat{
			core.Player1: {
				Side: SideLeft,
				Keys: Binding{
					Up:   core.ParseKey(cfg.Controls.Player1.Up),
					Down: core.ParseKey(cfg.Controls.Player1.Down),
				},
			},
			core.Player2: {
				Side: SideRight,
				Keys: Binding{
					Up:   core.ParseKey(cfg.Controls.Player2.Up),
					Down: core.ParseKey(cfg.Controls.Player2.Down),
				},
			},
		},
	}
}

// DefaultField returns the field for the default configuration: a 640x480
// area, 16x64 paddles, a 16 unit ball moving 6 units per frame.
func DefaultField() Field {
	return NewField(config.DefaultPongConfig())
}

// homeX returns the fixed horizontal position of a paddle on the given side.
func (f Field) homeX(side Side) float64 {
	if side == SideRight {
		return f.Width - f.PaddleW
	}
	return 0
}

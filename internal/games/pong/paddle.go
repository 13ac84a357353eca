package pong

import (
	"fmt"

	"github.com/vovakirdan/pongping/internal/core"
)

// Paddle is one player's bat. It only ever moves vertically.
type Paddle struct {
	ID   core.PlayerID
	X, Y float64
	W, H float64

	step float64
	maxY float64
	keys Binding
}

// NewPaddle places the paddle for the given player at its home position,
// vertically centred. It panics if the player has no seat.
func NewPaddle(id core.PlayerID, f Field) *Paddle {
	seat, ok := f.Seats[id]
	if !ok {
		panic(fmt.Sprintf("pong: invalid paddle id %d", id))
	}

	return &Paddle{
		ID:   id,
		X:    f.homeX(seat.Side),
		Y:    f.Height/2 - f.PaddleH/2,
		W:    f.PaddleW,
		H:    f.PaddleH,
		step: f.PaddleStep,
		maxY: f.Height - f.PaddleH,
		keys: seat.Keys,
	}
}

// Control moves the paddle one step for each held direction key.
// A step that would leave [0, height-H] is not taken.
func (p *Paddle) Control(in core.KeyState) {
	if in.IsKeyDown(p.keys.Up) && p.Y-p.step >= 0 {
		p.Y -= p.step
	}
	if in.IsKeyDown(p.keys.Down) && p.Y+p.step <= p.maxY {
		p.Y += p.step
	}
}

// Bounds returns the paddle's hit box.
func (p *Paddle) Bounds() core.Rect {
	return core.NewRect(p.X, p.Y, p.W, p.H)
}

// Draw renders the paddle.
func (p *Paddle) Draw(dst core.Surface) {
	dst.Rect(p.X, p.Y, p.W, p.H, core.ColorWhite)
}

package pong

import (
	"math/rand"

	"github.com/vovakirdan/pongping/internal/core"
)

// Ball moves diagonally at a fixed speed. DirX and DirY are always -1 or +1.
type Ball struct {
	X, Y       float64
	DirX, DirY float64

	size   float64
	speed  float64
	fieldW float64
	fieldH float64
}

// NewBall centres a ball on the field with a random diagonal direction.
func NewBall(f Field, rng *rand.Rand) *Ball {
	return &Ball{
		X:      f.Width/2 - f.BallSize/2,
		Y:      f.Height/2 - f.BallSize/2,
		DirX:   randomDir(rng),
		DirY:   randomDir(rng),
		size:   f.BallSize,
		speed:  f.BallSpeed,
		fieldW: f.Width,
		fieldH: f.Height,
	}
}

// randomDir returns -1 or +1 with equal probability.
func randomDir(rng *rand.Rand) float64 {
	if rng.Intn(2) == 0 {
		return 1
	}
	return -1
}

// Move advances the ball one frame.
func (b *Ball) Move() {
	b.X += b.DirX * b.speed
	b.Y += b.DirY * b.speed
}

// Collide resolves paddle and wall contact and reports whether the ball has
// left the field on the left or right. At most one result is true.
// Paddle contact sets the horizontal direction away from the paddle; it never
// toggles it.
func (b *Ball) Collide(p1, p2 *Paddle) (exitedLeft, exitedRight bool) {
	left, right := p1.Bounds(), p2.Bounds()
	if b.X <= left.Right() && left.SpansY(b.Y) {
		b.DirX = 1
	} else if b.X >= right.X && right.SpansY(b.Y) {
		b.DirX = -1
	}

	if b.Y <= 0 || b.Y >= b.fieldH-b.size {
		b.DirY = -b.DirY
	}

	switch {
	case b.X <= -b.size:
		return true, false
	case b.X >= b.fieldW:
		return false, true
	default:
		return false, false
	}
}

// Draw renders the ball.
func (b *Ball) Draw(dst core.Surface) {
	dst.Rect(b.X, b.Y, b.size, b.size, core.ColorWhite)
}

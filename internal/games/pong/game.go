// Package pong implements a two-player Pong: two paddles on a shared keyboard,
// a ball, a score pair and a paused/playing toggle.
package pong

import (
	"fmt"
	"math/rand"

	"github.com/vovakirdan/pongping/internal/config"
	"github.com/vovakirdan/pongping/internal/core"
)

// Text sizes in world units.
const (
	PromptSize = 44
	ScoreSize  = 15
	ScoreX     = 10
	ScoreY     = 10
	NetWidth   = 2
)

// State is the phase of the game loop.
type State int

const (
	// StatePaused waits for the start key. Initial, and re-entered after every point.
	StatePaused State = iota
	// StatePlaying moves paddles and ball every frame.
	StatePlaying
)

// String returns a human-readable name for the state.
func (s State) String() string {
	switch s {
	case StatePaused:
		return "Paused"
	case StatePlaying:
		return "Playing"
	default:
		return "Unknown"
	}
}

// Game owns both paddles, the ball and the score pair.
type Game struct {
	field   Field
	state   State
	paddle1 *Paddle
	paddle2 *Paddle
	ball    *Ball

	score1 int
	score2 int

	rng   *rand.Rand
	frame int // Frames since Reset
	rally int // Frames since the current rally started
}

// New creates a game for the given configuration.
// Call Reset before the first Step.
func New(cfg config.PongConfig) *Game {
	return &Game{
		field: NewField(cfg),
	}
}

// Field returns the play area description.
func (g *Game) Field() Field {
	return g.field
}

// Reset starts a new session: scores are zeroed, entities recreated and the
// game is paused.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	if runtime.ScreenW > 0 && runtime.ScreenH > 0 {
		g.field.Width = runtime.ScreenW
		g.field.Height = runtime.ScreenH
	}
	g.rng = rand.New(rand.NewSource(runtime.Seed))

	g.score1 = 0
	g.score2 = 0
	g.frame = 0
	g.resetRound()
}

// resetRound recreates paddles and ball and waits for the start key.
func (g *Game) resetRound() {
	g.paddle1 = NewPaddle(core.Player1, g.field)
	g.paddle2 = NewPaddle(core.Player2, g.field)
	g.ball = NewBall(g.field, g.rng)
	g.state = StatePaused
	g.rally = 0
}

// Step advances the game by one frame.
func (g *Game) Step(in core.KeyState) core.StepResult {
	g.frame++
	var result core.StepResult

	switch g.state {
	case StatePaused:
		if in.IsKeyPressed(g.field.Start) {
			g.state = StatePlaying
			result.Started = true
		}

	case StatePlaying:
		g.rally++
		g.paddle1.Control(in)
		g.paddle2.Control(in)

		g.ball.Move()
		exitedLeft, exitedRight := g.ball.Collide(g.paddle1, g.paddle2)

		switch {
		case exitedLeft:
			result.Scored = core.Player2
		case exitedRight:
			result.Scored = core.Player1
		}
		if result.Scored != core.PlayerNone {
			result.Rally = g.rally
			g.award(result.Scored)
			g.resetRound()
		}
	}

	result.State = g.State()
	return result
}

// award adds one point to the given player.
func (g *Game) award(p core.PlayerID) {
	if p == core.Player1 {
		g.score1 += g.field.Point
	} else {
		g.score2 += g.field.Point
	}
}

// Draw renders the current frame. It never changes game state.
func (g *Game) Draw(dst core.Surface) {
	dst.Clear(core.ColorBlack)

	if g.state == StatePaused {
		text := fmt.Sprintf("Press %s to play!", g.field.Start)
		w, h := dst.MeasureText(text, PromptSize)
		dst.Text(text, g.field.Width/2-w/2, g.field.Height/2-h/2, PromptSize, core.ColorWhite)
	}

	g.paddle1.Draw(dst)
	g.paddle2.Draw(dst)
	g.ball.Draw(dst)

	mid := g.field.Width / 2
	dst.Line(mid, 0, mid, g.field.Height, NetWidth, core.ColorWhite)

	dst.Text(fmt.Sprintf("P1: %d, P2: %d", g.score1, g.score2), ScoreX, ScoreY, ScoreSize, core.ColorWhite)
}

// Phase returns the current state of the game loop.
func (g *Game) Phase() State {
	return g.state
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score1: g.score1,
		Score2: g.score2,
		Paused: g.state == StatePaused,
	}
}

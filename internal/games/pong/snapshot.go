package pong

// Snapshot contains the complete mutable state of a game.
// Uses plain values only so snapshots compare with ==.
type Snapshot struct {
	State    State
	Frame    int
	Rally    int
	Paddle1Y float64
	Paddle2Y float64
	BallX    float64
	BallY    float64
	BallDirX float64
	BallDirY float64
	Score1   int
	Score2   int
}

// Snapshot returns the current game state.
func (g *Game) Snapshot() Snapshot {
	return Snapshot{
		State:    g.state,
		Frame:    g.frame,
		Rally:    g.rally,
		Paddle1Y: g.paddle1.Y,
		Paddle2Y: g.paddle2.Y,
		BallX:    g.ball.X,
		BallY:    g.ball.Y,
		BallDirX: g.ball.DirX,
		BallDirY: g.ball.DirY,
		Score1:   g.score1,
		Score2:   g.score2,
	}
}

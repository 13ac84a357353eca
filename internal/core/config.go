package core

// RuntimeConfig contains configuration passed to games at initialization.
// Coordinates are world units (pixels), independent of how a backend displays them.
type RuntimeConfig struct {
	Title    string  // Window title
	ScreenW  float64 // World width
	ScreenH  float64 // World height
	TickRate int     // Frames per second (default 60)
	Seed     int64   // RNG seed for deterministic gameplay
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		Title:    "Pong Ping",
		ScreenW:  640,
		ScreenH:  480,
		TickRate: 60,
		Seed:     0, // 0 means use current time in platform layer
	}
}

// PlayerID identifies one of the two players.
type PlayerID int

const (
	PlayerNone PlayerID = 0
	Player1    PlayerID = 1
	Player2    PlayerID = 2
)

// String returns a short label for the player.
func (p PlayerID) String() string {
	switch p {
	case Player1:
		return "P1"
	case Player2:
		return "P2"
	default:
		return "none"
	}
}

// GameState represents the current state of a game.
// Returned by Game.State() to communicate status to the platform.
type GameState struct {
	Score1 int  // Player 1 score
	Score2 int  // Player 2 score
	Paused bool // Whether the game waits for the start key
}

// StepResult is returned by Game.Step() after each frame.
// Contains the updated game state and the events of that frame.
type StepResult struct {
	State   GameState
	Started bool     // The frame left the paused state
	Scored  PlayerID // Player who won a point this frame, PlayerNone otherwise
	Rally   int      // Frames played in the rally that just ended (only when Scored is set)
}

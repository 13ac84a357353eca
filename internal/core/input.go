package core

import "strings"

// Key is a backend-neutral key name ("w", "s", "up", "down", "space", ...).
// Backends translate their own key events into these names.
type Key string

// Well-known keys used by the default bindings.
const (
	KeyNone  Key = ""
	KeyW     Key = "w"
	KeyS     Key = "s"
	KeyUp    Key = "up"
	KeyDown  Key = "down"
	KeyLeft  Key = "left"
	KeyRight Key = "right"
	KeySpace Key = "space"
	KeyEnter Key = "enter"
)

// ParseKey normalizes a key name from config or a terminal event.
// A literal " " is treated as "space".
func ParseKey(name string) Key {
	if name == " " {
		return KeySpace
	}
	return Key(strings.ToLower(strings.TrimSpace(name)))
}

// namedKeys are the multi-letter key names every backend understands.
var namedKeys = map[Key]bool{
	KeyUp: true, KeyDown: true, KeyLeft: true, KeyRight: true,
	KeySpace: true, KeyEnter: true,
}

// Valid reports whether k is a single printable character or a named key.
func (k Key) Valid() bool {
	if namedKeys[k] {
		return true
	}
	r := []rune(string(k))
	return len(r) == 1 && r[0] > ' '
}

// String returns the key name.
func (k Key) String() string {
	return string(k)
}

// KeyState is the input source a game polls once per frame.
type KeyState interface {
	// IsKeyDown reports whether the key is held this frame (level-triggered).
	IsKeyDown(k Key) bool

	// IsKeyPressed reports whether the key went down this frame (edge-triggered).
	IsKeyPressed(k Key) bool
}

// DefaultHoldFrames is how long a terminal key stays down after its last event.
const DefaultHoldFrames = 8

// Keyboard derives key-down and key-pressed state from discrete key events.
// Terminals deliver only presses and auto-repeats, never releases, so a key is
// considered down while its last event is less than hold frames old. A press
// edge is reported only on the frame a key goes from up to down, so a stream of
// auto-repeats arriving inside the hold window yields a single edge.
//
// The hold window is shorter than a typical auto-repeat delay (250-660ms), so a
// held key drops out between its first event and the first repeat: the paddle
// moves hold frames, stops, then moves steadily, and the first repeat reports a
// second edge. A longer window would remove the gap but make a single tap move
// the paddle for the whole delay.
//
// Press may be called any number of times between frames; Latch must be called
// exactly once per frame before the game polls the keyboard.
type Keyboard struct {
	hold    int
	frame   int
	seen    map[Key]int
	down    map[Key]bool
	pressed map[Key]bool
}

// NewKeyboard creates a keyboard with the given hold window in frames.
// Non-positive values use DefaultHoldFrames.
func NewKeyboard(hold int) *Keyboard {
	if hold <= 0 {
		hold = DefaultHoldFrames
	}
	return &Keyboard{
		hold:    hold,
		seen:    make(map[Key]int),
		down:    make(map[Key]bool),
		pressed: make(map[Key]bool),
	}
}

// Press records a key event for the current frame.
func (k *Keyboard) Press(key Key) {
	if key == KeyNone {
		return
	}
	k.seen[key] = k.frame
}

// Latch computes the down and pressed sets for the current frame and advances
// the frame counter.
func (k *Keyboard) Latch() {
	clear(k.pressed)
	for key, seen := range k.seen {
		down := k.frame-seen < k.hold
		k.pressed[key] = down && !k.down[key]
		k.down[key] = down
		if !down {
			delete(k.seen, key)
			delete(k.down, key)
		}
	}
	k.frame++
}

// Release forgets every held key, e.g. after focus loss.
func (k *Keyboard) Release() {
	clear(k.seen)
	clear(k.down)
	clear(k.pressed)
}

// IsKeyDown implements KeyState.
func (k *Keyboard) IsKeyDown(key Key) bool {
	return k.down[key]
}

// IsKeyPressed implements KeyState.
func (k *Keyboard) IsKeyPressed(key Key) bool {
	return k.pressed[key]
}

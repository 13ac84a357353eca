package pong

import (
	"fmt"

	"github.com/vovakirdan/pongping/internal/config"
	"github.com/vovakirdan/pongping/internal/core"
)

// keys is a scripted KeyState.
type keys struct {
	down    map[core.Key]bool
	pressed map[core.Key]bool
}

func noKeys() keys {
	return keys{}
}

func holding(ks ...core.Key) keys {
	k := keys{down: make(map[core.Key]bool)}
	for _, key := range ks {
		k.down[key] = true
	}
	return k
}

func pressing(ks ...core.Key) keys {
	k := holding(ks...)
	k.pressed = make(map[core.Key]bool)
	for _, key := range ks {
		k.pressed[key] = true
	}
	return k
}

func (k keys) IsKeyDown(key core.Key) bool    { return k.down[key] }
func (k keys) IsKeyPressed(key core.Key) bool { return k.pressed[key] }

// recorder is a Surface that logs every draw call.
type recorder struct {
	ops []string
}

func (r *recorder) Clear(c core.Color) {
	r.ops = append(r.ops, fmt.Sprintf("clear %d", c))
}

func (r *recorder) Rect(x, y, w, h float64, c core.Color) {
	r.ops = append(r.ops, fmt.Sprintf("rect %v,%v %vx%v", x, y, w, h))
}

func (r *recorder) Text(s string, x, y, size float64, c core.Color) {
	r.ops = append(r.ops, fmt.Sprintf("text %q %v,%v %v", s, x, y, size))
}

func (r *recorder) MeasureText(s string, size float64) (float64, float64) {
	return float64(len(s)) * size / 2, size
}

func (r *recorder) Line(x1, y1, x2, y2, thickness float64, c core.Color) {
	r.ops = append(r.ops, fmt.Sprintf("line %v,%v-%v,%v %v", x1, y1, x2, y2, thickness))
}

// newTestGame returns a reset game with the default configuration.
func newTestGame(seed int64) *Game {
	g := New(config.DefaultPongConfig())
	rc := core.DefaultConfig()
	rc.Seed = seed
	g.Reset(rc)
	return g
}

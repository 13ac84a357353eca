//go:build ebiten

package window

import (
	"bytes"
	"context"
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/vovakirdan/pongping/internal/config"
	"github.com/vovakirdan/pongping/internal/core"
	"github.com/vovakirdan/pongping/internal/platform"
	"github.com/vovakirdan/pongping/internal/registry"
)

// BackendID is the registry name of the window backend.
const BackendID = "window"

// Backend plays the game in a native window.
type Backend struct{}

// ID returns the registry name.
func (Backend) ID() string {
	return BackendID
}

// Title returns a short description.
func (Backend) Title() string {
	return "Native window (Ebitengine)"
}

// Run opens the window and blocks until it is closed, Esc is pressed or ctx is done.
func (Backend) Run(ctx context.Context, r *platform.Runner, cfg config.PongConfig) error {
	src, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		return fmt.Errorf("window: cannot load font: %w", err)
	}

	rc := r.Runtime()
	ebiten.SetWindowSize(int(rc.ScreenW), int(rc.ScreenH))
	ebiten.SetWindowTitle(rc.Title)
	if rc.TickRate > 0 {
		ebiten.SetTPS(rc.TickRate)
	}

	app := &app{
		ctx:    ctx,
		runner: r,
		keys:   newKeys(cfg.Controls),
		font:   src,
		width:  int(rc.ScreenW),
		height: int(rc.ScreenH),
	}
	if err := ebiten.RunGame(app); err != nil {
		return fmt.Errorf("window: %w", err)
	}
	return nil
}

// app implements ebiten.Game.
type app struct {
	ctx    context.Context
	runner *platform.Runner
	keys   keys
	font   *text.GoTextFaceSource
	width  int
	height int
}

// Update advances the game by one frame.
func (a *app) Update() error {
	if a.ctx.Err() != nil || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	a.runner.Frame(a.keys)
	return nil
}

// Draw renders the current frame.
func (a *app) Draw(screen *ebiten.Image) {
	a.runner.Draw(&surface{dst: screen, font: a.font})
}

// Layout keeps the logical screen at the play area size; Ebitengine scales it
// to the window.
func (a *app) Layout(int, int) (int, int) {
	return a.width, a.height
}

// keys reads the real keyboard state.
type keys map[core.Key]ebiten.Key

// newKeys resolves every configured key name to an Ebitengine key.
func newKeys(cfg config.PongControls) keys {
	k := make(keys)
	for _, name := range []string{
		cfg.Player1.Up, cfg.Player1.Down,
		cfg.Player2.Up, cfg.Player2.Down,
		cfg.Start,
	} {
		key := core.ParseKey(name)
		if ek, ok := ebitenKey(key); ok {
			k[key] = ek
		}
	}
	return k
}

// IsKeyDown implements core.KeyState.
func (k keys) IsKeyDown(key core.Key) bool {
	ek, ok := k[key]
	return ok && ebiten.IsKeyPressed(ek)
}

// IsKeyPressed implements core.KeyState.
func (k keys) IsKeyPressed(key core.Key) bool {
	ek, ok := k[key]
	return ok && inpututil.IsKeyJustPressed(ek)
}

// namedKeys covers names that differ from Ebitengine's.
var namedKeys = map[core.Key]ebiten.Key{
	core.KeyUp:    ebiten.KeyArrowUp,
	core.KeyDown:  ebiten.KeyArrowDown,
	core.KeyLeft:  ebiten.KeyArrowLeft,
	core.KeyRight: ebiten.KeyArrowRight,
	core.KeySpace: ebiten.KeySpace,
	core.KeyEnter: ebiten.KeyEnter,
}

// ebitenKey maps a game key to an Ebitengine key.
func ebitenKey(k core.Key) (ebiten.Key, bool) {
	if ek, ok := namedKeys[k]; ok {
		return ek, true
	}
	var ek ebiten.Key
	if err := ek.UnmarshalText([]byte(k)); err != nil {
		return 0, false
	}
	return ek, true
}

// surface draws into an Ebitengine image.
type surface struct {
	dst  *ebiten.Image
	font *text.GoTextFaceSource
}

// Clear implements core.Surface.
func (s *surface) Clear(c core.Color) {
	s.dst.Fill(toColor(c))
}

// Rect implements core.Surface.
func (s *surface) Rect(x, y, w, h float64, c core.Color) {
	vector.DrawFilledRect(s.dst, float32(x), float32(y), float32(w), float32(h), toColor(c), false)
}

// Text implements core.Surface.
func (s *surface) Text(str string, x, y, size float64, c core.Color) {
	op := &text.DrawOptions{}
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(toColor(c))
	text.Draw(s.dst, str, s.face(size), op)
}

// MeasureText implements core.Surface.
func (s *surface) MeasureText(str string, size float64) (float64, float64) {
	return text.Measure(str, s.face(size), 0)
}

// Line implements core.Surface.
func (s *surface) Line(x1, y1, x2, y2, thickness float64, c core.Color) {
	vector.StrokeLine(s.dst, float32(x1), float32(y1), float32(x2), float32(y2), float32(thickness), toColor(c), false)
}

func (s *surface) face(size float64) *text.GoTextFace {
	return &text.GoTextFace{Source: s.font, Size: size}
}

// toColor converts a palette colour.
func toColor(c core.Color) color.RGBA {
	r, g, b, a := c.RGBA8()
	return color.RGBA{R: r, G: g, B: b, A: a}
}

func init() {
	registry.Register(BackendID, func() registry.Backend {
		return Backend{}
	})
}

package game

import (
	"image"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/iburimskiy/esp-overlay/internal/config"
	"github.com/iburimskiy/esp-overlay/internal/cue"
	"github.com/iburimskiy/esp-overlay/internal/fonts"
	"github.com/iburimskiy/esp-overlay/internal/geom"
	"github.com/iburimskiy/esp-overlay/internal/scene"
)

// Game drives the overlay scene from ebiten's update/draw loop.
type Game struct {
	cfg    config.Config
	scene  *scene.Scene
	fonts  *fonts.Library
	canvas *screenCanvas
	cue    *cue.Player

	// pointer tracking
	cursor    image.Point
	hasCursor bool

	lastTick time.Time
	lastErr  error
	exported string
}

// New builds the game. player may be nil when the cue is disabled.
func New(cfg config.Config, lib *fonts.Library, player *cue.Player) *Game {
	s := scene.New(float64(cfg.Window.Width), float64(cfg.Window.Height))
	s.Rainbow = cfg.Rainbow.Enabled
	s.Frequency = cfg.Rainbow.Frequency

	return &Game{
		cfg:    cfg,
		scene:  s,
		fonts:  lib,
		canvas: newScreenCanvas(lib),
		cue:    player,
	}
}

// Scene exposes the scene being drawn.
func (g *Game) Scene() *scene.Scene { return g.scene }

func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) || inpututil.IsKeyJustPressed(ebiten.KeyQ) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.scene.ToggleRainbow()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyL) {
		g.scene.ToggleLabels()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyE) {
		if err := g.exportDialog(); err != nil {
			g.lastErr = err
		}
	}

	now := time.Now()
	x, y := ebiten.CursorPosition()
	g.pointer(image.Pt(x, y), now)

	g.tick(now)
	return nil
}

// pointer feeds cursor positions inside the window to the scene as moves.
func (g *Game) pointer(p image.Point, now time.Time) {
	if !p.In(image.Rect(0, 0, g.cfg.Window.Width, g.cfg.Window.Height)) {
		return
	}
	if g.hasCursor && p == g.cursor {
		return
	}
	g.cursor, g.hasCursor = p, true

	if g.scene.PointerMove(geom.V(float64(p.X), float64(p.Y)), now) {
		g.cue.Blip()
	}
}

// tick fires the timer when the configured interval has elapsed.
func (g *Game) tick(now time.Time) {
	if now.Sub(g.lastTick) < g.cfg.Rainbow.Interval {
		return
	}
	g.lastTick = now
	g.scene.Tick(now)
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.canvas.target(screen)
	g.scene.Draw(g.canvas)

	if g.canvas.lastErr != nil {
		g.lastErr = g.canvas.lastErr
		g.canvas.lastErr = nil
	}
	if g.cfg.HUD.Show {
		ebitenutil.DebugPrintAt(screen, g.status(), 12, 12)
	}
}

func (g *Game) status() string {
	status := "Rainbow off - Space to enable"
	if g.scene.Rainbow {
		status = "Rainbow on - Space to disable"
	}
	if !g.scene.LabelsShown() {
		status += " | Labels hidden - L to show"
	}
	if g.scene.Locked() {
		status += " | LOCKED"
	}
	if g.exported != "" {
		status += " | Saved " + g.exported
	}
	if g.lastErr != nil {
		status += " | Error: " + g.lastErr.Error()
	}
	return status
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.cfg.Window.Width, g.cfg.Window.Height
}

// Close releases the audio device.
func (g *Game) Close() {
	g.cue.Close()
}

//go:build ebiten

package app

import (
	"image"
	"image/color"
	"time"

	"psi-bounce/internal/bounce"
	"psi-bounce/internal/core"
	"psi-bounce/internal/render"
	"psi-bounce/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Game adapts the bounce demo to the ebiten.Game interface. ebiten calls
// Update once per tick, which drives exactly one simulation step.
type Game struct {
	demo  *bounce.Demo
	hud   *ui.HUD
	scale *ui.Scale
	ball  *render.BallPainter

	background color.Color
}

// New constructs a Game for the provided demo.
func New(demo *bounce.Demo, hudWidth int) *Game {
	return &Game{
		demo:       demo,
		hud:        ui.NewHUD(demo, hudWidth),
		scale:      ui.NewScale(),
		ball:       render.NewBallPainter(color.RGBA{R: 224, G: 112, B: 36, A: 255}, color.RGBA{R: 30, G: 20, B: 16, A: 255}),
		background: color.RGBA{R: 24, G: 24, B: 28, A: 255},
	}
}

// Update handles input and advances the active run.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	start := inpututil.IsKeyJustPressed(ebiten.KeyEnter) || inpututil.IsKeyJustPressed(ebiten.KeySpace)
	if inpututil.IsKeyJustPressed(ebiten.KeyUp) || inpututil.IsKeyJustPressed(ebiten.KeyRight) {
		g.hud.Adjust(0, 1)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyDown) || inpututil.IsKeyJustPressed(ebiten.KeyLeft) {
		g.hud.Adjust(0, -1)
	}
	if g.hud.Update(g.demo.Size().W) {
		start = true
	}
	g.scale.Update()

	if start {
		g.demo.Start()
	}
	g.demo.Update(time.Now())
	return nil
}

// Draw renders the ball view and the control panel.
func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(g.background)
	size := g.demo.Size()
	view := screen.SubImage(image.Rect(0, 0, size.W, size.H)).(*ebiten.Image)
	geom := g.demo.Geometry()
	g.scale.Draw(view, geom)
	g.ball.Draw(view, g.demo.Frame().Position, geom.BallSize())
	g.hud.Draw(screen, size.W)
}

// Layout resizes the ball view to fill the window left of the panel. A size
// change cancels the active run and puts the ball back on the floor.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	w := outsideWidth - g.hud.Width()
	if w < 1 {
		w = 1
	}
	h := outsideHeight
	if h < 1 {
		h = 1
	}
	if size := (core.Size{W: w, H: h}); size != g.demo.Size() {
		g.demo.Resize(size)
	}
	return w + g.hud.Width(), h
}

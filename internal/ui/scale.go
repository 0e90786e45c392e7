//go:build ebiten

package ui

import (
	"image/color"

	"psi-bounce/internal/bounce"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"
)

// Scale draws the height ruler along the left edge of the ball view.
type Scale struct {
	visible bool
}

// NewScale returns a visible ruler.
func NewScale() *Scale { return &Scale{visible: true} }

// Update toggles the ruler with the H key.
func (s *Scale) Update() {
	if inpututil.IsKeyJustPressed(ebiten.KeyH) {
		s.visible = !s.visible
	}
}

// Draw paints the ground line and, when visible, the height marks.
func (s *Scale) Draw(view *ebiten.Image, geom bounce.Geometry) {
	w := float32(view.Bounds().Dx())
	ground := float32(geom.ViewHeight) - 1
	vector.StrokeLine(view, 0, ground, w, ground, 2, color.RGBA{R: 90, G: 90, B: 100, A: 255}, true)
	if !s.visible {
		return
	}
	face := basicfont.Face7x13
	tick := color.RGBA{R: 120, G: 120, B: 130, A: 255}
	for _, m := range bounce.HeightMarks(geom) {
		y := float32(m.Y)
		vector.StrokeLine(view, 0, y, 10, y, 1, tick, true)
		ty := int(m.Y) - 2
		if ty < 12 {
			ty = 12
		}
		text.Draw(view, m.Label, face, 14, ty, tick)
	}
}

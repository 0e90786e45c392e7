//go:build ebiten

package render

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
)

// BallPainter keeps a ball sprite sized for the current view.
type BallPainter struct {
	diameter int
	img      *ebiten.Image
	body     color.Color
	seam     color.Color
}

// NewBallPainter returns a painter using the given body and seam colors.
func NewBallPainter(body, seam color.Color) *BallPainter {
	return &BallPainter{body: body, seam: seam}
}

// Draw paints the ball with its top edge at y, centred horizontally on dst.
func (bp *BallPainter) Draw(dst *ebiten.Image, y float64, diameter float64) {
	d := int(diameter + 0.5)
	if d <= 0 {
		return
	}
	if bp.img == nil || bp.diameter != d {
		buf := make([]byte, 4*d*d)
		fillBallRGBA(buf, d, bp.body, bp.seam)
		if bp.img != nil {
			bp.img.Dispose()
		}
		bp.img = ebiten.NewImage(d, d)
		bp.img.WritePixels(buf)
		bp.diameter = d
	}

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(float64(dst.Bounds().Dx()-d)/2, y)
	dst.DrawImage(bp.img, op)
}

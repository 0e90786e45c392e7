package render

import (
	"image/color"
	"testing"
)

func TestFillBallRGBA(t *testing.T) {
	const d = 24
	buf := make([]byte, 4*d*d)
	body := color.RGBA{R: 230, G: 110, B: 30, A: 255}
	seam := color.RGBA{R: 20, G: 20, B: 20, A: 255}
	fillBallRGBA(buf, d, body, seam)

	pixel := func(x, y int) [4]byte {
		base := (y*d + x) * 4
		return [4]byte{buf[base], buf[base+1], buf[base+2], buf[base+3]}
	}

	if got := pixel(0, 0); got != [4]byte{} {
		t.Fatalf("corner should be transparent, got %v", got)
	}
	if got := pixel(d/2, d/2); got != [4]byte{20, 20, 20, 255} {
		t.Fatalf("centre should carry the seam color, got %v", got)
	}
	if got := pixel(d/4, d/4); got != [4]byte{230, 110, 30, 255} {
		t.Fatalf("quadrant should carry the body color, got %v", got)
	}
}

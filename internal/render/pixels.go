package render

import "image/color"

// fillBallRGBA rasterizes a ball of the given diameter into buf as RGBA
// pixels. Pixels outside the disc are transparent and a band of seam color
// runs through the horizontal and vertical centre lines.
func fillBallRGBA(buf []byte, diameter int, body, seam color.Color) {
	rBody, gBody, bBody, aBody := body.RGBA()
	rSeam, gSeam, bSeam, aSeam := seam.RGBA()

	r := float64(diameter) / 2
	band := float64(diameter) / 24
	if band < 0.5 {
		band = 0.5
	}
	for y := 0; y < diameter; y++ {
		for x := 0; x < diameter; x++ {
			base := (y*diameter + x) * 4
			dx := float64(x) + 0.5 - r
			dy := float64(y) + 0.5 - r
			if dx*dx+dy*dy > r*r {
				buf[base+0] = 0
				buf[base+1] = 0
				buf[base+2] = 0
				buf[base+3] = 0
				continue
			}
			if abs(dx) <= band || abs(dy) <= band {
				buf[base+0] = uint8(rSeam >> 8)
				buf[base+1] = uint8(gSeam >> 8)
				buf[base+2] = uint8(bSeam >> 8)
				buf[base+3] = uint8(aSeam >> 8)
				continue
			}
			buf[base+0] = uint8(rBody >> 8)
			buf[base+1] = uint8(gBody >> 8)
			buf[base+2] = uint8(bBody >> 8)
			buf[base+3] = uint8(aBody >> 8)
		}
	}
}

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}

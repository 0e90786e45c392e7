package bounce

import "psi-bounce/internal/core"

// Geometry maps the scene in meters onto screen units. Positions are the top
// edge of the ball and grow downwards.
type Geometry struct {
	ViewHeight     float64
	PixelsPerMeter float64
	BallDiameter   float64
	DropHeight     float64
}

// GeometryFor derives the scene scale for a view so that p.ViewMeters fit
// vertically.
func GeometryFor(size core.Size, p Physics) Geometry {
	h := float64(size.H)
	ppm := 0.0
	if p.ViewMeters > 0 {
		ppm = h / p.ViewMeters
	}
	return Geometry{
		ViewHeight:     h,
		PixelsPerMeter: ppm,
		BallDiameter:   p.BallDiameter,
		DropHeight:     p.DropHeight,
	}
}

// Floor is the ball position when it rests on the ground.
func (g Geometry) Floor() float64 {
	return g.ViewHeight - g.BallDiameter*g.PixelsPerMeter
}

// DropStart is the position a run releases the ball from.
func (g Geometry) DropStart() float64 {
	return g.Floor() - g.DropHeight*g.PixelsPerMeter
}

// BallSize is the ball diameter in screen units.
func (g Geometry) BallSize() float64 {
	return g.BallDiameter * g.PixelsPerMeter
}

package core

// Size describes the dimensions of the display surface in screen units.
type Size struct {
	W int
	H int
}

// Frame is the snapshot handed to the renderer after every tick.
type Frame struct {
	Position float64
}

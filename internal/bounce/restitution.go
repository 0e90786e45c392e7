package bounce

import "math"

const (
	// PressureMin is the lowest pressure the control offers.
	PressureMin = 2.0
	// PressureMax is the highest pressure the control offers.
	PressureMax = 8.5
)

var (
	minRestitution = math.Sqrt(0.15)
	maxRestitution = math.Sqrt(0.7)
)

// Restitution maps a pressure reading to a coefficient of restitution by
// interpolating the square roots of the low and high height-retention ratios.
// Pressures outside [PressureMin, PressureMax] extrapolate along the same line;
// keeping the input in range is the caller's job.
func Restitution(pressure float64) float64 {
	t := (pressure - PressureMin) / (PressureMax - PressureMin)
	return minRestitution + t*(maxRestitution-minRestitution)
}

package bounce

import "strconv"

var scaleMeters = []float64{2, 1.5, 1, 0.5, 0}

// Mark is a height-scale label and the screen row it sits on.
type Mark struct {
	Label string
	Y     float64
}

// HeightMarks returns the height scale for geom, measured from the ground.
func HeightMarks(geom Geometry) []Mark {
	marks := make([]Mark, len(scaleMeters))
	for i, m := range scaleMeters {
		marks[i] = Mark{
			Label: strconv.FormatFloat(m, 'f', -1, 64) + "m",
			Y:     geom.ViewHeight - m*geom.PixelsPerMeter,
		}
	}
	return marks
}

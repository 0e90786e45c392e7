package bounce

import "fmt"

// Scoreboard holds the labeled bounce-height slots shown next to the view.
type Scoreboard struct {
	heights []float64
	filled  []bool
}

// NewScoreboard returns a scoreboard with the given number of slots, all
// showing the placeholder.
func NewScoreboard(slots int) *Scoreboard {
	if slots < 0 {
		slots = 0
	}
	return &Scoreboard{heights: make([]float64, slots), filled: make([]bool, slots)}
}

// Slots returns the number of slots.
func (s *Scoreboard) Slots() int { return len(s.heights) }

// Reset returns every slot to the placeholder.
func (s *Scoreboard) Reset() {
	for i := range s.filled {
		s.filled[i] = false
		s.heights[i] = 0
	}
}

// Record stores a height in meters for a 1-based bounce index. Indices without
// a slot are ignored.
func (s *Scoreboard) Record(index int, height float64) bool {
	i := index - 1
	if i < 0 || i >= len(s.heights) {
		return false
	}
	s.heights[i] = height
	s.filled[i] = true
	return true
}

// Height returns the recorded height for a 1-based index.
func (s *Scoreboard) Height(index int) (float64, bool) {
	i := index - 1
	if i < 0 || i >= len(s.heights) || !s.filled[i] {
		return 0, false
	}
	return s.heights[i], true
}

// Lines renders each slot as "n: 0.00m", or "n: —" when empty.
func (s *Scoreboard) Lines() []string {
	lines := make([]string, len(s.heights))
	for i := range s.heights {
		if !s.filled[i] {
			lines[i] = fmt.Sprintf("%d: —", i+1)
			continue
		}
		lines[i] = fmt.Sprintf("%d: %.2fm", i+1, s.heights[i])
	}
	return lines
}

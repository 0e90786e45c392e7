//go:build !ebiten

package ui

// HUD is a no-op placeholder for headless builds.
type HUD struct{}

// NewHUD returns nil in the headless build.
func NewHUD(any, int) *HUD { return nil }

// Width is zero in the headless build.
func (h *HUD) Width() int { return 0 }

// Update never reports a start press in the headless build.
func (h *HUD) Update(int) bool { return false }

// Adjust is a no-op in the headless build.
func (h *HUD) Adjust(int, int) {}

// Draw is a no-op in the headless build.
func (h *HUD) Draw(any, int) {}

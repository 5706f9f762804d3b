//go:build !ebiten

package ui

import "robviz/internal/rob"

// HUD is a no-op placeholder for headless builds.
type HUD struct{}

// NewHUD returns nil in the headless build.
func NewHUD(*rob.Engine, int, int) *HUD { return nil }

// SetOffset is a no-op in the headless build.
func (h *HUD) SetOffset(int) {}

// Observe is a no-op in the headless build.
func (h *HUD) Observe(rob.Event) {}

// Clear is a no-op in the headless build.
func (h *HUD) Clear() {}

// Draw is a no-op in the headless build.
func (h *HUD) Draw(any, bool) {}

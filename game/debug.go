package game

// DebugState holds global debug flags that persist across game resets
type DebugState struct {
	ShowProbes bool // Draw the collision probes of the last tick
	ShowHUD    bool // Draw tick counter and per-shape kinematics
}

// Global debug state instance (persists across game resets)
var globalDebugState = &DebugState{
	ShowProbes: true,
	ShowHUD:    false,
}

// GetDebugState returns the global debug state
func GetDebugState() *DebugState {
	return globalDebugState
}

package constants

import "time"

// Arena geometry
const (
	DefaultArenaWidth  = 12
	DefaultArenaHeight = 20
)

// Timing
const (
	// DefaultGravityInterval is the automatic drop period.
	DefaultGravityInterval = 1000 * time.Millisecond

	// FrameUpdateInterval is the render/tick loop period (~60fps).
	FrameUpdateInterval = 16 * time.Millisecond
)

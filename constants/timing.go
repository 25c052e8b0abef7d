package constants

import "time"

// Loop timing
const (
	// FrameInterval drives the simulation and render pass (~60 FPS)
	FrameInterval = 16 * time.Millisecond

	// CountdownInterval drives the attempt timer
	CountdownInterval = time.Second

	// KeyHoldWindow keeps a direction held after its last press or auto-repeat
	// Terminals report presses but not releases
	KeyHoldWindow = 180 * time.Millisecond

	// EventChannelSize buffers terminal events between poller and loop
	EventChannelSize = 256

	// NoticeLifetime is how long HUD notices stay visible
	NoticeLifetime = 3 * time.Second

	// MaxNotices caps the HUD notice log
	MaxNotices = 4

	// DefaultAdDuration is how long the stand-in rewarded ad runs
	DefaultAdDuration = 3 * time.Second

	// FlushTimeout bounds the XP sink call on exit
	FlushTimeout = 5 * time.Second
)

// Event ring
const (
	// EventQueueSize is the fixed capacity of the event ring buffer
	EventQueueSize = 256

	// EventBufferMask is the bitmask for fast modulo operations (256 - 1)
	EventBufferMask = EventQueueSize - 1
)

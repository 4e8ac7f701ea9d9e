package parameter

import "time"

// Frame Loop Timing
const (
	// FrameUpdateInterval is the rendering frame rate interval (~60 FPS)
	// Each frame advances every airborne plane by one path point
	FrameUpdateInterval = 16 * time.Millisecond

	// MinFrameInterval rejects configured intervals that would spin the loop
	MinFrameInterval = 4 * time.Millisecond

	// EventQueueSize is the buffered capacity between the event poller and the frame loop
	EventQueueSize = 100

	// FPSSmoothing is the weight of the newest frame in the exponential fps average
	FPSSmoothing = 0.1
)

// Session Limits
const (
	// MaxFlights caps retained path+plane pairs, oldest evicted first (0 = unlimited)
	MaxFlights = 0
)

package parameter

// Path processing pipeline defaults
// Values are empirically chosen; only the algorithm shape is load-bearing
const (
	// SupersampleStep is the interpolation parameter step per raw segment
	// 0.05 emits 20 samples per segment, t=1 excluded to avoid duplicates across segments
	SupersampleStep = 0.05

	// SimplifyThreshold is the minimum distance (surface units) a point must exceed
	// from the last retained point to be kept
	SimplifyThreshold = 2.0

	// SmoothingPasses is the number of endpoint-pinned neighbour averaging rounds
	// More passes round corners further; interior points converge toward a smooth curve
	SmoothingPasses = 15
)

package parameter

// Plane glyph geometry and palette
const (
	// PlaneSize is the glyph extent in surface units (half-block pixels)
	PlaneSize = 8.0

	// PlaneLeftColor fills the left wing
	PlaneLeftColor = "#000000"

	// PlaneRightColor fills the right wing
	PlaneRightColor = "#000000"

	// PlaneOutlineColor strokes both wings
	PlaneOutlineColor = "#000000"

	// PlaneLoop restarts a plane from the path start once it arrives
	PlaneLoop = false
)

// Wing shape ratios relative to PlaneSize, glyph authored with "up" as forward
const (
	WingTopRatio    = -0.5
	WingBottomRatio = 0.3
	WingSpanRatio   = 0.5
)

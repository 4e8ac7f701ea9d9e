package parameter

// Surface geometry
const (
	// CellWidth is the horizontal surface units covered by one terminal cell
	CellWidth = 1.0

	// CellHeight is the vertical surface units covered by one terminal cell
	// Half-block rendering packs two pixels per cell row
	CellHeight = 2.0

	// SupersampleScale is the raster resolution multiplier before downsampling to cells
	SupersampleScale = 2

	// BottomMargin reserves the status bar row
	BottomMargin = 1
)

// Canvas palette
const (
	// BackgroundColor clears the surface every frame
	BackgroundColor = "#ffffff"

	// CaptureColor strokes the path currently being drawn
	CaptureColor = "#000000"

	// TraceColor strokes finished paths as a faint trace
	TraceColor = "#d3d3d3"

	// LineWidth is the stroke width for paths and outlines in surface units
	LineWidth = 1.0
)

// Status Bar
const (
	// ModeTextDraw is shown while planes advance
	ModeTextDraw = " DRAW "

	// ModeTextPaused is shown while advancement is frozen
	ModeTextPaused = " PAUSED "

	// AudioStr marks enabled sound in the status bar
	AudioStr = "♫ "

	// StatusBarBackground is the status row background colour
	StatusBarBackground = "#202020"

	// StatusBarForeground is the status row text colour
	StatusBarForeground = "#e0e0e0"
)

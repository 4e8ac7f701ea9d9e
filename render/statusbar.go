package render

import (
	"fmt"
	"strings"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"

	"github.com/lixenwraith/contrail/parameter"
	"github.com/lixenwraith/contrail/status"
)

// StatusLine formats the left and right halves of the status bar
func StatusLine(snap status.Snapshot) (left, right string) {
	mode := parameter.ModeTextDraw
	if snap.Paused {
		mode = parameter.ModeTextPaused
	}
	left = fmt.Sprintf("%s planes %d/%d  paths %d", mode, snap.Airborne, snap.Planes, snap.Paths)
	if snap.CapturePoints > 0 {
		left += fmt.Sprintf("  drawing %d", snap.CapturePoints)
	}

	var b strings.Builder
	if !snap.Muted {
		b.WriteString(parameter.AudioStr)
	}
	fmt.Fprintf(&b, "%3.0f fps ", snap.FPS)
	return left, b.String()
}

// drawStatusBar fills row y with the status bar
// The right half is dropped when both halves do not fit
func drawStatusBar(screen tcell.Screen, y, width int, left, right string, style tcell.Style) {
	for x := 0; x < width; x++ {
		screen.SetContent(x, y, ' ', nil, style)
	}

	left = runewidth.Truncate(left, width, "…")
	leftW := drawText(screen, 0, y, left, style)

	rightW := runewidth.StringWidth(right)
	if leftW+rightW < width {
		drawText(screen, width-rightW, y, right, style)
	}
}

// drawText writes s from (x, y) and returns the columns used
func drawText(screen tcell.Screen, x, y int, s string, style tcell.Style) int {
	start := x
	for _, r := range s {
		w := runewidth.RuneWidth(r)
		if w == 0 {
			continue
		}
		screen.SetContent(x, y, r, nil, style)
		x += w
	}
	return x - start
}

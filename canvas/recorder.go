package canvas

import (
	"image/color"

	"honnef.co/go/curve"
)

// OpKind identifies a recorded Surface call
type OpKind uint8

const (
	OpClearRect OpKind = iota
	OpBeginPath
	OpMoveTo
	OpLineTo
	OpClosePath
	OpSetFill
	OpSetStroke
	OpSetLineWidth
	OpFill
	OpStroke
	OpSave
	OpRestore
	OpTranslate
	OpRotate
)

var opNames = [...]string{
	OpClearRect:    "ClearRect",
	OpBeginPath:    "BeginPath",
	OpMoveTo:       "MoveTo",
	OpLineTo:       "LineTo",
	OpClosePath:    "ClosePath",
	OpSetFill:      "SetFillColor",
	OpSetStroke:    "SetStrokeColor",
	OpSetLineWidth: "SetLineWidth",
	OpFill:         "Fill",
	OpStroke:       "Stroke",
	OpSave:         "Save",
	OpRestore:      "Restore",
	OpTranslate:    "Translate",
	OpRotate:       "Rotate",
}

func (k OpKind) String() string {
	if int(k) < len(opNames) {
		return opNames[k]
	}
	return "Unknown"
}

// Op is one recorded call with its user-space arguments
type Op struct {
	Kind  OpKind
	Args  []float64
	Color color.Color
}

// Shape is a painted path with its points already mapped to device space
type Shape struct {
	Kind      OpKind // OpFill or OpStroke
	Color     color.Color
	LineWidth float64
	Points    []curve.Point
	Closed    bool
}

// Recorder is a Surface that records calls and resolves transforms
// Used by tests to assert on draw order and device-space geometry
type Recorder struct {
	width, height float64

	Ops    []Op
	Shapes []Shape

	matrix    curve.Affine
	stack     []curve.Affine
	path      []curve.Point
	closed    bool
	fill      color.Color
	stroke    color.Color
	lineWidth float64
}

// NewRecorder creates a recorder reporting the given logical size
func NewRecorder(width, height float64) *Recorder {
	return &Recorder{
		width:     width,
		height:    height,
		matrix:    curve.Identity,
		fill:      color.Black,
		stroke:    color.Black,
		lineWidth: 1,
	}
}

// Reset forgets recorded calls and state
func (r *Recorder) Reset() {
	*r = *NewRecorder(r.width, r.height)
}

// SetSize changes the reported logical size
func (r *Recorder) SetSize(width, height float64) {
	r.width, r.height = width, height
}

// Count returns how many calls of kind were recorded
func (r *Recorder) Count(kind OpKind) int {
	n := 0
	for _, op := range r.Ops {
		if op.Kind == kind {
			n++
		}
	}
	return n
}

// Kinds returns the recorded call sequence
func (r *Recorder) Kinds() []OpKind {
	kinds := make([]OpKind, len(r.Ops))
	for i, op := range r.Ops {
		kinds[i] = op.Kind
	}
	return kinds
}

// ShapesOf returns painted shapes of the given kind in paint order
func (r *Recorder) ShapesOf(kind OpKind) []Shape {
	var out []Shape
	for _, s := range r.Shapes {
		if s.Kind == kind {
			out = append(out, s)
		}
	}
	return out
}

// Depth returns the number of unmatched Save calls
func (r *Recorder) Depth() int {
	return len(r.stack)
}

// Transform returns the current user-to-device transform
func (r *Recorder) Transform() curve.Affine {
	return r.matrix
}

func (r *Recorder) record(kind OpKind, c color.Color, args ...float64) {
	r.Ops = append(r.Ops, Op{Kind: kind, Args: args, Color: c})
}

func (r *Recorder) paint(kind OpKind, c color.Color) {
	pts := make([]curve.Point, len(r.path))
	copy(pts, r.path)
	r.Shapes = append(r.Shapes, Shape{
		Kind:      kind,
		Color:     c,
		LineWidth: r.lineWidth,
		Points:    pts,
		Closed:    r.closed,
	})
}

func (r *Recorder) Size() (float64, float64) {
	return r.width, r.height
}

func (r *Recorder) ClearRect(x, y, w, h float64) {
	r.record(OpClearRect, nil, x, y, w, h)
}

func (r *Recorder) BeginPath() {
	r.record(OpBeginPath, nil)
	r.path = r.path[:0]
	r.closed = false
}

func (r *Recorder) MoveTo(x, y float64) {
	r.record(OpMoveTo, nil, x, y)
	r.path = append(r.path, curve.Pt(x, y).Transform(r.matrix))
}

func (r *Recorder) LineTo(x, y float64) {
	r.record(OpLineTo, nil, x, y)
	r.path = append(r.path, curve.Pt(x, y).Transform(r.matrix))
}

func (r *Recorder) ClosePath() {
	r.record(OpClosePath, nil)
	r.closed = true
}

func (r *Recorder) SetFillColor(c color.Color) {
	r.record(OpSetFill, c)
	r.fill = c
}

func (r *Recorder) SetStrokeColor(c color.Color) {
	r.record(OpSetStroke, c)
	r.stroke = c
}

func (r *Recorder) SetLineWidth(w float64) {
	r.record(OpSetLineWidth, nil, w)
	r.lineWidth = w
}

func (r *Recorder) Fill() error {
	r.record(OpFill, r.fill)
	r.paint(OpFill, r.fill)
	return nil
}

func (r *Recorder) Stroke() error {
	r.record(OpStroke, r.stroke)
	r.paint(OpStroke, r.stroke)
	return nil
}

func (r *Recorder) Save() {
	r.record(OpSave, nil)
	r.stack = append(r.stack, r.matrix)
}

func (r *Recorder) Restore() {
	r.record(OpRestore, nil)
	if len(r.stack) == 0 {
		return
	}
	r.matrix = r.stack[len(r.stack)-1]
	r.stack = r.stack[:len(r.stack)-1]
}

func (r *Recorder) Translate(x, y float64) {
	r.record(OpTranslate, nil, x, y)
	r.matrix = r.matrix.PreTranslate(curve.Vec(x, y))
}

func (r *Recorder) Rotate(rad float64) {
	r.record(OpRotate, nil, rad)
	r.matrix = r.matrix.PreRotate(rad)
}

package trail

import (
	"math"

	"github.com/pkg/errors"

	"github.com/lixenwraith/contrail/parameter"
)

// ErrInvalidParams is returned by Params.Validate
var ErrInvalidParams = errors.New("invalid path parameters")

// stepEpsilon absorbs float error in i*step so that t=1 is never emitted
const stepEpsilon = 1e-9

// Params are the pipeline tunables
type Params struct {
	// Step is the supersampling parameter increment, in (0, 1]
	Step float64
	// Threshold is the simplification spacing, a point survives only if strictly farther
	Threshold float64
	// Passes is the number of smoothing rounds
	Passes int
}

// DefaultParams returns the parameter package defaults
func DefaultParams() Params {
	return Params{
		Step:      parameter.SupersampleStep,
		Threshold: parameter.SimplifyThreshold,
		Passes:    parameter.SmoothingPasses,
	}
}

// Validate rejects parameters the pipeline cannot honour
func (p Params) Validate() error {
	switch {
	case math.IsNaN(p.Step) || p.Step <= 0 || p.Step > 1:
		return errors.Wrapf(ErrInvalidParams, "step %v outside (0, 1]", p.Step)
	case math.IsNaN(p.Threshold) || math.IsInf(p.Threshold, 0) || p.Threshold < 0:
		return errors.Wrapf(ErrInvalidParams, "threshold %v must be finite and >= 0", p.Threshold)
	case p.Passes < 0:
		return errors.Wrapf(ErrInvalidParams, "passes %d must be >= 0", p.Passes)
	}
	return nil
}

// SamplesPerSegment returns how many points Supersample emits per raw segment
func (p Params) SamplesPerSegment() int {
	n := 0
	for float64(n)*p.Step < 1-stepEpsilon {
		n++
	}
	return n
}

// Process runs sanitize, supersample, simplify and smooth in that order
// Pure and deterministic; fewer than two usable points yield an empty path
func Process(raw RawPath, p Params) ProcessedPath {
	pts := Sanitize(raw)
	pts = Supersample(pts, p.Step)
	pts = Simplify(pts, p.Threshold)
	pts = Smooth(pts, p.Passes)
	return ProcessedPath{pts: pts}
}

// Sanitize drops points with NaN or infinite coordinates
// Returns the input slice unchanged when every point is finite
func Sanitize(raw []Point) []Point {
	for i, pt := range raw {
		if Finite(pt) {
			continue
		}
		out := make([]Point, i, len(raw)-1)
		copy(out, raw[:i])
		for _, rest := range raw[i+1:] {
			if Finite(rest) {
				out = append(out, rest)
			}
		}
		return out
	}
	return raw
}

// Supersample interpolates each consecutive pair at t = 0, step, 2·step, ... < 1
// Parameters are computed as i·step rather than accumulated to keep the count exact
func Supersample(pts []Point, step float64) []Point {
	if len(pts) < 2 || !(step > 0) {
		return nil
	}

	perSegment := Params{Step: step}.SamplesPerSegment()
	out := make([]Point, 0, perSegment*(len(pts)-1))
	for i := 1; i < len(pts); i++ {
		a, b := pts[i-1], pts[i]
		for s := 0; s < perSegment; s++ {
			out = append(out, a.Lerp(b, float64(s)*step))
		}
	}
	return out
}

// Simplify keeps the first point and every later point strictly farther than
// threshold from the last kept one
func Simplify(pts []Point, threshold float64) []Point {
	if len(pts) == 0 {
		return nil
	}

	out := make([]Point, 1, len(pts))
	out[0] = pts[0]
	for _, pt := range pts[1:] {
		if out[len(out)-1].Distance(pt) > threshold {
			out = append(out, pt)
		}
	}
	return out
}

// Smooth runs passes rounds of endpoint-pinned averaging
// Each interior point becomes the midpoint of its neighbours from the previous round
func Smooth(pts []Point, passes int) []Point {
	if len(pts) == 0 {
		return nil
	}

	cur := make([]Point, len(pts))
	copy(cur, pts)
	if len(cur) < 3 || passes <= 0 {
		return cur
	}

	next := make([]Point, len(cur))
	for range passes {
		next[0] = cur[0]
		for i := 1; i < len(cur)-1; i++ {
			next[i] = cur[i-1].Midpoint(cur[i+1])
		}
		next[len(cur)-1] = cur[len(cur)-1]
		cur, next = next, cur
	}
	return cur
}

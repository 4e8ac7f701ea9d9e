package status

import "sync/atomic"

// Metric keys written by the frame loop and the session
const (
	KeyFrames        = "frames"
	KeyFPS           = "fps"
	KeyFrameMillis   = "frame_ms"
	KeyPlanes        = "planes"
	KeyAirborne      = "airborne"
	KeyPaths         = "paths"
	KeyCapturePoints = "capture_points"
	KeyPaused        = "paused"
	KeyMuted         = "muted"
)

// Registry is the metrics facade shared by the loop, the session and the status bar
// Writers cache the pointers they update; the status bar reads them once per frame
type Registry struct {
	Bools  *MetricMap[atomic.Bool]
	Ints   *MetricMap[atomic.Int64]
	Floats *MetricMap[AtomicFloat]
}

// NewRegistry creates an empty Registry
func NewRegistry() *Registry {
	return &Registry{
		Bools:  NewMetricMap[atomic.Bool](),
		Ints:   NewMetricMap[atomic.Int64](),
		Floats: NewMetricMap[AtomicFloat](),
	}
}

// Snapshot is a point-in-time copy of the well-known metrics
type Snapshot struct {
	Frames        int64
	FPS           float64
	FrameMillis   float64
	Planes        int64
	Airborne      int64
	Paths         int64
	CapturePoints int64
	Paused        bool
	Muted         bool
}

// Snapshot reads the well-known metrics; missing ones read as zero
func (r *Registry) Snapshot() Snapshot {
	return Snapshot{
		Frames:        r.Ints.Get(KeyFrames).Load(),
		FPS:           r.Floats.Get(KeyFPS).Get(),
		FrameMillis:   r.Floats.Get(KeyFrameMillis).Get(),
		Planes:        r.Ints.Get(KeyPlanes).Load(),
		Airborne:      r.Ints.Get(KeyAirborne).Load(),
		Paths:         r.Ints.Get(KeyPaths).Load(),
		CapturePoints: r.Ints.Get(KeyCapturePoints).Load(),
		Paused:        r.Bools.Get(KeyPaused).Load(),
		Muted:         r.Bools.Get(KeyMuted).Load(),
	}
}

package engine

import (
	"time"

	"github.com/lixenwraith/contrail/parameter"
)

// Scheduler delivers "draw the next frame" requests
type Scheduler interface {
	C() <-chan time.Time
	Stop()
}

// TickerScheduler fires at a fixed interval
type TickerScheduler struct {
	ticker *time.Ticker
}

// NewTickerScheduler creates a ticker scheduler
// Intervals below parameter.MinFrameInterval are raised to it
func NewTickerScheduler(interval time.Duration) *TickerScheduler {
	interval = max(interval, parameter.MinFrameInterval)
	return &TickerScheduler{ticker: time.NewTicker(interval)}
}

// C returns the tick channel
func (s *TickerScheduler) C() <-chan time.Time {
	return s.ticker.C
}

// Stop releases the ticker
func (s *TickerScheduler) Stop() {
	s.ticker.Stop()
}

// ManualScheduler fires only when told to
// Fire blocks until the loop has taken the tick
type ManualScheduler struct {
	ch chan time.Time
}

// NewManualScheduler creates an idle manual scheduler
func NewManualScheduler() *ManualScheduler {
	return &ManualScheduler{ch: make(chan time.Time)}
}

// C returns the tick channel
func (s *ManualScheduler) C() <-chan time.Time {
	return s.ch
}

// Fire requests one frame stamped t
func (s *ManualScheduler) Fire(t time.Time) {
	s.ch <- t
}

// Stop is a no-op; pending Fire calls keep blocking
func (s *ManualScheduler) Stop() {}

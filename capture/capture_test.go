package capture

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/lixenwraith/contrail/trail"
)

func TestCaptureLifecycle(t *testing.T) {
	c := New()
	if c.Active() {
		t.Fatal("new capture is active")
	}

	c.Begin(trail.Pt(1, 1))
	c.Extend(trail.Pt(2, 2))
	c.Extend(trail.Pt(2, 2))
	c.Extend(trail.Pt(3, 5))
	if !c.Active() || c.Len() != 4 {
		t.Fatalf("active=%v len=%d, want true and 4", c.Active(), c.Len())
	}

	raw, ok := c.End()
	if !ok {
		t.Fatal("End() ok = false, want true")
	}
	want := trail.RawPath{trail.Pt(1, 1), trail.Pt(2, 2), trail.Pt(2, 2), trail.Pt(3, 5)}
	if d := cmp.Diff(want, raw); d != "" {
		t.Errorf("End() mismatch (-want +got):\n%s", d)
	}
	if c.Active() || c.Len() != 0 {
		t.Errorf("after End: active=%v len=%d", c.Active(), c.Len())
	}

	// The handed-off path must not alias the reused buffer
	c.Begin(trail.Pt(9, 9))
	if raw[0] != trail.Pt(1, 1) {
		t.Errorf("handed-off path mutated by next stroke: %v", raw[0])
	}
}

func TestCaptureRequiresTwoPoints(t *testing.T) {
	c := New()
	c.Begin(trail.Pt(1, 1))
	if raw, ok := c.End(); ok || raw != nil {
		t.Errorf("single point End() = %v, %v; want nil, false", raw, ok)
	}

	if _, ok := c.End(); ok {
		t.Error("End() without Begin reported ok")
	}
}

func TestExtendIgnoredWhenIdle(t *testing.T) {
	c := New()
	c.Extend(trail.Pt(1, 1))
	if c.Len() != 0 {
		t.Errorf("Len() = %d after idle Extend, want 0", c.Len())
	}
}

func TestNonFinitePointsDropped(t *testing.T) {
	c := New()
	c.Begin(trail.Pt(math.NaN(), 0))
	c.Extend(trail.Pt(0, 0))
	c.Extend(trail.Pt(math.Inf(1), 1))
	c.Extend(trail.Pt(4, 4))
	raw, ok := c.End()
	if !ok || len(raw) != 2 {
		t.Fatalf("End() = %v, %v; want two finite points", raw, ok)
	}
}

func TestCancel(t *testing.T) {
	c := New()
	c.Begin(trail.Pt(0, 0))
	c.Extend(trail.Pt(1, 1))
	c.Cancel()
	if c.Active() || c.Len() != 0 {
		t.Errorf("after Cancel: active=%v len=%d", c.Active(), c.Len())
	}
	if _, ok := c.End(); ok {
		t.Error("End() after Cancel reported ok")
	}
}

package windmill

import (
	"testing"
	"time"

	"github.com/chewxy/math32"

	"github.com/Faultbox/windmill/pkg/math"
)

func TestNewSceneLayout(t *testing.T) {
	centers := []math.Vec3{{}, {X: 2}}
	s := NewScene(centers, DefaultDistantRate)

	if got := s.VaneCount(); got != 6 {
		t.Fatalf("VaneCount() = %d, want 6", got)
	}

	// Vanes of one windmill share the center; tips sit 120 degrees apart
	// on the inner circle.
	for w, center := range centers {
		for k := 0; k < VanesPerWindmill; k++ {
			v := s.Vane(w*VanesPerWindmill + k)
			angle := float32(k) * 2 * math32.Pi / VanesPerWindmill
			wantTip := center.Add(math.UnitAtAngle(angle).Scale(innerRadius))
			if !vecNear(v.Tip, wantTip) {
				t.Errorf("windmill %d vane %d: Tip = %v, want ~%v", w, k, v.Tip, wantTip)
			}
		}
	}
}

func TestAdvancePhasesAtZero(t *testing.T) {
	s := NewScene([]math.Vec3{{}}, DefaultDistantRate)
	s.Advance(0)

	// With zero elapsed time only the per-vane phase offsets remain:
	// 0, 1 and 2 radians.
	for i := 0; i < s.VaneCount(); i++ {
		if got := s.Vane(i).Spin; got != float32(i) {
			t.Errorf("vane %d: Spin = %v, want %v", i, got, float32(i))
		}
	}
}

func TestAdvanceSpinRate(t *testing.T) {
	s := NewScene([]math.Vec3{{}}, DefaultDistantRate)

	// One eighth of a revolution per second.
	s.Advance(1)
	want := float32(0.25 * math32.Pi)
	if got := s.Vane(0).Spin; math32.Abs(got-want) > eps {
		t.Errorf("Spin after 1s = %v, want %v", got, want)
	}

	// Eight seconds is one full revolution.
	s.Advance(8)
	want = 2 * math32.Pi
	if got := s.Vane(0).Spin; math32.Abs(got-want) > eps {
		t.Errorf("Spin after 8s = %v, want %v", got, want)
	}
}

func TestAdvanceDistantRate(t *testing.T) {
	s := NewScene([]math.Vec3{{}, {X: 3}}, 0.5)
	s.Advance(4)

	near := s.Vane(0).Spin // phase 0, full rate
	far := s.Vane(3).Spin  // phase 3, half rate
	if got, want := far-3, near/2; math32.Abs(got-want) > eps {
		t.Errorf("distant spin minus phase = %v, want half of near spin %v", got, want)
	}
}

func TestAdvanceOverwritesSpin(t *testing.T) {
	s := NewScene([]math.Vec3{{}}, DefaultDistantRate)
	s.Advance(5)
	s.Advance(0)

	// Advance sets absolute spin from elapsed time, it does not accumulate.
	for i := 0; i < s.VaneCount(); i++ {
		if got := s.Vane(i).Spin; got != float32(i) {
			t.Errorf("vane %d: Spin = %v, want %v after rewind", i, got, float32(i))
		}
	}
}

func TestClockElapsed(t *testing.T) {
	start := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	c := NewClock(start)

	if got := c.Elapsed(start); got != 0 {
		t.Errorf("Elapsed(start) = %v, want 0", got)
	}
	got := c.Elapsed(start.Add(2500 * time.Millisecond))
	if math32.Abs(got-2.5) > 1e-6 {
		t.Errorf("Elapsed(+2.5s) = %v, want 2.5", got)
	}
}

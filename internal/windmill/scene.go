package windmill

import (
	"time"

	"github.com/chewxy/math32"

	"github.com/Faultbox/windmill/pkg/math"
)

// spinRate is the base rotation speed: one eighth of a revolution per second.
const spinRate = 0.125 * 2 * math32.Pi

// DefaultDistantRate is the spin-rate multiplier applied to every windmill
// after the first, slowing the background ones down.
const DefaultDistantRate = 0.5

// slot is one vane's place in the scene, with the per-vane animation
// parameters that stay fixed after construction.
type slot struct {
	vane Vane

	// phase desynchronizes vanes so they do not move in lockstep; it is
	// the vane's scene index in radians.
	phase float32

	// rate multiplies the base spin speed.
	rate float32
}

// Scene is an ordered, fixed-size collection of vanes making up one or more
// windmills. The order determines vertex-buffer layout, so it never changes
// after construction.
type Scene struct {
	slots []slot
}

// NewScene builds one three-vane windmill per center. The first windmill
// spins at full rate; all later ones are distant scenery and spin at
// distantRate times the base speed.
func NewScene(centers []math.Vec3, distantRate float32) *Scene {
	s := &Scene{slots: make([]slot, 0, len(centers)*VanesPerWindmill)}
	for w, center := range centers {
		rate := float32(1)
		if w > 0 {
			rate = distantRate
		}
		for k := 0; k < VanesPerWindmill; k++ {
			angle := float32(k) * 2 * math32.Pi / VanesPerWindmill
			s.slots = append(s.slots, slot{
				vane:  NewVane(center, angle),
				phase: float32(len(s.slots)),
				rate:  rate,
			})
		}
	}
	return s
}

// VaneCount returns the number of vanes in the scene.
func (s *Scene) VaneCount() int {
	return len(s.slots)
}

// Vane returns a copy of the vane at index i.
func (s *Scene) Vane(i int) Vane {
	return s.slots[i].vane
}

// Advance sets every vane's spin for the given animation time. It is the
// only per-frame mutation in the system and must run exactly once before
// the frame is assembled.
func (s *Scene) Advance(elapsed float32) {
	base := elapsed * spinRate
	for i := range s.slots {
		sl := &s.slots[i]
		sl.vane.Spin = base*sl.rate + sl.phase
	}
}

// Clock maps wall-clock time to animation time.
type Clock struct {
	start time.Time
}

// NewClock returns a clock whose animation time starts at now.
func NewClock(now time.Time) Clock {
	return Clock{start: now}
}

// Elapsed returns the animation time at now, in seconds.
func (c Clock) Elapsed(now time.Time) float32 {
	return float32(now.Sub(c.start).Seconds())
}

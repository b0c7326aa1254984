package ringfield

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/tanema/gween/ease"
)

// Rotation speeds in rad/s for each class.
var classSpin = [...]float64{AxisY: 0.35, AxisX: 0.22}

const (
	// targetStride interleaves pool lanes over the formation: lane L samples
	// targets L, L+stride, L+2*stride, ... A lane at or beyond the stride has
	// no targets of its own.
	targetStride = 2

	activeScale   = 0.8  // formation tightening while a panel is active
	parallaxRate  = 0.1  // vertical drift per scrolled pixel, reset every viewport
	idleAmplitude = 5.0  // global bob in pixels
	idleRate      = 0.5  // global bob frequency, rad/s
	introRate     = 0.3  // debris intro cycles per second
	pushBack      = 400  // z push for unfocused feature particles
	pullBase      = 50.0 // z pull for focused feature particles
	pullPulse     = 20.0
	focusBoost    = 1.6
	unfocusDim    = 0.25
)

// Scroll thresholds in viewport heights.
const (
	introEnd     = 1.0 // debris intro plays below this
	emphasisFrom = 0.9 // section emphasis applies from here on
	ringFadeFrom = 1.5 // persistent rings fade past this
)

// frame carries the per-frame inputs shared by every particle.
type frame struct {
	t      float64 // elapsed seconds
	scroll float64 // scroll value in pixels
	vh     float64
	phase  ScrollPhase
	center mgl64.Vec3

	ringPoints int // size of the persistent ring range of the pool
	layerSize  int // feature particles per showcase layer
}

func newFrame(t, scroll float64, f *Formation, poolSize, ringPoints int) frame {
	fr := frame{
		t:          t,
		scroll:     scroll,
		vh:         f.Height,
		phase:      ResolveScroll(scroll, f.Height),
		center:     f.Center(),
		ringPoints: ringPoints,
	}
	if features := poolSize - ringPoints; features > 0 {
		fr.layerSize = max(1, features/SectionCount)
	}
	return fr
}

// targetSlot maps pool index i to its formation target. Indices are derived
// from the live target count on every call so a formation swapped by resize
// never leaves stale offsets behind. ok is false when i has no target.
func targetSlot(i, targets int) (slot int, ok bool) {
	laneSize := targets / targetStride
	if laneSize == 0 {
		return 0, false
	}
	lane := i / laneSize
	if lane >= targetStride {
		return 0, false
	}
	slot = (i%laneSize)*targetStride + lane
	return slot, slot < targets
}

// suckFactor returns the radial scale of a debris particle's intro
// animation. Below introEnd viewports of scroll it restarts every 1/introRate
// seconds, easing from a seed-dependent spread down to 1. Elsewhere it is
// exactly 1.
func suckFactor(seed, t, scroll, vh float64) float64 {
	if scroll >= introEnd*vh {
		return 1
	}
	cycle := t*introRate + seed*0.1
	cycle -= math.Floor(cycle)
	spread := 1.5 + seed*0.15
	return float64(ease.OutCubic(float32(cycle), float32(spread), float32(1-spread), 1))
}

// layer returns the showcase layer of feature particle i, or SectionNone for
// the persistent rings.
func (fr *frame) layer(i int) Section {
	if i < fr.ringPoints || fr.layerSize == 0 {
		return SectionNone
	}
	return Section(min((i-fr.ringPoints)/fr.layerSize, SectionCount-1))
}

// rotate spins v (relative to the canvas center) about the class axis.
func rotate(v mgl64.Vec3, class RotationClass, angle float64) mgl64.Vec3 {
	if class == AxisX {
		return mgl64.Rotate3DX(angle).Mul3x1(v)
	}
	return mgl64.Rotate3DY(angle).Mul3x1(v)
}

// resolveTarget computes particle i's target position and color for the
// frame. ok is false when the particle has no target and must be left as is.
func resolveTarget(p *Particle, i int, f *Formation, fr *frame) (pos mgl64.Vec3, col Color, ok bool) {
	slot, ok := targetSlot(i, len(f.Targets))
	if !ok {
		return pos, col, false
	}
	tp := &f.Targets[slot]
	col = tp.Color

	local := tp.Pos.Sub(fr.center)
	if tp.Debris && i < fr.ringPoints {
		local = local.Mul(suckFactor(p.Seed, fr.t, fr.scroll, fr.vh))
	}

	local[1] -= parallaxRate * math.Mod(fr.scroll, fr.vh)

	angle := fr.t * classSpin[p.Class]
	if i >= fr.ringPoints {
		angle += fr.t * p.RotationSpeed
	}
	local = rotate(local, p.Class, angle)
	if fr.phase.Section.Active() {
		local = local.Mul(activeScale)
	}
	pos = local.Add(fr.center)

	if !tp.Debris {
		pos[0] += fr.phase.Offset
	}
	pos[1] += idleAmplitude * math.Sin(fr.t*idleRate)

	if fr.scroll >= emphasisFrom*fr.vh && i >= fr.ringPoints {
		if fr.layer(i) == fr.phase.Section {
			pos[2] -= pullBase + pullPulse*math.Sin(2*fr.t+0.1*float64(i))
			col = col.Scale(focusBoost)
		} else {
			pos[2] += pushBack
			col = col.Scale(unfocusDim)
		}
	}
	return pos, col, true
}

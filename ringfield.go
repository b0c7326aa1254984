package ringfield

import (
	"image/color"
	"math/rand/v2"
)

// Color is an RGB particle color with channels on the 0-255 scale. Channels may
// exceed 255 while a particle is emphasized; they are clamped at draw time.
type Color struct {
	R, G, B float64
}

// ColorWhite is the resting color of ring particles.
var ColorWhite = Color{255, 255, 255}

// ColorDebris is the dimmer color assigned to debris satellites.
var ColorDebris = Color{120, 132, 160}

// Scale multiplies every channel by f.
func (c Color) Scale(f float64) Color {
	return Color{c.R * f, c.G * f, c.B * f}
}

// RGBA returns c as a straight-alpha [0, 1] color with the given opacity,
// clamping each channel.
func (c Color) RGBA(alpha float64) RGBA {
	return RGBA{
		R: clamp01(c.R / 255),
		G: clamp01(c.G / 255),
		B: clamp01(c.B / 255),
		A: clamp01(alpha),
	}
}

// RGBA is a straight (not premultiplied) color with components in [0, 1].
// Premultiplication happens inside the surfaces that need it.
type RGBA struct {
	R, G, B, A float64
}

// color converts c to an 8-bit straight-alpha color.
func (c RGBA) color() color.NRGBA {
	return color.NRGBA{
		R: uint8(clamp01(c.R)*255 + 0.5),
		G: uint8(clamp01(c.G)*255 + 0.5),
		B: uint8(clamp01(c.B)*255 + 0.5),
		A: uint8(clamp01(c.A)*255 + 0.5),
	}
}

// RotationClass selects the rotation formula applied to a particle.
type RotationClass uint8

const (
	AxisY RotationClass = iota // spins about the vertical axis
	AxisX                      // spins about the horizontal axis
)

// String returns the class name.
func (c RotationClass) String() string {
	switch c {
	case AxisY:
		return "AxisY"
	case AxisX:
		return "AxisX"
	default:
		return "RotationClass(?)"
	}
}

// Section identifies one of the four scroll-driven showcase panels.
type Section int8

// SectionNone means no showcase panel is active.
const SectionNone Section = -1

// SectionCount is the number of showcase panels.
const SectionCount = 4

// Active reports whether s names a showcase panel.
func (s Section) Active() bool {
	return s >= 0 && s < SectionCount
}

// Range is a general-purpose min/max range.
type Range struct {
	Min, Max float64
}

// Random returns a value in [Min, Max) drawn from rng.
func (r Range) Random(rng *rand.Rand) float64 {
	if r.Min == r.Max {
		return r.Min
	}
	return r.Min + rng.Float64()*(r.Max-r.Min)
}

// jitter returns a value in [-amp, amp) drawn from rng.
func jitter(rng *rand.Rand, amp float64) float64 {
	return (rng.Float64()*2 - 1) * amp
}

// lerp linearly interpolates between a and b by t.
func lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

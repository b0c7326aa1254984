package ringfield

import (
	"math"
	"math/rand/v2"

	"github.com/go-gl/mathgl/mgl64"
)

// Formation proportions, relative to the viewport height.
const (
	ringRadiusFactor = 0.315
	tubeRadiusFactor = 0.063
)

const (
	ringTilt      = math.Pi / 4 // applied to the second ring about the view axis
	debrisJitter  = 30.0
	textureJitter = 7.5
)

var debrisSpread = Range{1.1, 1.7}

// TargetPoint is one resting position of the formation. Pos is in screen
// space: X/Y in pixels with the ring centered on the viewport, Z in depth
// units where positive is away from the viewer.
type TargetPoint struct {
	Pos    mgl64.Vec3
	Debris bool
	Color  Color
	Class  RotationClass
}

// Formation is the resting target set built for one viewport size. It is
// rebuilt wholesale on resize and never mutated afterwards.
type Formation struct {
	Targets []TargetPoint
	Width   float64
	Height  float64
}

// Center returns the viewport center the formation is built around.
func (f *Formation) Center() mgl64.Vec3 {
	return mgl64.Vec3{f.Width / 2, f.Height / 2, 0}
}

// BuildFormation assembles two intersecting tori of ringPoints samples each.
// The second torus is tilted 45° about the view axis. Every debrisEvery-th
// point of the combined sequence becomes debris: pushed outward by a random
// factor, scattered further, and dimmed. The result always holds exactly
// 2*ringPoints targets.
func BuildFormation(rng *rand.Rand, width, height float64, ringPoints, debrisEvery int) *Formation {
	radius := ringRadiusFactor * height
	tube := tubeRadiusFactor * height

	first := GenerateTorus(rng, radius, tube, ringPoints)
	second := GenerateTorus(rng, radius, tube, ringPoints)
	tilt := mgl64.Rotate3DZ(ringTilt)
	for i := range second {
		second[i] = tilt.Mul3x1(second[i])
	}

	f := &Formation{
		Targets: make([]TargetPoint, 0, len(first)+len(second)),
		Width:   width,
		Height:  height,
	}
	center := f.Center()

	appendRing := func(pts []mgl64.Vec3, class RotationClass) {
		for _, p := range pts {
			idx := len(f.Targets)
			tp := TargetPoint{Color: ColorWhite, Class: class}
			if debrisEvery > 0 && idx%debrisEvery == 0 {
				p = p.Mul(debrisSpread.Random(rng))
				p = p.Add(mgl64.Vec3{
					jitter(rng, debrisJitter),
					jitter(rng, debrisJitter),
					jitter(rng, debrisJitter),
				})
				tp.Debris = true
				tp.Color = ColorDebris
			}
			p = p.Add(mgl64.Vec3{
				jitter(rng, textureJitter),
				jitter(rng, textureJitter),
				jitter(rng, textureJitter),
			})
			tp.Pos = p.Add(center)
			f.Targets = append(f.Targets, tp)
		}
	}
	appendRing(first, AxisY)
	appendRing(second, AxisX)
	return f
}

package ringfield

import (
	"math/rand/v2"

	"github.com/go-gl/mathgl/mgl64"
)

// Particle holds per-particle simulation state. The pool is allocated once
// and mutated in place every frame; particles are never added or removed.
type Particle struct {
	Pos   mgl64.Vec3 // smoothed, drawable position
	Color Color      // smoothed color
	Size  float64    // base half-width in pixels, fixed at creation

	Class         RotationClass
	RotationSpeed float64 // extra angular speed for feature particles, rad/s
	Seed          float64 // in [0, 10), desynchronizes the debris intro
}

var (
	particleSize = Range{0.6, 2.2}
	scatterDepth = Range{-400, 400}
	particleSeed = Range{0, 10}
	spinVariance = [...]Range{AxisY: {0, 0.04}, AxisX: {0, 0.03}}
	initialColor = ColorWhite
)

// classFor returns the rotation class of pool index i. The first ringPoints
// particles form the two persistent rings (half each); the remainder is split
// evenly between the classes.
func classFor(i, count, ringPoints int) RotationClass {
	half := ringPoints / 2
	switch {
	case i < half:
		return AxisY
	case i < ringPoints:
		return AxisX
	case i < ringPoints+(count-ringPoints)/2:
		return AxisY
	default:
		return AxisX
	}
}

// newPool allocates count particles scattered uniformly over the viewport.
func newPool(rng *rand.Rand, count, ringPoints int, width, height float64) []Particle {
	pool := make([]Particle, count)
	for i := range pool {
		p := &pool[i]
		p.Pos = mgl64.Vec3{
			rng.Float64() * width,
			rng.Float64() * height,
			scatterDepth.Random(rng),
		}
		p.Color = initialColor
		p.Size = particleSize.Random(rng)
		p.Class = classFor(i, count, ringPoints)
		p.RotationSpeed = spinVariance[p.Class].Random(rng)
		p.Seed = particleSeed.Random(rng)
	}
	return pool
}

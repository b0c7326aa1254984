package ringfield

// Projection culling and primitive thresholds.
const (
	minDrawScale   = 0.05
	minDrawOpacity = 0.01
	opacityGain    = 1.1
	ringFade       = 0.35
	circleFrom     = 1.4 // projected size at which circles replace squares
)

// Projected is a particle ready to draw.
type Projected struct {
	X, Y    float64
	Size    float64 // half-width for squares, radius for circles
	Scale   float64
	Opacity float64
	Circle  bool
}

// project applies the perspective divide to p and derives its opacity and
// drawn size. ok is false when the particle is behind the camera plane,
// too small, or too faint to draw.
func project(p *Particle, i int, perspective float64, fr *frame) (pr Projected, ok bool) {
	denom := perspective + p.Pos[2]
	if denom <= 0 {
		return pr, false
	}
	scale := perspective / denom
	opacity := min(1, scale*opacityGain)
	if i < fr.ringPoints && fr.scroll > ringFadeFrom*fr.vh {
		opacity *= ringFade
	}
	if scale <= minDrawScale || opacity <= minDrawOpacity {
		return pr, false
	}
	pr = Projected{
		X:       p.Pos[0],
		Y:       p.Pos[1],
		Size:    p.Size * scale,
		Scale:   scale,
		Opacity: opacity,
	}
	pr.Circle = pr.Size >= circleFrom
	return pr, true
}

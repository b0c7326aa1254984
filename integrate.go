package ringfield

import "github.com/go-gl/mathgl/mgl64"

// integrate moves p a fraction of the way toward its target: posK of the
// remaining distance for position and colK for color.
func integrate(p *Particle, target mgl64.Vec3, col Color, posK, colK float64) {
	p.Pos = p.Pos.Add(target.Sub(p.Pos).Mul(posK))
	p.Color.R = lerp(p.Color.R, col.R, colK)
	p.Color.G = lerp(p.Color.G, col.G, colK)
	p.Color.B = lerp(p.Color.B, col.B, colK)
}

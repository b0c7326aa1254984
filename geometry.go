package ringfield

import (
	"math"
	"math/rand/v2"

	"github.com/go-gl/mathgl/mgl64"
)

// surfaceRoughness scales the per-axis jitter applied to torus samples,
// relative to the major radius.
const surfaceRoughness = 0.22

// GenerateTorus samples count points on a torus of major radius radius and
// tube radius tube, centered on the origin with its ring in the XY plane.
// Every point is displaced by uniform jitter of up to 0.22*radius on each axis
// so the surface reads as a cloud rather than a shell. Each call draws fresh
// values from rng.
func GenerateTorus(rng *rand.Rand, radius, tube float64, count int) []mgl64.Vec3 {
	if count <= 0 {
		return []mgl64.Vec3{}
	}
	amp := surfaceRoughness * radius
	pts := make([]mgl64.Vec3, count)
	for i := range pts {
		u := rng.Float64() * 2 * math.Pi
		v := rng.Float64() * 2 * math.Pi
		ring := radius + tube*math.Cos(v)
		pts[i] = mgl64.Vec3{
			ring*math.Cos(u) + jitter(rng, amp),
			ring*math.Sin(u) + jitter(rng, amp),
			tube*math.Sin(v) + jitter(rng, amp),
		}
	}
	return pts
}

package ringfield

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// minRepelDistance guards the repulsion direction against division by a
// vanishing distance.
const minRepelDistance = 1e-6

// Pointer is the last known pointer location in screen pixels. Known is
// false until the first pointer move arrives.
type Pointer struct {
	X, Y  float64
	Known bool
}

// repel nudges pos directly away from the pointer when it lies within radius
// pixels. The push is strength pixels at zero distance and falls off linearly
// to zero at radius. Only X and Y move. Returns true if pos changed.
func repel(pos *mgl64.Vec3, ptr Pointer, radius, strength float64) bool {
	if !ptr.Known {
		return false
	}
	dx := pos[0] - ptr.X
	dy := pos[1] - ptr.Y
	d2 := dx*dx + dy*dy
	if d2 >= radius*radius {
		return false
	}
	d := math.Sqrt(d2)
	if d < minRepelDistance {
		return false
	}
	force := (radius - d) / radius * strength
	pos[0] += dx / d * force
	pos[1] += dy / d * force
	return true
}

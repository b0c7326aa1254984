package ringfield

import (
	"errors"
	"fmt"
)

// ErrInvalidConfig is wrapped by every Config.Validate failure.
var ErrInvalidConfig = errors.New("ringfield: invalid config")

// Config controls the simulation. Start from DefaultConfig and override
// fields as needed.
type Config struct {
	// ParticleCount is the pool size. It never changes after mount.
	ParticleCount int
	// RingPoints is the number of samples per torus. The formation holds
	// 2*RingPoints targets, and the first RingPoints pool members form the
	// persistent rings.
	RingPoints int
	// DebrisEvery marks every n-th formation target as debris. Zero disables
	// debris.
	DebrisEvery int
	// ScrollScale is the number of viewport heights the page timeline spans.
	// Scroll progress in [0, 1] is multiplied by ScrollScale*viewportHeight.
	ScrollScale float64
	// Perspective is the camera distance of the perspective projection.
	Perspective float64
	// PositionSmoothing is the fraction of the remaining distance a particle
	// covers per frame.
	PositionSmoothing float64
	// ColorSmoothing is the per-frame fraction for color channels.
	ColorSmoothing float64
	// RepelRadius is the pointer repulsion radius in pixels.
	RepelRadius float64
	// RepelStrength is the push in pixels per frame at zero distance.
	RepelStrength float64
	// Seed seeds the engine RNG. Zero seeds from the clock.
	Seed uint64
}

// DefaultConfig returns the landing-page hero configuration.
func DefaultConfig() Config {
	return Config{
		ParticleCount:     11000,
		RingPoints:        5000,
		DebrisEvery:       15,
		ScrollScale:       14,
		Perspective:       1000,
		PositionSmoothing: 0.04,
		ColorSmoothing:    0.05,
		RepelRadius:       200,
		RepelStrength:     1.5,
	}
}

// Validate reports the first invalid field.
func (c Config) Validate() error {
	switch {
	case c.ParticleCount <= 0:
		return fmt.Errorf("%w: ParticleCount %d must be positive", ErrInvalidConfig, c.ParticleCount)
	case c.RingPoints <= 0:
		return fmt.Errorf("%w: RingPoints %d must be positive", ErrInvalidConfig, c.RingPoints)
	case c.DebrisEvery < 0:
		return fmt.Errorf("%w: DebrisEvery %d must not be negative", ErrInvalidConfig, c.DebrisEvery)
	case c.ScrollScale <= 0:
		return fmt.Errorf("%w: ScrollScale %v must be positive", ErrInvalidConfig, c.ScrollScale)
	case c.Perspective <= 0:
		return fmt.Errorf("%w: Perspective %v must be positive", ErrInvalidConfig, c.Perspective)
	case c.PositionSmoothing <= 0 || c.PositionSmoothing >= 1:
		return fmt.Errorf("%w: PositionSmoothing %v must be in (0, 1)", ErrInvalidConfig, c.PositionSmoothing)
	case c.ColorSmoothing <= 0 || c.ColorSmoothing >= 1:
		return fmt.Errorf("%w: ColorSmoothing %v must be in (0, 1)", ErrInvalidConfig, c.ColorSmoothing)
	case c.RepelRadius < 0 || c.RepelStrength < 0:
		return fmt.Errorf("%w: repulsion radius and strength must not be negative", ErrInvalidConfig)
	}
	return nil
}

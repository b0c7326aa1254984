package ringfield

import (
	"math"
	"math/rand/v2"
	"testing"
)

func testRand(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed+1))
}

// smallConfig is a reduced pool that keeps the default proportions:
// 2*RingPoints targets for ParticleCount = 2.2*RingPoints particles.
func smallConfig() Config {
	cfg := DefaultConfig()
	cfg.ParticleCount = 110
	cfg.RingPoints = 50
	cfg.DebrisEvery = 5
	cfg.Seed = 7
	return cfg
}

func newTestEngine(t testing.TB, cfg Config) *Engine {
	t.Helper()
	e, err := NewEngine(cfg)
	if err != nil {
		t.Fatalf("NewEngine: %v", err)
	}
	return e
}

func newMountedEngine(t testing.TB, cfg Config, w, h int) *Engine {
	t.Helper()
	e := newTestEngine(t, cfg)
	if !e.Mount(w, h) {
		t.Fatalf("Mount(%d, %d) = false", w, h)
	}
	return e
}

// recordingSurface counts primitives instead of drawing them.
type recordingSurface struct {
	squares int
	circles int
	flushes int
	minA    float64
	maxA    float64
}

func newRecordingSurface() *recordingSurface {
	return &recordingSurface{minA: math.Inf(1), maxA: math.Inf(-1)}
}

func (s *recordingSurface) FillSquare(x, y, half float64, c RGBA) {
	s.squares++
	s.track(c)
}

func (s *recordingSurface) FillCircle(x, y, r float64, c RGBA) {
	s.circles++
	s.track(c)
}

func (s *recordingSurface) Flush() { s.flushes++ }

func (s *recordingSurface) track(c RGBA) {
	s.minA = min(s.minA, c.A)
	s.maxA = max(s.maxA, c.A)
}

func approxEqual(a, b, tol float64) bool {
	return math.Abs(a-b) <= tol
}

package ringfield

import (
	"errors"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"sync"
	"time"
)

// ErrTornDown is returned when a torn-down engine is asked to start again.
var ErrTornDown = errors.New("ringfield: engine torn down")

// Lifecycle is the engine's state machine position.
type Lifecycle uint8

const (
	Uninitialized Lifecycle = iota // created, not yet mounted
	Running                        // mounted, stepping and drawing
	TornDown                       // terminal; every call is a no-op
)

// String returns the state name.
func (l Lifecycle) String() string {
	switch l {
	case Uninitialized:
		return "Uninitialized"
	case Running:
		return "Running"
	case TornDown:
		return "TornDown"
	default:
		return fmt.Sprintf("Lifecycle(%d)", uint8(l))
	}
}

// SimulationState is the engine's shared mutable state: the particle pool,
// the cached formation, the pointer, scroll progress, and elapsed time.
type SimulationState struct {
	Particles []Particle
	Formation *Formation
	Pointer   Pointer
	Progress  float64 // normalized scroll progress in [0, 1]
	Elapsed   float64 // seconds since mount
}

// Option configures an Engine at construction.
type Option func(*Engine)

// WithRand makes the engine draw all geometry and particle randomness from
// rng instead of a freshly seeded source.
func WithRand(rng *rand.Rand) Option {
	return func(e *Engine) { e.rng = rng }
}

// Engine owns the particle simulation and drives it one frame at a time.
// All methods are safe for concurrent use; pointer, scroll, and resize
// updates from other goroutines are serialized with the frame.
type Engine struct {
	mu        sync.Mutex
	cfg       Config
	rng       *rand.Rand
	state     SimulationState
	lifecycle Lifecycle
	loop      *Loop
	stats     FrameStats
	debug     bool
	warned    bool
}

// NewEngine validates cfg and returns an unmounted engine.
func NewEngine(cfg Config, opts ...Option) (*Engine, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	e := &Engine{cfg: cfg}
	for _, opt := range opts {
		opt(e)
	}
	if e.rng == nil {
		seed := cfg.Seed
		if seed == 0 {
			seed = uint64(time.Now().UnixNano())
		}
		e.rng = rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
	}
	return e, nil
}

// Config returns the engine configuration.
func (e *Engine) Config() Config {
	return e.cfg
}

// Mount builds the formation and particle pool for a width×height viewport
// and starts the engine. A non-positive viewport means there is nothing to
// draw on; Mount then does nothing and returns false. Mounting a running
// engine behaves like Resize.
func (e *Engine) Mount(width, height int) bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	switch e.lifecycle {
	case TornDown:
		return false
	case Running:
		e.resizeLocked(width, height)
		return true
	}
	if width <= 0 || height <= 0 {
		Logger().Warn("mount skipped: no drawing surface",
			slog.Int("width", width), slog.Int("height", height))
		return false
	}
	e.resizeLocked(width, height)
	e.lifecycle = Running
	Logger().Info("mounted",
		slog.Int("width", width), slog.Int("height", height),
		slog.Int("particles", len(e.state.Particles)),
		slog.Int("targets", len(e.state.Formation.Targets)))
	return true
}

// Resize regenerates the formation for a new viewport. The particle pool is
// kept; particles drift to their new targets over the following frames.
func (e *Engine) Resize(width, height int) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.lifecycle != Running {
		return
	}
	e.resizeLocked(width, height)
	Logger().Info("resized", slog.Int("width", width), slog.Int("height", height))
}

func (e *Engine) resizeLocked(width, height int) {
	if width <= 0 || height <= 0 {
		Logger().Warn("resize ignored: empty viewport",
			slog.Int("width", width), slog.Int("height", height))
		return
	}
	w, h := float64(width), float64(height)
	e.state.Formation = BuildFormation(e.rng, w, h, e.cfg.RingPoints, e.cfg.DebrisEvery)
	if e.state.Particles == nil {
		e.state.Particles = newPool(e.rng, e.cfg.ParticleCount, e.cfg.RingPoints, w, h)
	}
}

// SetPointer records the pointer position in screen pixels.
func (e *Engine) SetPointer(x, y float64) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.lifecycle == TornDown {
		return
	}
	e.state.Pointer = Pointer{X: x, Y: y, Known: true}
}

// ClearPointer forgets the pointer, e.g. when it leaves the window.
func (e *Engine) ClearPointer() {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.lifecycle == TornDown {
		return
	}
	e.state.Pointer = Pointer{}
}

// SetScrollProgress records the normalized scroll progress, clamped to
// [0, 1].
func (e *Engine) SetScrollProgress(p float64) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.lifecycle == TornDown {
		return
	}
	e.state.Progress = clamp01(p)
}

// Step advances the simulation by dt seconds: every particle's target is
// resolved, pointer repulsion is applied, and positions and colors are
// smoothed toward their targets. Particles without a target are left
// untouched.
func (e *Engine) Step(dt float64) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.lifecycle != Running {
		return
	}
	start := time.Now()
	st := &e.state
	st.Elapsed += dt

	fr := e.frameLocked()
	stats := FrameStats{Section: fr.phase.Section, Offset: fr.phase.Offset}
	for i := range st.Particles {
		p := &st.Particles[i]
		target, col, ok := resolveTarget(p, i, st.Formation, &fr)
		if !ok {
			stats.Skipped++
			continue
		}
		stats.Resolved++
		if repel(&p.Pos, st.Pointer, e.cfg.RepelRadius, e.cfg.RepelStrength) {
			stats.Repelled++
		}
		integrate(p, target, col, e.cfg.PositionSmoothing, e.cfg.ColorSmoothing)
	}
	stats.Simulate = time.Since(start)
	e.stats = stats
}

// Draw projects every particle and draws it onto dst. A nil dst is
// ignored. Surfaces that buffer primitives are flushed before Draw returns.
func (e *Engine) Draw(dst Surface) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if dst == nil {
		if !e.warned {
			Logger().Warn("draw skipped: no drawing surface")
			e.warned = true
		}
		return
	}
	if e.lifecycle != Running {
		return
	}
	start := time.Now()
	fr := e.frameLocked()
	stats := &e.stats
	stats.Drawn, stats.Culled, stats.Squares, stats.Circles = 0, 0, 0, 0
	for i := range e.state.Particles {
		p := &e.state.Particles[i]
		pr, ok := project(p, i, e.cfg.Perspective, &fr)
		if !ok {
			stats.Culled++
			continue
		}
		c := p.Color.RGBA(pr.Opacity)
		if pr.Circle {
			dst.FillCircle(pr.X, pr.Y, pr.Size, c)
			stats.Circles++
		} else {
			dst.FillSquare(pr.X, pr.Y, pr.Size, c)
			stats.Squares++
		}
		stats.Drawn++
	}
	if f, ok := dst.(flusher); ok {
		f.Flush()
	}
	stats.Draw = time.Since(start)
	e.debugLog(*stats)
}

// Frame runs Step then Draw.
func (e *Engine) Frame(dt float64, dst Surface) {
	e.Step(dt)
	e.Draw(dst)
}

func (e *Engine) frameLocked() frame {
	f := e.state.Formation
	scroll := ScrollValue(e.state.Progress, e.cfg.ScrollScale, f.Height)
	return newFrame(e.state.Elapsed, scroll, f, len(e.state.Particles), e.cfg.RingPoints)
}

// StartLoop runs the engine on its own repeating task: every interval the
// engine steps by the measured elapsed time and then onFrame, if non-nil, is
// called. The engine must be mounted. Teardown cancels the loop.
func (e *Engine) StartLoop(interval time.Duration, onFrame func()) (*Loop, error) {
	e.mu.Lock()
	defer e.mu.Unlock()
	switch {
	case e.lifecycle == TornDown:
		return nil, ErrTornDown
	case e.lifecycle != Running:
		return nil, fmt.Errorf("start loop: engine is %v", e.lifecycle)
	case e.loop != nil:
		return e.loop, nil
	}
	e.loop = NewLoop(interval, func(dt float64) {
		e.Step(dt)
		if onFrame != nil {
			onFrame()
		}
	})
	e.loop.Start()
	return e.loop, nil
}

// Teardown stops the engine for good. Any scheduled loop is cancelled; a
// tick already in flight finds the engine torn down and changes nothing.
// Teardown does not wait for the loop goroutine to exit; use Loop.Done for
// that.
func (e *Engine) Teardown() {
	e.mu.Lock()
	if e.lifecycle == TornDown {
		e.mu.Unlock()
		return
	}
	e.lifecycle = TornDown
	loop := e.loop
	e.mu.Unlock()

	if loop != nil {
		loop.Cancel()
	}
	Logger().Info("torn down")
}

// Lifecycle returns the current state.
func (e *Engine) Lifecycle() Lifecycle {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.lifecycle
}

// ParticleCount returns the pool size, or zero before mount.
func (e *Engine) ParticleCount() int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return len(e.state.Particles)
}

// Particles returns a copy of the pool.
func (e *Engine) Particles() []Particle {
	e.mu.Lock()
	defer e.mu.Unlock()
	out := make([]Particle, len(e.state.Particles))
	copy(out, e.state.Particles)
	return out
}

// Phase returns the scroll phase for the current progress.
func (e *Engine) Phase() ScrollPhase {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.state.Formation == nil {
		return ScrollPhase{Section: SectionNone}
	}
	return e.frameLocked().phase
}

// Stats returns the statistics of the most recent Step and Draw.
func (e *Engine) Stats() FrameStats {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.stats
}

// SetDebugMode enables per-frame statistics logging at debug level.
func (e *Engine) SetDebugMode(enabled bool) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.debug = enabled
}

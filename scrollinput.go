package ringfield

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// Scroll input defaults.
const (
	defaultScrollGlide = 0.6  // seconds for the displayed progress to catch up
	wheelViewports     = 0.25 // viewports scrolled per wheel notch
)

// ScrollInput turns discrete scroll requests (wheel notches, page keys) into
// a smoothly moving progress in [0, 1]. Every request moves the target and
// restarts an ease-out tween from the current progress, so rapid input keeps
// gliding instead of jumping.
type ScrollInput struct {
	// Glide is the tween duration in seconds.
	Glide float32

	viewports float64 // viewport heights spanned by progress 0..1
	current   float64
	target    float64
	tween     *gween.Tween
}

// NewScrollInput creates an input for a timeline spanning viewports
// viewport heights.
func NewScrollInput(viewports float64) *ScrollInput {
	if viewports <= 0 {
		viewports = 1
	}
	return &ScrollInput{Glide: defaultScrollGlide, viewports: viewports}
}

// Progress returns the displayed progress.
func (s *ScrollInput) Progress() float64 {
	return s.current
}

// Target returns the progress the input is gliding toward.
func (s *ScrollInput) Target() float64 {
	return s.target
}

// Gliding reports whether a tween is in flight.
func (s *ScrollInput) Gliding() bool {
	return s.tween != nil
}

// Scroll moves the target by the given number of viewport heights. Positive
// values scroll down the page.
func (s *ScrollInput) Scroll(viewports float64) {
	s.SetTarget(s.target + viewports/s.viewports)
}

// Wheel applies a mouse wheel delta as reported by ebiten (positive is up).
func (s *ScrollInput) Wheel(dy float64) {
	if dy == 0 {
		return
	}
	s.Scroll(-dy * wheelViewports)
}

// SetTarget glides toward p, clamped to [0, 1].
func (s *ScrollInput) SetTarget(p float64) {
	p = clamp01(p)
	s.target = p
	if p == s.current {
		s.tween = nil
		return
	}
	s.tween = gween.New(float32(s.current), float32(p), s.Glide, ease.OutCubic)
}

// Set jumps to p immediately, clamped to [0, 1].
func (s *ScrollInput) Set(p float64) {
	p = clamp01(p)
	s.current, s.target = p, p
	s.tween = nil
}

// Update advances the glide by dt seconds and returns the progress.
func (s *ScrollInput) Update(dt float32) float64 {
	if s.tween == nil {
		return s.current
	}
	v, done := s.tween.Update(dt)
	s.current = float64(v)
	if done {
		s.current = s.target
		s.tween = nil
	}
	return s.current
}

package ringfield

import (
	"log/slog"
	"time"
)

// FrameStats describes the most recent simulate and draw passes.
type FrameStats struct {
	Resolved int // particles that had a target this frame
	Skipped  int // particles left untouched for lack of a target
	Repelled int // particles nudged by the pointer
	Drawn    int
	Culled   int
	Squares  int
	Circles  int

	Section  Section
	Offset   float64
	Simulate time.Duration
	Draw     time.Duration
}

// debugLog writes the frame stats at debug level.
func (e *Engine) debugLog(stats FrameStats) {
	if !e.debug {
		return
	}
	Logger().Debug("frame",
		slog.Int("resolved", stats.Resolved),
		slog.Int("skipped", stats.Skipped),
		slog.Int("repelled", stats.Repelled),
		slog.Int("drawn", stats.Drawn),
		slog.Int("culled", stats.Culled),
		slog.Int("squares", stats.Squares),
		slog.Int("circles", stats.Circles),
		slog.Int("section", int(stats.Section)),
		slog.Float64("offset", stats.Offset),
		slog.Duration("simulate", stats.Simulate),
		slog.Duration("draw", stats.Draw),
	)
}

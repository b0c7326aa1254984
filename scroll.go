package ringfield

import "github.com/tanema/gween/ease"

// slideAmplitude is the horizontal slide distance in pixels for a resting
// showcase panel. Panels alternate between +slideAmplitude and -slideAmplitude.
const slideAmplitude = 450.0

// ScrollPhase is the mapper's output for one scroll value.
type ScrollPhase struct {
	Section Section
	Offset  float64 // horizontal slide in pixels
}

// slideWindow eases the offset from From to To while the scroll value moves
// through [Start, End]. Bounds are in viewport heights.
type slideWindow struct {
	Start, End float64
	From, To   float64
	Fn         ease.TweenFunc
}

// at evaluates the window at scroll value s (viewport heights), clamping
// progress to [0, 1].
func (w slideWindow) at(s float64) float64 {
	t := clamp01((s - w.Start) / (w.End - w.Start))
	return float64(w.Fn(float32(t), float32(w.From), float32(w.To-w.From), 1))
}

// sectionSpan is the scroll range, in viewport heights, during which a
// panel is active, plus the windows shaping its offset.
type sectionSpan struct {
	Section    Section
	Start, End float64
	Windows    []slideWindow
}

// offset returns the slide at s. Windows are ordered; the latest one that
// has started wins, and before any window starts the first window's From
// value holds.
func (sp sectionSpan) offset(s float64) float64 {
	off := sp.Windows[0].From
	for _, w := range sp.Windows {
		if s >= w.Start {
			off = w.at(s)
		}
	}
	return off
}

// scrollTimeline lists the showcase panels in scroll order. Each entry
// transition starts from the previous panel's resting value, so the offset is
// continuous across panel boundaries. The last panel eases back to center
// before the timeline ends so leaving it is continuous too.
var scrollTimeline = []sectionSpan{
	{Section: 0, Start: 0.1, End: 1.5, Windows: []slideWindow{
		{Start: 0.1, End: 0.9, From: 0, To: slideAmplitude, Fn: ease.OutCubic},
	}},
	{Section: 1, Start: 1.5, End: 2.5, Windows: []slideWindow{
		{Start: 1.5, End: 2.0, From: slideAmplitude, To: -slideAmplitude, Fn: ease.InOutQuad},
	}},
	{Section: 2, Start: 2.5, End: 3.5, Windows: []slideWindow{
		{Start: 2.5, End: 3.0, From: -slideAmplitude, To: slideAmplitude, Fn: ease.InOutQuad},
	}},
	{Section: 3, Start: 3.5, End: 6.0, Windows: []slideWindow{
		{Start: 3.5, End: 4.0, From: slideAmplitude, To: -slideAmplitude, Fn: ease.InOutQuad},
		{Start: 5.5, End: 6.0, From: -slideAmplitude, To: 0, Fn: ease.InOutQuad},
	}},
}

// ResolveScroll maps a scroll value in pixels to the active showcase panel
// and horizontal slide offset. vh is the viewport height in pixels. It is pure
// and safe to call every frame.
func ResolveScroll(scrollValue, vh float64) ScrollPhase {
	if vh <= 0 {
		return ScrollPhase{Section: SectionNone}
	}
	s := scrollValue / vh
	for _, sp := range scrollTimeline {
		if s >= sp.Start && s < sp.End {
			return ScrollPhase{Section: sp.Section, Offset: sp.offset(s)}
		}
	}
	return ScrollPhase{Section: SectionNone}
}

// ScrollValue converts normalized scroll progress in [0, 1] to the mapper's
// pixel unit. scale is the number of viewport heights the page timeline
// spans.
func ScrollValue(progress, scale, vh float64) float64 {
	return progress * scale * vh
}

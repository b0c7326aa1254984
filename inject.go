package ringfield

// injectKind selects what a synthetic event does.
type injectKind uint8

const (
	injectPointer injectKind = iota // pointer moves to (x, y)
	injectLeave                     // pointer leaves the window
	injectScroll                    // scroll progress jumps to progress
	injectGlide                     // scroll progress glides to progress
)

// syntheticEvent is a single injected input event. Pointer coordinates are
// screen pixels, the same space the engine receives real cursor positions
// in.
type syntheticEvent struct {
	kind     injectKind
	x, y     float64
	progress float64
}

// InjectPointer queues a pointer move to (x, y). The event is consumed on the
// next Update, replacing real input for that frame.
func (g *Game) InjectPointer(x, y float64) {
	g.injectQueue = append(g.injectQueue, syntheticEvent{kind: injectPointer, x: x, y: y})
}

// InjectLeave queues the pointer leaving the window.
func (g *Game) InjectLeave() {
	g.injectQueue = append(g.injectQueue, syntheticEvent{kind: injectLeave})
}

// InjectSweep queues pointer moves from (fromX, fromY) to (toX, toY),
// linearly interpolated so the whole sweep consumes frames frames. Minimum
// frames is 2 (start and end).
func (g *Game) InjectSweep(fromX, fromY, toX, toY float64, frames int) {
	if frames < 2 {
		frames = 2
	}
	for i := 0; i < frames; i++ {
		t := float64(i) / float64(frames-1)
		g.InjectPointer(lerp(fromX, toX, t), lerp(fromY, toY, t))
	}
}

// InjectScroll queues a jump of the scroll progress to p.
func (g *Game) InjectScroll(p float64) {
	g.injectQueue = append(g.injectQueue, syntheticEvent{kind: injectScroll, progress: p})
}

// InjectGlide queues a smooth scroll toward p.
func (g *Game) InjectGlide(p float64) {
	g.injectQueue = append(g.injectQueue, syntheticEvent{kind: injectGlide, progress: p})
}

// processInjected pops one event from the inject queue and applies it.
// Returns true if an event was consumed (real input should be skipped).
func (g *Game) processInjected() bool {
	if len(g.injectQueue) == 0 {
		return false
	}
	evt := g.injectQueue[0]
	copy(g.injectQueue, g.injectQueue[1:])
	g.injectQueue = g.injectQueue[:len(g.injectQueue)-1]

	switch evt.kind {
	case injectPointer:
		g.engine.SetPointer(evt.x, evt.y)
	case injectLeave:
		g.engine.ClearPointer()
	case injectScroll:
		g.scroll.Set(evt.progress)
	case injectGlide:
		g.scroll.SetTarget(evt.progress)
	}
	return true
}

package ringfield

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// processInput reads mouse, touch, and keyboard input and forwards it to
// the engine and scroll input. It reports true when the user asked to quit.
func (g *Game) processInput() bool {
	if !g.processTouches() {
		g.processMouse()
	}
	_, wy := ebiten.Wheel()
	g.scroll.Wheel(wy)
	return g.processKeys()
}

// processMouse tracks the cursor. The first reading is where the cursor
// already was when the window opened, not a move, so it is only recorded.
// A cursor outside the window clears the pointer.
func (g *Game) processMouse() {
	mx, my := ebiten.CursorPosition()
	switch {
	case !g.cursorSeen:
		g.cursorSeen = true
	case !pointerInside(mx, my, g.width, g.height):
		if g.cursorInside {
			g.engine.ClearPointer()
		}
		g.cursorInside = false
	case mx != g.cursorX || my != g.cursorY || !g.cursorInside:
		g.engine.SetPointer(float64(mx), float64(my))
		g.cursorInside = true
	}
	g.cursorX, g.cursorY = mx, my
}

// processTouches uses the first active touch as the pointer and clears the
// pointer when the last touch lifts. It reports whether a touch is down.
func (g *Game) processTouches() bool {
	g.touchIDs = ebiten.AppendTouchIDs(g.touchIDs[:0])
	if len(g.touchIDs) == 0 {
		if g.touching {
			g.engine.ClearPointer()
			g.touching = false
		}
		return false
	}
	tx, ty := ebiten.TouchPosition(g.touchIDs[0])
	g.engine.SetPointer(float64(tx), float64(ty))
	g.touching = true
	return true
}

// processKeys maps page navigation keys to scroll moves.
func (g *Game) processKeys() bool {
	switch {
	case inpututil.IsKeyJustPressed(ebiten.KeyPageDown), inpututil.IsKeyJustPressed(ebiten.KeySpace):
		g.scroll.Scroll(1)
	case inpututil.IsKeyJustPressed(ebiten.KeyPageUp):
		g.scroll.Scroll(-1)
	case inpututil.IsKeyJustPressed(ebiten.KeyHome):
		g.scroll.SetTarget(0)
	case inpututil.IsKeyJustPressed(ebiten.KeyEnd):
		g.scroll.SetTarget(1)
	}
	return inpututil.IsKeyJustPressed(ebiten.KeyEscape)
}

// pointerInside reports whether (x, y) lies within a w×h window.
func pointerInside(x, y, w, h int) bool {
	return x >= 0 && y >= 0 && x < w && y < h
}

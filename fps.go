package ringfield

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
)

// overlayInterval is how often the overlay text refreshes, in seconds.
const overlayInterval = 0.5

// Overlay backing image size. Enough for four lines of DebugPrint text.
const (
	overlayW = 180
	overlayH = 64
)

// updateOverlay refreshes the FPS and scroll overlay every overlayInterval
// seconds.
func (g *Game) updateOverlay(dt float64) {
	if !g.cfg.ShowFPS {
		return
	}
	g.overlayAccum += dt
	if g.overlayText != "" && g.overlayAccum < overlayInterval {
		return
	}
	g.overlayAccum = 0
	g.overlayText = formatOverlay(ebiten.ActualFPS(), ebiten.ActualTPS(), g.engine.Stats())
	g.overlayDirty = true
}

// drawOverlay draws the overlay in the top-left corner of screen.
func (g *Game) drawOverlay(screen *ebiten.Image) {
	if !g.cfg.ShowFPS || g.overlayText == "" {
		return
	}
	if g.overlayImg == nil {
		g.overlayImg = ebiten.NewImage(overlayW, overlayH)
		g.overlayDirty = true
	}
	if g.overlayDirty {
		g.overlayImg.Clear()
		// Semi-transparent background for readability
		g.overlayImg.Fill(color.RGBA{0, 0, 0, 128})
		ebitenutil.DebugPrint(g.overlayImg, g.overlayText)
		g.overlayDirty = false
	}
	screen.DrawImage(g.overlayImg, nil)
}

func formatOverlay(fps, tps float64, st FrameStats) string {
	section := "none"
	if st.Section.Active() {
		section = fmt.Sprint(int(st.Section))
	}
	return fmt.Sprintf("FPS: %.1f\nTPS: %.1f\nsection: %s offset: %.0f\ndrawn: %d skipped: %d",
		fps, tps, section, st.Offset, st.Drawn, st.Skipped)
}

package ringfield

import (
	"fmt"
	"image"
	"io"

	"github.com/gogpu/gg"
)

// CanvasSurface rasterizes particles in software through a gg drawing
// context. It needs no window or GPU and backs headless rendering.
type CanvasSurface struct {
	dc *gg.Context
}

// NewCanvasSurface creates a width×height software surface.
func NewCanvasSurface(width, height int) *CanvasSurface {
	return &CanvasSurface{dc: gg.NewContext(width, height)}
}

// Clear fills the whole surface with c.
func (s *CanvasSurface) Clear(c RGBA) {
	s.dc.ClearWithColor(gg.RGBA{R: c.R, G: c.G, B: c.B, A: c.A})
}

// FillSquare implements Surface.
func (s *CanvasSurface) FillSquare(x, y, half float64, c RGBA) {
	s.dc.SetRGBA(c.R, c.G, c.B, c.A)
	s.dc.DrawRectangle(x-half, y-half, 2*half, 2*half)
	_ = s.dc.Fill()
}

// FillCircle implements Surface.
func (s *CanvasSurface) FillCircle(x, y, r float64, c RGBA) {
	s.dc.SetRGBA(c.R, c.G, c.B, c.A)
	s.dc.DrawCircle(x, y, r)
	_ = s.dc.Fill()
}

// Image returns a copy of the current pixels.
func (s *CanvasSurface) Image() image.Image {
	_ = s.dc.FlushGPU()
	return s.dc.Image()
}

// EncodePNG writes the current pixels as PNG.
func (s *CanvasSurface) EncodePNG(w io.Writer) error {
	if err := s.dc.EncodePNG(w); err != nil {
		return fmt.Errorf("encode png: %w", err)
	}
	return nil
}

// SavePNG writes the current pixels to a PNG file at path.
func (s *CanvasSurface) SavePNG(path string) error {
	if err := s.dc.SavePNG(path); err != nil {
		return fmt.Errorf("save %s: %w", path, err)
	}
	return nil
}

// Close releases the drawing context.
func (s *CanvasSurface) Close() error {
	return s.dc.Close()
}

package ringfield

import (
	"image"

	"github.com/gogpu/gg"
	"github.com/hajimehoshi/ebiten/v2"
)

// circleTextureSize is the edge length of the pre-rasterized disc used for
// circle particles.
const circleTextureSize = 64

// EbitenSurface draws particles onto an ebiten image. Squares and circles
// are collected into two vertex batches and submitted with one
// DrawTriangles32 call each on Flush.
type EbitenSurface struct {
	target  *ebiten.Image
	white   *ebiten.Image
	disc    *ebiten.Image
	squares quadBatch
	circles quadBatch
	blend   ebiten.Blend
}

// NewEbitenSurface creates a surface with its particle textures. The disc
// texture is rasterized once in software and uploaded.
func NewEbitenSurface() *EbitenSurface {
	white := ebiten.NewImage(1, 1)
	white.Fill(RGBA{1, 1, 1, 1}.color())
	return &EbitenSurface{
		white: white,
		disc:  ebiten.NewImageFromImage(rasterizeDisc(circleTextureSize)),
		blend: ebiten.BlendSourceOver,
	}
}

// Begin sets the image the next batches are drawn onto and discards any
// unflushed primitives.
func (s *EbitenSurface) Begin(target *ebiten.Image) {
	s.target = target
	s.squares.reset()
	s.circles.reset()
}

// SetAdditive switches between source-over and additive blending.
func (s *EbitenSurface) SetAdditive(additive bool) {
	if additive {
		s.blend = ebiten.BlendLighter
		return
	}
	s.blend = ebiten.BlendSourceOver
}

// FillSquare implements Surface.
func (s *EbitenSurface) FillSquare(x, y, half float64, c RGBA) {
	s.squares.add(
		float32(x-half), float32(y-half), float32(x+half), float32(y+half),
		1, 1, c)
}

// FillCircle implements Surface.
func (s *EbitenSurface) FillCircle(x, y, r float64, c RGBA) {
	s.circles.add(
		float32(x-r), float32(y-r), float32(x+r), float32(y+r),
		circleTextureSize, circleTextureSize, c)
}

// Flush submits the pending batches to the target image.
func (s *EbitenSurface) Flush() {
	if s.target == nil {
		s.squares.reset()
		s.circles.reset()
		return
	}
	s.submit(&s.squares, s.white)
	s.submit(&s.circles, s.disc)
}

func (s *EbitenSurface) submit(b *quadBatch, src *ebiten.Image) {
	if len(b.verts) == 0 {
		return
	}
	var op ebiten.DrawTrianglesOptions
	op.Blend = s.blend
	op.ColorScaleMode = ebiten.ColorScaleModePremultipliedAlpha
	op.Filter = ebiten.FilterLinear
	s.target.DrawTriangles32(b.verts, b.inds, src, &op)
	b.reset()
}

// rasterizeDisc renders a white anti-aliased disc filling a size×size image.
func rasterizeDisc(size int) image.Image {
	dc := gg.NewContext(size, size)
	defer dc.Close()
	dc.SetRGBA(1, 1, 1, 1)
	r := float64(size) / 2
	dc.DrawCircle(r, r, r)
	_ = dc.Fill()
	return dc.Image()
}

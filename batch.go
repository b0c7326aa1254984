package ringfield

import "github.com/hajimehoshi/ebiten/v2"

// quadBatch accumulates textured quads for a single DrawTriangles32 call.
type quadBatch struct {
	verts []ebiten.Vertex
	inds  []uint32
}

func (b *quadBatch) reset() {
	b.verts = b.verts[:0]
	b.inds = b.inds[:0]
}

// add appends an axis-aligned quad covering [x0,x1]x[y0,y1] sampling the
// source rectangle [0,su]x[0,sv]. c is premultiplied at submission.
func (b *quadBatch) add(x0, y0, x1, y1, su, sv float32, c RGBA) {
	a := float32(c.A)
	cr := float32(c.R) * a
	cg := float32(c.G) * a
	cb := float32(c.B) * a

	base := uint32(len(b.verts))
	qx := [4]float32{x0, x1, x0, x1}
	qy := [4]float32{y0, y0, y1, y1}
	sx := [4]float32{0, su, 0, su}
	sy := [4]float32{0, 0, sv, sv}
	for j := 0; j < 4; j++ {
		b.verts = append(b.verts, ebiten.Vertex{
			DstX:   qx[j],
			DstY:   qy[j],
			SrcX:   sx[j],
			SrcY:   sy[j],
			ColorR: cr,
			ColorG: cg,
			ColorB: cb,
			ColorA: a,
		})
	}
	b.inds = append(b.inds,
		base+0, base+1, base+2,
		base+1, base+3, base+2,
	)
}

package host

import (
	"image"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/phanxgames/arbor"
)

// Debug font glyph metrics used by ebitenutil.DebugPrint.
const (
	glyphW = 6
	glyphH = 16
)

// Painter draws UI nodes onto an ebiten image: label backgrounds as filled
// rectangles and label text with the debug font, scaled to FontSize and
// tinted with Color.
type Painter struct {
	dst     *ebiten.Image
	scratch map[image.Point]*ebiten.Image
}

// NewPainter creates a painter targeting dst.
func NewPainter(dst *ebiten.Image) *Painter {
	return &Painter{dst: dst, scratch: make(map[image.Point]*ebiten.Image)}
}

// Paint implements arbor.Painter.
func (p *Painter) Paint(item arbor.PaintItem) {
	lb := item.Label
	if lb == nil {
		return
	}
	b := item.Bounds
	if lb.Background.A > 0 {
		vector.DrawFilledRect(p.dst, float32(b.X), float32(b.Y), float32(b.Width), float32(b.Height),
			lb.Background.RGBA(), false)
	}
	if lb.Text == "" || lb.Color.A <= 0 {
		return
	}

	size := image.Pt(len(lb.Text)*glyphW, glyphH)
	img := p.scratch[size]
	if img == nil {
		img = ebiten.NewImage(size.X, size.Y)
		p.scratch[size] = img
	}
	img.Clear()
	ebitenutil.DebugPrint(img, lb.Text)

	scale := 1.0
	if lb.FontSize > 0 {
		scale = lb.FontSize / glyphH
	}
	w := float64(size.X) * scale
	x := b.X
	switch lb.Align {
	case arbor.AlignCenter:
		x += (b.Width - w) / 2
	case arbor.AlignRight:
		x += b.Width - w
	}

	var op ebiten.DrawImageOptions
	op.GeoM.Scale(scale, scale)
	op.GeoM.Translate(x, b.Y)
	op.ColorScale.ScaleWithColor(lb.Color.RGBA())
	p.dst.DrawImage(img, &op)
}

// PaintStats counts painted labels. Used by the debug overlay.
type PaintStats struct {
	Nodes  int
	Labels int
}

// countingPainter wraps a Painter and counts calls.
type countingPainter struct {
	inner arbor.Painter
	stats PaintStats
}

func (c *countingPainter) Paint(item arbor.PaintItem) {
	c.stats.Nodes++
	if item.Label != nil {
		c.stats.Labels++
	}
	c.inner.Paint(item)
}

func (c *countingPainter) reset() PaintStats {
	s := c.stats
	c.stats = PaintStats{}
	return s
}

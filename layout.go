package arbor

// Layout positions an entity in screen space, relative to its immediate
// parent's Layout. When the immediate parent has no Layout, or there is no
// parent, X and Y are absolute. Grandparents are never consulted.
//
//	absX = parentAbsX + AnchorX*parentWidth + X
//	absY = parentAbsY + AnchorY*parentHeight + Y
//
// Anchors are conventionally in [0, 1]: (0, 0) is the parent's top-left
// corner, (0.5, 0.5) its center. Values outside that range are allowed.
// The absolute position is recomputed on every call and never cached.
type Layout struct {
	ComponentBase

	X, Y             float64
	Width, Height    float64
	AnchorX, AnchorY float64

	// Visible hides the entity and its whole subtree from hit testing and
	// painting when false.
	Visible bool
}

// NewLayout creates a visible layout at (x, y) with the given size.
func NewLayout(x, y, w, h float64) *Layout {
	return &Layout{X: x, Y: y, Width: w, Height: h, Visible: true}
}

// Tag implements Component.
func (*Layout) Tag() ComponentTag { return TagLayout }

// SetPosition sets the local offset.
func (l *Layout) SetPosition(x, y float64) {
	l.X, l.Y = x, y
}

// SetSize sets the width and height.
func (l *Layout) SetSize(w, h float64) {
	l.Width, l.Height = w, h
}

// SetAnchor sets the anchor fractions.
func (l *Layout) SetAnchor(ax, ay float64) {
	l.AnchorX, l.AnchorY = ax, ay
}

// AbsolutePosition returns the top-left corner in screen space. Only the
// immediate parent is consulted: if it has no Layout, the local offset is the
// absolute position.
func (l *Layout) AbsolutePosition() Vec2 {
	pos := Vec2{X: l.X, Y: l.Y}
	p := l.parentLayout()
	if p == nil {
		return pos
	}
	pp := p.AbsolutePosition()
	pos.X = pp.X + l.AnchorX*p.Width + l.X
	pos.Y = pp.Y + l.AnchorY*p.Height + l.Y
	return pos
}

// Bounds returns the screen-space rectangle.
func (l *Layout) Bounds() Rect {
	pos := l.AbsolutePosition()
	return Rect{X: pos.X, Y: pos.Y, Width: l.Width, Height: l.Height}
}

// Contains reports whether the screen point (x, y) lies inside the rectangle,
// edges included.
func (l *Layout) Contains(x, y float64) bool {
	return l.Bounds().Contains(x, y)
}

// OnDetach resets every field to the zero layout.
func (l *Layout) OnDetach() {
	l.X, l.Y = 0, 0
	l.Width, l.Height = 0, 0
	l.AnchorX, l.AnchorY = 0, 0
	l.Visible = true
}

func (l *Layout) parentLayout() *Layout {
	e := l.Entity()
	if e == nil {
		return nil
	}
	p := e.Parent()
	if p == nil {
		return nil
	}
	return p.Layout()
}

package arbor

// DragContext carries drag event data passed to drag callbacks.
type DragContext struct {
	Entity         *Entity  // the dragged entity; nil if a callback disposed it
	EntityID       EntityID // handle of the dragged entity
	X, Y           float64  // current pointer position in screen pixels
	StartX, StartY float64  // pointer position when the drag began
	DeltaX, DeltaY float64  // X-StartX, Y-StartY
	Layer          Layer    // which tree the target belongs to
}

// dragSession is the transient state of one drag: the pointer's start
// coordinates and the entity's own coordinates when the drag began.
type dragSession struct {
	active           bool
	startX, startY   float64
	originX, originY float64
	lastX, lastY     float64
}

func (s *dragSession) begin(x, y float64, origin Vec2) {
	s.active = true
	s.startX, s.startY = x, y
	s.originX, s.originY = origin.X, origin.Y
	s.lastX, s.lastY = x, y
}

// target returns origin + (current - start).
func (s *dragSession) target(x, y float64) (float64, float64) {
	return s.originX + (x - s.startX), s.originY + (y - s.startY)
}

func (s *dragSession) context(b *ComponentBase, x, y float64, layer Layer) DragContext {
	return DragContext{
		Entity:   b.Entity(),
		EntityID: b.owner,
		X:        x,
		Y:        y,
		StartX:   s.startX,
		StartY:   s.startY,
		DeltaX:   x - s.startX,
		DeltaY:   y - s.startY,
		Layer:    layer,
	}
}

// UIDrag makes a layout-bearing UI entity draggable. While a drag is open the
// Layout offset follows the pointer: X, Y = origin + (pointer - start).
type UIDrag struct {
	ComponentBase
	OnDragStart func(DragContext)
	OnDrag      func(DragContext)
	OnDragEnd   func(DragContext)

	disabled bool
	session  dragSession
}

// NewUIDrag creates an enabled UI drag target with no callbacks.
func NewUIDrag() *UIDrag {
	return &UIDrag{}
}

// Tag implements Component.
func (*UIDrag) Tag() ComponentTag { return TagUIDrag }

// SetEnabled enables or disables the drag target. Disabling does not end a
// drag that is already open.
func (d *UIDrag) SetEnabled(enabled bool) { d.disabled = !enabled }

// Enabled reports whether the drag target accepts new drags.
func (d *UIDrag) Enabled() bool { return !d.disabled }

// Dragging reports whether a drag session is open.
func (d *UIDrag) Dragging() bool { return d.session.active }

// Origin returns the Layout offset captured when the current drag began.
func (d *UIDrag) Origin() Vec2 { return Vec2{X: d.session.originX, Y: d.session.originY} }

// Contains hit-tests (x, y) against the co-located Layout.
func (d *UIDrag) Contains(x, y float64) bool {
	l := d.layout()
	return l != nil && l.Contains(x, y)
}

// Begin opens a drag session at pointer (x, y) and fires OnDragStart.
func (d *UIDrag) Begin(x, y float64) DragContext {
	var origin Vec2
	if l := d.layout(); l != nil {
		origin = Vec2{X: l.X, Y: l.Y}
	}
	d.session.begin(x, y, origin)
	ctx := d.session.context(&d.ComponentBase, x, y, LayerUI)
	if d.OnDragStart != nil {
		d.OnDragStart(ctx)
	}
	return ctx
}

// Move repositions the Layout for pointer (x, y) and fires OnDrag.
func (d *UIDrag) Move(x, y float64) DragContext {
	d.session.lastX, d.session.lastY = x, y
	if l := d.layout(); l != nil {
		l.X, l.Y = d.session.target(x, y)
	}
	ctx := d.session.context(&d.ComponentBase, x, y, LayerUI)
	if d.OnDrag != nil {
		d.OnDrag(ctx)
	}
	return ctx
}

// End closes the drag session and fires OnDragEnd.
func (d *UIDrag) End(x, y float64) DragContext {
	ctx := d.session.context(&d.ComponentBase, x, y, LayerUI)
	d.session.active = false
	if d.OnDragEnd != nil {
		d.OnDragEnd(ctx)
	}
	return ctx
}

// OnDetach drops the callbacks and any open session.
func (d *UIDrag) OnDetach() {
	d.OnDragStart, d.OnDrag, d.OnDragEnd = nil, nil, nil
	d.disabled = false
	d.session = dragSession{}
}

func (d *UIDrag) layout() *Layout {
	l, _ := d.sibling(TagLayout).(*Layout)
	return l
}

// GameDrag makes a game-layer entity draggable through a HitArea. While a
// drag is open, SetPosition receives origin + (pointer - start), where origin
// is the position reported by the accessor when the drag began.
type GameDrag struct {
	ComponentBase
	HitArea
	SetPosition func(x, y float64)

	OnDragStart func(DragContext)
	OnDrag      func(DragContext)
	OnDragEnd   func(DragContext)

	disabled bool
	session  dragSession
}

// NewGameDrag creates an enabled game-layer drag target. area.Position and
// setPosition read and write the entity's simulation-space coordinates.
func NewGameDrag(area HitArea, setPosition func(x, y float64)) *GameDrag {
	return &GameDrag{HitArea: area, SetPosition: setPosition}
}

// Tag implements Component.
func (*GameDrag) Tag() ComponentTag { return TagGameDrag }

// SetEnabled enables or disables the drag target.
func (d *GameDrag) SetEnabled(enabled bool) { d.disabled = !enabled }

// Enabled reports whether the drag target accepts new drags.
func (d *GameDrag) Enabled() bool { return !d.disabled }

// Dragging reports whether a drag session is open.
func (d *GameDrag) Dragging() bool { return d.session.active }

// Origin returns the position captured when the current drag began.
func (d *GameDrag) Origin() Vec2 { return Vec2{X: d.session.originX, Y: d.session.originY} }

// Begin opens a drag session at pointer (x, y) and fires OnDragStart.
func (d *GameDrag) Begin(x, y float64) DragContext {
	d.session.begin(x, y, d.Pos())
	ctx := d.session.context(&d.ComponentBase, x, y, LayerGame)
	if d.OnDragStart != nil {
		d.OnDragStart(ctx)
	}
	return ctx
}

// Move calls SetPosition for pointer (x, y) and fires OnDrag.
func (d *GameDrag) Move(x, y float64) DragContext {
	d.session.lastX, d.session.lastY = x, y
	if d.SetPosition != nil {
		d.SetPosition(d.session.target(x, y))
	}
	ctx := d.session.context(&d.ComponentBase, x, y, LayerGame)
	if d.OnDrag != nil {
		d.OnDrag(ctx)
	}
	return ctx
}

// End closes the drag session and fires OnDragEnd.
func (d *GameDrag) End(x, y float64) DragContext {
	ctx := d.session.context(&d.ComponentBase, x, y, LayerGame)
	d.session.active = false
	if d.OnDragEnd != nil {
		d.OnDragEnd(ctx)
	}
	return ctx
}

// OnDetach drops the callbacks, accessors, and any open session.
func (d *GameDrag) OnDetach() {
	d.OnDragStart, d.OnDrag, d.OnDragEnd = nil, nil, nil
	d.Position = nil
	d.SetPosition = nil
	d.disabled = false
	d.session = dragSession{}
}

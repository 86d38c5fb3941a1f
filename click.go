package arbor

// ClickContext carries click event data passed to click callbacks.
type ClickContext struct {
	Entity   *Entity  // the clicked entity
	EntityID EntityID // handle of the clicked entity, valid even if the callback disposes it
	X, Y     float64  // touch-end position in screen pixels
	Layer    Layer    // which tree the target belongs to
}

// HitArea is a simulation-space hit rectangle: (offset, size) relative to a
// caller-supplied position accessor. A nil Position reads as the origin.
type HitArea struct {
	OffsetX, OffsetY float64
	Width, Height    float64
	Position         func() Vec2
}

// Pos returns the current position reported by the accessor.
func (a *HitArea) Pos() Vec2 {
	if a.Position == nil {
		return Vec2{}
	}
	return a.Position()
}

// Bounds returns the hit rectangle in screen pixels.
func (a *HitArea) Bounds() Rect {
	p := a.Pos()
	return Rect{X: p.X + a.OffsetX, Y: p.Y + a.OffsetY, Width: a.Width, Height: a.Height}
}

// Contains reports whether (x, y) lies inside the hit rectangle, edges
// included.
func (a *HitArea) Contains(x, y float64) bool {
	return a.Bounds().Contains(x, y)
}

// UIClick makes a layout-bearing UI entity clickable. Its hit rectangle is the
// co-located Layout's bounds. A click is actionable only while enabled and
// with OnClick set.
type UIClick struct {
	ComponentBase
	OnClick  func(ClickContext)
	disabled bool
}

// NewUIClick creates an enabled UI click target.
func NewUIClick(fn func(ClickContext)) *UIClick {
	return &UIClick{OnClick: fn}
}

// Tag implements Component.
func (*UIClick) Tag() ComponentTag { return TagUIClick }

// SetEnabled enables or disables the click target.
func (c *UIClick) SetEnabled(enabled bool) { c.disabled = !enabled }

// Enabled reports the enabled flag, regardless of whether a callback is set.
func (c *UIClick) Enabled() bool { return !c.disabled }

// Actionable reports whether a click would fire a callback.
func (c *UIClick) Actionable() bool { return !c.disabled && c.OnClick != nil }

// Contains hit-tests (x, y) against the co-located Layout. Entities without a
// Layout are never hit.
func (c *UIClick) Contains(x, y float64) bool {
	l, _ := c.sibling(TagLayout).(*Layout)
	return l != nil && l.Contains(x, y)
}

// Click fires OnClick at (x, y) if the target is actionable. Returns whether
// the callback ran.
func (c *UIClick) Click(x, y float64) bool {
	if !c.Actionable() {
		return false
	}
	c.OnClick(ClickContext{Entity: c.Entity(), EntityID: c.owner, X: x, Y: y, Layer: LayerUI})
	return true
}

// OnDetach clears the callback so a detached target can never fire.
func (c *UIClick) OnDetach() {
	c.OnClick = nil
	c.disabled = false
}

// GameClick makes a game-layer entity clickable through a HitArea.
type GameClick struct {
	ComponentBase
	HitArea
	OnClick  func(ClickContext)
	disabled bool
}

// NewGameClick creates an enabled game-layer click target with the given
// hit area.
func NewGameClick(area HitArea, fn func(ClickContext)) *GameClick {
	return &GameClick{HitArea: area, OnClick: fn}
}

// Tag implements Component.
func (*GameClick) Tag() ComponentTag { return TagGameClick }

// SetEnabled enables or disables the click target.
func (c *GameClick) SetEnabled(enabled bool) { c.disabled = !enabled }

// Enabled reports the enabled flag, regardless of whether a callback is set.
func (c *GameClick) Enabled() bool { return !c.disabled }

// Actionable reports whether a click would fire a callback.
func (c *GameClick) Actionable() bool { return !c.disabled && c.OnClick != nil }

// Click fires OnClick at (x, y) if the target is actionable. Returns whether
// the callback ran.
func (c *GameClick) Click(x, y float64) bool {
	if !c.Actionable() {
		return false
	}
	c.OnClick(ClickContext{Entity: c.Entity(), EntityID: c.owner, X: x, Y: y, Layer: LayerGame})
	return true
}

// OnDetach clears the callbacks and the position accessor.
func (c *GameClick) OnDetach() {
	c.OnClick = nil
	c.Position = nil
	c.disabled = false
}

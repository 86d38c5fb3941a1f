package arbor

// PaintItem is one visible UI node handed to a Painter.
type PaintItem struct {
	Entity *Entity
	Bounds Rect   // absolute layout bounds in screen pixels
	Label  *Label // nil when the node has no label
	Depth  int    // distance from the UI root
}

// Painter draws UI nodes onto the UI surface. The host supplies one through
// ScreenData.Painter; see the host package for the ebiten implementation.
type Painter interface {
	Paint(item PaintItem)
}

// PainterFunc adapts a function to Painter.
type PainterFunc func(item PaintItem)

// Paint implements Painter.
func (f PainterFunc) Paint(item PaintItem) { f(item) }

// UIRenderSystem hands the visible UI tree to ScreenData.Painter every frame,
// depth-first from ScreenData.UIRoot. The traversal is the one the UI router
// hit-tests with, so the last node painted is the first one hit.
type UIRenderSystem struct {
	SystemBase
}

// NewUIRenderSystem is a SystemConstructor.
func NewUIRenderSystem(bus *EventBus, data *Registry, entities *EntityTable) System {
	return &UIRenderSystem{SystemBase: NewSystemBase(bus, data, entities)}
}

// Update paints the tree. It does nothing without a painter or a root.
func (s *UIRenderSystem) Update(float64) {
	if s.entities == nil {
		return
	}
	sd, ok := s.screen()
	if !ok || sd.Painter == nil || sd.UIRoot == 0 {
		return
	}
	root, ok := s.entities.Get(sd.UIRoot)
	if !ok {
		return
	}
	paintUI(sd.Painter, root, 0)
}

func paintUI(p Painter, e *Entity, depth int) {
	l := e.Layout()
	if l == nil || !l.Visible {
		return
	}
	p.Paint(PaintItem{Entity: e, Bounds: l.Bounds(), Label: e.Label(), Depth: depth})
	for _, child := range e.Children() {
		paintUI(p, child, depth+1)
	}
}

// PaintOrder appends the visible UI nodes under root (inclusive) in the order
// UIRenderSystem paints them.
func PaintOrder(root *Entity, buf []*Entity) []*Entity {
	return collectUI(root, buf, func(*Entity) bool { return true })
}

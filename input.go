package arbor

import "go.uber.org/zap"

// Bus topics the UI router publishes for touches it does not claim. Payloads
// are built with TouchPayload.
const (
	TopicTouchStart = "input_touch_start"
	TopicTouchMove  = "input_touch_move"
	TopicTouchEnd   = "input_touch_end"
)

// --- UI router ---

// UIInputSystem receives raw pointer input and hit-tests the UI tree first.
// A touch start over an enabled UIDrag opens a drag session that owns the rest
// of the touch; otherwise start, move, and end are republished on the bus for
// GameInputSystem. On touch end with no open drag, the topmost actionable
// UIClick fires and the end is not republished.
//
// Candidates are collected depth-first from ScreenData.UIRoot in paint order
// (parents before children, earlier siblings before later ones) and scanned in
// reverse, so the last-painted target wins. A node without a Layout, or with
// Visible false, prunes its whole subtree.
type UIInputSystem struct {
	SystemBase
	touch  *TouchData
	log    *zap.Logger
	source TouchSource

	active   *UIDrag
	activeID EntityID

	hitBuf []*Entity
}

// NewUIInputSystem is a SystemConstructor. If TouchData.Source is already set,
// the router registers with it immediately; a source set later is picked up on
// the next Update.
func NewUIInputSystem(bus *EventBus, data *Registry, entities *EntityTable) System {
	s := &UIInputSystem{
		SystemBase: NewSystemBase(bus, data, entities),
		touch:      ensure[TouchData](data),
		log:        bus.Logger(),
	}
	s.syncSource()
	return s
}

// Update registers with the current touch source and polls it.
func (s *UIInputSystem) Update(float64) {
	if s.touch == nil {
		return
	}
	s.syncSource()
	if p, ok := s.source.(Poller); ok {
		p.Poll()
	}
}

func (s *UIInputSystem) syncSource() {
	if s.touch.Source == s.source {
		return
	}
	if s.source != nil {
		s.source.Unregister(s)
	}
	s.source = s.touch.Source
	if s.source != nil {
		s.source.Register(s)
	}
}

// Dragging reports whether a UI drag owns the current touch.
func (s *UIInputSystem) Dragging() bool {
	return s.activeDrag() != nil
}

// TouchStart implements TouchHandler.
func (s *UIInputSystem) TouchStart(x, y float64) {
	if s.touch == nil {
		return
	}
	td := s.touch
	td.begin(x, y)
	s.active, s.activeID = nil, 0
	s.log.Debug("touch start",
		zap.Stringer("session", td.SessionID), zap.Float64("x", x), zap.Float64("y", y))

	if root := s.uiRoot(); root != nil {
		s.hitBuf = CollectUIDragTargets(root, s.hitBuf[:0])
		for i := len(s.hitBuf) - 1; i >= 0; i-- {
			d := s.hitBuf[i].UIDrag()
			if d == nil || !d.Enabled() || !d.Contains(x, y) {
				continue
			}
			s.active, s.activeID = d, d.EntityID()
			td.Owner = OwnerUI
			s.log.Debug("touch claimed by ui drag",
				zap.Stringer("session", td.SessionID), zap.Uint64("entity", uint64(s.activeID)))
			ctx := d.Begin(x, y)
			td.emit(dragEvent(EventDragStart, ctx))
			return
		}
	}
	s.bus.Publish(TopicTouchStart, TouchPayload(x, y))
}

// TouchMove implements TouchHandler.
func (s *UIInputSystem) TouchMove(x, y float64) {
	if s.touch == nil {
		return
	}
	td := s.touch
	td.LastX, td.LastY = x, y
	if td.Owner == OwnerUI {
		if d := s.activeDrag(); d != nil {
			ctx := d.Move(x, y)
			td.emit(dragEvent(EventDrag, ctx))
		}
		return
	}
	s.bus.Publish(TopicTouchMove, TouchPayload(x, y))
}

// TouchEnd implements TouchHandler.
func (s *UIInputSystem) TouchEnd(x, y float64) {
	if s.touch == nil {
		return
	}
	td := s.touch
	td.LastX, td.LastY = x, y

	switch td.Owner {
	case OwnerUI:
		d := s.activeDrag()
		s.active, s.activeID = nil, 0
		if d != nil {
			ctx := d.End(x, y)
			td.emit(dragEvent(EventDragEnd, ctx))
		}
		s.endSession(td)
		return
	case OwnerGame:
		s.bus.Publish(TopicTouchEnd, TouchPayload(x, y))
		s.endSession(td)
		return
	}

	if root := s.uiRoot(); root != nil {
		s.hitBuf = CollectUIClickTargets(root, s.hitBuf[:0])
		for i := len(s.hitBuf) - 1; i >= 0; i-- {
			c := s.hitBuf[i].UIClick()
			if c == nil || !c.Actionable() || !c.Contains(x, y) {
				continue
			}
			id := c.EntityID()
			s.log.Debug("ui click",
				zap.Stringer("session", td.SessionID), zap.Uint64("entity", uint64(id)))
			c.Click(x, y)
			td.emit(InteractionEvent{Type: EventClick, Layer: LayerUI, EntityID: id, X: x, Y: y})
			s.endSession(td)
			return
		}
	}
	s.bus.Publish(TopicTouchEnd, TouchPayload(x, y))
	s.endSession(td)
}

// Cancel ends an open UI drag at the last pointer position, as if the touch
// had ended there, without running click detection. Use it when the host
// loses the pointer without delivering an end (for example on suspend).
func (s *UIInputSystem) Cancel() {
	if s.touch == nil || s.touch.Owner != OwnerUI {
		return
	}
	td := s.touch
	d := s.activeDrag()
	s.active, s.activeID = nil, 0
	if d != nil {
		ctx := d.End(td.LastX, td.LastY)
		td.emit(dragEvent(EventDragEnd, ctx))
	}
	s.endSession(td)
}

// Dispose unregisters from the touch source and drops the session state.
func (s *UIInputSystem) Dispose() {
	if s.source != nil {
		s.source.Unregister(s)
		s.source = nil
	}
	s.active, s.activeID = nil, 0
	s.touch = nil
	s.hitBuf = nil
	s.SystemBase.Dispose()
}

// endSession closes td. Callbacks may have disposed the router by now, so it
// never reads s.touch.
func (s *UIInputSystem) endSession(td *TouchData) {
	s.log.Debug("touch end", zap.Stringer("session", td.SessionID))
	td.finish()
}

// activeDrag returns the open drag if it is still attached to the entity
// that began it.
func (s *UIInputSystem) activeDrag() *UIDrag {
	if s.active == nil || !s.active.Attached() || s.active.EntityID() != s.activeID {
		return nil
	}
	return s.active
}

func (s *UIInputSystem) uiRoot() *Entity {
	sd, ok := s.screen()
	if !ok || sd.UIRoot == 0 {
		return nil
	}
	e, _ := s.entities.Get(sd.UIRoot)
	return e
}

// CollectUIDragTargets appends, in paint order, every entity under root
// (inclusive) holding an enabled UIDrag whose path from root is visible.
func CollectUIDragTargets(root *Entity, buf []*Entity) []*Entity {
	return collectUI(root, buf, func(e *Entity) bool {
		d := e.UIDrag()
		return d != nil && d.Enabled()
	})
}

// CollectUIClickTargets appends, in paint order, every entity under root
// (inclusive) holding an actionable UIClick whose path from root is visible.
func CollectUIClickTargets(root *Entity, buf []*Entity) []*Entity {
	return collectUI(root, buf, func(e *Entity) bool {
		c := e.UIClick()
		return c != nil && c.Actionable()
	})
}

// collectUI walks the UI tree depth-first, skipping any subtree whose root has
// no Layout or is invisible.
func collectUI(e *Entity, buf []*Entity, want func(*Entity) bool) []*Entity {
	if e == nil {
		return buf
	}
	l := e.Layout()
	if l == nil || !l.Visible {
		return buf
	}
	if want(e) {
		buf = append(buf, e)
	}
	h := e.Hierarchy()
	if h == nil {
		return buf
	}
	for _, id := range h.children {
		if child, ok := h.entities.Get(id); ok {
			buf = collectUI(child, buf, want)
		}
	}
	return buf
}

// --- Game-layer router ---

// GameInputSystem hit-tests game-layer entities for touches the UI router
// republished. There is no tree walk: candidates are every entity in creation
// order, scanned in reverse so the most recently created target wins.
type GameInputSystem struct {
	SystemBase
	touch *TouchData
	log   *zap.Logger

	active   *GameDrag
	activeID EntityID

	hitBuf []*Entity
}

// NewGameInputSystem is a SystemConstructor. The router subscribes to the
// touch topics immediately.
func NewGameInputSystem(bus *EventBus, data *Registry, entities *EntityTable) System {
	s := &GameInputSystem{
		SystemBase: NewSystemBase(bus, data, entities),
		touch:      ensure[TouchData](data),
		log:        bus.Logger(),
	}
	bus.Subscribe(TopicTouchStart, s)
	bus.Subscribe(TopicTouchMove, s)
	bus.Subscribe(TopicTouchEnd, s)
	return s
}

// HandleEvent implements Handler.
func (s *GameInputSystem) HandleEvent(topic string, _ *EventBus, payload Payload) {
	if s.entities == nil {
		return
	}
	x, y := payload.Point()
	switch topic {
	case TopicTouchStart:
		s.touchStart(x, y)
	case TopicTouchMove:
		s.touchMove(x, y)
	case TopicTouchEnd:
		s.touchEnd(x, y)
	}
}

// Dragging reports whether a game-layer drag owns the current touch.
func (s *GameInputSystem) Dragging() bool {
	return s.activeDrag() != nil
}

func (s *GameInputSystem) touchStart(x, y float64) {
	td := s.touch
	s.active, s.activeID = nil, 0
	s.hitBuf = s.entities.AppendSnapshot(s.hitBuf[:0])
	for i := len(s.hitBuf) - 1; i >= 0; i-- {
		d := s.hitBuf[i].GameDrag()
		if d == nil || !d.Enabled() || !d.Contains(x, y) {
			continue
		}
		s.active, s.activeID = d, d.EntityID()
		td.Owner = OwnerGame
		s.log.Debug("touch claimed by game drag",
			zap.Stringer("session", td.SessionID), zap.Uint64("entity", uint64(s.activeID)))
		ctx := d.Begin(x, y)
		td.emit(dragEvent(EventDragStart, ctx))
		return
	}
}

func (s *GameInputSystem) touchMove(x, y float64) {
	td := s.touch
	if d := s.activeDrag(); d != nil {
		ctx := d.Move(x, y)
		td.emit(dragEvent(EventDrag, ctx))
	}
}

func (s *GameInputSystem) touchEnd(x, y float64) {
	td := s.touch
	if s.active != nil {
		d := s.activeDrag()
		s.active, s.activeID = nil, 0
		if td.Owner == OwnerGame {
			td.Owner = OwnerNone
		}
		if d != nil {
			ctx := d.End(x, y)
			td.emit(dragEvent(EventDragEnd, ctx))
		}
		return
	}

	s.hitBuf = s.entities.AppendSnapshot(s.hitBuf[:0])
	for i := len(s.hitBuf) - 1; i >= 0; i-- {
		c := s.hitBuf[i].GameClick()
		if c == nil || !c.Actionable() || !c.Contains(x, y) {
			continue
		}
		id := c.EntityID()
		s.log.Debug("game click",
			zap.Stringer("session", td.SessionID), zap.Uint64("entity", uint64(id)))
		c.Click(x, y)
		td.emit(InteractionEvent{Type: EventClick, Layer: LayerGame, EntityID: id, X: x, Y: y})
		return
	}
}

// Cancel ends an open game-layer drag at the last pointer position without
// running click detection.
func (s *GameInputSystem) Cancel() {
	td := s.touch
	if s.active == nil || td == nil {
		return
	}
	d := s.activeDrag()
	s.active, s.activeID = nil, 0
	if d != nil {
		ctx := d.End(td.LastX, td.LastY)
		td.emit(dragEvent(EventDragEnd, ctx))
	}
	if td.Owner == OwnerGame {
		td.finish()
	}
}

// Dispose unsubscribes from the touch topics and drops the session state.
func (s *GameInputSystem) Dispose() {
	if s.bus != nil {
		s.bus.Unsubscribe(TopicTouchStart, s)
		s.bus.Unsubscribe(TopicTouchMove, s)
		s.bus.Unsubscribe(TopicTouchEnd, s)
	}
	s.active, s.activeID = nil, 0
	s.touch = nil
	s.hitBuf = nil
	s.SystemBase.Dispose()
}

func (s *GameInputSystem) activeDrag() *GameDrag {
	if s.active == nil || !s.active.Attached() || s.active.EntityID() != s.activeID {
		return nil
	}
	return s.active
}

func dragEvent(t EventType, ctx DragContext) InteractionEvent {
	return InteractionEvent{
		Type:     t,
		Layer:    ctx.Layer,
		EntityID: ctx.EntityID,
		X:        ctx.X,
		Y:        ctx.Y,
		StartX:   ctx.StartX,
		StartY:   ctx.StartY,
		DeltaX:   ctx.DeltaX,
		DeltaY:   ctx.DeltaY,
	}
}

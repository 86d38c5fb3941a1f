package arbor

import (
	"sync/atomic"

	"go.uber.org/zap"
)

// EntityID is a process-unique entity handle. IDs increase monotonically and
// are never reused; zero means "no entity".
type EntityID uint64

var entityIDCounter atomic.Uint64

func nextEntityID() EntityID {
	return EntityID(entityIDCounter.Add(1))
}

// Entity is a container of at most one component per tag. Every live entity
// carries a Hierarchy component, attached at creation before anything else.
type Entity struct {
	id         EntityID
	components map[ComponentTag]Component
	table      *EntityTable
	bus        *EventBus
	data       *Registry
	log        *zap.Logger
	disposed   bool
}

// Preset configures a freshly created entity, typically by attaching
// components. Presets take the place of entity subclasses.
type Preset func(e *Entity)

// newEntity creates an entity bound to a session and attaches its hierarchy.
func newEntity(table *EntityTable, bus *EventBus, data *Registry, log *zap.Logger) *Entity {
	e := &Entity{
		id:         nextEntityID(),
		components: make(map[ComponentTag]Component),
		table:      table,
		bus:        bus,
		data:       data,
		log:        orNop(log),
	}
	table.add(e)
	e.Attach(&Hierarchy{})
	return e
}

// ID returns the entity handle.
func (e *Entity) ID() EntityID {
	return e.id
}

// Disposed reports whether Dispose has been called.
func (e *Entity) Disposed() bool {
	return e.disposed
}

// Attach stores c under its tag and initializes it. An existing component with
// the same tag is detached first, with a warning. Attaching a component that
// is already on e is a no-op. A component still attached to another entity is
// refused with a warning; detach it there first. Returns c, or nil when
// nothing was attached.
func (e *Entity) Attach(c Component) Component {
	if c == nil {
		e.log.Warn("attach: nil component", zap.Uint64("entity", uint64(e.id)))
		return nil
	}
	tag := c.Tag()
	if e.disposed {
		e.log.Warn("attach: entity is disposed",
			zap.Uint64("entity", uint64(e.id)), zap.Stringer("tag", tag))
		return nil
	}
	if b := c.base(); b.attached {
		if b.owner == e.id {
			return c
		}
		e.log.Warn("attach: component belongs to another entity",
			zap.Uint64("entity", uint64(e.id)), zap.Uint64("owner", uint64(b.owner)), zap.Stringer("tag", tag))
		return nil
	}
	if old, ok := e.components[tag]; ok {
		if tag == TagHierarchy {
			e.log.Warn("attach: hierarchy cannot be replaced", zap.Uint64("entity", uint64(e.id)))
			return nil
		}
		e.log.Warn("attach: component already exists, replacing",
			zap.Uint64("entity", uint64(e.id)), zap.Stringer("tag", tag))
		detachComponent(old)
		delete(e.components, tag)
	}
	e.components[tag] = c
	attachComponent(c, e)
	return c
}

// Detach disposes and removes the component with tag. Returns false if the
// entity has no such component. The hierarchy of a live entity cannot be
// detached; use Dispose instead.
func (e *Entity) Detach(tag ComponentTag) bool {
	if tag == TagHierarchy && !e.disposed {
		e.log.Warn("detach: hierarchy is required while the entity is alive",
			zap.Uint64("entity", uint64(e.id)))
		return false
	}
	return e.detach(tag)
}

func (e *Entity) detach(tag ComponentTag) bool {
	c, ok := e.components[tag]
	if !ok {
		return false
	}
	detachComponent(c)
	delete(e.components, tag)
	return true
}

// Get returns the component with tag.
func (e *Entity) Get(tag ComponentTag) (Component, bool) {
	c, ok := e.components[tag]
	return c, ok
}

// Has reports whether the entity holds a component with tag.
func (e *Entity) Has(tag ComponentTag) bool {
	_, ok := e.components[tag]
	return ok
}

// Tags returns the tags of every held component, in no particular order.
func (e *Entity) Tags() []ComponentTag {
	tags := make([]ComponentTag, 0, len(e.components))
	for tag := range e.components {
		tags = append(tags, tag)
	}
	return tags
}

// Dispose detaches every component, removes the entity from its session
// table, and drops the bus and registry references. A second call is a no-op.
func (e *Entity) Dispose() {
	if e.disposed {
		return
	}
	e.disposed = true
	for tag := range e.components {
		e.detach(tag)
	}
	clear(e.components)
	if e.table != nil {
		e.table.remove(e.id)
	}
	e.table = nil
	e.bus = nil
	e.data = nil
}

// --- Typed accessors ---

// Hierarchy returns the entity's hierarchy component, or nil once disposed.
func (e *Entity) Hierarchy() *Hierarchy {
	h, _ := e.components[TagHierarchy].(*Hierarchy)
	return h
}

// Layout returns the entity's layout component, or nil.
func (e *Entity) Layout() *Layout {
	l, _ := e.components[TagLayout].(*Layout)
	return l
}

// Label returns the entity's label component, or nil.
func (e *Entity) Label() *Label {
	l, _ := e.components[TagLabel].(*Label)
	return l
}

// UIClick returns the entity's UI click component, or nil.
func (e *Entity) UIClick() *UIClick {
	c, _ := e.components[TagUIClick].(*UIClick)
	return c
}

// UIDrag returns the entity's UI drag component, or nil.
func (e *Entity) UIDrag() *UIDrag {
	d, _ := e.components[TagUIDrag].(*UIDrag)
	return d
}

// GameClick returns the entity's game-layer click component, or nil.
func (e *Entity) GameClick() *GameClick {
	c, _ := e.components[TagGameClick].(*GameClick)
	return c
}

// GameDrag returns the entity's game-layer drag component, or nil.
func (e *Entity) GameDrag() *GameDrag {
	d, _ := e.components[TagGameDrag].(*GameDrag)
	return d
}

// --- Hierarchy shortcuts ---

// SetParent reparents the entity. A nil parent makes it a root.
func (e *Entity) SetParent(parent *Entity) {
	if h := e.Hierarchy(); h != nil {
		h.SetParent(parent)
	}
}

// Parent returns the parent entity, or nil for a root.
func (e *Entity) Parent() *Entity {
	if h := e.Hierarchy(); h != nil {
		return h.Parent()
	}
	return nil
}

// AddChild makes child a child of e.
func (e *Entity) AddChild(child *Entity) {
	if h := e.Hierarchy(); h != nil {
		h.AddChild(child)
	}
}

// RemoveChild detaches child from e. Returns false if child is not a child of e.
func (e *Entity) RemoveChild(child *Entity) bool {
	if h := e.Hierarchy(); h != nil {
		return h.RemoveChild(child)
	}
	return false
}

// Children returns a snapshot of the child entities in insertion order.
func (e *Entity) Children() []*Entity {
	if h := e.Hierarchy(); h != nil {
		return h.Children()
	}
	return nil
}

// EntityTable is the session's registry of live entities, kept in creation
// order. Systems receive it at construction and read it during updates.
type EntityTable struct {
	byID  map[EntityID]*Entity
	order []EntityID
}

// NewEntityTable creates an empty table.
func NewEntityTable() *EntityTable {
	return &EntityTable{byID: make(map[EntityID]*Entity)}
}

// Get returns the live entity with id.
func (t *EntityTable) Get(id EntityID) (*Entity, bool) {
	if t == nil || id == 0 {
		return nil, false
	}
	e, ok := t.byID[id]
	return e, ok
}

// Len returns the number of live entities.
func (t *EntityTable) Len() int {
	return len(t.order)
}

// Snapshot returns the live entities in creation order. The slice is a copy;
// mutating the table while iterating it is safe.
func (t *EntityTable) Snapshot() []*Entity {
	return t.AppendSnapshot(make([]*Entity, 0, len(t.order)))
}

// AppendSnapshot appends the live entities in creation order to buf.
func (t *EntityTable) AppendSnapshot(buf []*Entity) []*Entity {
	for _, id := range t.order {
		buf = append(buf, t.byID[id])
	}
	return buf
}

func (t *EntityTable) add(e *Entity) {
	t.byID[e.id] = e
	t.order = append(t.order, e.id)
}

func (t *EntityTable) remove(id EntityID) {
	if _, ok := t.byID[id]; !ok {
		return
	}
	delete(t.byID, id)
	for i, oid := range t.order {
		if oid == id {
			copy(t.order[i:], t.order[i+1:])
			t.order = t.order[:len(t.order)-1]
			return
		}
	}
}

package arbor

import (
	"fmt"

	"go.uber.org/zap"
)

// ComponentTag identifies a concrete component kind. An entity holds at most
// one component per tag.
type ComponentTag uint16

// Built-in component tags. Application components use TagUser and above.
const (
	TagHierarchy ComponentTag = iota
	TagLayout
	TagLabel
	TagUIClick
	TagUIDrag
	TagGameClick
	TagGameDrag

	// TagUser is the first tag available to application-defined components.
	TagUser ComponentTag = 64
)

var tagNames = [...]string{
	TagHierarchy: "hierarchy",
	TagLayout:    "layout",
	TagLabel:     "label",
	TagUIClick:   "ui_click",
	TagUIDrag:    "ui_drag",
	TagGameClick: "game_click",
	TagGameDrag:  "game_drag",
}

// String returns the tag name.
func (t ComponentTag) String() string {
	if int(t) < len(tagNames) && tagNames[t] != "" {
		return tagNames[t]
	}
	if t >= TagUser {
		return fmt.Sprintf("user_%d", t-TagUser)
	}
	return fmt.Sprintf("tag_%d", uint16(t))
}

// Component is a unit of state or behavior attached to exactly one entity.
// Concrete kinds embed ComponentBase and return a constant from Tag.
type Component interface {
	Tag() ComponentTag
	base() *ComponentBase
}

// Attacher is implemented by components that need setup once attached.
// OnAttach runs after the owner, bus, and registry references are set.
type Attacher interface {
	OnAttach()
}

// Detacher is implemented by components that need teardown. OnDetach runs
// while references are still valid; they are cleared right after.
type Detacher interface {
	OnDetach()
}

// ComponentBase holds the back-references every component receives at attach
// time. The owner is a handle into the session's entity table, so a component
// never keeps its entity alive.
type ComponentBase struct {
	owner    EntityID
	entities *EntityTable
	bus      *EventBus
	data     *Registry
	log      *zap.Logger
	attached bool
}

func (b *ComponentBase) base() *ComponentBase { return b }

// EntityID returns the owning entity handle, or zero when detached.
func (b *ComponentBase) EntityID() EntityID {
	return b.owner
}

// Entity resolves the owning entity. Returns nil when detached.
func (b *ComponentBase) Entity() *Entity {
	if !b.attached {
		return nil
	}
	e, _ := b.entities.Get(b.owner)
	return e
}

// Attached reports whether the component is currently attached.
func (b *ComponentBase) Attached() bool {
	return b.attached
}

// Bus returns the session event bus, or nil when detached.
func (b *ComponentBase) Bus() *EventBus {
	return b.bus
}

// Data returns the session capability registry, or nil when detached.
func (b *ComponentBase) Data() *Registry {
	return b.data
}

// Logger returns the session logger. Detached components get a no-op logger.
func (b *ComponentBase) Logger() *zap.Logger {
	return orNop(b.log)
}

// Subscribe forwards to the session bus. No-op when detached.
func (b *ComponentBase) Subscribe(topic string, h Handler) {
	if b.bus != nil {
		b.bus.Subscribe(topic, h)
	}
}

// Unsubscribe forwards to the session bus. No-op when detached.
func (b *ComponentBase) Unsubscribe(topic string, h Handler) {
	if b.bus != nil {
		b.bus.Unsubscribe(topic, h)
	}
}

// Publish forwards to the session bus. No-op when detached.
func (b *ComponentBase) Publish(topic string, payload Payload) {
	if b.bus != nil {
		b.bus.Publish(topic, payload)
	}
}

// sibling returns the component with tag on the same entity.
func (b *ComponentBase) sibling(tag ComponentTag) Component {
	e := b.Entity()
	if e == nil {
		return nil
	}
	c, _ := e.Get(tag)
	return c
}

// attachComponent binds c to e and runs its attach hook.
func attachComponent(c Component, e *Entity) {
	b := c.base()
	b.owner = e.id
	b.entities = e.table
	b.bus = e.bus
	b.data = e.data
	b.log = e.log
	b.attached = true
	if h, ok := c.(Attacher); ok {
		h.OnAttach()
	}
}

// detachComponent runs the detach hook and clears references. A second call
// is a no-op.
func detachComponent(c Component) {
	b := c.base()
	if !b.attached {
		return
	}
	if h, ok := c.(Detacher); ok {
		h.OnDetach()
	}
	*b = ComponentBase{}
}

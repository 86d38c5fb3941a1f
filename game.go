package arbor

import (
	"fmt"

	"go.uber.org/zap"
)

// Config configures a Game session.
type Config struct {
	// Logger receives configuration warnings and debug traces. Nil disables
	// logging.
	Logger *zap.Logger

	// Screen, when non-nil, is copied into the session's ScreenData record.
	Screen *ScreenInfo
}

// ScreenInfo describes the host's rendering surfaces and dimensions.
type ScreenInfo struct {
	GameSurface Surface
	UISurface   Surface
	Width       float64
	Height      float64
	Painter     Painter
}

// Game is one application session: it owns the event bus, the capability
// registry, the entity table, and the ordered system list. A host drives it
// by calling Update once per frame.
type Game struct {
	bus       *EventBus
	data      *Registry
	entities  *EntityTable
	systems   []System
	log       *zap.Logger
	onDispose []func()
	disposed  bool
}

// NewGame creates a session. If cfg.Screen is set, a ScreenData record is
// registered with its values.
func NewGame(cfg Config) *Game {
	log := orNop(cfg.Logger)
	g := &Game{
		bus:      NewEventBus(log),
		data:     NewRegistry(log),
		entities: NewEntityTable(),
		log:      log,
	}
	if s := cfg.Screen; s != nil {
		sd := Register[ScreenData](g.data)
		sd.GameSurface = s.GameSurface
		sd.UISurface = s.UISurface
		sd.Width = s.Width
		sd.Height = s.Height
		sd.Painter = s.Painter
	}
	return g
}

// Bus returns the session event bus.
func (g *Game) Bus() *EventBus { return g.bus }

// Data returns the session capability registry.
func (g *Game) Data() *Registry { return g.data }

// Entities returns the session entity table.
func (g *Game) Entities() *EntityTable { return g.entities }

// Logger returns the session logger.
func (g *Game) Logger() *zap.Logger { return g.log }

// Disposed reports whether Dispose has been called.
func (g *Game) Disposed() bool { return g.disposed }

// CreateEntity creates an entity, registers it, and applies presets in order.
func (g *Game) CreateEntity(presets ...Preset) *Entity {
	e := newEntity(g.entities, g.bus, g.data, g.log)
	for _, p := range presets {
		if p != nil {
			p(e)
		}
	}
	return e
}

// RemoveEntity disposes the entity with id and removes it from the table.
// Unknown ids are ignored.
func (g *Game) RemoveEntity(id EntityID) {
	if e, ok := g.entities.Get(id); ok {
		e.Dispose()
	}
}

// GetEntity returns the live entity with id, or nil.
func (g *Game) GetEntity(id EntityID) *Entity {
	e, _ := g.entities.Get(id)
	return e
}

// Resolve returns the live entity with id, or an error wrapping
// ErrEntityNotFound.
func (g *Game) Resolve(id EntityID) (*Entity, error) {
	e, ok := g.entities.Get(id)
	if !ok {
		return nil, fmt.Errorf("resolve entity %d: %w", id, ErrEntityNotFound)
	}
	return e, nil
}

// AddSystem constructs a system bound to this session and appends it to the
// update order.
func (g *Game) AddSystem(ctor SystemConstructor) System {
	sys := ctor(g.bus, g.data, g.entities)
	if sys == nil {
		g.log.Warn("add system: constructor returned nil")
		return nil
	}
	g.systems = append(g.systems, sys)
	return sys
}

// RemoveSystem disposes sys and removes it from the update order. Returns
// false if sys was not added to this session.
func (g *Game) RemoveSystem(sys System) bool {
	for i, s := range g.systems {
		if s == sys {
			g.systems = append(g.systems[:i], g.systems[i+1:]...)
			sys.Dispose()
			return true
		}
	}
	return false
}

// Systems returns a copy of the system list in update order.
func (g *Game) Systems() []System {
	out := make([]System, len(g.systems))
	copy(out, g.systems)
	return out
}

// OnDispose registers fn to run at the start of Dispose, before any entity
// or system is torn down. Hooks run in registration order.
func (g *Game) OnDispose(fn func()) {
	if fn != nil {
		g.onDispose = append(g.onDispose, fn)
	}
}

// Update calls every system's Update in registration order. Systems added
// during the frame first run on the next one; systems removed during the
// frame are skipped.
func (g *Game) Update(dt float64) {
	if g.disposed {
		return
	}
	systems := g.Systems()
	for _, s := range systems {
		if g.disposed {
			return
		}
		if !g.hasSystem(s) {
			continue
		}
		s.Update(dt)
	}
}

func (g *Game) hasSystem(sys System) bool {
	for _, s := range g.systems {
		if s == sys {
			return true
		}
	}
	return false
}

// Dispose tears the session down: dispose hooks, then every entity, then every
// system, then the bus and registry are cleared. A second call is a no-op.
func (g *Game) Dispose() {
	if g.disposed {
		return
	}
	g.disposed = true
	for _, fn := range g.onDispose {
		fn()
	}
	g.onDispose = nil

	for _, e := range g.entities.Snapshot() {
		e.Dispose()
	}
	for _, s := range g.systems {
		s.Dispose()
	}
	g.systems = nil
	g.bus.Clear()
	g.data.Clear()
}

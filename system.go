package arbor

// System is a unit of per-frame behavior added to a Game. Systems run in
// registration order.
type System interface {
	// Update advances the system by dt seconds.
	Update(dt float64)
	// Dispose releases subscriptions and references. Called once, when the
	// system is removed or the Game is disposed.
	Dispose()
}

// SystemConstructor builds a system bound to one session's bus, capability
// registry, and entity table.
type SystemConstructor func(bus *EventBus, data *Registry, entities *EntityTable) System

// SystemBase holds the session references every system receives. Concrete
// systems embed it and override Update.
type SystemBase struct {
	bus      *EventBus
	data     *Registry
	entities *EntityTable
}

// NewSystemBase binds a base to a session.
func NewSystemBase(bus *EventBus, data *Registry, entities *EntityTable) SystemBase {
	return SystemBase{bus: bus, data: data, entities: entities}
}

// Bus returns the session bus, or nil once disposed.
func (s *SystemBase) Bus() *EventBus { return s.bus }

// Data returns the session registry, or nil once disposed.
func (s *SystemBase) Data() *Registry { return s.data }

// Entities returns the session entity table, or nil once disposed.
func (s *SystemBase) Entities() *EntityTable { return s.entities }

// Update does nothing.
func (s *SystemBase) Update(float64) {}

// Dispose drops the session references.
func (s *SystemBase) Dispose() {
	s.bus = nil
	s.data = nil
	s.entities = nil
}

// screen returns the session ScreenData, if registered.
func (s *SystemBase) screen() (*ScreenData, bool) {
	return Lookup[ScreenData](s.data)
}

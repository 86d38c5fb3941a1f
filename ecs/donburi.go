package ecs

import (
	"github.com/phanxgames/arbor"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
)

// InteractionEventType is the Donburi event type for arbor interaction events.
// Subscribe to this in your ECS systems to receive click and drag events.
var InteractionEventType = events.NewEventType[arbor.InteractionEvent]()

type donburiSink struct {
	world donburi.World
}

// NewDonburiSink creates an InteractionSink backed by a Donburi world.
// Interaction events are published to InteractionEventType and can be
// consumed with events.Subscribe and ProcessEvents.
func NewDonburiSink(world donburi.World) arbor.InteractionSink {
	return &donburiSink{world: world}
}

// EmitEvent publishes one router click or drag event to InteractionEventType
// on the world. Subscribers see it on the next ProcessEvents.
func (s *donburiSink) EmitEvent(event arbor.InteractionEvent) {
	InteractionEventType.Publish(s.world, event)
}

// Install sets sink as the session's interaction sink, registering the
// TouchData record if no router has done so yet.
func Install(data *arbor.Registry, sink arbor.InteractionSink) {
	td, ok := arbor.Lookup[arbor.TouchData](data)
	if !ok {
		td = arbor.Register[arbor.TouchData](data)
	}
	td.Sink = sink
}

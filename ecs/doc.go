// Package ecs provides ECS adapters for arbor's interaction events.
//
// The primary adapter is [NewDonburiSink], which bridges click and drag events
// dispatched by the touch routers into a [Donburi] world as typed events.
// Subscribe to [InteractionEventType] in your ECS systems to receive them.
//
// Usage:
//
//	sink := ecs.NewDonburiSink(world)
//	ecs.Install(game.Data(), sink)
//
// [Donburi]: https://github.com/yohamta/donburi
package ecs

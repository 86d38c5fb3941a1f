// Package arbor is the runtime core of a touch-driven 2D application: an
// entity/component model with explicit lifecycle, a parent/child hierarchy, a
// screen-space layout tree, and a two-layer touch router that decides, one
// touch at a time, whether the UI or the game layer owns the pointer.
//
// Rendering and the frame loop live outside this package. The host package
// runs a [Game] on [Ebitengine]; tests drive it headless with [InjectSource].
//
// # Quick start
//
//	g := arbor.NewGame(arbor.Config{Logger: log})
//	g.AddSystem(arbor.NewUIInputSystem)
//	g.AddSystem(arbor.NewGameInputSystem)
//
//	root := g.CreateEntity(arbor.WithLayout(arbor.NewLayout(0, 0, 320, 480)))
//	arbor.Register[arbor.ScreenData](g.Data()).UIRoot = root.ID()
//
//	button := g.CreateEntity(
//		arbor.WithLayout(arbor.NewLayout(10, 10, 100, 40)),
//		arbor.WithUIClick(func(ctx arbor.ClickContext) { ... }),
//	)
//	root.AddChild(button)
//
//	// once per frame
//	g.Update(dt)
//
// # Entities and components
//
// An [Entity] holds at most one [Component] per [ComponentTag] and always
// carries a [Hierarchy]. Attaching a second component with the same tag
// replaces the first and logs a warning. Components reach their entity, the
// [EventBus], and the capability [Registry] through [ComponentBase]; the
// entity reference is a handle into the session's [EntityTable], so a
// component never keeps a disposed entity alive.
//
// # Touch routing
//
// [UIInputSystem] sees every touch first. It collects UI targets depth-first
// from [ScreenData].UIRoot, pruning invisible subtrees, and scans them in
// reverse so the last-painted node wins. A touch start over a [UIDrag] opens
// a drag session that owns the rest of the touch. Touches the UI declines are
// republished on the bus ([TopicTouchStart], [TopicTouchMove],
// [TopicTouchEnd]) for [GameInputSystem], which scans game-layer entities in
// reverse creation order. A click resolves on touch end only when no drag
// claimed the start.
//
// Callbacks run synchronously inside the router. Panics are not recovered.
//
// # Interaction events
//
// Every dispatched click and drag step is also reported to
// [TouchData].Sink when one is set. Package arbor/ecs routes them into a
// [Donburi] world.
//
// [Ebitengine]: https://ebitengine.org
// [Donburi]: https://github.com/yohamta/donburi
package arbor

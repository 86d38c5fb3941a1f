package ecs

import (
	"testing"

	"github.com/phanxgames/arbor"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
)

func TestNewDonburiSink(t *testing.T) {
	world := donburi.NewWorld()
	require.NotNil(t, NewDonburiSink(world))
}

func TestDonburiSink_EmitEvent(t *testing.T) {
	world := donburi.NewWorld()
	sink := NewDonburiSink(world)

	var received []arbor.InteractionEvent
	InteractionEventType.Subscribe(world, func(w donburi.World, e arbor.InteractionEvent) {
		received = append(received, e)
	})

	sink.EmitEvent(arbor.InteractionEvent{
		Type:     arbor.EventClick,
		Layer:    arbor.LayerUI,
		EntityID: 42,
		X:        100,
		Y:        200,
	})
	sink.EmitEvent(arbor.InteractionEvent{
		Type:   arbor.EventDrag,
		Layer:  arbor.LayerGame,
		DeltaX: 30,
		DeltaY: -20,
	})

	// Events are queued until processed.
	assert.Empty(t, received)
	InteractionEventType.ProcessEvents(world)

	require.Len(t, received, 2)
	assert.Equal(t, arbor.EventClick, received[0].Type)
	assert.Equal(t, arbor.EntityID(42), received[0].EntityID)
	assert.Equal(t, 100.0, received[0].X)
	assert.Equal(t, 200.0, received[0].Y)
	assert.Equal(t, arbor.EventDrag, received[1].Type)
	assert.Equal(t, arbor.LayerGame, received[1].Layer)
	assert.Equal(t, 30.0, received[1].DeltaX)
}

func TestDonburiSink_MultipleSubscribers(t *testing.T) {
	world := donburi.NewWorld()
	sink := NewDonburiSink(world)

	var count1, count2 int
	InteractionEventType.Subscribe(world, func(w donburi.World, e arbor.InteractionEvent) {
		count1++
	})
	InteractionEventType.Subscribe(world, func(w donburi.World, e arbor.InteractionEvent) {
		count2++
	})

	sink.EmitEvent(arbor.InteractionEvent{Type: arbor.EventClick})
	events.ProcessAllEvents(world)

	assert.Equal(t, 1, count1)
	assert.Equal(t, 1, count2)
}

func TestInstall_RoutesRouterEvents(t *testing.T) {
	world := donburi.NewWorld()
	g := arbor.NewGame(arbor.Config{})
	t.Cleanup(g.Dispose)

	src := arbor.NewInjectSource()
	Install(g.Data(), NewDonburiSink(world))
	td, ok := arbor.Lookup[arbor.TouchData](g.Data())
	require.True(t, ok)
	td.Source = src

	g.AddSystem(arbor.NewUIInputSystem)
	g.AddSystem(arbor.NewGameInputSystem)

	root := g.CreateEntity(arbor.WithLayout(arbor.NewLayout(0, 0, 400, 400)))
	arbor.Register[arbor.ScreenData](g.Data()).UIRoot = root.ID()
	handle := g.CreateEntity(
		arbor.WithLayout(arbor.NewLayout(50, 50, 40, 40)),
		arbor.WithUIDrag(arbor.NewUIDrag()),
		arbor.ChildOf(root),
	)

	var received []arbor.InteractionEvent
	InteractionEventType.Subscribe(world, func(w donburi.World, e arbor.InteractionEvent) {
		received = append(received, e)
	})

	src.InjectDrag(60, 60, 90, 70, 3)
	for src.Pending() > 0 {
		g.Update(1.0 / 60)
	}
	InteractionEventType.ProcessEvents(world)

	require.Len(t, received, 3)
	assert.Equal(t, arbor.EventDragStart, received[0].Type)
	assert.Equal(t, arbor.EventDrag, received[1].Type)
	assert.Equal(t, arbor.EventDragEnd, received[2].Type)
	for _, e := range received {
		assert.Equal(t, handle.ID(), e.EntityID)
		assert.Equal(t, arbor.LayerUI, e.Layer)
		assert.Equal(t, received[0].SessionID, e.SessionID)
	}
	assert.Equal(t, 30.0, received[2].DeltaX)
	assert.Equal(t, 10.0, received[2].DeltaY)
}

func TestInstall_KeepsExistingTouchData(t *testing.T) {
	g := arbor.NewGame(arbor.Config{})
	t.Cleanup(g.Dispose)
	g.AddSystem(arbor.NewGameInputSystem)

	before, ok := arbor.Lookup[arbor.TouchData](g.Data())
	require.True(t, ok)

	sink := NewDonburiSink(donburi.NewWorld())
	Install(g.Data(), sink)

	after, ok := arbor.Lookup[arbor.TouchData](g.Data())
	require.True(t, ok)
	assert.Same(t, before, after)
	assert.Equal(t, sink, after.Sink)
}

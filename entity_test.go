package arbor

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// hookCounter is an application component that counts its lifecycle hooks.
type hookCounter struct {
	ComponentBase
	attached int
	detached int
	sawOwner EntityID
}

func (*hookCounter) Tag() ComponentTag { return TagUser }

func (p *hookCounter) OnAttach() {
	p.attached++
	p.sawOwner = p.EntityID()
}

func (p *hookCounter) OnDetach() { p.detached++ }

func TestEntity_IDsMonotonic(t *testing.T) {
	g, _ := newTestGame(t)
	a := g.CreateEntity()
	b := g.CreateEntity()
	c := g.CreateEntity()
	assert.Less(t, a.ID(), b.ID())
	assert.Less(t, b.ID(), c.ID())

	g.RemoveEntity(b.ID())
	d := g.CreateEntity()
	assert.Greater(t, d.ID(), c.ID(), "ids are never reused")
}

func TestEntity_HasHierarchyFromCreation(t *testing.T) {
	g, _ := newTestGame(t)
	e := g.CreateEntity()
	require.NotNil(t, e.Hierarchy())
	assert.True(t, e.Has(TagHierarchy))
	assert.Equal(t, e.ID(), e.Hierarchy().EntityID())
	assert.Equal(t, []ComponentTag{TagHierarchy}, e.Tags())
}

func TestEntity_AttachInitializes(t *testing.T) {
	g, _ := newTestGame(t)
	e := g.CreateEntity()
	p := &hookCounter{}
	e.Attach(p)

	assert.Equal(t, 1, p.attached)
	assert.Equal(t, e.ID(), p.sawOwner, "owner set before OnAttach")
	assert.Same(t, e, p.Entity())
	assert.Same(t, g.Bus(), p.Bus())
	assert.Same(t, g.Data(), p.Data())
	assert.True(t, p.Attached())

	got, ok := e.Get(TagUser)
	require.True(t, ok)
	assert.Same(t, p, got)
}

func TestEntity_AttachReplacesWithWarning(t *testing.T) {
	g, logs := newTestGame(t)
	e := g.CreateEntity()
	first := &hookCounter{}
	second := &hookCounter{}
	e.Attach(first)
	e.Attach(second)

	assert.Equal(t, 1, first.detached, "old component disposed")
	assert.False(t, first.Attached())
	assert.Nil(t, first.Bus())
	got, _ := e.Get(TagUser)
	assert.Same(t, second, got)

	require.Equal(t, 1, logs.Len())
	assert.Equal(t, "user_0", logs.All()[0].ContextMap()["tag"])
}

func TestEntity_AttachNilWarns(t *testing.T) {
	g, logs := newTestGame(t)
	e := g.CreateEntity()
	assert.Nil(t, e.Attach(nil))
	assert.Equal(t, 1, logs.Len())
}

func TestEntity_AttachSameInstanceIsNoop(t *testing.T) {
	g, logs := newTestGame(t)
	root := uiRoot(g)
	ui, _, _ := routers(t, g)

	clicks := 0
	c := NewUIClick(func(ClickContext) { clicks++ })
	btn := g.CreateEntity(ChildOf(root), WithLayout(NewLayout(0, 0, 50, 50)))
	btn.Attach(c)
	assert.Same(t, c, btn.Attach(c))

	assert.Zero(t, logs.Len())
	assert.True(t, c.Actionable())
	ui.TouchStart(10, 10)
	ui.TouchEnd(10, 10)
	assert.Equal(t, 1, clicks)

	p := &hookCounter{}
	btn.Attach(p)
	btn.Attach(p)
	assert.Equal(t, 1, p.attached)
	assert.Zero(t, p.detached)
}

func TestEntity_AttachRefusesComponentOfAnotherEntity(t *testing.T) {
	g, logs := newTestGame(t)
	root := uiRoot(g)
	ui, _, _ := routers(t, g)

	clicks := 0
	c := NewUIClick(func(ClickContext) { clicks++ })
	btn := g.CreateEntity(ChildOf(root), WithLayout(NewLayout(0, 0, 50, 50)), WithComponent(c))
	other := g.CreateEntity(ChildOf(root), WithLayout(NewLayout(100, 100, 50, 50)))

	assert.Nil(t, other.Attach(c))
	assert.Equal(t, 1, logs.Len())
	assert.Nil(t, other.UIClick())
	assert.Same(t, c, btn.UIClick())
	assert.Same(t, btn, c.Entity())
	assert.True(t, c.Actionable())

	ui.TouchStart(10, 10)
	ui.TouchEnd(10, 10)
	assert.Equal(t, 1, clicks)

	// Detaching first makes the component free to attach elsewhere, with a
	// fresh callback since detach clears it.
	btn.Detach(TagUIClick)
	c.OnClick = func(ClickContext) { clicks++ }
	assert.Same(t, c, other.Attach(c))
	ui.TouchStart(110, 110)
	ui.TouchEnd(110, 110)
	assert.Equal(t, 2, clicks)
}

func TestEntity_HierarchyCannotMove(t *testing.T) {
	g, logs := newTestGame(t)
	a := g.CreateEntity()
	b := g.CreateEntity()
	child := g.CreateEntity(ChildOf(a))
	ha := a.Hierarchy()

	assert.Nil(t, b.Attach(ha))
	assert.Same(t, ha, a.Hierarchy())
	assert.NotSame(t, ha, b.Hierarchy())
	assert.Same(t, a, child.Parent())
	assert.Equal(t, 1, logs.Len())

	// A detached hierarchy cannot replace a live one either.
	assert.Nil(t, b.Attach(&Hierarchy{}))
	assert.Equal(t, 2, logs.Len())
}

func TestEntity_Detach(t *testing.T) {
	g, _ := newTestGame(t)
	e := g.CreateEntity()
	p := &hookCounter{}
	e.Attach(p)

	assert.True(t, e.Detach(TagUser))
	assert.Equal(t, 1, p.detached)
	_, ok := e.Get(TagUser)
	assert.False(t, ok)

	assert.False(t, e.Detach(TagUser), "second detach finds nothing")
	assert.Equal(t, 1, p.detached)
}

func TestEntity_DetachIsInert(t *testing.T) {
	g, _ := newTestGame(t)
	e := g.CreateEntity()
	p := &hookCounter{}
	e.Attach(p)
	e.Detach(TagUser)

	// Calling teardown again directly has no further effect.
	detachComponent(p)
	assert.Equal(t, 1, p.detached)
	assert.Nil(t, p.Entity())

	// Relays are no-ops once detached.
	h := &recordingHandler{}
	p.Subscribe("t", h)
	g.Bus().Publish("t", nil)
	assert.Empty(t, h.topics)
	assert.NotPanics(t, func() { p.Publish("t", nil) })
}

func TestEntity_HierarchyDetachRefusedWhileAlive(t *testing.T) {
	g, logs := newTestGame(t)
	e := g.CreateEntity()
	assert.False(t, e.Detach(TagHierarchy))
	assert.NotNil(t, e.Hierarchy())
	assert.Equal(t, 1, logs.Len())
}

func TestEntity_DisposeDetachesAll(t *testing.T) {
	g, _ := newTestGame(t)
	e := g.CreateEntity(WithLayout(NewLayout(1, 2, 3, 4)))
	p := &hookCounter{}
	e.Attach(p)
	l := e.Layout()

	e.Dispose()
	assert.True(t, e.Disposed())
	assert.Equal(t, 1, p.detached)
	assert.False(t, l.Attached())
	assert.Nil(t, e.Hierarchy())
	assert.Empty(t, e.Tags())
	assert.Nil(t, g.GetEntity(e.ID()))

	for _, tag := range []ComponentTag{TagHierarchy, TagLayout, TagUser} {
		_, ok := e.Get(tag)
		assert.False(t, ok, tag.String())
	}
}

func TestEntity_DisposeTwiceIsNoop(t *testing.T) {
	g, _ := newTestGame(t)
	e := g.CreateEntity()
	p := &hookCounter{}
	e.Attach(p)

	e.Dispose()
	assert.NotPanics(t, e.Dispose)
	assert.Equal(t, 1, p.detached)
}

func TestEntity_AttachAfterDisposeWarns(t *testing.T) {
	g, logs := newTestGame(t)
	e := g.CreateEntity()
	e.Dispose()

	p := &hookCounter{}
	e.Attach(p)
	assert.Zero(t, p.attached)
	assert.False(t, e.Has(TagUser))
	assert.Equal(t, 1, logs.Len())
}

func TestEntity_GetReturnsMostRecent(t *testing.T) {
	g, _ := newTestGame(t)
	e := g.CreateEntity()
	var last *Layout
	for i := 0; i < 5; i++ {
		last = NewLayout(float64(i), 0, 1, 1)
		e.Attach(last)
		assert.Same(t, last, e.Layout())
	}
	e.Detach(TagLayout)
	assert.Nil(t, e.Layout())
}

func TestEntity_ComponentDoesNotPinEntity(t *testing.T) {
	g, _ := newTestGame(t)
	e := g.CreateEntity()
	p := &hookCounter{}
	e.Attach(p)
	id := e.ID()

	g.RemoveEntity(id)
	_, err := g.Resolve(id)
	assert.ErrorIs(t, err, ErrEntityNotFound)
	assert.Nil(t, p.Entity())
}

func TestEntityTable_OrderAndSnapshot(t *testing.T) {
	g, _ := newTestGame(t)
	a := g.CreateEntity()
	b := g.CreateEntity()
	c := g.CreateEntity()

	snap := g.Entities().Snapshot()
	assert.Equal(t, []*Entity{a, b, c}, snap)

	b.Dispose()
	assert.Equal(t, []*Entity{a, b, c}, snap, "snapshot unaffected")
	assert.Equal(t, []*Entity{a, c}, g.Entities().Snapshot())
	assert.Equal(t, 2, g.Entities().Len())

	_, ok := g.Entities().Get(0)
	assert.False(t, ok)
	var nilTable *EntityTable
	_, ok = nilTable.Get(a.ID())
	assert.False(t, ok)
}

func TestComponentTag_String(t *testing.T) {
	assert.Equal(t, "hierarchy", TagHierarchy.String())
	assert.Equal(t, "game_drag", TagGameDrag.String())
	assert.Equal(t, "user_3", (TagUser + 3).String())
	assert.Equal(t, "tag_40", ComponentTag(40).String())
}

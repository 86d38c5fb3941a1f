package arbor

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tanema/gween/ease"
)

func TestTween_Layout(t *testing.T) {
	g, _ := newTestGame(t)
	e := g.CreateEntity(WithLayout(NewLayout(0, 0, 10, 10)))
	tw := TweenLayout(e.Layout(), 100, 50, 1, ease.Linear)

	tw.Update(0.5)
	assert.InDelta(t, 50, e.Layout().X, 1e-4)
	assert.InDelta(t, 25, e.Layout().Y, 1e-4)
	assert.False(t, tw.Done)

	tw.Update(0.5)
	assert.InDelta(t, 100, e.Layout().X, 1e-4)
	assert.True(t, tw.Done)

	// Finished tweens write nothing further.
	e.Layout().X = 3
	tw.Update(1)
	assert.Equal(t, 3.0, e.Layout().X)
}

func TestTween_LabelColor(t *testing.T) {
	g, _ := newTestGame(t)
	e := g.CreateEntity(WithLayout(NewLayout(0, 0, 10, 10)), WithLabel("hi"))
	tw := TweenLabelColor(e.Label(), Color{R: 0, G: 0, B: 0, A: 0}, 2, ease.Linear)

	tw.Update(1)
	c := e.Label().Color
	assert.InDelta(t, 0.5, c.R, 1e-4)
	assert.InDelta(t, 0.5, c.A, 1e-4)
}

func TestTween_StopsWhenTargetDetached(t *testing.T) {
	g, _ := newTestGame(t)
	l := NewLayout(0, 0, 10, 10)
	e := g.CreateEntity(WithLayout(l))
	tw := TweenLayoutSize(l, 100, 100, 1, ease.Linear)

	e.Dispose()
	tw.Update(0.5)
	assert.True(t, tw.Done)
	assert.Zero(t, l.Width, "detached layout is never written")
}

func TestTween_StopsWhenTargetMoved(t *testing.T) {
	g, _ := newTestGame(t)
	l := NewLayout(0, 0, 10, 10)
	a := g.CreateEntity(WithLayout(l))
	tw := TweenLayout(l, 100, 100, 1, ease.Linear)

	a.Detach(TagLayout)
	b := g.CreateEntity()
	require.Same(t, l, b.Attach(l))

	tw.Update(0.5)
	assert.True(t, tw.Done)
}

func TestTweenSystem(t *testing.T) {
	g, _ := newTestGame(t)
	sys, ok := g.AddSystem(NewTweenSystem).(*TweenSystem)
	require.True(t, ok)

	e := g.CreateEntity(WithLayout(NewLayout(0, 0, 10, 10)))
	short := TweenLayout(e.Layout(), 10, 10, 0.5, ease.Linear)
	long := TweenLayoutSize(e.Layout(), 20, 20, 1, ease.Linear)
	sys.Add(short)
	sys.Add(long)
	sys.Add(nil)
	assert.Equal(t, 2, sys.Len())

	g.Update(0.5)
	assert.True(t, short.Done)
	assert.Equal(t, 1, sys.Len())

	g.Update(0.5)
	assert.Zero(t, sys.Len())
	assert.InDelta(t, 20, e.Layout().Width, 1e-4)

	sys.Add(short)
	assert.Zero(t, sys.Len(), "finished tweens are ignored")
}

package arbor

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadTouchScript_Errors(t *testing.T) {
	_, err := LoadTouchScript([]byte("steps: []\n"))
	assert.ErrorIs(t, err, ErrEmptyScript)

	_, err = LoadTouchScript(nil)
	assert.ErrorIs(t, err, ErrEmptyScript)

	_, err = LoadTouchScript([]byte("steps:\n  - action: swipe\n"))
	assert.ErrorIs(t, err, ErrUnknownStep)
	assert.Contains(t, err.Error(), "swipe")

	_, err = LoadTouchScript([]byte("steps: [\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parse touch script")
}

func TestScriptRunner_TapTakesTwoFrames(t *testing.T) {
	r, err := LoadTouchScript([]byte(`
steps:
  - action: tap
    x: 5
    y: 6
`))
	require.NoError(t, err)
	rec := &recordingTouch{}
	r.Register(rec)

	r.Poll()
	assert.Equal(t, []string{"start"}, rec.calls)
	assert.False(t, r.Done())
	r.Poll()
	assert.Equal(t, []string{"start", "end"}, rec.calls)
	assert.Equal(t, []float64{5, 5}, rec.xs)
	assert.True(t, r.Done())

	r.Poll()
	assert.Len(t, rec.calls, 2)
}

func TestScriptRunner_WaitAndDrag(t *testing.T) {
	r, err := LoadTouchScript([]byte(`
steps:
  - action: wait
    frames: 3
  - action: drag
    fromX: 0
    fromY: 0
    toX: 20
    toY: 0
    frames: 3
`))
	require.NoError(t, err)
	rec := &recordingTouch{}
	r.Register(rec)

	for i := 0; i < 3; i++ {
		r.Poll()
	}
	assert.Empty(t, rec.calls)

	frames := 0
	for !r.Done() && frames < 10 {
		r.Poll()
		frames++
	}
	assert.Equal(t, 3, frames)
	assert.Equal(t, []string{"start", "move", "end"}, rec.calls)
	assert.Equal(t, []float64{0, 10, 20}, rec.xs)
}

func TestScriptRunner_DrivesUIClick(t *testing.T) {
	g, _ := newTestGame(t)
	root := uiRoot(g)
	routers(t, g)

	clicks := 0
	g.CreateEntity(ChildOf(root), WithLayout(NewLayout(100, 100, 50, 50)),
		WithUIClick(func(ClickContext) { clicks++ }))

	r, err := LoadTouchScript([]byte(`
steps:
  - action: click
    x: 120
    y: 120
  - action: tap
    x: 10
    y: 10
`))
	require.NoError(t, err)
	td, _ := Lookup[TouchData](g.Data())
	td.Source = r

	for i := 0; i < 10 && !r.Done(); i++ {
		g.Update(1.0 / 60)
	}
	assert.True(t, r.Done())
	assert.Equal(t, 1, clicks)
	assert.Zero(t, r.Source().Pending())
}

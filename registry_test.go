package arbor

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type scoreData struct {
	Points int
}

func (*scoreData) DataID() DataID { return "score" }

// impostorScore claims the score id with a different type.
type impostorScore struct{}

func (*impostorScore) DataID() DataID { return "score" }

func TestRegistry_RegisterAndLookup(t *testing.T) {
	r := NewRegistry(nil)
	sd := Register[scoreData](r)
	require.NotNil(t, sd)
	sd.Points = 7

	got, ok := Lookup[scoreData](r)
	require.True(t, ok)
	assert.Same(t, sd, got)
	assert.True(t, r.Has("score"))
	assert.Equal(t, 1, r.Len())

	rec, ok := r.Get("score")
	require.True(t, ok)
	assert.Equal(t, 7, rec.(*scoreData).Points)
}

func TestRegistry_DuplicateReturnsExistingWithWarning(t *testing.T) {
	log, logs := observedLogger()
	r := NewRegistry(log)

	first := Register[scoreData](r)
	first.Points = 3
	second := Register[scoreData](r)

	assert.Same(t, first, second)
	assert.Equal(t, 3, second.Points)
	require.Equal(t, 1, logs.Len())
	assert.Equal(t, "score", logs.All()[0].ContextMap()["kind"])
}

func TestRegistry_TypeCollisionReplaces(t *testing.T) {
	log, logs := observedLogger()
	r := NewRegistry(log)

	Register[scoreData](r)
	imp := Register[impostorScore](r)

	assert.Equal(t, 1, logs.Len())
	got, ok := r.Get("score")
	require.True(t, ok)
	assert.Same(t, imp, got)
	_, ok = Lookup[scoreData](r)
	assert.False(t, ok)
}

func TestRegistry_LookupMissing(t *testing.T) {
	r := NewRegistry(nil)
	sd, ok := Lookup[ScreenData](r)
	assert.False(t, ok)
	assert.Nil(t, sd)

	_, ok = Lookup[ScreenData](nil)
	assert.False(t, ok)
}

func TestRegistry_EnsureIsSilent(t *testing.T) {
	log, logs := observedLogger()
	r := NewRegistry(log)

	a := ensure[TouchData](r)
	b := ensure[TouchData](r)
	assert.Same(t, a, b)
	assert.Zero(t, logs.Len())
}

func TestRegistry_UnregisterAndClear(t *testing.T) {
	r := NewRegistry(nil)
	Register[scoreData](r)
	Register[ScreenData](r)
	Register[TouchData](r)
	require.Equal(t, 3, r.Len())

	r.Unregister("score")
	assert.False(t, r.Has("score"))
	assert.Equal(t, 2, r.Len())

	r.Unregister("missing")
	assert.Equal(t, 2, r.Len())

	r.Clear()
	assert.Zero(t, r.Len())
	assert.False(t, r.Has(DataScreen))

	// Registering after Clear creates a fresh record.
	sd := Register[scoreData](r)
	assert.Zero(t, sd.Points)
}

func TestRegistry_SessionsAreIndependent(t *testing.T) {
	a := NewRegistry(nil)
	b := NewRegistry(nil)
	Register[scoreData](a).Points = 1
	_, ok := Lookup[scoreData](b)
	assert.False(t, ok)
}

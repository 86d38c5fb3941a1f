package arbor

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// Tween animates up to 4 float64 fields of a component simultaneously.
// Create one via the convenience constructors (TweenLayout, TweenLayoutSize,
// TweenLabelColor) and either call Update(dt) each frame or hand it to a
// TweenSystem. If the target component is detached, the tween stops
// immediately and writes nothing.
type Tween struct {
	tweens   [4]*gween.Tween
	count    int
	fields   [4]*float64
	target   Component
	targetID EntityID
	Done     bool
}

func newTween(target Component) *Tween {
	return &Tween{target: target, targetID: target.base().owner}
}

func (t *Tween) add(field *float64, to float64, duration float32, fn ease.TweenFunc) {
	t.tweens[t.count] = gween.New(float32(*field), float32(to), duration, fn)
	t.fields[t.count] = field
	t.count++
}

// Update advances all tweens by dt seconds and writes values to the target
// fields.
func (t *Tween) Update(dt float32) {
	if t.Done {
		return
	}
	b := t.target.base()
	if !b.attached || b.owner != t.targetID {
		t.Done = true
		return
	}

	allDone := true
	for i := 0; i < t.count; i++ {
		val, finished := t.tweens[i].Update(dt)
		*t.fields[i] = float64(val)
		if !finished {
			allDone = false
		}
	}
	t.Done = allDone
}

// TweenLayout animates the layout offset to (toX, toY).
func TweenLayout(l *Layout, toX, toY float64, duration float32, fn ease.TweenFunc) *Tween {
	t := newTween(l)
	t.add(&l.X, toX, duration, fn)
	t.add(&l.Y, toY, duration, fn)
	return t
}

// TweenLayoutSize animates the layout size to (toW, toH).
func TweenLayoutSize(l *Layout, toW, toH float64, duration float32, fn ease.TweenFunc) *Tween {
	t := newTween(l)
	t.add(&l.Width, toW, duration, fn)
	t.add(&l.Height, toH, duration, fn)
	return t
}

// TweenLabelColor animates all four components of the label color.
func TweenLabelColor(lb *Label, to Color, duration float32, fn ease.TweenFunc) *Tween {
	t := newTween(lb)
	t.add(&lb.Color.R, to.R, duration, fn)
	t.add(&lb.Color.G, to.G, duration, fn)
	t.add(&lb.Color.B, to.B, duration, fn)
	t.add(&lb.Color.A, to.A, duration, fn)
	return t
}

// TweenSystem updates every added tween once per frame and drops finished
// ones.
type TweenSystem struct {
	SystemBase
	tweens []*Tween
}

// NewTweenSystem is a SystemConstructor.
func NewTweenSystem(bus *EventBus, data *Registry, entities *EntityTable) System {
	return &TweenSystem{SystemBase: NewSystemBase(bus, data, entities)}
}

// Add schedules t. Nil or finished tweens are ignored.
func (s *TweenSystem) Add(t *Tween) {
	if t == nil || t.Done {
		return
	}
	s.tweens = append(s.tweens, t)
}

// Len returns the number of running tweens.
func (s *TweenSystem) Len() int {
	return len(s.tweens)
}

// Update advances every tween by dt seconds.
func (s *TweenSystem) Update(dt float64) {
	n := 0
	for _, t := range s.tweens {
		t.Update(float32(dt))
		if !t.Done {
			s.tweens[n] = t
			n++
		}
	}
	clear(s.tweens[n:])
	s.tweens = s.tweens[:n]
}

// Dispose drops every tween.
func (s *TweenSystem) Dispose() {
	s.tweens = nil
	s.SystemBase.Dispose()
}

package host

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/phanxgames/arbor"
)

// pointerTracker turns per-frame pressed/position samples into the
// start/move/end lifecycle of a single pointer.
type pointerTracker struct {
	handlers arbor.TouchHandlers
	down     bool
	held     bool
	lastX    float64
	lastY    float64
}

// reset forgets the open lifecycle without reporting an end. A pointer still
// pressed is swallowed until it is released.
func (t *pointerTracker) reset() {
	t.held = t.down
	t.down = false
}

// sample feeds one frame. Moves are reported only when the position changed.
func (t *pointerTracker) sample(pressed bool, x, y float64) {
	if t.held {
		t.held = pressed
		return
	}
	switch {
	case pressed && !t.down:
		t.down = true
		t.lastX, t.lastY = x, y
		t.handlers.Start(x, y)
	case pressed && t.down:
		if x != t.lastX || y != t.lastY {
			t.lastX, t.lastY = x, y
			t.handlers.Move(x, y)
		}
	case !pressed && t.down:
		t.down = false
		t.handlers.End(t.lastX, t.lastY)
	}
}

// EbitenSource polls ebiten for a single pointer: the first active touch, or
// the left mouse button when no touch is in progress. Other touches are
// ignored until the tracked one lifts.
type EbitenSource struct {
	tracker  pointerTracker
	touchID  ebiten.TouchID
	touching bool
	mouse    bool
	touchBuf []ebiten.TouchID
}

// NewEbitenSource creates a source. Install it as TouchData.Source; the UI
// router polls it each frame.
func NewEbitenSource() *EbitenSource {
	return &EbitenSource{}
}

// Register implements arbor.TouchSource.
func (s *EbitenSource) Register(h arbor.TouchHandler) { s.tracker.handlers.Add(h) }

// Unregister implements arbor.TouchSource.
func (s *EbitenSource) Unregister(h arbor.TouchHandler) { s.tracker.handlers.Remove(h) }

// Reset drops the tracked pointer's lifecycle so handlers registered after
// the call never see an end for a start they did not receive. A pointer held
// across the reset produces no events until it lifts.
func (s *EbitenSource) Reset() { s.tracker.reset() }

// Poll reads this frame's pointer state. Implements arbor.Poller.
func (s *EbitenSource) Poll() {
	switch {
	case s.touching:
		if inpututil.IsTouchJustReleased(s.touchID) {
			s.touching = false
			s.tracker.sample(false, 0, 0)
			return
		}
		x, y := ebiten.TouchPosition(s.touchID)
		s.tracker.sample(true, float64(x), float64(y))
		return
	case s.mouse:
		x, y := ebiten.CursorPosition()
		pressed := ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft)
		if !pressed {
			s.mouse = false
		}
		s.tracker.sample(pressed, float64(x), float64(y))
		return
	}

	s.touchBuf = inpututil.AppendJustPressedTouchIDs(s.touchBuf[:0])
	if len(s.touchBuf) > 0 {
		s.touchID = s.touchBuf[0]
		s.touching = true
		x, y := ebiten.TouchPosition(s.touchID)
		s.tracker.sample(true, float64(x), float64(y))
		return
	}
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		s.mouse = true
		x, y := ebiten.CursorPosition()
		s.tracker.sample(true, float64(x), float64(y))
	}
}

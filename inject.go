package arbor

// injectKind is the lifecycle stage of a synthetic pointer event.
type injectKind uint8

const (
	injectPress injectKind = iota
	injectMove
	injectRelease
)

// syntheticTouch is a single queued pointer event in screen pixels.
type syntheticTouch struct {
	kind injectKind
	x, y float64
}

// InjectSource is a TouchSource fed by queued synthetic events. Each Poll
// delivers at most one event, so a queued sequence plays back one event per
// frame exactly like real input. Moves and releases while the pointer is up
// are dropped; a press while it is down is delivered as a move.
type InjectSource struct {
	handlers TouchHandlers
	queue    []syntheticTouch
	down     bool
}

// NewInjectSource creates an empty source.
func NewInjectSource() *InjectSource {
	return &InjectSource{}
}

// Register implements TouchSource.
func (s *InjectSource) Register(h TouchHandler) { s.handlers.Add(h) }

// Unregister implements TouchSource.
func (s *InjectSource) Unregister(h TouchHandler) { s.handlers.Remove(h) }

// InjectPress queues a pointer press at (x, y).
func (s *InjectSource) InjectPress(x, y float64) {
	s.queue = append(s.queue, syntheticTouch{kind: injectPress, x: x, y: y})
}

// InjectMove queues a pointer move at (x, y). Use it between InjectPress and
// InjectRelease to simulate a drag.
func (s *InjectSource) InjectMove(x, y float64) {
	s.queue = append(s.queue, syntheticTouch{kind: injectMove, x: x, y: y})
}

// InjectRelease queues a pointer release at (x, y).
func (s *InjectSource) InjectRelease(x, y float64) {
	s.queue = append(s.queue, syntheticTouch{kind: injectRelease, x: x, y: y})
}

// InjectClick queues a press followed by a release at the same point.
// Consumes two frames.
func (s *InjectSource) InjectClick(x, y float64) {
	s.InjectPress(x, y)
	s.InjectRelease(x, y)
}

// InjectDrag queues a press at (fromX, fromY), frames-2 linearly interpolated
// moves, and a release at (toX, toY). The whole sequence consumes frames
// frames; the minimum is 2.
func (s *InjectSource) InjectDrag(fromX, fromY, toX, toY float64, frames int) {
	if frames < 2 {
		frames = 2
	}
	s.InjectPress(fromX, fromY)
	steps := frames - 2
	for i := 1; i <= steps; i++ {
		t := float64(i) / float64(steps+1)
		s.InjectMove(fromX+(toX-fromX)*t, fromY+(toY-fromY)*t)
	}
	s.InjectRelease(toX, toY)
}

// Pending returns the number of queued events.
func (s *InjectSource) Pending() int {
	return len(s.queue)
}

// Down reports whether the synthetic pointer is pressed.
func (s *InjectSource) Down() bool {
	return s.down
}

// Poll delivers the next queued event. Implements Poller.
func (s *InjectSource) Poll() {
	if len(s.queue) == 0 {
		return
	}
	ev := s.queue[0]
	copy(s.queue, s.queue[1:])
	s.queue = s.queue[:len(s.queue)-1]
	s.dispatch(ev)
}

// Flush delivers every queued event immediately, in order.
func (s *InjectSource) Flush() {
	for len(s.queue) > 0 {
		s.Poll()
	}
}

func (s *InjectSource) dispatch(ev syntheticTouch) {
	switch ev.kind {
	case injectPress:
		if s.down {
			s.handlers.Move(ev.x, ev.y)
			return
		}
		s.down = true
		s.handlers.Start(ev.x, ev.y)
	case injectMove:
		if s.down {
			s.handlers.Move(ev.x, ev.y)
		}
	case injectRelease:
		if s.down {
			s.down = false
			s.handlers.End(ev.x, ev.y)
		}
	}
}

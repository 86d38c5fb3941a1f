package arbor

// TouchHandler receives the single-pointer lifecycle. Within one touch,
// TouchStart always precedes any TouchMove, which precede TouchEnd.
// Coordinates are screen pixels.
type TouchHandler interface {
	TouchStart(x, y float64)
	TouchMove(x, y float64)
	TouchEnd(x, y float64)
}

// TouchSource delivers pointer lifecycle calls to registered handlers.
type TouchSource interface {
	Register(h TouchHandler)
	Unregister(h TouchHandler)
}

// Poller is implemented by sources that read input once per frame instead of
// pushing it from callbacks. UIInputSystem polls its source at the start of
// every Update.
type Poller interface {
	Poll()
}

// TouchHandlers is a registration list that TouchSource implementations can
// embed. Dispatch iterates a copy, so handlers may unregister themselves.
type TouchHandlers []TouchHandler

// Add registers h once.
func (s *TouchHandlers) Add(h TouchHandler) {
	if h == nil {
		return
	}
	for _, existing := range *s {
		if existing == h {
			return
		}
	}
	*s = append(*s, h)
}

// Remove unregisters h.
func (s *TouchHandlers) Remove(h TouchHandler) {
	hs := *s
	for i, existing := range hs {
		if existing == h {
			copy(hs[i:], hs[i+1:])
			hs[len(hs)-1] = nil
			*s = hs[:len(hs)-1]
			return
		}
	}
}

// Start calls TouchStart on every handler.
func (s TouchHandlers) Start(x, y float64) {
	for _, h := range s.snapshot() {
		h.TouchStart(x, y)
	}
}

// Move calls TouchMove on every handler.
func (s TouchHandlers) Move(x, y float64) {
	for _, h := range s.snapshot() {
		h.TouchMove(x, y)
	}
}

// End calls TouchEnd on every handler.
func (s TouchHandlers) End(x, y float64) {
	for _, h := range s.snapshot() {
		h.TouchEnd(x, y)
	}
}

func (s TouchHandlers) snapshot() []TouchHandler {
	out := make([]TouchHandler, len(s))
	copy(out, s)
	return out
}

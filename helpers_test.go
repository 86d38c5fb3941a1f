package arbor

import (
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

// observedLogger returns a logger recording Warn and above.
func observedLogger() (*zap.Logger, *observer.ObservedLogs) {
	core, logs := observer.New(zapcore.WarnLevel)
	return zap.New(core), logs
}

// newTestGame creates a session whose warnings are recorded.
func newTestGame(t *testing.T) (*Game, *observer.ObservedLogs) {
	t.Helper()
	log, logs := observedLogger()
	g := NewGame(Config{Logger: log})
	t.Cleanup(g.Dispose)
	return g, logs
}

// uiRoot creates a full-screen UI root and records it in ScreenData.
func uiRoot(g *Game) *Entity {
	root := g.CreateEntity(WithLayout(NewLayout(0, 0, 800, 600)))
	ensure[ScreenData](g.Data()).UIRoot = root.ID()
	return root
}

// recordingHandler records every event it receives.
type recordingHandler struct {
	topics   []string
	payloads []Payload
}

func (h *recordingHandler) HandleEvent(topic string, _ *EventBus, payload Payload) {
	h.topics = append(h.topics, topic)
	h.payloads = append(h.payloads, payload)
}

// recordingTouch records the lifecycle calls it receives.
type recordingTouch struct {
	calls []string
	xs    []float64
	ys    []float64
}

func (r *recordingTouch) record(kind string, x, y float64) {
	r.calls = append(r.calls, kind)
	r.xs = append(r.xs, x)
	r.ys = append(r.ys, y)
}

func (r *recordingTouch) TouchStart(x, y float64) { r.record("start", x, y) }
func (r *recordingTouch) TouchMove(x, y float64) { r.record("move", x, y) }
func (r *recordingTouch) TouchEnd(x, y float64) { r.record("end", x, y) }

// sinkRecorder collects interaction events.
type sinkRecorder struct {
	events []InteractionEvent
}

func (s *sinkRecorder) EmitEvent(ev InteractionEvent) {
	s.events = append(s.events, ev)
}

func (s *sinkRecorder) types() []EventType {
	out := make([]EventType, len(s.events))
	for i, ev := range s.events {
		out[i] = ev.Type
	}
	return out
}

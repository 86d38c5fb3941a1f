package arbor

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// scriptStep is a single action in a touch script.
type scriptStep struct {
	Action string  `yaml:"action"`
	X      float64 `yaml:"x,omitempty"`
	Y      float64 `yaml:"y,omitempty"`
	FromX  float64 `yaml:"fromX,omitempty"`
	FromY  float64 `yaml:"fromY,omitempty"`
	ToX    float64 `yaml:"toX,omitempty"`
	ToY    float64 `yaml:"toY,omitempty"`
	Frames int     `yaml:"frames,omitempty"`
}

// touchScript is the top-level YAML document.
type touchScript struct {
	Steps []scriptStep `yaml:"steps"`
}

// ScriptRunner plays a touch script through an InjectSource. It is itself a
// TouchSource and Poller: install it as TouchData.Source and the UI router
// advances it once per frame.
//
//	steps:
//	  - action: tap
//	    x: 100
//	    y: 200
//	  - action: wait
//	    frames: 3
//	  - action: drag
//	    fromX: 10
//	    fromY: 10
//	    toX: 90
//	    toY: 40
//	    frames: 6
type ScriptRunner struct {
	steps     []scriptStep
	cursor    int
	waitCount int
	done      bool
	src       *InjectSource
}

// LoadTouchScript parses a YAML touch script.
func LoadTouchScript(data []byte) (*ScriptRunner, error) {
	var script touchScript
	if err := yaml.Unmarshal(data, &script); err != nil {
		return nil, fmt.Errorf("parse touch script: %w", err)
	}
	if len(script.Steps) == 0 {
		return nil, fmt.Errorf("parse touch script: %w", ErrEmptyScript)
	}
	for i, st := range script.Steps {
		switch st.Action {
		case "tap", "click", "drag", "wait":
		default:
			return nil, fmt.Errorf("parse touch script: step %d %q: %w", i, st.Action, ErrUnknownStep)
		}
	}
	return &ScriptRunner{steps: script.Steps, src: NewInjectSource()}, nil
}

// Register implements TouchSource.
func (r *ScriptRunner) Register(h TouchHandler) { r.src.Register(h) }

// Unregister implements TouchSource.
func (r *ScriptRunner) Unregister(h TouchHandler) { r.src.Unregister(h) }

// Source returns the underlying inject queue.
func (r *ScriptRunner) Source() *InjectSource { return r.src }

// Done reports whether every step has run and every injected event has been
// delivered.
func (r *ScriptRunner) Done() bool {
	return r.done
}

// Poll advances the script by one frame, then delivers at most one queued
// event. Implements Poller.
func (r *ScriptRunner) Poll() {
	r.step()
	r.src.Poll()
	if r.cursor >= len(r.steps) && r.waitCount == 0 && r.src.Pending() == 0 {
		r.done = true
	}
}

func (r *ScriptRunner) step() {
	if r.done {
		return
	}
	// Pending injections drain before the next step.
	if r.src.Pending() > 0 {
		return
	}
	if r.waitCount > 0 {
		r.waitCount--
		return
	}
	if r.cursor >= len(r.steps) {
		return
	}

	st := r.steps[r.cursor]
	r.cursor++

	switch st.Action {
	case "tap", "click":
		r.src.InjectClick(st.X, st.Y)
	case "drag":
		r.src.InjectDrag(st.FromX, st.FromY, st.ToX, st.ToY, st.Frames)
	case "wait":
		if st.Frames > 0 {
			r.waitCount = st.Frames - 1 // this frame counts as one
		}
	}
}

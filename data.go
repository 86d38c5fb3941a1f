package arbor

import (
	"image"

	"github.com/google/uuid"
)

// Capability record identifiers.
const (
	DataScreen DataID = "screen"
	DataTouch  DataID = "touch"
)

// Surface is a rendering target handle. *ebiten.Image satisfies it; the core
// never draws on a surface itself.
type Surface interface {
	Bounds() image.Rectangle
}

// ScreenData holds the rendering surfaces, pixel dimensions, and the root of
// the UI tree for one session.
type ScreenData struct {
	GameSurface Surface
	UISurface   Surface
	Width       float64
	Height      float64

	// UIRoot is the entity the UI routers and UIRenderSystem start from.
	// Zero means no UI tree.
	UIRoot EntityID

	// Painter receives the UI tree in paint order from UIRenderSystem.
	Painter Painter
}

// DataID implements Data.
func (*ScreenData) DataID() DataID { return DataScreen }

// SessionOwner records which router owns the current touch session.
type SessionOwner uint8

const (
	OwnerNone SessionOwner = iota // no drag claimed the touch start
	OwnerUI                       // a UI drag owns the session
	OwnerGame                     // a game-layer drag owns the session
)

// String returns the owner name.
func (o SessionOwner) String() string {
	switch o {
	case OwnerNone:
		return "none"
	case OwnerUI:
		return "ui"
	case OwnerGame:
		return "game"
	default:
		return "unknown"
	}
}

// TouchData is shared by the UI and game-layer routers. It carries the host
// input source and the ownership of the in-progress touch session.
type TouchData struct {
	// Source delivers pointer lifecycle calls. UIInputSystem registers itself
	// with it on construction and pumps it each frame when it is a Poller.
	Source TouchSource

	// Sink optionally receives every dispatched interaction event.
	Sink InteractionSink

	Owner     SessionOwner
	SessionID uuid.UUID
	Active    bool
	StartX    float64
	StartY    float64
	LastX     float64
	LastY     float64
}

// DataID implements Data.
func (*TouchData) DataID() DataID { return DataTouch }

// begin opens a new touch session at (x, y).
func (t *TouchData) begin(x, y float64) {
	t.SessionID = uuid.New()
	t.Active = true
	t.Owner = OwnerNone
	t.StartX, t.StartY = x, y
	t.LastX, t.LastY = x, y
}

// finish closes the current touch session.
func (t *TouchData) finish() {
	t.Active = false
	t.Owner = OwnerNone
}

// emit forwards an interaction event to the sink, if any.
func (t *TouchData) emit(ev InteractionEvent) {
	if t == nil || t.Sink == nil {
		return
	}
	ev.SessionID = t.SessionID
	t.Sink.EmitEvent(ev)
}

// InteractionEvent describes one dispatched click or drag callback.
type InteractionEvent struct {
	Type      EventType
	Layer     Layer
	EntityID  EntityID
	SessionID uuid.UUID
	X, Y      float64
	// Drag fields (valid for EventDragStart, EventDrag, EventDragEnd)
	StartX float64
	StartY float64
	DeltaX float64
	DeltaY float64
}

// InteractionSink receives interaction events from the routers. See the ecs
// package for a donburi-backed implementation.
type InteractionSink interface {
	EmitEvent(event InteractionEvent)
}

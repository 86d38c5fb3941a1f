package arbor

import "image/color"

// Vec2 is a 2D vector used for positions, offsets, sizes, and deltas
// throughout the API.
type Vec2 struct {
	X, Y float64
}

// Rect is an axis-aligned rectangle in screen pixels. The coordinate system
// has its origin at the top-left, with Y increasing downward.
type Rect struct {
	X, Y, Width, Height float64
}

// Contains reports whether the point (x, y) lies inside the rectangle.
// Points on the edge are considered inside.
func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x <= r.X+r.Width &&
		y >= r.Y && y <= r.Y+r.Height
}

// Color represents an RGBA color with components in [0, 1]. Not premultiplied.
type Color struct {
	R, G, B, A float64
}

// ColorWhite is the default label color.
var ColorWhite = Color{1, 1, 1, 1}

// RGBA converts c to a premultiplied color.RGBA for image APIs.
func (c Color) RGBA() color.RGBA {
	clamp := func(v float64) uint8 {
		if v <= 0 {
			return 0
		}
		if v >= 1 {
			return 255
		}
		return uint8(v*255 + 0.5)
	}
	return color.RGBA{
		R: clamp(c.R * c.A),
		G: clamp(c.G * c.A),
		B: clamp(c.B * c.A),
		A: clamp(c.A),
	}
}

// Layer identifies which of the two hit-tested trees an interaction belongs to.
type Layer uint8

const (
	LayerUI   Layer = iota // screen-space layout tree, tested first
	LayerGame              // simulation-space entities, tested when UI declines
)

// String returns the layer name.
func (l Layer) String() string {
	switch l {
	case LayerUI:
		return "ui"
	case LayerGame:
		return "game"
	default:
		return "unknown"
	}
}

// EventType identifies a kind of interaction event delivered to an
// InteractionSink.
type EventType uint8

const (
	EventClick     EventType = iota // fires when a touch ends over an actionable click target
	EventDragStart                  // fires when a touch start is claimed by a drag target
	EventDrag                       // fires for every move while a drag session is open
	EventDragEnd                    // fires when the owning touch ends
)

// String returns the event name.
func (t EventType) String() string {
	switch t {
	case EventClick:
		return "click"
	case EventDragStart:
		return "drag_start"
	case EventDrag:
		return "drag"
	case EventDragEnd:
		return "drag_end"
	default:
		return "unknown"
	}
}

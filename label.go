package arbor

// TextAlign controls horizontal text placement relative to the layout's
// absolute position.
type TextAlign uint8

const (
	AlignLeft TextAlign = iota
	AlignCenter
	AlignRight
)

// Label attaches a line of text to a UI entity. UIRenderSystem paints it at
// the co-located Layout's absolute position.
type Label struct {
	ComponentBase

	Text     string
	FontSize float64
	Color    Color
	Align    TextAlign

	// Background fills the Layout bounds behind the text when its alpha is
	// non-zero.
	Background Color
}

// NewLabel creates a white, left-aligned, 16px label.
func NewLabel(text string) *Label {
	return &Label{Text: text, FontSize: 16, Color: ColorWhite}
}

// Tag implements Component.
func (*Label) Tag() ComponentTag { return TagLabel }

// OnDetach clears the text.
func (l *Label) OnDetach() {
	l.Text = ""
}

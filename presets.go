package arbor

// WithComponent attaches c.
func WithComponent(c Component) Preset {
	return func(e *Entity) { e.Attach(c) }
}

// WithLayout attaches l.
func WithLayout(l *Layout) Preset {
	return func(e *Entity) { e.Attach(l) }
}

// WithLabel attaches a label with the given text.
func WithLabel(text string) Preset {
	return func(e *Entity) { e.Attach(NewLabel(text)) }
}

// WithUIClick attaches a UI click target calling fn.
func WithUIClick(fn func(ClickContext)) Preset {
	return func(e *Entity) { e.Attach(NewUIClick(fn)) }
}

// WithUIDrag attaches d.
func WithUIDrag(d *UIDrag) Preset {
	return func(e *Entity) { e.Attach(d) }
}

// WithGameClick attaches a game-layer click target calling fn.
func WithGameClick(area HitArea, fn func(ClickContext)) Preset {
	return func(e *Entity) { e.Attach(NewGameClick(area, fn)) }
}

// WithGameDrag attaches d.
func WithGameDrag(d *GameDrag) Preset {
	return func(e *Entity) { e.Attach(d) }
}

// ChildOf parents the entity under parent.
func ChildOf(parent *Entity) Preset {
	return func(e *Entity) { e.SetParent(parent) }
}

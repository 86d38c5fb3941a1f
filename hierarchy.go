package arbor

import "go.uber.org/zap"

// Hierarchy maintains the parent/child links of an entity. It carries no
// geometry. Every entity holds one from creation until disposal.
//
// Links are entity handles resolved through the session's entity table, so a
// child never keeps its parent alive. Cycles are not detected.
type Hierarchy struct {
	ComponentBase
	parent   EntityID
	children []EntityID
}

// Tag implements Component.
func (*Hierarchy) Tag() ComponentTag { return TagHierarchy }

// SetParent removes the entity from its current parent's children and appends
// it to parent's. A nil parent makes the entity a root.
func (h *Hierarchy) SetParent(parent *Entity) {
	if !h.Attached() {
		return
	}
	if parent != nil && parent.ID() == h.owner {
		h.Logger().Warn("set parent: entity cannot parent itself", zap.Uint64("entity", uint64(h.owner)))
		return
	}
	var ph *Hierarchy
	if parent != nil {
		if ph = parent.Hierarchy(); ph == nil || !ph.Attached() {
			h.Logger().Warn("set parent: parent is disposed",
				zap.Uint64("entity", uint64(h.owner)), zap.Uint64("parent", uint64(parent.ID())))
			return
		}
	}

	if old := h.parentHierarchy(); old != nil {
		old.removeChildID(h.owner)
	}
	h.parent = 0
	if ph != nil {
		h.parent = parent.ID()
		ph.addChildID(h.owner)
	}
}

// AddChild makes child a child of this entity. Equivalent to
// child.SetParent(owner).
func (h *Hierarchy) AddChild(child *Entity) {
	if child == nil {
		h.Logger().Warn("add child: child is nil", zap.Uint64("entity", uint64(h.owner)))
		return
	}
	ch := child.Hierarchy()
	if ch == nil {
		return
	}
	ch.SetParent(h.Entity())
}

// RemoveChild turns child into a root, but only if this entity is its current
// parent. Returns whether the link was removed.
func (h *Hierarchy) RemoveChild(child *Entity) bool {
	if child == nil {
		return false
	}
	ch := child.Hierarchy()
	if ch == nil || ch.parent == 0 || ch.parent != h.owner {
		return false
	}
	ch.parent = 0
	h.removeChildID(child.ID())
	return true
}

// ParentID returns the parent handle, or zero for a root.
func (h *Hierarchy) ParentID() EntityID {
	return h.parent
}

// Parent resolves the parent entity. Returns nil for a root.
func (h *Hierarchy) Parent() *Entity {
	if h.parent == 0 {
		return nil
	}
	e, _ := h.entities.Get(h.parent)
	return e
}

// ChildIDs returns a copy of the child handles in insertion order.
func (h *Hierarchy) ChildIDs() []EntityID {
	out := make([]EntityID, len(h.children))
	copy(out, h.children)
	return out
}

// Children resolves the children in insertion order. The returned slice is a
// snapshot; reparenting while iterating it is safe.
func (h *Hierarchy) Children() []*Entity {
	out := make([]*Entity, 0, len(h.children))
	for _, id := range h.children {
		if e, ok := h.entities.Get(id); ok {
			out = append(out, e)
		}
	}
	return out
}

// NumChildren returns the number of children.
func (h *Hierarchy) NumChildren() int {
	return len(h.children)
}

// OnDetach unlinks the entity from its parent and turns every child into a
// root, so no link ever points at a disposed entity.
func (h *Hierarchy) OnDetach() {
	if old := h.parentHierarchy(); old != nil {
		old.removeChildID(h.owner)
	}
	h.parent = 0
	for _, id := range h.children {
		if e, ok := h.entities.Get(id); ok {
			if ch := e.Hierarchy(); ch != nil && ch.parent == h.owner {
				ch.parent = 0
			}
		}
	}
	h.children = nil
}

func (h *Hierarchy) parentHierarchy() *Hierarchy {
	p := h.Parent()
	if p == nil {
		return nil
	}
	return p.Hierarchy()
}

func (h *Hierarchy) addChildID(id EntityID) {
	for _, c := range h.children {
		if c == id {
			return
		}
	}
	h.children = append(h.children, id)
}

func (h *Hierarchy) removeChildID(id EntityID) {
	for i, c := range h.children {
		if c == id {
			copy(h.children[i:], h.children[i+1:])
			h.children = h.children[:len(h.children)-1]
			return
		}
	}
}

package box

// Arena is the bump allocator owning every box of one layout invocation.
// Boxes reference each other through handles (indices), so growing the
// backing slice never invalidates references. An arena must not be shared
// between concurrent layout calls; the whole tree is reclaimed by dropping
// the arena or calling Reset.
type Arena struct {
	boxes []Box
}

// NewArena returns an empty arena with some room preallocated.
func NewArena() *Arena {
	return &Arena{boxes: make([]Box, 0, 64)}
}

// Alloc stores b and returns its handle.
func (a *Arena) Alloc(b Box) Handle {
	a.boxes = append(a.boxes, b)
	return Handle(len(a.boxes) - 1)
}

// At returns the box for h. The returned pointer is owned by the arena;
// renderers must treat it as read-only.
func (a *Arena) At(h Handle) *Box {
	return &a.boxes[h]
}

// Valid reports whether h refers to a box in this arena.
func (a *Arena) Valid(h Handle) bool {
	return h >= 0 && int(h) < len(a.boxes)
}

// Len returns the number of allocated boxes.
func (a *Arena) Len() int {
	return len(a.boxes)
}

// Reset discards all boxes at once, keeping the backing storage for reuse.
// Handles issued before Reset must not be used afterwards.
func (a *Arena) Reset() {
	a.boxes = a.boxes[:0]
}

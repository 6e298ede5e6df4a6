package box

// Position locates a box during traversal: x grows rightwards from the left
// edge of the root, y grows downwards from the root baseline.
type Position struct {
	X float64
	Y float64
}

// VisitFunc receives each box in paint order together with its position.
// Returning false prunes the subtree below the box.
type VisitFunc func(h Handle, pos Position) bool

// Walk traverses the tree below root in paint order (a parent is visited
// before its children) handing each visited box its absolute position.
// Renderers are expected to build their output from exactly this traversal
// and must not mutate the boxes they see.
func Walk(a *Arena, root Handle, fn VisitFunc) {
	if !a.Valid(root) {
		return
	}
	walk(a, root, Position{}, fn)
}

func walk(a *Arena, h Handle, pos Position, fn VisitFunc) {
	if !fn(h, pos) {
		return
	}
	b := a.At(h)
	switch b.Kind {
	case KindHList:
		x := pos.X
		for i, ch := range b.Children {
			var shift float64
			if b.Shifts != nil {
				shift = b.Shifts[i]
			}
			walk(a, ch, Position{X: x, Y: pos.Y + shift}, fn)
			x += a.At(ch).Width
		}
	case KindVList:
		for i, ch := range b.Children {
			walk(a, ch, Position{X: pos.X, Y: pos.Y + b.Shifts[i]}, fn)
		}
	}
}

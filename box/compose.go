package box

import (
	"fml/common"
	"fml/metrics"
	"fml/sem"
)

// Glyph allocates a leaf glyph box from resolved metrics.
func (a *Arena) Glyph(src sem.Node, r rune, font metrics.FontID, gi metrics.GlyphInfo, class common.SpacingClass) Handle {
	b := Box{
		Kind:   KindGlyph,
		Class:  class,
		Height: gi.Height,
		Depth:  gi.Depth,
		Width:  gi.Width,
		Italic: gi.Italic,
		Skew:   gi.Skew,
		Rune:   r,
		Font:   font,
		Src:    src,
	}
	clamp(&b)
	return a.Alloc(b)
}

// Kern allocates a horizontal space box. Kerns are invisible to the spacing
// pass (class Ignore).
func (a *Arena) Kern(amount float64) Handle {
	return a.Alloc(Box{Kind: KindKern, Class: common.ClassIgnore, Width: amount})
}

// Rule allocates a filled rectangle sitting on the baseline: height =
// thickness, no depth.
func (a *Arena) Rule(src sem.Node, width, thickness float64) Handle {
	b := Box{
		Kind:   KindRule,
		Class:  common.ClassOrd,
		Height: thickness,
		Width:  width,
		Src:    src,
	}
	clamp(&b)
	return a.Alloc(b)
}

// Opaque allocates a box whose payload passes through to renderers. The
// caller fixes the metric envelope.
func (a *Arena) Opaque(src sem.Node, data any, width, height, depth float64, class common.SpacingClass) Handle {
	b := Box{
		Kind:   KindOpaque,
		Class:  class,
		Height: height,
		Depth:  depth,
		Width:  width,
		Data:   data,
		Src:    src,
	}
	clamp(&b)
	return a.Alloc(b)
}

// Empty allocates a zero-dimension placeholder, flagged when it substitutes
// a missing child.
func (a *Arena) Empty(src sem.Node, class common.SpacingClass, flagged bool) Handle {
	return a.Alloc(Box{Kind: KindHList, Class: class, Src: src, Flagged: flagged})
}

// HList composes children into a horizontal list. Width is the sum of the
// children's widths; height and depth are the extremes after applying the
// per-child baseline shifts (positive shift moves a child down). A nil
// shifts slice means all children sit on the common baseline.
func (a *Arena) HList(src sem.Node, class common.SpacingClass, children []Handle, shifts []float64) Handle {
	b := Box{
		Kind:     KindHList,
		Class:    class,
		Children: children,
		Shifts:   shifts,
		Src:      src,
	}
	for i, ch := range children {
		c := a.At(ch)
		var shift float64
		if shifts != nil {
			shift = shifts[i]
		}
		b.Width += c.Width
		b.Height = max(b.Height, c.Height-shift)
		b.Depth = max(b.Depth, c.Depth+shift)
	}
	if n := len(children); n > 0 {
		b.Italic = a.At(children[n-1]).Italic
	}
	clamp(&b)
	return a.Alloc(b)
}

// VList composes children into a vertical stack. Children are left-aligned;
// each child's baseline sits at its shift below the parent baseline. Width
// is the widest child; height and depth come from the extreme vertical
// extents.
func (a *Arena) VList(src sem.Node, class common.SpacingClass, children []Handle, shifts []float64) Handle {
	b := Box{
		Kind:     KindVList,
		Class:    class,
		Children: children,
		Shifts:   shifts,
		Src:      src,
	}
	for i, ch := range children {
		c := a.At(ch)
		b.Width = max(b.Width, c.Width)
		b.Height = max(b.Height, c.Height-shifts[i])
		b.Depth = max(b.Depth, c.Depth+shifts[i])
	}
	clamp(&b)
	return a.Alloc(b)
}

// clamp forces negative dimensions to zero, flagging the box so the caller
// can attach a diagnostic. Layout never aborts on malformed numbers.
func clamp(b *Box) {
	if b.Height < 0 {
		b.Height = 0
		b.Flagged = true
	}
	if b.Depth < 0 {
		b.Depth = 0
		b.Flagged = true
	}
	if b.Width < 0 {
		b.Width = 0
		b.Flagged = true
	}
}

package layout

import (
	"fml/box"
	"fml/common"
	"fml/metrics"
	"fml/sem"
)

// delimGroup wraps content in stretched delimiters. The required delimiter
// extent is derived from the content extent around the math axis, scaled by
// the provider's delimiter coverage factor, with a style floor (display
// demands taller delimiters than text). Delimiters are centered on the
// axis; the group as a whole is an Inner atom.
func (l *layouter) delimGroup(v *sem.DelimGroup, ctx Context) box.Handle {
	content := l.required(v, v.Content, "content", ctx)
	cb := l.arena.At(content)

	rec := ctx.Rec
	axis := rec.AxisHeight
	// Twice the larger half-extent around the axis.
	around := 2 * max(cb.Height-axis, cb.Depth+axis)
	short := rec.DelimShort2
	if ctx.Display() {
		short = rec.DelimShort1
	}
	required := max(around*rec.DelimFactor, around-short)

	var children []box.Handle
	if v.Left != 0 {
		children = append(children, l.delimiter(v, v.Left, required, common.ClassOpen, ctx))
	}
	children = append(children, content)
	if v.Right != 0 {
		children = append(children, l.delimiter(v, v.Right, required, common.ClassClose, ctx))
	}
	return l.checkFlag(l.arena.HList(v, common.ClassInner, children, nil), v)
}

// delimiter produces one delimiter box of at least the required vertical
// extent, centered on the axis. When the plain glyph suffices it is used
// unchanged, otherwise a stretched contour is synthesized.
func (l *layouter) delimiter(src sem.Node, r rune, required float64, class common.SpacingClass, ctx Context) box.Handle {
	rec := ctx.Rec
	axis := rec.AxisHeight

	gi, ok := l.provider.GlyphMetrics(metrics.DefaultFont, r, ctx.Style)
	if !ok {
		l.diags.add(DiagUnresolvedGlyph, src, "no metrics for delimiter %q", r)
		gi = metrics.GlyphInfo{Width: rec.PlaceholderWidth, Height: rec.XHeight}
	}

	if gi.Height+gi.Depth >= required {
		h := l.arena.Glyph(src, r, metrics.DefaultFont, gi, class)
		if !ok {
			l.arena.At(h).Flagged = true
		}
		// Center the glyph on the axis.
		delta := (gi.Height-gi.Depth)/2 - axis
		if delta != 0 {
			h = l.arena.HList(src, class, []box.Handle{h}, []float64{delta})
		}
		return h
	}

	// Stretched contour of exactly the required extent, centered on the
	// axis.
	height := required/2 + axis
	depth := required/2 - axis
	return l.arena.Opaque(src, box.StretchSpec{Rune: r, Extent: required}, gi.Width, height, depth, class)
}

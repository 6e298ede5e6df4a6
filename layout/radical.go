package layout

import (
	"fml/box"
	"fml/common"
	"fml/sem"
)

// Radical sign rune used for the stretched contour payload.
const radicalSign = '√'

// radical draws a root: the radicand in the cramped variant of the current
// style, an overline gap of rule thickness plus a quarter x-height (display)
// or a quarter rule thickness (other styles), and a sign contour stretched
// to cover the whole stack. An optional degree is set in cramped
// scriptscript style and raised along the rise of the sign stroke.
func (l *layouter) radical(v *sem.Radical, ctx Context) box.Handle {
	rad := l.required(v, v.Radicand, "radicand", l.derive(ctx, RoleCramped))
	rb := l.arena.At(rad)

	rec := ctx.Rec
	theta := rec.RuleThickness
	gap := theta + theta/4
	if ctx.Display() {
		gap = theta + rec.XHeight/4
	}

	extent := rb.Height + rb.Depth + gap + theta

	// Stack the overline above the radicand.
	bar := l.arena.Rule(v, rb.Width, theta)
	body := l.arena.VList(v, common.ClassOrd, []box.Handle{bar, rad}, []float64{-(rb.Height + gap), 0})

	// The sign glyph supplies the width; the vertical extent is synthesized
	// to cover the body, so the contour is passed through opaquely.
	signWidth := rec.SignBearing + rec.PlaceholderWidth
	if gi, ok := l.provider.GlyphMetrics(fontOrDefault(""), radicalSign, ctx.Style); ok {
		signWidth = rec.SignBearing + gi.Width
	} else {
		l.diags.add(DiagUnresolvedGlyph, v, "no metrics for radical sign %q", radicalSign)
	}
	sign := l.arena.Opaque(v, box.StretchSpec{Rune: radicalSign, Extent: extent},
		signWidth, rb.Height+gap+theta, rb.Depth, common.ClassOrd)

	children := []box.Handle{sign, body}
	if v.Index != nil {
		idx := l.layout(v.Index, l.derive(ctx, RoleRadicalIndex))
		// Tuck the degree into the rise of the sign stroke: a small lead-in
		// kern, then back up over the sign after it.
		raise := extent*3/5 - rb.Depth
		lead := l.arena.Kern(rec.Quad * 5 / 18)
		back := l.arena.Kern(-rec.Quad * 10 / 18)
		children = append([]box.Handle{lead, idx, back}, children...)
		h := l.arena.HList(v, common.ClassOrd, children,
			[]float64{0, -raise, 0, 0, 0})
		return l.checkFlag(h, v)
	}
	return l.checkFlag(l.arena.HList(v, common.ClassOrd, children, nil), v)
}

package layout

import (
	"fml/box"
	"fml/common"
	"fml/metrics"
	"fml/sem"
)

// accent centers the accent glyph over the base, adjusted by the skew of a
// single slanted base glyph, and drops it so it clears the base by at most
// the x-height: short bases pull the accent down onto them, tall bases push
// it up.
func (l *layouter) accent(v *sem.Accent, ctx Context) box.Handle {
	base := l.required(v, v.Base, "base", l.derive(ctx, RoleCramped))
	bb := l.arena.At(base)

	rec := ctx.Rec
	acc := l.glyph(v, v.Command, metrics.DefaultFont, common.ClassOrd, ctx)
	ab := l.arena.At(acc)

	// Accent glyphs are designed to sit over an x-height tall base; taller
	// bases lift the accent by the difference.
	clearance := min(bb.Height, rec.XHeight)
	raise := bb.Height - clearance

	skew := 0.0
	if bb.Kind == box.KindGlyph {
		skew = bb.Skew
	}
	dx := (bb.Width-ab.Width)/2 + skew
	accCol := acc
	if dx != 0 {
		accCol = l.arena.HList(v, common.ClassIgnore, []box.Handle{l.arena.Kern(dx), acc}, nil)
	}

	h := l.arena.VList(v, common.ClassOrd, []box.Handle{accCol, base}, []float64{-raise, 0})
	return l.checkFlag(h, v)
}

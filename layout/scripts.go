package layout

import (
	"fml/box"
	"fml/common"
	"fml/sem"
)

// subsup attaches sub/superscripts to a base. Single-character bases hang
// their scripts directly off the baseline; composite bases contribute their
// own extent minus the style drop metrics. When both scripts are present
// the subscript is pushed further down, by the full deficit, until the gap
// between superscript bottom and subscript top reaches 4x the rule
// thickness.
func (l *layouter) subsup(v *sem.SubSup, ctx Context) box.Handle {
	base := l.required(v, v.Base, "base", ctx)
	bb := l.arena.At(base)
	class := bb.Class

	if v.Sub == nil && v.Sup == nil {
		// Degenerate but harmless: nothing to attach.
		l.diags.add(DiagMissingChild, v, "subsup carries neither subscript nor superscript")
		return base
	}

	rec := ctx.Rec
	theta := rec.RuleThickness

	// A bare glyph base does not shift its scripts; composite boxes do.
	composite := bb.Kind != box.KindGlyph
	var shiftUp, shiftDown float64
	if composite {
		supRec := l.derive(ctx, RoleSuperscript).Rec
		subRec := l.derive(ctx, RoleSubscript).Rec
		shiftUp = bb.Height - supRec.SupDrop
		shiftDown = bb.Depth + subRec.SubDrop
	}
	// Scripts start right after the base; the italic correction separates
	// a slanted base from its subscript less than from its superscript.
	italic := bb.Italic

	space := l.arena.Kern(rec.ScriptSpace)

	if v.Sup == nil {
		sub := l.layout(v.Sub, l.derive(ctx, RoleSubscript))
		sb := l.arena.At(sub)
		down := max(shiftDown, rec.Sub1, sb.Height-rec.XHeight*4/5)
		h := l.arena.HList(v, class, []box.Handle{base, sub, space}, []float64{0, down, 0})
		return l.checkFlag(h, v)
	}

	sup := l.layout(v.Sup, l.derive(ctx, RoleSuperscript))
	sb := l.arena.At(sup)
	minUp := rec.Sup2
	if ctx.Display() {
		minUp = rec.Sup1
	}
	if ctx.Style.Cramped() {
		minUp = rec.Sup3
	}
	up := max(shiftUp, minUp, sb.Depth+rec.XHeight/4)

	if v.Sub == nil {
		kern := l.arena.Kern(italic)
		h := l.arena.HList(v, class, []box.Handle{base, kern, sup, space}, []float64{0, 0, -up, 0})
		return l.checkFlag(h, v)
	}

	sub := l.layout(v.Sub, l.derive(ctx, RoleSubscript))
	db := l.arena.At(sub)
	down := max(shiftDown, rec.Sub2)
	if gap := (up - sb.Depth) - (db.Height - down); gap < 4*theta {
		// Push the subscript down by the full deficit, keeping the
		// superscript where the style rules put it.
		down += 4*theta - gap
	}

	// The superscript sits an italic correction to the right of the
	// subscript column.
	supCol := l.arena.HList(v, common.ClassIgnore, []box.Handle{l.arena.Kern(italic), sup}, nil)
	scripts := l.arena.VList(v, common.ClassIgnore, []box.Handle{supCol, sub}, []float64{-up, down})
	h := l.arena.HList(v, class, []box.Handle{base, scripts, space}, nil)
	return l.checkFlag(h, v)
}

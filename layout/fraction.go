package layout

import (
	"fml/box"
	"fml/common"
	"fml/sem"
)

// fraction stacks numerator over denominator, with an optional bar centered
// on the math axis. Shifts start from the style table values and grow until
// the minimum clearances hold: with a bar the clearance is 3x the rule
// thickness in display style and 1x below it; without a bar 7x and 3x.
func (l *layouter) fraction(v *sem.Fraction, ctx Context) box.Handle {
	num := l.required(v, v.Num, "numerator", l.derive(ctx, RoleNumerator))
	den := l.required(v, v.Denom, "denominator", l.derive(ctx, RoleDenominator))

	rec := ctx.Rec
	theta := rec.RuleThickness
	display := ctx.Display()

	var up, down float64
	if display {
		up, down = rec.Num1, rec.Denom1
	} else if v.HasRule {
		up, down = rec.Num2, rec.Denom2
	} else {
		up, down = rec.Num3, rec.Denom2
	}

	nb, db := l.arena.At(num), l.arena.At(den)
	width := max(nb.Width, db.Width)

	if !v.HasRule {
		minGap := 3 * theta
		if display {
			minGap = 7 * theta
		}
		gap := (up - nb.Depth) - (db.Height - down)
		if gap < minGap {
			// Split the deficit symmetrically.
			d := (minGap - gap) / 2
			up += d
			down += d
		}
		children := []box.Handle{
			l.centered(v, num, width),
			l.centered(v, den, width),
		}
		return l.checkFlag(l.arena.VList(v, common.ClassInner, children, []float64{-up, down}), v)
	}

	minGap := theta
	if display {
		minGap = 3 * theta
	}
	axis := rec.AxisHeight
	// Clearance between the numerator bottom and the bar top.
	if gap := (up - nb.Depth) - (axis + theta/2); gap < minGap {
		up += minGap - gap
	}
	// Clearance between the bar bottom and the denominator top.
	if gap := (axis - theta/2) - (db.Height - down); gap < minGap {
		down += minGap - gap
	}

	bar := l.arena.Rule(v, width, theta)
	children := []box.Handle{
		l.centered(v, num, width),
		bar,
		l.centered(v, den, width),
	}
	shifts := []float64{-up, -(axis - theta/2), down}
	return l.checkFlag(l.arena.VList(v, common.ClassInner, children, shifts), v)
}

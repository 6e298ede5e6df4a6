package box

import (
	"fml/utils/debug"
)

// Dump returns a readable tree of the box subtree below h, for manual
// inspection during debugging.
func (a *Arena) Dump(h Handle) string {
	if !a.Valid(h) {
		return "<invalid handle>"
	}
	tw := debug.NewTreeWriter()
	a.dump(tw, 0, h, 0)
	return tw.String()
}

func (a *Arena) dump(tw *debug.TreeWriter, depth int, h Handle, shift float64) {
	b := a.At(h)
	flag := ""
	if b.Flagged {
		flag = " FLAGGED"
	}
	switch b.Kind {
	case KindGlyph:
		tw.Line(depth, "Glyph %q font=%q class=%s w=%.3f h=%.3f d=%.3f shift=%.3f%s", b.Rune, b.Font, b.Class, b.Width, b.Height, b.Depth, shift, flag)
	case KindKern:
		tw.Line(depth, "Kern w=%.3f%s", b.Width, flag)
	case KindRule:
		tw.Line(depth, "Rule w=%.3f thickness=%.3f shift=%.3f%s", b.Width, b.Height, shift, flag)
	case KindOpaque:
		tw.Line(depth, "Opaque %T class=%s w=%.3f h=%.3f d=%.3f shift=%.3f%s", b.Data, b.Class, b.Width, b.Height, b.Depth, shift, flag)
	default:
		tw.Line(depth, "%s class=%s w=%.3f h=%.3f d=%.3f shift=%.3f%s", b.Kind, b.Class, b.Width, b.Height, b.Depth, shift, flag)
		for i, ch := range b.Children {
			var s float64
			if b.Shifts != nil {
				s = b.Shifts[i]
			}
			a.dump(tw, depth+1, ch, s)
		}
	}
}

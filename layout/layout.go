// Package layout is the typesetting engine: it walks a semantic formula
// tree top-down, threading a style context through the recursion, and
// produces an arena-allocated box tree bottom-up. The numeric placement
// rules follow the TeX appendix G conventions with every constant read from
// the metrics provider.
package layout

import (
	"github.com/google/uuid"
	"go.uber.org/zap"

	"fml/box"
	"fml/common"
	"fml/metrics"
	"fml/sem"
)

// Result is the output of one layout invocation. The arena owns every box
// of the tree; discarding the Result reclaims all of them at once.
type Result struct {
	Arena *box.Arena
	Root  box.Handle
	Diags Diagnostics
}

type layouter struct {
	arena    *box.Arena
	provider metrics.Provider
	log      *zap.Logger
	diags    Diagnostics
}

// Layout typesets a semantic tree at the given style. It never fails:
// malformed input degrades the affected boxes and is reported through
// Result.Diags. Independent invocations may run concurrently as long as the
// provider is safe for concurrent reads.
func Layout(root sem.Node, style common.Style, p metrics.Provider, log *zap.Logger) *Result {
	l := &layouter{
		arena:    box.NewArena(),
		provider: p,
		log:      log,
		diags:    Diagnostics{Run: uuid.New()},
	}
	log = log.With(zap.String("run", l.diags.Run.String()))

	ctx := NewContext(p, style)
	h := l.layout(root, ctx)
	if !l.diags.Empty() {
		log.Debug("Layout finished with degradations",
			zap.Stringer("style", style),
			zap.Int("boxes", l.arena.Len()),
			zap.Int("diagnostics", len(l.diags.Items)))
	}
	return &Result{Arena: l.arena, Root: h, Diags: l.diags}
}

func (l *layouter) layout(n sem.Node, ctx Context) box.Handle {
	switch v := n.(type) {
	case *sem.Symbol:
		return l.glyphRun(v, string(v.Rune), v.Font, v.Class, ctx)
	case *sem.Number:
		return l.glyphRun(v, v.Text, v.Font, common.ClassOrd, ctx)
	case *sem.Operator:
		return l.operator(v, ctx)
	case *sem.Fraction:
		return l.fraction(v, ctx)
	case *sem.Radical:
		return l.radical(v, ctx)
	case *sem.SubSup:
		return l.subsup(v, ctx)
	case *sem.DelimGroup:
		return l.delimGroup(v, ctx)
	case *sem.Accent:
		return l.accent(v, ctx)
	case *sem.Array:
		return l.array(v, ctx)
	case *sem.Group:
		return l.group(v, ctx)
	case nil:
		// Callers substitute missing required children themselves; a nil
		// root ends up here.
		l.diags.add(DiagMissingChild, nil, "nil node")
		return l.arena.Empty(nil, common.ClassOrd, true)
	default:
		l.diags.add(DiagMissingChild, n, "unknown node type %T", n)
		return l.arena.Empty(n, common.ClassOrd, true)
	}
}

// required lays out a child that must be present; absence substitutes a
// zero box and records a diagnostic against the parent.
func (l *layouter) required(parent sem.Node, child sem.Node, what string, ctx Context) box.Handle {
	if child == nil {
		l.diags.add(DiagMissingChild, parent, "%s missing in %s", what, parent.Kind())
		return l.arena.Empty(parent, common.ClassOrd, true)
	}
	return l.layout(child, ctx)
}

// glyph resolves a single glyph through the provider, substituting a fixed
// width placeholder when the provider has no entry.
func (l *layouter) glyph(src sem.Node, r rune, font metrics.FontID, class common.SpacingClass, ctx Context) box.Handle {
	gi, ok := l.provider.GlyphMetrics(font, r, ctx.Style)
	if !ok {
		l.diags.add(DiagUnresolvedGlyph, src, "no metrics for %q in font %q", r, font)
		h := l.arena.Glyph(src, r, font, metrics.GlyphInfo{
			Width:  ctx.Rec.PlaceholderWidth,
			Height: ctx.Rec.XHeight,
		}, class)
		l.arena.At(h).Flagged = true
		return h
	}
	return l.arena.Glyph(src, r, font, gi, class)
}

// glyphRun lays out a run of glyphs as one atom. A single rune stays a bare
// glyph box so script attachment can use the cheaper single-character path.
func (l *layouter) glyphRun(src sem.Node, text string, font string, class common.SpacingClass, ctx Context) box.Handle {
	fid := fontOrDefault(font)
	runes := []rune(text)
	if len(runes) == 0 {
		l.diags.add(DiagMissingChild, src, "empty glyph run in %s", src.Kind())
		return l.arena.Empty(src, class, true)
	}
	if len(runes) == 1 {
		return l.glyph(src, runes[0], fid, class, ctx)
	}
	children := make([]box.Handle, 0, len(runes))
	for _, r := range runes {
		children = append(children, l.glyph(src, r, fid, class, ctx))
	}
	return l.arena.HList(src, class, children, nil)
}

// operator lays out a large operator, vertically centered on the math axis.
func (l *layouter) operator(v *sem.Operator, ctx Context) box.Handle {
	h := l.glyphRun(v, v.Name, v.Font, common.ClassOp, ctx)
	b := l.arena.At(h)
	// Center the operator body on the axis.
	delta := (b.Height-b.Depth)/2 - ctx.Rec.AxisHeight
	if delta == 0 {
		return h
	}
	return l.arena.HList(v, common.ClassOp, []box.Handle{h}, []float64{delta})
}

// group lays out a sibling sequence and runs the inter-atom spacing pass
// over it.
func (l *layouter) group(v *sem.Group, ctx Context) box.Handle {
	if len(v.Items) == 0 {
		return l.arena.Empty(v, common.ClassOrd, false)
	}
	children := make([]box.Handle, 0, len(v.Items))
	for _, item := range v.Items {
		children = append(children, l.layout(item, ctx))
	}
	children = ApplySpacing(l.arena, children, ctx.Style, ctx.Rec)
	return l.arena.HList(v, common.ClassOrd, children, nil)
}

// centered wraps h in an hlist padded with equal kerns on both sides so the
// result is exactly width wide.
func (l *layouter) centered(src sem.Node, h box.Handle, width float64) box.Handle {
	d := (width - l.arena.At(h).Width) / 2
	if d <= 0 {
		return h
	}
	left := l.arena.Kern(d)
	right := l.arena.Kern(d)
	return l.arena.HList(src, l.arena.At(h).Class, []box.Handle{left, h, right}, nil)
}

// checkFlag converts a clamped-dimension flag raised during composition
// into a diagnostic.
func (l *layouter) checkFlag(h box.Handle, src sem.Node) box.Handle {
	if l.arena.At(h).Flagged {
		l.diags.add(DiagDegenerateDimension, src, "negative dimension clamped in %s box", l.arena.At(h).Kind)
	}
	return h
}

func fontOrDefault(font string) metrics.FontID {
	if len(font) == 0 {
		return metrics.DefaultFont
	}
	return metrics.FontID(font)
}

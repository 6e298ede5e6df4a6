package layout_test

import (
	"testing"

	"go.uber.org/zap"

	"fml/box"
	"fml/common"
	"fml/layout"
	"fml/metrics"
	"fml/sem"
)

func TestDelimitersAroundShortContent(t *testing.T) {
	tbl := metrics.NewDefaultTable()
	node := &sem.DelimGroup{Left: '(', Content: ord('x'), Right: ')'}
	res := layout.Layout(node, common.StyleText, tbl, zap.NewNop())
	if !res.Diags.Empty() {
		t.Fatalf("diagnostics: %v", res.Diags.Err())
	}

	b := res.Arena.At(res.Root)
	if b.Kind != box.KindHList || b.Class != common.ClassInner {
		t.Fatalf("got %s/%s, want HList/Inner", b.Kind, b.Class)
	}
	if len(b.Children) != 3 {
		t.Fatalf("got %d children, want 3", len(b.Children))
	}
	// A lone 'x' fits inside plain parens, no stretching needed. The
	// delimiter may sit inside an axis-centering wrapper.
	left := res.Arena.At(b.Children[0])
	for left.Kind == box.KindHList {
		left = res.Arena.At(left.Children[0])
	}
	if left.Kind != box.KindGlyph || left.Rune != '(' {
		t.Errorf("left delimiter is %s %q, want plain glyph", left.Kind, left.Rune)
	}
}

func TestDelimitersStretchOverTallContent(t *testing.T) {
	tbl := metrics.NewDefaultTable()
	tall := &sem.Fraction{Num: ord('a'), Denom: ord('b'), HasRule: true}
	node := &sem.DelimGroup{Left: '(', Content: tall, Right: ')'}
	res := layout.Layout(node, common.StyleDisplay, tbl, zap.NewNop())

	b := res.Arena.At(res.Root)
	left := res.Arena.At(b.Children[0])
	if left.Kind != box.KindOpaque {
		t.Fatalf("left delimiter is %s, want stretched contour", left.Kind)
	}
	spec := left.Data.(box.StretchSpec)

	content := res.Arena.At(b.Children[1])
	rec := tbl.Lookup(common.StyleDisplay)
	around := 2 * max(content.Height-rec.AxisHeight, content.Depth+rec.AxisHeight)
	if spec.Extent < around*rec.DelimFactor-1e-9 {
		t.Errorf("delimiter extent %g below required coverage %g", spec.Extent, around*rec.DelimFactor)
	}
	// Centered on the axis.
	if !almost(left.Height-rec.AxisHeight, left.Depth+rec.AxisHeight) {
		t.Errorf("delimiter not centered on axis: h=%g d=%g", left.Height, left.Depth)
	}
}

func TestOpenSidedDelimGroup(t *testing.T) {
	node := &sem.DelimGroup{Content: ord('x'), Right: ')'}
	res := layout.Layout(node, common.StyleText, metrics.NewDefaultTable(), zap.NewNop())
	b := res.Arena.At(res.Root)
	if len(b.Children) != 2 {
		t.Errorf("got %d children, want content and right delimiter only", len(b.Children))
	}
}

func TestAccentPosition(t *testing.T) {
	tbl := metrics.NewDefaultTable()
	node := &sem.Accent{Command: 'ˆ', Base: ord('x')}
	res := layout.Layout(node, common.StyleText, tbl, zap.NewNop())
	if !res.Diags.Empty() {
		t.Fatalf("diagnostics: %v", res.Diags.Err())
	}

	b := res.Arena.At(res.Root)
	if b.Kind != box.KindVList || b.Class != common.ClassOrd {
		t.Fatalf("got %s/%s, want VList/Ord", b.Kind, b.Class)
	}
	// 'x' is exactly x-height tall, so the accent keeps its designed
	// position.
	if !almost(b.Shifts[0], 0) {
		t.Errorf("accent over x-height base shifted by %g, want 0", b.Shifts[0])
	}

	// A taller base must lift the accent.
	tallRes := layout.Layout(&sem.Accent{Command: 'ˆ', Base: ord('b')}, common.StyleText, tbl, zap.NewNop())
	tb := tallRes.Arena.At(tallRes.Root)
	if tb.Shifts[0] >= 0 {
		t.Errorf("accent over tall base shifted by %g, want raised", tb.Shifts[0])
	}
}

func TestAccentSkewAdjustment(t *testing.T) {
	tbl := metrics.NewDefaultTable()
	// 'd' carries a skew in the font table; the accent column must start
	// with a positioning kern.
	res := layout.Layout(&sem.Accent{Command: 'ˆ', Base: ord('d')}, common.StyleText, tbl, zap.NewNop())
	b := res.Arena.At(res.Root)
	col := res.Arena.At(b.Children[0])
	if col.Kind != box.KindHList || res.Arena.At(col.Children[0]).Kind != box.KindKern {
		t.Errorf("accent column lacks the positioning kern")
	}
}

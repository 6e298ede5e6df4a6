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

func TestSuperscriptShiftTextStyle(t *testing.T) {
	tbl := metrics.NewDefaultTable()
	node := &sem.SubSup{Base: ord('x'), Sup: &sem.Number{Text: "2"}}
	res := layout.Layout(node, common.StyleText, tbl, zap.NewNop())
	if !res.Diags.Empty() {
		t.Fatalf("diagnostics: %v", res.Diags.Err())
	}

	b := res.Arena.At(res.Root)
	if b.Kind != box.KindHList {
		t.Fatalf("got %s, want HList", b.Kind)
	}
	// Children: base, italic kern, superscript, script space.
	if len(b.Children) != 4 {
		t.Fatalf("got %d children, want 4", len(b.Children))
	}
	sup := res.Arena.At(b.Children[2])

	rec := tbl.Lookup(common.StyleText)
	want := max(rec.Sup2, sup.Depth+rec.XHeight/4)
	if !almost(-b.Shifts[2], want) {
		t.Errorf("superscript raise = %g, want max(%g, %g)", -b.Shifts[2], rec.Sup2, sup.Depth+rec.XHeight/4)
	}
	if b.Class != common.ClassOrd {
		t.Errorf("class = %s, want inherited Ord", b.Class)
	}
}

func TestSubscriptOnly(t *testing.T) {
	tbl := metrics.NewDefaultTable()
	node := &sem.SubSup{Base: ord('x'), Sub: &sem.Number{Text: "1"}}
	res := layout.Layout(node, common.StyleText, tbl, zap.NewNop())

	b := res.Arena.At(res.Root)
	if len(b.Children) != 3 {
		t.Fatalf("got %d children, want base, subscript, space", len(b.Children))
	}
	sub := res.Arena.At(b.Children[1])
	rec := tbl.Lookup(common.StyleText)
	want := max(rec.Sub1, sub.Height-rec.XHeight*4/5)
	if !almost(b.Shifts[1], want) {
		t.Errorf("subscript drop = %g, want %g", b.Shifts[1], want)
	}
}

func TestCrampedSuppressesRaise(t *testing.T) {
	tbl := metrics.NewDefaultTable()
	node := &sem.SubSup{Base: ord('x'), Sup: &sem.Number{Text: "2"}}

	plain := layout.Layout(node, common.StyleText, tbl, zap.NewNop())
	cramped := layout.Layout(node, common.StyleTextCramped, tbl, zap.NewNop())

	raise := func(r *layout.Result) float64 {
		b := r.Arena.At(r.Root)
		return -b.Shifts[2]
	}
	if raise(cramped) > raise(plain) {
		t.Errorf("cramped raise %g exceeds uncramped %g", raise(cramped), raise(plain))
	}
}

// scriptGap extracts the vertical gap between superscript bottom and
// subscript top from a both-scripts box.
func scriptGap(t *testing.T, res *layout.Result) float64 {
	t.Helper()
	a := res.Arena
	b := a.At(res.Root)
	if len(b.Children) != 3 {
		t.Fatalf("got %d children, want base, script column, space", len(b.Children))
	}
	col := a.At(b.Children[1])
	if col.Kind != box.KindVList || len(col.Children) != 2 {
		t.Fatalf("script column is %s with %d children", col.Kind, len(col.Children))
	}
	sup, sub := a.At(col.Children[0]), a.At(col.Children[1])
	supBottom := col.Shifts[0] + sup.Depth
	subTop := col.Shifts[1] - sub.Height
	return subTop - supBottom
}

func TestSubSupGapScenario(t *testing.T) {
	tbl := metrics.NewDefaultTable()
	node := &sem.SubSup{Base: ord('x'), Sub: &sem.Number{Text: "1"}, Sup: &sem.Number{Text: "2"}}
	res := layout.Layout(node, common.StyleText, tbl, zap.NewNop())

	rec := tbl.Lookup(common.StyleText)
	if gap := scriptGap(t, res); gap < 4*rec.RuleThickness-1e-9 {
		t.Errorf("script gap %g below 4x rule thickness %g", gap, 4*rec.RuleThickness)
	}
}

func TestSubSupGapProperty(t *testing.T) {
	p := &sizedProvider{table: metrics.NewDefaultTable()}

	runes := []rune{'a', 'g', 'M', 'q', '0', '9', 'Z', 'w'}
	for style := common.StyleDisplay; style <= common.StyleScriptScriptCramped; style++ {
		for _, rb := range runes {
			for _, rs := range runes {
				for _, rt := range runes {
					node := &sem.SubSup{Base: ord(rb), Sub: ord(rs), Sup: ord(rt)}
					res := layout.Layout(node, style, p, zap.NewNop())
					rec := p.Lookup(style)
					if gap := scriptGap(t, res); gap < 4*rec.RuleThickness-1e-9 {
						t.Fatalf("style %s %q_%q^%q: gap %g below %g",
							style, rb, rs, rt, gap, 4*rec.RuleThickness)
					}
				}
			}
		}
	}
}

func TestSubSupWithoutScripts(t *testing.T) {
	res := layout.Layout(&sem.SubSup{Base: ord('x')}, common.StyleText, metrics.NewDefaultTable(), zap.NewNop())
	if res.Diags.Empty() {
		t.Error("scriptless subsup should be diagnosed")
	}
	if res.Arena.At(res.Root).Kind != box.KindGlyph {
		t.Error("base must still come through")
	}
}

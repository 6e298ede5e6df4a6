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

func TestFractionDisplayShifts(t *testing.T) {
	tbl := metrics.NewDefaultTable()
	frac := &sem.Fraction{Num: ord('a'), Denom: ord('b'), HasRule: true}
	res := layout.Layout(frac, common.StyleDisplay, tbl, zap.NewNop())
	if !res.Diags.Empty() {
		t.Fatalf("diagnostics: %v", res.Diags.Err())
	}

	b := res.Arena.At(res.Root)
	if b.Kind != box.KindVList || b.Class != common.ClassInner {
		t.Fatalf("got %s/%s, want VList/Inner", b.Kind, b.Class)
	}
	if len(b.Children) != 3 {
		t.Fatalf("got %d stacked boxes, want numerator, rule, denominator", len(b.Children))
	}
	if res.Arena.At(b.Children[1]).Kind != box.KindRule {
		t.Fatal("middle box must be the fraction bar")
	}

	// With the default table the natural shifts already satisfy the
	// clearances, so they must come out of the table untouched, and the
	// bar must be centered on the axis.
	rec := tbl.Lookup(common.StyleDisplay)
	if !almost(b.Shifts[0], -rec.Num1) {
		t.Errorf("numerator shift = %g, want %g", b.Shifts[0], -rec.Num1)
	}
	if !almost(b.Shifts[2], rec.Denom1) {
		t.Errorf("denominator shift = %g, want %g", b.Shifts[2], rec.Denom1)
	}
	if !almost(b.Shifts[1], -(rec.AxisHeight - rec.RuleThickness/2)) {
		t.Errorf("bar shift = %g, want %g", b.Shifts[1], -(rec.AxisHeight - rec.RuleThickness/2))
	}
	if !almost(res.Arena.At(b.Children[1]).Height, rec.RuleThickness) {
		t.Errorf("bar thickness = %g, want %g", res.Arena.At(b.Children[1]).Height, rec.RuleThickness)
	}
}

func TestFractionWithoutRule(t *testing.T) {
	tbl := metrics.NewDefaultTable()
	frac := &sem.Fraction{Num: ord('a'), Denom: ord('b'), HasRule: false}
	res := layout.Layout(frac, common.StyleText, tbl, zap.NewNop())

	b := res.Arena.At(res.Root)
	if len(b.Children) != 2 {
		t.Fatalf("got %d stacked boxes, want 2 (no bar)", len(b.Children))
	}
	for _, ch := range b.Children {
		if res.Arena.At(ch).Kind == box.KindRule {
			t.Error("rule-less fraction must not contain a bar")
		}
	}
}

// fractionGaps extracts the clearances realized in a laid out fraction.
func fractionGaps(t *testing.T, res *layout.Result) (numGap, denGap float64) {
	t.Helper()
	b := res.Arena.At(res.Root)
	a := res.Arena
	switch len(b.Children) {
	case 3:
		num, bar, den := a.At(b.Children[0]), a.At(b.Children[1]), a.At(b.Children[2])
		numBottom := b.Shifts[0] + num.Depth
		barTop := b.Shifts[1] - bar.Height
		barBottom := b.Shifts[1]
		denTop := b.Shifts[2] - den.Height
		return barTop - numBottom, denTop - barBottom
	case 2:
		num, den := a.At(b.Children[0]), a.At(b.Children[1])
		gap := (b.Shifts[1] - den.Height) - (b.Shifts[0] + num.Depth)
		return gap, gap
	default:
		t.Fatalf("unexpected fraction shape: %d children", len(b.Children))
		return 0, 0
	}
}

func TestFractionClearanceProperty(t *testing.T) {
	p := &sizedProvider{table: metrics.NewDefaultTable()}

	runes := []rune{'a', 'g', 'M', 'q', '0', '9', 'Z', 'w', 'f', 'T'}
	for style := common.StyleDisplay; style <= common.StyleScriptScriptCramped; style++ {
		for _, hasRule := range []bool{true, false} {
			for i, rn := range runes {
				for _, rd := range runes[i:] {
					frac := &sem.Fraction{Num: ord(rn), Denom: ord(rd), HasRule: hasRule}
					res := layout.Layout(frac, style, p, zap.NewNop())

					rec := p.Lookup(style)
					theta := rec.RuleThickness
					var minGap float64
					display := style <= common.StyleDisplayCramped
					switch {
					case hasRule && display:
						minGap = 3 * theta
					case hasRule:
						minGap = theta
					case display:
						minGap = 7 * theta
					default:
						minGap = 3 * theta
					}

					numGap, denGap := fractionGaps(t, res)
					if numGap < minGap-1e-9 || denGap < minGap-1e-9 {
						t.Fatalf("style %s rule=%t %q/%q: gaps %g/%g below minimum %g",
							style, hasRule, rn, rd, numGap, denGap, minGap)
					}
				}
			}
		}
	}
}

package box_test

import (
	"math"
	"testing"

	"fml/box"
	"fml/common"
	"fml/metrics"
)

func almost(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func glyph(a *box.Arena, w, h, d float64) box.Handle {
	return a.Glyph(nil, 'x', metrics.DefaultFont, metrics.GlyphInfo{Width: w, Height: h, Depth: d}, common.ClassOrd)
}

func TestHListDimensions(t *testing.T) {
	a := box.NewArena()
	g1 := glyph(a, 0.5, 0.4, 0.1)
	g2 := glyph(a, 0.3, 0.7, 0.0)
	k := a.Kern(0.2)

	h := a.HList(nil, common.ClassOrd, []box.Handle{g1, k, g2}, nil)
	b := a.At(h)
	if !almost(b.Width, 1.0) {
		t.Errorf("width = %g, want 1.0", b.Width)
	}
	if !almost(b.Height, 0.7) || !almost(b.Depth, 0.1) {
		t.Errorf("height/depth = %g/%g, want 0.7/0.1", b.Height, b.Depth)
	}
}

func TestHListShiftedChild(t *testing.T) {
	a := box.NewArena()
	base := glyph(a, 0.5, 0.4, 0.0)
	sup := glyph(a, 0.3, 0.3, 0.0)

	// Raise the second child by 0.5: its top now reaches 0.8 above the
	// baseline.
	h := a.HList(nil, common.ClassOrd, []box.Handle{base, sup}, []float64{0, -0.5})
	b := a.At(h)
	if !almost(b.Height, 0.8) {
		t.Errorf("height = %g, want 0.8", b.Height)
	}
	if !almost(b.Depth, 0.0) {
		t.Errorf("depth = %g, want 0", b.Depth)
	}
}

func TestVListDimensions(t *testing.T) {
	a := box.NewArena()
	num := glyph(a, 0.5, 0.4, 0.0)
	den := glyph(a, 0.9, 0.4, 0.1)

	// Numerator raised by 0.6, denominator lowered by 0.5.
	v := a.VList(nil, common.ClassInner, []box.Handle{num, den}, []float64{-0.6, 0.5})
	b := a.At(v)
	if !almost(b.Width, 0.9) {
		t.Errorf("width = %g, want 0.9", b.Width)
	}
	if !almost(b.Height, 1.0) {
		t.Errorf("height = %g, want 1.0", b.Height)
	}
	// Denominator baseline sits 0.5 below the parent baseline, its own
	// depth 0.1 below that.
	if !almost(b.Depth, 0.6) {
		t.Errorf("depth = %g, want 0.6", b.Depth)
	}
}

func TestNegativeDimensionsClampedAndFlagged(t *testing.T) {
	a := box.NewArena()
	g := a.Glyph(nil, '?', metrics.DefaultFont, metrics.GlyphInfo{Width: -0.5, Height: 0.2}, common.ClassOrd)
	b := a.At(g)
	if b.Width != 0 {
		t.Errorf("width = %g, want clamped 0", b.Width)
	}
	if !b.Flagged {
		t.Error("clamped box should be flagged")
	}
}

func TestArenaReset(t *testing.T) {
	a := box.NewArena()
	glyph(a, 0.5, 0.4, 0.1)
	if a.Len() != 1 {
		t.Fatalf("len = %d, want 1", a.Len())
	}
	a.Reset()
	if a.Len() != 0 {
		t.Fatalf("len after reset = %d, want 0", a.Len())
	}
}

func TestWalkPositions(t *testing.T) {
	a := box.NewArena()
	g1 := glyph(a, 0.5, 0.4, 0.0)
	g2 := glyph(a, 0.3, 0.4, 0.0)
	k := a.Kern(0.1)
	h := a.HList(nil, common.ClassOrd, []box.Handle{g1, k, g2}, []float64{0, 0, -0.2})

	type visit struct {
		h   box.Handle
		pos box.Position
	}
	var visits []visit
	box.Walk(a, h, func(bh box.Handle, pos box.Position) bool {
		visits = append(visits, visit{bh, pos})
		return true
	})

	if len(visits) != 4 {
		t.Fatalf("visited %d boxes, want 4", len(visits))
	}
	if visits[0].h != h {
		t.Error("parent must be visited before children")
	}
	last := visits[3]
	if last.h != g2 || !almost(last.pos.X, 0.6) || !almost(last.pos.Y, -0.2) {
		t.Errorf("g2 at (%g, %g), want (0.6, -0.2)", last.pos.X, last.pos.Y)
	}
}

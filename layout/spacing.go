package layout

import (
	"fml/box"
	"fml/common"
	"fml/metrics"
)

// Inter-atom spacing values, in eighteenths of a quad.
const (
	spaceNone  = 0
	spaceThin  = 3
	spaceMed   = 4
	spaceThick = 5
)

// spacingNormal is the inter-atom spacing table for display and text
// styles, indexed by [left][right] atom class. spacingTight replaces it in
// script styles, where everything but the thin space next to operators
// collapses to zero.
var spacingNormal = [8][8]uint8{
	//          Ord         Op         Bin         Rel         Open       Close      Punct      Inner
	/* Ord   */ {spaceNone, spaceThin, spaceMed, spaceThick, spaceNone, spaceNone, spaceNone, spaceThin},
	/* Op    */ {spaceThin, spaceThin, spaceNone, spaceThick, spaceNone, spaceNone, spaceNone, spaceThin},
	/* Bin   */ {spaceMed, spaceMed, spaceNone, spaceNone, spaceMed, spaceNone, spaceNone, spaceMed},
	/* Rel   */ {spaceThick, spaceThick, spaceNone, spaceNone, spaceThick, spaceNone, spaceNone, spaceThick},
	/* Open  */ {spaceNone, spaceNone, spaceNone, spaceNone, spaceNone, spaceNone, spaceNone, spaceNone},
	/* Close */ {spaceNone, spaceThin, spaceMed, spaceThick, spaceNone, spaceNone, spaceNone, spaceThin},
	/* Punct */ {spaceThin, spaceThin, spaceNone, spaceThin, spaceThin, spaceThin, spaceThin, spaceThin},
	/* Inner */ {spaceThin, spaceThin, spaceMed, spaceThick, spaceThin, spaceNone, spaceThin, spaceThin},
}

var spacingTight = [8][8]uint8{
	/* Ord   */ {spaceNone, spaceThin, spaceNone, spaceNone, spaceNone, spaceNone, spaceNone, spaceNone},
	/* Op    */ {spaceThin, spaceThin, spaceNone, spaceNone, spaceNone, spaceNone, spaceNone, spaceNone},
	/* Bin   */ {},
	/* Rel   */ {},
	/* Open  */ {},
	/* Close */ {spaceNone, spaceThin, spaceNone, spaceNone, spaceNone, spaceNone, spaceNone, spaceNone},
	/* Punct */ {},
	/* Inner */ {spaceNone, spaceThin, spaceNone, spaceNone, spaceNone, spaceNone, spaceNone, spaceNone},
}

// ApplySpacing runs the inter-atom spacing pass over a sibling sequence:
// first the unary reclassification (a Bin at the start of the sequence or
// following Bin, Op, Rel, Open or Punct becomes Ord), then one table-driven
// kern insertion between each pair of adjacent atoms. Kerns are class
// Ignore and transparent to the pass, so applying it to an already spaced
// sequence changes nothing.
func ApplySpacing(a *box.Arena, items []box.Handle, style common.Style, rec metrics.Record) []box.Handle {
	if len(items) == 0 {
		return items
	}
	table := &spacingNormal
	if style.Tight() {
		table = &spacingTight
	}

	// Reclassification pre-pass, left to right, before any lookup.
	prevClass := common.ClassIgnore // sequence start
	for _, h := range items {
		b := a.At(h)
		if b.Class == common.ClassIgnore {
			continue
		}
		if b.Class == common.ClassBin {
			switch prevClass {
			case common.ClassIgnore, common.ClassBin, common.ClassOp, common.ClassRel, common.ClassOpen, common.ClassPunct:
				b.Class = common.ClassOrd
			}
		}
		prevClass = b.Class
	}

	out := make([]box.Handle, 0, len(items)*2-1)
	prev := box.Invalid
	prevAdjacent := false // prev atom is the immediately preceding element
	for _, h := range items {
		b := a.At(h)
		if b.Class == common.ClassIgnore {
			out = append(out, h)
			prevAdjacent = false
			continue
		}
		if prev != box.Invalid && prevAdjacent {
			if amount := table[a.At(prev).Class][b.Class]; amount != spaceNone {
				out = append(out, a.Kern(float64(amount)/18*rec.Quad))
			}
		}
		out = append(out, h)
		prev = h
		prevAdjacent = true
	}
	return out
}

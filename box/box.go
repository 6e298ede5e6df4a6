// Package box holds the output side of the layout engine: absolutely
// dimensioned boxes allocated from a per-invocation arena. A box tree is
// produced once per layout call, consumed read-only by renderers, and then
// discarded wholesale with its arena.
package box

import (
	"fml/common"
	"fml/metrics"
	"fml/sem"
)

// Kind discriminates box payloads.
type Kind uint8

const (
	KindGlyph Kind = iota
	KindHList
	KindVList
	KindKern
	KindRule
	KindOpaque
)

var kindNames = []string{"Glyph", "HList", "VList", "Kern", "Rule", "Opaque"}

func (k Kind) String() string {
	if int(k) >= len(kindNames) {
		return "Kind(?)"
	}
	return kindNames[k]
}

// Handle is an index into an Arena. Handles are only meaningful together
// with the arena that issued them and must not outlive it.
type Handle int32

// Invalid is the zero-value-adjacent "no box" handle.
const Invalid Handle = -1

// Box is a single node of the output tree. All dimensions are fractions of
// the em of the surrounding text size; vertical shifts of children are
// relative to the parent baseline, positive downward.
//
// For composite kinds (HList, VList) the dimensions are always derived from
// the children by the compose functions, never set independently.
type Box struct {
	Kind   Kind
	Class  common.SpacingClass
	Height float64
	Depth  float64
	Width  float64
	Italic float64
	Skew   float64 // accent attachment offset, glyphs only

	// Glyph payload.
	Rune rune
	Font metrics.FontID

	// HList/VList payload. Shifts runs parallel to Children.
	Children []Handle
	Shifts   []float64

	// Opaque payload handed through to renderers untouched (e.g. a scaled
	// delimiter or radical sign contour).
	Data any

	// Src is the semantic node this box was produced for. Kerns inserted
	// by the spacing pass and other synthesized boxes carry nil.
	Src sem.Node

	// Flagged is set when the box was produced under degraded conditions
	// (missing child, unresolved glyph, clamped dimension). The matching
	// diagnostic lives in the layout result.
	Flagged bool
}

// StretchSpec describes a scalable contour (radical sign, oversized
// delimiter) carried as an Opaque payload. Renderers draw it however suits
// their backend; the engine only fixes its metric envelope.
type StretchSpec struct {
	Rune   rune // base glyph the contour is derived from
	Extent float64
}

// Package metrics supplies font-dependent layout parameters to the engine.
// The engine only sees the Provider interface; the concrete Table below is
// one implementation backed by a YAML font description.
package metrics

import "fml/common"

// FontID identifies a font within a Provider.
type FontID string

// DefaultFont is the font used when the semantic tree does not select one.
const DefaultFont FontID = "default"

// Record is a snapshot of style-level parameters, already scaled for the
// style it was looked up for. All linear values are fractions of the em at
// the surrounding (display/text) size, i.e. a Record for script style has
// its linear fields multiplied by the script ratio.
//
// The field set follows the TeX fontdimen conventions for math symbol and
// extension fonts.
type Record struct {
	Quad          float64 // em width at this style
	XHeight       float64
	AxisHeight    float64
	RuleThickness float64

	// Fraction shifts: numerator up, denominator down.
	Num1   float64 // numerator shift, display, with rule
	Num2   float64 // numerator shift, text and below, with rule
	Num3   float64 // numerator shift, no rule
	Denom1 float64 // denominator shift, display
	Denom2 float64 // denominator shift, text and below

	// Script shifts.
	Sup1    float64 // minimum superscript raise, display
	Sup2    float64 // minimum superscript raise, text
	Sup3    float64 // minimum superscript raise, cramped
	Sub1    float64 // minimum subscript drop, no superscript
	Sub2    float64 // minimum subscript drop, with superscript
	SupDrop float64
	SubDrop float64

	// Delimiter sizing: a stretched delimiter must cover DelimFactor of
	// the content extent around the axis and may fall short of full
	// coverage by at most the style's shortfall (display allows less,
	// i.e. demands taller delimiters).
	DelimFactor float64
	DelimShort1 float64 // allowed shortfall, display
	DelimShort2 float64 // allowed shortfall, text and below

	// Small horizontal spaces.
	ScriptSpace float64
	SignBearing float64 // left bearing of the radical sign

	// Array parameters.
	BaselineSkip float64
	LineSkip     float64
	ColSep       float64

	// PlaceholderWidth is the advance of the substitute box produced for
	// glyphs the provider cannot resolve.
	PlaceholderWidth float64

	// Scale is the ratio this Record was scaled by (1.0, script ratio or
	// scriptscript ratio).
	Scale float64
}

// GlyphInfo describes one glyph at a given style, scaled like Record.
type GlyphInfo struct {
	Width  float64
	Height float64
	Depth  float64
	Italic float64
	Skew   float64 // accent attachment offset from the horizontal center
}

// Provider is the engine's only window into font metrics. Implementations
// must be deterministic and safe for concurrent reads: independent formulas
// are laid out in parallel against one shared Provider.
type Provider interface {
	// Lookup returns the style-level parameters scaled for style.
	Lookup(style common.Style) Record

	// GlyphMetrics resolves one glyph. The second result is false when the
	// provider has no usable entry; the engine then substitutes a
	// placeholder box and records a diagnostic.
	GlyphMetrics(font FontID, r rune, style common.Style) (GlyphInfo, bool)
}

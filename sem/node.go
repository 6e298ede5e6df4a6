// Package sem defines the semantic formula tree the layout engine consumes.
// The tree is produced by an external parser, is immutable and acyclic, and
// the engine only ever reads it. One semantic node may map to many boxes,
// which is why layout results are kept in a separate tree (package box).
package sem

import "fml/common"

// Node is the interface satisfied by every semantic variant. Layout
// functions dispatch on the concrete type.
type Node interface {
	// Kind returns the serialized discriminator for this variant.
	Kind() string
}

// Symbol is a single glyph with a declared atom class (an identifier, a
// binary operator sign, a relation and so on).
type Symbol struct {
	Rune  rune
	Class common.SpacingClass
	Font  string // empty selects the provider's default font
}

// Number is a run of digit glyphs treated as one Ord atom.
type Number struct {
	Text string
	Font string
}

// Operator is a large operator (sum, product, integral). Limits requests
// display-style limit placement; the engine currently positions limits as
// scripts in all styles.
type Operator struct {
	Name   string // glyph run of the operator, e.g. "∑"
	Limits bool
	Font   string
}

// Fraction stacks Num over Denom. HasRule=false yields binomial-style
// stacking without the bar.
type Fraction struct {
	Num     Node
	Denom   Node
	HasRule bool
}

// Radical is a root sign over Radicand, with an optional Index (the degree
// of the root).
type Radical struct {
	Radicand Node
	Index    Node // may be nil
}

// SubSup attaches an optional subscript and/or superscript to Base.
type SubSup struct {
	Base Node
	Sub  Node // may be nil
	Sup  Node // may be nil
}

// DelimGroup wraps Content in stretched left/right delimiters. A zero rune
// on either side means that side is open (TeX's ".").
type DelimGroup struct {
	Left    rune
	Content Node
	Right   rune
}

// Accent places the accent glyph named by Command over Base.
type Accent struct {
	Command rune // the accent glyph, e.g. '^', '~', '¯'
	Base    Node
}

// Array is a matrix-like block of cells. ColSpecs carries one alignment
// letter per column ("l", "c", "r"); missing specs default to centered.
// Small lays the cells out one style step down.
type Array struct {
	Rows     [][]Node
	ColSpecs []string
	Small    bool
	// Delimiters around the whole block; zero runes mean none.
	Left, Right rune
}

// Group is a plain horizontal sequence of nodes.
type Group struct {
	Items []Node
}

func (*Symbol) Kind() string     { return "symbol" }
func (*Number) Kind() string     { return "number" }
func (*Operator) Kind() string   { return "operator" }
func (*Fraction) Kind() string   { return "fraction" }
func (*Radical) Kind() string    { return "radical" }
func (*SubSup) Kind() string     { return "subsup" }
func (*DelimGroup) Kind() string { return "delim" }
func (*Accent) Kind() string     { return "accent" }
func (*Array) Kind() string      { return "array" }
func (*Group) Kind() string      { return "group" }

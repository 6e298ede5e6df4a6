// Style and atom classification enums are shared between the semantic tree,
// the metrics provider and the layout engine, so they live in their own
// package to keep the dependency graph flat.
package common

// Style is one of the eight TeX typesetting styles. Order matters: cramped
// variants immediately follow their base style and smaller styles compare
// higher, so the derivation rules reduce to small arithmetic on the value.
type Style int

const (
	StyleDisplay Style = iota
	StyleDisplayCramped
	StyleText
	StyleTextCramped
	StyleScript
	StyleScriptCramped
	StyleScriptScript
	StyleScriptScriptCramped
)

var styleNames = []string{
	"display", "display'", "text", "text'",
	"script", "script'", "scriptscript", "scriptscript'",
}

func (s Style) String() string {
	if s < StyleDisplay || s > StyleScriptScriptCramped {
		return "style(?)"
	}
	return styleNames[s]
}

// Cramped reports whether s is a cramped variant.
func (s Style) Cramped() bool {
	return s&1 == 1
}

// MakeCramped returns the cramped variant of s.
func (s Style) MakeCramped() Style {
	return s | 1
}

// Base returns the uncramped variant of s.
func (s Style) Base() Style {
	return s &^ 1
}

// Tight reports whether s uses the tight inter-atom spacing table.
func (s Style) Tight() bool {
	return s >= StyleScript
}

// ParseStyle maps a configuration string to a Style.
func ParseStyle(name string) (Style, bool) {
	for i, n := range styleNames {
		if n == name {
			return Style(i), true
		}
	}
	return StyleText, false
}

// SpacingClass is the TeX atom class of a box, governing the spacing pass.
type SpacingClass int

const (
	ClassOrd SpacingClass = iota
	ClassOp
	ClassBin
	ClassRel
	ClassOpen
	ClassClose
	ClassPunct
	ClassInner
	// ClassIgnore marks boxes transparent to the spacing pass (kerns and
	// other boxes inserted by the pass itself).
	ClassIgnore
)

var classNames = []string{"Ord", "Op", "Bin", "Rel", "Open", "Close", "Punct", "Inner", "Ignore"}

func (c SpacingClass) String() string {
	if c < ClassOrd || c > ClassIgnore {
		return "Class(?)"
	}
	return classNames[c]
}

// ParseSpacingClass maps a serialized class name to a SpacingClass.
func ParseSpacingClass(name string) (SpacingClass, bool) {
	for i, n := range classNames {
		if n == name {
			return SpacingClass(i), true
		}
	}
	return ClassOrd, false
}

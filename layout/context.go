package layout

import (
	"fml/common"
	"fml/metrics"
)

// Role names the position a sub-expression occupies in its parent, which
// determines the style its subtree is laid out in.
type Role int

const (
	RoleNumerator Role = iota
	RoleDenominator
	RoleSuperscript
	RoleSubscript
	RoleRadicalIndex
	RoleCramped
)

// DeriveStyle implements the fixed style derivation rules:
//
//   - Numerator: display→text, text→script, script and below→scriptscript,
//     crampedness preserved.
//   - Denominator: same target, always cramped.
//   - Superscript: display/text→script, script and below→scriptscript,
//     crampedness preserved.
//   - Subscript: same target as superscript, always cramped.
//   - RadicalIndex: always scriptscript cramped.
//   - Cramped: same style, cramped.
func DeriveStyle(s common.Style, role Role) common.Style {
	var t common.Style
	switch role {
	case RoleNumerator, RoleDenominator:
		switch {
		case s <= common.StyleDisplayCramped:
			t = common.StyleText
		case s <= common.StyleTextCramped:
			t = common.StyleScript
		default:
			t = common.StyleScriptScript
		}
		if role == RoleDenominator {
			return t.MakeCramped()
		}
	case RoleSuperscript, RoleSubscript:
		if s <= common.StyleTextCramped {
			t = common.StyleScript
		} else {
			t = common.StyleScriptScript
		}
		if role == RoleSubscript {
			return t.MakeCramped()
		}
	case RoleRadicalIndex:
		return common.StyleScriptScriptCramped
	case RoleCramped:
		return s.MakeCramped()
	default:
		return s
	}
	if s.Cramped() {
		t = t.MakeCramped()
	}
	return t
}

// Context carries the per-subtree layout state: the current style and the
// metrics snapshot resolved for it. Contexts are values; every recursion
// into a sub-construct derives its own, so sibling branches never share
// mutable state.
type Context struct {
	Style common.Style
	Rec   metrics.Record
}

// NewContext resolves the metrics snapshot for style.
func NewContext(p metrics.Provider, style common.Style) Context {
	return Context{Style: style, Rec: p.Lookup(style)}
}

// Display reports whether the context is in one of the display styles.
func (c Context) Display() bool {
	return c.Style <= common.StyleDisplayCramped
}

func (l *layouter) derive(ctx Context, role Role) Context {
	return NewContext(l.provider, DeriveStyle(ctx.Style, role))
}

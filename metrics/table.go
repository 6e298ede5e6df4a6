package metrics

import (
	_ "embed"
	"fmt"
	"os"
	"unicode"

	yaml "gopkg.in/yaml.v3"

	"fml/common"
)

//go:embed fonts.yaml
var defaultFontsYAML []byte

// tableFile is the YAML shape of a font description file.
type tableFile struct {
	ScriptRatio       float64              `yaml:"script_ratio"`
	ScriptScriptRatio float64              `yaml:"scriptscript_ratio"`
	Fonts             map[string]fontEntry `yaml:"fonts"`
}

type fontEntry struct {
	Params     paramsEntry           `yaml:"params"`
	Categories map[string]glyphEntry `yaml:"categories"`
	Glyphs     map[string]glyphEntry `yaml:"glyphs"`
}

type paramsEntry struct {
	Quad             float64 `yaml:"quad"`
	XHeight          float64 `yaml:"x_height"`
	AxisHeight       float64 `yaml:"axis_height"`
	RuleThickness    float64 `yaml:"rule_thickness"`
	Num1             float64 `yaml:"num1"`
	Num2             float64 `yaml:"num2"`
	Num3             float64 `yaml:"num3"`
	Denom1           float64 `yaml:"denom1"`
	Denom2           float64 `yaml:"denom2"`
	Sup1             float64 `yaml:"sup1"`
	Sup2             float64 `yaml:"sup2"`
	Sup3             float64 `yaml:"sup3"`
	Sub1             float64 `yaml:"sub1"`
	Sub2             float64 `yaml:"sub2"`
	SupDrop          float64 `yaml:"sup_drop"`
	SubDrop          float64 `yaml:"sub_drop"`
	DelimFactor      float64 `yaml:"delim_factor"`
	DelimShort1      float64 `yaml:"delim_short1"`
	DelimShort2      float64 `yaml:"delim_short2"`
	ScriptSpace      float64 `yaml:"script_space"`
	SignBearing      float64 `yaml:"sign_bearing"`
	BaselineSkip     float64 `yaml:"baseline_skip"`
	LineSkip         float64 `yaml:"line_skip"`
	ColSep           float64 `yaml:"col_sep"`
	PlaceholderWidth float64 `yaml:"placeholder_width"`
}

type glyphEntry struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
	Depth  float64 `yaml:"depth"`
	Italic float64 `yaml:"italic"`
	Skew   float64 `yaml:"skew"`
}

// Table is a Provider backed by a parsed font description. It is immutable
// after construction and therefore safe for concurrent use.
type Table struct {
	scriptRatio       float64
	scriptScriptRatio float64
	fonts             map[FontID]fontEntry
}

// NewDefaultTable builds a Table from the embedded font description.
func NewDefaultTable() *Table {
	t, err := NewTable(defaultFontsYAML)
	if err != nil {
		// The embedded table is part of the build, a parse failure here is
		// a programming error.
		panic(fmt.Sprintf("embedded font table: %v", err))
	}
	return t
}

// NewTable parses a YAML font description.
func NewTable(data []byte) (*Table, error) {
	var tf tableFile
	if err := yaml.Unmarshal(data, &tf); err != nil {
		return nil, fmt.Errorf("unable to parse font table: %w", err)
	}
	if len(tf.Fonts) == 0 {
		return nil, fmt.Errorf("font table has no fonts")
	}
	if tf.ScriptRatio <= 0 || tf.ScriptRatio > 1 {
		return nil, fmt.Errorf("bad script_ratio %g", tf.ScriptRatio)
	}
	if tf.ScriptScriptRatio <= 0 || tf.ScriptScriptRatio > tf.ScriptRatio {
		return nil, fmt.Errorf("bad scriptscript_ratio %g", tf.ScriptScriptRatio)
	}
	t := &Table{
		scriptRatio:       tf.ScriptRatio,
		scriptScriptRatio: tf.ScriptScriptRatio,
		fonts:             make(map[FontID]fontEntry, len(tf.Fonts)),
	}
	for name, f := range tf.Fonts {
		if f.Params.Quad <= 0 {
			return nil, fmt.Errorf("font %q: quad must be positive", name)
		}
		if f.Params.RuleThickness <= 0 {
			return nil, fmt.Errorf("font %q: rule_thickness must be positive", name)
		}
		t.fonts[FontID(name)] = f
	}
	if _, ok := t.fonts[DefaultFont]; !ok {
		return nil, fmt.Errorf("font table has no %q font", DefaultFont)
	}
	return t, nil
}

// LoadTable reads a font description file, falling back to the embedded
// table when path is empty.
func LoadTable(path string) (*Table, error) {
	if len(path) == 0 {
		return NewDefaultTable(), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("unable to read font table: %w", err)
	}
	return NewTable(data)
}

// Ratio returns the linear scale factor for style relative to display size.
func (t *Table) Ratio(style common.Style) float64 {
	switch {
	case style >= common.StyleScriptScript:
		return t.scriptScriptRatio
	case style >= common.StyleScript:
		return t.scriptRatio
	default:
		return 1.0
	}
}

// Lookup implements Provider.
func (t *Table) Lookup(style common.Style) Record {
	p := t.fonts[DefaultFont].Params
	r := t.Ratio(style)
	return Record{
		Quad:          p.Quad * r,
		XHeight:       p.XHeight * r,
		AxisHeight:    p.AxisHeight * r,
		RuleThickness: p.RuleThickness * r,

		Num1:   p.Num1 * r,
		Num2:   p.Num2 * r,
		Num3:   p.Num3 * r,
		Denom1: p.Denom1 * r,
		Denom2: p.Denom2 * r,

		Sup1:    p.Sup1 * r,
		Sup2:    p.Sup2 * r,
		Sup3:    p.Sup3 * r,
		Sub1:    p.Sub1 * r,
		Sub2:    p.Sub2 * r,
		SupDrop: p.SupDrop * r,
		SubDrop: p.SubDrop * r,

		DelimFactor: p.DelimFactor,
		DelimShort1: p.DelimShort1 * r,
		DelimShort2: p.DelimShort2 * r,

		ScriptSpace: p.ScriptSpace * r,
		SignBearing: p.SignBearing * r,

		BaselineSkip: p.BaselineSkip * r,
		LineSkip:     p.LineSkip * r,
		ColSep:       p.ColSep * r,

		PlaceholderWidth: p.PlaceholderWidth * r,

		Scale: r,
	}
}

// GlyphMetrics implements Provider. Unknown fonts resolve nothing; unknown
// runes fall back to the font's category defaults.
func (t *Table) GlyphMetrics(font FontID, r rune, style common.Style) (GlyphInfo, bool) {
	f, ok := t.fonts[font]
	if !ok {
		return GlyphInfo{}, false
	}
	g, ok := f.Glyphs[string(r)]
	if !ok {
		g, ok = f.Categories[categoryOf(r)]
		if !ok {
			return GlyphInfo{}, false
		}
	}
	s := t.Ratio(style)
	return GlyphInfo{
		Width:  g.Width * s,
		Height: g.Height * s,
		Depth:  g.Depth * s,
		Italic: g.Italic * s,
		Skew:   g.Skew * s,
	}, true
}

// categoryOf buckets a rune into one of the category keys a font entry may
// carry defaults for.
func categoryOf(r rune) string {
	switch {
	case unicode.IsLower(r):
		return "lowercase"
	case unicode.IsUpper(r):
		return "uppercase"
	case unicode.IsDigit(r):
		return "digit"
	case unicode.IsPunct(r):
		return "punctuation"
	case unicode.IsSymbol(r):
		return "operator"
	default:
		return "other"
	}
}

package svgmath_test

import (
	"strconv"
	"strings"
	"testing"

	"go.uber.org/zap"

	"fml/common"
	"fml/layout"
	"fml/metrics"
	"fml/render/svgmath"
	"fml/sem"
	"fml/utils/images"
)

func laidOut(t *testing.T, n sem.Node) *layout.Result {
	t.Helper()
	res := layout.Layout(n, common.StyleDisplay, metrics.NewDefaultTable(), zap.NewNop())
	if !res.Arena.Valid(res.Root) {
		t.Fatal("layout produced no root box")
	}
	return res
}

func quadratic() sem.Node {
	return &sem.Group{Items: []sem.Node{
		&sem.Symbol{Rune: 'x', Class: common.ClassOrd},
		&sem.Symbol{Rune: '=', Class: common.ClassRel},
		&sem.Fraction{
			Num: &sem.SubSup{
				Base: &sem.Symbol{Rune: 'b', Class: common.ClassOrd},
				Sup:  &sem.Number{Text: "2"},
			},
			Denom:   &sem.Number{Text: "2"},
			HasRule: true,
		},
	}}
}

func TestRenderQuadratic(t *testing.T) {
	res := laidOut(t, quadratic())

	doc := svgmath.Render(res.Arena, res.Root, svgmath.Options{FontSize: 40})

	svg := doc.SelectElement("svg")
	if svg == nil {
		t.Fatal("no svg root element")
	}
	if svg.SelectAttrValue("xmlns", "") != "http://www.w3.org/2000/svg" {
		t.Error("missing SVG namespace")
	}
	if svg.SelectAttrValue("viewBox", "") == "" {
		t.Error("missing viewBox")
	}

	var texts []string
	for _, el := range svg.SelectElements("text") {
		texts = append(texts, el.Text())
	}
	joined := strings.Join(texts, "")
	for _, want := range []string{"x", "=", "b", "2"} {
		if !strings.Contains(joined, want) {
			t.Errorf("rendered text %q misses %q", joined, want)
		}
	}

	// The fraction bar must come out as a filled rect.
	if len(svg.SelectElements("rect")) == 0 {
		t.Error("no rect for the fraction bar")
	}
}

func TestRenderBaselinePlacement(t *testing.T) {
	res := laidOut(t, &sem.Symbol{Rune: 'x', Class: common.ClassOrd})

	doc := svgmath.Render(res.Arena, res.Root, svgmath.Options{FontSize: 100, Margin: 0.5})

	svg := doc.SelectElement("svg")
	texts := svg.SelectElements("text")
	if len(texts) != 1 {
		t.Fatalf("expected one text element, got %d", len(texts))
	}
	// With a half-em margin the baseline sits at (0.5 + height) * 100.
	b := res.Arena.At(res.Root)
	wantY := (0.5 + b.Height) * 100
	gotY := texts[0].SelectAttrValue("y", "")
	if !almost(gotY, wantY) {
		t.Errorf("baseline y = %s, want %.3f", gotY, wantY)
	}
	gotX := texts[0].SelectAttrValue("x", "")
	if !almost(gotX, 50) {
		t.Errorf("x = %s, want 50", gotX)
	}
}

func TestRenderStretchedDelimiter(t *testing.T) {
	res := laidOut(t, &sem.DelimGroup{
		Left:  '(',
		Right: ')',
		Content: &sem.Fraction{
			Num:     &sem.Number{Text: "1"},
			Denom:   &sem.Number{Text: "2"},
			HasRule: true,
		},
	})

	doc := svgmath.Render(res.Arena, res.Root, svgmath.Options{})

	svg := doc.SelectElement("svg")
	var stretched int
	for _, el := range svg.SelectElements("text") {
		if el.SelectAttrValue("transform", "") != "" {
			stretched++
		}
	}
	if stretched != 2 {
		t.Errorf("expected 2 scaled delimiter glyphs, got %d", stretched)
	}

	// The contours paint as glyphs, never as hollow placeholder rects.
	for _, el := range svg.SelectElements("rect") {
		if el.SelectAttrValue("fill", "") == "none" {
			t.Error("stretched delimiter fell back to a placeholder rect")
		}
	}
}

func TestRenderRadicalContour(t *testing.T) {
	res := laidOut(t, &sem.Radical{Radicand: &sem.Symbol{Rune: 'x', Class: common.ClassOrd}})

	doc := svgmath.Render(res.Arena, res.Root, svgmath.Options{})

	svg := doc.SelectElement("svg")
	found := false
	for _, el := range svg.SelectElements("text") {
		if el.Text() == "√" {
			found = true
			if el.SelectAttrValue("transform", "") == "" {
				t.Error("radical sign rendered without vertical scaling")
			}
		}
	}
	if !found {
		t.Fatal("no radical sign glyph in SVG output")
	}
	for _, el := range svg.SelectElements("rect") {
		if el.SelectAttrValue("fill", "") == "none" {
			t.Error("radical sign fell back to a placeholder rect")
		}
	}
}

func TestRenderMarksDegraded(t *testing.T) {
	res := laidOut(t, &sem.Fraction{Num: &sem.Number{Text: "1"}, HasRule: true})
	if res.Diags.Empty() {
		t.Fatal("expected a diagnostic for the missing denominator")
	}

	doc := svgmath.Render(res.Arena, res.Root, svgmath.Options{MarkDegraded: true})

	found := false
	for _, el := range doc.SelectElement("svg").SelectElements("rect") {
		if el.SelectAttrValue("stroke-dasharray", "") != "" {
			found = true
		}
	}
	if !found {
		t.Error("no degradation marker emitted")
	}
}

func TestRenderEmptyArena(t *testing.T) {
	res := laidOut(t, &sem.Symbol{Rune: 'x', Class: common.ClassOrd})
	doc := svgmath.Render(res.Arena, -1, svgmath.Options{})
	svg := doc.SelectElement("svg")
	if svg == nil {
		t.Fatal("no svg root element")
	}
	if svg.SelectAttrValue("width", "") != "0" {
		t.Errorf("width = %s, want 0", svg.SelectAttrValue("width", ""))
	}
}

func TestRenderedSVGRasterizes(t *testing.T) {
	res := laidOut(t, quadratic())

	data, err := svgmath.RenderBytes(res.Arena, res.Root, svgmath.Options{FontSize: 32})
	if err != nil {
		t.Fatalf("serialize: %v", err)
	}

	img, err := images.RasterizeSVGToImage(data, 0, 0)
	if err != nil {
		t.Fatalf("rasterize: %v", err)
	}
	if img.Bounds().Dx() <= 0 || img.Bounds().Dy() <= 0 {
		t.Fatalf("degenerate raster bounds: %v", img.Bounds())
	}
}

func almost(got string, want float64) bool {
	v, err := strconv.ParseFloat(got, 64)
	if err != nil {
		return false
	}
	d := v - want
	return d < 0.01 && d > -0.01
}

// Package svgmath renders a laid-out box tree to SVG. It is a thin paint
// pass over box.Walk: every visual decision was already made by the layout
// engine, this package only translates box geometry into SVG primitives.
package svgmath

import (
	"bytes"
	"fmt"
	"math"
	"strconv"

	"github.com/beevik/etree"

	"fml/box"
)

// Options controls the produced document. The zero value is usable.
type Options struct {
	// FontSize is the pixel size of one em of the base style. Defaults to 32.
	FontSize float64
	// Margin is padding around the formula, in ems. Defaults to 0.25.
	Margin float64
	// FontFamily is emitted on every text element when non-empty.
	FontFamily string
	// Color is the fill for glyphs and rules. Defaults to black.
	Color string
	// MarkDegraded outlines flagged boxes so layout degradations are visible
	// in the output.
	MarkDegraded bool
}

func (o *Options) fill() {
	if o.FontSize <= 0 {
		o.FontSize = 32
	}
	if o.Margin < 0 {
		o.Margin = 0
	} else if o.Margin == 0 {
		o.Margin = 0.25
	}
	if o.Color == "" {
		o.Color = "#000000"
	}
}

// Stretched contour glyphs are assumed to span one em with the conventional
// three-to-one ascent split; the vertical scale is derived from that.
const (
	contourExtent = 1.0
	contourAscent = 0.75
)

// Render paints the tree below root into a standalone SVG document.
func Render(a *box.Arena, root box.Handle, opts Options) *etree.Document {
	opts.fill()

	doc := etree.NewDocument()
	doc.CreateProcInst("xml", `version="1.0" encoding="UTF-8"`)

	svg := doc.CreateElement("svg")
	svg.CreateAttr("xmlns", "http://www.w3.org/2000/svg")

	if !a.Valid(root) {
		svg.CreateAttr("width", "0")
		svg.CreateAttr("height", "0")
		return doc
	}

	rb := a.At(root)
	px := opts.FontSize
	width := (rb.Width + 2*opts.Margin) * px
	height := (rb.Height + rb.Depth + 2*opts.Margin) * px
	originX := opts.Margin * px
	baseline := (opts.Margin + rb.Height) * px

	svg.CreateAttr("width", num(width))
	svg.CreateAttr("height", num(height))
	svg.CreateAttr("viewBox", fmt.Sprintf("0 0 %s %s", num(width), num(height)))

	r := renderer{svg: svg, opts: opts, a: a, originX: originX, baseline: baseline}
	box.Walk(a, root, r.visit)
	return doc
}

// RenderBytes is Render followed by serialization.
func RenderBytes(a *box.Arena, root box.Handle, opts Options) ([]byte, error) {
	var buf bytes.Buffer
	if _, err := Render(a, root, opts).WriteTo(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

type renderer struct {
	svg      *etree.Element
	opts     Options
	a        *box.Arena
	originX  float64
	baseline float64
}

func (r *renderer) visit(h box.Handle, pos box.Position) bool {
	b := r.a.At(h)
	x := r.originX + pos.X*r.opts.FontSize
	y := r.baseline + pos.Y*r.opts.FontSize

	switch b.Kind {
	case box.KindGlyph:
		r.text(x, y, string(b.Rune), nil)
	case box.KindRule:
		rect := r.svg.CreateElement("rect")
		rect.CreateAttr("x", num(x))
		rect.CreateAttr("y", num(y-b.Height*r.opts.FontSize))
		rect.CreateAttr("width", num(b.Width*r.opts.FontSize))
		rect.CreateAttr("height", num(b.Height*r.opts.FontSize))
		rect.CreateAttr("fill", r.opts.Color)
	case box.KindOpaque:
		r.opaque(b, x, y)
	}

	if r.opts.MarkDegraded && b.Flagged {
		r.degraded(b, x, y)
	}
	return true
}

// opaque paints a pass-through payload. Stretch contours become a vertically
// scaled glyph covering the box envelope; anything else is drawn as a hollow
// placeholder so the envelope stays visible.
func (r *renderer) opaque(b *box.Box, x, y float64) {
	sp, ok := b.Data.(box.StretchSpec)
	if !ok {
		r.placeholder(b, x, y)
		return
	}

	scale := (b.Height + b.Depth) / contourExtent
	if scale <= 0 {
		scale = 1
	}
	// Scaling is anchored at the box top so the contour fills the envelope
	// exactly regardless of how the layout split height against depth.
	top := y - b.Height*r.opts.FontSize
	tf := fmt.Sprintf("translate(%s %s) scale(1 %s)", num(x), num(top), num(scale))
	r.text(0, contourAscent*r.opts.FontSize, string(sp.Rune), map[string]string{"transform": tf})
}

func (r *renderer) placeholder(b *box.Box, x, y float64) {
	rect := r.svg.CreateElement("rect")
	rect.CreateAttr("x", num(x))
	rect.CreateAttr("y", num(y-b.Height*r.opts.FontSize))
	rect.CreateAttr("width", num(b.Width*r.opts.FontSize))
	rect.CreateAttr("height", num((b.Height+b.Depth)*r.opts.FontSize))
	rect.CreateAttr("fill", "none")
	rect.CreateAttr("stroke", r.opts.Color)
	rect.CreateAttr("stroke-width", num(0.02*r.opts.FontSize))
}

func (r *renderer) degraded(b *box.Box, x, y float64) {
	w := b.Width
	hd := b.Height + b.Depth
	if w <= 0 {
		w = 0.1
	}
	if hd <= 0 {
		hd = 0.1
	}
	rect := r.svg.CreateElement("rect")
	rect.CreateAttr("x", num(x))
	rect.CreateAttr("y", num(y-b.Height*r.opts.FontSize))
	rect.CreateAttr("width", num(w*r.opts.FontSize))
	rect.CreateAttr("height", num(hd*r.opts.FontSize))
	rect.CreateAttr("fill", "none")
	rect.CreateAttr("stroke", "#cc0000")
	rect.CreateAttr("stroke-dasharray", "2 2")
}

func (r *renderer) text(x, y float64, s string, extra map[string]string) {
	t := r.svg.CreateElement("text")
	t.CreateAttr("x", num(x))
	t.CreateAttr("y", num(y))
	t.CreateAttr("font-size", num(r.opts.FontSize))
	if r.opts.FontFamily != "" {
		t.CreateAttr("font-family", r.opts.FontFamily)
	}
	t.CreateAttr("fill", r.opts.Color)
	for k, v := range extra {
		t.CreateAttr(k, v)
	}
	t.SetText(s)
}

func num(v float64) string {
	return strconv.FormatFloat(math.Round(v*1000)/1000, 'f', -1, 64)
}

package sem

import (
	"fml/utils/debug"
)

type treeWriter struct {
	*debug.TreeWriter
}

// Dump returns a readable tree of a semantic node for manual inspection
// during debugging.
func Dump(n Node) string {
	if n == nil {
		return "<nil node>"
	}
	tw := treeWriter{debug.NewTreeWriter()}
	tw.node(0, n)
	return tw.String()
}

func (tw treeWriter) node(depth int, n Node) {
	switch v := n.(type) {
	case nil:
		tw.Line(depth, "<missing>")
	case *Symbol:
		tw.Line(depth, "Symbol %q class=%s font=%q", v.Rune, v.Class, v.Font)
	case *Number:
		tw.Line(depth, "Number %q font=%q", v.Text, v.Font)
	case *Operator:
		tw.Line(depth, "Operator %q limits=%t font=%q", v.Name, v.Limits, v.Font)
	case *Fraction:
		tw.Line(depth, "Fraction rule=%t", v.HasRule)
		tw.node(depth+1, v.Num)
		tw.node(depth+1, v.Denom)
	case *Radical:
		tw.Line(depth, "Radical")
		tw.node(depth+1, v.Radicand)
		if v.Index != nil {
			tw.Line(depth+1, "Index")
			tw.node(depth+2, v.Index)
		}
	case *SubSup:
		tw.Line(depth, "SubSup")
		tw.node(depth+1, v.Base)
		if v.Sub != nil {
			tw.Line(depth+1, "Sub")
			tw.node(depth+2, v.Sub)
		}
		if v.Sup != nil {
			tw.Line(depth+1, "Sup")
			tw.node(depth+2, v.Sup)
		}
	case *DelimGroup:
		tw.Line(depth, "DelimGroup left=%q right=%q", v.Left, v.Right)
		tw.node(depth+1, v.Content)
	case *Accent:
		tw.Line(depth, "Accent %q", v.Command)
		tw.node(depth+1, v.Base)
	case *Array:
		tw.Line(depth, "Array rows=%d cols=%v small=%t left=%q right=%q", len(v.Rows), v.ColSpecs, v.Small, v.Left, v.Right)
		for i, row := range v.Rows {
			tw.Line(depth+1, "Row[%d]", i)
			for _, cell := range row {
				tw.node(depth+2, cell)
			}
		}
	case *Group:
		tw.Line(depth, "Group items=%d", len(v.Items))
		for _, item := range v.Items {
			tw.node(depth+1, item)
		}
	default:
		tw.Line(depth, "Unknown(%T)", n)
	}
}

package layout

import (
	"fml/box"
	"fml/common"
	"fml/sem"
)

// array lays out a matrix-like block: cells at the current style (one step
// down in small mode), columns padded to the widest cell and separated by
// the column separation, rows stacked at the baseline skip with a line skip
// floor, and the whole block centered on the math axis. Optional outer
// delimiters reuse the delimited-group sizing.
func (l *layouter) array(v *sem.Array, ctx Context) box.Handle {
	if len(v.Rows) == 0 {
		// Valid degenerate case, not an error.
		return l.arena.Empty(v, common.ClassInner, false)
	}

	cellCtx := ctx
	if v.Small {
		cellCtx = l.derive(ctx, RoleNumerator)
	}

	cols := 0
	cells := make([][]box.Handle, len(v.Rows))
	for i, row := range v.Rows {
		cells[i] = make([]box.Handle, len(row))
		for j, cell := range row {
			cells[i][j] = l.required(v, cell, "cell", cellCtx)
		}
		cols = max(cols, len(row))
	}

	colWidth := make([]float64, cols)
	rowHeight := make([]float64, len(cells))
	rowDepth := make([]float64, len(cells))
	for i, row := range cells {
		for j, cell := range row {
			cb := l.arena.At(cell)
			colWidth[j] = max(colWidth[j], cb.Width)
			rowHeight[i] = max(rowHeight[i], cb.Height)
			rowDepth[i] = max(rowDepth[i], cb.Depth)
		}
	}

	rec := ctx.Rec
	rows := make([]box.Handle, len(cells))
	for i, row := range cells {
		var children []box.Handle
		for j, cell := range row {
			if j > 0 {
				children = append(children, l.arena.Kern(rec.ColSep))
			}
			children = append(children, l.aligned(v, cell, colWidth[j], colSpec(v.ColSpecs, j)))
		}
		rows[i] = l.arena.HList(v, common.ClassOrd, children, nil)
	}

	// Stack rows: consecutive baselines sit a baseline skip apart unless
	// the boxes would come closer than the line skip.
	shifts := make([]float64, len(rows))
	for i := 1; i < len(rows); i++ {
		shifts[i] = shifts[i-1] + max(rec.BaselineSkip, rowDepth[i-1]+rowHeight[i]+rec.LineSkip)
	}

	// Center the block on the axis.
	naturalHeight := rowHeight[0]
	total := naturalHeight + shifts[len(rows)-1] + rowDepth[len(rows)-1]
	offset := naturalHeight - (total/2 + rec.AxisHeight)
	for i := range shifts {
		shifts[i] += offset
	}

	block := l.checkFlag(l.arena.VList(v, common.ClassInner, rows, shifts), v)
	if v.Left == 0 && v.Right == 0 {
		return block
	}

	bb := l.arena.At(block)
	around := 2 * max(bb.Height-rec.AxisHeight, bb.Depth+rec.AxisHeight)
	short := rec.DelimShort2
	if ctx.Display() {
		short = rec.DelimShort1
	}
	required := max(around*rec.DelimFactor, around-short)

	var children []box.Handle
	if v.Left != 0 {
		children = append(children, l.delimiter(v, v.Left, required, common.ClassOpen, ctx))
	}
	children = append(children, block)
	if v.Right != 0 {
		children = append(children, l.delimiter(v, v.Right, required, common.ClassClose, ctx))
	}
	return l.arena.HList(v, common.ClassInner, children, nil)
}

// aligned pads a cell to the column width per its column alignment.
func (l *layouter) aligned(src sem.Node, cell box.Handle, width float64, spec string) box.Handle {
	pad := width - l.arena.At(cell).Width
	if pad <= 0 {
		return cell
	}
	switch spec {
	case "l":
		return l.arena.HList(src, l.arena.At(cell).Class, []box.Handle{cell, l.arena.Kern(pad)}, nil)
	case "r":
		return l.arena.HList(src, l.arena.At(cell).Class, []box.Handle{l.arena.Kern(pad), cell}, nil)
	default: // centered
		return l.centered(src, cell, width)
	}
}

func colSpec(specs []string, j int) string {
	if j < len(specs) {
		return specs[j]
	}
	return "c"
}

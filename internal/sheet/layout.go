package sheet

// MinExpandWidth is the smallest budget, in cells, worth handing to the
// expanding columns. Below it trailing columns are dropped one at a time.
const MinExpandWidth = 8

// LayoutColumns turns the table's sizing rules into concrete widths for a
// table of the given width. Each width includes the column gap. The result
// may be shorter than t.Columns when narrow tables drop trailing columns;
// it is empty when not even the first column fits.
//
// Fixed columns must have been resolved with ResolveWidths; unresolved ones
// count as zero wide.
func LayoutColumns(t *Table, width int) []int {
	return layoutColumns(t, width, 0)
}

func layoutColumns(t *Table, width, skip int) []int {
	if skip >= len(t.Columns) {
		return []int{}
	}
	cols := t.Columns[:len(t.Columns)-skip]

	fixed := 0
	for _, col := range cols {
		fixed += col.resolved + t.ColGap
	}

	rest := width - fixed
	if rest < MinExpandWidth {
		return layoutColumns(t, width, skip+1)
	}

	weightSum := 0
	for _, col := range cols {
		if col.Sizing.IsExpand() {
			weightSum += col.Sizing.Weight
		}
	}

	widths := make([]int, len(cols))
	for i, col := range cols {
		if col.Sizing.IsExpand() {
			share := 0
			if weightSum > 0 {
				share = rest * col.Sizing.Weight / weightSum
			}
			widths[i] = share + t.ColGap
		} else {
			widths[i] = col.resolved + t.ColGap
		}
	}
	return widths
}

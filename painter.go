package main

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/truncate"

	"github.com/bekirdag/sheetfm/internal/sheet"
)

const (
	scrollBarWidth = 1
	ellipsis       = "…"
)

// cellMeasurer measures text in terminal cells; one text line is one row.
type cellMeasurer struct{}

func (cellMeasurer) TextWidth(s string) int { return lipgloss.Width(s) }

func (cellMeasurer) LineHeight() int { return 1 }

// tablePainter draws pages into terminal cells and reports the geometry of
// every draw back as render feedback.
type tablePainter struct {
	styles  styles
	measure sheet.Measurer
}

func newTablePainter(s styles) tablePainter {
	return tablePainter{styles: s, measure: cellMeasurer{}}
}

// drawPage renders page into a w x h block whose top-left corner sits at
// (x, y) on screen. focused enables the cursor row, active marks the side
// that receives keyboard controls.
func (p tablePainter) drawPage(page sheet.Page, x, y, w, h int, focused, active bool) (string, sheet.RenderFeedback) {
	if w < 0 {
		w = 0
	}
	if h < 0 {
		h = 0
	}
	table := page.Table()
	table.ResolveWidths(p.measure)

	tableWidth := maxInt(w-scrollBarWidth, 0)
	widths := sheet.LayoutColumns(table, tableWidth)

	rowHeight := maxInt(p.measure.LineHeight()+table.RowGap, 1)
	rowCount := maxInt((h-2*rowHeight)/rowHeight, 0)
	offset := page.ScrollOffset()

	charWidth := p.measure.TextWidth("m")
	if charWidth <= 0 {
		charWidth = 1
	}

	lines := make([]string, 0, h)
	pad := func(n int) {
		for i := 0; i < n; i++ {
			lines = append(lines, strings.Repeat(" ", w))
		}
	}

	titleStyle := p.styles.paneTitle
	if active {
		titleStyle = p.styles.paneTitleActive
	}
	lines = append(lines, fitLine(titleStyle, table.Title, w))
	pad(rowHeight - 1)

	header := make([]string, 0, len(widths))
	for i, width := range widths {
		header = append(header, renderCell(p.styles.header, table.Columns[i].Head, width, table.ColGap))
	}
	lines = append(lines, padLine(strings.Join(header, ""), w))
	pad(rowHeight - 1)

	bar := scrollBar(page.Len(), rowCount, offset, rowCount,
		p.styles.scrollTrack.Render("│"), p.styles.scrollThumb.Render("┃"))
	total := table.RowCount()
	for r := 0; r < rowCount; r++ {
		idx := offset + r
		var row strings.Builder
		if idx < total {
			for i, width := range widths {
				col := table.Columns[i]
				cell := sheet.Cell{}
				if idx < len(col.Rows) {
					cell = col.Rows[idx]
				}
				style := p.rowStyle(page, idx, i, cell.Style, focused, active)
				row.WriteString(renderCell(style, cell.Text, width, table.ColGap))
			}
		}
		line := padLine(row.String(), tableWidth)
		if w > tableWidth {
			line += bar[r]
		}
		lines = append(lines, line)
		pad(rowHeight - 1)
	}
	if len(lines) > h {
		lines = lines[:h]
	}
	pad(h - len(lines))

	rowsStart := sheet.Point{X: x, Y: y + 2*rowHeight}
	fb := sheet.RenderFeedback{
		VisibleRows:  rowCount,
		RowHeight:    rowHeight,
		RowOffset:    offset,
		PanePos:      sheet.Point{X: x, Y: y},
		PaneSize:     sheet.Size{W: w, H: h},
		RowsStart:    rowsStart,
		RowsEnd:      sheet.Point{X: x + tableWidth, Y: rowsStart.Y + rowCount*rowHeight},
		WidthInChars: tableWidth / charWidth,
	}
	return strings.Join(lines, "\n"), fb
}

func (p tablePainter) rowStyle(page sheet.Page, idx, col int, kind sheet.Style, focused, active bool) lipgloss.Style {
	style := p.styles.cell.Copy()
	switch kind {
	case sheet.StyleDir:
		style = style.Foreground(palette.fgDir)
	case sheet.StyleSpecial:
		style = style.Foreground(palette.fgLink)
	}

	if idx%2 == col%2 {
		if idx%2 == 0 {
			style = style.Background(palette.bg)
		} else {
			style = style.Background(palette.bg3)
		}
	} else {
		style = style.Background(palette.bg2)
	}

	marked := true
	switch {
	case focused && page.IsCursor(idx):
		style = style.Background(palette.cursorBg).Foreground(palette.cursorFg)
	case page.IsSelected(idx):
		style = style.Background(palette.selectBg).Foreground(palette.selectFg)
	case page.IsHighlighted(idx):
		style = style.Background(palette.highlightBg).Foreground(palette.highlightFg)
	default:
		marked = false
	}
	if marked && !active {
		style = style.Faint(true)
	}
	return style
}

// renderCell draws text into a cell of width cells, the last gap cells of
// which stay empty.
func renderCell(style lipgloss.Style, text string, width, gap int) string {
	if width <= 0 {
		return ""
	}
	inner := maxInt(width-gap, 0)
	text = truncate.StringWithTail(text, uint(inner), ellipsis)
	return style.Copy().Width(width).MaxWidth(width).Render(text)
}

func fitLine(style lipgloss.Style, text string, width int) string {
	if width <= 0 {
		return ""
	}
	text = truncate.StringWithTail(text, uint(width), ellipsis)
	return style.Copy().Width(width).MaxWidth(width).Render(text)
}

func padLine(line string, width int) string {
	if gap := width - lipgloss.Width(line); gap > 0 {
		return line + strings.Repeat(" ", gap)
	}
	return line
}

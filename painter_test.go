package main

import (
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bekirdag/sheetfm/internal/sheet"
)

func paintedSheet(n int) *sheet.DirSheet {
	stamp := time.Date(2023, 7, 8, 9, 10, 11, 0, time.UTC)
	records := make([]sheet.PathRecord, n)
	for i := range records {
		records[i] = sheet.PathRecord{
			Path:    "/srv/" + strings.Repeat(string(rune('a'+i%26)), 20),
			Size:    int64(i * 100),
			ModTime: stamp,
		}
	}
	return sheet.NewDirSheet("/srv", records)
}

func TestDrawPageFeedback(t *testing.T) {
	p := newTablePainter(newStyles())
	page := paintedSheet(30)

	view, fb := p.drawPage(page, 10, 3, 41, 12, true, true)

	lines := strings.Split(view, "\n")
	require.Len(t, lines, 12)
	for i, line := range lines {
		assert.Equal(t, 41, lipgloss.Width(line), "line %d", i)
	}
	assert.Contains(t, lines[0], "/srv")
	assert.Contains(t, lines[1], "name")
	assert.Contains(t, lines[1], "time")
	assert.Contains(t, lines[1], "size")
	assert.Contains(t, lines[2], "aaaaaaaa…")

	assert.Equal(t, sheet.RenderFeedback{
		VisibleRows:  10,
		RowHeight:    1,
		RowOffset:    0,
		PanePos:      sheet.Point{X: 10, Y: 3},
		PaneSize:     sheet.Size{W: 41, H: 12},
		RowsStart:    sheet.Point{X: 10, Y: 5},
		RowsEnd:      sheet.Point{X: 50, Y: 15},
		WidthInChars: 40,
	}, fb)
}

func TestDrawPageFollowsScrollOffset(t *testing.T) {
	p := newTablePainter(newStyles())
	page := paintedSheet(30)
	_, fb := p.drawPage(page, 0, 0, 41, 12, true, true)
	page.SetRenderFeedback(fb)

	page.Control(sheet.Scroll(2))
	view, fb := p.drawPage(page, 0, 0, 41, 12, true, true)
	assert.Equal(t, 10, fb.RowOffset)
	lines := strings.Split(view, "\n")
	assert.Contains(t, lines[2], "kkkk")
}

func TestDrawPageNarrowDropsColumns(t *testing.T) {
	p := newTablePainter(newStyles())
	view, _ := p.drawPage(paintedSheet(3), 0, 0, 20, 6, true, false)

	lines := strings.Split(view, "\n")
	require.Len(t, lines, 6)
	assert.Contains(t, lines[1], "name")
	assert.NotContains(t, lines[1], "time")
	assert.NotContains(t, lines[1], "size")
}

func TestDrawPageTooShort(t *testing.T) {
	p := newTablePainter(newStyles())
	view, fb := p.drawPage(paintedSheet(3), 0, 0, 30, 1, true, true)

	assert.Len(t, strings.Split(view, "\n"), 1)
	assert.Equal(t, 0, fb.VisibleRows)
	assert.Equal(t, fb.RowsStart.Y, fb.RowsEnd.Y)
}

func TestDrawPageLog(t *testing.T) {
	p := newTablePainter(newStyles())
	log := sheet.NewLogSheet(10)
	log.Append("first")
	log.Append("second")

	_, fb := p.drawPage(log, 0, 20, 30, 6, true, false)
	assert.Equal(t, 29, fb.WidthInChars)
	log.SetRenderFeedback(fb)
	require.Equal(t, []string{"first", "second"}, log.Rows())

	view, fb := p.drawPage(log, 0, 20, 30, 6, true, false)
	lines := strings.Split(view, "\n")
	require.Len(t, lines, 6)
	assert.Contains(t, lines[0], "Log")
	assert.Equal(t, 1, fb.RowOffset)
	assert.Contains(t, lines[2], "second")
	assert.NotContains(t, view, "first")
}

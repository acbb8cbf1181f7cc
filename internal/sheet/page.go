// Package sheet holds the navigation and layout core shared by every pane:
// the cursor/scroll controller, the render feedback it consumes, the column
// width negotiation and the pages that present content as tables.
package sheet

// Page is a scrollable, cursor-navigable table of content.
type Page interface {
	Len() int
	// Table returns the drawable snapshot, rebuilding it only when the
	// content changed since the last call.
	Table() *Table
	ScrollOffset() int
	Control(ctrl Control)
	Contains(x, y int) bool

	IsCursor(idx int) bool
	IsSelected(idx int) bool
	IsHighlighted(idx int) bool

	NeedsRepage() bool
	NeedsRedraw() bool

	SortByColumn(col int)
	SetRenderFeedback(fb RenderFeedback)
}

var (
	_ Page = (*DirSheet)(nil)
	_ Page = (*LogSheet)(nil)
)

package sheet

// ScrollStep is both the number of context rows kept between the cursor and
// the edge of the visible window and the number of rows one wheel tick
// scrolls.
const ScrollStep = 5

// Cursor holds the selection index and scroll offset of one page.
type Cursor struct {
	Index  int
	Offset int

	// BottomAnchored makes the window trail the cursor from below, for
	// append-only content such as the log.
	BottomAnchored bool
}

func (c *Cursor) IsCursor(idx int) bool {
	return c.Index == idx
}

// Apply runs one control against a page of rowCount rows, interpreting
// pointer positions with the feedback of the last render pass.
func (c *Cursor) Apply(ctrl Control, rowCount int, fb RenderFeedback) {
	switch ctrl.Kind {
	case ControlCursorDown:
		c.Index++
	case ControlCursorUp:
		if c.Index > 0 {
			c.Index--
		}
	case ControlClick:
		// Clicks move the cursor but leave the window where it is until the
		// next keyboard control.
		if !fb.InRowArea(ctrl.X, ctrl.Y) || fb.RowHeight <= 0 {
			return
		}
		row := (ctrl.Y - fb.RowsStart.Y) / fb.RowHeight
		c.Index = fb.RowOffset + row
		c.clampIndex(rowCount)
		return
	case ControlScroll:
		c.scroll(ctrl.Ticks, rowCount, fb.VisibleRows)
		return
	}

	c.clampIndex(rowCount)
	c.follow(rowCount, fb.VisibleRows)
}

func (c *Cursor) clampIndex(rowCount int) {
	if c.Index < 0 {
		c.Index = 0
	}
	if c.Index >= rowCount {
		if rowCount > 0 {
			c.Index = rowCount - 1
		} else {
			c.Index = 0
		}
	}
}

func (c *Cursor) scroll(ticks, rowCount, visible int) {
	amount := ticks * ScrollStep
	if amount < 0 && c.Offset < -amount {
		c.Offset = 0
	} else {
		c.Offset += amount
	}

	if rowCount <= visible {
		c.Offset = 0
	} else if c.Offset > rowCount-visible {
		c.Offset = rowCount - visible
	}
}

func (c *Cursor) follow(rowCount, visible int) {
	switch {
	case c.BottomAnchored:
		if c.Index > visible {
			c.Offset = c.Index - visible
		} else {
			c.Offset = c.Index
		}
	case visible <= 2*ScrollStep:
		if c.Index > 0 {
			c.Offset = c.Index - 1
		} else {
			c.Offset = c.Index
		}
	default:
		if c.Index < c.Offset+ScrollStep {
			diff := c.Offset + ScrollStep - c.Index
			if c.Offset > diff {
				c.Offset -= diff
			} else {
				c.Offset = 0
			}
		} else if c.Index+ScrollStep+1 > c.Offset+visible {
			c.Offset += c.Index + ScrollStep + 1 - (c.Offset + visible)
		}

		if c.Offset+visible > rowCount {
			if rowCount < visible {
				c.Offset = 0
			} else {
				c.Offset = rowCount - visible
			}
		}
	}
}

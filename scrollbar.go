package main

import "math"

// scrollBar returns one glyph per line of a vertical scroll bar of the given
// height for a window of visible rows starting at offset out of total.
func scrollBar(total, visible, offset, height int, track, thumb string) []string {
	lines := make([]string, maxInt(height, 0))
	for i := range lines {
		lines[i] = track
	}
	if height <= 0 || total <= 0 {
		return lines
	}
	if visible <= 0 {
		visible = height
	}
	if total <= visible {
		return lines
	}

	thumbHeight := int(math.Round(float64(visible) / float64(total) * float64(height)))
	if thumbHeight < 1 {
		thumbHeight = 1
	}
	maxOffset := total - visible
	if offset < 0 {
		offset = 0
	}
	if offset > maxOffset {
		offset = maxOffset
	}
	ratio := float64(offset) / float64(maxOffset)
	thumbStart := int(math.Round(ratio * float64(height-thumbHeight)))
	if thumbStart < 0 {
		thumbStart = 0
	}
	if thumbStart+thumbHeight > height {
		thumbStart = height - thumbHeight
	}
	for i := thumbStart; i < thumbStart+thumbHeight; i++ {
		lines[i] = thumb
	}
	return lines
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}

package main

import "github.com/charmbracelet/lipgloss"

type colors struct {
	fg, fgMuted, fgDir, fgLink lipgloss.AdaptiveColor
	bg, bg2, bg3               lipgloss.AdaptiveColor
	cursorBg, cursorFg         lipgloss.AdaptiveColor
	selectBg, selectFg         lipgloss.AdaptiveColor
	highlightBg, highlightFg   lipgloss.AdaptiveColor
	accent, divider            lipgloss.AdaptiveColor
}

var palette = colors{
	fg:          lipgloss.AdaptiveColor{Light: "#1f1f1f", Dark: "#d8d8d8"},
	fgMuted:     lipgloss.AdaptiveColor{Light: "#6b6b6b", Dark: "#8a8a8a"},
	fgDir:       lipgloss.AdaptiveColor{Light: "#1d4fa8", Dark: "#7aa7ff"},
	fgLink:      lipgloss.AdaptiveColor{Light: "#8a2a9c", Dark: "#d98cf0"},
	bg:          lipgloss.AdaptiveColor{Light: "#ffffff", Dark: "#1a1a1a"},
	bg2:         lipgloss.AdaptiveColor{Light: "#f2f2f2", Dark: "#222222"},
	bg3:         lipgloss.AdaptiveColor{Light: "#e6e6e6", Dark: "#2a2a2a"},
	cursorBg:    lipgloss.AdaptiveColor{Light: "#2f6fdb", Dark: "#3d6fd1"},
	cursorFg:    lipgloss.AdaptiveColor{Light: "#ffffff", Dark: "#ffffff"},
	selectBg:    lipgloss.AdaptiveColor{Light: "#d99a1e", Dark: "#b07a10"},
	selectFg:    lipgloss.AdaptiveColor{Light: "#000000", Dark: "#000000"},
	highlightBg: lipgloss.AdaptiveColor{Light: "#c5e8c5", Dark: "#2f5a2f"},
	highlightFg: lipgloss.AdaptiveColor{Light: "#0d3d0d", Dark: "#d6f5d6"},
	accent:      lipgloss.AdaptiveColor{Light: "#2f6fdb", Dark: "#7aa7ff"},
	divider:     lipgloss.AdaptiveColor{Light: "#9a9a9a", Dark: "#555555"},
}

type styles struct {
	paneTitle, paneTitleActive lipgloss.Style
	header                     lipgloss.Style
	cell                       lipgloss.Style
	divider                    lipgloss.Style
	scrollTrack, scrollThumb   lipgloss.Style
	statusBar, statusSeg       lipgloss.Style
	prompt, toast              lipgloss.Style
	overlay, overlayTitle      lipgloss.Style
	empty                      lipgloss.Style
}

func newStyles() styles {
	base := lipgloss.NewStyle()

	return styles{
		paneTitle:       base.Copy().Foreground(palette.fgMuted),
		paneTitleActive: base.Copy().Bold(true).Foreground(palette.accent),
		header:          base.Copy().Bold(true).Underline(true).Foreground(palette.fg),
		cell:            base.Copy().Foreground(palette.fg),
		divider:         base.Copy().Foreground(palette.divider),
		scrollTrack:     base.Copy().Foreground(palette.divider),
		scrollThumb:     base.Copy().Foreground(palette.accent),
		statusBar:       base,
		statusSeg:       base.Copy().MarginRight(1),
		prompt:          base.Copy().Bold(true),
		toast:           base.Copy().Foreground(palette.accent),
		overlay:         base.Copy().Border(lipgloss.RoundedBorder()).BorderForeground(palette.accent),
		overlayTitle:    base.Copy().Bold(true),
		empty:           base.Copy().Faint(true),
	}
}

package main

import (
	"fmt"
	"strings"
	"sync"

	"github.com/charmbracelet/glamour"
)

type markdownTheme string

const (
	markdownThemeAuto  markdownTheme = "auto"
	markdownThemeDark  markdownTheme = "dark"
	markdownThemeLight markdownTheme = "light"
)

func markdownThemeFromString(value string) markdownTheme {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "dark":
		return markdownThemeDark
	case "light":
		return markdownThemeLight
	default:
		return markdownThemeAuto
	}
}

func (t markdownTheme) String() string {
	switch t {
	case markdownThemeDark:
		return "dark"
	case markdownThemeLight:
		return "light"
	default:
		return "auto"
	}
}

// markdownRenderer keeps one glamour renderer per theme and wrap width and
// rebuilds it when the preview is resized.
type markdownRenderer struct {
	mu       sync.Mutex
	theme    markdownTheme
	width    int
	renderer *glamour.TermRenderer
}

func newMarkdownRenderer(theme markdownTheme) *markdownRenderer {
	return &markdownRenderer{theme: theme}
}

func (r *markdownRenderer) Render(content string, width int) (string, error) {
	renderer, err := r.rendererFor(width)
	if err != nil {
		return content, err
	}
	out, err := renderer.Render(content)
	if err != nil {
		return content, fmt.Errorf("render markdown: %w", err)
	}
	return out, nil
}

func (r *markdownRenderer) rendererFor(width int) (*glamour.TermRenderer, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if width < 0 {
		width = 0
	}
	if r.renderer != nil && r.width == width {
		return r.renderer, nil
	}

	options := []glamour.TermRendererOption{glamour.WithWordWrap(width)}
	switch r.theme {
	case markdownThemeLight:
		options = append(options, glamour.WithStandardStyle("light"))
	case markdownThemeDark:
		options = append(options, glamour.WithStandardStyle("dark"))
	default:
		options = append(options, glamour.WithAutoStyle())
	}
	renderer, err := glamour.NewTermRenderer(options...)
	if err != nil {
		return nil, fmt.Errorf("markdown renderer: %w", err)
	}
	r.renderer = renderer
	r.width = width
	return renderer, nil
}

package main

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"
)

const (
	maxPreviewBytes = 65536
	maxPreviewLines = 400
)

// previewPane shows one file on top of the directory panes.
type previewPane struct {
	open  bool
	path  string
	raw   string
	isMD  bool
	view  viewport.Model
	width int
}

func isMarkdownPath(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".md", ".markdown", ".mdown":
		return true
	}
	return false
}

// readFileLimited returns at most maxBytes and maxLines of the file, and
// whether the content looks binary.
func readFileLimited(path string, maxBytes, maxLines int) (string, bool, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", false, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	buf := make([]byte, maxBytes)
	n, err := io.ReadFull(f, buf)
	if err != nil && !errors.Is(err, io.EOF) && !errors.Is(err, io.ErrUnexpectedEOF) {
		return "", false, fmt.Errorf("read %s: %w", path, err)
	}
	data := buf[:n]
	if bytes.IndexByte(data, 0) >= 0 {
		return "", true, nil
	}
	return limitLines(string(data), maxLines), false, nil
}

func limitLines(text string, maxLines int) string {
	if maxLines <= 0 {
		return text
	}
	lines := strings.Split(text, "\n")
	if len(lines) <= maxLines {
		return text
	}
	lines = append(lines[:maxLines], "… (truncated)")
	return strings.Join(lines, "\n")
}

func (p *previewPane) Open(path string, width, height int, md *markdownRenderer) error {
	info, err := os.Stat(path)
	if err != nil {
		return fmt.Errorf("preview %s: %w", path, err)
	}
	text, binary, err := readFileLimited(path, maxPreviewBytes, maxPreviewLines)
	if err != nil {
		return err
	}
	if binary {
		text = fmt.Sprintf("binary file, %s", humanize.IBytes(uint64(info.Size())))
	}

	p.open = true
	p.path = path
	p.raw = text
	p.isMD = !binary && isMarkdownPath(path)
	p.width = -1
	p.view = viewport.New(0, 0)
	return p.Resize(width, height, md)
}

// Resize fits the preview into a w x h box, re-rendering markdown when the
// wrap width changed.
func (p *previewPane) Resize(w, h int, md *markdownRenderer) error {
	if !p.open {
		return nil
	}
	innerW := maxInt(w-2, 1)
	innerH := maxInt(h-3, 1)
	p.view.Width = innerW
	p.view.Height = innerH
	if p.width == innerW {
		return nil
	}
	p.width = innerW

	content := p.raw
	var err error
	if p.isMD && md != nil {
		content, err = md.Render(p.raw, innerW)
	}
	p.view.SetContent(content)
	return err
}

func (p *previewPane) Close() {
	*p = previewPane{}
}

func (p *previewPane) Update(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	p.view, cmd = p.view.Update(msg)
	return cmd
}

func (p *previewPane) View(s styles, w, h int) string {
	title := fitLine(s.overlayTitle, p.path, maxInt(w-2, 0))
	body := lipgloss.JoinVertical(lipgloss.Left, title, p.view.View())
	return s.overlay.Copy().Width(maxInt(w-2, 0)).Height(maxInt(h-2, 0)).Render(body)
}

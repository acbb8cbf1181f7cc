package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTree(t *testing.T, dir string, files ...string) {
	t.Helper()
	for _, name := range files {
		path := filepath.Join(dir, name)
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
		require.NoError(t, os.WriteFile(path, []byte("content of "+name+"\n"), 0o644))
	}
}

// newTestModel opens left and right, sizes the screen to 80x24 and renders
// once so every page holds feedback.
func newTestModel(t *testing.T, left, right string) *model {
	t.Helper()
	m := newModel(&uiConfig{StartLeft: left, StartRight: right, LogLimit: 100, OpenCommand: "true"}, nil)
	m.Update(tea.WindowSizeMsg{Width: 80, Height: 24})
	m.View()
	return m
}

func press(m *model, msgs ...tea.KeyMsg) {
	for _, msg := range msgs {
		m.Update(msg)
		m.View()
	}
}

func fixtureDirs(t *testing.T) (string, string) {
	t.Helper()
	left, right := t.TempDir(), t.TempDir()
	writeTree(t, left, "a.txt", "b.md", filepath.Join("sub", "inner.txt"))
	writeTree(t, right, "x.txt", "y.txt", "z.txt")
	return left, right
}

func TestModelStartsOnBothDirectories(t *testing.T) {
	left, right := fixtureDirs(t)
	m := newTestModel(t, left, right)

	require.NotNil(t, m.page(sideLeft))
	require.NotNil(t, m.page(sideRight))
	assert.Equal(t, left, m.page(sideLeft).Base())
	assert.Equal(t, right, m.page(sideRight).Base())
	assert.Equal(t, sideLeft, m.active)

	rec, ok := m.page(sideLeft).Current()
	require.True(t, ok)
	assert.Equal(t, "sub", rec.Name())

	view := m.View()
	assert.Len(t, strings.Split(view, "\n"), 24)
}

func TestModelAccessAndBack(t *testing.T) {
	left, right := fixtureDirs(t)
	m := newTestModel(t, left, right)

	press(m, runeKey("l"))
	require.Len(t, m.sides[sideLeft], 2)
	assert.Equal(t, filepath.Join(left, "sub"), m.activePage().Base())

	press(m, runeKey("h"))
	require.Len(t, m.sides[sideLeft], 1)
	assert.Equal(t, left, m.activePage().Base())

	press(m, runeKey("h"))
	require.Len(t, m.sides[sideLeft], 1)
	assert.Equal(t, filepath.Dir(left), m.activePage().Base())
	rec, ok := m.activePage().Current()
	require.True(t, ok)
	assert.Equal(t, left, rec.Path)
}

func TestModelAccessFileOpensPreview(t *testing.T) {
	left, right := fixtureDirs(t)
	m := newTestModel(t, left, right)

	press(m, runeKey("j"), runeKey("l"))
	require.True(t, m.preview.open)
	assert.Equal(t, filepath.Join(left, "a.txt"), m.preview.path)
	assert.Contains(t, m.View(), "content of a.txt")
	require.Len(t, m.sides[sideLeft], 1)

	press(m, tea.KeyMsg{Type: tea.KeyEsc})
	assert.False(t, m.preview.open)
}

func TestModelToggleSideRoutesKeys(t *testing.T) {
	left, right := fixtureDirs(t)
	m := newTestModel(t, left, right)

	press(m, tea.KeyMsg{Type: tea.KeyTab}, runeKey("j"), runeKey("j"))
	assert.Equal(t, sideRight, m.active)
	assert.Equal(t, 2, m.page(sideRight).CursorIndex())
	assert.Equal(t, 0, m.page(sideLeft).CursorIndex())
}

func TestModelClickActivatesSide(t *testing.T) {
	left, right := fixtureDirs(t)
	m := newTestModel(t, left, right)

	// The right pane starts at x=40; its rows start two lines below the top.
	m.Update(tea.MouseMsg{X: 45, Y: 3, Type: tea.MouseLeft})
	assert.Equal(t, sideRight, m.active)
	rec, ok := m.page(sideRight).Current()
	require.True(t, ok)
	assert.Equal(t, "y.txt", rec.Name())
	assert.Equal(t, 0, m.page(sideLeft).CursorIndex())

	m.Update(tea.MouseMsg{X: 5, Y: 1, Type: tea.MouseLeft})
	assert.Equal(t, sideLeft, m.active, "header clicks still pick the side")
	assert.Equal(t, 0, m.page(sideLeft).CursorIndex())
}

func TestModelSelectAndFind(t *testing.T) {
	left, right := fixtureDirs(t)
	m := newTestModel(t, left, right)

	press(m, tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}})
	assert.Equal(t, []string{filepath.Join(left, "sub")}, m.activePage().Selected())
	assert.Equal(t, 1, m.activePage().CursorIndex())

	press(m, runeKey("/"))
	require.True(t, m.inputActive)
	press(m, runeKey("m"), runeKey("d"), tea.KeyMsg{Type: tea.KeyEnter})
	assert.False(t, m.inputActive)
	assert.True(t, m.activePage().IsHighlighted(2))
	assert.False(t, m.activePage().IsHighlighted(1))
	assert.Equal(t, "1 match", m.toastMessage)
}

func TestModelSortByTime(t *testing.T) {
	left, right := fixtureDirs(t)
	base := time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC)
	require.NoError(t, os.Chtimes(filepath.Join(left, "b.md"), base, base))
	require.NoError(t, os.Chtimes(filepath.Join(left, "sub"), base.Add(time.Hour), base.Add(time.Hour)))
	require.NoError(t, os.Chtimes(filepath.Join(left, "a.txt"), base.Add(2*time.Hour), base.Add(2*time.Hour)))
	m := newTestModel(t, left, right)

	press(m, runeKey("2"))
	rows := m.activePage().Table().Columns[0].Rows
	require.Len(t, rows, 3)
	assert.Equal(t, "b.md", rows[0].Text)
	assert.Equal(t, "a.txt", rows[2].Text)
}

func TestModelMissingStartDirectory(t *testing.T) {
	left, _ := fixtureDirs(t)
	missing := filepath.Join(t.TempDir(), "missing")
	m := newTestModel(t, left, missing)

	page := m.page(sideRight)
	require.NotNil(t, page)
	assert.Equal(t, missing, page.Base())
	assert.Equal(t, 0, page.Len())
	require.NotEmpty(t, m.log.Messages())
	assert.Contains(t, m.log.Messages()[0], "read dir")
}

func TestModelResizeRefreshesPages(t *testing.T) {
	left, right := fixtureDirs(t)
	m := newTestModel(t, left, right)

	m.Update(tea.WindowSizeMsg{Width: 100, Height: 30})
	m.View()

	page := m.page(sideLeft)
	assert.True(t, page.Contains(48, 21))
	assert.False(t, page.Contains(49, 21))
	assert.False(t, page.Contains(48, 22))
	assert.True(t, m.page(sideRight).Contains(50, 0))
	assert.True(t, m.log.Contains(0, 22))
	assert.True(t, m.log.Contains(99, 28))
	assert.False(t, m.log.Contains(0, 29))
}

func TestModelQuit(t *testing.T) {
	left, right := fixtureDirs(t)
	m := newTestModel(t, left, right)

	_, cmd := m.Update(runeKey("q"))
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
}

package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"

	"github.com/bekirdag/sheetfm/internal/sheet"
)

type side int

const (
	sideLeft side = iota
	sideRight
)

func (s side) String() string {
	if s == sideRight {
		return "right"
	}
	return "left"
}

func (s side) other() side {
	if s == sideLeft {
		return sideRight
	}
	return sideLeft
}

const dividerWidth = 1

type model struct {
	width  int
	height int

	sides  [2][]*sheet.DirSheet
	active side
	log    *sheet.LogSheet

	cfg     *uiConfig
	keys    *keyResolver
	help    help.Model
	styles  styles
	painter tablePainter

	showHelp    bool
	input       textinput.Model
	inputActive bool

	preview previewPane
	md      *markdownRenderer

	events *eventLogger
	jobs   *jobManager

	toastMessage string
	toastExpires time.Time
}

// newModel opens both start directories. A start directory that cannot be
// read leaves an empty page on its side and a line in the log.
func newModel(cfg *uiConfig, events *eventLogger) *model {
	if cfg == nil {
		cfg = &uiConfig{}
	}
	cfg.applyDefaults()

	keys, keyErr := newKeyResolver(cfg.Bindings)

	input := textinput.New()
	input.Prompt = "/"
	input.Placeholder = "name fragment"
	input.CharLimit = 256

	s := newStyles()
	m := &model{
		cfg:     cfg,
		keys:    keys,
		help:    help.New(),
		styles:  s,
		painter: newTablePainter(s),
		input:   input,
		md:      newMarkdownRenderer(markdownThemeFromString(cfg.Theme)),
		log:     sheet.NewLogSheet(cfg.LogLimit),
		events:  events,
		jobs:    newJobManager(),
	}
	if keyErr != nil {
		m.appendLog(fmt.Sprintf("key bindings: %v", keyErr))
	}

	for _, start := range []struct {
		side side
		path string
	}{{sideLeft, cfg.StartLeft}, {sideRight, cfg.StartRight}} {
		path := absPath(start.path)
		if !m.pushDir(start.side, path) {
			m.sides[start.side] = []*sheet.DirSheet{sheet.NewDirSheet(path, nil)}
		}
	}
	return m
}

func absPath(path string) string {
	if abs, err := filepath.Abs(path); err == nil {
		return abs
	}
	return filepath.Clean(path)
}

func (m *model) Init() tea.Cmd {
	return nil
}

func (m *model) page(s side) *sheet.DirSheet {
	stack := m.sides[s]
	if len(stack) == 0 {
		return nil
	}
	return stack[len(stack)-1]
}

func (m *model) activePage() *sheet.DirSheet {
	return m.page(m.active)
}

// pages lists every visible page, in draw order.
func (m *model) pages() []sheet.Page {
	var out []sheet.Page
	for _, s := range []side{sideLeft, sideRight} {
		if p := m.page(s); p != nil {
			out = append(out, p)
		}
	}
	return append(out, m.log)
}

func (m *model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		for _, p := range m.pages() {
			p.Control(sheet.Refresh)
		}
		if m.preview.open {
			topH, _, _ := m.layout()
			m.reportErr("preview", m.preview.Resize(m.width, topH, m.md))
		}
		return m, nil

	case tea.KeyMsg:
		return m, m.handleKey(msg)

	case tea.MouseMsg:
		return m, m.handleMouse(msg)

	case jobMsg:
		return m, m.handleJobMessage(msg)
	}

	if m.inputActive {
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m *model) handleKey(msg tea.KeyMsg) tea.Cmd {
	if m.preview.open {
		switch msg.String() {
		case "esc", "q", "h", "left", "backspace":
			m.preview.Close()
			return nil
		}
		return m.preview.Update(msg)
	}

	if m.inputActive {
		switch msg.String() {
		case "esc":
			m.closeInput()
			if p := m.activePage(); p != nil {
				p.Highlight("")
			}
			return nil
		case "enter":
			pattern := m.input.Value()
			m.closeInput()
			if p := m.activePage(); p != nil {
				n := p.Highlight(pattern)
				if strings.TrimSpace(pattern) != "" {
					m.setToast(fmt.Sprintf("%s %s", humanize.Comma(int64(n)), plural(n, "match", "matches")), 3*time.Second)
				}
			}
			return nil
		}
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return cmd
	}

	cmd, ok := m.keys.Resolve(msg)
	if !ok {
		return nil
	}
	return m.handleCommand(cmd)
}

func (m *model) handleCommand(cmd command) tea.Cmd {
	page := m.activePage()

	switch cmd.action {
	case actionControl:
		if page == nil {
			return nil
		}
		page.Control(cmd.ctrl)
		switch cmd.ctrl.Kind {
		case sheet.ControlAccess:
			m.access()
		case sheet.ControlBack:
			m.back()
		}

	case actionSort:
		if page == nil {
			return nil
		}
		page.SortByColumn(cmd.column)
		page.Control(sheet.Refresh)
		m.events.Emit(appEvent{Event: "sort", Side: m.active.String(), Path: page.Base(),
			Extra: map[string]string{"command": cmd.name}})

	case actionToggleSide:
		m.active = m.active.other()

	case actionToggleSelect:
		if page == nil {
			return nil
		}
		page.ToggleSelect(page.CursorIndex())
		page.Control(sheet.CursorDown)

	case actionFind:
		m.openInput()
		return textinput.Blink

	case actionYank:
		m.yank()

	case actionOpen:
		if page == nil {
			return nil
		}
		rec, ok := page.Current()
		if !ok {
			return nil
		}
		m.appendLog(fmt.Sprintf("[open] %s %s", m.cfg.OpenCommand, rec.Path))
		return m.jobs.Enqueue(openerJob(m.cfg.OpenCommand, rec.Path))

	case actionHelp:
		m.showHelp = !m.showHelp
		m.help.ShowAll = m.showHelp
		for _, p := range m.pages() {
			p.Control(sheet.Refresh)
		}

	case actionQuit:
		m.events.Emit(appEvent{Event: "quit"})
		return tea.Quit
	}
	return nil
}

// handleMouse turns a button press or wheel tick into a control for every
// page under the pointer. A click also makes the clicked side active.
func (m *model) handleMouse(msg tea.MouseMsg) tea.Cmd {
	if m.preview.open {
		return m.preview.Update(msg)
	}

	var ctrl sheet.Control
	switch msg.Type {
	case tea.MouseLeft:
		ctrl = sheet.Click(msg.X, msg.Y)
	case tea.MouseWheelDown:
		ctrl = sheet.Scroll(1)
	case tea.MouseWheelUp:
		ctrl = sheet.Scroll(-1)
	default:
		return nil
	}

	for _, s := range []side{sideLeft, sideRight} {
		p := m.page(s)
		if p == nil || !p.Contains(msg.X, msg.Y) {
			continue
		}
		p.Control(ctrl)
		if ctrl.Kind == sheet.ControlClick {
			m.active = s
		}
	}
	if m.log.Contains(msg.X, msg.Y) {
		m.log.Control(ctrl)
	}
	return nil
}

// access acts on the cursor row of the active page: directories open as a
// new page on the same side, files open in the preview.
func (m *model) access() {
	page := m.activePage()
	rec, ok := page.Current()
	if !ok {
		return
	}
	if rec.Type == sheet.RecordDir || (rec.Type == sheet.RecordSymlink && isDir(rec.Path)) {
		m.pushDir(m.active, rec.Path)
		return
	}

	topH, _, _ := m.layout()
	if err := m.preview.Open(rec.Path, m.width, topH, m.md); err != nil {
		m.reportErr("preview", err)
		if !m.preview.open {
			return
		}
	}
	m.events.Emit(appEvent{Event: "preview", Side: m.active.String(), Path: rec.Path})
}

func isDir(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}

// back leaves the current page. With a single page on the side, the parent
// directory replaces it and the cursor lands on the directory just left.
func (m *model) back() {
	stack := m.sides[m.active]
	if len(stack) > 1 {
		m.sides[m.active] = stack[:len(stack)-1]
		m.activePage().Control(sheet.Refresh)
		return
	}
	page := m.activePage()
	if page == nil {
		return
	}
	base := page.Base()
	parent := filepath.Dir(base)
	if parent == base {
		return
	}
	next, err := m.readDir(m.active, parent)
	if err != nil {
		return
	}
	next.Reveal(base)
	m.sides[m.active] = []*sheet.DirSheet{next}
}

func (m *model) pushDir(s side, path string) bool {
	next, err := m.readDir(s, path)
	if err != nil {
		return false
	}
	m.sides[s] = append(m.sides[s], next)
	return true
}

func (m *model) readDir(s side, path string) (*sheet.DirSheet, error) {
	next, err := sheet.ReadDir(path)
	if err != nil {
		m.reportErr("read_dir", err)
		m.events.Emit(appEvent{Event: "read_failed", Side: s.String(), Path: path, Error: err.Error()})
		return nil, err
	}
	next.SortByColumn(0)
	m.events.Emit(appEvent{Event: "dir_opened", Side: s.String(), Path: path,
		Extra: map[string]string{"entries": fmt.Sprint(next.Len())}})
	return next, nil
}

func (m *model) yank() {
	page := m.activePage()
	if page == nil {
		return
	}
	paths := page.Selected()
	if len(paths) == 0 {
		rec, ok := page.Current()
		if !ok {
			m.setToast("Nothing to copy", 3*time.Second)
			return
		}
		paths = []string{rec.Path}
	}
	if err := clipboard.WriteAll(strings.Join(paths, "\n")); err != nil {
		m.reportErr("clipboard", fmt.Errorf("copy path: %w", err))
		return
	}
	m.setToast(fmt.Sprintf("Copied %d %s", len(paths), plural(len(paths), "path", "paths")), 3*time.Second)
}

func (m *model) handleJobMessage(msg jobMsg) tea.Cmd {
	switch message := msg.(type) {
	case jobStartedMsg:
		m.appendLog(fmt.Sprintf("[job] %s started", message.Title))
		m.events.Emit(appEvent{Event: "job_started", Extra: map[string]string{"title": message.Title}})
	case jobLogMsg:
		m.appendLog(message.Line)
	case jobFinishedMsg:
		event := appEvent{Event: "job_finished", Extra: map[string]string{"title": message.Title}}
		if message.Err != nil {
			event.Error = message.Err.Error()
			m.appendLog(fmt.Sprintf("[job] %s failed: %v", message.Title, message.Err))
			m.setToast(message.Title+" failed", 5*time.Second)
		} else {
			m.appendLog(fmt.Sprintf("[job] %s finished", message.Title))
		}
		m.events.Emit(event)
	}
	return m.jobs.Handle(msg)
}

func (m *model) appendLog(line string) {
	m.log.Append(line)
}

// reportErr puts a failure in the log pane and the status line.
func (m *model) reportErr(what string, err error) {
	if err == nil {
		return
	}
	m.appendLog(fmt.Sprintf("[%s] %v", what, err))
	m.setToast(err.Error(), 5*time.Second)
}

func (m *model) setToast(msg string, duration time.Duration) {
	trimmed := strings.TrimSpace(msg)
	if trimmed == "" {
		m.toastMessage = ""
		m.toastExpires = time.Time{}
		return
	}
	if duration <= 0 {
		duration = 5 * time.Second
	}
	m.toastMessage = trimmed
	m.toastExpires = time.Now().Add(duration)
}

func (m *model) openInput() {
	m.inputActive = true
	m.input.SetValue("")
	m.input.Focus()
}

func (m *model) closeInput() {
	m.inputActive = false
	m.input.Blur()
	m.input.SetValue("")
}

func plural(n int, one, many string) string {
	if n == 1 {
		return one
	}
	return many
}

// layout splits the screen height into the pane area, the log and the
// bottom lines (help and status).
func (m *model) layout() (topH, logH, bottomH int) {
	bottomH = 1
	if m.showHelp {
		bottomH += lipgloss.Height(m.help.View(m.keys))
	}
	logH = m.height / 4
	topH = maxInt(m.height-logH-bottomH, 0)
	return topH, logH, bottomH
}

func (m *model) View() string {
	if m.width <= 0 || m.height <= 0 {
		return ""
	}
	topH, logH, _ := m.layout()

	var top string
	if m.preview.open {
		top = m.preview.View(m.styles, m.width, topH)
	} else {
		leftW := maxInt((m.width-dividerWidth)/2, 0)
		rightW := maxInt(m.width-dividerWidth-leftW, 0)
		left := m.drawSide(sideLeft, 0, leftW, topH)
		right := m.drawSide(sideRight, leftW+dividerWidth, rightW, topH)
		divider := m.styles.divider.Render(strings.TrimSuffix(strings.Repeat("│\n", topH), "\n"))
		top = lipgloss.JoinHorizontal(lipgloss.Top, left, divider, right)
	}

	logView, fb := m.painter.drawPage(m.log, 0, topH, m.width, logH, true, false)
	m.log.SetRenderFeedback(fb)

	parts := []string{top, logView}
	if m.showHelp {
		parts = append(parts, m.help.View(m.keys))
	}
	parts = append(parts, m.renderStatus())
	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

func (m *model) drawSide(s side, x, w, h int) string {
	page := m.page(s)
	if page == nil {
		return strings.TrimSuffix(strings.Repeat(strings.Repeat(" ", w)+"\n", h), "\n")
	}
	view, fb := m.painter.drawPage(page, x, 0, w, h, true, s == m.active)
	page.SetRenderFeedback(fb)
	return view
}

func (m *model) renderStatus() string {
	if m.inputActive {
		return m.styles.prompt.Width(m.width).MaxWidth(m.width).MaxHeight(1).Render(m.input.View())
	}

	var segments []string
	if page := m.activePage(); page != nil {
		segments = append(segments, m.styles.statusSeg.Render(m.active.String()+" "+page.Base()))
		if n := len(page.Selected()); n > 0 {
			segments = append(segments, m.styles.statusSeg.Render(fmt.Sprintf("%d selected", n)))
		}
	}
	if m.jobs.Running() {
		label := "job running"
		if pending := m.jobs.Pending(); pending > 0 {
			label = fmt.Sprintf("%s, %d queued", label, pending)
		}
		segments = append(segments, m.styles.statusSeg.Render(label))
	}
	if m.toastMessage != "" {
		if time.Now().After(m.toastExpires) {
			m.toastMessage = ""
		} else {
			segments = append(segments, m.styles.toast.Render(m.toastMessage))
		}
	}
	if !m.showHelp {
		segments = append(segments, m.styles.empty.Render("? help"))
	}
	content := strings.Join(segments, m.styles.divider.Render("│"))
	return m.styles.statusBar.Width(m.width).MaxWidth(m.width).MaxHeight(1).Render(content)
}

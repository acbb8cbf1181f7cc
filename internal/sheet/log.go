package sheet

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

const DefaultMaxMessages = 1000

// LogSheet keeps a bounded list of messages and presents them wrapped to the
// width of the pane. The cursor is bottom anchored so the newest message
// stays in view while the cursor sits on the tail.
type LogSheet struct {
	maxMessages int
	messages    []string
	rows        []string
	lastWidth   int

	cursor   Cursor
	feedback RenderFeedback
	table    *Table

	msgsDirty  bool
	stateDirty bool
}

func NewLogSheet(maxMessages int) *LogSheet {
	if maxMessages <= 0 {
		maxMessages = DefaultMaxMessages
	}
	return &LogSheet{
		maxMessages: maxMessages,
		cursor:      Cursor{BottomAnchored: true},
		msgsDirty:   true,
		stateDirty:  true,
	}
}

func (s *LogSheet) Len() int { return len(s.rows) }

func (s *LogSheet) Messages() []string { return s.messages }

// Rows returns the wrapped display rows.
func (s *LogSheet) Rows() []string { return s.rows }

func (s *LogSheet) ScrollOffset() int { return s.cursor.Offset }

func (s *LogSheet) CursorIndex() int { return s.cursor.Index }

func (s *LogSheet) IsCursor(idx int) bool { return s.cursor.IsCursor(idx) }

func (s *LogSheet) IsSelected(int) bool { return false }

func (s *LogSheet) IsHighlighted(int) bool { return false }

func (s *LogSheet) NeedsRepage() bool { return s.msgsDirty }

func (s *LogSheet) NeedsRedraw() bool { return s.stateDirty }

func (s *LogSheet) SortByColumn(int) {}

func (s *LogSheet) Contains(x, y int) bool { return s.feedback.Contains(x, y) }

func (s *LogSheet) Control(ctrl Control) {
	s.cursor.Apply(ctrl, s.Len(), s.feedback)
	s.stateDirty = true
}

// Append records msg, dropping the oldest messages once the cap is reached.
// A cursor resting on the last row follows the new tail.
func (s *LogSheet) Append(msg string) {
	atTail := s.cursor.Index >= len(s.rows)-1

	s.messages = append(s.messages, msg)
	if over := len(s.messages) - s.maxMessages; over > 0 {
		s.messages = append([]string(nil), s.messages[over:]...)
		s.rewrap()
	} else {
		s.rows = wrapRows(s.rows, msg, s.feedback.WidthInChars)
		s.lastWidth = s.feedback.WidthInChars
	}
	s.msgsDirty = true

	if atTail {
		s.cursor.Index = len(s.rows) - 1
	}
	s.Control(Refresh)
}

func (s *LogSheet) SetRenderFeedback(fb RenderFeedback) {
	s.feedback = fb
	s.stateDirty = false
	if s.lastWidth != fb.WidthInChars {
		atTail := s.cursor.Index >= len(s.rows)-1
		s.rewrap()
		if atTail {
			s.cursor.Index = len(s.rows) - 1
		}
		s.cursor.Apply(Refresh, s.Len(), s.feedback)
	}
}

func (s *LogSheet) rewrap() {
	s.rows = s.rows[:0]
	for _, msg := range s.messages {
		s.rows = wrapRows(s.rows, msg, s.feedback.WidthInChars)
	}
	s.msgsDirty = true
	s.lastWidth = s.feedback.WidthInChars
}

func (s *LogSheet) Table() *Table {
	if s.table != nil && !s.msgsDirty {
		return s.table
	}
	cells := make([]Cell, len(s.rows))
	for i, row := range s.rows {
		cells[i] = Cell{Text: row}
	}
	s.table = &Table{
		Title:  "Log",
		RowGap: 0,
		ColGap: 0,
		Columns: []*Column{
			{Head: "msg", Rows: cells, Sizing: Expand(1)},
		},
	}
	s.msgsDirty = false
	return s.table
}

// wrapRows appends msg to rows cut into pieces of at most width display
// cells. Every line of the message yields at least one row.
func wrapRows(rows []string, msg string, width int) []string {
	if width < 1 {
		width = 1
	}
	for _, line := range strings.Split(msg, "\n") {
		var (
			row    strings.Builder
			cells  int
			pushed bool
		)
		for _, r := range line {
			w := runewidth.RuneWidth(r)
			if cells > 0 && cells+w > width {
				rows = append(rows, row.String())
				row.Reset()
				cells = 0
				pushed = true
			}
			row.WriteRune(r)
			cells += w
		}
		if row.Len() > 0 || !pushed {
			rows = append(rows, row.String())
		}
	}
	return rows
}

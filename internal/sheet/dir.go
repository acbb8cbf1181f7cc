package sheet

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
)

type RecordType int

const (
	RecordFile RecordType = iota
	RecordDir
	RecordSymlink
)

func (t RecordType) Style() Style {
	switch t {
	case RecordDir:
		return StyleDir
	case RecordSymlink:
		return StyleSpecial
	default:
		return StyleFile
	}
}

type PathRecord struct {
	Path    string
	Size    int64
	ModTime time.Time
	Type    RecordType
}

func (r PathRecord) Name() string {
	return filepath.Base(r.Path)
}

const (
	sortByName = iota
	sortByTime
	sortBySize
)

const timeLayout = "2006-01-02 15:04:05"

// DirSheet presents one directory listing.
type DirSheet struct {
	base    string
	records []PathRecord

	selection map[string]struct{}
	highlight map[string]struct{}
	pattern   string

	cursor   Cursor
	feedback RenderFeedback
	table    *Table

	pathsDirty bool
	stateDirty bool
}

// ReadDir lists path without following symlinks. Entries that vanish while
// the listing is read are skipped.
func ReadDir(path string) (*DirSheet, error) {
	entries, err := os.ReadDir(path)
	if err != nil {
		return nil, fmt.Errorf("read dir %s: %w", path, err)
	}
	records := make([]PathRecord, 0, len(entries))
	for _, entry := range entries {
		full := filepath.Join(path, entry.Name())
		info, err := os.Lstat(full)
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				continue
			}
			return nil, fmt.Errorf("stat %s: %w", full, err)
		}
		records = append(records, recordFromInfo(full, info))
	}
	return NewDirSheet(path, records), nil
}

func recordFromInfo(path string, info fs.FileInfo) PathRecord {
	rec := PathRecord{
		Path:    path,
		Size:    info.Size(),
		ModTime: info.ModTime(),
		Type:    RecordFile,
	}
	switch mode := info.Mode(); {
	case mode&fs.ModeSymlink != 0:
		rec.Type = RecordSymlink
	case mode.IsDir():
		rec.Type = RecordDir
	}
	return rec
}

func NewDirSheet(base string, records []PathRecord) *DirSheet {
	return &DirSheet{
		base:       base,
		records:    records,
		selection:  make(map[string]struct{}),
		highlight:  make(map[string]struct{}),
		pathsDirty: true,
		stateDirty: true,
	}
}

func (s *DirSheet) Base() string { return s.base }

func (s *DirSheet) Len() int { return len(s.records) }

func (s *DirSheet) ScrollOffset() int { return s.cursor.Offset }

func (s *DirSheet) CursorIndex() int { return s.cursor.Index }

func (s *DirSheet) IsCursor(idx int) bool { return s.cursor.IsCursor(idx) }

func (s *DirSheet) NeedsRepage() bool { return s.pathsDirty }

func (s *DirSheet) NeedsRedraw() bool { return s.stateDirty }

func (s *DirSheet) Contains(x, y int) bool { return s.feedback.Contains(x, y) }

func (s *DirSheet) Control(ctrl Control) {
	s.cursor.Apply(ctrl, s.Len(), s.feedback)
	s.stateDirty = true
}

func (s *DirSheet) SetRenderFeedback(fb RenderFeedback) {
	s.feedback = fb
	s.stateDirty = false
}

// Current returns the record under the cursor.
func (s *DirSheet) Current() (PathRecord, bool) {
	if s.cursor.Index < 0 || s.cursor.Index >= len(s.records) {
		return PathRecord{}, false
	}
	return s.records[s.cursor.Index], true
}

// Reveal moves the cursor onto the record at path and scrolls it into view.
// It reports false when the listing has no such record.
func (s *DirSheet) Reveal(path string) bool {
	for i, rec := range s.records {
		if rec.Path == path {
			s.cursor.Index = i
			s.Control(Refresh)
			return true
		}
	}
	return false
}

func (s *DirSheet) IsSelected(idx int) bool {
	return s.inSet(s.selection, idx)
}

func (s *DirSheet) IsHighlighted(idx int) bool {
	return s.inSet(s.highlight, idx)
}

func (s *DirSheet) inSet(set map[string]struct{}, idx int) bool {
	if idx < 0 || idx >= len(s.records) {
		return false
	}
	_, ok := set[s.records[idx].Path]
	return ok
}

// ToggleSelect flips the selection mark of row idx.
func (s *DirSheet) ToggleSelect(idx int) {
	if idx < 0 || idx >= len(s.records) {
		return
	}
	path := s.records[idx].Path
	if _, ok := s.selection[path]; ok {
		delete(s.selection, path)
	} else {
		s.selection[path] = struct{}{}
	}
	s.stateDirty = true
}

// Selected returns the selected paths in display order.
func (s *DirSheet) Selected() []string {
	var out []string
	for _, rec := range s.records {
		if _, ok := s.selection[rec.Path]; ok {
			out = append(out, rec.Path)
		}
	}
	return out
}

// Highlight marks every row whose name contains pattern, ignoring case, and
// returns how many matched. An empty pattern clears the highlight.
func (s *DirSheet) Highlight(pattern string) int {
	s.pattern = strings.ToLower(strings.TrimSpace(pattern))
	s.highlight = make(map[string]struct{})
	s.stateDirty = true
	if s.pattern == "" {
		return 0
	}
	for _, rec := range s.records {
		if strings.Contains(strings.ToLower(rec.Name()), s.pattern) {
			s.highlight[rec.Path] = struct{}{}
		}
	}
	return len(s.highlight)
}

// SortByColumn orders the listing by name (directories first), modification
// time or size. Unknown columns are ignored.
func (s *DirSheet) SortByColumn(col int) {
	switch col {
	case sortByName:
		sort.SliceStable(s.records, func(i, j int) bool {
			a, b := s.records[i], s.records[j]
			aDir, bDir := a.Type == RecordDir, b.Type == RecordDir
			if aDir != bDir {
				return aDir
			}
			return strings.ToLower(a.Name()) < strings.ToLower(b.Name())
		})
	case sortByTime:
		sort.SliceStable(s.records, func(i, j int) bool {
			return s.records[i].ModTime.Before(s.records[j].ModTime)
		})
	case sortBySize:
		sort.SliceStable(s.records, func(i, j int) bool {
			return s.records[i].Size < s.records[j].Size
		})
	default:
		return
	}
	s.pathsDirty = true
	s.stateDirty = true
}

func (s *DirSheet) Table() *Table {
	if s.table != nil && !s.pathsDirty {
		return s.table
	}

	names := make([]Cell, len(s.records))
	times := make([]Cell, len(s.records))
	sizes := make([]Cell, len(s.records))
	for i, rec := range s.records {
		name := rec.Name()
		if rec.Type == RecordDir {
			name += string(os.PathSeparator)
		}
		names[i] = Cell{Text: name, Style: rec.Type.Style()}
		times[i] = Cell{Text: rec.ModTime.UTC().Format(timeLayout)}
		sizes[i] = Cell{Text: formatSize(rec.Size)}
	}

	s.table = &Table{
		Title:  s.base,
		RowGap: 0,
		ColGap: 1,
		Columns: []*Column{
			{Head: "name", Rows: names, Sizing: Expand(1)},
			{Head: "time", Rows: times, Sizing: FixedText("MMMM-MM-MM MM:MM:MM")},
			{Head: "size", Rows: sizes, Sizing: FixedText("MMMMMMMM")},
		},
	}
	s.pathsDirty = false
	return s.table
}

func formatSize(size int64) string {
	if size < 0 {
		size = 0
	}
	return humanize.IBytes(uint64(size))
}

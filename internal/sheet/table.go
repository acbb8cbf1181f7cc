package sheet

type Style int

const (
	StyleDefault Style = iota
	StyleDir
	StyleFile
	StyleSpecial
)

type Cell struct {
	Text  string
	Style Style
}

// Sizing says how a column claims horizontal space: a fixed column is as
// wide as its sample text, an expanding column takes a weighted share of
// whatever the fixed columns leave over.
type Sizing struct {
	Sample string
	Weight int
	expand bool
}

func FixedText(sample string) Sizing {
	return Sizing{Sample: sample}
}

func Expand(weight int) Sizing {
	return Sizing{Weight: weight, expand: true}
}

func (s Sizing) IsExpand() bool {
	return s.expand
}

type Column struct {
	Head   string
	Rows   []Cell
	Sizing Sizing

	resolved    int
	hasResolved bool
}

// Resolved returns the measured width of a fixed column and whether it has
// been measured yet. Expanding columns resolve to 0.
func (c *Column) Resolved() (int, bool) {
	return c.resolved, c.hasResolved
}

// Table is the drawable snapshot of a page. Pages rebuild a new Table when
// their content changes and never modify one they have handed out, apart
// from the width cache filled in by ResolveWidths.
type Table struct {
	Title   string
	Columns []*Column
	RowGap  int
	ColGap  int
}

// Measurer is the text metrics half of the rendering backend.
type Measurer interface {
	TextWidth(s string) int
	LineHeight() int
}

func (t *Table) RowCount() int {
	n := 0
	for _, col := range t.Columns {
		if len(col.Rows) > n {
			n = len(col.Rows)
		}
	}
	return n
}

// ResolveWidths measures every fixed column that has not been measured yet.
func (t *Table) ResolveWidths(m Measurer) {
	for _, col := range t.Columns {
		if col.hasResolved {
			continue
		}
		if col.Sizing.IsExpand() {
			col.resolved = 0
		} else {
			w := m.TextWidth(col.Sizing.Sample)
			if w < 0 {
				w = 0
			}
			col.resolved = w
		}
		col.hasResolved = true
	}
}

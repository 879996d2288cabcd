package tui

import (
	"fmt"
	"io"
)

// TableColumn defines a column in a table.
type TableColumn struct {
	Name  string
	Width int
	Align Alignment
}

// Alignment defines text alignment in a column.
type Alignment int

// Alignment constants.
const (
	AlignLeft Alignment = iota
	AlignRight
)

// Table provides styled fixed-width table rendering.
type Table struct {
	w       io.Writer
	styles  *TableStyles
	columns []TableColumn
}

// NewTable creates a new table with the given columns.
func NewTable(w io.Writer, columns []TableColumn) *Table {
	return &Table{
		w:       w,
		styles:  NewTableStyles(),
		columns: columns,
	}
}

// Styles exposes the table's style set so callers can style individual cells.
func (t *Table) Styles() *TableStyles {
	return t.styles
}

// WriteHeader writes the table header row.
func (t *Table) WriteHeader() {
	header := ""
	for i, col := range t.columns {
		if i > 0 {
			header += "  "
		}
		header += fmt.Sprintf(t.formatSpec(col), col.Name)
	}
	_, _ = fmt.Fprintln(t.w, t.styles.Header.Render(header))
}

// WriteRow writes a data row. Cells beyond the column count are ignored;
// missing cells render empty. An optional style per cell may be supplied via
// WriteStyledRow instead.
func (t *Table) WriteRow(values ...string) {
	t.writeRow(values, nil)
}

// CellStyle pairs a cell index with the styled text to print there.
type CellStyle struct {
	Index    int
	Rendered string
}

// WriteStyledRow writes a data row with selected cells replaced by
// pre-rendered styled text. Width bookkeeping uses the plain values so ANSI
// sequences do not skew the layout.
func (t *Table) WriteStyledRow(values []string, styled []CellStyle) {
	rendered := make(map[int]string, len(styled))
	for _, s := range styled {
		rendered[s.Index] = s.Rendered
	}
	t.writeRow(values, rendered)
}

func (t *Table) writeRow(values []string, rendered map[int]string) {
	row := ""
	for i, col := range t.columns {
		if i > 0 {
			row += "  "
		}
		value := ""
		if i < len(values) {
			value = values[i]
		}
		if col.Width > 1 && len(value) > col.Width {
			value = value[:col.Width-1] + "…"
		}
		cell := fmt.Sprintf(t.formatSpec(col), value)
		if styledText, ok := rendered[i]; ok {
			// Pad around the styled text using the plain value's width.
			pad := len(cell) - len(value)
			if col.Align == AlignRight {
				cell = spaces(pad) + styledText
			} else {
				cell = styledText + spaces(pad)
			}
		}
		row += cell
	}
	_, _ = fmt.Fprintln(t.w, row)
}

func (t *Table) formatSpec(col TableColumn) string {
	if col.Align == AlignRight {
		return fmt.Sprintf("%%%ds", col.Width)
	}
	return fmt.Sprintf("%%-%ds", col.Width)
}

func spaces(n int) string {
	if n <= 0 {
		return ""
	}
	out := make([]byte, n)
	for i := range out {
		out[i] = ' '
	}
	return string(out)
}

// Package table lays out rows of cells into aligned terminal columns.
//
// A cell may span several lines; continuation lines render inside the
// same column, so callers never splice newlines through already-aligned
// text. Column widths are measured with lipgloss.Width, which ignores
// styling escape sequences and accounts for wide runes.
package table

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Alignment controls how cell content pads within its column.
type Alignment int

// Supported alignments.
const (
	Left Alignment = iota
	Right
)

// Cell is one table cell, holding one or more lines.
type Cell struct {
	Lines []string
}

// Text returns a single-line cell.
func Text(s string) Cell {
	return Cell{Lines: []string{s}}
}

// Multi returns a cell spanning the given lines.
func Multi(lines ...string) Cell {
	return Cell{Lines: lines}
}

// Table collects rows of cells and renders them as aligned columns
// separated by a two-space gap.
type Table struct {
	aligns []Alignment
	rows   [][]Cell
}

const columnGap = "  "

// New returns an empty table with every column left-aligned.
func New() *Table {
	return &Table{}
}

// Align sets per-column alignment. Columns without an explicit
// alignment stay left-aligned.
func (t *Table) Align(aligns ...Alignment) *Table {
	t.aligns = aligns
	return t
}

// AddRow appends one row. Rows may have differing cell counts; missing
// trailing cells render empty.
func (t *Table) AddRow(cells ...Cell) *Table {
	t.rows = append(t.rows, cells)
	return t
}

// Render produces the aligned block. Every output line is trimmed of
// trailing whitespace and newline-terminated.
func (t *Table) Render() string {
	if len(t.rows) == 0 {
		return ""
	}

	cols := 0
	for _, row := range t.rows {
		if len(row) > cols {
			cols = len(row)
		}
	}

	widths := make([]int, cols)
	for _, row := range t.rows {
		for c, cell := range row {
			for _, line := range cell.Lines {
				if w := lipgloss.Width(line); w > widths[c] {
					widths[c] = w
				}
			}
		}
	}

	var b strings.Builder
	for _, row := range t.rows {
		height := 1
		for _, cell := range row {
			if len(cell.Lines) > height {
				height = len(cell.Lines)
			}
		}

		for i := 0; i < height; i++ {
			var line strings.Builder
			for c := 0; c < cols; c++ {
				if c > 0 {
					line.WriteString(columnGap)
				}
				line.WriteString(pad(cellLine(row, c, i), widths[c], t.alignFor(c)))
			}
			b.WriteString(strings.TrimRight(line.String(), " "))
			b.WriteString("\n")
		}
	}

	return b.String()
}

func (t *Table) alignFor(col int) Alignment {
	if col < len(t.aligns) {
		return t.aligns[col]
	}
	return Left
}

func cellLine(row []Cell, col, line int) string {
	if col >= len(row) || line >= len(row[col].Lines) {
		return ""
	}
	return row[col].Lines[line]
}

func pad(s string, width int, align Alignment) string {
	gap := width - lipgloss.Width(s)
	if gap <= 0 {
		return s
	}
	fill := strings.Repeat(" ", gap)
	if align == Right {
		return fill + s
	}
	return s + fill
}

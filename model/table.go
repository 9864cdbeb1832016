package model

import (
	"fmt"
	"strings"
)

// Table represents a fixed grid of cells placed on a slide
type Table struct {
	Frame        Rect
	ColumnWidths []EMU
	RowHeights   []EMU
	Rows         [][]Cell
}

func (t *Table) Type() ShapeType { return ShapeTypeTable }
func (t *Table) Bounds() Rect    { return t.Frame }
func (t *Table) GetText() string {
	var sb strings.Builder
	for _, row := range t.Rows {
		for j, cell := range row {
			sb.WriteString(cell.Text)
			if j < len(row)-1 {
				sb.WriteString("\t")
			}
		}
		sb.WriteString("\n")
	}
	return sb.String()
}

// NewTable creates a table with given dimensions. Column widths and row
// heights split the frame evenly; any remainder goes to the last column
// or row so the grid always spans the frame.
func NewTable(rows, cols int, frame Rect) *Table {
	table := &Table{
		Frame:        frame,
		ColumnWidths: split(frame.Width, cols),
		RowHeights:   split(frame.Height, rows),
		Rows:         make([][]Cell, rows),
	}
	for i := 0; i < rows; i++ {
		table.Rows[i] = make([]Cell, cols)
	}
	return table
}

func split(total EMU, n int) []EMU {
	if n <= 0 {
		return nil
	}
	parts := make([]EMU, n)
	each := total / EMU(n)
	for i := range parts {
		parts[i] = each
	}
	parts[n-1] += total - each*EMU(n)
	return parts
}

// RowCount returns the number of rows
func (t *Table) RowCount() int {
	return len(t.Rows)
}

// ColCount returns the number of columns
func (t *Table) ColCount() int {
	return len(t.ColumnWidths)
}

// Cell returns the cell at the given row and column (0-indexed)
func (t *Table) Cell(row, col int) *Cell {
	if row < 0 || row >= len(t.Rows) {
		return nil
	}
	if col < 0 || col >= len(t.Rows[row]) {
		return nil
	}
	return &t.Rows[row][col]
}

// SetCell sets the cell at the given position
func (t *Table) SetCell(row, col int, cell Cell) error {
	if row < 0 || row >= len(t.Rows) {
		return fmt.Errorf("row index %d out of bounds", row)
	}
	if col < 0 || col >= len(t.Rows[row]) {
		return fmt.Errorf("col index %d out of bounds", col)
	}
	t.Rows[row][col] = cell
	return nil
}

// SetColumnWidth overrides the width of one column
func (t *Table) SetColumnWidth(col int, width EMU) error {
	if col < 0 || col >= len(t.ColumnWidths) {
		return fmt.Errorf("col index %d out of bounds", col)
	}
	t.ColumnWidths[col] = width
	return nil
}

// CellFrame returns the rectangle occupied by a cell
func (t *Table) CellFrame(row, col int) Rect {
	if row < 0 || row >= len(t.RowHeights) || col < 0 || col >= len(t.ColumnWidths) {
		return Rect{}
	}
	r := Rect{X: t.Frame.X, Y: t.Frame.Y, Width: t.ColumnWidths[col], Height: t.RowHeights[row]}
	for j := 0; j < col; j++ {
		r.X += t.ColumnWidths[j]
	}
	for i := 0; i < row; i++ {
		r.Y += t.RowHeights[i]
	}
	return r
}

// ToMarkdown converts the table to markdown format
func (t *Table) ToMarkdown() string {
	if len(t.Rows) == 0 {
		return ""
	}

	var sb strings.Builder
	writeRow := func(row []Cell) {
		for _, cell := range row {
			sb.WriteString("| ")
			text := strings.ReplaceAll(cell.Text, "\n", " ")
			sb.WriteString(strings.ReplaceAll(text, "|", "\\|"))
			sb.WriteString(" ")
		}
		sb.WriteString("|\n")
	}

	writeRow(t.Rows[0])
	for range t.Rows[0] {
		sb.WriteString("|---")
	}
	sb.WriteString("|\n")
	for i := 1; i < len(t.Rows); i++ {
		writeRow(t.Rows[i])
	}

	return sb.String()
}

// Cell represents a table cell
type Cell struct {
	Text string
	Font Font
	Fill *Color // Solid background, nil for the table style default
}

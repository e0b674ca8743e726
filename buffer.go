package rustty

import (
	"fmt"
	"slices"
	"strings"
)

// CellBuffer stores a rectangular grid of cells addressed by (col, row).
// The grid is column-major: cells[col][row]. Every column always holds
// exactly rows cells, and there are always exactly cols columns.
//
// The zero value is a valid 0x0 buffer. A CellBuffer is not safe for
// concurrent use.
type CellBuffer struct {
	cols  int
	rows  int
	cells [][]Cell
}

// BufferOption configures how a new buffer is filled.
type BufferOption func(*bufferConfig)

type bufferConfig struct {
	fill Cell
}

// WithFillCell fills every cell of the new buffer with cell.
func WithFillCell(cell Cell) BufferOption {
	return func(c *bufferConfig) {
		c.fill = cell
	}
}

// WithFillChar fills the new buffer with ch using default styles.
func WithFillChar(ch rune) BufferOption {
	return WithFillCell(CellWithChar(ch))
}

// WithFillStyles fills the new buffer with blank cells using the given styles.
func WithFillStyles(fg, bg Style) BufferOption {
	return WithFillCell(CellWithStyles(fg, bg))
}

// NewBuffer creates a cols x rows buffer. Without options every cell is
// DefaultCell. Negative dimensions are treated as 0.
func NewBuffer(cols, rows int, opts ...BufferOption) *CellBuffer {
	cfg := bufferConfig{fill: DefaultCell()}
	for _, opt := range opts {
		opt(&cfg)
	}

	cols, rows = max(cols, 0), max(rows, 0)
	b := &CellBuffer{
		cols:  cols,
		rows:  rows,
		cells: make([][]Cell, cols),
	}
	for i := range b.cells {
		b.cells[i] = make([]Cell, rows)
		fill(b.cells[i], cfg.fill)
	}
	return b
}

// NewBufferWithChar creates a buffer filled with ch using default styles.
func NewBufferWithChar(cols, rows int, ch rune) *CellBuffer {
	return NewBuffer(cols, rows, WithFillChar(ch))
}

// NewBufferWithStyles creates a buffer of blank cells using the given styles.
func NewBufferWithStyles(cols, rows int, fg, bg Style) *CellBuffer {
	return NewBuffer(cols, rows, WithFillStyles(fg, bg))
}

// NewBufferWithCell creates a buffer where every cell equals cell.
func NewBufferWithCell(cols, rows int, cell Cell) *CellBuffer {
	return NewBuffer(cols, rows, WithFillCell(cell))
}

// Cols returns the buffer width in columns.
func (b *CellBuffer) Cols() int {
	return b.cols
}

// Rows returns the buffer height in rows.
func (b *CellBuffer) Rows() int {
	return b.rows
}

// Size returns (cols, rows).
func (b *CellBuffer) Size() (cols, rows int) {
	return b.cols, b.rows
}

// Clear resets every cell to DefaultCell.
func (b *CellBuffer) Clear() {
	b.ClearWithCell(DefaultCell())
}

// ClearWithChar sets every cell to ch with default styles.
func (b *CellBuffer) ClearWithChar(ch rune) {
	b.ClearWithCell(CellWithChar(ch))
}

// ClearWithStyles sets every cell to a space with the given styles.
func (b *CellBuffer) ClearWithStyles(fg, bg Style) {
	b.ClearWithCell(CellWithStyles(fg, bg))
}

// ClearWithCell overwrites the character and both styles of every cell with
// those of blank. The shape is unchanged.
func (b *CellBuffer) ClearWithCell(blank Cell) {
	for _, col := range b.cells {
		fill(col, blank)
	}
}

// Resize changes the shape to cols x rows. Cells whose coordinates exist in
// both the old and the new shape keep their content. Added columns are
// filled with blank, removed columns are dropped, and within every column
// added rows are filled with blank while removed rows are dropped.
// Negative dimensions are treated as 0.
//
// Column views obtained before the call must not be used afterwards.
func (b *CellBuffer) Resize(cols, rows int, blank Cell) {
	cols, rows = max(cols, 0), max(rows, 0)

	if cols < len(b.cells) {
		clear(b.cells[cols:])
		b.cells = b.cells[:cols]
	}
	for i := range b.cells {
		b.cells[i] = resizeColumn(b.cells[i], rows, blank)
	}
	for len(b.cells) < cols {
		col := make([]Cell, rows)
		fill(col, blank)
		b.cells = append(b.cells, col)
	}

	b.cols = cols
	b.rows = rows
}

// resizeColumn truncates col to rows cells or extends it with blank.
func resizeColumn(col []Cell, rows int, blank Cell) []Cell {
	n := len(col)
	if rows <= n {
		return col[:rows]
	}
	col = slices.Grow(col, rows-n)[:rows]
	fill(col[n:], blank)
	return col
}

// fill sets every element of cells to c using doubling copies.
func fill(cells []Cell, c Cell) {
	if len(cells) == 0 {
		return
	}
	cells[0] = c
	for filled := 1; filled < len(cells); filled *= 2 {
		copy(cells[filled:], cells[:filled])
	}
}

// Column returns the cells of column col, indexed by row. The returned slice
// is a live view: writing to it changes the buffer.
// Returns an error wrapping ErrIndexOutOfBounds if col is outside the buffer.
func (b *CellBuffer) Column(col int) ([]Cell, error) {
	if col < 0 || col >= b.cols {
		return nil, fmt.Errorf("%w: column %d, buffer has %d columns", ErrIndexOutOfBounds, col, b.cols)
	}
	return b.cells[col], nil
}

// Cell returns a pointer to the cell at (col, row) for reading or in-place writes.
// The column is checked before the row; either failing returns an error
// wrapping ErrIndexOutOfBounds.
func (b *CellBuffer) Cell(col, row int) (*Cell, error) {
	column, err := b.Column(col)
	if err != nil {
		return nil, err
	}
	if row < 0 || row >= len(column) {
		return nil, fmt.Errorf("%w: row %d, column %d has %d rows", ErrIndexOutOfBounds, row, col, len(column))
	}
	return &column[row], nil
}

// SetCell replaces the cell at (col, row).
func (b *CellBuffer) SetCell(col, row int, cell Cell) error {
	c, err := b.Cell(col, row)
	if err != nil {
		return err
	}
	*c = cell
	return nil
}

// Clone returns an independent copy of the buffer.
func (b *CellBuffer) Clone() *CellBuffer {
	c := &CellBuffer{
		cols:  b.cols,
		rows:  b.rows,
		cells: make([][]Cell, len(b.cells)),
	}
	for i, col := range b.cells {
		c.cells[i] = slices.Clone(col)
	}
	return c
}

// Equal returns true if both buffers have the same shape and identical cells.
// A nil buffer only equals another nil buffer.
func (b *CellBuffer) Equal(other *CellBuffer) bool {
	if b == nil || other == nil {
		return b == other
	}
	if b.cols != other.cols || b.rows != other.rows {
		return false
	}
	for i := range b.cells {
		if !slices.Equal(b.cells[i], other.cells[i]) {
			return false
		}
	}
	return true
}

// LineContent returns the characters of a row from left to right, trimming
// trailing spaces. NUL characters are shown as spaces. Returns an empty
// string if row is out of bounds.
func (b *CellBuffer) LineContent(row int) string {
	if row < 0 || row >= b.rows {
		return ""
	}

	runes := make([]rune, 0, b.cols)
	for _, col := range b.cells {
		ch := col[row].ch
		if ch == 0 {
			ch = ' '
		}
		runes = append(runes, ch)
	}
	return strings.TrimRight(string(runes), " ")
}

// String returns the rows of the buffer separated by newlines, with trailing
// empty lines omitted. Implements fmt.Stringer.
func (b *CellBuffer) String() string {
	lines := make([]string, 0, b.rows)
	lastNonEmpty := -1
	for row := 0; row < b.rows; row++ {
		line := b.LineContent(row)
		lines = append(lines, line)
		if line != "" {
			lastNonEmpty = row
		}
	}
	return strings.Join(lines[:lastNonEmpty+1], "\n")
}

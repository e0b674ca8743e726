package rustty

import (
	"fmt"

	"github.com/unilibs/uniwidth"
)

// runeWidth returns the display width: 2 for wide characters (CJK, emoji), 1 for normal, 0 for zero-width (combining marks, control chars).
func runeWidth(r rune) int {
	return uniwidth.RuneWidth(r)
}

// StringWidth returns the total display width of a string (sum of rune widths).
func StringWidth(s string) int {
	return uniwidth.StringWidth(s)
}

// PutString writes s into row, one rune per column starting at col, using
// the given styles. Zero-width runes are skipped since a cell holds a single
// character; wide runes still take one cell. Writing stops at the right edge.
// Returns the number of cells written, or an error wrapping
// ErrIndexOutOfBounds if (col, row) is outside the buffer.
func (b *CellBuffer) PutString(col, row int, s string, fg, bg Style) (int, error) {
	if _, err := b.Cell(col, row); err != nil {
		return 0, fmt.Errorf("put string: %w", err)
	}

	written := 0
	for _, r := range s {
		if col >= b.cols {
			break
		}
		if runeWidth(r) == 0 {
			continue
		}
		b.cells[col][row] = NewCell(r, fg, bg)
		col++
		written++
	}
	return written, nil
}

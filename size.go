package rustty

import (
	"fmt"

	"golang.org/x/term"
)

// SizeProvider reports the live dimensions of a display.
type SizeProvider interface {
	// Size returns the display width in columns and height in rows.
	Size() (cols, rows int, err error)
}

// FixedSize reports a constant size (useful for tests and headless use).
type FixedSize struct {
	Cols int
	Rows int
}

// Size returns the configured columns and rows.
func (s FixedSize) Size() (int, int, error) {
	return s.Cols, s.Rows, nil
}

// TerminalSize reports the size of the terminal behind a file descriptor.
type TerminalSize struct {
	Fd int
}

// Size queries the terminal; it fails if Fd is not a terminal.
func (s TerminalSize) Size() (int, int, error) {
	if !term.IsTerminal(s.Fd) {
		return 0, 0, fmt.Errorf("fd %d is not a terminal", s.Fd)
	}
	cols, rows, err := term.GetSize(s.Fd)
	if err != nil {
		return 0, 0, fmt.Errorf("get terminal size: %w", err)
	}
	return cols, rows, nil
}

// SyncSize resizes the buffer to the size reported by p, filling new cells
// with blank. Returns true if the shape changed. On error the buffer is left
// untouched.
func (b *CellBuffer) SyncSize(p SizeProvider, blank Cell) (bool, error) {
	cols, rows, err := p.Size()
	if err != nil {
		return false, err
	}
	cols, rows = max(cols, 0), max(rows, 0)
	if cols == b.cols && rows == b.rows {
		return false, nil
	}
	b.Resize(cols, rows, blank)
	return true, nil
}

package rustty

// Cell stores the character and the foreground and background styles for one
// grid position. Cells are plain values; copying a cell copies all three fields.
type Cell struct {
	ch rune
	fg Style
	bg Style
}

// NewCell creates a cell from a character and both styles.
func NewCell(ch rune, fg, bg Style) Cell {
	return Cell{ch: ch, fg: fg, bg: bg}
}

// CellWithChar creates a cell with the given character and default styles.
func CellWithChar(ch rune) Cell {
	return NewCell(ch, DefaultStyle(), DefaultStyle())
}

// CellWithStyles creates a blank (space) cell with the given styles.
func CellWithStyles(fg, bg Style) Cell {
	return NewCell(' ', fg, bg)
}

// DefaultCell returns a space with default styles.
// Note that the zero Cell holds rune 0, not a space.
func DefaultCell() Cell {
	return CellWithStyles(DefaultStyle(), DefaultStyle())
}

// Char returns the displayed character.
func (c Cell) Char() rune {
	return c.ch
}

// SetChar replaces the character and returns c for chaining.
func (c *Cell) SetChar(ch rune) *Cell {
	c.ch = ch
	return c
}

// Fg returns the foreground style.
func (c Cell) Fg() Style {
	return c.fg
}

// FgMut returns a pointer to the foreground style for in-place edits.
func (c *Cell) FgMut() *Style {
	return &c.fg
}

// SetFg replaces the foreground style and returns c for chaining.
func (c *Cell) SetFg(fg Style) *Cell {
	c.fg = fg
	return c
}

// Bg returns the background style.
func (c Cell) Bg() Style {
	return c.bg
}

// BgMut returns a pointer to the background style for in-place edits.
func (c *Cell) BgMut() *Style {
	return &c.bg
}

// SetBg replaces the background style and returns c for chaining.
func (c *Cell) SetBg(bg Style) *Cell {
	c.bg = bg
	return c
}

// Reset sets the cell back to DefaultCell.
func (c *Cell) Reset() {
	*c = DefaultCell()
}


package rustty

import "fmt"

// Color is a terminal color: one of the eight named colors, an index into the
// 256-color palette, or Default, which leaves the choice to the terminal.
// The zero value is Default.
type Color uint16

// colorIndexed tags palette colors created with Byte.
const colorIndexed Color = 0x100

const (
	// Default means "use the terminal's own color". It has no palette index.
	Default Color = iota
	Black
	Red
	Green
	Yellow
	Blue
	Magenta
	Cyan
	White
)

// Byte returns the extended palette color with index n.
// Byte(1) and Red encode to the same index but are different values.
func Byte(n uint8) Color {
	return colorIndexed | Color(n)
}

// IsDefault returns true for the Default sentinel.
func (c Color) IsDefault() bool {
	return c == Default
}

// IsNamed returns true for the eight named colors.
func (c Color) IsNamed() bool {
	return c >= Black && c <= White
}

// IsIndexed returns true for colors created with Byte.
func (c Color) IsIndexed() bool {
	return c&colorIndexed != 0
}

// Encode returns the palette index of the color: 0-7 for named colors in
// ANSI order, or the stored index for Byte colors.
// Default has no numeric encoding and returns ErrInvalidOperation; callers
// must handle it before encoding.
func (c Color) Encode() (uint8, error) {
	switch {
	case c.IsIndexed():
		return uint8(c &^ colorIndexed), nil
	case c.IsNamed():
		return uint8(c - Black), nil
	case c == Default:
		return 0, fmt.Errorf("%w: default color has no palette index", ErrInvalidOperation)
	default:
		return 0, fmt.Errorf("%w: unknown color %#x", ErrInvalidOperation, uint16(c))
	}
}

// MustEncode is like Encode but panics if the color cannot be encoded.
func (c Color) MustEncode() uint8 {
	b, err := c.Encode()
	if err != nil {
		panic(err)
	}
	return b
}

var colorNames = [...]string{
	Default: "default",
	Black:   "black",
	Red:     "red",
	Green:   "green",
	Yellow:  "yellow",
	Blue:    "blue",
	Magenta: "magenta",
	Cyan:    "cyan",
	White:   "white",
}

// String returns the color name, or "byte(n)" for palette colors.
func (c Color) String() string {
	if c.IsIndexed() {
		return fmt.Sprintf("byte(%d)", uint8(c&^colorIndexed))
	}
	if int(c) < len(colorNames) {
		return colorNames[c]
	}
	return fmt.Sprintf("color(%#x)", uint16(c))
}

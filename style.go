package rustty

// Style is one half (foreground or background) of a cell's appearance.
// Styles are compared with ==. The zero value is the default style.
type Style struct {
	color Color
	attr  Attr
}

// NewStyle creates a style from a color and an attribute.
func NewStyle(c Color, a Attr) Style {
	return Style{color: c, attr: a}
}

// StyleWithColor creates a style with the given color and AttrDefault.
func StyleWithColor(c Color) Style {
	return NewStyle(c, AttrDefault)
}

// StyleWithAttr creates a style with the given attribute and the Default color.
func StyleWithAttr(a Attr) Style {
	return NewStyle(Default, a)
}

// DefaultStyle returns the style (Default, AttrDefault).
func DefaultStyle() Style {
	return Style{}
}

// Color returns the style's color.
func (s Style) Color() Color {
	return s.color
}

// SetColor replaces the color and returns s for chaining.
func (s *Style) SetColor(c Color) *Style {
	s.color = c
	return s
}

// Attr returns the style's attribute.
func (s Style) Attr() Attr {
	return s.attr
}

// SetAttr replaces the attribute and returns s for chaining.
func (s *Style) SetAttr(a Attr) *Style {
	s.attr = a
	return s
}

// String returns "color/attr", e.g. "red/bold".
func (s Style) String() string {
	return s.color.String() + "/" + s.attr.String()
}

package rustty

import (
	"image/color"

	"github.com/danielgatis/go-ansicode"
)

// ApplyCharAttribute updates the cell's styles from a decoded SGR attribute.
// Text attributes go to the foreground style and replace whatever attribute
// it held, since a style carries a single attribute. Attributes with no
// equivalent in this model (italic, blink, strike, ...) are ignored.
func (c *Cell) ApplyCharAttribute(attr ansicode.TerminalCharAttribute) {
	switch attr.Attr {
	case ansicode.CharAttributeReset:
		c.fg = DefaultStyle()
		c.bg = DefaultStyle()

	case ansicode.CharAttributeBold:
		c.fg.attr = AttrBold

	case ansicode.CharAttributeUnderline:
		c.fg.attr = AttrUnderline

	case ansicode.CharAttributeReverse:
		c.fg.attr = AttrReverse

	case ansicode.CharAttributeCancelBold, ansicode.CharAttributeCancelBoldDim:
		c.cancelAttr(AttrBold)

	case ansicode.CharAttributeCancelUnderline:
		c.cancelAttr(AttrUnderline)

	case ansicode.CharAttributeCancelReverse:
		c.cancelAttr(AttrReverse)

	case ansicode.CharAttributeForeground:
		c.fg.color = ColorFromAttribute(attr)

	case ansicode.CharAttributeBackground:
		c.bg.color = ColorFromAttribute(attr)
	}
}

func (c *Cell) cancelAttr(a Attr) {
	if c.fg.attr == a {
		c.fg.attr = AttrDefault
	}
}

// ColorFromAttribute converts the color carried by a decoded SGR attribute.
// Semantic colors (default foreground, background, cursor) and attributes
// without a color map to Default. True colors are approximated by the nearest
// DefaultPalette entry.
func ColorFromAttribute(attr ansicode.TerminalCharAttribute) Color {
	if attr.RGBColor != nil {
		return Byte(nearestIndex(color.RGBA{
			R: attr.RGBColor.R,
			G: attr.RGBColor.G,
			B: attr.RGBColor.B,
			A: 255,
		}))
	}

	if attr.IndexedColor != nil {
		return Byte(uint8(attr.IndexedColor.Index))
	}

	if attr.NamedColor != nil {
		return colorFromName(*attr.NamedColor)
	}

	return Default
}

func colorFromName(name ansicode.NamedColor) Color {
	switch {
	case name >= ansicode.NamedColorBlack && name <= ansicode.NamedColorWhite:
		return Black + Color(name-ansicode.NamedColorBlack)
	case name >= ansicode.NamedColorBrightBlack && name <= ansicode.NamedColorBrightWhite:
		return Byte(uint8(name))
	case name >= ansicode.NamedColorDimBlack && name <= ansicode.NamedColorDimWhite:
		return Black + Color(name-ansicode.NamedColorDimBlack)
	case name == ansicode.NamedColorBrightForeground:
		return Byte(uint8(ansicode.NamedColorBrightWhite))
	default:
		return Default
	}
}

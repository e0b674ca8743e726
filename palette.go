package rustty

import "image/color"

// ansiColors are the 16 named colors: the eight base colors followed by their bright variants.
var ansiColors = [16]color.RGBA{
	{0, 0, 0, 255}, {205, 49, 49, 255}, {13, 188, 121, 255}, {229, 229, 16, 255},
	{36, 114, 200, 255}, {188, 63, 188, 255}, {17, 168, 205, 255}, {229, 229, 229, 255},
	{102, 102, 102, 255}, {241, 76, 76, 255}, {35, 209, 139, 255}, {245, 245, 67, 255},
	{59, 142, 234, 255}, {214, 112, 214, 255}, {41, 184, 219, 255}, {255, 255, 255, 255},
}

// DefaultPalette is the standard 256-color palette: 16 named colors (0-15), 216 color cube (16-231), 24 grayscale (232-255).
var DefaultPalette = buildPalette()

// searchPalette holds the initial DefaultPalette for nearest-color lookups.
var searchPalette = toColorPalette(DefaultPalette)

func buildPalette() [256]color.RGBA {
	var p [256]color.RGBA
	copy(p[:], ansiColors[:])

	for i := 0; i < 216; i++ {
		r, g, b := i/36, i/6%6, i%6
		p[16+i] = color.RGBA{uint8(r * 51), uint8(g * 51), uint8(b * 51), 255}
	}

	for j := 0; j < 24; j++ {
		gray := uint8(8 + j*10)
		p[232+j] = color.RGBA{gray, gray, gray, 255}
	}
	return p
}

func toColorPalette(p [256]color.RGBA) color.Palette {
	out := make(color.Palette, len(p))
	for i, c := range p {
		out[i] = c
	}
	return out
}

// DefaultForeground is the color used for Default foregrounds (light gray).
var DefaultForeground = color.RGBA{229, 229, 229, 255}

// DefaultBackground is the color used for Default backgrounds (black).
var DefaultBackground = color.RGBA{0, 0, 0, 255}

// RGBA resolves the color against palette. Default resolves to fallback.
// A nil palette means DefaultPalette.
func (c Color) RGBA(palette *[256]color.RGBA, fallback color.RGBA) color.RGBA {
	if palette == nil {
		palette = &DefaultPalette
	}
	idx, err := c.Encode()
	if err != nil {
		return fallback
	}
	return palette[idx]
}

// nearestIndex returns the index of the built-in palette entry closest to rgb.
func nearestIndex(rgb color.Color) uint8 {
	return uint8(searchPalette.Index(rgb))
}

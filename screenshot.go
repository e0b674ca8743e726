package rustty

import (
	"image"
	"image/color"
	"image/draw"
	"io"
	"os"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"
)

// ScreenshotConfig controls how a buffer is rendered to an image.
// Zero fields fall back to defaults.
type ScreenshotConfig struct {
	// Font face to use for rendering. If nil, uses basicfont.Face7x13.
	Font font.Face

	// CellWidth and CellHeight override the cell dimensions.
	// If zero, derived from font metrics.
	CellWidth  int
	CellHeight int

	// Palette is the 256-color palette. If nil, uses DefaultPalette.
	Palette *[256]color.RGBA

	// DefaultFG is the color for Default foregrounds. If nil, uses DefaultForeground.
	DefaultFG *color.RGBA

	// DefaultBG is the color for Default backgrounds. If nil, uses DefaultBackground.
	DefaultBG *color.RGBA
}

// LoadFont loads a TrueType or OpenType font from a file path.
func LoadFont(path string, size float64) (font.Face, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return LoadFontFromReader(f, size)
}

// LoadFontFromReader loads a TrueType or OpenType font from an io.Reader.
func LoadFontFromReader(r io.Reader, size float64) (font.Face, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}

	return LoadFontFromBytes(data, size)
}

// LoadFontFromBytes loads a TrueType or OpenType font from raw bytes.
func LoadFontFromBytes(data []byte, size float64) (font.Face, error) {
	ft, err := opentype.Parse(data)
	if err != nil {
		return nil, err
	}

	return opentype.NewFace(ft, &opentype.FaceOptions{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingFull,
	})
}

// Screenshot renders the buffer to an RGBA image using basicfont and the default palette.
func (b *CellBuffer) Screenshot() *image.RGBA {
	return b.ScreenshotWithConfig(&ScreenshotConfig{})
}

// ScreenshotWithConfig renders the buffer to an RGBA image. Column c, row r
// occupies the pixel rectangle starting at (c*cellWidth, r*cellHeight).
// Only foreground attributes affect rendering: reverse swaps the colors,
// bold brightens named colors and underline draws a line under the glyph.
func (b *CellBuffer) ScreenshotWithConfig(cfg *ScreenshotConfig) *image.RGBA {
	face := cfg.Font
	if face == nil {
		face = basicfont.Face7x13
	}
	metrics := face.Metrics()

	cellWidth := cfg.CellWidth
	if cellWidth == 0 {
		adv, _ := face.GlyphAdvance('M')
		cellWidth = adv.Ceil()
		if cellWidth == 0 {
			cellWidth = 7 // basicfont fallback
		}
	}
	cellHeight := cfg.CellHeight
	if cellHeight == 0 {
		cellHeight = metrics.Height.Ceil()
	}

	palette := cfg.Palette
	if palette == nil {
		palette = &DefaultPalette
	}
	defaultFG := DefaultForeground
	if cfg.DefaultFG != nil {
		defaultFG = *cfg.DefaultFG
	}
	defaultBG := DefaultBackground
	if cfg.DefaultBG != nil {
		defaultBG = *cfg.DefaultBG
	}

	imgWidth := b.cols * cellWidth
	imgHeight := b.rows * cellHeight
	img := image.NewRGBA(image.Rect(0, 0, imgWidth, imgHeight))

	for col, cells := range b.cells {
		for row, cell := range cells {
			x := col * cellWidth
			y := row * cellHeight

			fgColor := cell.fg.color
			if cell.fg.attr == AttrBold && fgColor.IsNamed() {
				fgColor = Byte(fgColor.MustEncode() + 8)
			}
			fg := fgColor.RGBA(palette, defaultFG)
			bg := cell.bg.color.RGBA(palette, defaultBG)
			if cell.fg.attr == AttrReverse {
				fg, bg = bg, fg
			}

			rect := image.Rect(x, y, x+cellWidth, y+cellHeight)
			draw.Draw(img, rect, image.NewUniform(bg), image.Point{}, draw.Src)

			if cell.ch == 0 || cell.ch == ' ' {
				continue
			}

			baseline := y + metrics.Ascent.Ceil()
			d := &font.Drawer{
				Dst:  img,
				Src:  image.NewUniform(fg),
				Face: face,
				Dot:  fixed.P(x, baseline),
			}
			d.DrawString(string(cell.ch))

			if cell.fg.attr == AttrUnderline {
				// kept inside the cell so it never paints the row below
				underlineY := min(baseline+2, y+cellHeight-1)
				for px := 0; px < cellWidth; px++ {
					img.Set(x+px, underlineY, fg)
				}
			}
		}
	}

	return img
}

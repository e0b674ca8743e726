package rustty

import (
	"image"
	"image/color"
	"os"
	"path/filepath"
	"testing"

	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/font/gofont/goregular"
)

func TestScreenshotBounds(t *testing.T) {
	b := NewBuffer(3, 2)

	img := b.Screenshot()

	// basicfont.Face7x13 cells are 7x13 pixels
	if got := img.Bounds().Dx(); got != 21 {
		t.Errorf("expected width 21, got %d", got)
	}
	if got := img.Bounds().Dy(); got != 26 {
		t.Errorf("expected height 26, got %d", got)
	}
}

func TestScreenshotColors(t *testing.T) {
	b := NewBuffer(3, 1)
	_ = b.SetCell(0, 0, CellWithStyles(DefaultStyle(), StyleWithColor(Red)))
	_ = b.SetCell(2, 0, CellWithStyles(StyleWithAttr(AttrReverse), DefaultStyle()))

	img := b.ScreenshotWithConfig(&ScreenshotConfig{CellWidth: 4, CellHeight: 5})

	if got := img.Bounds().Dx(); got != 12 {
		t.Fatalf("expected width 12, got %d", got)
	}
	if got := img.RGBAAt(1, 1); got != DefaultPalette[1] {
		t.Errorf("expected red background, got %v", got)
	}
	if got := img.RGBAAt(5, 1); got != DefaultBackground {
		t.Errorf("expected default background, got %v", got)
	}
	if got := img.RGBAAt(9, 1); got != DefaultForeground {
		t.Errorf("expected reversed cell to use the foreground color, got %v", got)
	}
}

// hasPixel reports whether any pixel of img equals c.
func hasPixel(img *image.RGBA, c color.RGBA) bool {
	b := img.Bounds()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			if img.RGBAAt(x, y) == c {
				return true
			}
		}
	}
	return false
}

func TestScreenshotForegroundAttributes(t *testing.T) {
	tests := []struct {
		name      string
		cell      Cell
		want      color.RGBA
		forbidden color.RGBA
	}{
		{"bold named brightens", NewCell('X', NewStyle(Red, AttrBold), DefaultStyle()), DefaultPalette[9], DefaultPalette[1]},
		{"bold byte unchanged", NewCell('X', NewStyle(Byte(3), AttrBold), DefaultStyle()), DefaultPalette[3], DefaultPalette[11]},
		{"plain named", NewCell('X', StyleWithColor(Red), DefaultStyle()), DefaultPalette[1], DefaultPalette[9]},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := NewBufferWithCell(1, 1, tt.cell)
			img := b.ScreenshotWithConfig(&ScreenshotConfig{Font: basicfont.Face7x13, CellWidth: 7, CellHeight: 16})

			if !hasPixel(img, tt.want) {
				t.Errorf("expected a glyph pixel with color %v", tt.want)
			}
			if hasPixel(img, tt.forbidden) {
				t.Errorf("expected no pixel with color %v", tt.forbidden)
			}
		})
	}
}

func TestScreenshotUnderline(t *testing.T) {
	b := NewBuffer(2, 1)
	_ = b.SetCell(0, 0, NewCell('_', StyleWithAttr(AttrUnderline), DefaultStyle()))
	_ = b.SetCell(1, 0, CellWithChar('a'))

	img := b.ScreenshotWithConfig(&ScreenshotConfig{Font: basicfont.Face7x13, CellWidth: 7, CellHeight: 16})

	underlineY := basicfont.Face7x13.Metrics().Ascent.Ceil() + 2
	for x := 0; x < 7; x++ {
		if got := img.RGBAAt(x, underlineY); got != DefaultForeground {
			t.Errorf("pixel (%d,%d) = %v, want underline color", x, underlineY, got)
		}
	}
	for x := 7; x < 14; x++ {
		if got := img.RGBAAt(x, underlineY); got != DefaultBackground {
			t.Errorf("pixel (%d,%d) = %v, want no underline on plain cell", x, underlineY, got)
		}
	}
}

func TestScreenshotUnderlineStaysInCell(t *testing.T) {
	b := NewBuffer(1, 2)
	_ = b.SetCell(0, 0, NewCell('a', StyleWithAttr(AttrUnderline), DefaultStyle()))

	// default basicfont cells are 13 pixels high, so baseline+2 would land in row 1
	img := b.Screenshot()
	for x := 0; x < 7; x++ {
		if got := img.RGBAAt(x, 12); got != DefaultForeground {
			t.Errorf("pixel (%d,12) = %v, want underline on the last cell row", x, got)
		}
		if got := img.RGBAAt(x, 13); got != DefaultBackground {
			t.Errorf("pixel (%d,13) = %v, want the next row untouched", x, got)
		}
	}
}

func TestScreenshotCustomDefaults(t *testing.T) {
	b := NewBuffer(1, 1)
	bg := color.RGBA{10, 20, 30, 255}
	palette := DefaultPalette
	palette[4] = color.RGBA{1, 1, 1, 255}

	img := b.ScreenshotWithConfig(&ScreenshotConfig{DefaultBG: &bg})
	if got := img.RGBAAt(0, 0); got != bg {
		t.Errorf("expected custom default background, got %v", got)
	}

	b.ClearWithStyles(DefaultStyle(), StyleWithColor(Blue))
	img = b.ScreenshotWithConfig(&ScreenshotConfig{Palette: &palette})
	if got := img.RGBAAt(0, 0); got != palette[4] {
		t.Errorf("expected custom palette blue, got %v", got)
	}
}

func TestScreenshotEmptyBuffer(t *testing.T) {
	img := NewBuffer(0, 0).Screenshot()
	if !img.Bounds().Empty() {
		t.Errorf("expected empty image, got %v", img.Bounds())
	}
}

func TestLoadFont(t *testing.T) {
	face, err := LoadFontFromBytes(goregular.TTF, 12)
	if err != nil {
		t.Fatalf("LoadFontFromBytes: %v", err)
	}
	defer face.Close()

	path := filepath.Join(t.TempDir(), "go.ttf")
	if err := os.WriteFile(path, goregular.TTF, 0o644); err != nil {
		t.Fatal(err)
	}
	face2, err := LoadFont(path, 14)
	if err != nil {
		t.Fatalf("LoadFont: %v", err)
	}
	defer face2.Close()

	b := NewBufferWithChar(2, 1, 'W')
	img := b.ScreenshotWithConfig(&ScreenshotConfig{Font: face2, CellWidth: 10, CellHeight: 16})
	if img.Bounds().Dx() != 20 || img.Bounds().Dy() != 16 {
		t.Errorf("unexpected bounds %v", img.Bounds())
	}
}

func TestLoadFontInvalid(t *testing.T) {
	if _, err := LoadFontFromBytes([]byte("not a font"), 12); err == nil {
		t.Error("expected error for invalid font data")
	}
	if _, err := LoadFont(filepath.Join(t.TempDir(), "missing.ttf"), 12); err == nil {
		t.Error("expected error for missing file")
	}
}

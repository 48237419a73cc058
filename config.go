package main

import (
	"fmt"
	"math"
	"os"
	"path/filepath"
)

// Default asset locations, relative to the repository root the generator
// runs from. Each directory can be overridden through the environment
// (FONTGEN_FONT_DIR, FONTGEN_IMG_DIR, FONTGEN_RAW_DIR), or via a .env file
// in the working directory.
const (
	defaultFontDir = "assets/font"
	defaultImgDir  = "assets/img"
	defaultRawDir  = "pkg/kernel/assets"
)

// Atlas grid: 16 glyphs per row, 6 rows.
const (
	gridCols = 16
	gridRows = 6
)

// FontConfig describes one generated variant of the font atlas.
type FontConfig struct {
	Name     string  // output base name, e.g. "JBMONO"
	Font     string  // font file name under the font directory
	CharSize float64 // point size the glyphs are rendered at
	Width    int     // cell width in pixels
	Height   int     // cell height in pixels
	XPad     int     // horizontal glyph offset inside its cell
	YPad     int     // vertical glyph offset inside its cell
}

// BodyConfig returns the regular text variant, its cell derived from a
// 26pt metric.
func BodyConfig() FontConfig {
	w, h := cellDims(26, 1)
	return FontConfig{
		Name:     "JBMONO",
		Font:     "JetBrainsMono.ttf",
		CharSize: 25,
		Width:    w,
		Height:   h,
	}
}

// TitleConfig returns the enlarged title variant, its cell derived from a
// 50pt metric.
func TitleConfig() FontConfig {
	w, h := cellDims(50, 0)
	return FontConfig{
		Name:     "JBMONO_TITLE",
		Font:     "JetBrainsMono.ttf",
		CharSize: 48,
		Width:    w,
		Height:   h,
	}
}

// cellDims derives a glyph cell from the nominal point size: the width is
// the face's 9:16 advance ratio rounded to a pixel plus widen extra
// pixels, the height is the point size plus a fixed 4px line gap.
func cellDims(points, widen int) (w, h int) {
	w = int(math.Round(float64(points)*9.0/16.0)) + widen
	h = points + 4
	return w, h
}

// CanvasSize is the full atlas size for this variant.
func (c FontConfig) CanvasSize() (w, h int) {
	return c.Width * gridCols, c.Height * gridRows
}

// FontPath locates the variant's font file.
func (c FontConfig) FontPath() string {
	return filepath.Join(envDir("FONTGEN_FONT_DIR", defaultFontDir), c.Font)
}

// ImagePath is where the PNG proof of the atlas is written.
func (c FontConfig) ImagePath() string {
	return filepath.Join(envDir("FONTGEN_IMG_DIR", defaultImgDir), c.Name+".png")
}

// RawPath is where the packed 1-bit atlas is written.
func (c FontConfig) RawPath() string {
	return filepath.Join(envDir("FONTGEN_RAW_DIR", defaultRawDir), c.Name+".raw")
}

func (c FontConfig) String() string {
	w, h := c.CanvasSize()
	return fmt.Sprintf("%s: (%d, %d) (%d,%d)", c.Name, w, h, c.Width, c.Height)
}

func envDir(key, fallback string) string {
	if dir := os.Getenv(key); dir != "" {
		return dir
	}
	return fallback
}

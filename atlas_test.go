package main

import (
	"bytes"
	"image"
	"os"
	"path/filepath"
	"testing"

	"golang.org/x/image/font/basicfont"
)

// cellIsBlank reports whether every pixel of table cell i is background.
func cellIsBlank(img *image.RGBA, cfg FontConfig, i int) bool {
	col, row := glyphCell(i)
	for y := 0; y < cfg.Height; y++ {
		for x := 0; x < cfg.Width; x++ {
			if img.RGBAAt(col*cfg.Width+x, row*cfg.Height+y).R > onThreshold {
				return false
			}
		}
	}
	return true
}

func TestRenderAtlasSize(t *testing.T) {
	cfg := BodyConfig()
	img := RenderAtlas(cfg, basicfont.Face7x13)
	w, h := cfg.CanvasSize()
	if img.Bounds().Dx() != w || img.Bounds().Dy() != h {
		t.Errorf("expected %dx%d canvas, got %dx%d", w, h, img.Bounds().Dx(), img.Bounds().Dy())
	}
}

func TestRenderAtlasCells(t *testing.T) {
	cfg := BodyConfig()
	img := RenderAtlas(cfg, basicfont.Face7x13)
	if !cellIsBlank(img, cfg, glyphIndex(' ')) {
		t.Error("space cell has lit pixels")
	}
	for _, ch := range []byte{'A', '0', '#', '~'} {
		if cellIsBlank(img, cfg, glyphIndex(ch)) {
			t.Errorf("cell for %q is empty", ch)
		}
	}
	if cellIsBlank(img, cfg, 95) {
		t.Error("placeholder cell is empty")
	}
}

func TestRenderAtlasDeterminism(t *testing.T) {
	cfg := TitleConfig()
	a := RenderAtlas(cfg, basicfont.Face7x13)
	b := RenderAtlas(cfg, basicfont.Face7x13)
	if !bytes.Equal(a.Pix, b.Pix) {
		t.Error("two renders of the same config differ")
	}
}

func TestRenderAtlasPackedSize(t *testing.T) {
	cases := []struct {
		cfg FontConfig
		n   int
	}{
		{BodyConfig(), 5760},
		{TitleConfig(), 18144},
	}
	for _, c := range cases {
		raw := PackBitmap(RenderAtlas(c.cfg, basicfont.Face7x13))
		if len(raw) != c.n {
			t.Errorf("%s: expected %d packed bytes, got %d", c.cfg.Name, c.n, len(raw))
		}
	}
}

func TestLoadFaceMissingFile(t *testing.T) {
	t.Setenv("FONTGEN_FONT_DIR", t.TempDir())
	if _, err := LoadFace(BodyConfig()); err == nil {
		t.Fatal("expected an error for a missing font file")
	}
}

func TestLoadFaceBadData(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "JetBrainsMono.ttf"), []byte("not a font"), 0644); err != nil {
		t.Fatal(err)
	}
	t.Setenv("FONTGEN_FONT_DIR", dir)
	if _, err := LoadFace(BodyConfig()); err == nil {
		t.Fatal("expected a parse error for junk font data")
	}
}

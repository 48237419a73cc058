package main

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"os"

	"golang.org/x/image/font"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"
)

// Atlas palette: glyphs render as a single "on" color over an "off"
// background, ready for 1-bit thresholding.
var (
	atlasBG = color.RGBA{A: 0xff}
	atlasFG = color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
)

// LoadFace opens the variant's font file and prepares a face at its char
// size. Collection files are accepted; font index 0 is used.
func LoadFace(cfg FontConfig) (font.Face, error) {
	data, err := os.ReadFile(cfg.FontPath())
	if err != nil {
		return nil, err
	}
	coll, err := opentype.ParseCollection(data)
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", cfg.Font, err)
	}
	f, err := coll.Font(0)
	if err != nil {
		return nil, fmt.Errorf("font 0 of %s: %w", cfg.Font, err)
	}
	face, err := opentype.NewFace(f, &opentype.FaceOptions{
		Size:    cfg.CharSize,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return nil, fmt.Errorf("face %s at %gpt: %w", cfg.Font, cfg.CharSize, err)
	}
	return face, nil
}

// RenderAtlas draws the glyph table onto a fresh canvas, one fixed-size
// cell per entry. Glyphs anchor to the top-left corner of their cell: the
// baseline sits one font ascent below the cell top, shifted by the
// configured padding.
func RenderAtlas(cfg FontConfig, face font.Face) *image.RGBA {
	w, h := cfg.CanvasSize()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.Draw(img, img.Bounds(), image.NewUniform(atlasBG), image.Point{}, draw.Src)

	d := &font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(atlasFG),
		Face: face,
	}
	ascent := face.Metrics().Ascent
	for i := 0; i < len(glyphTable); i++ {
		col, row := glyphCell(i)
		d.Dot = fixed.Point26_6{
			X: fixed.I(col*cfg.Width + cfg.XPad),
			Y: fixed.I(row*cfg.Height+cfg.YPad) + ascent,
		}
		d.DrawString(glyphTable[i : i+1])
	}
	return img
}

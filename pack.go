package main

import "image"

// onThreshold is the red channel level a pixel must exceed to count as
// set. Antialiased fringes below it pack as background.
const onThreshold = 32

// PackedLen is the byte count of a packed w x h canvas. Rows pack into
// whole bytes, so each takes ceil(w/8).
func PackedLen(w, h int) int {
	return (w + 7) / 8 * h
}

// PackBitmap flattens the canvas to one bit per pixel, row-major and
// MSB-first. Every row starts a fresh byte; a trailing partial byte keeps
// its bits in the high-order positions with the remainder zero.
func PackBitmap(img *image.RGBA) []byte {
	bounds := img.Bounds()
	out := make([]byte, 0, PackedLen(bounds.Dx(), bounds.Dy()))
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		var cur byte
		bits := 0
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			cur <<= 1
			if img.RGBAAt(x, y).R > onThreshold {
				cur |= 1
			}
			bits++
			if bits == 8 {
				out = append(out, cur)
				cur = 0
				bits = 0
			}
		}
		if bits != 0 {
			out = append(out, cur<<(8-bits))
		}
	}
	return out
}

package main

import (
	"fmt"
	"image"
	"image/draw"
	"log"
	"time"

	"go.bug.st/serial"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

// The preview target is a 128x64 monochrome serial character display.
const (
	previewWidth  = 128
	previewHeight = 64
)

// previewSample is blitted onto the frame straight from the packed atlas,
// addressed the same way the downstream renderer addresses it.
const previewSample = "Ag18?~"

// previewKeyWait bounds how long a frame stays up waiting for a keypad
// press before the next variant is pushed anyway.
const previewKeyWait = 5 * time.Second

const initSleep = 5 * time.Millisecond

// PreviewFrame composes the display frame for one variant: the variant
// name in the builtin 7x13 face, then sample glyphs copied out of the
// packed bitmap. Cells that overrun the frame are clipped.
func PreviewFrame(cfg FontConfig, raw []byte) *image.RGBA {
	frame := image.NewRGBA(image.Rect(0, 0, previewWidth, previewHeight))
	draw.Draw(frame, frame.Bounds(), image.NewUniform(atlasBG), image.Point{}, draw.Src)

	d := &font.Drawer{
		Dst:  frame,
		Src:  image.NewUniform(atlasFG),
		Face: basicfont.Face7x13,
		Dot:  fixed.P(0, 12),
	}
	d.DrawString(cfg.Name)

	x := 0
	for i := 0; i < len(previewSample) && x+cfg.Width <= previewWidth; i++ {
		BlitGlyph(frame, raw, cfg, previewSample[i], x, 14)
		x += cfg.Width
	}
	return frame
}

// BlitGlyph copies one cell of the packed atlas onto dst at (x0, y0). raw
// must hold the full packed atlas for cfg. Pixels falling outside dst are
// dropped; characters outside the glyph table draw nothing.
func BlitGlyph(dst *image.RGBA, raw []byte, cfg FontConfig, ch byte, x0, y0 int) {
	idx := glyphIndex(ch)
	if idx < 0 {
		return
	}
	canvasW, _ := cfg.CanvasSize()
	stride := (canvasW + 7) / 8
	col, row := glyphCell(idx)
	for y := 0; y < cfg.Height; y++ {
		srcY := row*cfg.Height + y
		for x := 0; x < cfg.Width; x++ {
			srcX := col*cfg.Width + x
			if (raw[srcY*stride+srcX/8]>>(7-srcX%8))&1 == 1 {
				dst.SetRGBA(x0+x, y0+y, atlasFG)
			}
		}
	}
}

// PushPreviews opens the display port and shows each frame in turn,
// advancing on a keypad byte or after previewKeyWait.
func PushPreviews(device string, frames []*image.RGBA) error {
	mode := &serial.Mode{
		BaudRate: 115200,
		DataBits: 8,
		Parity:   serial.NoParity,
		StopBits: serial.OneStopBit,
	}
	port, err := serial.Open(device, mode)
	if err != nil {
		return fmt.Errorf("open serial port %s: %w", device, err)
	}
	defer port.Close()

	// Reset, cursor off, clear.
	for _, cmd := range [][]byte{{0x1b, 0x40}, {0x0b}, {0x0c}} {
		if err := writeFull(port, cmd); err != nil {
			return err
		}
		time.Sleep(initSleep)
	}

	for i, frame := range frames {
		if err := pushFrame(port, frame); err != nil {
			return err
		}
		if i < len(frames)-1 {
			waitKey(port, previewKeyWait)
		}
	}
	return nil
}

// pushFrame sends the draw command followed by the frame in the display's
// page format.
func pushFrame(port serial.Port, frame *image.RGBA) error {
	if err := writeFull(port, []byte{0x1b, 0x47}); err != nil {
		return err
	}
	cols := pagePack(frame)
	// The controller wants the 64-byte blocks interleaved: one parity of
	// block indices per pass.
	for pass := 0; pass < 2; pass++ {
		for i := 0; i < len(cols); i += 64 {
			if (i/64)%2 != pass {
				continue
			}
			limit := min(i+64, len(cols))
			if err := writeFull(port, cols[i:limit]); err != nil {
				return err
			}
		}
	}
	return nil
}

// pagePack rearranges the frame for the display controller: 8-row pages
// top to bottom, one byte per column, least significant bit topmost.
func pagePack(frame *image.RGBA) []byte {
	bounds := frame.Bounds()
	w, h := bounds.Dx(), bounds.Dy()
	cols := make([]byte, w*(h/8))
	for page := 0; page < h/8; page++ {
		for x := 0; x < w; x++ {
			var b byte
			for bit := 0; bit < 8; bit++ {
				if frame.RGBAAt(bounds.Min.X+x, bounds.Min.Y+page*8+bit).R > onThreshold {
					b |= 1 << bit
				}
			}
			cols[page*w+x] = b
		}
	}
	return cols
}

// waitKey blocks until the display keypad sends a byte or the timeout
// passes, whichever comes first.
func waitKey(port serial.Port, timeout time.Duration) {
	deadline := time.Now().Add(timeout)
	buf := make([]byte, 1)
	for time.Now().Before(deadline) {
		port.SetReadTimeout(100 * time.Millisecond)
		n, _ := port.Read(buf)
		if n == 1 {
			log.Printf("Key pressed: 0x%02X", buf[0])
			return
		}
	}
}

func writeFull(port serial.Port, data []byte) error {
	n, err := port.Write(data)
	if err != nil {
		return fmt.Errorf("serial write: %w", err)
	}
	if n < len(data) {
		return fmt.Errorf("serial write: wrote only %d of %d bytes", n, len(data))
	}
	return nil
}

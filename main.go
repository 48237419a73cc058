package main

import (
	"flag"
	"fmt"
	"image"
	"image/png"
	"log"
	"os"

	"github.com/joho/godotenv"
)

func main() {
	// An optional .env can override the asset directories; absence is fine.
	_ = godotenv.Load()

	previewDevice := flag.String("preview", "", "serial device of a display to push variant previews to")
	flag.Parse()

	var frames []*image.RGBA
	for _, cfg := range []FontConfig{BodyConfig(), TitleConfig()} {
		raw, err := Generate(cfg)
		if err != nil {
			log.Fatalf("Cannot generate %s: %v", cfg.Name, err)
		}
		if *previewDevice != "" {
			frames = append(frames, PreviewFrame(cfg, raw))
		}
	}

	if *previewDevice != "" {
		if err := PushPreviews(*previewDevice, frames); err != nil {
			log.Fatalf("Cannot preview on %s: %v", *previewDevice, err)
		}
	}
}

// Generate renders one variant, writes its PNG proof and its packed
// bitmap, and prints the summary line. The packed bytes are returned for
// previewing.
func Generate(cfg FontConfig) ([]byte, error) {
	face, err := LoadFace(cfg)
	if err != nil {
		return nil, err
	}
	defer face.Close()

	img := RenderAtlas(cfg, face)
	if err := writePNG(cfg.ImagePath(), img); err != nil {
		return nil, err
	}

	raw := PackBitmap(img)
	fmt.Println(cfg, len(raw))

	if err := os.WriteFile(cfg.RawPath(), raw, 0644); err != nil {
		return nil, err
	}
	return raw, nil
}

func writePNG(path string, img image.Image) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := png.Encode(f, img); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
